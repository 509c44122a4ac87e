package parameter

// Item Effects
const (
	// PotionHealAmount restores health, capped at PlayerStartingHealth
	PotionHealAmount = 30

	// FoodHungerAmount restores hunger, capped at PlayerStartingHunger
	FoodHungerAmount = 40

	// WeaponAttackBonus and WeaponDefenseBonus are permanent increases
	WeaponAttackBonus  = 5
	WeaponDefenseBonus = 2
)

// Item Spawning
const (
	// ItemBaseCount + ItemCountPerLevel*L items spawn per level,
	// plus exactly one stairs item
	ItemBaseCount     = 8
	ItemCountPerLevel = 1
)
