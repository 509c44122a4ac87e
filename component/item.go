package component

import (
	"math/rand"

	"github.com/lixenwraith/dungeon-survival/parameter"
)

// ItemType identifies what a pickup does. Presentation data (glyphs,
// colors, sound cues) lives with the renderer and audio collaborators,
// keyed by this tag.
type ItemType uint8

const (
	ItemHealthPotion ItemType = iota
	ItemFood
	ItemWeapon
	ItemStairs
	itemTypeCount
)

// Item is a pickup on a floor tile, removed when collected.
type Item struct {
	X, Y int
	Type ItemType
}

// NewItem creates an item of the given type at a tile.
func NewItem(x, y int, t ItemType) Item {
	return Item{X: x, Y: y, Type: t}
}

// RandomItemType samples a uniformly random non-stairs item type.
func RandomItemType(rng *rand.Rand) ItemType {
	return ItemType(rng.Intn(int(itemTypeCount) - 1))
}

// ApplyEffect applies the item's effect to the player. Stairs have no
// direct player-state effect; the level transition is handled by the
// world.
func ApplyEffect(t ItemType, p *Player) {
	switch t {
	case ItemHealthPotion:
		p.Health += parameter.PotionHealAmount
		if p.Health > parameter.PlayerStartingHealth {
			p.Health = parameter.PlayerStartingHealth
		}
	case ItemFood:
		p.Hunger += parameter.FoodHungerAmount
		if p.Hunger > parameter.PlayerStartingHunger {
			p.Hunger = parameter.PlayerStartingHunger
		}
	case ItemWeapon:
		p.Attack += parameter.WeaponAttackBonus
		p.Defense += parameter.WeaponDefenseBonus
	case ItemStairs:
	}
}
