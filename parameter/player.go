package parameter

// Player Stats
const (
	// PlayerStartingHealth is the health cap and starting value
	PlayerStartingHealth = 100

	// PlayerStartingHunger is the hunger cap and starting value
	PlayerStartingHunger = 100

	// PlayerStartingAttack is damage dealt per combat resolution
	PlayerStartingAttack = 10

	// PlayerStartingDefense reduces incoming enemy damage
	PlayerStartingDefense = 5
)

// Hunger
const (
	// HungerDecayTicks is the tick interval between hunger decrements
	HungerDecayTicks = 10

	// StarvationDamage is health lost on each decay tick at zero hunger
	StarvationDamage = 2
)
