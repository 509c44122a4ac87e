package component

import (
	"github.com/lixenwraith/dungeon-survival/parameter"
)

// Player is the player character state. Position resets on level
// transition; every other field survives until a restart.
type Player struct {
	X, Y        int
	Health      int
	Hunger      int
	Attack      int
	Defense     int
	HungerTicks int // Ticks since the last hunger decrement
}

// NewPlayer creates a fresh player at the given tile.
func NewPlayer(x, y int) Player {
	return Player{
		X:       x,
		Y:       y,
		Health:  parameter.PlayerStartingHealth,
		Hunger:  parameter.PlayerStartingHunger,
		Attack:  parameter.PlayerStartingAttack,
		Defense: parameter.PlayerStartingDefense,
	}
}
