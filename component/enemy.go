package component

import (
	"github.com/lixenwraith/dungeon-survival/parameter"
)

// Enemy is a chasing monster. Speed is a tick divisor: the enemy acts
// only on ticks where its counter reaches Speed.
type Enemy struct {
	X, Y         int
	Health       int
	MaxHealth    int
	Damage       int
	Speed        int
	SpeedCounter int
}

// NewEnemy creates an enemy scaled to the level number.
func NewEnemy(x, y, level int) Enemy {
	maxHealth := parameter.EnemyBaseHealth + parameter.EnemyHealthPerLevel*level
	speed := parameter.EnemySpeedBase - level
	if speed < parameter.EnemyMinSpeed {
		speed = parameter.EnemyMinSpeed
	}

	return Enemy{
		X:         x,
		Y:         y,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Damage:    parameter.EnemyBaseDamage + parameter.EnemyDamagePerLevel*level,
		Speed:     speed,
	}
}
