package parameter

// Enemy Scaling
//
// All enemy stats are fixed formulas of the level number L >= 1.
const (
	// EnemyBaseHealth + EnemyHealthPerLevel*L is the enemy max health
	EnemyBaseHealth     = 20
	EnemyHealthPerLevel = 10

	// EnemyBaseDamage + EnemyDamagePerLevel*L is damage per hit
	EnemyBaseDamage     = 5
	EnemyDamagePerLevel = 2

	// Speed divisor: an enemy acts once every max(EnemyMinSpeed,
	// EnemySpeedBase-L) ticks, so higher levels move faster
	EnemySpeedBase = 5
	EnemyMinSpeed  = 2
)

// Enemy Spawning
const (
	// EnemyBaseCount + EnemyCountPerLevel*L enemies spawn per level
	EnemyBaseCount     = 5
	EnemyCountPerLevel = 2
)
