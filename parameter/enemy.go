package parameter

import "time"

// Enemy Motion
const (
	// EnemyMoveInterval is the minimum time between two moves of the same enemy
	EnemyMoveInterval = 250 * time.Millisecond

	// EnemyStep is the per-axis distance of one move
	EnemyStep = 1

	// EnemyAggressiveStepX is the horizontal distance of one move toward the player for aggressive enemies
	EnemyAggressiveStepX = 2

	// EnemyActionCount is the number of equally likely per-frame actions (away, hold, toward)
	EnemyActionCount = 3
)

// Enemy Death Animation
const (
	// EnemyDeathFrameInterval is the duration of one dying animation frame
	EnemyDeathFrameInterval = 1 * time.Second

	// EnemyDeathLastFrame is the terminal animation frame; the next tick retires the enemy
	EnemyDeathLastFrame = 3
)

// Default Roster
const (
	// EnemyDefaultFirstX is the X of the first default enemy
	EnemyDefaultFirstX = 100

	// EnemyDefaultSecondX is the X of the second default enemy
	EnemyDefaultSecondX = 300
)
