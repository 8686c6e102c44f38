package physics

import (
	"time"

	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/geom"
	"github.com/lixenwraith/boxes/parameter"
)

// MoveToward steps the enemy toward target once its move cooldown has elapsed
// Aggressive enemies close horizontally at EnemyAggressiveStepX
// Returns true if a move tick was consumed
func MoveToward(e *component.Enemy, target geom.Point, field geom.Size, now time.Time) bool {
	if !e.Ready(now) {
		return false
	}

	stepX := parameter.EnemyStep
	if e.Aggressive {
		stepX = parameter.EnemyAggressiveStepX
	}

	dx := geom.Sign(target.X - e.Position.X)
	dy := geom.Sign(target.Y - e.Position.Y)
	moveTo(e, e.Position.Add(dx*stepX, dy*parameter.EnemyStep), field)

	e.MarkMoved(now)
	return true
}

// MoveAway steps the enemy one unit per axis away from target once its move cooldown has elapsed
// An axis already aligned with the target does not move
func MoveAway(e *component.Enemy, target geom.Point, field geom.Size, now time.Time) bool {
	if !e.Ready(now) {
		return false
	}

	dx := -geom.Sign(target.X - e.Position.X)
	dy := -geom.Sign(target.Y - e.Position.Y)
	moveTo(e, e.Position.Add(dx*parameter.EnemyStep, dy*parameter.EnemyStep), field)

	e.MarkMoved(now)
	return true
}

// moveTo places the enemy at p, keeping the whole body inside the field
func moveTo(e *component.Enemy, p geom.Point, field geom.Size) {
	e.Position.X = geom.Clamp(p.X, 0, field.W-e.Width)
	e.Position.Y = geom.Clamp(p.Y, 0, field.H-e.Height)
}
