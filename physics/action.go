package physics

import (
	"time"

	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/geom"
	"github.com/lixenwraith/boxes/parameter"
)

// Rand is the random source used for per-frame enemy decisions
// *vmath.FastRand and *math/rand.Rand both satisfy it
type Rand interface {
	Intn(n int) int
}

// Action is one enemy's decision for a frame
type Action uint8

const (
	ActionAway Action = iota
	ActionHold
	ActionToward
)

// String returns human-readable action name
func (a Action) String() string {
	switch a {
	case ActionAway:
		return "Away"
	case ActionToward:
		return "Toward"
	default:
		return "Hold"
	}
}

// Choose samples one of away, hold, toward with equal probability
func Choose(rng Rand) Action {
	return Action(rng.Intn(parameter.EnemyActionCount))
}

// Apply performs the action; Hold never touches the cooldown
// Returns true if the enemy consumed a move tick
func Apply(a Action, e *component.Enemy, target geom.Point, field geom.Size, now time.Time) bool {
	switch a {
	case ActionAway:
		return MoveAway(e, target, field, now)
	case ActionToward:
		return MoveToward(e, target, field, now)
	default:
		return false
	}
}
