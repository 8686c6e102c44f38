package component

import (
	"time"

	"github.com/lixenwraith/boxes/geom"
	"github.com/lixenwraith/boxes/parameter"
)

// EnemyState is the enemy lifecycle: Alive -> Dead (dying animation) -> Done
type EnemyState uint8

const (
	EnemyAlive EnemyState = iota
	EnemyDead
	EnemyDone
)

// String returns human-readable state name
func (s EnemyState) String() string {
	switch s {
	case EnemyDead:
		return "Dead"
	case EnemyDone:
		return "Done"
	default:
		return "Alive"
	}
}

// Enemy is a roster entry roaming the playfield
type Enemy struct {
	Position      geom.Point // Top-left corner, also the point tested for enclosure
	Width, Height int
	Aggressive    bool // Doubles horizontal closing speed
	State         EnemyState
	Frame         int // Dying animation frame, 0..EnemyDeathLastFrame

	LastMoveTime   time.Time // Last successful move (cooldown gate)
	FrameStartTime time.Time // When the current dying frame started
}

// NewEnemy creates an alive enemy; the first move is allowed one interval after now
func NewEnemy(x, y, width, height int, aggressive bool, now time.Time) *Enemy {
	return &Enemy{
		Position:     geom.Pt(x, y),
		Width:        width,
		Height:       height,
		Aggressive:   aggressive,
		LastMoveTime: now,
	}
}

// Alive reports whether the enemy still roams
func (e *Enemy) Alive() bool {
	return e.State == EnemyAlive
}

// Body returns the enemy sprite rectangle
func (e *Enemy) Body() geom.Rect {
	return geom.Rect{X: e.Position.X, Y: e.Position.Y, W: e.Width, H: e.Height}
}

// Kill starts the dying animation at frame 0
// Returns false if the enemy was not alive
func (e *Enemy) Kill(now time.Time) bool {
	if e.State != EnemyAlive {
		return false
	}
	e.State = EnemyDead
	e.Frame = 0
	e.FrameStartTime = now
	return true
}

// Animate advances the dying animation by at most one frame
// A tick on the last frame retires the enemy; Done is terminal
func (e *Enemy) Animate(now time.Time) (EnemyState, int) {
	if e.State != EnemyDead {
		return e.State, e.Frame
	}

	if now.Sub(e.FrameStartTime) >= parameter.EnemyDeathFrameInterval {
		if e.Frame >= parameter.EnemyDeathLastFrame {
			e.State = EnemyDone
		} else {
			e.Frame++
			e.FrameStartTime = now
		}
	}

	return e.State, e.Frame
}

// Ready reports whether the move cooldown has elapsed
// Only alive enemies move
func (e *Enemy) Ready(now time.Time) bool {
	if e.State != EnemyAlive {
		return false
	}
	return now.Sub(e.LastMoveTime) >= parameter.EnemyMoveInterval
}

// MarkMoved restarts the move cooldown
func (e *Enemy) MarkMoved(now time.Time) {
	e.LastMoveTime = now
}
