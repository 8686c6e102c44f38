package engine

import (
	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/geom"
	"github.com/lixenwraith/boxes/trail"
)

// PlayerView is the renderable player state
type PlayerView struct {
	Position geom.Point
	Size     geom.Size
	Facing   component.Direction
	Dead     bool
}

// EnemyView is the renderable state of one roster entry
type EnemyView struct {
	Position   geom.Point
	Size       geom.Size
	State      component.EnemyState
	Frame      int
	Aggressive bool
}

// Snapshot is everything a shell needs to draw one frame
// It shares no memory with the session
type Snapshot struct {
	SessionID string
	Field     geom.Size
	Phase     PhaseSnapshot
	GameOver  bool
	Frame     int64

	Player  PlayerView
	Strokes []trail.Stroke
	Enemies []EnemyView
}

// Snapshot captures the current renderable state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.id,
		Field:     s.field,
		Phase:     s.ReadPhaseState(),
		GameOver:  s.gameOver,
		Frame:     s.frame,
		Player: PlayerView{
			Position: s.player.Position,
			Size:     geom.Size{W: s.player.Width, H: s.player.Height},
			Facing:   s.player.Facing,
			Dead:     s.player.Dead(),
		},
		Strokes: s.trail.Strokes(),
		Enemies: make([]EnemyView, 0, len(s.enemies)),
	}
	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			Position:   e.Position,
			Size:       geom.Size{W: e.Width, H: e.Height},
			State:      e.State,
			Frame:      e.Frame,
			Aggressive: e.Aggressive,
		})
	}
	return snap
}
