package component

import (
	"github.com/lixenwraith/boxes/geom"
	"github.com/lixenwraith/boxes/parameter"
)

// PlayerState is the player's life state
type PlayerState uint8

const (
	PlayerAlive PlayerState = iota
	PlayerDead
)

// Player is the cursor drawing the trail
// Advance returns an updated copy; the session replaces its value each frame
type Player struct {
	Position      geom.Point
	Previous      geom.Point // Position before the last Advance
	Direction     Direction  // Current command, Stopped when no key is held
	LastDirection Direction  // Last non-Stopped direction, survives momentary stops
	State         PlayerState
	Width, Height int

	// Facing is the last direction the sprite pointed to; rendering only
	Facing Direction
}

// NewPlayer creates a stopped player at (x, y)
func NewPlayer(x, y, width, height int) Player {
	p := geom.Pt(x, y)
	return Player{
		Position: p,
		Previous: p,
		Width:    width,
		Height:   height,
		Facing:   Right,
	}
}

// Press sets the current direction
func (p *Player) Press(d Direction) {
	if d == Stopped {
		return
	}
	p.Direction = d
}

// Release clears the current direction if d is the active one
// Releasing any other direction is a no-op
func (p *Player) Release(d Direction) {
	if p.Direction == d {
		p.Direction = Stopped
	}
}

// Moving reports whether a direction is held
func (p Player) Moving() bool {
	return p.Direction != Stopped
}

// Dead reports whether the player has been killed
func (p Player) Dead() bool {
	return p.State == PlayerDead
}

// Kill marks the player dead; a dead player no longer moves
func (p *Player) Kill() {
	p.State = PlayerDead
	p.Direction = Stopped
}

// Respawn revives the player at pos with a fresh movement history
func (p *Player) Respawn(pos geom.Point) {
	p.Position = pos
	p.Previous = pos
	p.State = PlayerAlive
	p.Direction = Stopped
	p.LastDirection = Stopped
}

// ChangedAxis reports whether the current direction is on the other axis than the last non-Stopped one
// Must be evaluated before Advance, which overwrites LastDirection
func (p Player) ChangedAxis() bool {
	last := p.LastDirection.Axis()
	cur := p.Direction.Axis()
	return last != AxisNone && cur != AxisNone && last != cur
}

// Advance returns the player after one frame of movement inside field
// Previous is snapshotted before the step; position is kept FieldMargin inside every edge
func (p Player) Advance(field geom.Size) Player {
	next := p
	next.Previous = p.Position

	if p.Dead() {
		return next
	}

	dx, dy := p.Direction.Delta()
	next.Position = p.Position.Add(dx*parameter.PlayerStep, dy*parameter.PlayerStep)
	next.Position.X = geom.Clamp(next.Position.X, parameter.FieldMargin, field.W-parameter.FieldMargin)
	next.Position.Y = geom.Clamp(next.Position.Y, parameter.FieldMargin, field.H-parameter.FieldMargin)

	if p.Direction != Stopped {
		next.LastDirection = p.Direction
		next.Facing = p.Direction
	}
	return next
}

// Hitbox returns the player body shrunk by a quarter on every side
func (p Player) Hitbox() geom.Rect {
	qw, qh := p.Width/4, p.Height/4
	return geom.Rect{
		X: p.Position.X + qw,
		Y: p.Position.Y + qh,
		W: p.Width - 2*qw,
		H: p.Height - 2*qh,
	}
}

// Collided reports whether an alive enemy's body overlaps the player hitbox
func (p Player) Collided(e *Enemy) bool {
	if e.State != EnemyAlive {
		return false
	}
	return p.Hitbox().Overlaps(e.Body())
}
