package engine

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/config"
	"github.com/lixenwraith/boxes/geom"
	"github.com/lixenwraith/boxes/parameter"
	"github.com/lixenwraith/boxes/physics"
	"github.com/lixenwraith/boxes/status"
	"github.com/lixenwraith/boxes/system"
	"github.com/lixenwraith/boxes/trail"
	"github.com/lixenwraith/boxes/vmath"
)

// Rand is the source of per-frame enemy decisions
type Rand = physics.Rand

// Option configures a Session at construction
type Option func(*Session)

// WithTimeProvider replaces the system clock
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Session) { s.clock = tp }
}

// WithRand replaces the seeded FastRand
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithRegistry publishes session metrics into an existing registry
func WithRegistry(reg *status.Registry) Option {
	return func(s *Session) { s.reg = reg }
}

// Session owns one level: the player, its trail and the enemy roster
// All methods run on the shell's update goroutine; only the status registry is safe to read concurrently
type Session struct {
	id    string
	cfg   config.Config
	field geom.Size
	spawn geom.Point
	clock TimeProvider
	rng   Rand
	reg   *status.Registry

	phase      Phase
	phaseStart time.Time
	gameOver   bool
	frame      int64

	player  component.Player
	trail   *trail.Trail
	enemies []*component.Enemy

	statFrames     *atomic.Int64
	statCaptures   *atomic.Int64
	statOverlength *atomic.Int64
	statSegments   *atomic.Int64
	statAlive      *atomic.Int64
	statKilled     *atomic.Int64
	statCulled     *atomic.Int64
	statDeaths     *atomic.Int64
	statGameOver   *atomic.Bool
	statPhase      *status.AtomicString
}

// NewSession creates a playing session from a validated configuration
// The player starts stopped at the spawn point with a zero-length trail anchored there
func NewSession(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		id:    uuid.NewString(),
		cfg:   cfg,
		field: geom.Size{W: cfg.Width, H: cfg.Height},
		spawn: geom.Pt(parameter.PlayerStartX, parameter.PlayerStartY),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.clock == nil {
		s.clock = NewMonotonicTimeProvider()
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = vmath.NewFastRand(seed)
	}
	if s.reg == nil {
		s.reg = status.NewRegistry()
	}

	s.statFrames = s.reg.Ints.Get(status.KeyFrames)
	s.statCaptures = s.reg.Ints.Get(status.KeyCaptures)
	s.statOverlength = s.reg.Ints.Get(status.KeyOverlength)
	s.statSegments = s.reg.Ints.Get(status.KeySegments)
	s.statAlive = s.reg.Ints.Get(status.KeyEnemiesAlive)
	s.statKilled = s.reg.Ints.Get(status.KeyEnemiesKill)
	s.statCulled = s.reg.Ints.Get(status.KeyEnemiesCull)
	s.statDeaths = s.reg.Ints.Get(status.KeyPlayerDeaths)
	s.statGameOver = s.reg.Bools.Get(status.KeyGameOver)
	s.statPhase = s.reg.Strings.Get(status.KeyPhase)
	s.reg.Strings.Get(status.KeySessionID).Store(s.id)

	now := s.clock.Now()
	s.phase = PhasePlaying
	s.phaseStart = now
	s.statPhase.Store(s.phase.String())

	s.player = component.NewPlayer(s.spawn.X, s.spawn.Y, parameter.SpriteSize, parameter.SpriteSize)
	s.trail = trail.New(s.spawn)

	for _, e := range cfg.Roster() {
		s.enemies = append(s.enemies, component.NewEnemy(e.X, e.Y, parameter.SpriteSize, parameter.SpriteSize, e.Aggressive, now))
	}
	s.publish()

	log.Printf("session %s: started %dx%d with %d enemies", s.id, s.field.W, s.field.H, len(s.enemies))
	return s
}

// ID returns the session UUID
func (s *Session) ID() string {
	return s.id
}

// Registry returns the metrics registry the session writes to
func (s *Session) Registry() *status.Registry {
	return s.reg
}

// Field returns the playfield size
func (s *Session) Field() geom.Size {
	return s.field
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// ReadPhaseState returns the phase with its timing
func (s *Session) ReadPhaseState() PhaseSnapshot {
	now := s.clock.Now()
	return PhaseSnapshot{
		Phase:     s.phase,
		StartTime: s.phaseStart,
		Duration:  now.Sub(s.phaseStart),
	}
}

// TransitionPhase attempts a phase change
// Returns true if the transition was valid and applied
func (s *Session) TransitionPhase(to Phase, now time.Time) bool {
	if !CanTransition(s.phase, to) {
		return false
	}
	log.Printf("session %s: phase %s -> %s", s.id, s.phase, to)
	s.phase = to
	s.phaseStart = now
	s.statPhase.Store(to.String())
	return true
}

// Press applies a direction key press; ignored outside PhasePlaying or while the player is dead
func (s *Session) Press(d component.Direction) {
	if s.phase != PhasePlaying || s.player.Dead() {
		return
	}
	s.player.Press(d)
}

// Release applies a direction key release; only the active direction stops the player
func (s *Session) Release(d component.Direction) {
	if s.phase != PhasePlaying {
		return
	}
	s.player.Release(d)
}

// Step advances the session by one frame, reading the clock once
func (s *Session) Step() {
	if s.phase != PhasePlaying {
		return
	}
	now := s.clock.Now()
	s.frame++
	s.statFrames.Add(1)

	// Axis change must be read before Advance overwrites LastDirection
	axisChanged := s.player.ChangedAxis()
	s.player = s.player.Advance(s.field)

	if s.player.Moving() {
		switch s.trail.Extend(s.player.Position, s.player.Previous, axisChanged) {
		case trail.Overlength:
			s.statOverlength.Add(1)
			log.Printf("session %s: trail over %.0f, restarted at %v", s.id, s.trail.MaxLength(), s.player.Position)
		case trail.Branched:
			if s.cfg.Debug {
				s.Dump(log.Writer())
			}
		}
	}

	if box, ok := s.trail.ClosesLoop(); ok {
		killed := system.Capture(box, s.enemies, now)
		s.trail.Reset(s.player.Position)
		s.statCaptures.Add(1)
		s.statKilled.Add(int64(killed))
		log.Printf("session %s: loop closed %v, captured %d", s.id, box, killed)
	}

	target := s.player.Position
	for _, e := range s.enemies {
		switch e.State {
		case component.EnemyAlive:
			physics.Apply(physics.Choose(s.rng), e, target, s.field, now)
		case component.EnemyDead:
			e.Animate(now)
		}
	}

	if s.cfg.Collisions && system.Collide(s.player, s.enemies) {
		s.player.Kill()
		s.trail.Reset(s.player.Position)
		s.gameOver = true
		s.statDeaths.Add(1)
		log.Printf("session %s: player hit at %v", s.id, s.player.Position)
	}

	before := len(s.enemies)
	s.enemies = system.Cull(s.enemies)
	s.statCulled.Add(int64(before - len(s.enemies)))

	if len(s.enemies) == 0 {
		s.TransitionPhase(PhaseLevelComplete, now)
	}
	s.publish()
}

// Continue leaves the level-complete screen
// Returns false outside PhaseLevelComplete
func (s *Session) Continue() bool {
	return s.TransitionPhase(PhaseNextLevel, s.clock.Now())
}

// Respawn revives a dead player at the spawn point with a fresh trail
// Returns false if the player is alive or the level is over
func (s *Session) Respawn() bool {
	if s.phase != PhasePlaying || !s.player.Dead() {
		return false
	}
	s.player.Respawn(s.spawn)
	s.trail.Reset(s.spawn)
	s.gameOver = false
	s.publish()
	log.Printf("session %s: player respawned at %v", s.id, s.spawn)
	return true
}

// Dump writes the player state and every retained trail segment, oldest first
func (s *Session) Dump(w io.Writer) {
	fmt.Fprintf(w, "player dir=%s last=%s pos=%v prev=%v\n",
		s.player.Direction, s.player.LastDirection, s.player.Position, s.player.Previous)
	for i, seg := range s.trail.Segments() {
		fmt.Fprintf(w, "segment %d: %v len=%.1f\n", i, seg, seg.Len())
	}
}

func (s *Session) publish() {
	alive := 0
	for _, e := range s.enemies {
		if e.Alive() {
			alive++
		}
	}
	s.statAlive.Store(int64(alive))
	s.statSegments.Store(int64(s.trail.Len()))
	s.statGameOver.Store(s.gameOver)
}
