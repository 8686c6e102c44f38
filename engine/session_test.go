package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/config"
	"github.com/lixenwraith/boxes/geom"
	"github.com/lixenwraith/boxes/physics"
	"github.com/lixenwraith/boxes/status"
)

// fixedRand always returns the same draw, clamped to n
type fixedRand int

func (r fixedRand) Intn(n int) int {
	return int(r) % n
}

var holdRand = fixedRand(physics.ActionHold)

func newTestSession(t *testing.T, enemies []config.Enemy, opts ...Option) (*Session, *MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Enemies = enemies
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	opts = append([]Option{WithTimeProvider(clock), WithRand(holdRand)}, opts...)
	return NewSession(cfg, opts...), clock
}

// walk holds d for n frames, then releases it
func walk(s *Session, d component.Direction, n int) {
	s.Press(d)
	for i := 0; i < n; i++ {
		s.Step()
	}
	s.Release(d)
}

func TestNewSession(t *testing.T) {
	s, _ := newTestSession(t, nil)

	snap := s.Snapshot()
	if snap.Player.Position != geom.Pt(16, 16) {
		t.Errorf("Expected spawn (16,16), got %v", snap.Player.Position)
	}
	if snap.Phase.Phase != PhasePlaying {
		t.Errorf("Expected Playing, got %v", snap.Phase.Phase)
	}
	if len(snap.Strokes) != 1 || snap.Strokes[0].Len() != 0 {
		t.Errorf("Expected a single zero-length stroke, got %v", snap.Strokes)
	}
	if len(snap.Enemies) != 2 {
		t.Fatalf("Expected default roster of 2, got %d", len(snap.Enemies))
	}
	if snap.Enemies[0].Position != geom.Pt(100, 768) || snap.Enemies[0].Aggressive {
		t.Errorf("Unexpected first enemy %+v", snap.Enemies[0])
	}
	if !snap.Enemies[1].Aggressive {
		t.Error("Expected second enemy aggressive")
	}
	if snap.SessionID == "" || snap.SessionID != s.ID() {
		t.Errorf("Expected session ID in snapshot, got %q", snap.SessionID)
	}
	if got := s.Registry().Strings.Get(status.KeySessionID).Load(); got != s.ID() {
		t.Errorf("Expected session ID published, got %q", got)
	}
}

func TestStep_SquareCapturesEnclosedEnemy(t *testing.T) {
	// Frozen clock: the enemy never moves and never animates
	s, _ := newTestSession(t, []config.Enemy{{X: 40, Y: 40}, {X: 400, Y: 400}})

	walk(s, component.Right, 50)
	walk(s, component.Down, 50)
	walk(s, component.Left, 50)

	strokes := s.Snapshot().Strokes
	if len(strokes) != 3 {
		t.Fatalf("Expected 3 segments before the last leg, got %d", len(strokes))
	}
	want := []geom.Segment{
		geom.Seg(geom.Pt(16, 16), geom.Pt(66, 16)),
		geom.Seg(geom.Pt(66, 16), geom.Pt(66, 66)),
		geom.Seg(geom.Pt(66, 66), geom.Pt(16, 66)),
	}
	for i, w := range want {
		if strokes[i].Segment != w {
			t.Errorf("Segment %d: expected %v, got %v", i, w, strokes[i].Segment)
		}
	}

	// 49 steps up: the fourth segment ends at (16,17) and does not touch the first yet
	walkNoRelease := func(n int) {
		for i := 0; i < n; i++ {
			s.Step()
		}
	}
	s.Press(component.Up)
	walkNoRelease(49)
	if s.enemies[0].State != component.EnemyAlive {
		t.Fatal("Expected enemy alive before the loop closes")
	}
	if s.trail.Len() != 4 {
		t.Fatalf("Expected 4 segments, got %d", s.trail.Len())
	}

	walkNoRelease(1)
	if s.enemies[0].State != component.EnemyDead || s.enemies[0].Frame != 0 {
		t.Errorf("Expected enclosed enemy dying at frame 0, got %v frame %d", s.enemies[0].State, s.enemies[0].Frame)
	}
	if s.enemies[1].State != component.EnemyAlive {
		t.Errorf("Expected outside enemy alive, got %v", s.enemies[1].State)
	}

	segs := s.trail.Segments()
	if len(segs) != 1 || segs[0] != geom.Seg(geom.Pt(16, 16), geom.Pt(16, 16)) {
		t.Errorf("Expected trail reset at (16,16), got %v", segs)
	}
	if got := s.Registry().Ints.Get(status.KeyCaptures).Load(); got != 1 {
		t.Errorf("Expected 1 capture recorded, got %d", got)
	}
	if got := s.Registry().Ints.Get(status.KeyEnemiesKill).Load(); got != 1 {
		t.Errorf("Expected 1 kill recorded, got %d", got)
	}
}

func TestStep_LevelCompleteAfterAnimation(t *testing.T) {
	s, clock := newTestSession(t, []config.Enemy{{X: 40, Y: 40}})

	walk(s, component.Right, 50)
	walk(s, component.Down, 50)
	walk(s, component.Left, 50)
	walk(s, component.Up, 50)

	if s.enemies[0].State != component.EnemyDead {
		t.Fatalf("Expected enemy captured, got %v", s.enemies[0].State)
	}

	// Three frame ticks, then the fourth retires the enemy
	for i := 1; i <= 3; i++ {
		clock.Advance(time.Second)
		s.Step()
		if s.Phase() != PhasePlaying {
			t.Fatalf("Tick %d: expected still Playing", i)
		}
		if got := s.Snapshot().Enemies[0].Frame; got != i {
			t.Errorf("Tick %d: expected frame %d, got %d", i, i, got)
		}
	}

	clock.Advance(time.Second)
	s.Step()
	if s.Phase() != PhaseLevelComplete {
		t.Fatalf("Expected LevelComplete, got %v", s.Phase())
	}
	if len(s.Snapshot().Enemies) != 0 {
		t.Error("Expected empty roster")
	}
	if got := s.Registry().Strings.Get(status.KeyPhase).Load(); got != "LevelComplete" {
		t.Errorf("Expected phase published, got %q", got)
	}
}

func TestStep_InertOutsidePlaying(t *testing.T) {
	s, clock := newTestSession(t, []config.Enemy{{X: 40, Y: 40}})
	clock.Advance(time.Hour)
	s.TransitionPhase(PhaseLevelComplete, clock.Now())

	s.Press(component.Right)
	s.Step()
	if s.player.Position != geom.Pt(16, 16) || s.player.Direction != component.Stopped {
		t.Errorf("Expected no input or movement in LevelComplete, got %+v", s.player)
	}
	if s.enemies[0].Position != geom.Pt(40, 40) {
		t.Errorf("Expected enemies frozen, got %v", s.enemies[0].Position)
	}

	if !s.Continue() || s.Phase() != PhaseNextLevel {
		t.Fatalf("Expected Continue to reach NextLevel, got %v", s.Phase())
	}
	if s.Continue() {
		t.Error("Expected NextLevel to have no outgoing transition")
	}
	s.Step()
	if s.Phase() != PhaseNextLevel {
		t.Errorf("Expected NextLevel to be inert, got %v", s.Phase())
	}
}

func TestStep_EnemiesMoveOnCooldown(t *testing.T) {
	s, clock := newTestSession(t, []config.Enemy{{X: 100, Y: 100}}, WithRand(fixedRand(physics.ActionToward)))

	s.Step()
	if s.enemies[0].Position != geom.Pt(100, 100) {
		t.Fatalf("Expected no move before the cooldown, got %v", s.enemies[0].Position)
	}

	clock.Advance(250 * time.Millisecond)
	s.Step()
	if s.enemies[0].Position != geom.Pt(99, 99) {
		t.Errorf("Expected step toward the player, got %v", s.enemies[0].Position)
	}

	clock.Advance(100 * time.Millisecond)
	s.Step()
	if s.enemies[0].Position != geom.Pt(99, 99) {
		t.Errorf("Expected cooldown to hold the enemy, got %v", s.enemies[0].Position)
	}
}

func TestStep_OverlengthRestartsTrail(t *testing.T) {
	s, _ := newTestSession(t, []config.Enemy{{X: 700, Y: 700}})

	walk(s, component.Right, 301)
	segs := s.trail.Segments()
	if len(segs) != 1 || segs[0].Len() != 301 {
		t.Fatalf("Expected a single 301-long segment, got %v", segs)
	}

	walk(s, component.Right, 1)
	segs = s.trail.Segments()
	if len(segs) != 1 || segs[0].Len() != 0 || segs[0].From != geom.Pt(318, 16) {
		t.Errorf("Expected restart at (318,16), got %v", segs)
	}
	if got := s.Registry().Ints.Get(status.KeyOverlength).Load(); got != 1 {
		t.Errorf("Expected 1 overlength recorded, got %d", got)
	}
}

func TestStep_Collisions(t *testing.T) {
	enemies := []config.Enemy{{X: 20, Y: 20}}

	s, _ := newTestSession(t, enemies)
	s.Step()
	if s.Snapshot().GameOver {
		t.Error("Expected collisions off by default")
	}

	cfg := config.Default()
	cfg.Enemies = enemies
	cfg.Collisions = true
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s = NewSession(cfg, WithTimeProvider(clock), WithRand(holdRand))

	s.Step()
	snap := s.Snapshot()
	if !snap.GameOver || !snap.Player.Dead {
		t.Fatalf("Expected player killed on contact, got %+v", snap.Player)
	}

	s.Press(component.Right)
	s.Step()
	if s.player.Position != geom.Pt(16, 16) {
		t.Errorf("Expected dead player to stay put, got %v", s.player.Position)
	}

	if !s.Respawn() {
		t.Fatal("Expected respawn of a dead player")
	}
	if s.Snapshot().GameOver || s.player.Dead() {
		t.Error("Expected player revived")
	}
	if s.Respawn() {
		t.Error("Expected respawn of a live player to be refused")
	}
}

func TestDump(t *testing.T) {
	s, _ := newTestSession(t, nil)
	walk(s, component.Right, 10)
	walk(s, component.Down, 5)

	var sb strings.Builder
	s.Dump(&sb)
	out := sb.String()

	for _, want := range []string{
		"player dir=Stopped last=Down pos=(26,21) prev=(26,20)",
		"segment 0: (16,16)->(26,16) len=10.0",
		"segment 1: (26,16)->(26,21) len=5.0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhasePlaying, PhaseLevelComplete, true},
		{PhaseLevelComplete, PhaseNextLevel, true},
		{PhasePlaying, PhaseNextLevel, false},
		{PhaseNextLevel, PhasePlaying, false},
		{PhaseLevelComplete, PhasePlaying, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%v, %v): expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}
