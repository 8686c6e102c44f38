package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 after t1, got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	jump := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(jump)
	if now := mock.Now(); !now.Equal(jump) {
		t.Errorf("Expected %v after SetTime, got %v", jump, now)
	}

	mock.Advance(250 * time.Millisecond)
	mock.Advance(time.Second)
	want := jump.Add(1250 * time.Millisecond)
	if now := mock.Now(); !now.Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, now)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = NewMonotonicTimeProvider()
	var _ TimeProvider = NewMockTimeProvider(time.Now())
}
