package status

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Session metric keys
const (
	KeySessionID    = "session.id"
	KeyPhase        = "session.phase"
	KeyFrames       = "session.frames"
	KeyGameOver     = "session.game_over"
	KeyCaptures     = "trail.captures"
	KeyOverlength   = "trail.overlength"
	KeySegments     = "trail.segments"
	KeyEnemiesAlive = "enemy.alive"
	KeyEnemiesKill  = "enemy.killed"
	KeyEnemiesCull  = "enemy.culled"
	KeyPlayerDeaths = "player.deaths"
)

// Registry groups session metrics by value type
// The session writes through cached pointers; shells read them between frames
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// WriteTo writes one "key=value" line per metric, strings first, then ints, then bools
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		err   error
	)
	emit := func(key string, val any) {
		if err != nil {
			return
		}
		var n int
		n, err = fmt.Fprintf(w, "%s=%v\n", key, val)
		total += int64(n)
	}

	r.Strings.Range(func(key string, s *AtomicString) { emit(key, s.Load()) })
	r.Ints.Range(func(key string, v *atomic.Int64) { emit(key, v.Load()) })
	r.Bools.Range(func(key string, b *atomic.Bool) { emit(key, b.Load()) })
	return total, err
}
