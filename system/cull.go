package system

import (
	"github.com/lixenwraith/boxes/component"
)

// Cull removes enemies that finished their dying animation
// Order of the survivors is preserved; the backing array is reused
func Cull(enemies []*component.Enemy) []*component.Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if e.State == component.EnemyDone {
			continue
		}
		kept = append(kept, e)
	}
	// Drop trailing references so culled enemies can be collected
	for i := len(kept); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return kept
}
