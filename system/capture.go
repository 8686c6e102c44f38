package system

import (
	"time"

	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/geom"
)

// Capture kills every alive enemy whose position lies inside box, edges included
// Enemies already dying are left on their current animation frame
// Returns the number of enemies killed
func Capture(box geom.Box, enemies []*component.Enemy, now time.Time) int {
	killed := 0
	for _, e := range enemies {
		if !e.Alive() || !box.Contains(e.Position) {
			continue
		}
		if e.Kill(now) {
			killed++
		}
	}
	return killed
}
