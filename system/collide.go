package system

import (
	"github.com/lixenwraith/boxes/component"
)

// Collide reports whether any alive enemy touches the player hitbox
// A dead player never collides
func Collide(p component.Player, enemies []*component.Enemy) bool {
	if p.Dead() {
		return false
	}
	for _, e := range enemies {
		if p.Collided(e) {
			return true
		}
	}
	return false
}
