package render

import (
	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/parameter"
)

var dyingGlyphs = [parameter.EnemyDeathLastFrame + 1]rune{'*', '+', '\'', '.'}

// PlayerGlyph returns the cursor rune pointing toward facing
func PlayerGlyph(facing component.Direction, dead bool) rune {
	if dead {
		return 'x'
	}
	switch facing {
	case component.Up:
		return '^'
	case component.Down:
		return 'v'
	case component.Left:
		return '<'
	default:
		return '>'
	}
}

// EnemyGlyph returns the rune for an enemy; dying enemies shrink one step per animation frame
func EnemyGlyph(state component.EnemyState, frame int, aggressive bool) rune {
	switch state {
	case component.EnemyAlive:
		if aggressive {
			return '@'
		}
		return 'O'
	case component.EnemyDead:
		if frame < 0 || frame >= len(dyingGlyphs) {
			return ' '
		}
		return dyingGlyphs[frame]
	default:
		return ' '
	}
}

// EnemyColor fades dying enemies toward the background frame by frame
func EnemyColor(state component.EnemyState, frame int, aggressive bool) RGB {
	base := RgbEnemy
	if aggressive {
		base = RgbAggressive
	}
	if state == component.EnemyAlive {
		return base
	}
	return Lerp(base, RgbBackground, DeathProgress(frame))
}

// DeathProgress returns how far a dying enemy has faded, in (0, 1)
// Frame 0 is already partly faded and the last frame never fully disappears
func DeathProgress(frame int) float64 {
	frame = max(0, min(frame, parameter.EnemyDeathLastFrame))
	return float64(frame+1) / float64(parameter.EnemyDeathLastFrame+2)
}
