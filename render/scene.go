package render

import (
	"github.com/lixenwraith/boxes/engine"
)

// LevelCompleteText is the banner shown once the roster is empty
const LevelCompleteText = "Level Complete!"

// Compose draws one snapshot into buf, scaled to fill it
// Order: trail, enemies, player, banner; later layers overwrite earlier ones
func Compose(buf *Buffer, snap engine.Snapshot) {
	buf.Clear()
	proj := NewProjector(snap.Field, buf.Width(), buf.Height())

	for _, st := range snap.Strokes {
		fg := RgbTrail
		if st.Warning {
			fg = RgbWarning
		}
		x0, y0 := proj.Cell(st.From)
		x1, y1 := proj.Cell(st.To)
		Line(x0, y0, x1, y1, func(x, y int) {
			buf.Set(x, y, Cell{Rune: '#', Fg: fg, Bg: RgbBackground})
		})
	}

	for _, e := range snap.Enemies {
		r := EnemyGlyph(e.State, e.Frame, e.Aggressive)
		if r == ' ' {
			continue
		}
		x, y := proj.Cell(e.Position)
		w, h := proj.Span(e.Size)
		fg := EnemyColor(e.State, e.Frame, e.Aggressive)
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				buf.Set(x+dx, y+dy, Cell{Rune: r, Fg: fg, Bg: RgbBackground})
			}
		}
	}

	// The player position is the trail head, so the cursor marks it rather than the sprite corner
	px, py := proj.Cell(snap.Player.Position)
	pfg := RgbPlayer
	if snap.Player.Dead {
		pfg = RgbPlayerDead
	}
	buf.Set(px, py, Cell{Rune: PlayerGlyph(snap.Player.Facing, snap.Player.Dead), Fg: pfg, Bg: RgbBackground})

	if snap.Phase.Phase != engine.PhasePlaying {
		x := (buf.Width() - len(LevelCompleteText)) / 2
		buf.Text(max(0, x), buf.Height()/2, LevelCompleteText, RgbBanner)
	}
}
