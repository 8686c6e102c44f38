package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/render"
	"github.com/lixenwraith/boxes/status"
)

const strokeWidth = 2

var keyMap = []struct {
	key ebiten.Key
	dir component.Direction
}{
	{ebiten.KeyArrowUp, component.Up},
	{ebiten.KeyArrowDown, component.Down},
	{ebiten.KeyArrowLeft, component.Left},
	{ebiten.KeyArrowRight, component.Right},
	{ebiten.KeyW, component.Up},
	{ebiten.KeyS, component.Down},
	{ebiten.KeyA, component.Left},
	{ebiten.KeyD, component.Right},
}

// Game adapts a session to ebiten's Update/Draw/Layout loop
type Game struct {
	session *engine.Session
	showHUD bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.key) {
			g.session.Press(m.dir)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			g.session.Release(m.dir)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Continue()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Respawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}

	g.session.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	screen.Fill(rgba(render.RgbBackground, 0xff))

	for _, st := range snap.Strokes {
		c := render.RgbTrail
		if st.Warning {
			c = render.RgbWarning
		}
		vector.StrokeLine(screen,
			float32(st.From.X), float32(st.From.Y), float32(st.To.X), float32(st.To.Y),
			strokeWidth, rgba(c, 0xff), false)
	}

	for _, e := range snap.Enemies {
		drawEnemy(screen, e)
	}
	drawPlayer(screen, snap.Player)

	if snap.Phase.Phase != engine.PhasePlaying {
		msg := render.LevelCompleteText
		face := basicfont.Face7x13
		x := (snap.Field.W - len(msg)*face.Advance) / 2
		text.Draw(screen, msg, face, x, snap.Field.H/2, rgba(render.RgbBanner, 0xff))
	}

	if g.showHUD {
		ebitenutil.DebugPrintAt(screen, hud(g.session.Registry(), snap), 8, 8)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.session.Field()
	return f.W, f.H
}

func drawEnemy(screen *ebiten.Image, e engine.EnemyView) {
	base := render.EnemyColor(e.State, e.Frame, e.Aggressive)
	x, y := float32(e.Position.X), float32(e.Position.Y)
	w, h := float32(e.Size.W), float32(e.Size.H)

	switch e.State {
	case component.EnemyAlive:
		vector.DrawFilledRect(screen, x, y, w, h, rgba(base, 0xff), false)
	case component.EnemyDead:
		// Shrinks toward its center while fading
		p := float32(render.DeathProgress(e.Frame))
		dx, dy := w*p/2, h*p/2
		vector.DrawFilledRect(screen, x+dx, y+dy, w-2*dx, h-2*dy, rgba(base, uint8(255*(1-p))), false)
	}
}

func drawPlayer(screen *ebiten.Image, p engine.PlayerView) {
	c := render.RgbPlayer
	if p.Dead {
		c = render.RgbPlayerDead
	}
	cx, cy := float32(p.Position.X), float32(p.Position.Y)
	half := float32(p.Size.W) / 4
	vector.StrokeRect(screen, cx-half, cy-half, 2*half, 2*half, strokeWidth, rgba(c, 0xff), false)

	// Nose toward the facing direction
	dx, dy := p.Facing.Delta()
	vector.StrokeLine(screen, cx, cy, cx+float32(dx)*2*half, cy+float32(dy)*2*half, strokeWidth, rgba(c, 0xff), false)
}

func hud(reg *status.Registry, snap engine.Snapshot) string {
	s := fmt.Sprintf("%s  alive:%d  captures:%d  killed:%d  overlength:%d\nsession %s",
		snap.Phase.Phase,
		reg.Ints.Get(status.KeyEnemiesAlive).Load(),
		reg.Ints.Get(status.KeyCaptures).Load(),
		reg.Ints.Get(status.KeyEnemiesKill).Load(),
		reg.Ints.Get(status.KeyOverlength).Load(),
		snap.SessionID,
	)
	if snap.GameOver {
		s += "\nGAME OVER - press R"
	}
	return s
}

func rgba(c render.RGB, a uint8) color.RGBA {
	// color.RGBA is alpha-premultiplied
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
