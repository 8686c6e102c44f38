package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxes/component"
	"github.com/lixenwraith/boxes/config"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/render"
	"github.com/lixenwraith/boxes/status"
)

// statusRows is reserved below the playfield for the counters line
const statusRows = 1

// Game drives one session on a tcell screen
type Game struct {
	screen  tcell.Screen
	session *engine.Session
	buf     *render.Buffer
	held    component.Direction
	tick    time.Duration
}

// NewGame initializes the screen and the session
func NewGame(cfg config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	g := &Game{
		screen:  screen,
		session: engine.NewSession(cfg),
		tick:    time.Second / time.Duration(cfg.TPS),
	}
	w, h := screen.Size()
	g.buf = render.NewBuffer(w, max(0, h-statusRows))
	return g, nil
}

// handleInput applies one terminal event; returns false to quit
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, dir := decodeKey(ev.Key(), ev.Rune(), ev.Modifiers())
		switch cmd {
		case cmdQuit:
			return false
		case cmdPress:
			g.session.Press(dir)
			g.held = dir
		case cmdRelease:
			g.session.Release(g.held)
			g.held = component.Stopped
		case cmdContinue:
			g.session.Continue()
		case cmdRespawn:
			if g.session.Respawn() {
				g.held = component.Stopped
			}
		}

	case *tcell.EventResize:
		w, h := g.screen.Size()
		g.buf.Resize(w, max(0, h-statusRows))
		g.screen.Sync()
	}
	return true
}

func (g *Game) draw() {
	snap := g.session.Snapshot()
	render.Compose(g.buf, snap)

	g.screen.Clear()
	g.buf.Flush(func(x, y int, c render.Cell) {
		if c.Rune == 0 {
			return
		}
		style := tcell.StyleDefault.Foreground(toColor(c.Fg)).Background(toColor(c.Bg))
		g.screen.SetContent(x, y, c.Rune, nil, style)
	})

	line := statusLine(g.session.Registry(), snap)
	style := tcell.StyleDefault.Foreground(toColor(render.RgbBanner))
	for i, r := range line {
		g.screen.SetContent(i, g.buf.Height(), r, nil, style)
	}
	g.screen.Show()
}

// statusLine summarizes the session counters for the bottom row
func statusLine(reg *status.Registry, snap engine.Snapshot) string {
	line := fmt.Sprintf("%s  enemies:%d  captures:%d  killed:%d  segments:%d",
		snap.Phase.Phase,
		reg.Ints.Get(status.KeyEnemiesAlive).Load(),
		reg.Ints.Get(status.KeyCaptures).Load(),
		reg.Ints.Get(status.KeyEnemiesKill).Load(),
		reg.Ints.Get(status.KeySegments).Load(),
	)
	if snap.GameOver {
		line += "  GAME OVER (r to respawn)"
	}
	if snap.Phase.Phase == engine.PhaseLevelComplete {
		line += "  (enter to continue)"
	}
	return line
}

func toColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (g *Game) run() {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.session.Step()
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
	log.Printf("session %s: closed", g.session.ID())
}
