package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/boxes/config"
	"github.com/lixenwraith/boxes/engine"
)

func main() {
	cfg, err := config.Load("boxes", os.Args[1:], os.LookupEnv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "boxes: %v\n", err)
		os.Exit(2)
	}

	logFile, err := config.SetupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boxes: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	game := &Game{session: engine.NewSession(cfg), showHUD: cfg.Debug}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Boxes")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("session %s: %v", game.session.ID(), err)
		fmt.Fprintf(os.Stderr, "boxes: %v\n", err)
		os.Exit(1)
	}
}
