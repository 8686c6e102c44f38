package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/boxes/config"
)

func main() {
	cfg, err := config.Load("boxes-term", os.Args[1:], os.LookupEnv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "boxes-term: %v\n", err)
		os.Exit(2)
	}

	logFile, err := config.SetupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boxes-term: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	game, err := NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			game.screen.Fini()
			log.Printf("crash: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBOXES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer game.cleanup()

	game.run()
}
