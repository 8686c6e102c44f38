package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxes/component"
)

// command is a decoded key press
type command uint8

const (
	cmdNone command = iota
	cmdPress
	cmdRelease
	cmdContinue
	cmdRespawn
	cmdQuit
)

// decodeKey maps a terminal key to a session command
// Terminals report no key-up events, so Space stands in for releasing the held direction
func decodeKey(key tcell.Key, r rune, mod tcell.ModMask) (command, component.Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, component.Stopped
	case tcell.KeyUp:
		return cmdPress, component.Up
	case tcell.KeyDown:
		return cmdPress, component.Down
	case tcell.KeyLeft:
		return cmdPress, component.Left
	case tcell.KeyRight:
		return cmdPress, component.Right
	case tcell.KeyEnter:
		return cmdContinue, component.Stopped
	case tcell.KeyRune:
		if mod&tcell.ModCtrl != 0 && r == 'q' {
			return cmdQuit, component.Stopped
		}
		switch r {
		case ' ':
			return cmdRelease, component.Stopped
		case 'k', 'w':
			return cmdPress, component.Up
		case 'j', 's':
			return cmdPress, component.Down
		case 'h', 'a':
			return cmdPress, component.Left
		case 'l', 'd':
			return cmdPress, component.Right
		case 'r':
			return cmdRespawn, component.Stopped
		}
	}
	return cmdNone, component.Stopped
}
