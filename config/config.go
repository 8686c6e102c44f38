package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/boxes/parameter"
)

// ErrInvalid wraps every configuration rejection
var ErrInvalid = errors.New("invalid config")

// Enemy is one roster entry, placed by its top-left corner
type Enemy struct {
	X          int  `toml:"x"`
	Y          int  `toml:"y"`
	Aggressive bool `toml:"aggressive"`
}

// Config is the startup configuration shared by both shells
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	TPS        int     `toml:"tps"`
	Seed       uint64  `toml:"seed"` // 0 seeds from the clock
	Debug      bool    `toml:"debug"`
	Collisions bool    `toml:"collisions"`
	LogDir     string  `toml:"log_dir"`
	Enemies    []Enemy `toml:"enemy"` // Empty uses DefaultRoster
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:  parameter.DefaultFieldWidth,
		Height: parameter.DefaultFieldHeight,
		TPS:    parameter.DefaultTPS,
		LogDir: parameter.DefaultLogDir,
	}
}

// DefaultRoster returns the two starting enemies along the bottom edge, the second one aggressive
func DefaultRoster(height int) []Enemy {
	y := height - parameter.SpriteSize
	return []Enemy{
		{X: parameter.EnemyDefaultFirstX, Y: y},
		{X: parameter.EnemyDefaultSecondX, Y: y, Aggressive: true},
	}
}

// Roster returns the configured enemies, or the default roster for the field height
func (c Config) Roster() []Enemy {
	if len(c.Enemies) == 0 {
		return DefaultRoster(c.Height)
	}
	return c.Enemies
}

// Validate checks field size, tick rate and roster placement
func (c Config) Validate() error {
	minSide := 2*parameter.FieldMargin + parameter.SpriteSize
	if c.Width < minSide || c.Height < minSide {
		return fmt.Errorf("%w: field %dx%d smaller than %dx%d", ErrInvalid, c.Width, c.Height, minSide, minSide)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalid, c.TPS)
	}

	maxX := c.Width - parameter.SpriteSize
	maxY := c.Height - parameter.SpriteSize
	for i, e := range c.Roster() {
		if e.X < 0 || e.X > maxX || e.Y < 0 || e.Y > maxY {
			return fmt.Errorf("%w: enemy %d at (%d,%d) outside [0,%d]x[0,%d]", ErrInvalid, i, e.X, e.Y, maxX, maxY)
		}
	}
	return nil
}
