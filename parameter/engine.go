package parameter

// Game Loop
const (
	// DefaultTPS is the session step rate of both shells
	DefaultTPS = 60
)

// Playfield
const (
	// DefaultFieldWidth is the playfield width used when no configuration overrides it
	DefaultFieldWidth = 800

	// DefaultFieldHeight is the playfield height used when no configuration overrides it
	DefaultFieldHeight = 800

	// FieldMargin keeps the player this many units inside every playfield edge
	FieldMargin = 8

	// SpriteSize is the edge length of player and enemy sprites
	SpriteSize = 32
)

// Logging
const (
	// DefaultLogDir receives the debug log when -debug is set
	DefaultLogDir = "logs"
)
