package parameter

// Player
const (
	// PlayerStartX is the spawn X, half a sprite in from the left edge
	PlayerStartX = SpriteSize / 2

	// PlayerStartY is the spawn Y, half a sprite in from the top edge
	PlayerStartY = SpriteSize / 2

	// PlayerStep is the distance moved per frame while a direction is held
	PlayerStep = 1
)
