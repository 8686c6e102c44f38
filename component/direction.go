package component

// Direction is the player's movement command
type Direction uint8

const (
	Stopped Direction = iota
	Up
	Down
	Left
	Right
)

// Axis groups directions that do not start a new trail segment when swapped
type Axis uint8

const (
	AxisNone Axis = iota
	AxisVertical
	AxisHorizontal
)

// Axis returns the axis the direction moves along
func (d Direction) Axis() Axis {
	switch d {
	case Up, Down:
		return AxisVertical
	case Left, Right:
		return AxisHorizontal
	default:
		return AxisNone
	}
}

// Delta returns the unit step for the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Rotation returns the sprite rotation in degrees, sprites face right at 0
func (d Direction) Rotation() float64 {
	switch d {
	case Down:
		return 90
	case Left:
		return 180
	case Up:
		return 270
	default:
		return 0
	}
}

// String returns human-readable direction name
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Stopped"
	}
}
