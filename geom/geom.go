package geom

import (
	"fmt"
	"math"
)

// Point is an integer playfield coordinate
// X increases to the right, Y increases downward (screen coordinates)
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns "(x,y)"
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is a width/height pair, used for the playfield and entity bodies
type Size struct {
	W, H int
}

// Segment is one drawn trail stroke
type Segment struct {
	From, To Point
}

// Seg is a convenience constructor for Segment
func Seg(from, to Point) Segment {
	return Segment{From: from, To: to}
}

// Len returns the Euclidean distance between the endpoints
func (s Segment) Len() float64 {
	dx := Abs(s.From.X - s.To.X)
	dy := Abs(s.From.Y - s.To.Y)
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// String returns "from->to"
func (s Segment) String() string {
	return s.From.String() + "->" + s.To.String()
}

// Clamp restricts val to [lo, hi]
// hi wins when the range is inverted
func Clamp(val, lo, hi int) int {
	if val > hi {
		return hi
	}
	if val < lo {
		return lo
	}
	return val
}

// Abs returns the absolute value of x
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1 depending on the sign of x
func Sign(x int) int {
	if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return 0
}
