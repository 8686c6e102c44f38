package geom

// Box is a closed axis-aligned bounding box
type Box struct {
	Min, Max Point
}

// BoundsOf returns the smallest Box containing every point
// Zero points yields the zero Box
func BoundsOf(points ...Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

// Contains reports whether p lies inside the box, inclusive on all four edges
func (b Box) Contains(p Point) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X && b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// String returns "[min..max]"
func (b Box) String() string {
	return "[" + b.Min.String() + ".." + b.Max.String() + "]"
}

// Rect is a half-open rectangle anchored at its top-left corner
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Overlaps reports whether two rectangles share any area
func (r Rect) Overlaps(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}
