package render

import (
	"github.com/lixenwraith/boxes/geom"
)

// Line plots every cell between (x0, y0) and (x1, y1) inclusive using Bresenham's algorithm
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := geom.Abs(x1 - x0)
	dy := -geom.Abs(y1 - y0)
	sx, sy := geom.Sign(x1-x0), geom.Sign(y1-y0)
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
