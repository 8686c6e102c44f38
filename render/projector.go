package render

import (
	"github.com/lixenwraith/boxes/geom"
)

// Projector maps playfield units onto a terminal grid
// Each axis scales independently so the whole field always fits
type Projector struct {
	field      geom.Size
	cols, rows int
}

// NewProjector creates a projector for a cols x rows grid
func NewProjector(field geom.Size, cols, rows int) Projector {
	return Projector{field: field, cols: cols, rows: rows}
}

// Cell returns the grid cell containing p, clamped to the grid
func (p Projector) Cell(pt geom.Point) (x, y int) {
	return p.scale(pt.X, p.field.W, p.cols), p.scale(pt.Y, p.field.H, p.rows)
}

// Span returns how many cells a playfield length covers on each axis, at least one
func (p Projector) Span(size geom.Size) (w, h int) {
	w = max(1, size.W*p.cols/max(1, p.field.W))
	h = max(1, size.H*p.rows/max(1, p.field.H))
	return w, h
}

func (p Projector) scale(v, extent, cells int) int {
	if cells <= 0 || extent <= 0 {
		return 0
	}
	return geom.Clamp(v*cells/extent, 0, cells-1)
}
