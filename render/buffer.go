package render

// Buffer is a row-major cell grid with touch tracking
// Shells compose a frame into it, then flush every cell to the screen
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a cleared buffer of the given size
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Width returns the column count
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the row count
func (b *Buffer) Height() int {
	return b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell; out of bounds writes are dropped
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	i := y*b.width + x
	b.cells[i] = c
	b.touched[i] = true
}

// Get returns the cell at (x, y), empty when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether (x, y) was written since the last Clear
func (b *Buffer) Touched(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.touched[y*b.width+x]
}

// Text writes s left to right starting at (x, y)
func (b *Buffer) Text(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.Set(x, y, Cell{Rune: r, Fg: fg, Bg: RgbBackground})
		x++
	}
}

// Flush calls fn for every cell in row-major order
func (b *Buffer) Flush(fn func(x, y int, c Cell)) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}
