package render

// Cell is one terminal character with its colors
// Rune 0 is an empty cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

var emptyCell = Cell{Rune: 0, Fg: RgbBackground, Bg: RgbBackground}
