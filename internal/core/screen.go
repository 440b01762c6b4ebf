package core

import "strings"

// Screen is a grid of terminal cells the framebuffer is converted into
// before styling. Each cell holds one block glyph.
type Screen struct {
	width, height int
	cells         []rune // Row-major
}

// NewScreen creates a blank screen of width x height cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height, cells: make([]rune, width*height)}
	s.Clear()
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = ' '
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Set stores r at (x, y). Writes outside the grid are dropped.
func (s *Screen) Set(x, y int, r rune) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = r
	}
}

// Get returns the cell at (x, y), or a blank outside the grid.
func (s *Screen) Get(x, y int) rune {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return ' '
}

// Row returns row y as a string. Rows outside the grid are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y*s.width : (y+1)*s.width])
}

// String joins all rows with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
