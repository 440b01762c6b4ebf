package display

// CellMode selects how many framebuffer pixels one terminal cell shows.
type CellMode int

const (
	HalfBlock CellMode = iota // 1x2 pixels per cell
	Quadrant                  // 2x2 pixels per cell
)

// halfBlocks is indexed by top | bottom<<1.
var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

// quadrants is indexed by TL | TR<<1 | BL<<2 | BR<<3.
var quadrants = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// CellSize returns the pixels covered by one cell.
func (m CellMode) CellSize() (w, h int) {
	if m == Quadrant {
		return 2, 2
	}
	return 1, 2
}

// GridSize returns the cell grid needed for a width x height framebuffer.
func (m CellMode) GridSize(width, height int) (cols, rows int) {
	cw, ch := m.CellSize()
	return (width + cw - 1) / cw, (height + ch - 1) / ch
}

// Glyph returns the block character for cell (cx, cy) of fb, following
// inversion. Pixels outside the framebuffer read as unlit.
func (fb *Framebuffer) Glyph(cx, cy int, mode CellMode) rune {
	cw, ch := mode.CellSize()
	x, y := cx*cw, cy*ch
	if mode == Quadrant {
		return quadrants[fb.bit(x, y)|fb.bit(x+1, y)<<1|fb.bit(x, y+1)<<2|fb.bit(x+1, y+1)<<3]
	}
	return halfBlocks[fb.bit(x, y)|fb.bit(x, y+1)<<1]
}

func (fb *Framebuffer) bit(x, y int) int {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	if fb.Lit(x, y) {
		return 1
	}
	return 0
}
