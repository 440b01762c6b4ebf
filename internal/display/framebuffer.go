package display

// Framebuffer is a 1-bit bitmap implementing Renderer. Drawing only ever
// sets pixels; Clear is the only way to unset them. Inversion and contrast
// are kept as display state and applied by whoever presents the buffer.
type Framebuffer struct {
	width    int
	height   int
	pixels   []bool
	invert   bool
	contrast uint8
	frames   int

	// OnPresent, if set, is called at the end of every Present.
	OnPresent func(fb *Framebuffer)
}

// NewFramebuffer creates a cleared framebuffer at full contrast.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:    width,
		height:   height,
		pixels:   make([]bool, width*height),
		contrast: 255,
	}
}

// Width returns the width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Clear unsets every pixel. Invert and contrast are left alone.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = false
	}
}

// SetPixel sets or unsets a pixel. Out-of-bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = on
}

// Pixel reports the stored bit at (x, y), ignoring inversion.
func (fb *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return false
	}
	return fb.pixels[y*fb.width+x]
}

// Lit reports whether (x, y) is shown lit, taking inversion into account.
func (fb *Framebuffer) Lit(x, y int) bool {
	return fb.Pixel(x, y) != fb.invert
}

// DrawLine draws a one pixel line between two points, inclusive.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		fb.SetPixel(x0, y0, true)
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

// DrawText draws s with its top-left corner at (x, y), one 8x8 cell per rune.
func (fb *Framebuffer) DrawText(s string, x, y int) {
	for _, r := range s {
		if g, ok := glyph(r); ok {
			for row, bits := range g {
				for col := 0; col < 5; col++ {
					if bits&(1<<(4-col)) != 0 {
						fb.SetPixel(x+col, y+row, true)
					}
				}
			}
		}
		x += CharWidth
	}
}

// DrawSprite blits a built-in sprite with its top-left corner at (x, y).
// Unset sprite bits are transparent. Unknown IDs draw nothing.
func (fb *Framebuffer) DrawSprite(id SpriteID, x, y int) {
	bitmap, ok := sprites[id]
	if !ok {
		return
	}
	for row, bits := range bitmap {
		for col := 0; col < SpriteSize; col++ {
			if bits&(0x80>>col) != 0 {
				fb.SetPixel(x+col, y+row, true)
			}
		}
	}
}

// SetInvert switches inverted display on or off.
func (fb *Framebuffer) SetInvert(on bool) {
	fb.invert = on
}

// Inverted reports whether the display is inverted.
func (fb *Framebuffer) Inverted() bool {
	return fb.invert
}

// SetContrast sets the display contrast.
func (fb *Framebuffer) SetContrast(level uint8) {
	fb.contrast = level
}

// Contrast returns the current contrast level.
func (fb *Framebuffer) Contrast() uint8 {
	return fb.contrast
}

// Present marks the end of a frame.
func (fb *Framebuffer) Present() {
	fb.frames++
	if fb.OnPresent != nil {
		fb.OnPresent(fb)
	}
}

// Frames returns how many times Present has been called.
func (fb *Framebuffer) Frames() int {
	return fb.frames
}

// Pages packs the stored bits in SSD1306 page order: one byte per column
// per 8-row page, least significant bit at the top. Inversion is not applied.
func (fb *Framebuffer) Pages() []byte {
	pages := (fb.height + 7) / 8
	out := make([]byte, pages*fb.width)
	for p := 0; p < pages; p++ {
		for x := 0; x < fb.width; x++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				if fb.Pixel(x, p*8+bit) {
					b |= 1 << bit
				}
			}
			out[p*fb.width+x] = b
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
