package display

import (
	"slices"
	"testing"
)

func countLit(fb *Framebuffer) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func TestFramebufferImplementsRenderer(t *testing.T) {
	var _ Renderer = NewFramebuffer(128, 64)
	var _ Renderer = NewRecorder()
}

func TestFramebufferSetPixelBounds(t *testing.T) {
	fb := NewFramebuffer(16, 8)

	fb.SetPixel(-1, 0, true)
	fb.SetPixel(16, 0, true)
	fb.SetPixel(0, 8, true)
	if countLit(fb) != 0 {
		t.Fatal("out of bounds writes should be ignored")
	}

	fb.SetPixel(3, 4, true)
	if !fb.Pixel(3, 4) {
		t.Error("Pixel(3, 4) should be set")
	}
	if fb.Pixel(-3, 4) {
		t.Error("out of bounds Pixel should be false")
	}
}

func TestFramebufferDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		points         [][2]int
	}{
		{"horizontal", 0, 51, 127, 51, nil},
		{"vertical", 5, 0, 5, 9, nil},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed diagonal", 3, 3, 0, 0, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(128, 64)
			fb.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1)

			if !fb.Pixel(tc.x0, tc.y0) || !fb.Pixel(tc.x1, tc.y1) {
				t.Error("line endpoints should be set")
			}
			for _, p := range tc.points {
				if !fb.Pixel(p[0], p[1]) {
					t.Errorf("expected (%d, %d) set", p[0], p[1])
				}
			}
		})
	}

	fb := NewFramebuffer(128, 64)
	fb.DrawLine(0, 51, 127, 51)
	if countLit(fb) != 128 {
		t.Errorf("ground line lit %d pixels, expected 128", countLit(fb))
	}
}

func TestFramebufferDrawSprite(t *testing.T) {
	fb := NewFramebuffer(32, 16)
	fb.DrawSprite(SpriteCactus, 4, 2)

	// Top row of the cactus is 0b00011000.
	if fb.Pixel(4+2, 2) || !fb.Pixel(4+3, 2) || !fb.Pixel(4+4, 2) || fb.Pixel(4+5, 2) {
		t.Error("cactus top row drawn incorrectly")
	}

	before := countLit(fb)
	fb.DrawSprite(SpriteID(99), 0, 0)
	if countLit(fb) != before {
		t.Error("unknown sprite should draw nothing")
	}
}

func TestFramebufferSpriteIsTransparent(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.SetPixel(0, 0, true) // sprite bit (0,0) is clear for the dino
	fb.DrawSprite(SpriteDino, 0, 0)

	if !fb.Pixel(0, 0) {
		t.Error("unset sprite bits must not clear existing pixels")
	}
}

func TestFramebufferDrawText(t *testing.T) {
	fb := NewFramebuffer(64, 16)
	fb.DrawText("1", 0, 0)

	// '1' row 0 is 0b00100: only column 2 lit.
	if !fb.Pixel(2, 0) || fb.Pixel(1, 0) || fb.Pixel(3, 0) {
		t.Error("glyph '1' top row drawn incorrectly")
	}

	upper := NewFramebuffer(64, 16)
	upper.DrawText("GAME", 0, 0)
	lower := NewFramebuffer(64, 16)
	lower.DrawText("game", 0, 0)
	if !slices.Equal(upper.Pages(), lower.Pages()) {
		t.Error("lower case should render like upper case")
	}

	blank := NewFramebuffer(64, 16)
	blank.DrawText("  ", 0, 0)
	if countLit(blank) != 0 {
		t.Error("spaces should draw nothing")
	}

	if TextWidth("120") != 24 {
		t.Errorf("TextWidth(120) = %d, expected 24", TextWidth("120"))
	}
}

func TestFramebufferInvertAndContrast(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(1, 1, true)

	if fb.Contrast() != 255 {
		t.Errorf("default contrast = %d, expected 255", fb.Contrast())
	}

	fb.SetInvert(true)
	if fb.Lit(1, 1) || !fb.Lit(0, 0) {
		t.Error("inversion should flip Lit")
	}
	if !fb.Pixel(1, 1) {
		t.Error("inversion must not change stored pixels")
	}

	fb.Clear()
	if !fb.Inverted() {
		t.Error("Clear should keep inversion")
	}

	fb.SetContrast(40)
	if fb.Contrast() != 40 {
		t.Errorf("Contrast() = %d, expected 40", fb.Contrast())
	}
}

func TestFramebufferPresent(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	calls := 0
	fb.OnPresent = func(got *Framebuffer) {
		if got != fb {
			t.Error("OnPresent received a different framebuffer")
		}
		calls++
	}

	fb.Present()
	fb.Present()

	if fb.Frames() != 2 || calls != 2 {
		t.Errorf("Frames() = %d, hook calls = %d, expected 2 and 2", fb.Frames(), calls)
	}
}

func TestFramebufferPages(t *testing.T) {
	fb := NewFramebuffer(4, 16)
	fb.SetPixel(0, 0, true)
	fb.SetPixel(0, 7, true)
	fb.SetPixel(2, 9, true)

	pages := fb.Pages()
	if len(pages) != 8 {
		t.Fatalf("len(Pages()) = %d, expected 8", len(pages))
	}
	if pages[0] != 0x81 {
		t.Errorf("page 0 column 0 = %#x, expected 0x81", pages[0])
	}
	if pages[4+2] != 0x02 {
		t.Errorf("page 1 column 2 = %#x, expected 0x02", pages[6])
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Clear()
	r.DrawLine(0, 51, 127, 51)
	r.DrawText("10", 10, 10)
	r.DrawSprite(SpriteDino, 16, 42)
	r.SetInvert(true)
	r.SetContrast(255)
	r.Present()

	expected := []Op{OpClear, OpLine, OpText, OpSprite, OpInvert, OpContrast, OpPresent}
	if !slices.Equal(r.Ops(), expected) {
		t.Errorf("Ops() = %v, expected %v", r.Ops(), expected)
	}

	if got := r.Calls()[3].String(); got != "sprite(dino @16,42)" {
		t.Errorf("sprite call String() = %q", got)
	}

	r.Reset()
	if len(r.Calls()) != 0 {
		t.Error("Reset should drop all calls")
	}
}
