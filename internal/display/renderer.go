// Package display is the render sink of the game: a small monochrome
// drawing API plus a 1-bit framebuffer that implements it. Hardware drivers
// and terminal front-ends present the framebuffer; the game only ever talks
// to Renderer.
package display

// Renderer is the drawing surface the game draws one frame on per tick.
// Calls are synchronous and cannot fail; device errors belong to the
// driver behind the Renderer.
type Renderer interface {
	Clear()
	DrawLine(x0, y0, x1, y1 int)
	DrawText(s string, x, y int)
	DrawSprite(id SpriteID, x, y int)
	SetInvert(on bool)
	SetContrast(level uint8)
	Present()
}

// CharWidth is the horizontal advance of one text character in pixels.
const CharWidth = 8

// TextWidth returns the pixel width of s when drawn with DrawText.
func TextWidth(s string) int {
	return len([]rune(s)) * CharWidth
}
