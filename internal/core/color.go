package core

import "strings"

// Color is the ink colour used to draw lit pixels in terminal front-ends.
type Color uint8

// Predefined ink colours.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGreen
	ColorAmber
	ColorCyan
	ColorBlue
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"white":   ColorWhite,
	"green":   ColorGreen,
	"amber":   ColorAmber,
	"cyan":    ColorCyan,
	"blue":    ColorBlue,
}

// ParseColor maps a colour name to a Color. Unknown names report false.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
