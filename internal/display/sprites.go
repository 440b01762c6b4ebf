package display

// SpriteID names a built-in bitmap.
type SpriteID int

const (
	SpriteDino SpriteID = iota
	SpriteCactus
)

// SpriteSize is the edge length of every built-in sprite.
const SpriteSize = 8

// Rows are top to bottom, bit 7 is the leftmost pixel.
var sprites = map[SpriteID][SpriteSize]uint8{
	SpriteDino: {
		0b00001110,
		0b00001011,
		0b00001111,
		0b10011100,
		0b11111110,
		0b01111100,
		0b00101000,
		0b00100100,
	},
	SpriteCactus: {
		0b00011000,
		0b00011000,
		0b01011010,
		0b01011010,
		0b01111110,
		0b00011000,
		0b00011000,
		0b00011000,
	},
}

// String returns the sprite name.
func (id SpriteID) String() string {
	switch id {
	case SpriteDino:
		return "dino"
	case SpriteCactus:
		return "cactus"
	default:
		return "unknown"
	}
}
