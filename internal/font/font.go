// Package font contains the built-in hexadecimal digit sprites.
package font

// Font table layout in memory.
const (
	// BaseAddress is where the glyph table is loaded in memory.
	BaseAddress = 0x000

	// GlyphSize is the number of bytes (rows) of a single glyph.
	GlyphSize = 5

	// GlyphCount is the number of glyphs, one per hex digit.
	GlyphCount = 16
)

// Glyphs contains the 4x5 pixel sprites of the digits 0-F.
var Glyphs = [GlyphCount * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Address returns the memory address of the glyph for the given digit.
// Only the low nibble of digit is used.
func Address(digit uint8) uint16 {
	return BaseAddress + uint16(digit&0x0F)*GlyphSize
}
