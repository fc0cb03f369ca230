// Package screen provides the CHIP-8 64x32 monochrome framebuffer.
package screen

// Screen dimensions, the framebuffer never changes size. Renderers scale it up.
const (
	Width  = 64
	Height = 32
	Size   = Width * Height
)

// spriteWidth is the fixed width of a sprite row in pixels.
const spriteWidth = 8

// SpriteReader provides read access to sprite bitmap bytes.
type SpriteReader interface {
	ReadU8(address uint16) uint8
}

// Screen is a row-major grid of lit/unlit pixels.
type Screen struct {
	pixels [Size]bool
}

// New returns a new cleared screen.
func New() *Screen {
	return &Screen{}
}

// Buffer returns the current pixels, row-major with a width of Width.
// The returned slice must not be modified by the caller.
func (s *Screen) Buffer() []bool {
	return s.pixels[:]
}

// Clear turns off all pixels.
func (s *Screen) Clear() {
	s.pixels = [Size]bool{}
}

// Pixel returns whether the pixel at the given coordinates is lit.
func (s *Screen) Pixel(x, y int) bool {
	return s.pixels[y*Width+x]
}

// Draw XORs an 8 pixel wide sprite of rows height onto the screen at x, y.
// The sprite rows are read from mem starting at address. Coordinates wrap
// around the screen edges. It returns true if any lit pixel was turned off.
func (s *Screen) Draw(mem SpriteReader, address uint16, x, y, rows uint8) bool {
	collision := false

	for row := uint8(0); row < rows; row++ {
		line := mem.ReadU8(address + uint16(row))
		py := (int(y) + int(row)) % Height

		for col := 0; col < spriteWidth; col++ {
			if line&(0x80>>col) == 0 {
				continue
			}

			px := (int(x) + col) % Width
			idx := py*Width + px
			collision = collision || s.pixels[idx]
			s.pixels[idx] = !s.pixels[idx]
		}
	}

	return collision
}
