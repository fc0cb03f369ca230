// Package headless provides a frontend without any input or output device.
// It is used for benchmarking and automated runs of ROMs.
package headless

import (
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/screen"
)

// Headless renders into an internal buffer and quits after a fixed number of frames.
type Headless struct {
	maxFrames int
	frames    int
	last      []bool
}

// New returns a headless frontend that requests to quit after maxFrames
// rendered frames. A maxFrames of 0 runs until the context is cancelled.
func New(maxFrames int) *Headless {
	return &Headless{
		maxFrames: maxFrames,
		last:      make([]bool, screen.Size),
	}
}

// Poll implements host.Input.
func (h *Headless) Poll(_ host.Keypad) (bool, error) {
	return h.maxFrames > 0 && h.frames >= h.maxFrames, nil
}

// Render implements host.Display and keeps a copy of the frame.
func (h *Headless) Render(buffer []bool) error {
	copy(h.last, buffer)
	h.frames++
	return nil
}

// Close implements host.Frontend.
func (h *Headless) Close() error {
	return nil
}

// LastFrame returns the most recently rendered frame.
func (h *Headless) LastFrame() []bool {
	return h.last
}

// String renders the last frame as text, one line per row.
func (h *Headless) String() string {
	buf := make([]byte, 0, screen.Size+screen.Height)
	for y := 0; y < screen.Height; y++ {
		for x := 0; x < screen.Width; x++ {
			if h.last[y*screen.Width+x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
