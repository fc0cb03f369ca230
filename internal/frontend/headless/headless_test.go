package headless

import (
	"context"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/screen"
	"github.com/retroenv/retrochip8/internal/system"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestQuitsAfterFrames(t *testing.T) {
	h := New(2)

	quit, err := h.Poll(nil)
	assert.NoError(t, err)
	assert.False(t, quit)

	assert.NoError(t, h.Render(make([]bool, screen.Size)))
	assert.NoError(t, h.Render(make([]bool, screen.Size)))

	quit, err = h.Poll(nil)
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestRunDrawsGlyph(t *testing.T) {
	rom := []byte{
		0x60, 0x0A, // V0 = $A
		0xF0, 0x29, // I = glyph of V0
		0x61, 0x00, // V1 = 0
		0xD1, 0x15, // draw 5 rows at V1, V1
		0x12, 0x08, // loop forever
	}

	logger := log.NewTestLogger(t)
	proc, err := system.New(logger, rom, system.Config{})
	assert.NoError(t, err)

	frontend := New(3)
	runner := host.New(logger, proc, frontend, host.Config{FrameRate: 1000})
	assert.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, 3, runner.Frames())

	lines := strings.Split(frontend.String(), "\n")
	// glyph A: F0 90 F0 90 90
	assert.True(t, strings.HasPrefix(lines[0], "####...."))
	assert.True(t, strings.HasPrefix(lines[1], "#..#...."))
	assert.True(t, strings.HasPrefix(lines[2], "####...."))
	assert.True(t, strings.HasPrefix(lines[4], "#..#...."))
	assert.True(t, strings.HasPrefix(lines[5], "........"))
	assert.True(t, frontend.LastFrame()[0])
}
