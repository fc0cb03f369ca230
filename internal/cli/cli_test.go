package cli

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := ParseFlags([]string{"game.ch8"})
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, frontend.SDL, opts.Frontend)
	assert.Equal(t, 20, opts.Scale)
	assert.Equal(t, 9, opts.CyclesPerFrame)
	assert.Equal(t, 60, opts.FrameRate)
	assert.Equal(t, 600, opts.Frames)
	assert.Equal(t, int64(0), opts.Seed)
	assert.False(t, opts.Debug)
}

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags([]string{
		"-frontend", "Headless", "-scale", "10", "-fg", "#FFFFFF", "-bg", "000080",
		"-cycles", "20", "-fps", "30", "-frames", "0", "-seed", "42",
		"-wav", "out.wav", "-statsview", "-debug", "game.ch8",
	})
	assert.NoError(t, err)
	assert.Equal(t, frontend.Headless, opts.Frontend)
	assert.Equal(t, 10, opts.Scale)
	assert.Equal(t, "#FFFFFF", opts.Foreground)
	assert.Equal(t, "000080", opts.Background)
	assert.Equal(t, 20, opts.CyclesPerFrame)
	assert.Equal(t, 30, opts.FrameRate)
	assert.Equal(t, 0, opts.Frames)
	assert.Equal(t, int64(42), opts.Seed)
	assert.Equal(t, "out.wav", opts.Wav)
	assert.True(t, opts.Statsview)
	assert.True(t, opts.Debug)
}

func TestParseFlagsInputFlag(t *testing.T) {
	opts, err := ParseFlags([]string{"-i", "game.ch8"})
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
}

func TestParseFlagsUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no rom", []string{}},
		{"unknown flag", []string{"-unknown", "game.ch8"}},
		{"flag after rom", []string{"game.ch8", "-debug"}},
		{"multiple roms", []string{"a.ch8", "b.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlagsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"frontend", []string{"-frontend", "vga", "game.ch8"}, "unsupported frontend"},
		{"scale", []string{"-scale", "0", "game.ch8"}, "invalid scale"},
		{"cycles", []string{"-cycles", "-1", "game.ch8"}, "invalid cycles"},
		{"fps", []string{"-fps", "0", "game.ch8"}, "invalid frame rate"},
		{"frames", []string{"-frames", "-5", "game.ch8"}, "invalid frame count"},
		{"colour", []string{"-fg", "green", "game.ch8"}, "foreground"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}
