// Package frontend contains helpers shared by the host frontends.
package frontend

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Names of the available frontends.
const (
	SDL      = "sdl"
	Terminal = "terminal"
	Headless = "headless"
)

// Default colours of lit and unlit pixels.
var (
	DefaultForeground = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	DefaultBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Colors contains the pixel colours of a frontend.
type Colors struct {
	Foreground color.RGBA
	Background color.RGBA
}

// ParseColors parses the foreground and background colour options,
// empty values select the defaults.
func ParseColors(fg, bg string) (Colors, error) {
	colors := Colors{
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}

	var err error
	if fg != "" {
		if colors.Foreground, err = ParseColor(fg); err != nil {
			return colors, fmt.Errorf("parsing foreground colour: %w", err)
		}
	}
	if bg != "" {
		if colors.Background, err = ParseColor(bg); err != nil {
			return colors, fmt.Errorf("parsing background colour: %w", err)
		}
	}
	return colors, nil
}

// ParseColor parses a colour in the hex notation RRGGBB with an optional
// leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour '%s': expected 6 hex digits", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour '%s': %w", s, err)
	}

	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}, nil
}
