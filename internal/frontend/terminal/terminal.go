// Package terminal implements a frontend rendering into a text terminal.
package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/screen"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// upperHalfBlock shows the upper pixel of a cell in the foreground colour
// and the lower pixel in the background colour.
const upperHalfBlock = '▀'

// DefaultHoldFrames is the number of frames a key stays pressed after the
// last key event. Terminals only report key presses, repeated presses of a
// held key keep it pressed.
const DefaultHoldFrames = 10

// Options contains the terminal settings.
type Options struct {
	Colors     frontend.Colors
	HoldFrames int

	// Screen overrides the terminal screen, used for testing.
	Screen tcell.Screen
}

// Terminal is a frontend drawing two framebuffer rows per terminal row.
type Terminal struct {
	logger *log.Logger
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	fg tcell.Color
	bg tcell.Color

	holdFrames int
	held       map[uint8]int // remaining frames per held key
}

// New initializes the terminal screen and starts the event pump.
func New(logger *log.Logger, opts Options) (*Terminal, error) {
	if opts.HoldFrames <= 0 {
		opts.HoldFrames = DefaultHoldFrames
	}

	scr := opts.Screen
	if scr == nil {
		var err error
		scr, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("creating terminal screen: %w", err)
		}
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	scr.HideCursor()
	scr.Clear()

	t := &Terminal{
		logger:     logger,
		screen:     scr,
		events:     make(chan tcell.Event, 64),
		done:       make(chan struct{}),
		fg:         tcellColor(opts.Colors.Foreground),
		bg:         tcellColor(opts.Colors.Background),
		holdFrames: opts.HoldFrames,
		held:       map[uint8]int{},
	}

	go t.pumpEvents()
	return t, nil
}

// pumpEvents forwards the blocking tcell events to the event channel until
// the screen is finalized.
func (t *Terminal) pumpEvents() {
	for {
		event := t.screen.PollEvent()
		if event == nil {
			return
		}
		select {
		case t.events <- event:
		case <-t.done:
			return
		}
	}
}

// Poll implements host.Input. Escape or Ctrl-C quits.
func (t *Terminal) Poll(keys host.Keypad) (bool, error) {
	pressed := set.New[uint8]()

	for drained := false; !drained; {
		select {
		case event := <-t.events:
			switch ev := event.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return true, nil
				case tcell.KeyRune:
					if key, ok := keymap.Key(ev.Rune()); ok {
						pressed.Add(key)
					}
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			drained = true
		}
	}

	for key := range pressed {
		if _, ok := t.held[key]; !ok {
			keys.PressKey(key, true)
		}
		t.held[key] = t.holdFrames
	}

	for key, remaining := range t.held {
		if pressed.Contains(key) {
			continue
		}
		remaining--
		if remaining > 0 {
			t.held[key] = remaining
			continue
		}
		delete(t.held, key)
		keys.PressKey(key, false)
	}

	return false, nil
}

// Render implements host.Display.
func (t *Terminal) Render(buffer []bool) error {
	for row := 0; row < screen.Height/2; row++ {
		for x := 0; x < screen.Width; x++ {
			top := buffer[2*row*screen.Width+x]
			bottom := buffer[(2*row+1)*screen.Width+x]
			style := tcell.StyleDefault.
				Foreground(t.pixelColor(top)).
				Background(t.pixelColor(bottom))
			t.screen.SetContent(x, row, upperHalfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) pixelColor(lit bool) tcell.Color {
	if lit {
		return t.fg
	}
	return t.bg
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	close(t.done)
	t.screen.Fini()
	return nil
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
