// Package host implements the fixed rate run loop around the processor.
// It owns the only clock of the emulation: timers are decremented once per
// frame and a fixed number of instructions is executed per frame.
package host

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Default pacing, approximating the relative clock rates of the original hardware.
const (
	DefaultFrameRate      = 60
	DefaultCyclesPerFrame = 9
)

// Keypad receives key state changes.
type Keypad interface {
	PressKey(key uint8, pressed bool)
}

// Machine is the emulated system driven by the runner.
type Machine interface {
	Keypad
	Tick() error
	TickTimers()
	ScreenBuffer() []bool
	IsSoundPlaying() bool
}

// Input polls host input devices and forwards key changes to the keypad.
type Input interface {
	// Poll processes pending input events and returns true if the user
	// requested to quit.
	Poll(keys Keypad) (bool, error)
}

// Display presents the framebuffer.
type Display interface {
	Render(buffer []bool) error
}

// Speaker receives the sound state once per frame.
type Speaker interface {
	SetSound(playing bool) error
}

// Frontend combines the input and output devices of a host.
type Frontend interface {
	Input
	Display
	Close() error
}

// Config contains the run loop pacing.
type Config struct {
	FrameRate      int // frames per second, timers tick once per frame
	CyclesPerFrame int // instructions executed per frame
}

// Runner drives a machine at a fixed frame rate.
type Runner struct {
	logger   *log.Logger
	machine  Machine
	frontend Frontend
	speakers []Speaker
	cfg      Config

	frames int
}

// New returns a new runner. A frontend that implements Speaker is
// registered as speaker automatically.
func New(logger *log.Logger, machine Machine, frontend Frontend, cfg Config) *Runner {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultFrameRate
	}
	if cfg.CyclesPerFrame <= 0 {
		cfg.CyclesPerFrame = DefaultCyclesPerFrame
	}

	r := &Runner{
		logger:   logger,
		machine:  machine,
		frontend: frontend,
		cfg:      cfg,
	}
	if speaker, ok := frontend.(Speaker); ok {
		r.speakers = append(r.speakers, speaker)
	}
	return r
}

// AddSpeaker registers an additional sound sink.
func (r *Runner) AddSpeaker(speaker Speaker) {
	r.speakers = append(r.speakers, speaker)
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() int {
	return r.frames
}

// Run executes frames until the frontend requests to quit, the context is
// cancelled or the machine returns an error. A quit request returns nil,
// a cancelled context returns an error wrapping the context error.
func (r *Runner) Run(ctx context.Context) error {
	frameDuration := time.Second / time.Duration(r.cfg.FrameRate)
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	r.logger.Debug("Starting run loop",
		log.Int("frame_rate", r.cfg.FrameRate),
		log.Int("cycles_per_frame", r.cfg.CyclesPerFrame))

	for {
		quit, err := r.frame()
		if err != nil {
			return err
		}
		if quit {
			r.logger.Debug("Quit requested", log.Int("frames", r.frames))
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("after %d frames: %w", r.frames, ctx.Err())
		case <-ticker.C:
		}
	}
}

// frame runs a single frame: input, timers, cycles, sound and presentation.
func (r *Runner) frame() (bool, error) {
	quit, err := r.frontend.Poll(r.machine)
	if err != nil {
		return false, fmt.Errorf("polling input: %w", err)
	}
	if quit {
		return true, nil
	}

	r.machine.TickTimers()
	for i := 0; i < r.cfg.CyclesPerFrame; i++ {
		if err := r.machine.Tick(); err != nil {
			return false, fmt.Errorf("frame %d: %w", r.frames, err)
		}
	}

	playing := r.machine.IsSoundPlaying()
	for _, speaker := range r.speakers {
		if err := speaker.SetSound(playing); err != nil {
			return false, fmt.Errorf("updating sound: %w", err)
		}
	}

	if err := r.frontend.Render(r.machine.ScreenBuffer()); err != nil {
		return false, fmt.Errorf("rendering frame: %w", err)
	}

	r.frames++
	return false, nil
}
