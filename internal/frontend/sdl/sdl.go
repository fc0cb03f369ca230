// Package sdl implements a frontend using an SDL2 window for video and
// keyboard input and an SDL audio device for the buzzer.
package sdl

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/retroenv/retrochip8/internal/buzzer"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/screen"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "retrochip8"

// SDL requires all video calls to originate from the main thread.
func init() {
	runtime.LockOSThread()
}

var errInvalidScale = errors.New("scale must be positive")

// Options contains the window settings.
type Options struct {
	Scale     int
	Colors    frontend.Colors
	FrameRate int
}

// SDL is a frontend rendering into a scaled window.
type SDL struct {
	logger   *log.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	colors   frontend.Colors

	audio         sdl.AudioDeviceID
	hasAudio      bool
	wave          *buzzer.Wave
	samples       []byte
	queueLimit    uint32
	lastSoundFlag bool
}

// New creates the window and opens the audio device. A missing audio
// device is logged and sound is disabled.
func New(logger *log.Logger, opts Options) (*SDL, error) {
	if opts.Scale <= 0 {
		return nil, errInvalidScale
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = host.DefaultFrameRate
	}

	if err := sdl.Init(uint32(sdl.INIT_VIDEO | sdl.INIT_AUDIO)); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	s := &SDL{
		logger: logger,
		scale:  int32(opts.Scale),
		colors: opts.Colors,
	}

	var err error
	s.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		screen.Width*s.scale, screen.Height*s.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	s.renderer, err = sdl.CreateRenderer(s.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = s.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	if err := s.openAudio(opts.FrameRate); err != nil {
		logger.Warn("Audio disabled", log.Err(err))
	}

	return s, nil
}

func (s *SDL) openAudio(frameRate int) error {
	samples := buzzer.SamplesPerFrame(buzzer.SampleRate, frameRate)
	spec := &sdl.AudioSpec{
		Freq:     buzzer.SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(samples),
	}

	var actual sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}

	s.audio = id
	s.hasAudio = true
	s.wave = buzzer.NewWave(int(actual.Freq))
	s.samples = make([]byte, buzzer.SamplesPerFrame(int(actual.Freq), frameRate))
	// keep at most a few frames queued to limit the latency
	s.queueLimit = uint32(len(s.samples) * 3)

	sdl.PauseAudioDevice(id, false)
	return nil
}

// Poll implements host.Input. Escape or closing the window quits.
func (s *SDL) Poll(keys host.Keypad) (bool, error) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return true, nil

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return true, nil
			}
			key, ok := scancodeKey(ev.Keysym.Scancode)
			if !ok {
				continue
			}
			keys.PressKey(key, ev.Type == sdl.KEYDOWN)
		}
	}
	return false, nil
}

// Render implements host.Display.
func (s *SDL) Render(buffer []bool) error {
	bg, fg := s.colors.Background, s.colors.Foreground
	if err := s.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	if err := s.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := s.renderer.SetDrawColor(fg.R, fg.G, fg.B, fg.A); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}

	rect := sdl.Rect{W: s.scale, H: s.scale}
	for i, lit := range buffer {
		if !lit {
			continue
		}
		rect.X = int32(i%screen.Width) * s.scale
		rect.Y = int32(i/screen.Width) * s.scale
		if err := s.renderer.FillRect(&rect); err != nil {
			return fmt.Errorf("drawing pixel: %w", err)
		}
	}

	s.renderer.Present()
	return nil
}

// SetSound implements host.Speaker. One frame worth of samples is queued
// per call while the tone is playing.
func (s *SDL) SetSound(playing bool) error {
	if !s.hasAudio {
		return nil
	}

	if !playing {
		if s.lastSoundFlag {
			sdl.ClearQueuedAudio(s.audio)
		}
		s.lastSoundFlag = false
		return nil
	}
	s.lastSoundFlag = true

	if sdl.GetQueuedAudioSize(s.audio) > s.queueLimit {
		return nil
	}
	s.wave.Fill(s.samples)
	if err := sdl.QueueAudio(s.audio, s.samples); err != nil {
		return fmt.Errorf("queueing audio: %w", err)
	}
	return nil
}

// Close releases all SDL resources.
func (s *SDL) Close() error {
	if s.hasAudio {
		sdl.CloseAudioDevice(s.audio)
	}

	var errs []error
	if err := s.renderer.Destroy(); err != nil {
		errs = append(errs, fmt.Errorf("destroying renderer: %w", err))
	}
	if err := s.window.Destroy(); err != nil {
		errs = append(errs, fmt.Errorf("destroying window: %w", err))
	}
	sdl.Quit()
	return errors.Join(errs...)
}
