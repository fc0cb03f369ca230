// Package app wires the emulator components together for a ROM run.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/buzzer"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/sdl"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/statsview"
	"github.com/retroenv/retrochip8/internal/system"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// frontendConstructor creates the frontend selected by the options.
type frontendConstructor func(logger *log.Logger, opts options.Program, colors frontend.Colors) (host.Frontend, error)

var frontends = map[string]frontendConstructor{
	frontend.SDL: func(logger *log.Logger, opts options.Program, colors frontend.Colors) (host.Frontend, error) {
		return sdl.New(logger, sdl.Options{
			Scale:     opts.Scale,
			Colors:    colors,
			FrameRate: opts.FrameRate,
		})
	},
	frontend.Terminal: func(logger *log.Logger, _ options.Program, colors frontend.Colors) (host.Frontend, error) {
		return terminal.New(logger, terminal.Options{Colors: colors})
	},
	frontend.Headless: func(_ *log.Logger, opts options.Program, _ frontend.Colors) (host.Frontend, error) {
		return headless.New(opts.Frames), nil
	},
}

// Run loads the ROM and runs it until the frontend requests to quit or
// the context is cancelled.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) (err error) {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	PrintInfo(logger, opts, len(rom))

	machine, err := system.New(logger, rom, config.Machine(opts))
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	colors, err := frontend.ParseColors(opts.Foreground, opts.Background)
	if err != nil {
		return err
	}

	constructor, ok := frontends[opts.Frontend]
	if !ok {
		return fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
	front, err := constructor(logger, opts, colors)
	if err != nil {
		return fmt.Errorf("creating %s frontend: %w", opts.Frontend, err)
	}
	defer func() {
		if closeErr := front.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing frontend: %w", closeErr))
		}
	}()

	runner := host.New(logger, machine, front, config.Host(opts))

	if opts.Wav != "" {
		recorder, err := buzzer.NewRecorder(opts.Wav, opts.FrameRate)
		if err != nil {
			return fmt.Errorf("creating sound recorder: %w", err)
		}
		defer func() {
			if closeErr := recorder.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("closing sound recorder: %w", closeErr))
			}
		}()
		runner.AddSpeaker(recorder)
	}

	if opts.Statsview {
		statsview.Launch(logger)
	}

	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("running ROM: %w", err)
	}

	logger.Debug("Emulation finished", log.Int("frames", runner.Frames()))
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the information about the ROM to run.
func PrintInfo(logger *log.Logger, opts options.Program, size int) {
	if opts.Quiet {
		return
	}
	logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("frontend", opts.Frontend),
	)
}
