// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
)

const defaultScale = 20

// ParseFlags parses the given command line arguments, excluding the program name.
func ParseFlags(args []string) (options.Program, error) {
	flags := flag.NewFlagSet("retrochip8", flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(args)
	args = flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one ROM file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)

	validFrontends := []string{frontend.SDL, frontend.Terminal, frontend.Headless}
	valid := false
	for _, name := range validFrontends {
		if opts.Frontend == name {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(validFrontends, ", "))
	}

	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d: must be positive", opts.Scale)
	}
	if opts.CyclesPerFrame <= 0 {
		return fmt.Errorf("invalid cycles per frame %d: must be positive", opts.CyclesPerFrame)
	}
	if opts.FrameRate <= 0 {
		return fmt.Errorf("invalid frame rate %d: must be positive", opts.FrameRate)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d: must not be negative", opts.Frames)
	}

	if _, err := frontend.ParseColors(opts.Foreground, opts.Background); err != nil {
		return err
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Wav, "wav", "", "record the buzzer output to the given .wav file")
	flags.StringVar(&opts.Frontend, "frontend", frontend.SDL, "frontend to use (sdl/terminal/headless)")
	flags.BoolVar(&opts.Statsview, "statsview", false, "launch a local server offering runtime statistics")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.Scale, "scale", defaultScale, "window pixels per CHIP-8 pixel for the sdl frontend")
	flags.StringVar(&opts.Foreground, "fg", "", "colour of lit pixels as RRGGBB")
	flags.StringVar(&opts.Background, "bg", "", "colour of unlit pixels as RRGGBB")

	flags.IntVar(&opts.CyclesPerFrame, "cycles", host.DefaultCyclesPerFrame, "instructions executed per frame")
	flags.IntVar(&opts.FrameRate, "fps", host.DefaultFrameRate, "frames per second, the timers tick once per frame")
	flags.IntVar(&opts.Frames, "frames", 600, "number of frames to run with the headless frontend, 0 runs until interrupted")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a time based seed")
}
