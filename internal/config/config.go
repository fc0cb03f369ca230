// Package config translates the program options into component settings.
package config

import (
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/system"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the verbosity options. Debug logging
// includes a trace of every executed instruction.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Host returns the run loop pacing.
func Host(opts options.Program) host.Config {
	return host.Config{
		FrameRate:      opts.FrameRate,
		CyclesPerFrame: opts.CyclesPerFrame,
	}
}

// Machine returns the machine settings.
func Machine(opts options.Program) system.Config {
	return system.Config{Seed: opts.Seed}
}
