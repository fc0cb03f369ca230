// Package system assembles a ready to run CHIP-8 machine.
package system

import (
	"fmt"
	"math/rand"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// Config contains the machine settings.
type Config struct {
	// Seed for the random instruction, 0 uses a time based seed.
	Seed int64
}

// New creates the memory, loads the font table and the ROM image into it
// and returns a processor ready to execute the ROM.
func New(logger *log.Logger, rom []byte, cfg Config) (*cpu.Processor, error) {
	mem := memory.New()

	if err := mem.Load(font.Glyphs[:], font.BaseAddress); err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	if err := mem.Load(rom, cpu.ProgramStart); err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	opts := []cpu.Option{cpu.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, cpu.WithRandom(rand.New(rand.NewSource(cfg.Seed))))
	}

	logger.Debug("Machine initialized",
		log.Int("rom_size", len(rom)),
		log.Hex("entry_point", cpu.ProgramStart))

	return cpu.New(mem, opts...), nil
}
