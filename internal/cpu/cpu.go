package cpu

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/screen"
	"github.com/retroenv/retrogolib/log"
)

// Processor layout constants.
const (
	// ProgramStart is the entry point, ROMs are loaded at this address.
	ProgramStart = 0x200

	// StackBase is the initial stack pointer, the stack grows upwards.
	StackBase = 0xFA0

	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16

	// KeyCount is the number of keys on the hex keypad.
	KeyCount = 16

	// flagRegister is the index of VF.
	flagRegister = 0xF

	// soundThreshold is the sound timer value above which the tone is played,
	// lower values are suppressed to avoid clicks at the end of the decay.
	soundThreshold = 2
)

// Random is the source of random numbers for the random instruction.
type Random interface {
	Intn(n int) int
}

// Processor is a CHIP-8 processor that owns its memory and screen.
type Processor struct {
	logger *log.Logger
	random Random

	v  [RegisterCount]uint8 // V registers
	i  uint16               // index register
	pc uint16               // program counter
	sp uint16               // stack pointer
	dt uint8                // delay timer
	st uint8                // sound timer

	keys [KeyCount]bool // currently pressed keys

	memory *memory.Memory
	screen *screen.Screen
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger that instruction traces are written to.
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithRandom sets the random number source.
func WithRandom(random Random) Option {
	return func(p *Processor) {
		p.random = random
	}
}

// New returns a new processor operating on the given memory.
// The memory is expected to contain the font and the program already.
func New(mem *memory.Memory, opts ...Option) *Processor {
	p := &Processor{
		pc:     ProgramStart,
		sp:     StackBase,
		memory: mem,
		screen: screen.New(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = log.NewWithConfig(log.DefaultConfig())
	}
	if p.random == nil {
		p.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

// Tick runs a single fetch, decode and execute cycle.
func (p *Processor) Tick() error {
	address := p.pc
	opcode := p.fetch()

	ins, err := Decode(opcode)
	if err != nil {
		return fmt.Errorf("decoding instruction at $%04X: %w", address, err)
	}

	p.logger.Debug("Executing instruction",
		log.Hex("address", address),
		log.Hex("opcode", opcode),
		log.String("instruction", ins.String()))

	if err := p.execute(ins); err != nil {
		return fmt.Errorf("executing '%s' at $%04X: %w", ins, address, err)
	}
	return nil
}

// fetch reads the instruction word at the program counter and advances it.
func (p *Processor) fetch() uint16 {
	opcode := p.memory.ReadU16(p.pc)
	p.pc += 2
	return opcode
}

// TickTimers decrements the delay and sound timers if they are not zero.
func (p *Processor) TickTimers() {
	if p.dt > 0 {
		p.dt--
	}
	if p.st > 0 {
		p.st--
	}
}

// IsSoundPlaying returns whether the sound timer is high enough to play a tone.
func (p *Processor) IsSoundPlaying() bool {
	return p.st > soundThreshold
}

// PressKey sets the pressed state of a keypad key. Unknown keys are ignored.
func (p *Processor) PressKey(key uint8, pressed bool) {
	if int(key) >= len(p.keys) {
		return
	}
	p.keys[key] = pressed
}

// ScreenBuffer returns the current framebuffer for presentation.
func (p *Processor) ScreenBuffer() []bool {
	return p.screen.Buffer()
}

// Registers returns a copy of the V registers.
func (p *Processor) Registers() [RegisterCount]uint8 {
	return p.v
}

// Index returns the index register I.
func (p *Processor) Index() uint16 {
	return p.i
}

// ProgramCounter returns the address of the next instruction to fetch.
func (p *Processor) ProgramCounter() uint16 {
	return p.pc
}

// StackPointer returns the current stack pointer.
func (p *Processor) StackPointer() uint16 {
	return p.sp
}

// DelayTimer returns the current delay timer value.
func (p *Processor) DelayTimer() uint8 {
	return p.dt
}

// SoundTimer returns the current sound timer value.
func (p *Processor) SoundTimer() uint8 {
	return p.st
}

// Memory returns the memory of the processor.
func (p *Processor) Memory() *memory.Memory {
	return p.memory
}

// Screen returns the screen of the processor.
func (p *Processor) Screen() *screen.Screen {
	return p.screen
}
