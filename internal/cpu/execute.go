package cpu

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/font"
)

// ErrRegisterIndex is returned when a register range exceeds the register file.
var ErrRegisterIndex = errors.New("register index out of range")

// indexOverflow is the first address outside of the 12-bit address space.
const indexOverflow = 0x1000

// execute applies the effect of a decoded instruction.
//
//nolint:cyclop,funlen,gocognit // one case per instruction
func (p *Processor) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpSys:
		// machine code routines of the original interpreter are not supported

	case OpClear:
		p.screen.Clear()

	case OpReturn:
		p.pc = p.memory.ReadU16(p.sp)
		p.sp -= 2

	case OpJump:
		p.pc = ins.NNN

	case OpCall:
		p.sp += 2
		p.memory.WriteU16(p.sp, p.pc)
		p.pc = ins.NNN

	case OpSkipIfEqual:
		p.skipIf(p.v[x] == ins.KK)

	case OpSkipIfNotEqual:
		p.skipIf(p.v[x] != ins.KK)

	case OpSkipIfRegistersEqual:
		p.skipIf(p.v[x] == p.v[y])

	case OpSkipIfRegistersNotEqual:
		p.skipIf(p.v[x] != p.v[y])

	case OpSet:
		p.v[x] = ins.KK

	case OpAdd:
		p.v[x] += ins.KK

	case OpCopy:
		p.v[x] = p.v[y]

	case OpOr:
		p.v[x] |= p.v[y]
		p.v[flagRegister] = 0

	case OpAnd:
		p.v[x] &= p.v[y]
		p.v[flagRegister] = 0

	case OpXor:
		p.v[x] ^= p.v[y]
		p.v[flagRegister] = 0

	case OpAddRegisters:
		sum := uint16(p.v[x]) + uint16(p.v[y])
		p.v[x] = uint8(sum)
		p.setFlag(sum > 0xFF)

	case OpSubtract:
		noBorrow := p.v[x] >= p.v[y]
		p.v[x] -= p.v[y]
		p.setFlag(noBorrow)

	case OpSubtractReverse:
		noBorrow := p.v[y] >= p.v[x]
		p.v[x] = p.v[y] - p.v[x]
		p.setFlag(noBorrow)

	case OpShiftRight:
		source := p.v[y]
		p.v[x] = source >> 1
		p.v[flagRegister] = source & 0x01

	case OpShiftLeft:
		source := p.v[y]
		p.v[x] = source << 1
		p.v[flagRegister] = source >> 7

	case OpSetIndex:
		p.i = ins.NNN

	case OpJumpWithOffset:
		p.pc = ins.NNN + uint16(p.v[0])

	case OpRandom:
		p.v[x] = uint8(p.random.Intn(256)) & ins.KK

	case OpDraw:
		collision := p.screen.Draw(p.memory, p.i, p.v[x], p.v[y], ins.N)
		p.setFlag(collision)

	case OpSkipIfPressed:
		p.skipIf(p.keys[p.v[x]&0x0F])

	case OpSkipIfNotPressed:
		p.skipIf(!p.keys[p.v[x]&0x0F])

	case OpReadDelayTimer:
		p.v[x] = p.dt

	case OpWaitUntilPressed:
		p.waitUntilPressed(x)

	case OpSetDelayTimer:
		p.dt = p.v[x]

	case OpSetSoundTimer:
		p.st = p.v[x]

	case OpAddToIndex:
		sum := uint32(p.i) + uint32(p.v[x])
		p.i = uint16(sum)
		p.setFlag(sum >= indexOverflow)

	case OpSetIndexToGlyph:
		p.i = font.Address(p.v[x])

	case OpBcd:
		value := p.v[x]
		p.memory.WriteU8(p.i, value/100)
		p.memory.WriteU8(p.i+1, value/10%10)
		p.memory.WriteU8(p.i+2, value%10)

	case OpStore:
		if err := checkRegisterRange(x); err != nil {
			return err
		}
		for reg := uint16(0); reg <= uint16(x); reg++ {
			p.memory.WriteU8(p.i+reg, p.v[reg])
		}

	case OpLoad:
		if err := checkRegisterRange(x); err != nil {
			return err
		}
		for reg := uint16(0); reg <= uint16(x); reg++ {
			p.v[reg] = p.memory.ReadU8(p.i + reg)
		}

	default:
		return fmt.Errorf("operation %d: %w", ins.Op, ErrInvalidOpcode)
	}

	return nil
}

// skipIf skips the next instruction if the condition is met.
func (p *Processor) skipIf(condition bool) {
	if condition {
		p.pc += 2
	}
}

// setFlag sets VF to 1 or 0. It is always written after the result register.
func (p *Processor) setFlag(set bool) {
	if set {
		p.v[flagRegister] = 1
	} else {
		p.v[flagRegister] = 0
	}
}

// waitUntilPressed stores the lowest pressed key in Vx. When no key is
// pressed the program counter is moved back so that the same instruction
// is executed again on the next cycle.
func (p *Processor) waitUntilPressed(x uint8) {
	for key, pressed := range p.keys {
		if pressed {
			p.v[x] = uint8(key)
			return
		}
	}
	p.pc -= 2
}

// checkRegisterRange verifies that the inclusive register range V0..Vx exists.
func checkRegisterRange(x uint8) error {
	if int(x) >= RegisterCount {
		return fmt.Errorf("register V%d: %w", x, ErrRegisterIndex)
	}
	return nil
}
