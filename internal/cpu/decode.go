package cpu

import (
	"errors"
	"fmt"
)

// ErrInvalidOpcode is returned for instruction words that match no known pattern.
var ErrInvalidOpcode = errors.New("invalid opcode")

// nibbles splits an instruction word into its four 4-bit parts, highest first.
func nibbles(opcode uint16) (uint8, uint8, uint8, uint8) {
	return uint8(opcode >> 12 & 0xF),
		uint8(opcode >> 8 & 0xF),
		uint8(opcode >> 4 & 0xF),
		uint8(opcode & 0xF)
}

// Decode maps an instruction word to the instruction it encodes.
func Decode(opcode uint16) (Instruction, error) {
	n1, x, y, n := nibbles(opcode)
	ins := Instruction{
		Opcode: opcode,
		X:      x,
		Y:      y,
		N:      n,
		KK:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
	}

	op, ok := decodeOp(n1, x, n, ins.KK)
	if !ok {
		return Instruction{}, fmt.Errorf("opcode $%04X: %w", opcode, ErrInvalidOpcode)
	}
	ins.Op = op
	return ins, nil
}

// decodeOp returns the operation for the given nibbles and lowest byte.
//
//nolint:cyclop,funlen // the opcode table is a single flat dispatch
func decodeOp(n1, x, n, kk uint8) (Op, bool) {
	switch n1 {
	case 0x0:
		switch {
		case x == 0 && kk == 0xE0:
			return OpClear, true
		case x == 0 && kk == 0xEE:
			return OpReturn, true
		default:
			return OpSys, true
		}

	case 0x1:
		return OpJump, true
	case 0x2:
		return OpCall, true
	case 0x3:
		return OpSkipIfEqual, true
	case 0x4:
		return OpSkipIfNotEqual, true

	case 0x5:
		if n == 0 {
			return OpSkipIfRegistersEqual, true
		}

	case 0x6:
		return OpSet, true
	case 0x7:
		return OpAdd, true

	case 0x8:
		switch n {
		case 0x0:
			return OpCopy, true
		case 0x1:
			return OpOr, true
		case 0x2:
			return OpAnd, true
		case 0x3:
			return OpXor, true
		case 0x4:
			return OpAddRegisters, true
		case 0x5:
			return OpSubtract, true
		case 0x6:
			return OpShiftRight, true
		case 0x7:
			return OpSubtractReverse, true
		case 0xE:
			return OpShiftLeft, true
		}

	case 0x9:
		if n == 0 {
			return OpSkipIfRegistersNotEqual, true
		}

	case 0xA:
		return OpSetIndex, true
	case 0xB:
		return OpJumpWithOffset, true
	case 0xC:
		return OpRandom, true
	case 0xD:
		return OpDraw, true

	case 0xE:
		switch kk {
		case 0x9E:
			return OpSkipIfPressed, true
		case 0xA1:
			return OpSkipIfNotPressed, true
		}

	case 0xF:
		switch kk {
		case 0x07:
			return OpReadDelayTimer, true
		case 0x0A:
			return OpWaitUntilPressed, true
		case 0x15:
			return OpSetDelayTimer, true
		case 0x18:
			return OpSetSoundTimer, true
		case 0x1E:
			return OpAddToIndex, true
		case 0x29:
			return OpSetIndexToGlyph, true
		case 0x33:
			return OpBcd, true
		case 0x55:
			return OpStore, true
		case 0x65:
			return OpLoad, true
		}
	}

	return 0, false
}
