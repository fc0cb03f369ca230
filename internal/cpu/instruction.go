package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies the operation of a decoded instruction.
type Op int

// All supported CHIP-8 operations, the comment lists the opcode pattern.
const (
	OpSys                     Op = iota // 0nnn
	OpClear                             // 00E0
	OpReturn                            // 00EE
	OpJump                              // 1nnn
	OpCall                              // 2nnn
	OpSkipIfEqual                       // 3xkk
	OpSkipIfNotEqual                    // 4xkk
	OpSkipIfRegistersEqual              // 5xy0
	OpSet                               // 6xkk
	OpAdd                               // 7xkk
	OpCopy                              // 8xy0
	OpOr                                // 8xy1
	OpAnd                               // 8xy2
	OpXor                               // 8xy3
	OpAddRegisters                      // 8xy4
	OpSubtract                          // 8xy5
	OpShiftRight                        // 8xy6
	OpSubtractReverse                   // 8xy7
	OpShiftLeft                         // 8xyE
	OpSkipIfRegistersNotEqual           // 9xy0
	OpSetIndex                          // Annn
	OpJumpWithOffset                    // Bnnn
	OpRandom                            // Cxkk
	OpDraw                              // Dxyn
	OpSkipIfPressed                     // Ex9E
	OpSkipIfNotPressed                  // ExA1
	OpReadDelayTimer                    // Fx07
	OpWaitUntilPressed                  // Fx0A
	OpSetDelayTimer                     // Fx15
	OpSetSoundTimer                     // Fx18
	OpAddToIndex                        // Fx1E
	OpSetIndexToGlyph                   // Fx29
	OpBcd                               // Fx33
	OpStore                             // Fx55
	OpLoad                              // Fx65
)

// sysName is the mnemonic of the machine code routine call, which is not
// part of the retrogolib instruction table.
const sysName = "sys"

// mnemonics maps every operation to its instruction definition.
var mnemonics = map[Op]*chip8.Instruction{
	OpClear:                   chip8.Cls,
	OpReturn:                  chip8.Ret,
	OpJump:                    chip8.Jp,
	OpCall:                    chip8.Call,
	OpSkipIfEqual:             chip8.Se,
	OpSkipIfNotEqual:          chip8.Sne,
	OpSkipIfRegistersEqual:    chip8.Se,
	OpSet:                     chip8.Ld,
	OpAdd:                     chip8.Add,
	OpCopy:                    chip8.Ld,
	OpOr:                      chip8.Or,
	OpAnd:                     chip8.And,
	OpXor:                     chip8.Xor,
	OpAddRegisters:            chip8.Add,
	OpSubtract:                chip8.Sub,
	OpShiftRight:              chip8.Shr,
	OpSubtractReverse:         chip8.Subn,
	OpShiftLeft:               chip8.Shl,
	OpSkipIfRegistersNotEqual: chip8.Sne,
	OpSetIndex:                chip8.Ld,
	OpJumpWithOffset:          chip8.Jp,
	OpRandom:                  chip8.Rnd,
	OpDraw:                    chip8.Drw,
	OpSkipIfPressed:           chip8.Skp,
	OpSkipIfNotPressed:        chip8.Sknp,
	OpReadDelayTimer:          chip8.Ld,
	OpWaitUntilPressed:        chip8.Ld,
	OpSetDelayTimer:           chip8.Ld,
	OpSetSoundTimer:           chip8.Ld,
	OpAddToIndex:              chip8.Add,
	OpSetIndexToGlyph:         chip8.Ld,
	OpBcd:                     chip8.Ld,
	OpStore:                   chip8.Ld,
	OpLoad:                    chip8.Ld,
}

// Instruction is a decoded opcode. Only the operand fields that the
// operation uses are set.
type Instruction struct {
	Op     Op
	Opcode uint16 // raw instruction word

	X   uint8  // register index from the second nibble
	Y   uint8  // register index from the third nibble
	N   uint8  // lowest nibble
	KK  uint8  // lowest byte
	NNN uint16 // lowest 12 bits, an address
}

// Name returns the assembler mnemonic of the instruction.
func (ins Instruction) Name() string {
	if def, ok := mnemonics[ins.Op]; ok {
		return def.Name
	}
	return sysName
}

// String returns the instruction formatted as assembler code.
func (ins Instruction) String() string {
	if params := ins.params(); params != "" {
		return fmt.Sprintf("%s %s", ins.Name(), params)
	}
	return ins.Name()
}

// params formats the operands of the instruction.
func (ins Instruction) params() string {
	switch ins.Op {
	case OpClear, OpReturn:
		return ""

	case OpSys, OpJump, OpCall:
		return fmt.Sprintf("$%03X", ins.NNN)

	case OpSetIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)

	case OpJumpWithOffset:
		return fmt.Sprintf("V0, $%03X", ins.NNN)

	case OpSkipIfEqual, OpSkipIfNotEqual, OpSet, OpAdd, OpRandom:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.KK)

	case OpSkipIfRegistersEqual, OpSkipIfRegistersNotEqual, OpCopy, OpOr, OpAnd, OpXor,
		OpAddRegisters, OpSubtract, OpShiftRight, OpSubtractReverse, OpShiftLeft:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)

	case OpDraw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)

	case OpSkipIfPressed, OpSkipIfNotPressed:
		return fmt.Sprintf("V%X", ins.X)

	case OpReadDelayTimer:
		return fmt.Sprintf("V%X, DT", ins.X)
	case OpWaitUntilPressed:
		return fmt.Sprintf("V%X, K", ins.X)
	case OpSetDelayTimer:
		return fmt.Sprintf("DT, V%X", ins.X)
	case OpSetSoundTimer:
		return fmt.Sprintf("ST, V%X", ins.X)
	case OpAddToIndex:
		return fmt.Sprintf("I, V%X", ins.X)
	case OpSetIndexToGlyph:
		return fmt.Sprintf("F, V%X", ins.X)
	case OpBcd:
		return fmt.Sprintf("B, V%X", ins.X)
	case OpStore:
		return fmt.Sprintf("[I], V%X", ins.X)
	case OpLoad:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}
