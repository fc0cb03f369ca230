// Package cpu implements the CHIP-8 processor.
//
// # Registers
//
// The processor has 16 general purpose 8-bit registers V0-VF, where VF
// doubles as carry, borrow and collision flag, a 16-bit index register I,
// a program counter, a stack pointer and the delay and sound timers.
//
// # Execution
//
// Every call to Processor.Tick runs one full cycle:
//  1. Fetch the big endian instruction word at PC and advance PC by 2
//  2. Decode the word into exactly one Instruction
//  3. Execute the instruction
//
// Timers are decremented independently by Processor.TickTimers, which the
// host calls once per frame, conventionally at 60 Hz.
//
// # Stack
//
// The call stack lives in regular memory starting at StackBase and grows
// upwards by 2 bytes per call. No overflow or underflow checks are performed.
//
// # Errors
//
// Opcodes that do not match any known instruction pattern return an error
// wrapping ErrInvalidOpcode. The processor state is meaningless after such
// an error and the host is expected to stop execution.
package cpu
