// Package memory provides the flat byte addressable CHIP-8 memory.
package memory

import (
	"errors"
	"fmt"
)

// Size is the number of addressable bytes.
const Size = 4096

// ErrOutOfBounds is returned when data does not fit into memory at the requested offset.
var ErrOutOfBounds = errors.New("memory access out of bounds")

// Memory is a fixed size byte store addressed by 16 bit offsets.
// Addresses are used as given, accessing an address outside of the
// store panics.
type Memory struct {
	data [Size]byte
}

// New returns a new zeroed memory.
func New() *Memory {
	return &Memory{}
}

// Size returns the capacity of the memory in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// Load copies data into memory starting at offset.
func (m *Memory) Load(data []byte, offset uint16) error {
	end := int(offset) + len(data)
	if end > len(m.data) {
		return fmt.Errorf("loading %d bytes at $%04X: %w", len(data), offset, ErrOutOfBounds)
	}
	copy(m.data[offset:end], data)
	return nil
}

// ReadU8 returns the byte at the given address.
func (m *Memory) ReadU8(address uint16) uint8 {
	return m.data[address]
}

// WriteU8 sets the byte at the given address.
func (m *Memory) WriteU8(address uint16, value uint8) {
	m.data[address] = value
}

// ReadU16 returns the big endian word stored at address and address+1.
func (m *Memory) ReadU16(address uint16) uint16 {
	high := uint16(m.data[address])
	low := uint16(m.data[int(address)+1])
	return high<<8 | low
}

// WriteU16 stores value big endian at address and address+1.
func (m *Memory) WriteU16(address uint16, value uint16) {
	m.data[address] = uint8(value >> 8)
	m.data[int(address)+1] = uint8(value)
}
