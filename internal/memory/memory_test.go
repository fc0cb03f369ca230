package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSize(t *testing.T) {
	mem := New()
	assert.Equal(t, Size, mem.Size())
}

func TestLoad(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = 0xFF
	}

	mem := New()
	assert.NoError(t, mem.Load(data, 1024))
	assert.Equal(t, uint8(0xFF), mem.ReadU8(1024))
	assert.Equal(t, uint8(0xFF), mem.ReadU8(1024+63))
	assert.Equal(t, uint8(0x00), mem.ReadU8(1024+64))
}

func TestLoadOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		offset uint16
		fails  bool
	}{
		{"fits exactly", Size - 0x200, 0x200, false},
		{"one byte too many", Size - 0x200 + 1, 0x200, true},
		{"offset at end with data", 1, Size, true},
		{"empty at end", 0, Size, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := New()
			data := make([]byte, tt.size)
			for i := range data {
				data[i] = 0xAA
			}

			err := mem.Load(data, tt.offset)
			if !tt.fails {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, ErrOutOfBounds))
			// a failed load must not write anything
			assert.Equal(t, uint8(0), mem.ReadU8(0x200))
		})
	}
}

func TestReadWriteU8(t *testing.T) {
	mem := New()
	mem.WriteU8(0, 0xFF)
	assert.Equal(t, uint8(0xFF), mem.ReadU8(0))
	assert.Equal(t, uint8(0x00), mem.ReadU8(1))
}

func TestReadWriteU16(t *testing.T) {
	mem := New()
	mem.WriteU16(0, 0xFFFF)
	assert.Equal(t, uint16(0xFFFF), mem.ReadU16(0))
	assert.Equal(t, uint16(0xFF00), mem.ReadU16(1))
	assert.Equal(t, uint16(0x0000), mem.ReadU16(2))
}

func TestWriteU16BigEndian(t *testing.T) {
	mem := New()
	mem.WriteU16(0x300, 0xABCD)
	assert.Equal(t, uint8(0xAB), mem.ReadU8(0x300))
	assert.Equal(t, uint8(0xCD), mem.ReadU8(0x301))
	assert.Equal(t, uint16(0xABCD), mem.ReadU16(0x300))
}

func TestOutOfRangePanics(t *testing.T) {
	mem := New()

	defer func() {
		assert.NotNil(t, recover())
	}()
	_ = mem.ReadU16(Size - 1)
}
