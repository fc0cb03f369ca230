package cpu

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_Name(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00E0, chip8cpu.Cls.Name},
		{0x00EE, chip8cpu.Ret.Name},
		{0x1234, chip8cpu.Jp.Name},
		{0x2234, chip8cpu.Call.Name},
		{0x3234, chip8cpu.Se.Name},
		{0x9230, chip8cpu.Sne.Name},
		{0x6234, chip8cpu.Ld.Name},
		{0x8234, chip8cpu.Add.Name},
		{0x8235, chip8cpu.Sub.Name},
		{0x8237, chip8cpu.Subn.Name},
		{0xC234, chip8cpu.Rnd.Name},
		{0xD235, chip8cpu.Drw.Name},
		{0xE29E, chip8cpu.Skp.Name},
		{0xE2A1, chip8cpu.Sknp.Name},
		{0x0123, sysName},
	}

	for _, tt := range tests {
		ins, err := Decode(tt.opcode)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, ins.Name())
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected string
	}{
		{"CLS", 0x00E0, chip8cpu.Cls.Name},
		{"SYS", 0x0123, sysName + " $123"},
		{"JP", 0x1234, chip8cpu.Jp.Name + " $234"},
		{"JP V0", 0xB234, chip8cpu.Jp.Name + " V0, $234"},
		{"SE Vx, byte", 0x3234, chip8cpu.Se.Name + " V2, $34"},
		{"SE Vx, Vy", 0x5230, chip8cpu.Se.Name + " V2, V3"},
		{"LD I, addr", 0xA234, chip8cpu.Ld.Name + " I, $234"},
		{"DRW", 0xD235, chip8cpu.Drw.Name + " V2, V3, $5"},
		{"SKP", 0xE29E, chip8cpu.Skp.Name + " V2"},
		{"LD Vx, DT", 0xF207, chip8cpu.Ld.Name + " V2, DT"},
		{"LD Vx, K", 0xF20A, chip8cpu.Ld.Name + " V2, K"},
		{"ADD I, Vx", 0xF21E, chip8cpu.Add.Name + " I, V2"},
		{"LD B, Vx", 0xF233, chip8cpu.Ld.Name + " B, V2"},
		{"LD [I], Vx", 0xF255, chip8cpu.Ld.Name + " [I], V2"},
		{"LD Vx, [I]", 0xF265, chip8cpu.Ld.Name + " V2, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := Decode(tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ins.String())
		})
	}
}
