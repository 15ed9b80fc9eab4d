package addressing_test

import (
	"testing"

	"github.com/sixfiveoh/ull6502/addressing"
	"github.com/sixfiveoh/ull6502/bus"
)

// TestEffectiveAddress exercises each mode's address computation against
// a scripted memory image, including the page-wrap edge cases: the NMOS
// indirect-JMP bug, zero-page pointer wraparound, and the page-cross
// report for the indexed modes.
func TestEffectiveAddress(t *testing.T) {
	tests := []struct {
		name        string
		mode        addressing.Mode
		setup       func(b *bus.TestBus)
		pc          uint16
		x, y        uint8
		wantAddr    uint16
		wantCrossed bool
	}{
		{
			name:     "immediate is the operand byte itself",
			mode:     addressing.Immediate,
			setup:    func(b *bus.TestBus) {},
			pc:       0x0400,
			wantAddr: 0x0401,
		},
		{
			name: "absolute little endian",
			mode: addressing.Absolute,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0x34)
				b.Poke(0x0402, 0x12)
			},
			pc:       0x0400,
			wantAddr: 0x1234,
		},
		{
			name: "absolute X crossing a page",
			mode: addressing.AbsoluteX,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0xFF)
				b.Poke(0x0402, 0x12)
			},
			pc:          0x0400,
			x:           0x01,
			wantAddr:    0x1300,
			wantCrossed: true,
		},
		{
			name: "absolute Y staying in page",
			mode: addressing.AbsoluteY,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0x00)
				b.Poke(0x0402, 0x12)
			},
			pc:       0x0400,
			y:        0x10,
			wantAddr: 0x1210,
		},
		{
			name: "NMOS absolute indirect wraps within the pointer page",
			mode: addressing.AbsoluteIndirect,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0xFF)
				b.Poke(0x0402, 0x02)
				b.Poke(0x02FF, 0x34)
				b.Poke(0x0200, 0x12)
				b.Poke(0x0300, 0xEE) // would yield EE34 without the bug
			},
			pc:       0x0400,
			wantAddr: 0x1234,
		},
		{
			name: "65C02 absolute indirect crosses the page correctly",
			mode: addressing.AbsoluteIndirectCorrect,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0xFF)
				b.Poke(0x0402, 0x02)
				b.Poke(0x02FF, 0x34)
				b.Poke(0x0300, 0x12)
			},
			pc:       0x0400,
			wantAddr: 0x1234,
		},
		{
			name: "65C02 absolute indirect X indexes the pointer",
			mode: addressing.AbsoluteIndirectX,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0x00)
				b.Poke(0x0402, 0x02)
				b.Poke(0x0204, 0x34)
				b.Poke(0x0205, 0x12)
			},
			pc:       0x0400,
			x:        0x04,
			wantAddr: 0x1234,
		},
		{
			name: "zero page X wraps within the page",
			mode: addressing.ZeroPageX,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0xFF)
			},
			pc:       0x0400,
			x:        0x02,
			wantAddr: 0x0001,
		},
		{
			name: "zero page indirect wraps the pointer high byte",
			mode: addressing.ZeroPageIndirect,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0xFF)
				b.Poke(0x00FF, 0x34)
				b.Poke(0x0000, 0x12)
			},
			pc:       0x0400,
			wantAddr: 0x1234,
		},
		{
			name: "zero page X indirect wraps both pointer bytes",
			mode: addressing.ZeroPageXIndirect,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0xFE)
				b.Poke(0x00FF, 0x34)
				b.Poke(0x0000, 0x12)
			},
			pc:       0x0400,
			x:        0x01,
			wantAddr: 0x1234,
		},
		{
			name: "zero page indirect Y reports the page cross",
			mode: addressing.ZeroPageIndirectY,
			setup: func(b *bus.TestBus) {
				b.Poke(0x0401, 0x20)
				b.Poke(0x0020, 0xFF)
				b.Poke(0x0021, 0x12)
			},
			pc:          0x0400,
			y:           0x01,
			wantAddr:    0x1300,
			wantCrossed: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := bus.NewTestBus()
			test.setup(b)
			addr, crossed := addressing.EffectiveAddress(test.mode, test.pc, test.x, test.y, b)
			if addr != test.wantAddr {
				t.Fatalf("addr: got %.4X want %.4X", addr, test.wantAddr)
			}
			if crossed != test.wantCrossed {
				t.Fatalf("crossed: got %t want %t", crossed, test.wantCrossed)
			}
		})
	}
}

func TestModeBytes(t *testing.T) {
	tests := []struct {
		mode addressing.Mode
		want int
	}{
		{addressing.Implied, 1},
		{addressing.Accumulator, 1},
		{addressing.Immediate, 2},
		{addressing.ZeroPage, 2},
		{addressing.Relative, 2},
		{addressing.Absolute, 3},
		{addressing.AbsoluteIndirect, 3},
		{addressing.ZeroPageRelative, 3},
	}
	for _, test := range tests {
		if got := test.mode.Bytes(); got != test.want {
			t.Errorf("Bytes(%d): got %d want %d", test.mode, got, test.want)
		}
	}
}
