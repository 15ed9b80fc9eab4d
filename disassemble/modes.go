package disassemble

import (
	"github.com/sixfiveoh/ull6502/addressing"
	"github.com/sixfiveoh/ull6502/cpu"
)

// mos6502Modes records the addressing mode of every NMOS 6502 opcode,
// including the undocumented ones, for disassembly. The instruction
// table itself only keeps a handler closure, not the mode it closed
// over, so the mode lookup lives here as a parallel table.
var mos6502Modes = [256]addressing.Mode{
	0x00: addressing.Immediate, 0x01: addressing.ZeroPageXIndirect, 0x02: addressing.Implied, 0x03: addressing.ZeroPageXIndirect,
	0x04: addressing.ZeroPage, 0x05: addressing.ZeroPage, 0x06: addressing.ZeroPage, 0x07: addressing.ZeroPage,
	0x08: addressing.Implied, 0x09: addressing.Immediate, 0x0A: addressing.Accumulator, 0x0B: addressing.Immediate,
	0x0C: addressing.Absolute, 0x0D: addressing.Absolute, 0x0E: addressing.Absolute, 0x0F: addressing.Absolute,

	0x10: addressing.Relative, 0x11: addressing.ZeroPageIndirectY, 0x12: addressing.Implied, 0x13: addressing.ZeroPageIndirectY,
	0x14: addressing.ZeroPageX, 0x15: addressing.ZeroPageX, 0x16: addressing.ZeroPageX, 0x17: addressing.ZeroPageX,
	0x18: addressing.Implied, 0x19: addressing.AbsoluteY, 0x1A: addressing.Implied, 0x1B: addressing.AbsoluteY,
	0x1C: addressing.AbsoluteX, 0x1D: addressing.AbsoluteX, 0x1E: addressing.AbsoluteX, 0x1F: addressing.AbsoluteX,

	0x20: addressing.Absolute, 0x21: addressing.ZeroPageXIndirect, 0x22: addressing.Implied, 0x23: addressing.ZeroPageXIndirect,
	0x24: addressing.ZeroPage, 0x25: addressing.ZeroPage, 0x26: addressing.ZeroPage, 0x27: addressing.ZeroPage,
	0x28: addressing.Implied, 0x29: addressing.Immediate, 0x2A: addressing.Accumulator, 0x2B: addressing.Immediate,
	0x2C: addressing.Absolute, 0x2D: addressing.Absolute, 0x2E: addressing.Absolute, 0x2F: addressing.Absolute,

	0x30: addressing.Relative, 0x31: addressing.ZeroPageIndirectY, 0x32: addressing.Implied, 0x33: addressing.ZeroPageIndirectY,
	0x34: addressing.ZeroPageX, 0x35: addressing.ZeroPageX, 0x36: addressing.ZeroPageX, 0x37: addressing.ZeroPageX,
	0x38: addressing.Implied, 0x39: addressing.AbsoluteY, 0x3A: addressing.Implied, 0x3B: addressing.AbsoluteY,
	0x3C: addressing.AbsoluteX, 0x3D: addressing.AbsoluteX, 0x3E: addressing.AbsoluteX, 0x3F: addressing.AbsoluteX,

	0x40: addressing.Implied, 0x41: addressing.ZeroPageXIndirect, 0x42: addressing.Implied, 0x43: addressing.ZeroPageXIndirect,
	0x44: addressing.ZeroPage, 0x45: addressing.ZeroPage, 0x46: addressing.ZeroPage, 0x47: addressing.ZeroPage,
	0x48: addressing.Implied, 0x49: addressing.Immediate, 0x4A: addressing.Accumulator, 0x4B: addressing.Immediate,
	0x4C: addressing.Absolute, 0x4D: addressing.Absolute, 0x4E: addressing.Absolute, 0x4F: addressing.Absolute,

	0x50: addressing.Relative, 0x51: addressing.ZeroPageIndirectY, 0x52: addressing.Implied, 0x53: addressing.ZeroPageIndirectY,
	0x54: addressing.ZeroPageX, 0x55: addressing.ZeroPageX, 0x56: addressing.ZeroPageX, 0x57: addressing.ZeroPageX,
	0x58: addressing.Implied, 0x59: addressing.AbsoluteY, 0x5A: addressing.Implied, 0x5B: addressing.AbsoluteY,
	0x5C: addressing.AbsoluteX, 0x5D: addressing.AbsoluteX, 0x5E: addressing.AbsoluteX, 0x5F: addressing.AbsoluteX,

	0x60: addressing.Implied, 0x61: addressing.ZeroPageXIndirect, 0x62: addressing.Implied, 0x63: addressing.ZeroPageXIndirect,
	0x64: addressing.ZeroPage, 0x65: addressing.ZeroPage, 0x66: addressing.ZeroPage, 0x67: addressing.ZeroPage,
	0x68: addressing.Implied, 0x69: addressing.Immediate, 0x6A: addressing.Accumulator, 0x6B: addressing.Immediate,
	0x6C: addressing.AbsoluteIndirect, 0x6D: addressing.Absolute, 0x6E: addressing.Absolute, 0x6F: addressing.Absolute,

	0x70: addressing.Relative, 0x71: addressing.ZeroPageIndirectY, 0x72: addressing.Implied, 0x73: addressing.ZeroPageIndirectY,
	0x74: addressing.ZeroPageX, 0x75: addressing.ZeroPageX, 0x76: addressing.ZeroPageX, 0x77: addressing.ZeroPageX,
	0x78: addressing.Implied, 0x79: addressing.AbsoluteY, 0x7A: addressing.Implied, 0x7B: addressing.AbsoluteY,
	0x7C: addressing.AbsoluteX, 0x7D: addressing.AbsoluteX, 0x7E: addressing.AbsoluteX, 0x7F: addressing.AbsoluteX,

	0x80: addressing.Immediate, 0x81: addressing.ZeroPageXIndirect, 0x82: addressing.Immediate, 0x83: addressing.ZeroPageXIndirect,
	0x84: addressing.ZeroPage, 0x85: addressing.ZeroPage, 0x86: addressing.ZeroPage, 0x87: addressing.ZeroPage,
	0x88: addressing.Implied, 0x89: addressing.Immediate, 0x8A: addressing.Implied, 0x8B: addressing.Implied,
	0x8C: addressing.Absolute, 0x8D: addressing.Absolute, 0x8E: addressing.Absolute, 0x8F: addressing.Absolute,

	0x90: addressing.Relative, 0x91: addressing.ZeroPageIndirectY, 0x92: addressing.Implied, 0x93: addressing.ZeroPageIndirectY,
	0x94: addressing.ZeroPageX, 0x95: addressing.ZeroPageX, 0x96: addressing.ZeroPageY, 0x97: addressing.ZeroPageY,
	0x98: addressing.Implied, 0x99: addressing.AbsoluteY, 0x9A: addressing.Implied, 0x9B: addressing.AbsoluteY,
	0x9C: addressing.AbsoluteX, 0x9D: addressing.AbsoluteX, 0x9E: addressing.AbsoluteY, 0x9F: addressing.AbsoluteY,

	0xA0: addressing.Immediate, 0xA1: addressing.ZeroPageXIndirect, 0xA2: addressing.Immediate, 0xA3: addressing.ZeroPageXIndirect,
	0xA4: addressing.ZeroPage, 0xA5: addressing.ZeroPage, 0xA6: addressing.ZeroPage, 0xA7: addressing.ZeroPage,
	0xA8: addressing.Implied, 0xA9: addressing.Immediate, 0xAA: addressing.Implied, 0xAB: addressing.Immediate,
	0xAC: addressing.Absolute, 0xAD: addressing.Absolute, 0xAE: addressing.Absolute, 0xAF: addressing.Absolute,

	0xB0: addressing.Relative, 0xB1: addressing.ZeroPageIndirectY, 0xB2: addressing.Implied, 0xB3: addressing.ZeroPageIndirectY,
	0xB4: addressing.ZeroPageX, 0xB5: addressing.ZeroPageX, 0xB6: addressing.ZeroPageY, 0xB7: addressing.ZeroPageY,
	0xB8: addressing.Implied, 0xB9: addressing.AbsoluteY, 0xBA: addressing.Implied, 0xBB: addressing.AbsoluteY,
	0xBC: addressing.AbsoluteX, 0xBD: addressing.AbsoluteX, 0xBE: addressing.AbsoluteY, 0xBF: addressing.AbsoluteY,

	0xC0: addressing.Immediate, 0xC1: addressing.ZeroPageXIndirect, 0xC2: addressing.Immediate, 0xC3: addressing.ZeroPageXIndirect,
	0xC4: addressing.ZeroPage, 0xC5: addressing.ZeroPage, 0xC6: addressing.ZeroPage, 0xC7: addressing.ZeroPage,
	0xC8: addressing.Implied, 0xC9: addressing.Immediate, 0xCA: addressing.Implied, 0xCB: addressing.Immediate,
	0xCC: addressing.Absolute, 0xCD: addressing.Absolute, 0xCE: addressing.Absolute, 0xCF: addressing.Absolute,

	0xD0: addressing.Relative, 0xD1: addressing.ZeroPageIndirectY, 0xD2: addressing.Implied, 0xD3: addressing.ZeroPageIndirectY,
	0xD4: addressing.ZeroPageX, 0xD5: addressing.ZeroPageX, 0xD6: addressing.ZeroPageX, 0xD7: addressing.ZeroPageX,
	0xD8: addressing.Implied, 0xD9: addressing.AbsoluteY, 0xDA: addressing.Implied, 0xDB: addressing.AbsoluteY,
	0xDC: addressing.AbsoluteX, 0xDD: addressing.AbsoluteX, 0xDE: addressing.AbsoluteX, 0xDF: addressing.AbsoluteX,

	0xE0: addressing.Immediate, 0xE1: addressing.ZeroPageXIndirect, 0xE2: addressing.Immediate, 0xE3: addressing.ZeroPageXIndirect,
	0xE4: addressing.ZeroPage, 0xE5: addressing.ZeroPage, 0xE6: addressing.ZeroPage, 0xE7: addressing.ZeroPage,
	0xE8: addressing.Implied, 0xE9: addressing.Immediate, 0xEA: addressing.Implied, 0xEB: addressing.Immediate,
	0xEC: addressing.Absolute, 0xED: addressing.Absolute, 0xEE: addressing.Absolute, 0xEF: addressing.Absolute,

	0xF0: addressing.Relative, 0xF1: addressing.ZeroPageIndirectY, 0xF2: addressing.Implied, 0xF3: addressing.ZeroPageIndirectY,
	0xF4: addressing.ZeroPageX, 0xF5: addressing.ZeroPageX, 0xF6: addressing.ZeroPageX, 0xF7: addressing.ZeroPageX,
	0xF8: addressing.Implied, 0xF9: addressing.AbsoluteY, 0xFA: addressing.Implied, 0xFB: addressing.AbsoluteY,
	0xFC: addressing.AbsoluteX, 0xFD: addressing.AbsoluteX, 0xFE: addressing.AbsoluteX, 0xFF: addressing.AbsoluteX,
}

// wdc65c02Modes starts from a copy of mos6502Modes and applies the same
// per-opcode overrides tables_65c02.go layers onto its Exec table, so the
// two stay in lockstep: anywhere the instruction table changes an
// opcode's meaning, this changes its mode to match.
var wdc65c02Modes = func() [256]addressing.Mode {
	m := mos6502Modes

	for _, op := range []int{0x12, 0x32, 0x52, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		m[op] = addressing.ZeroPageIndirect
	}
	m[0x14] = addressing.ZeroPage
	m[0x1C] = addressing.Absolute
	m[0x9C] = addressing.Absolute
	m[0x9E] = addressing.AbsoluteX
	m[0x1A] = addressing.Accumulator
	m[0x3A] = addressing.Accumulator
	m[0x80] = addressing.Relative
	m[0x6C] = addressing.AbsoluteIndirectCorrect
	m[0x7C] = addressing.AbsoluteIndirectX
	m[0xCB] = addressing.Implied
	m[0xDB] = addressing.Implied

	for _, op := range []int{0x17, 0x37, 0x57, 0x77, 0x97, 0xB7, 0xD7, 0xF7, 0x07, 0x27, 0x47, 0x67, 0x87, 0xA7, 0xC7, 0xE7} {
		m[op] = addressing.ZeroPage
	}
	for bit := 0; bit < 8; bit++ {
		m[0x0F+bit*0x10] = addressing.ZeroPageRelative
		m[0x8F+bit*0x10] = addressing.ZeroPageRelative
	}

	for _, op := range []int{
		0x03, 0x13, 0x23, 0x33, 0x43, 0x53, 0x63, 0x73,
		0x83, 0x93, 0xA3, 0xB3, 0xC3, 0xD3, 0xE3, 0xF3,
		0x0B, 0x1B, 0x2B, 0x3B, 0x4B, 0x5B, 0x6B, 0x7B,
		0x8B, 0x9B, 0xAB, 0xBB, 0xEB, 0xFB,
	} {
		m[op] = addressing.Implied
	}
	for _, op := range []int{0x02, 0x22, 0x42, 0x62, 0x82, 0xC2, 0xE2} {
		m[op] = addressing.Immediate
	}
	m[0x44] = addressing.Immediate
	for _, op := range []int{0x54, 0xD4, 0xF4} {
		m[op] = addressing.Immediate
	}
	m[0x5C] = addressing.Absolute
	for _, op := range []int{0xDC, 0xFC} {
		m[op] = addressing.Absolute
	}
	return m
}()

// modeTableFor returns the addressing-mode lookup matching v's
// instruction table.
func modeTableFor(v cpu.Variant) [256]addressing.Mode {
	if v == cpu.WDC65C02S {
		return wdc65c02Modes
	}
	return mos6502Modes
}
