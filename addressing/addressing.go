// Package addressing computes 6502/65C02 effective addresses. Each mode
// is a stateless calculator: given the processor's PC/X/Y and the bus, it
// returns the 16-bit address an instruction will act on without advancing
// PC itself. Advancing PC by the mode's byte count is the caller's job,
// done once per instruction by the opcode handler that used the mode.
package addressing

import (
	"github.com/sixfiveoh/ull6502/access"
	"github.com/sixfiveoh/ull6502/bus"
)

// Mode identifies one of the processor's addressing modes.
type Mode int

const (
	// Implied has no operand; the opcode byte is the whole instruction.
	Implied Mode = iota
	// Accumulator operates on A directly; like Implied it has no operand
	// byte but is kept distinct for disassembly clarity.
	Accumulator
	// Relative is the branch displacement mode: a signed byte at PC+1
	// added to PC+2 on top of the branch condition. Branch handlers
	// compute this directly rather than through EffectiveAddress, since
	// the result replaces PC rather than naming a memory operand.
	Relative
	// Immediate treats PC+1 itself as the operand address.
	Immediate
	// Absolute reads a little-endian word at PC+1.
	Absolute
	// AbsoluteX is Absolute plus X, wrapping at 16 bits.
	AbsoluteX
	// AbsoluteY is Absolute plus Y, wrapping at 16 bits.
	AbsoluteY
	// AbsoluteIndirect is the NMOS JMP (abs) mode: the pointer word is read
	// from Absolute, but the high byte wraps within the pointer's own page
	// (the famous $xxFF page-wrap bug).
	AbsoluteIndirect
	// AbsoluteIndirectCorrect is the 65C02's fixed JMP (abs): identical to
	// AbsoluteIndirect but without the page-wrap bug.
	AbsoluteIndirectCorrect
	// AbsoluteIndirectX is the 65C02's JMP (abs,X): the pointer word is
	// read from Absolute+X.
	AbsoluteIndirectX
	// ZeroPage zero-extends the byte at PC+1.
	ZeroPage
	// ZeroPageX is the zero-page byte plus X, wrapping within the page.
	ZeroPageX
	// ZeroPageY is the zero-page byte plus Y, wrapping within the page.
	ZeroPageY
	// ZeroPageIndirect is the 65C02's (zp) mode: a pointer word read from
	// the zero page, wrapping the high-byte fetch within the page.
	ZeroPageIndirect
	// ZeroPageXIndirect is the classic (zp,X) mode: the pointer address is
	// (byte+X) wrapped in the zero page, and both halves of the pointer
	// word are themselves read with zero-page wraparound.
	ZeroPageXIndirect
	// ZeroPageIndirectY is the classic (zp),Y mode: a pointer word is read
	// from the zero page (wrapping within the page), then Y is added to
	// the resulting 16-bit address.
	ZeroPageIndirectY
	// ZeroPageRelative is the 65C02 BBRn/BBSn mode: a zero-page address
	// byte followed by a branch displacement. It names no single memory
	// operand, so BBRn/BBSn compute their own addresses directly rather
	// than calling EffectiveAddress; this mode exists for Bytes() and
	// disassembly.
	ZeroPageRelative
)

// bytes gives the full instruction length, including the opcode byte,
// for each mode.
var bytes = map[Mode]int{
	Implied:                 1,
	Accumulator:             1,
	Relative:                2,
	Immediate:               2,
	Absolute:                3,
	AbsoluteX:               3,
	AbsoluteY:               3,
	AbsoluteIndirect:        3,
	AbsoluteIndirectCorrect: 3,
	AbsoluteIndirectX:       3,
	ZeroPage:                2,
	ZeroPageX:               2,
	ZeroPageY:               2,
	ZeroPageIndirect:        2,
	ZeroPageXIndirect:       2,
	ZeroPageIndirectY:       2,
	ZeroPageRelative:        3,
}

// Bytes returns the instruction length in bytes for m, including the
// opcode byte itself.
func (m Mode) Bytes() int {
	return bytes[m]
}

// samePage reports whether a and b fall in the same 256-byte page.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// absoluteWord reads the little-endian word at pc+1 on b.
func absoluteWord(pc uint16, b bus.Bus) uint16 {
	lo := b.Read(pc+1, access.DataRead)
	hi := b.Read(pc+2, access.DataRead)
	return uint16(hi)<<8 | uint16(lo)
}

// zeroPageByte reads the operand byte at pc+1 on b.
func zeroPageByte(pc uint16, b bus.Bus) uint8 {
	return b.Read(pc+1, access.DataRead)
}

// EffectiveAddress computes the 16-bit address m names, given the current
// PC and X/Y registers and the bus to read operand/pointer bytes from. It
// does not advance PC. pageCrossed reports whether computing the address
// crossed a 256-byte page boundary (only meaningful for AbsoluteX,
// AbsoluteY and ZeroPageIndirectY; false for every other mode).
//
// Relative, Implied and Accumulator have no memory operand and must not
// be passed here; branch handlers and register-only ops compute/act
// directly instead.
func EffectiveAddress(m Mode, pc uint16, x, y uint8, b bus.Bus) (addr uint16, pageCrossed bool) {
	switch m {
	case Immediate:
		return pc + 1, false

	case Absolute:
		return absoluteWord(pc, b), false

	case AbsoluteX:
		base := absoluteWord(pc, b)
		addr = base + uint16(x)
		return addr, !samePage(base, addr)

	case AbsoluteY:
		base := absoluteWord(pc, b)
		addr = base + uint16(y)
		return addr, !samePage(base, addr)

	case AbsoluteIndirect:
		ptr := absoluteWord(pc, b)
		lo := b.Read(ptr, access.DataRead)
		hi := b.Read((ptr&0xFF00)|((ptr+1)&0x00FF), access.DataRead)
		return uint16(hi)<<8 | uint16(lo), false

	case AbsoluteIndirectCorrect:
		ptr := absoluteWord(pc, b)
		lo := b.Read(ptr, access.DataRead)
		hi := b.Read(ptr+1, access.DataRead)
		return uint16(hi)<<8 | uint16(lo), false

	case AbsoluteIndirectX:
		ptr := absoluteWord(pc, b) + uint16(x)
		lo := b.Read(ptr, access.DataRead)
		hi := b.Read(ptr+1, access.DataRead)
		return uint16(hi)<<8 | uint16(lo), false

	case ZeroPage:
		return uint16(zeroPageByte(pc, b)), false

	case ZeroPageX:
		return uint16(zeroPageByte(pc, b) + x), false

	case ZeroPageY:
		return uint16(zeroPageByte(pc, b) + y), false

	case ZeroPageIndirect:
		ptr := zeroPageByte(pc, b)
		lo := b.Read(uint16(ptr), access.DataRead)
		hi := b.Read(uint16(ptr+1), access.DataRead)
		return uint16(hi)<<8 | uint16(lo), false

	case ZeroPageXIndirect:
		ptr := zeroPageByte(pc, b) + x
		lo := b.Read(uint16(ptr), access.DataRead)
		hi := b.Read(uint16(ptr+1), access.DataRead)
		return uint16(hi)<<8 | uint16(lo), false

	case ZeroPageIndirectY:
		ptr := zeroPageByte(pc, b)
		lo := b.Read(uint16(ptr), access.DataRead)
		hi := b.Read(uint16(ptr+1), access.DataRead)
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(y)
		return addr, !samePage(base, addr)

	default:
		return 0, false
	}
}
