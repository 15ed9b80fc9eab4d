// Package disassemble implements a disassembler for 6502/65C02 opcodes.
package disassemble

import (
	"fmt"

	"github.com/sixfiveoh/ull6502/access"
	"github.com/sixfiveoh/ull6502/addressing"
	"github.com/sixfiveoh/ull6502/bus"
	"github.com/sixfiveoh/ull6502/cpu"
)

// Step disassembles the instruction at pc on the given variant's table,
// returning its text and the byte count the PC should advance to reach
// the next instruction. It always reads 2 bytes past pc, so callers must
// ensure that range is valid memory; reads use access.DummyRead so they
// carry no side effect on a real bus.
func Step(pc uint16, b bus.Bus, v cpu.Variant) (string, int) {
	opcode := b.Read(pc, access.DummyRead)
	b1 := b.Read(pc+1, access.DummyRead)
	b2 := b.Read(pc+2, access.DummyRead)

	table := cpu.TableFor(v)
	entry := table[opcode]
	mode := modeTableFor(v)[opcode]

	out := fmt.Sprintf("%.4X %.2X ", pc, opcode)
	count := int(mode.Bytes())

	switch mode {
	case addressing.Immediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", b1, entry.Name, b1)
	case addressing.ZeroPage:
		out += fmt.Sprintf("%.2X      %s %.2X        ", b1, entry.Name, b1)
	case addressing.ZeroPageX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", b1, entry.Name, b1)
	case addressing.ZeroPageY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", b1, entry.Name, b1)
	case addressing.ZeroPageXIndirect:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", b1, entry.Name, b1)
	case addressing.ZeroPageIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", b1, entry.Name, b1)
	case addressing.ZeroPageIndirect:
		out += fmt.Sprintf("%.2X      %s (%.2X)      ", b1, entry.Name, b1)
	case addressing.Absolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", b1, b2, entry.Name, b2, b1)
	case addressing.AbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", b1, b2, entry.Name, b2, b1)
	case addressing.AbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", b1, b2, entry.Name, b2, b1)
	case addressing.AbsoluteIndirect, addressing.AbsoluteIndirectCorrect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", b1, b2, entry.Name, b2, b1)
	case addressing.AbsoluteIndirectX:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X,X)  ", b1, b2, entry.Name, b2, b1)
	case addressing.Accumulator:
		out += fmt.Sprintf("        %s A         ", entry.Name)
	case addressing.Relative:
		target := pc + 2 + uint16(int16(int8(b1)))
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", b1, entry.Name, b1, target)
	case addressing.ZeroPageRelative:
		target := pc + 3 + uint16(int16(int8(b2)))
		out += fmt.Sprintf("%.2X %.2X   %s %.2X,%.2X (%.4X) ", b1, b2, entry.Name, b1, b2, target)
	default:
		out += fmt.Sprintf("        %s           ", entry.Name)
	}
	return out, count
}
