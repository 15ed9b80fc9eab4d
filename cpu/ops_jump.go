package cpu

import (
	"github.com/sixfiveoh/ull6502/access"
	"github.com/sixfiveoh/ull6502/addressing"
	"github.com/sixfiveoh/ull6502/bus"
)

// jmp sets PC directly to the address mode computes (already dereferenced
// for indirect modes), performing no further PC bump.
func jmp(mode addressing.Mode) Exec {
	return func(p *Processor, b bus.Bus) int {
		addr, _ := addressing.EffectiveAddress(mode, p.PC, p.X, p.Y, b)
		p.PC = addr
		return 0
	}
}

// jsr pushes (PC+2), the address of JSR's own last byte rather than the
// byte after it, high then low, and jumps to the target.
func jsr(p *Processor, b bus.Bus) int {
	addr, _ := addressing.EffectiveAddress(addressing.Absolute, p.PC, p.X, p.Y, b)
	target := p.PC + 2
	p.push(b, uint8(target>>8))
	p.push(b, uint8(target&0xFF))
	p.PC = addr
	return 0
}

// rts pulls low then high and advances by 1 to land on the instruction
// after the original JSR.
func rts(p *Processor, b bus.Bus) int {
	lo := p.pull(b)
	hi := p.pull(b)
	p.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return 0
}

// rti pulls P (forcing E=1, B=0) then PC low, then PC high. Unlike RTS
// there is no +1 adjustment.
func rti(p *Processor, b bus.Bus) int {
	p.P = (p.pull(b) &^ FlagBreak) | FlagExpansion
	lo := p.pull(b)
	hi := p.pull(b)
	p.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}

// brk pushes PC+2 (skipping the signature byte after the opcode) high
// then low, pushes P|B|E, sets I (clearing D on 65C02), and loads PC
// from the IRQ/BRK vector.
func brk(p *Processor, b bus.Bus) int {
	target := p.PC + 2
	p.push(b, uint8(target>>8))
	p.push(b, uint8(target&0xFF))
	p.push(b, p.P|FlagBreak|FlagExpansion)
	p.SetFlag(FlagInterruptDisable, true)
	if p.variant == WDC65C02S {
		p.SetFlag(FlagDecimal, false)
	}
	lo := b.Read(bus.IRQVectorLow, access.InterruptVectorRead)
	hi := b.Read(bus.IRQVectorHigh, access.InterruptVectorRead)
	p.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}
