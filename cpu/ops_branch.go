package cpu

import (
	"github.com/sixfiveoh/ull6502/access"
	"github.com/sixfiveoh/ull6502/bus"
)

func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// branch builds a handler for a two-byte relative branch: if cond is
// false PC advances by 2 with no extra cycles; if true, PC becomes
// (PC+2)+displacement, +1 cycle, and +1 more if that crossed a page.
func branch(cond func(p *Processor) bool) Exec {
	return func(p *Processor, b bus.Bus) int {
		disp := int8(b.Read(p.PC+1, access.DataRead))
		next := p.PC + 2
		if !cond(p) {
			p.PC = next
			return 0
		}
		target := uint16(int32(next) + int32(disp))
		extra := 1
		if !samePage(next, target) {
			extra++
		}
		p.PC = target
		return extra
	}
}

var (
	bcc = branch(func(p *Processor) bool { return !p.Flag(FlagCarry) })
	bcs = branch(func(p *Processor) bool { return p.Flag(FlagCarry) })
	bne = branch(func(p *Processor) bool { return !p.Flag(FlagZero) })
	beq = branch(func(p *Processor) bool { return p.Flag(FlagZero) })
	bpl = branch(func(p *Processor) bool { return !p.Flag(FlagNegative) })
	bmi = branch(func(p *Processor) bool { return p.Flag(FlagNegative) })
	bvc = branch(func(p *Processor) bool { return !p.Flag(FlagOverflow) })
	bvs = branch(func(p *Processor) bool { return p.Flag(FlagOverflow) })
	bra = branch(func(p *Processor) bool { return true })
)

// bitBranch builds BBRn/BBSn: a three-byte instruction that reads a
// zero-page byte, then applies the branch rule to bit n of that byte.
func bitBranch(bit uint8, set bool) Exec {
	mask := uint8(1) << bit
	return func(p *Processor, b bus.Bus) int {
		zp := b.Read(p.PC+1, access.DataRead)
		val := b.Read(uint16(zp), access.DataRead)
		disp := int8(b.Read(p.PC+2, access.DataRead))
		next := p.PC + 3
		cond := val&mask != 0
		if !set {
			cond = !cond
		}
		if !cond {
			p.PC = next
			return 0
		}
		target := uint16(int32(next) + int32(disp))
		extra := 1
		if !samePage(next, target) {
			extra++
		}
		p.PC = target
		return extra
	}
}
