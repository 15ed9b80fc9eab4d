package cpu

import (
	"github.com/sixfiveoh/ull6502/access"
	"github.com/sixfiveoh/ull6502/addressing"
	"github.com/sixfiveoh/ull6502/bus"
)

// illegalA is a single-byte NOP used for the handful of vacant slots
// reduced to a one-byte no-op regardless of their nominal addressing
// mode's byte count. XAA lands here too: its real behavior is
// magic-byte-dependent and unstable, so it executes as a plain NOP.
func illegalA(p *Processor, _ bus.Bus) int {
	p.PC++
	return 0
}

// The common NMOS undocumented opcodes. Each is built the same way: read
// or read-modify-write via the ordinary helpers, then layer the extra
// combined effect documented in the public 6502 undocumented-opcode
// literature on top.

// slo: ASL memory, then OR the result into A.
func slo(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		p.SetFlag(FlagCarry, val&0x80 != 0)
		res := val << 1
		p.A |= res
		p.setZN(p.A)
		return res
	})
}

// rla: ROL memory, then AND the result into A.
func rla(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		oldCarry := uint8(0)
		if p.Flag(FlagCarry) {
			oldCarry = 1
		}
		p.SetFlag(FlagCarry, val&0x80 != 0)
		res := (val << 1) | oldCarry
		p.A &= res
		p.setZN(p.A)
		return res
	})
}

// sre: LSR memory, then EOR the result into A.
func sre(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		p.SetFlag(FlagCarry, val&0x01 != 0)
		res := val >> 1
		p.A ^= res
		p.setZN(p.A)
		return res
	})
}

// rra: ROR memory, then ADC the result into A (honoring decimal mode).
func rra(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		oldCarry := uint8(0)
		if p.Flag(FlagCarry) {
			oldCarry = 0x80
		}
		p.SetFlag(FlagCarry, val&0x01 != 0)
		res := (val >> 1) | oldCarry
		p.doADC(res)
		return res
	})
}

// sax stores A&X with no flag effect.
func sax(mode addressing.Mode) Exec {
	return writeOp(mode, func(p *Processor) uint8 { return p.A & p.X })
}

// lax loads the same byte into both A and X.
func lax(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.A = val
		p.X = val
		p.setZN(val)
	})
}

// dcp: DEC memory, then CMP A against the result.
func dcp(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		res := val - 1
		compare(p, p.A, res)
		return res
	})
}

// isc: INC memory, then SBC the result from A (honoring decimal mode).
func isc(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		res := val + 1
		p.doSBC(res)
		return res
	})
}

// anc: AND #imm, then copy the sign bit into Carry (as if the result had
// been shifted through an ASL).
func anc(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.A &= val
		p.setZN(p.A)
		p.SetFlag(FlagCarry, p.A&0x80 != 0)
	})
}

// asr (also known as ALR): AND #imm, then LSR A.
func asr(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.A &= val
		p.SetFlag(FlagCarry, p.A&0x01 != 0)
		p.A >>= 1
		p.setZN(p.A)
	})
}

// arr: AND #imm, then ROR A, with C taken from bit 6 of the result and V
// from bit 6 XOR bit 5, per the commonly documented (binary-mode) behavior.
func arr(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		t := p.A & val
		oldCarry := uint8(0)
		if p.Flag(FlagCarry) {
			oldCarry = 0x80
		}
		p.A = (t >> 1) | oldCarry
		p.setZN(p.A)
		p.SetFlag(FlagCarry, p.A&0x40 != 0)
		p.SetFlag(FlagOverflow, (p.A>>6)&1^(p.A>>5)&1 != 0)
	})
}

// las: AND memory with SP, loading the result into A, X and SP alike.
func las(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		res := val & p.SP
		p.A, p.X, p.SP = res, res, res
		p.setZN(res)
	})
}

// sbx (also known as AXS): X = (A&X) - #imm, compare-style (no borrow in).
func sbx(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		base := p.A & p.X
		p.SetFlag(FlagCarry, base >= val)
		p.X = base - val
		p.setZN(p.X)
	})
}

// unstableHighByteStore models the SHX/SHY/SHA/SHS family: the stored
// value is ANDed with (addressHigh+1), a well-known but unstable quirk of
// this opcode family on real silicon.
func unstableHighByteStore(mode addressing.Mode, reg func(p *Processor) uint8) Exec {
	return func(p *Processor, b bus.Bus) int {
		addr, _ := addressing.EffectiveAddress(mode, p.PC, p.X, p.Y, b)
		val := reg(p) & (uint8(addr>>8) + 1)
		b.Write(addr, val, access.DataWrite)
		p.PC += uint16(mode.Bytes())
		return 0
	}
}

func shx(mode addressing.Mode) Exec {
	return unstableHighByteStore(mode, func(p *Processor) uint8 { return p.X })
}

func shy(mode addressing.Mode) Exec {
	return unstableHighByteStore(mode, func(p *Processor) uint8 { return p.Y })
}

func sha(mode addressing.Mode) Exec {
	return unstableHighByteStore(mode, func(p *Processor) uint8 { return p.A & p.X })
}

// shs (also known as TAS): SP = A&X, then store SP&(addressHigh+1).
func shs(mode addressing.Mode) Exec {
	return func(p *Processor, b bus.Bus) int {
		p.SP = p.A & p.X
		addr, _ := addressing.EffectiveAddress(mode, p.PC, p.X, p.Y, b)
		val := p.SP & (uint8(addr>>8) + 1)
		b.Write(addr, val, access.DataWrite)
		p.PC += uint16(mode.Bytes())
		return 0
	}
}
