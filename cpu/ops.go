package cpu

import (
	"github.com/sixfiveoh/ull6502/access"
	"github.com/sixfiveoh/ull6502/addressing"
	"github.com/sixfiveoh/ull6502/bus"
)

// pageCrossExtra returns the page-cross penalty for a read that computed
// its address via mode and reported crossed. ZeroPageIndirectY never
// charges this, even though real hardware does.
func pageCrossExtra(mode addressing.Mode, crossed bool) int {
	if !crossed {
		return 0
	}
	switch mode {
	case addressing.AbsoluteX, addressing.AbsoluteY:
		return 1
	default:
		return 0
	}
}

// operand reads the single byte a read-type instruction acts on for mode,
// returning the page-cross penalty alongside it.
func operand(p *Processor, b bus.Bus, mode addressing.Mode) (val uint8, extra int) {
	if mode == addressing.Immediate {
		return b.Read(p.PC+1, access.DataRead), 0
	}
	addr, crossed := addressing.EffectiveAddress(mode, p.PC, p.X, p.Y, b)
	return b.Read(addr, access.DataRead), pageCrossExtra(mode, crossed)
}

// readOp builds a handler for instructions that read one operand byte and
// fold it into processor state (LDA, AND, ORA, EOR, ADC, SBC, CMP, ...).
func readOp(mode addressing.Mode, fn func(p *Processor, val uint8)) Exec {
	return func(p *Processor, b bus.Bus) int {
		val, extra := operand(p, b, mode)
		fn(p, val)
		p.PC += uint16(mode.Bytes())
		return extra
	}
}

// writeOp builds a handler for instructions that store a computed byte to
// memory (STA, STX, STY, STZ). Writes never earn the page-cross bonus.
func writeOp(mode addressing.Mode, fn func(p *Processor) uint8) Exec {
	return func(p *Processor, b bus.Bus) int {
		addr, _ := addressing.EffectiveAddress(mode, p.PC, p.X, p.Y, b)
		b.Write(addr, fn(p), access.DataWrite)
		p.PC += uint16(mode.Bytes())
		return 0
	}
}

// rmwOp builds a handler for read-modify-write instructions (ASL, LSR,
// ROL, ROR, INC, DEC, TSB, TRB, RMB, SMB). Accumulator mode operates on A
// directly with no bus access.
func rmwOp(mode addressing.Mode, fn func(p *Processor, val uint8) uint8) Exec {
	return func(p *Processor, b bus.Bus) int {
		if mode == addressing.Accumulator {
			p.A = fn(p, p.A)
			p.PC += uint16(mode.Bytes())
			return 0
		}
		addr, _ := addressing.EffectiveAddress(mode, p.PC, p.X, p.Y, b)
		val := b.Read(addr, access.DataRead)
		res := fn(p, val)
		b.Write(addr, res, access.DataWrite)
		p.PC += uint16(mode.Bytes())
		return 0
	}
}

// impliedOp builds a handler for single-byte register-only instructions.
func impliedOp(fn func(p *Processor)) Exec {
	return func(p *Processor, _ bus.Bus) int {
		fn(p)
		p.PC++
		return 0
	}
}

// --- Load / store / transfer ---

func lda(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.A = val
		p.setZN(p.A)
	})
}

func ldx(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.X = val
		p.setZN(p.X)
	})
}

func ldy(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.Y = val
		p.setZN(p.Y)
	})
}

func sta(mode addressing.Mode) Exec {
	return writeOp(mode, func(p *Processor) uint8 { return p.A })
}

func stx(mode addressing.Mode) Exec {
	return writeOp(mode, func(p *Processor) uint8 { return p.X })
}

func sty(mode addressing.Mode) Exec {
	return writeOp(mode, func(p *Processor) uint8 { return p.Y })
}

// stz is 65C02-only: store zero.
func stz(mode addressing.Mode) Exec {
	return writeOp(mode, func(p *Processor) uint8 { return 0 })
}

func tax(p *Processor) { p.X = p.A; p.setZN(p.X) }
func txa(p *Processor) { p.A = p.X; p.setZN(p.A) }
func tay(p *Processor) { p.Y = p.A; p.setZN(p.Y) }
func tya(p *Processor) { p.A = p.Y; p.setZN(p.A) }
func tsx(p *Processor) { p.X = p.SP; p.setZN(p.X) }
func txs(p *Processor) { p.SP = p.X }

// --- Stack ---

func pha(p *Processor, b bus.Bus) int { p.push(b, p.A); p.PC++; return 0 }
func plaOp(p *Processor, b bus.Bus) int {
	p.A = p.pull(b)
	p.setZN(p.A)
	p.PC++
	return 0
}
func php(p *Processor, b bus.Bus) int {
	p.push(b, p.P|FlagBreak|FlagExpansion)
	p.PC++
	return 0
}
func plp(p *Processor, b bus.Bus) int {
	p.P = (p.pull(b) &^ FlagBreak) | FlagExpansion
	p.PC++
	return 0
}

// phx/phy/plx/ply are 65C02-only; pull variants update Z/N like PLA.
func phx(p *Processor, b bus.Bus) int { p.push(b, p.X); p.PC++; return 0 }
func phy(p *Processor, b bus.Bus) int { p.push(b, p.Y); p.PC++; return 0 }
func plx(p *Processor, b bus.Bus) int {
	p.X = p.pull(b)
	p.setZN(p.X)
	p.PC++
	return 0
}
func ply(p *Processor, b bus.Bus) int {
	p.Y = p.pull(b)
	p.setZN(p.Y)
	p.PC++
	return 0
}

// --- Increment / decrement ---

func incMem(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		res := val + 1
		p.setZN(res)
		return res
	})
}

func decMem(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		res := val - 1
		p.setZN(res)
		return res
	})
}

func inx(p *Processor) { p.X++; p.setZN(p.X) }
func iny(p *Processor) { p.Y++; p.setZN(p.Y) }
func dex(p *Processor) { p.X--; p.setZN(p.X) }
func dey(p *Processor) { p.Y--; p.setZN(p.Y) }

// --- Logic ---

func and(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.A &= val
		p.setZN(p.A)
	})
}

func ora(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.A |= val
		p.setZN(p.A)
	})
}

func eor(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.A ^= val
		p.setZN(p.A)
	})
}

// bit implements BIT. The 65C02 immediate form only sets Z; every other
// form also sets N/V from bits 7/6 of the operand.
func bit(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.SetFlag(FlagZero, p.A&val == 0)
		if mode != addressing.Immediate {
			p.SetFlag(FlagNegative, val&0x80 != 0)
			p.SetFlag(FlagOverflow, val&0x40 != 0)
		}
	})
}

// --- Shifts / rotates ---

func asl(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		p.SetFlag(FlagCarry, val&0x80 != 0)
		res := val << 1
		p.setZN(res)
		return res
	})
}

func lsr(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		p.SetFlag(FlagCarry, val&0x01 != 0)
		res := val >> 1
		p.setZN(res)
		return res
	})
}

func rol(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		oldCarry := uint8(0)
		if p.Flag(FlagCarry) {
			oldCarry = 1
		}
		p.SetFlag(FlagCarry, val&0x80 != 0)
		res := (val << 1) | oldCarry
		p.setZN(res)
		return res
	})
}

func ror(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		oldCarry := uint8(0)
		if p.Flag(FlagCarry) {
			oldCarry = 0x80
		}
		p.SetFlag(FlagCarry, val&0x01 != 0)
		res := (val >> 1) | oldCarry
		p.setZN(res)
		return res
	})
}

// --- Flags ---

func clc(p *Processor) { p.SetFlag(FlagCarry, false) }
func sec(p *Processor) { p.SetFlag(FlagCarry, true) }
func cli(p *Processor) { p.SetFlag(FlagInterruptDisable, false) }
func sei(p *Processor) { p.SetFlag(FlagInterruptDisable, true) }
func clv(p *Processor) { p.SetFlag(FlagOverflow, false) }
func cld(p *Processor) { p.SetFlag(FlagDecimal, false) }
func sed(p *Processor) { p.SetFlag(FlagDecimal, true) }

// --- NOP / halt ---

func nopImplied(p *Processor, _ bus.Bus) int { p.PC++; return 0 }

// illegalOp consumes mode's bytes with no side effect, used for vacant
// NMOS slots and their 65C02 NOP replacements.
func illegalOp(mode addressing.Mode) Exec {
	return func(p *Processor, _ bus.Bus) int {
		p.PC += uint16(mode.Bytes())
		return 0
	}
}

// jam halts the processor; no further progress occurs short of a reset.
func jam(p *Processor, _ bus.Bus) int {
	p.State = Halted
	return 0
}

// stp is the 65C02 STP instruction: halts like jam, but is a documented,
// intentional opcode rather than a vacant slot.
func stp(p *Processor, _ bus.Bus) int {
	p.State = Halted
	p.PC++
	return 0
}

// wai is the 65C02 WAI instruction: advances PC, then idles until an
// interrupt is latched (Step's priority order wakes it on arrival).
func wai(p *Processor, _ bus.Bus) int {
	p.PC++
	p.State = Waiting
	return 0
}
