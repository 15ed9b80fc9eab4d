// Package cpu implements the MOS 6502 and WDC 65C02S processor core: the
// register file, status flags, interrupt sequencing, stack protocol,
// opcode dispatch and cycle accounting. The core borrows the bus
// exclusively for the duration of every call; it never stores a bus
// reference between calls.
package cpu

import (
	"fmt"

	"github.com/sixfiveoh/ull6502/access"
	"github.com/sixfiveoh/ull6502/bus"
)

// Status register bit masks. Named after the flag letters in the
// classic 6502 reference (C Z I D B E V N) rather than the bit position,
// since that's what every opcode body actually reasons about.
const (
	FlagCarry            uint8 = 0x01
	FlagZero             uint8 = 0x02
	FlagInterruptDisable uint8 = 0x04
	FlagDecimal          uint8 = 0x08
	FlagBreak            uint8 = 0x10
	FlagExpansion        uint8 = 0x20
	FlagOverflow         uint8 = 0x40
	FlagNegative         uint8 = 0x80
)

// Variant selects which instruction table and decimal-mode behavior a
// Processor uses.
type Variant int

const (
	// NMOS6502 is the base MOS 6502 including the common undocumented
	// opcodes, with BCD-mode ADC/SBC enabled.
	NMOS6502 Variant = iota
	// Ricoh2A03 is the NES-style 6502 derivative: identical opcode table
	// to NMOS6502 but with BCD correction suppressed.
	Ricoh2A03
	// WDC65C02S is the CMOS variant with its extended instruction set,
	// fixed indirect-JMP page wrap, and NOP-ified illegal opcode slots.
	WDC65C02S
)

// RunState is the processor's current scheduling state.
type RunState int

const (
	// Running executes one instruction (or interrupt entry) per step.
	Running RunState = iota
	// Waiting is WAI's idle state: the processor marks no progress until
	// an interrupt is latched.
	Waiting
	// Halted is STP/JAM's terminal state: no further progress is possible
	// short of an external reset.
	Halted
)

// String implements fmt.Stringer.
func (s RunState) String() string {
	switch s {
	case Running:
		return "Running"
	case Waiting:
		return "Waiting"
	case Halted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// InvalidCPUState is returned when construction is asked to build a
// processor with a variant or table that isn't well formed.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Processor holds the 6502/65C02 register file, status flags, interrupt
// latches and cycle accounting. All SP arithmetic wraps at 8 bits and all
// PC arithmetic wraps at 16 bits.
type Processor struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  uint8

	Cycles     uint64
	LastCycles int
	LastOpcode uint8
	State      RunState

	resetPending bool
	nmiPending   bool
	irqPending   bool

	variant Variant
	decimal bool
	table   *Table
}

// WithInstructionSet constructs a Processor with power-on defaults:
// A/X/Y=0, SP=0xFD, P=I|E, PC=0, cycles=0, Running, no pending
// interrupts. No reset is performed; PC stays 0 until Reset (or a
// construction helper that performs one) is called.
func WithInstructionSet(v Variant) (*Processor, error) {
	t, decimal, err := tableFor(v)
	if err != nil {
		return nil, err
	}
	p := &Processor{
		SP:      0xFD,
		P:       FlagInterruptDisable | FlagExpansion,
		State:   Running,
		variant: v,
		decimal: decimal,
		table:   t,
	}
	return p, nil
}

// WithResetVector writes target to the bus's reset vector, constructs a
// Processor for v, and performs Reset so PC is loaded from it.
func WithResetVector(b bus.Bus, v Variant, target uint16) (*Processor, error) {
	bus.WriteResetVector(b, target)
	p, err := WithInstructionSet(v)
	if err != nil {
		return nil, err
	}
	p.Reset(b)
	return p, nil
}

// WithProgram block-writes bytes at loadAddress, writes the reset vector
// to resetTarget, constructs a Processor for v, and performs Reset.
func WithProgram(b bus.Bus, v Variant, loadAddress uint16, program []uint8, resetTarget uint16) (*Processor, error) {
	b.WriteBlock(loadAddress, program, access.DataWrite)
	return WithResetVector(b, v, resetTarget)
}

// tableFor resolves the instruction table and decimal-mode support for a
// variant. Ricoh2A03 shares the NMOS table verbatim; only the decimal
// flag differs.
func tableFor(v Variant) (*Table, bool, error) {
	switch v {
	case NMOS6502:
		return &mos6502Table, true, nil
	case Ricoh2A03:
		return &mos6502Table, false, nil
	case WDC65C02S:
		return &wdc65c02Table, true, nil
	default:
		return nil, false, InvalidCPUState{Reason: fmt.Sprintf("unknown variant %d", v)}
	}
}

// Variant returns the variant this processor was constructed with.
func (p *Processor) Variant() Variant {
	return p.variant
}

// Flag reports whether the given status bit is set in P.
func (p *Processor) Flag(mask uint8) bool {
	return p.P&mask != 0
}

// SetFlag sets or clears the given status bit in P.
func (p *Processor) SetFlag(mask uint8, set bool) {
	if set {
		p.P |= mask
	} else {
		p.P &^= mask
	}
}

// setZN sets the Zero and Negative flags from val, the common tail of
// almost every data-moving or arithmetic instruction.
func (p *Processor) setZN(val uint8) {
	p.SetFlag(FlagZero, val == 0)
	p.SetFlag(FlagNegative, val&0x80 != 0)
}

// push writes val to the stack at $0100+SP with access.StackWrite, then
// decrements SP (8-bit wrap).
func (p *Processor) push(b bus.Bus, val uint8) {
	b.Write(bus.StackBase+uint16(p.SP), val, access.StackWrite)
	p.SP--
}

// pull increments SP (8-bit wrap), then reads the stack at $0100+SP with
// access.StackRead.
func (p *Processor) pull(b bus.Bus) uint8 {
	p.SP++
	return b.Read(bus.StackBase+uint16(p.SP), access.StackRead)
}

// Reset reloads PC from the bus's reset vector and re-establishes the
// default register/flag state and Running run-state. It does not push
// anything to the stack and does not read any state byte beyond the
// vector itself.
func (p *Processor) Reset(b bus.Bus) {
	lo := b.Read(bus.ResetVectorLow, access.InterruptVectorRead)
	hi := b.Read(bus.ResetVectorHigh, access.InterruptVectorRead)
	p.PC = uint16(hi)<<8 | uint16(lo)
	p.A, p.X, p.Y = 0, 0, 0
	p.SP = 0xFD
	p.P = FlagInterruptDisable | FlagExpansion
	p.Cycles = 0
	p.State = Running
	p.resetPending = false
}

// RaiseReset latches a reset request. It is serviced at the next Step
// boundary ahead of NMI, IRQ and the Waiting state. Step checks Halted
// before the latch, so a Halted processor stays halted until Reset is
// called directly.
func (p *Processor) RaiseReset() {
	p.resetPending = true
}

// RaiseNMI latches a non-maskable interrupt request, serviced at the
// next Step boundary regardless of the I flag.
func (p *Processor) RaiseNMI() {
	p.nmiPending = true
}

// RaiseIRQ latches a maskable interrupt request, serviced at the next
// Step boundary if the I flag is clear.
func (p *Processor) RaiseIRQ() {
	p.irqPending = true
}

// enterInterrupt runs the shared NMI/IRQ entry sequence: it wakes a
// Waiting processor, pushes PC and P (with B and D forced clear in the
// pushed byte only), sets I, clears the live D flag on 65C02, and loads
// PC from the given vector.
func (p *Processor) enterInterrupt(b bus.Bus, vectorLow, vectorHigh uint16) {
	p.State = Running
	p.push(b, uint8(p.PC>>8))
	p.push(b, uint8(p.PC&0xFF))
	pushedP := (p.P &^ FlagBreak) &^ FlagDecimal
	pushedP |= FlagExpansion
	p.push(b, pushedP)
	p.SetFlag(FlagInterruptDisable, true)
	if p.variant == WDC65C02S {
		p.SetFlag(FlagDecimal, false)
	}
	lo := b.Read(vectorLow, access.InterruptVectorRead)
	hi := b.Read(vectorHigh, access.InterruptVectorRead)
	p.PC = uint16(hi)<<8 | uint16(lo)
}

// Step performs one unit of scheduled work, checking in priority order:
// halted/reset/NMI/IRQ-unmasked/waiting shortcuts, else a normal opcode
// fetch-and-execute. It returns the cycles consumed.
func (p *Processor) Step(b bus.Bus) int {
	switch {
	case p.State == Halted:
		return 0

	case p.resetPending:
		p.Reset(b)
		return 0

	case p.nmiPending:
		p.nmiPending = false
		p.enterInterrupt(b, bus.NMIVectorLow, bus.NMIVectorHigh)
		return 0

	case p.irqPending && !p.Flag(FlagInterruptDisable):
		p.irqPending = false
		p.enterInterrupt(b, bus.IRQVectorLow, bus.IRQVectorHigh)
		return 0

	case p.State == Waiting:
		return 0
	}

	before := p.Cycles
	opcode := b.Read(p.PC, access.OpcodeFetch)
	p.LastOpcode = opcode
	entry := p.table[opcode]
	extra := entry.Exec(p, b)
	p.Cycles += uint64(entry.Cycles) + uint64(extra)
	consumed := int(p.Cycles - before)
	p.LastCycles = consumed
	return consumed
}

// Tick wraps Step: after a non-zero step it calls bus.OnTick once with
// the consumed cycles, then repeatedly drains bus.PollDMACycle, calling
// OnTick once per drained chunk, until the bus reports nothing pending.
// This keeps bus-visible wall time equal to instruction time plus DMA
// time with no gap.
func (p *Processor) Tick(b bus.Bus) int {
	cycles := p.Step(b)
	if cycles > 0 {
		b.OnTick(uint64(cycles))
	}
	for {
		dmaCycles, ok := b.PollDMACycle()
		if !ok {
			break
		}
		b.OnTick(dmaCycles)
	}
	return cycles
}
