package cpu

import "github.com/sixfiveoh/ull6502/bus"

// Exec is an opcode handler. It is responsible for computing its own
// effective address, performing the bus accesses, updating flags and PC
// (by the addressing mode's byte count, or directly for control-flow
// instructions), and returning any extra cycles beyond the table's base
// cost (branch-taken, page-cross, etc).
type Exec func(p *Processor, b bus.Bus) (extraCycles int)

// Entry is one instruction-table slot: a base cycle count, the mnemonic
// (for disassembly/debugging) and the handler.
type Entry struct {
	Cycles uint8
	Name   string
	Exec   Exec
}

// Table is a dense 256-entry instruction table. Every slot is populated;
// vacant NMOS opcodes use an illegal-NOP or jam handler rather than being
// left as a zero value, so dispatch never needs a presence check.
type Table [256]Entry
