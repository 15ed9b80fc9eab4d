package cpu

import "github.com/sixfiveoh/ull6502/addressing"

// tsb implements Test-and-Set-Bits: Z reflects A&mem before the write,
// then mem gets A's bits set.
func tsb(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		p.SetFlag(FlagZero, p.A&val == 0)
		return val | p.A
	})
}

// trb implements Test-and-Reset-Bits: Z reflects A&mem before the write,
// then mem gets A's bits cleared.
func trb(mode addressing.Mode) Exec {
	return rmwOp(mode, func(p *Processor, val uint8) uint8 {
		p.SetFlag(FlagZero, p.A&val == 0)
		return val &^ p.A
	})
}

// rmb clears zero-page bit n, leaving flags untouched.
func rmb(bit uint8) Exec {
	mask := uint8(1) << bit
	return rmwOp(addressing.ZeroPage, func(_ *Processor, val uint8) uint8 {
		return val &^ mask
	})
}

// smb sets zero-page bit n, leaving flags untouched.
func smb(bit uint8) Exec {
	mask := uint8(1) << bit
	return rmwOp(addressing.ZeroPage, func(_ *Processor, val uint8) uint8 {
		return val | mask
	})
}
