package cpu

import "github.com/sixfiveoh/ull6502/addressing"

// adc implements ADC in both binary and (when the variant and the D flag
// both allow it) BCD mode.
func adc(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.doADC(val)
	})
}

func (p *Processor) doADC(val uint8) {
	carryIn := uint8(0)
	if p.Flag(FlagCarry) {
		carryIn = 1
	}
	if p.decimal && p.Flag(FlagDecimal) {
		p.adcDecimal(val, carryIn)
		return
	}
	oldA := p.A
	sum := uint16(oldA) + uint16(val) + uint16(carryIn)
	result := uint8(sum)
	p.SetFlag(FlagCarry, sum > 0xFF)
	p.SetFlag(FlagOverflow, (oldA^result)&(val^result)&0x80 != 0)
	p.A = result
	p.setZN(p.A)
}

// adcDecimal implements BCD-mode ADC. Z/N are taken from the uncorrected
// binary sum, the NMOS-observable ordering both variants use here; V is
// computed from that same binary sum. The per-nibble correction with
// base-10 carries produces the stored A and C.
func (p *Processor) adcDecimal(val, carryIn uint8) {
	oldA := p.A
	binResult := uint8(uint16(oldA) + uint16(val) + uint16(carryIn))
	overflow := (oldA^binResult)&(val^binResult)&0x80 != 0

	lo := (oldA & 0x0F) + (val & 0x0F) + carryIn
	var carryToHigh uint8
	if lo > 9 {
		lo -= 10
		carryToHigh = 1
	}
	hi := (oldA >> 4) + (val >> 4) + carryToHigh
	carryOut := hi > 9
	if carryOut {
		hi -= 10
	}

	p.SetFlag(FlagCarry, carryOut)
	p.SetFlag(FlagOverflow, overflow)
	p.SetFlag(FlagZero, binResult == 0)
	p.SetFlag(FlagNegative, binResult&0x80 != 0)
	p.A = (hi << 4) | (lo & 0x0F)
}

// sbc implements SBC via one's-complement-of-operand addition, in both
// binary and BCD mode.
func sbc(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) {
		p.doSBC(val)
	})
}

func (p *Processor) doSBC(val uint8) {
	carryIn := uint8(0)
	if p.Flag(FlagCarry) {
		carryIn = 1
	}
	if p.decimal && p.Flag(FlagDecimal) {
		p.sbcDecimal(val, carryIn)
		return
	}
	oldA := p.A
	comp := val ^ 0xFF
	sum := uint16(oldA) + uint16(comp) + uint16(carryIn)
	result := uint8(sum)
	p.SetFlag(FlagCarry, sum > 0xFF)
	p.SetFlag(FlagOverflow, (oldA^result)&(comp^result)&0x80 != 0)
	p.A = result
	p.setZN(p.A)
}

// sbcDecimal implements BCD-mode SBC with a borrow of (1-C), subtracting
// per nibble with base-10 borrows. Z/N/V come from the binary-domain
// complement-addition, matching adcDecimal's ordering choice.
func (p *Processor) sbcDecimal(val, carryIn uint8) {
	oldA := p.A
	comp := val ^ 0xFF
	binSum := uint16(oldA) + uint16(comp) + uint16(carryIn)
	binResult := uint8(binSum)
	carryOut := binSum > 0xFF
	overflow := (oldA^binResult)&(comp^binResult)&0x80 != 0

	borrow := int8(1 - int8(carryIn))
	lo := int8(oldA&0x0F) - int8(val&0x0F) - borrow
	var borrowFromHigh int8
	if lo < 0 {
		lo += 10
		borrowFromHigh = 1
	}
	hi := int8(oldA>>4) - int8(val>>4) - borrowFromHigh
	if hi < 0 {
		hi += 10
	}

	p.SetFlag(FlagCarry, carryOut)
	p.SetFlag(FlagOverflow, overflow)
	p.SetFlag(FlagZero, binResult == 0)
	p.SetFlag(FlagNegative, binResult&0x80 != 0)
	p.A = uint8(hi<<4) | uint8(lo&0x0F)
}

// compare implements the shared CMP/CPX/CPY semantics: reg - operand in
// binary, with C set when no borrow occurred (reg >= operand unsigned).
func compare(p *Processor, reg, val uint8) {
	result := reg - val
	p.SetFlag(FlagCarry, reg >= val)
	p.SetFlag(FlagZero, reg == val)
	p.SetFlag(FlagNegative, result&0x80 != 0)
}

func cmp(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) { compare(p, p.A, val) })
}

func cpx(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) { compare(p, p.X, val) })
}

func cpy(mode addressing.Mode) Exec {
	return readOp(mode, func(p *Processor, val uint8) { compare(p, p.Y, val) })
}
