package cpu

import "github.com/sixfiveoh/ull6502/addressing"

// wdc65c02Table starts from a copy of the NMOS table and layers on the
// WDC 65C02S changes: the (zp) indirect addressing forms, BRA, PHX/PHY/
// PLX/PLY, STZ, TSB/TRB, INC A/DEC A, the fixed indirect-JMP page-wrap
// and its (abs,X) sibling, RMBn/SMBn/BBRn/BBSn in the columns the NMOS
// table used for undocumented opcodes, WAI/STP, and documented NOPs of
// varying length in every slot that has no 65C02 definition.
var wdc65c02Table = func() Table {
	t := mos6502Table

	// --- new (zp) indirect forms, one per accumulator op family ---
	t[0x12] = Entry{5, "ORA", ora(addressing.ZeroPageIndirect)}
	t[0x32] = Entry{5, "AND", and(addressing.ZeroPageIndirect)}
	t[0x52] = Entry{5, "EOR", eor(addressing.ZeroPageIndirect)}
	t[0x72] = Entry{5, "ADC", adc(addressing.ZeroPageIndirect)}
	t[0x92] = Entry{5, "STA", sta(addressing.ZeroPageIndirect)}
	t[0xB2] = Entry{5, "LDA", lda(addressing.ZeroPageIndirect)}
	t[0xD2] = Entry{5, "CMP", cmp(addressing.ZeroPageIndirect)}
	t[0xF2] = Entry{5, "SBC", sbc(addressing.ZeroPageIndirect)}

	// --- TSB/TRB, STZ, BIT extensions ---
	t[0x04] = Entry{5, "TSB", tsb(addressing.ZeroPage)}
	t[0x0C] = Entry{6, "TSB", tsb(addressing.Absolute)}
	t[0x14] = Entry{5, "TRB", trb(addressing.ZeroPage)}
	t[0x1C] = Entry{6, "TRB", trb(addressing.Absolute)}
	t[0x34] = Entry{4, "BIT", bit(addressing.ZeroPageX)}
	t[0x3C] = Entry{4, "BIT", bit(addressing.AbsoluteX)}
	t[0x89] = Entry{2, "BIT", bit(addressing.Immediate)}
	t[0x64] = Entry{3, "STZ", stz(addressing.ZeroPage)}
	t[0x74] = Entry{4, "STZ", stz(addressing.ZeroPageX)}
	t[0x9C] = Entry{4, "STZ", stz(addressing.Absolute)}
	t[0x9E] = Entry{5, "STZ", stz(addressing.AbsoluteX)}

	// --- INC A / DEC A, BRA, stack register ops ---
	t[0x1A] = Entry{2, "INC", incMem(addressing.Accumulator)}
	t[0x3A] = Entry{2, "DEC", decMem(addressing.Accumulator)}
	t[0x80] = Entry{2, "BRA", bra}
	t[0x5A] = Entry{3, "PHY", phy}
	t[0x7A] = Entry{4, "PLY", ply}
	t[0xDA] = Entry{3, "PHX", phx}
	t[0xFA] = Entry{4, "PLX", plx}

	// --- indirect JMP fix and its (abs,X) sibling ---
	t[0x6C] = Entry{6, "JMP", jmp(addressing.AbsoluteIndirectCorrect)}
	t[0x7C] = Entry{6, "JMP", jmp(addressing.AbsoluteIndirectX)}

	// --- WAI / STP ---
	t[0xCB] = Entry{3, "WAI", wai}
	t[0xDB] = Entry{3, "STP", stp}

	// --- RMBn / SMBn / BBRn / BBSn, reusing the NMOS table's x7/xF columns ---
	for bit := uint8(0); bit < 8; bit++ {
		t[0x07+bit*0x10] = Entry{5, "RMB", rmb(bit)}
		t[0x87+bit*0x10] = Entry{5, "SMB", smb(bit)}
		t[0x0F+bit*0x10] = Entry{5, "BBR", bitBranch(bit, false)}
		t[0x8F+bit*0x10] = Entry{5, "BBS", bitBranch(bit, true)}
	}

	// --- documented NOPs over every remaining vacant NMOS slot ---
	oneByteNop := []uint16{
		0x03, 0x13, 0x23, 0x33, 0x43, 0x53, 0x63, 0x73,
		0x83, 0x93, 0xA3, 0xB3, 0xC3, 0xD3, 0xE3, 0xF3,
		0x0B, 0x1B, 0x2B, 0x3B, 0x4B, 0x5B, 0x6B, 0x7B,
		0x8B, 0x9B, 0xAB, 0xBB, 0xEB, 0xFB,
	}
	for _, op := range oneByteNop {
		t[op] = Entry{1, "NOP", illegalOp(addressing.Implied)}
	}
	twoByteNop2 := []uint16{0x02, 0x22, 0x42, 0x62, 0x82, 0xC2, 0xE2}
	for _, op := range twoByteNop2 {
		t[op] = Entry{2, "NOP", illegalOp(addressing.Immediate)}
	}
	t[0x44] = Entry{3, "NOP", illegalOp(addressing.Immediate)}
	twoByteNop4 := []uint16{0x54, 0xD4, 0xF4}
	for _, op := range twoByteNop4 {
		t[op] = Entry{4, "NOP", illegalOp(addressing.Immediate)}
	}
	t[0x5C] = Entry{8, "NOP", illegalOp(addressing.Absolute)}
	threeByteNop4 := []uint16{0xDC, 0xFC}
	for _, op := range threeByteNop4 {
		t[op] = Entry{4, "NOP", illegalOp(addressing.Absolute)}
	}

	return t
}()
