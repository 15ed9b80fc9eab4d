package cpu

import "github.com/sixfiveoh/ull6502/addressing"

// mos6502Table is the dense 256-entry NMOS 6502 instruction table,
// including the commonly emulated undocumented opcodes (SLO, RLA, SRE,
// RRA, SAX, LAX, DCP, ISC, ANC, ASR, ARR, XAA, LAS, SHX, SHY, SHA, SHS,
// SBX), the JAM slots, and the illegal-NOP slots with their documented
// per-mode byte/cycle counts. Ricoh2A03 reuses this table verbatim with
// BCD correction suppressed via Processor.decimal.
var mos6502Table = Table{
	0x00: {7, "BRK", brk},
	0x01: {6, "ORA", ora(addressing.ZeroPageXIndirect)},
	0x02: {2, "JAM", jam},
	0x03: {8, "SLO", slo(addressing.ZeroPageXIndirect)},
	0x04: {3, "NOP", illegalOp(addressing.ZeroPage)},
	0x05: {3, "ORA", ora(addressing.ZeroPage)},
	0x06: {5, "ASL", asl(addressing.ZeroPage)},
	0x07: {5, "SLO", slo(addressing.ZeroPage)},
	0x08: {3, "PHP", php},
	0x09: {2, "ORA", ora(addressing.Immediate)},
	0x0A: {2, "ASL", asl(addressing.Accumulator)},
	0x0B: {2, "ANC", anc(addressing.Immediate)},
	0x0C: {4, "NOP", illegalOp(addressing.Absolute)},
	0x0D: {4, "ORA", ora(addressing.Absolute)},
	0x0E: {6, "ASL", asl(addressing.Absolute)},
	0x0F: {6, "SLO", slo(addressing.Absolute)},

	0x10: {2, "BPL", bpl},
	0x11: {5, "ORA", ora(addressing.ZeroPageIndirectY)},
	0x12: {2, "JAM", jam},
	0x13: {8, "SLO", slo(addressing.ZeroPageIndirectY)},
	0x14: {4, "NOP", illegalOp(addressing.ZeroPageX)},
	0x15: {4, "ORA", ora(addressing.ZeroPageX)},
	0x16: {6, "ASL", asl(addressing.ZeroPageX)},
	0x17: {6, "SLO", slo(addressing.ZeroPageX)},
	0x18: {2, "CLC", impliedOp(clc)},
	0x19: {4, "ORA", ora(addressing.AbsoluteY)},
	0x1A: {2, "NOP", nopImplied},
	0x1B: {7, "SLO", slo(addressing.AbsoluteY)},
	0x1C: {4, "NOP", illegalOp(addressing.AbsoluteX)},
	0x1D: {4, "ORA", ora(addressing.AbsoluteX)},
	0x1E: {7, "ASL", asl(addressing.AbsoluteX)},
	0x1F: {7, "SLO", slo(addressing.AbsoluteX)},

	0x20: {6, "JSR", jsr},
	0x21: {6, "AND", and(addressing.ZeroPageXIndirect)},
	0x22: {2, "JAM", jam},
	0x23: {8, "RLA", rla(addressing.ZeroPageXIndirect)},
	0x24: {3, "BIT", bit(addressing.ZeroPage)},
	0x25: {3, "AND", and(addressing.ZeroPage)},
	0x26: {5, "ROL", rol(addressing.ZeroPage)},
	0x27: {5, "RLA", rla(addressing.ZeroPage)},
	0x28: {4, "PLP", plp},
	0x29: {2, "AND", and(addressing.Immediate)},
	0x2A: {2, "ROL", rol(addressing.Accumulator)},
	0x2B: {2, "ANC", anc(addressing.Immediate)},
	0x2C: {4, "BIT", bit(addressing.Absolute)},
	0x2D: {4, "AND", and(addressing.Absolute)},
	0x2E: {6, "ROL", rol(addressing.Absolute)},
	0x2F: {6, "RLA", rla(addressing.Absolute)},

	0x30: {2, "BMI", bmi},
	0x31: {5, "AND", and(addressing.ZeroPageIndirectY)},
	0x32: {2, "JAM", jam},
	0x33: {8, "RLA", rla(addressing.ZeroPageIndirectY)},
	0x34: {4, "NOP", illegalOp(addressing.ZeroPageX)},
	0x35: {4, "AND", and(addressing.ZeroPageX)},
	0x36: {6, "ROL", rol(addressing.ZeroPageX)},
	0x37: {6, "RLA", rla(addressing.ZeroPageX)},
	0x38: {2, "SEC", impliedOp(sec)},
	0x39: {4, "AND", and(addressing.AbsoluteY)},
	0x3A: {2, "NOP", nopImplied},
	0x3B: {7, "RLA", rla(addressing.AbsoluteY)},
	0x3C: {4, "NOP", illegalOp(addressing.AbsoluteX)},
	0x3D: {4, "AND", and(addressing.AbsoluteX)},
	0x3E: {7, "ROL", rol(addressing.AbsoluteX)},
	0x3F: {7, "RLA", rla(addressing.AbsoluteX)},

	0x40: {6, "RTI", rti},
	0x41: {6, "EOR", eor(addressing.ZeroPageXIndirect)},
	0x42: {2, "JAM", jam},
	0x43: {8, "SRE", sre(addressing.ZeroPageXIndirect)},
	0x44: {3, "NOP", illegalOp(addressing.ZeroPage)},
	0x45: {3, "EOR", eor(addressing.ZeroPage)},
	0x46: {5, "LSR", lsr(addressing.ZeroPage)},
	0x47: {5, "SRE", sre(addressing.ZeroPage)},
	0x48: {3, "PHA", pha},
	0x49: {2, "EOR", eor(addressing.Immediate)},
	0x4A: {2, "LSR", lsr(addressing.Accumulator)},
	0x4B: {2, "ASR", asr(addressing.Immediate)},
	0x4C: {3, "JMP", jmp(addressing.Absolute)},
	0x4D: {4, "EOR", eor(addressing.Absolute)},
	0x4E: {6, "LSR", lsr(addressing.Absolute)},
	0x4F: {6, "SRE", sre(addressing.Absolute)},

	0x50: {2, "BVC", bvc},
	0x51: {5, "EOR", eor(addressing.ZeroPageIndirectY)},
	0x52: {2, "JAM", jam},
	0x53: {8, "SRE", sre(addressing.ZeroPageIndirectY)},
	0x54: {4, "NOP", illegalOp(addressing.ZeroPageX)},
	0x55: {4, "EOR", eor(addressing.ZeroPageX)},
	0x56: {6, "LSR", lsr(addressing.ZeroPageX)},
	0x57: {6, "SRE", sre(addressing.ZeroPageX)},
	0x58: {2, "CLI", impliedOp(cli)},
	0x59: {4, "EOR", eor(addressing.AbsoluteY)},
	0x5A: {2, "NOP", nopImplied},
	0x5B: {7, "SRE", sre(addressing.AbsoluteY)},
	0x5C: {4, "NOP", illegalOp(addressing.AbsoluteX)},
	0x5D: {4, "EOR", eor(addressing.AbsoluteX)},
	0x5E: {7, "LSR", lsr(addressing.AbsoluteX)},
	0x5F: {7, "SRE", sre(addressing.AbsoluteX)},

	0x60: {6, "RTS", rts},
	0x61: {6, "ADC", adc(addressing.ZeroPageXIndirect)},
	0x62: {2, "JAM", jam},
	0x63: {8, "RRA", rra(addressing.ZeroPageXIndirect)},
	0x64: {3, "NOP", illegalOp(addressing.ZeroPage)},
	0x65: {3, "ADC", adc(addressing.ZeroPage)},
	0x66: {5, "ROR", ror(addressing.ZeroPage)},
	0x67: {5, "RRA", rra(addressing.ZeroPage)},
	0x68: {4, "PLA", plaOp},
	0x69: {2, "ADC", adc(addressing.Immediate)},
	0x6A: {2, "ROR", ror(addressing.Accumulator)},
	0x6B: {2, "ARR", arr(addressing.Immediate)},
	0x6C: {5, "JMP", jmp(addressing.AbsoluteIndirect)},
	0x6D: {4, "ADC", adc(addressing.Absolute)},
	0x6E: {6, "ROR", ror(addressing.Absolute)},
	0x6F: {6, "RRA", rra(addressing.Absolute)},

	0x70: {2, "BVS", bvs},
	0x71: {5, "ADC", adc(addressing.ZeroPageIndirectY)},
	0x72: {2, "JAM", jam},
	0x73: {8, "RRA", rra(addressing.ZeroPageIndirectY)},
	0x74: {4, "NOP", illegalOp(addressing.ZeroPageX)},
	0x75: {4, "ADC", adc(addressing.ZeroPageX)},
	0x76: {6, "ROR", ror(addressing.ZeroPageX)},
	0x77: {6, "RRA", rra(addressing.ZeroPageX)},
	0x78: {2, "SEI", impliedOp(sei)},
	0x79: {4, "ADC", adc(addressing.AbsoluteY)},
	0x7A: {2, "NOP", nopImplied},
	0x7B: {7, "RRA", rra(addressing.AbsoluteY)},
	0x7C: {4, "NOP", illegalOp(addressing.AbsoluteX)},
	0x7D: {4, "ADC", adc(addressing.AbsoluteX)},
	0x7E: {7, "ROR", ror(addressing.AbsoluteX)},
	0x7F: {7, "RRA", rra(addressing.AbsoluteX)},

	0x80: {2, "NOP", illegalOp(addressing.Immediate)},
	0x81: {6, "STA", sta(addressing.ZeroPageXIndirect)},
	0x82: {2, "NOP", illegalOp(addressing.Immediate)},
	0x83: {6, "SAX", sax(addressing.ZeroPageXIndirect)},
	0x84: {3, "STY", sty(addressing.ZeroPage)},
	0x85: {3, "STA", sta(addressing.ZeroPage)},
	0x86: {3, "STX", stx(addressing.ZeroPage)},
	0x87: {3, "SAX", sax(addressing.ZeroPage)},
	0x88: {2, "DEY", impliedOp(dey)},
	0x89: {2, "NOP", illegalOp(addressing.Immediate)},
	0x8A: {2, "TXA", impliedOp(txa)},
	0x8B: {2, "XAA", illegalA},
	0x8C: {4, "STY", sty(addressing.Absolute)},
	0x8D: {4, "STA", sta(addressing.Absolute)},
	0x8E: {4, "STX", stx(addressing.Absolute)},
	0x8F: {4, "SAX", sax(addressing.Absolute)},

	0x90: {2, "BCC", bcc},
	0x91: {6, "STA", sta(addressing.ZeroPageIndirectY)},
	0x92: {2, "JAM", jam},
	0x93: {6, "SHA", sha(addressing.ZeroPageIndirectY)},
	0x94: {4, "STY", sty(addressing.ZeroPageX)},
	0x95: {4, "STA", sta(addressing.ZeroPageX)},
	0x96: {4, "STX", stx(addressing.ZeroPageY)},
	0x97: {4, "SAX", sax(addressing.ZeroPageY)},
	0x98: {2, "TYA", impliedOp(tya)},
	0x99: {5, "STA", sta(addressing.AbsoluteY)},
	0x9A: {2, "TXS", impliedOp(txs)},
	0x9B: {5, "SHS", shs(addressing.AbsoluteY)},
	0x9C: {5, "SHY", shy(addressing.AbsoluteX)},
	0x9D: {5, "STA", sta(addressing.AbsoluteX)},
	0x9E: {5, "SHX", shx(addressing.AbsoluteY)},
	0x9F: {5, "SHA", sha(addressing.AbsoluteY)},

	0xA0: {2, "LDY", ldy(addressing.Immediate)},
	0xA1: {6, "LDA", lda(addressing.ZeroPageXIndirect)},
	0xA2: {2, "LDX", ldx(addressing.Immediate)},
	0xA3: {6, "LAX", lax(addressing.ZeroPageXIndirect)},
	0xA4: {3, "LDY", ldy(addressing.ZeroPage)},
	0xA5: {3, "LDA", lda(addressing.ZeroPage)},
	0xA6: {3, "LDX", ldx(addressing.ZeroPage)},
	0xA7: {3, "LAX", lax(addressing.ZeroPage)},
	0xA8: {2, "TAY", impliedOp(tay)},
	0xA9: {2, "LDA", lda(addressing.Immediate)},
	0xAA: {2, "TAX", impliedOp(tax)},
	0xAB: {2, "LAX", lax(addressing.Immediate)},
	0xAC: {4, "LDY", ldy(addressing.Absolute)},
	0xAD: {4, "LDA", lda(addressing.Absolute)},
	0xAE: {4, "LDX", ldx(addressing.Absolute)},
	0xAF: {4, "LAX", lax(addressing.Absolute)},

	0xB0: {2, "BCS", bcs},
	0xB1: {5, "LDA", lda(addressing.ZeroPageIndirectY)},
	0xB2: {2, "JAM", jam},
	0xB3: {5, "LAX", lax(addressing.ZeroPageIndirectY)},
	0xB4: {4, "LDY", ldy(addressing.ZeroPageX)},
	0xB5: {4, "LDA", lda(addressing.ZeroPageX)},
	0xB6: {4, "LDX", ldx(addressing.ZeroPageY)},
	0xB7: {4, "LAX", lax(addressing.ZeroPageY)},
	0xB8: {2, "CLV", impliedOp(clv)},
	0xB9: {4, "LDA", lda(addressing.AbsoluteY)},
	0xBA: {2, "TSX", impliedOp(tsx)},
	0xBB: {4, "LAS", las(addressing.AbsoluteY)},
	0xBC: {4, "LDY", ldy(addressing.AbsoluteX)},
	0xBD: {4, "LDA", lda(addressing.AbsoluteX)},
	0xBE: {4, "LDX", ldx(addressing.AbsoluteY)},
	0xBF: {4, "LAX", lax(addressing.AbsoluteY)},

	0xC0: {2, "CPY", cpy(addressing.Immediate)},
	0xC1: {6, "CMP", cmp(addressing.ZeroPageXIndirect)},
	0xC2: {2, "NOP", illegalOp(addressing.Immediate)},
	0xC3: {8, "DCP", dcp(addressing.ZeroPageXIndirect)},
	0xC4: {3, "CPY", cpy(addressing.ZeroPage)},
	0xC5: {3, "CMP", cmp(addressing.ZeroPage)},
	0xC6: {5, "DEC", decMem(addressing.ZeroPage)},
	0xC7: {5, "DCP", dcp(addressing.ZeroPage)},
	0xC8: {2, "INY", impliedOp(iny)},
	0xC9: {2, "CMP", cmp(addressing.Immediate)},
	0xCA: {2, "DEX", impliedOp(dex)},
	0xCB: {2, "SBX", sbx(addressing.Immediate)},
	0xCC: {4, "CPY", cpy(addressing.Absolute)},
	0xCD: {4, "CMP", cmp(addressing.Absolute)},
	0xCE: {6, "DEC", decMem(addressing.Absolute)},
	0xCF: {6, "DCP", dcp(addressing.Absolute)},

	0xD0: {2, "BNE", bne},
	0xD1: {5, "CMP", cmp(addressing.ZeroPageIndirectY)},
	0xD2: {2, "JAM", jam},
	0xD3: {8, "DCP", dcp(addressing.ZeroPageIndirectY)},
	0xD4: {4, "NOP", illegalOp(addressing.ZeroPageX)},
	0xD5: {4, "CMP", cmp(addressing.ZeroPageX)},
	0xD6: {6, "DEC", decMem(addressing.ZeroPageX)},
	0xD7: {6, "DCP", dcp(addressing.ZeroPageX)},
	0xD8: {2, "CLD", impliedOp(cld)},
	0xD9: {4, "CMP", cmp(addressing.AbsoluteY)},
	0xDA: {2, "NOP", nopImplied},
	0xDB: {7, "DCP", dcp(addressing.AbsoluteY)},
	0xDC: {4, "NOP", illegalOp(addressing.AbsoluteX)},
	0xDD: {4, "CMP", cmp(addressing.AbsoluteX)},
	0xDE: {7, "DEC", decMem(addressing.AbsoluteX)},
	0xDF: {7, "DCP", dcp(addressing.AbsoluteX)},

	0xE0: {2, "CPX", cpx(addressing.Immediate)},
	0xE1: {6, "SBC", sbc(addressing.ZeroPageXIndirect)},
	0xE2: {2, "NOP", illegalOp(addressing.Immediate)},
	0xE3: {8, "ISC", isc(addressing.ZeroPageXIndirect)},
	0xE4: {3, "CPX", cpx(addressing.ZeroPage)},
	0xE5: {3, "SBC", sbc(addressing.ZeroPage)},
	0xE6: {5, "INC", incMem(addressing.ZeroPage)},
	0xE7: {5, "ISC", isc(addressing.ZeroPage)},
	0xE8: {2, "INX", impliedOp(inx)},
	0xE9: {2, "SBC", sbc(addressing.Immediate)},
	0xEA: {2, "NOP", nopImplied},
	0xEB: {2, "SBC", sbc(addressing.Immediate)},
	0xEC: {4, "CPX", cpx(addressing.Absolute)},
	0xED: {4, "SBC", sbc(addressing.Absolute)},
	0xEE: {6, "INC", incMem(addressing.Absolute)},
	0xEF: {6, "ISC", isc(addressing.Absolute)},

	0xF0: {2, "BEQ", beq},
	0xF1: {5, "SBC", sbc(addressing.ZeroPageIndirectY)},
	0xF2: {2, "JAM", jam},
	0xF3: {8, "ISC", isc(addressing.ZeroPageIndirectY)},
	0xF4: {4, "NOP", illegalOp(addressing.ZeroPageX)},
	0xF5: {4, "SBC", sbc(addressing.ZeroPageX)},
	0xF6: {6, "INC", incMem(addressing.ZeroPageX)},
	0xF7: {6, "ISC", isc(addressing.ZeroPageX)},
	0xF8: {2, "SED", impliedOp(sed)},
	0xF9: {4, "SBC", sbc(addressing.AbsoluteY)},
	0xFA: {2, "NOP", nopImplied},
	0xFB: {7, "ISC", isc(addressing.AbsoluteY)},
	0xFC: {4, "NOP", illegalOp(addressing.AbsoluteX)},
	0xFD: {4, "SBC", sbc(addressing.AbsoluteX)},
	0xFE: {7, "INC", incMem(addressing.AbsoluteX)},
	0xFF: {7, "ISC", isc(addressing.AbsoluteX)},
}
