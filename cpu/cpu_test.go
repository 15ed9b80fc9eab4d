package cpu_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/sixfiveoh/ull6502/bus"
	"github.com/sixfiveoh/ull6502/cpu"
)

// newTest builds a Processor over a TestBus with the reset vector pointed
// at 0x0400, the conventional load address these tests use.
func newTest(t *testing.T, v cpu.Variant) (*cpu.Processor, *bus.TestBus) {
	t.Helper()
	b := bus.NewTestBus()
	p, err := cpu.WithResetVector(b, v, 0x0400)
	if err != nil {
		t.Fatalf("WithResetVector: %v", err)
	}
	b.Log = nil
	return p, b
}

func TestResetDefaults(t *testing.T) {
	p, _ := newTest(t, cpu.NMOS6502)
	if p.A != 0 || p.X != 0 || p.Y != 0 {
		t.Fatalf("expected A/X/Y zeroed after reset, got %s", spew.Sdump(p))
	}
	if p.SP != 0xFD {
		t.Fatalf("expected SP=0xFD after reset, got %.2X", p.SP)
	}
	if !p.Flag(cpu.FlagInterruptDisable) || !p.Flag(cpu.FlagExpansion) {
		t.Fatalf("expected I and E set after reset, got P=%.2X", p.P)
	}
	if p.PC != 0x0400 {
		t.Fatalf("expected PC loaded from reset vector, got %.4X", p.PC)
	}
	if p.State != cpu.Running {
		t.Fatalf("expected Running state after reset, got %s", p.State)
	}
}

func TestNOPTiming(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.PokeBlock(0x0400, []uint8{0xEA, 0xEA})
	cycles := p.Step(b)
	if cycles != 2 {
		t.Fatalf("NOP: want 2 cycles, got %d", cycles)
	}
	if p.PC != 0x0401 {
		t.Fatalf("NOP: want PC=0401, got %.4X", p.PC)
	}
}

func TestLDAImmediateFlags(t *testing.T) {
	tests := []struct {
		name     string
		val      uint8
		wantZero bool
		wantNeg  bool
	}{
		{"positive", 0x42, false, false},
		{"zero", 0x00, true, false},
		{"negative", 0x80, false, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, b := newTest(t, cpu.NMOS6502)
			b.PokeBlock(0x0400, []uint8{0xA9, test.val})
			p.Step(b)
			if p.A != test.val {
				t.Fatalf("A: got %.2X want %.2X", p.A, test.val)
			}
			if got := p.Flag(cpu.FlagZero); got != test.wantZero {
				t.Fatalf("Z: got %t want %t", got, test.wantZero)
			}
			if got := p.Flag(cpu.FlagNegative); got != test.wantNeg {
				t.Fatalf("N: got %t want %t", got, test.wantNeg)
			}
		})
	}
}

func TestBRKPushesAndLoadsVector(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.Poke(0xFFFE, 0x00)
	b.Poke(0xFFFF, 0xD0)
	b.PokeBlock(0x0400, []uint8{0x00, 0xEA}) // BRK, signature byte
	startSP := p.SP
	cycles := p.Step(b)
	if cycles != 7 {
		t.Fatalf("BRK: want 7 cycles, got %d", cycles)
	}
	if p.PC != 0xD000 {
		t.Fatalf("BRK: want PC loaded from IRQ vector (D000), got %.4X", p.PC)
	}
	if !p.Flag(cpu.FlagInterruptDisable) {
		t.Fatalf("BRK: want I set")
	}
	if p.SP != startSP-3 {
		t.Fatalf("BRK: want SP down by 3, got %.2X from %.2X", p.SP, startSP)
	}
	pushedP := b.Peek(0x0100 + uint16(startSP-2))
	if pushedP&cpu.FlagBreak == 0 || pushedP&cpu.FlagExpansion == 0 {
		t.Fatalf("BRK: want pushed P to carry B and E set, got %.2X", pushedP)
	}
	retHi := b.Peek(0x0100 + uint16(startSP))
	retLo := b.Peek(0x0100 + uint16(startSP-1))
	if ret := uint16(retHi)<<8 | uint16(retLo); ret != 0x0402 {
		t.Fatalf("BRK: want pushed return address 0402, got %.4X", ret)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.PokeBlock(0x0400, []uint8{0x20, 0x00, 0x06}) // JSR $0600
	b.PokeBlock(0x0600, []uint8{0x60})             // RTS
	startSP := p.SP
	p.Step(b)
	if p.PC != 0x0600 {
		t.Fatalf("JSR: want PC=0600, got %.4X", p.PC)
	}
	if p.SP != startSP-2 {
		t.Fatalf("JSR: want SP down by 2, got %.2X from %.2X", p.SP, startSP)
	}
	p.Step(b)
	if p.PC != 0x0403 {
		t.Fatalf("RTS: want PC=0403 (after the 3-byte JSR), got %.4X", p.PC)
	}
	if p.SP != startSP {
		t.Fatalf("RTS: want SP restored to %.2X, got %.2X", startSP, p.SP)
	}
}

// TestStatusBytePushForcing pins the B/E observability rules: PHP pushes
// with both forced set, PLP reloads with E forced set and B forced clear.
func TestStatusBytePushForcing(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.PokeBlock(0x0400, []uint8{0x08, 0x28}) // PHP, PLP
	startSP := p.SP
	p.Step(b)
	pushed := b.Peek(0x0100 + uint16(startSP))
	if pushed&cpu.FlagBreak == 0 || pushed&cpu.FlagExpansion == 0 {
		t.Fatalf("PHP: want B and E set in pushed byte, got %.2X", pushed)
	}
	b.Poke(0x0100+uint16(startSP), 0xFF) // all flags, including B
	p.Step(b)
	if p.Flag(cpu.FlagBreak) {
		t.Fatalf("PLP: want B forced clear, got P=%.2X", p.P)
	}
	if !p.Flag(cpu.FlagExpansion) {
		t.Fatalf("PLP: want E forced set, got P=%.2X", p.P)
	}
	if p.SP != startSP {
		t.Fatalf("push/pull pair: want SP restored to %.2X, got %.2X", startSP, p.SP)
	}
}

func TestShiftRotateLaws(t *testing.T) {
	t.Run("ASL then LSR restores a low byte", func(t *testing.T) {
		p, b := newTest(t, cpu.NMOS6502)
		p.A = 0x35
		b.PokeBlock(0x0400, []uint8{0x0A, 0x4A}) // ASL A, LSR A
		p.Step(b)
		p.Step(b)
		if p.A != 0x35 {
			t.Fatalf("A: got %.2X want 35", p.A)
		}
	})
	t.Run("ROL carries bit 7 out and the old carry in", func(t *testing.T) {
		p, b := newTest(t, cpu.NMOS6502)
		p.A = 0x80
		p.SetFlag(cpu.FlagCarry, true)
		b.PokeBlock(0x0400, []uint8{0x2A}) // ROL A
		p.Step(b)
		if p.A != 0x01 {
			t.Fatalf("A: got %.2X want 01", p.A)
		}
		if !p.Flag(cpu.FlagCarry) {
			t.Fatalf("want carry set from bit 7")
		}
	})
	t.Run("ROR carries bit 0 out and the old carry into bit 7", func(t *testing.T) {
		p, b := newTest(t, cpu.NMOS6502)
		p.A = 0x01
		p.SetFlag(cpu.FlagCarry, true)
		b.PokeBlock(0x0400, []uint8{0x6A}) // ROR A
		p.Step(b)
		if p.A != 0x80 {
			t.Fatalf("A: got %.2X want 80", p.A)
		}
		if !p.Flag(cpu.FlagCarry) {
			t.Fatalf("want carry set from bit 0")
		}
		if !p.Flag(cpu.FlagNegative) {
			t.Fatalf("want N from the carried-in bit 7")
		}
	})
}

func TestStackWraparound(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	p.SP = 0x00
	b.PokeBlock(0x0400, []uint8{0x48}) // PHA
	p.A = 0x77
	p.Step(b)
	if p.SP != 0xFF {
		t.Fatalf("PHA at SP=00: want wrap to FF, got %.2X", p.SP)
	}
	if got := b.Peek(0x0100); got != 0x77 {
		t.Fatalf("PHA: want $0100 == 77, got %.2X", got)
	}
}

// TestBCDWorkedExamples exercises the BCD worked examples: $99+$01+0 -> $00 with carry
// set, and (via SBC) $00-$01-noborrow -> $99 with carry clear.
func TestBCDWorkedExamples(t *testing.T) {
	t.Run("ADC 99 plus 01 wraps to 00 with carry", func(t *testing.T) {
		p, b := newTest(t, cpu.NMOS6502)
		p.SetFlag(cpu.FlagDecimal, true)
		p.SetFlag(cpu.FlagCarry, false)
		p.A = 0x99
		b.PokeBlock(0x0400, []uint8{0x69, 0x01}) // ADC #$01
		p.Step(b)
		if p.A != 0x00 {
			t.Fatalf("A: got %.2X want 00", p.A)
		}
		if !p.Flag(cpu.FlagCarry) {
			t.Fatalf("want carry set")
		}
	})
	t.Run("SBC 00 minus 01 borrows to 99 with carry clear", func(t *testing.T) {
		p, b := newTest(t, cpu.NMOS6502)
		p.SetFlag(cpu.FlagDecimal, true)
		p.SetFlag(cpu.FlagCarry, true) // no borrow going in
		p.A = 0x00
		b.PokeBlock(0x0400, []uint8{0xE9, 0x01}) // SBC #$01
		p.Step(b)
		if p.A != 0x99 {
			t.Fatalf("A: got %.2X want 99", p.A)
		}
		if p.Flag(cpu.FlagCarry) {
			t.Fatalf("want carry clear (borrow occurred)")
		}
	})
}

func TestADCBinaryOverflow(t *testing.T) {
	// 0x50 + 0x50 = 0xA0: signed 80+80 overflows into negative, V must set.
	p, b := newTest(t, cpu.NMOS6502)
	p.A = 0x50
	b.PokeBlock(0x0400, []uint8{0x69, 0x50})
	p.Step(b)
	if p.A != 0xA0 {
		t.Fatalf("A: got %.2X want A0", p.A)
	}
	if !p.Flag(cpu.FlagOverflow) {
		t.Fatalf("want V set on signed overflow")
	}
	if p.Flag(cpu.FlagCarry) {
		t.Fatalf("want C clear (no unsigned carry out of 0xA0)")
	}
}

func TestCompareFamily(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	p.A = 0x40
	b.PokeBlock(0x0400, []uint8{0xC9, 0x40}) // CMP #$40
	p.Step(b)
	if !p.Flag(cpu.FlagZero) || !p.Flag(cpu.FlagCarry) {
		t.Fatalf("CMP equal: want Z and C set, got P=%.2X", p.P)
	}
}

func TestBranchTakenCycleAccounting(t *testing.T) {
	tests := []struct {
		name       string
		pc         uint16
		disp       uint8
		wantCycles int
		wantPC     uint16
	}{
		{"not taken", 0x0400, 0x10, 2, 0x0402},
		{"taken same page", 0x0400, 0x10, 3, 0x0412},
		{"taken crosses page", 0x04F0, 0x20, 4, 0x0512},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, b := newTest(t, cpu.NMOS6502)
			p.PC = test.pc
			if test.name == "not taken" {
				p.SetFlag(cpu.FlagCarry, true) // BCC not taken
			} else {
				p.SetFlag(cpu.FlagCarry, false) // BCC taken
			}
			b.PokeBlock(test.pc, []uint8{0x90, test.disp}) // BCC
			cycles := p.Step(b)
			if cycles != test.wantCycles {
				t.Fatalf("cycles: got %d want %d", cycles, test.wantCycles)
			}
			if p.PC != test.wantPC {
				t.Fatalf("PC: got %.4X want %.4X", p.PC, test.wantPC)
			}
		})
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	t.Run("NMOS wraps within the pointer page", func(t *testing.T) {
		p, b := newTest(t, cpu.NMOS6502)
		b.Poke(0x02FF, 0x34)
		b.Poke(0x0200, 0x12) // high byte wraps to page start instead of 0x0300
		b.Poke(0x0300, 0xFF) // never read; would give FF34 if the bug were absent
		b.PokeBlock(0x0400, []uint8{0x6C, 0xFF, 0x02}) // JMP ($02FF)
		p.Step(b)
		if p.PC != 0x1234 {
			t.Fatalf("NMOS indirect JMP: want page-wrap bug result 1234, got %.4X", p.PC)
		}
	})
	t.Run("65C02 fetches across the page boundary correctly", func(t *testing.T) {
		p, b := newTest(t, cpu.WDC65C02S)
		b.Poke(0x02FF, 0x34)
		b.Poke(0x0300, 0x12)
		b.PokeBlock(0x0400, []uint8{0x6C, 0xFF, 0x02}) // JMP ($02FF)
		p.Step(b)
		if p.PC != 0x1234 {
			t.Fatalf("65C02 indirect JMP: want fixed result 1234, got %.4X", p.PC)
		}
	})
}

func TestZeroPageIndirectWraparound(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.Poke(0x00FF, 0x00)
	b.Poke(0x0000, 0x06) // pointer high byte wraps to zp offset 0, not 0x0100
	b.Poke(0x0600, 0x99)
	p.X = 0
	b.PokeBlock(0x0400, []uint8{0xA1, 0xFF}) // LDA ($FF,X)
	p.Step(b)
	if p.A != 0x99 {
		t.Fatalf("zero-page indirect wrap: want A=99, got %.2X", p.A)
	}
}

func TestRMWDoesNotDoublePageCross(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.Poke(0x0605, 0x7F)
	p.X = 0x06
	b.PokeBlock(0x0400, []uint8{0xFE, 0xFF, 0x05}) // INC $05FF,X -> $0605
	cycles := p.Step(b)
	if cycles != 7 {
		t.Fatalf("INC abs,X: want fixed 7 cycles regardless of page cross, got %d", cycles)
	}
	if got := b.Peek(0x0605); got != 0x80 {
		t.Fatalf("INC: want 80, got %.2X", got)
	}
}

func TestInterruptPriorityNMIBeatsIRQ(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.Poke(bus.NMIVectorLow, 0x00)
	b.Poke(bus.NMIVectorHigh, 0x08)
	b.Poke(bus.IRQVectorLow, 0x00)
	b.Poke(bus.IRQVectorHigh, 0x09)
	p.SetFlag(cpu.FlagInterruptDisable, false)
	p.RaiseIRQ()
	p.RaiseNMI()
	p.Step(b)
	if p.PC != 0x0800 {
		t.Fatalf("want NMI vector serviced first, got PC=%.4X", p.PC)
	}
}

func TestIRQMaskedByI(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	p.SetFlag(cpu.FlagInterruptDisable, true)
	b.PokeBlock(0x0400, []uint8{0xEA})
	p.RaiseIRQ()
	p.Step(b)
	if p.PC != 0x0401 {
		t.Fatalf("want IRQ held off while I set, executed NOP instead; got PC=%.4X", p.PC)
	}
}

func TestWAIWakesOnInterrupt(t *testing.T) {
	p, b := newTest(t, cpu.WDC65C02S)
	b.Poke(bus.IRQVectorLow, 0x00)
	b.Poke(bus.IRQVectorHigh, 0x09)
	p.SetFlag(cpu.FlagInterruptDisable, false)
	b.PokeBlock(0x0400, []uint8{0xCB}) // WAI
	p.Step(b)
	if p.State != cpu.Waiting {
		t.Fatalf("want Waiting after WAI, got %s", p.State)
	}
	if cycles := p.Step(b); cycles != 0 {
		t.Fatalf("want stall while Waiting with no interrupt, got %d cycles", cycles)
	}
	p.RaiseIRQ()
	p.Step(b)
	if p.State != cpu.Running {
		t.Fatalf("want Running after IRQ wakes WAI, got %s", p.State)
	}
	if p.PC != 0x0900 {
		t.Fatalf("want PC loaded from IRQ vector, got %.4X", p.PC)
	}
}

func TestTickDrainsDMA(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.PokeBlock(0x0400, []uint8{0xEA}) // NOP
	b.PushDMACycle(5)
	b.PushDMACycle(3)
	p.Tick(b)
	want := []uint64{2, 5, 3}
	if diff := deep.Equal(b.TickLog, want); diff != nil {
		t.Fatalf("tick log mismatch: %v (got %v)", diff, b.TickLog)
	}
}

func TestRunUntilInstructionLimit(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	for i := 0; i < 10; i++ {
		b.Poke(0x0400+uint16(i), 0xEA)
	}
	summary := cpu.RunUntil(p, b, cpu.Config{InstructionLimit: 5})
	if summary.Outcome != cpu.HitInstructionLimit {
		t.Fatalf("want HitInstructionLimit, got %s", summary.Outcome)
	}
	if summary.Instructions != 5 {
		t.Fatalf("want 5 instructions run, got %d", summary.Instructions)
	}
}

func TestRunUntilStopOnBrk(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.PokeBlock(0x0400, []uint8{0xEA, 0xEA, 0x00})
	summary := cpu.RunUntil(p, b, cpu.Config{StopOnBrk: true})
	if summary.Outcome != cpu.HitBrk {
		t.Fatalf("want HitBrk, got %s", summary.Outcome)
	}
	if summary.Instructions != 3 {
		t.Fatalf("want 3 instructions (2 NOPs + BRK), got %d", summary.Instructions)
	}
}

func TestRunUntilStalls(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.PokeBlock(0x0400, []uint8{0x02}) // JAM
	summary := cpu.RunUntil(p, b, cpu.Config{})
	if summary.Outcome != cpu.Stalled {
		t.Fatalf("want Stalled, got %s", summary.Outcome)
	}
}

// TestLDAThenBRK drives a whole program through RunUntil: LDA #$42
// followed by BRK, with the IRQ vector pointed at $9000. The run stops on
// the BRK, A carries the loaded value, PC sits at the vector target and
// the pushed status byte has B set.
func TestLDAThenBRK(t *testing.T) {
	b := bus.NewTestBus()
	b.Poke(bus.IRQVectorLow, 0x00)
	b.Poke(bus.IRQVectorHigh, 0x90)
	b.PokeBlock(0x8000, []uint8{0xA9, 0x42, 0x00})
	p, err := cpu.WithResetVector(b, cpu.NMOS6502, 0x8000)
	if err != nil {
		t.Fatalf("WithResetVector: %v", err)
	}
	startSP := p.SP
	summary := cpu.RunUntil(p, b, cpu.Config{StopOnBrk: true})
	if summary.Outcome != cpu.HitBrk {
		t.Fatalf("want HitBrk, got %s", summary.Outcome)
	}
	if summary.Instructions != 2 {
		t.Fatalf("want 2 instructions, got %d", summary.Instructions)
	}
	if p.A != 0x42 {
		t.Fatalf("A: got %.2X want 42", p.A)
	}
	if p.PC != 0x9000 {
		t.Fatalf("PC: got %.4X want 9000", p.PC)
	}
	pushedP := b.Peek(0x0100 + uint16(startSP-2))
	if pushedP&cpu.FlagBreak == 0 {
		t.Fatalf("want B set in the status byte BRK pushed, got %.2X", pushedP)
	}
}

// sixteenBitMultiply is the classic right-shifting 8x8=16 multiply: the
// factors start in $10 and $11, the 16-bit product ends up low byte in
// $10, high byte in $11.
var sixteenBitMultiply = []uint8{
	0xA9, 0x00, // LDA #$00
	0xA2, 0x08, // LDX #$08
	0x46, 0x10, // LSR $10
	0x90, 0x03, // BCC +3 (skip the add)
	0x18,       // CLC
	0x65, 0x11, // ADC $11
	0x6A,       // ROR A
	0x66, 0x10, // ROR $10
	0xCA,       // DEX
	0xD0, 0xF5, // BNE (back to the BCC)
	0x85, 0x11, // STA $11
	0x00, // BRK
}

func TestSixteenBitMultiply(t *testing.T) {
	b := bus.NewTestBus()
	b.Poke(0x0010, 0xB6)
	b.Poke(0x0011, 0x4D)
	b.PokeBlock(0x8000, sixteenBitMultiply)
	p, err := cpu.WithResetVector(b, cpu.NMOS6502, 0x8000)
	if err != nil {
		t.Fatalf("WithResetVector: %v", err)
	}
	summary := cpu.RunUntil(p, b, cpu.Config{StopOnBrk: true})
	if summary.Outcome != cpu.HitBrk {
		t.Fatalf("want HitBrk, got %s", summary.Outcome)
	}
	if summary.Instructions > 0x200 {
		t.Fatalf("want <= 0x200 instructions, got %d", summary.Instructions)
	}
	if lo, hi := b.Peek(0x0010), b.Peek(0x0011); lo != 0xBE || hi != 0x36 {
		t.Fatalf("product: got %.2X%.2X want 36BE", hi, lo)
	}
}

// TestDMAAccounting runs three NOPs, injecting a 4-cycle DMA chunk after
// the second; the bus must see instruction time plus DMA time with the
// DMA chunk reported as its own tick.
func TestDMAAccounting(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.PokeBlock(0x0400, []uint8{0xEA, 0xEA, 0xEA})
	p.Tick(b)
	p.Tick(b)
	b.PushDMACycle(4)
	p.Tick(b)
	want := []uint64{2, 2, 2, 4}
	if diff := deep.Equal(b.TickLog, want); diff != nil {
		t.Fatalf("tick log mismatch: %v (got %v)", diff, b.TickLog)
	}
	var total, dma uint64
	for _, c := range b.TickLog {
		total += c
	}
	dma = total - 6
	if total != 10 || dma != 4 {
		t.Fatalf("want 10 total bus cycles of which 4 DMA, got %d/%d", total, dma)
	}
}

func TestRunUntilPredicate(t *testing.T) {
	p, b := newTest(t, cpu.NMOS6502)
	b.PokeBlock(0x0400, []uint8{0xE8, 0xE8, 0x00}) // INX INX BRK
	summary := cpu.RunUntil(p, b, cpu.Config{
		Predicate: func(p *cpu.Processor, _ bus.Bus) bool { return p.X == 2 },
	})
	if summary.Outcome != cpu.HitPredicate {
		t.Fatalf("want HitPredicate, got %s", summary.Outcome)
	}
	if summary.Instructions != 2 {
		t.Fatalf("want 2 instructions, got %d", summary.Instructions)
	}
	if p.A != 0 {
		t.Fatalf("want A untouched, got %.2X", p.A)
	}
}

func TestBRAForward(t *testing.T) {
	t.Run("same page", func(t *testing.T) {
		b := bus.NewTestBus()
		b.PokeBlock(0x4000, []uint8{0x80, 0x04}) // BRA +4
		p, err := cpu.WithResetVector(b, cpu.WDC65C02S, 0x4000)
		if err != nil {
			t.Fatalf("WithResetVector: %v", err)
		}
		cycles := p.Step(b)
		if p.PC != 0x4006 {
			t.Fatalf("PC: got %.4X want 4006", p.PC)
		}
		if cycles != 3 {
			t.Fatalf("cycles: got %d want 3", cycles)
		}
	})
	t.Run("crossing into the next page", func(t *testing.T) {
		b := bus.NewTestBus()
		b.PokeBlock(0x40F0, []uint8{0x80, 0x20}) // BRA +32, landing at $4112
		p, err := cpu.WithResetVector(b, cpu.WDC65C02S, 0x40F0)
		if err != nil {
			t.Fatalf("WithResetVector: %v", err)
		}
		cycles := p.Step(b)
		if p.PC != 0x4112 {
			t.Fatalf("PC: got %.4X want 4112", p.PC)
		}
		if cycles != 4 {
			t.Fatalf("cycles: got %d want 4", cycles)
		}
	})
}

func TestRicoh2A03SkipsBCD(t *testing.T) {
	p, b := newTest(t, cpu.Ricoh2A03)
	p.SetFlag(cpu.FlagDecimal, true)
	p.A = 0x99
	b.PokeBlock(0x0400, []uint8{0x69, 0x01}) // ADC #$01
	p.Step(b)
	if p.A != 0x9A {
		t.Fatalf("Ricoh2A03: want binary result 9A (BCD suppressed), got %.2X", p.A)
	}
}
