package cpu_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sixfiveoh/ull6502/bus"
	"github.com/sixfiveoh/ull6502/cpu"
	"github.com/sixfiveoh/ull6502/disassemble"
)

// testDir holds the external functional-test ROMs this suite can exercise
// when present. They are large, third-party binaries, so they aren't
// checked in; TestROMs skips any fixture it can't find on disk.
const testDir = "../testdata"

// TestROMs runs the classic Klaus Dormann-style 6502/65C02 functional
// test ROMs: self-checking programs that loop forever at a known PC on
// success and elsewhere on failure. Each case is skipped if its ROM file
// isn't present under testdata/.
func TestROMs(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		variant    cpu.Variant
		loadAddr   uint16
		startPC    uint16
		successPC  uint16
		bufferSize int
	}{
		{
			name:       "NMOS 6502 functional test",
			filename:   "6502_functional_test.bin",
			variant:    cpu.NMOS6502,
			loadAddr:   0x0000,
			startPC:    0x0400,
			successPC:  0x3469,
			bufferSize: 40,
		},
		{
			name:       "65C02 extended opcodes test",
			filename:   "65C02_extended_opcodes_test.bin",
			variant:    cpu.WDC65C02S,
			loadAddr:   0x0000,
			startPC:    0x0400,
			successPC:  0x24f1,
			bufferSize: 40,
		},
		{
			name:       "AllSuiteA undocumented opcodes",
			filename:   "AllSuiteA.bin",
			variant:    cpu.NMOS6502,
			loadAddr:   0x4000,
			startPC:    0x4000,
			successPC:  0x45c0,
			bufferSize: 40,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(testDir, test.filename)
			rom, err := os.ReadFile(path)
			if err != nil {
				t.Skipf("fixture %s not present: %v", path, err)
			}

			b := bus.NewFlatBus()
			p, err := cpu.WithProgram(b, test.variant, test.loadAddr, rom, test.startPC)
			if err != nil {
				t.Fatalf("WithProgram: %v", err)
			}
			type snapshot struct {
				pc             uint16
				a, x, y, sp, p uint8
			}
			ring := make([]snapshot, test.bufferSize)
			ringAt := 0
			dump := func() string {
				out := fmt.Sprintf("last %d instructions:\n", test.bufferSize)
				for i := 0; i < test.bufferSize; i++ {
					s := ring[(ringAt+i)%test.bufferSize]
					text, _ := disassemble.Step(s.pc, b, test.variant)
					out += fmt.Sprintf("%s  A=%.2X X=%.2X Y=%.2X SP=%.2X P=%.2X\n", text, s.a, s.x, s.y, s.sp, s.p)
				}
				return out
			}

			var lastPC uint16
			for instructions := 0; instructions < 200_000_000; instructions++ {
				lastPC = p.PC
				ring[ringAt] = snapshot{lastPC, p.A, p.X, p.Y, p.SP, p.P}
				ringAt = (ringAt + 1) % test.bufferSize

				cycles := p.Tick(b)
				if cycles == 0 {
					t.Fatalf("%s: stalled at PC=%.4X\n%s", test.name, lastPC, dump())
				}
				if p.PC == lastPC {
					if p.PC == test.successPC {
						return
					}
					t.Fatalf("%s: looping at PC=%.4X, want success at %.4X\n%s", test.name, p.PC, test.successPC, dump())
				}
			}
			t.Fatalf("%s: did not terminate", test.name)
		})
	}
}
