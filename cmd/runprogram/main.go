// runprogram loads a flat binary image onto a FlatBus, constructs a
// processor of the requested variant, and runs it to completion (an
// instruction limit, a BRK, or a stall), printing a disassembly trace and
// a final register dump.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/sixfiveoh/ull6502/bus"
	"github.com/sixfiveoh/ull6502/cpu"
	"github.com/sixfiveoh/ull6502/disassemble"
)

var (
	loadAddr  = flag.Int("load_addr", 0x0000, "Address to load the image at")
	resetAddr = flag.Int("reset_addr", -1, "Reset vector target; defaults to load_addr if unset")
	variant   = flag.String("variant", "nmos6502", "Processor variant: nmos6502, ricoh2a03 or wdc65c02s")
	limit     = flag.Uint64("limit", 0, "Instruction limit; 0 means unlimited")
	stopOnBrk = flag.Bool("stop_on_brk", true, "Stop the run when a BRK instruction executes")
	trace     = flag.Bool("trace", false, "Print a disassembly line for the next instruction after every tick")
)

func variantFor(name string) cpu.Variant {
	switch name {
	case "nmos6502":
		return cpu.NMOS6502
	case "ricoh2a03":
		return cpu.Ricoh2A03
	case "wdc65c02s":
		return cpu.WDC65C02S
	default:
		log.Fatalf("Invalid variant %q - must be nmos6502, ricoh2a03 or wdc65c02s", name)
		return cpu.NMOS6502
	}
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [flags] <filename>", os.Args[0])
	}
	if *resetAddr < 0 {
		*resetAddr = *loadAddr
	}

	fn := flag.Args()[0]
	program, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s: %v", fn, err)
	}

	v := variantFor(*variant)
	b := bus.NewFlatBus()
	p, err := cpu.WithProgram(b, v, uint16(*loadAddr), program, uint16(*resetAddr))
	if err != nil {
		log.Fatalf("Can't construct processor: %v", err)
	}

	cfg := cpu.Config{
		InstructionLimit: *limit,
		StopOnBrk:        *stopOnBrk,
	}
	if *trace {
		cfg.Predicate = func(p *cpu.Processor, b bus.Bus) bool {
			text, _ := disassemble.Step(p.PC, b, v)
			fmt.Println(text)
			return false
		}
	}

	summary := cpu.RunUntil(p, b, cfg)
	fmt.Printf("Stopped: %s after %d instructions, %d cycles\n", summary.Outcome, summary.Instructions, summary.Cycles)
	fmt.Printf("PC=%.4X A=%.2X X=%.2X Y=%.2X SP=%.2X P=%.2X STATE=%s\n",
		p.PC, p.A, p.X, p.Y, p.SP, p.P, p.State)
}
