package cpu

import "github.com/sixfiveoh/ull6502/bus"

// Outcome identifies why RunUntil stopped.
type Outcome int

const (
	// HitInstructionLimit means Config.InstructionLimit instructions ran.
	HitInstructionLimit Outcome = iota
	// Stalled means a Tick returned 0 cycles: halted, waiting with no
	// interrupt latched, or a step that serviced a latched reset, NMI or
	// IRQ (those steps also report 0 cycles).
	Stalled
	// HitBrk means Config.StopOnBrk was set and a BRK (opcode 0x00) executed.
	HitBrk
	// HitPredicate means Config.Predicate returned true after a tick.
	HitPredicate
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case HitInstructionLimit:
		return "HitInstructionLimit"
	case Stalled:
		return "Stalled"
	case HitBrk:
		return "HitBrk"
	case HitPredicate:
		return "HitPredicate"
	default:
		return "Unknown"
	}
}

// Predicate is a user-supplied stop condition evaluated after every tick.
type Predicate func(p *Processor, b bus.Bus) bool

// Config configures RunUntil. The zero value runs forever (until a
// stall): no limit, no brk stop, no predicate.
type Config struct {
	InstructionLimit uint64
	StopOnBrk        bool
	Predicate        Predicate
}

// Summary reports what happened during a RunUntil call.
type Summary struct {
	Instructions uint64
	Cycles       uint64
	Outcome      Outcome
}

// RunUntil repeatedly ticks p against b until the instruction limit is
// reached, a tick stalls, a BRK fires with StopOnBrk set, or Predicate
// returns true.
func RunUntil(p *Processor, b bus.Bus, cfg Config) Summary {
	var s Summary
	for {
		if cfg.InstructionLimit > 0 && s.Instructions >= cfg.InstructionLimit {
			s.Outcome = HitInstructionLimit
			return s
		}
		cycles := p.Tick(b)
		if cycles == 0 {
			s.Outcome = Stalled
			return s
		}
		s.Instructions++
		s.Cycles += uint64(cycles)
		if cfg.StopOnBrk && p.LastOpcode == 0x00 {
			s.Outcome = HitBrk
			return s
		}
		if cfg.Predicate != nil && cfg.Predicate(p, b) {
			s.Outcome = HitPredicate
			return s
		}
	}
}
