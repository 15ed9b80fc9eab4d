package bus

import (
	"math/rand"
	"time"

	"github.com/sixfiveoh/ull6502/access"
)

// FlatBus is a trivial 64 KiB flat memory implementing Bus. It performs no
// address decoding beyond the 16-bit wrap every real 6502 address space
// has; every access type reads and writes the same backing array. It is
// the simplest possible host: useful for running the CPU conformance
// fixtures without pulling in a whole machine.
type FlatBus struct {
	dmaQueue
	ram    [65536]uint8
	ticks  uint64
	onTick func(cycles uint64)
}

// NewFlatBus returns a zeroed FlatBus. Use PowerOn to randomize instead,
// mirroring real hardware's undefined power-on RAM contents.
func NewFlatBus() *FlatBus {
	return &FlatBus{}
}

// PowerOn randomizes every byte of RAM, the way real silicon's SRAM comes
// up in an unknown state.
func (f *FlatBus) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range f.ram {
		f.ram[i] = uint8(rand.Intn(256))
	}
}

// Read implements Bus. The access type is not used for decoding on this
// trivial bus; it exists purely for interface conformance and for callers
// that want to observe it via a wrapping Bus.
func (f *FlatBus) Read(addr uint16, _ access.Type) uint8 {
	return f.ram[addr]
}

// Write implements Bus.
func (f *FlatBus) Write(addr uint16, val uint8, _ access.Type) {
	f.ram[addr] = val
}

// ReadBlock implements Bus with 16-bit address wraparound.
func (f *FlatBus) ReadBlock(addr uint16, length int, at access.Type) []uint8 {
	out := make([]uint8, length)
	for i := 0; i < length; i++ {
		out[i] = f.Read(addr, at)
		addr++
	}
	return out
}

// WriteBlock implements Bus with 16-bit address wraparound.
func (f *FlatBus) WriteBlock(addr uint16, data []uint8, at access.Type) {
	for _, v := range data {
		f.Write(addr, v, at)
		addr++
	}
}

// OnTick records cumulative bus time and forwards to an optional observer
// installed with SetTickObserver, letting tests assert on exactly what the
// bus saw without subclassing.
func (f *FlatBus) OnTick(cycles uint64) {
	f.ticks += cycles
	if f.onTick != nil {
		f.onTick(cycles)
	}
}

// Ticks returns the total cycles ever reported via OnTick.
func (f *FlatBus) Ticks() uint64 {
	return f.ticks
}

// SetTickObserver installs a callback invoked on every OnTick, in addition
// to the internal running total. Pass nil to remove it.
func (f *FlatBus) SetTickObserver(fn func(cycles uint64)) {
	f.onTick = fn
}
