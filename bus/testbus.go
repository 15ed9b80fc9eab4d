package bus

import "github.com/sixfiveoh/ull6502/access"

// AccessLog records one observed bus access, in the order it happened.
type AccessLog struct {
	Addr  uint16
	Val   uint8
	Type  access.Type
	Write bool
}

// TestBus is a scripted test double: flat memory like FlatBus, but it
// additionally remembers every access it served so tests can assert on
// exactly what the processor did and in what order. A small RAM array
// plus an observable log, with nothing clever about decoding.
type TestBus struct {
	dmaQueue
	ram      [65536]uint8
	Log      []AccessLog
	TickLog  []uint64
	OnTickFn func(cycles uint64)
}

// NewTestBus returns an empty TestBus.
func NewTestBus() *TestBus {
	return &TestBus{}
}

// Read implements Bus and appends to Log.
func (t *TestBus) Read(addr uint16, at access.Type) uint8 {
	v := t.ram[addr]
	t.Log = append(t.Log, AccessLog{Addr: addr, Val: v, Type: at, Write: false})
	return v
}

// Write implements Bus and appends to Log.
func (t *TestBus) Write(addr uint16, val uint8, at access.Type) {
	t.ram[addr] = val
	t.Log = append(t.Log, AccessLog{Addr: addr, Val: val, Type: at, Write: true})
}

// ReadBlock implements Bus with 16-bit wraparound, logging each byte.
func (t *TestBus) ReadBlock(addr uint16, length int, at access.Type) []uint8 {
	out := make([]uint8, length)
	for i := 0; i < length; i++ {
		out[i] = t.Read(addr, at)
		addr++
	}
	return out
}

// WriteBlock implements Bus with 16-bit wraparound, logging each byte.
func (t *TestBus) WriteBlock(addr uint16, data []uint8, at access.Type) {
	for _, v := range data {
		t.Write(addr, v, at)
		addr++
	}
}

// OnTick implements Bus, recording the cycle count and forwarding to
// OnTickFn if set.
func (t *TestBus) OnTick(cycles uint64) {
	t.TickLog = append(t.TickLog, cycles)
	if t.OnTickFn != nil {
		t.OnTickFn(cycles)
	}
}

// Poke writes directly into backing memory without going through Write,
// so test setup doesn't pollute Log with accesses the CPU never made.
func (t *TestBus) Poke(addr uint16, val uint8) {
	t.ram[addr] = val
}

// Peek reads directly from backing memory without logging, for test
// assertions.
func (t *TestBus) Peek(addr uint16) uint8 {
	return t.ram[addr]
}

// PokeBlock loads bytes directly into memory starting at addr, wrapping
// at the 16-bit boundary. Used to install programs and fixtures.
func (t *TestBus) PokeBlock(addr uint16, data []uint8) {
	for _, v := range data {
		t.ram[addr] = v
		addr++
	}
}
