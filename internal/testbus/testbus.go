// Package testbus implements the cpu.Bus interface over a flat,
// unmapped 64KB address space - the "open bus" a conformance harness
// runs the core against, with no cartridge, no I/O registers, nothing
// but memory that remembers what touched it.
package testbus

import "github.com/fauxboy/sm83/internal/cpu"

// Bus is a 64KB RAM-backed cpu.Bus that records every access it serves,
// so a caller can assert on the trace an instruction produced.
type Bus struct {
	mem [0x10000]uint8

	trace []cpu.LastAccess
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Load installs a test case's initial RAM contents.
func (b *Bus) Load(ram [][2]int) {
	for _, entry := range ram {
		b.mem[uint16(entry[0])] = uint8(entry[1])
	}
}

func (b *Bus) Read(addr uint16) uint8 {
	value := b.mem[addr]
	b.trace = append(b.trace, cpu.LastAccess{Addr: addr, Data: value, Mode: cpu.AccessRead})
	return value
}

func (b *Bus) Write(addr uint16, value uint8) {
	b.mem[addr] = value
	b.trace = append(b.trace, cpu.LastAccess{Addr: addr, Data: value, Mode: cpu.AccessWrite})
}

// Trace returns every access recorded since the last Reset, in order.
func (b *Bus) Trace() []cpu.LastAccess { return b.trace }

// Reset clears the recorded trace without touching memory contents.
func (b *Bus) Reset() { b.trace = nil }

// Byte returns the current value at addr, for asserting on final RAM
// state after a test case runs.
func (b *Bus) Byte(addr uint16) uint8 { return b.mem[addr] }
