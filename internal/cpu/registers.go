// Package cpu implements the SM83/LR35902-class instruction set at
// machine-cycle granularity: every bus access and every internal delay
// cycle the reference hardware spends on an instruction is observable,
// in order, through a single tick callback.
package cpu

import (
	"fmt"

	"github.com/fauxboy/sm83/internal/types"
)

// TickFunc is invoked once per machine cycle: once after every bus read,
// once after every bus write, and once per internal delay cycle a given
// instruction inserts. Its argument is the CPU itself so the callback can
// inspect (never mutate) register state and the bus's last-access record.
type TickFunc func(c *CPU)

// CPU is the SM83 register file plus the decode/execute/tick machinery
// bound to a single Bus. It holds no state beyond what Reset installs and
// the registers instructions mutate; there is no dynamic allocation after
// construction.
type CPU struct {
	types.Registers

	SP uint16
	PC uint16

	bus    Bus
	onTick TickFunc

	currentTick int
}

// NewCPU constructs a CPU bound to bus. bus must not be nil.
func NewCPU(bus Bus) *CPU {
	if bus == nil {
		panic("cpu: NewCPU requires a non-nil Bus")
	}
	c := &CPU{bus: bus}
	c.wirePairs()
	return c
}

// wirePairs synthesizes the AF/BC/DE/HL views over the byte registers.
// Registers are eight bytes of storage; AF/BC/DE/HL are never a second
// copy of that storage.
func (c *CPU) wirePairs() {
	c.AF = &types.RegisterPair{High: &c.A, Low: &c.F}
	c.BC = &types.RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &types.RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &types.RegisterPair{High: &c.H, Low: &c.L}
}

// SetTickFunc installs the tick callback, replacing any previous one.
func (c *CPU) SetTickFunc(fn TickFunc) { c.onTick = fn }

// ClearTickFunc removes the tick callback.
func (c *CPU) ClearTickFunc() { c.onTick = nil }

// Bus returns the bus the CPU is bound to, for callers (tests, tooling)
// that want to inspect its last-access record from inside the tick
// callback.
func (c *CPU) Bus() Bus { return c.bus }

// registerPointer returns the byte register addressed by the standard
// SM83 3-bit register index (0=B,1=C,2=D,3=E,4=H,5=L,7=A). Index 6
// addresses (HL) and is never passed here — callers special-case it.
func (c *CPU) registerPointer(index uint8) *uint8 {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("cpu: invalid register index %d", index))
}

var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
