package cpu

// State is a full snapshot of CPU register state, used by Reset and by
// tests/tooling that want to assert on or restore an exact register
// file. It is fully reconstructable from these ten fields; the CPU has
// no other hidden state besides the tick callback.
type State struct {
	A, B, C, D, E, F, H, L uint8
	SP, PC                 uint16
}

// Reset installs state into the register file. A nil state resets every
// register to zero. Reset never ticks — it is not an instruction, it's
// the harness/caller directly setting up CPU state before stepping.
func (c *CPU) Reset(state *State) {
	if state == nil {
		state = &State{}
	}
	c.A = state.A
	c.B = state.B
	c.C = state.C
	c.D = state.D
	c.E = state.E
	c.setF(state.F)
	c.H = state.H
	c.L = state.L
	c.SP = state.SP
	c.PC = state.PC
}

// Snapshot returns the CPU's current register state.
func (c *CPU) Snapshot() State {
	return State{
		A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, F: c.F, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
	}
}
