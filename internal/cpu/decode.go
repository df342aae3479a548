package cpu

// instruction pairs an opcode's mnemonic with its body, for the
// Instruction tables dispatch runs against.
type instruction struct {
	name string
	fn   func(c *CPU)
}

// primaryTable and cbTable are filled in by each instruction family's own
// init() (load8.go, load16.go, alu.go, incdec.go, arithmetic16.go,
// rotate.go, shift.go, bitops.go, swap.go, jump.go, misc.go), one
// defineInstruction/defineInstructionCB call per opcode, grouped the way the opcode belongs
// conceptually rather than numerically.
var primaryTable [256]instruction
var cbTable [256]instruction

// illegalOpcodes has no defined behavior on real hardware; executing one
// is always an error, regardless of whether primaryTable happens to have
// an entry for it.
var illegalOpcodes = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true,
	0xE3: true, 0xE4: true, 0xEB: true, 0xEC: true, 0xED: true,
	0xF4: true, 0xFC: true, 0xFD: true,
}

// defineInstruction registers a primary opcode handler.
func defineInstruction(opcode uint8, name string, fn func(c *CPU)) {
	primaryTable[opcode] = instruction{name: name, fn: fn}
}

// defineInstructionCB registers a CB-prefixed opcode handler.
func defineInstructionCB(opcode uint8, name string, fn func(c *CPU)) {
	cbTable[opcode] = instruction{name: name, fn: fn}
}

// Step fetches one instruction at PC, executes it, and returns. It is
// atomic with respect to external observers: every intermediate bus
// access happens during Step, and the register file reflects its final
// values by the time Step returns — except on an error, where registers
// reflect whatever mutation happened up to the point of failure.
func (c *CPU) Step() error {
	opcode := c.readOperand()
	return c.execute(opcode)
}

func (c *CPU) execute(opcode uint8) error {
	if illegalOpcodes[opcode] {
		return &IllegalOpcodeError{Opcode: opcode}
	}
	if opcode == 0xCB {
		offset := c.readOperand()
		entry := cbTable[offset]
		if entry.fn == nil {
			return &UnimplementedOpcodeError{Opcode: 0xCB00 | uint16(offset)}
		}
		entry.fn(c)
		return nil
	}
	entry := primaryTable[opcode]
	if entry.fn == nil {
		return &UnimplementedOpcodeError{Opcode: uint16(opcode)}
	}
	entry.fn(c)
	return nil
}
