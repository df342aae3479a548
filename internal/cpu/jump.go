package cpu

// condition names the four branch tests JP/JR/CALL/RET can be guarded by.
type condition func(c *CPU) bool

func condNZ(c *CPU) bool { return !c.isFlagSet(FlagZero) }
func condZ(c *CPU) bool  { return c.isFlagSet(FlagZero) }
func condNC(c *CPU) bool { return !c.isFlagSet(FlagCarry) }
func condC(c *CPU) bool  { return c.isFlagSet(FlagCarry) }

// pushPC pushes the current PC onto the stack, high byte first, the way
// CALL and RST both do it.
func (c *CPU) pushPC() {
	c.writeByte(c.SP-1, uint8(c.PC>>8))
	c.writeByte(c.SP-2, uint8(c.PC))
	c.SP -= 2
}

// popPC pops a return address off the stack into PC, the way RET and
// RETI both do it.
func (c *CPU) popPC() {
	lo := c.readByte(c.SP)
	hi := c.readByte(c.SP + 1)
	c.SP += 2
	c.PC = uint16(hi)<<8 | uint16(lo)
}

func init() {
	defineInstruction(0x18, "JR e", func(c *CPU) {
		e := c.readOperand()
		c.internalTick()
		c.PC = uint16(int32(c.PC) + int32(int8(e)))
	})

	defineJR(0x20, "NZ", condNZ)
	defineJR(0x28, "Z", condZ)
	defineJR(0x30, "NC", condNC)
	defineJR(0x38, "C", condC)

	defineInstruction(0xC3, "JP nn", func(c *CPU) {
		addr := c.readOperand16()
		c.internalTick()
		c.PC = addr
	})
	defineJP(0xC2, "NZ", condNZ)
	defineJP(0xCA, "Z", condZ)
	defineJP(0xD2, "NC", condNC)
	defineJP(0xDA, "C", condC)

	defineInstruction(0xE9, "JP (HL)", func(c *CPU) {
		c.PC = c.HL.Uint16()
	})

	defineInstruction(0xCD, "CALL nn", func(c *CPU) {
		addr := c.readOperand16()
		c.internalTick()
		c.pushPC()
		c.PC = addr
	})
	defineCALL(0xC4, "NZ", condNZ)
	defineCALL(0xCC, "Z", condZ)
	defineCALL(0xD4, "NC", condNC)
	defineCALL(0xDC, "C", condC)

	defineInstruction(0xC9, "RET", func(c *CPU) {
		c.popPC()
		c.internalTick()
	})
	defineRET(0xC0, "NZ", condNZ)
	defineRET(0xC8, "Z", condZ)
	defineRET(0xD0, "NC", condNC)
	defineRET(0xD8, "C", condC)

	defineInstruction(0xD9, "RETI", func(c *CPU) {
		c.popPC()
		c.internalTick()
	})

	defineRST(0xC7, 0x00)
	defineRST(0xCF, 0x08)
	defineRST(0xD7, 0x10)
	defineRST(0xDF, 0x18)
	defineRST(0xE7, 0x20)
	defineRST(0xEF, 0x28)
	defineRST(0xF7, 0x30)
	defineRST(0xFF, 0x38)
}

// defineJR registers a conditional relative jump. Not taken costs 2
// cycles (fetch + read e); taken costs 3 (+ the internal PC-add delay).
func defineJR(opcode uint8, name string, cond condition) {
	defineInstruction(opcode, "JR "+name+",e", func(c *CPU) {
		e := c.readOperand()
		if cond(c) {
			c.internalTick()
			c.PC = uint16(int32(c.PC) + int32(int8(e)))
		}
	})
}

// defineJP registers a conditional absolute jump. Not taken costs 3
// cycles (fetch + 2 operand reads); taken costs 4.
func defineJP(opcode uint8, name string, cond condition) {
	defineInstruction(opcode, "JP "+name+",nn", func(c *CPU) {
		addr := c.readOperand16()
		if cond(c) {
			c.internalTick()
			c.PC = addr
		}
	})
}

// defineCALL registers a conditional call. Not taken costs 3 cycles
// (fetch + 2 operand reads); taken costs 6 (+ the internal delay and the
// 2-byte push).
func defineCALL(opcode uint8, name string, cond condition) {
	defineInstruction(opcode, "CALL "+name+",nn", func(c *CPU) {
		addr := c.readOperand16()
		if cond(c) {
			c.internalTick()
			c.pushPC()
			c.PC = addr
		}
	})
}

// defineRET registers a conditional return. The condition test always
// costs one internal cycle on top of the fetch, whether or not it's
// taken - 2 cycles not taken, 5 taken (+ the 2-byte pop and a further
// internal delay).
func defineRET(opcode uint8, name string, cond condition) {
	defineInstruction(opcode, "RET "+name, func(c *CPU) {
		c.internalTick()
		if cond(c) {
			c.popPC()
			c.internalTick()
		}
	})
}

// defineRST registers a call to one of the eight fixed low-memory
// vectors. Always 4 cycles: fetch, internal delay, and the 2-byte push.
func defineRST(opcode uint8, target uint16) {
	defineInstruction(opcode, "RST", func(c *CPU) {
		c.internalTick()
		c.pushPC()
		c.PC = target
	})
}
