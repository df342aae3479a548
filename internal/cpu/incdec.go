package cpu

// increment returns value+1 and sets the flags INC uses.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry out of bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.setFlags(result == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

// decrement returns value-1 and sets the flags DEC uses.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.setFlags(result == 0, true, result&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

// generateIncDecBlock fills in INC/DEC for B,C,D,E,H,L,(HL),A. Register
// targets cost 1 cycle (fetch only); (HL) costs 3 (fetch, read, write).
func generateIncDecBlock() {
	for i := uint8(0); i < 8; i++ {
		opINC, opDEC := 0x04+i*8, 0x05+i*8
		if i == 6 {
			defineInstruction(opINC, "INC (HL)", func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16())))
			})
			defineInstruction(opDEC, "DEC (HL)", func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16())))
			})
			continue
		}
		idx := i
		defineInstruction(opINC, "INC "+registerNames[idx], func(c *CPU) {
			p := c.registerPointer(idx)
			*p = c.increment(*p)
		})
		defineInstruction(opDEC, "DEC "+registerNames[idx], func(c *CPU) {
			p := c.registerPointer(idx)
			*p = c.decrement(*p)
		})
	}
}

func init() {
	generateIncDecBlock()

	defineInstruction(0x03, "INC BC", func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() + 1); c.internalTick() })
	defineInstruction(0x0B, "DEC BC", func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() - 1); c.internalTick() })
	defineInstruction(0x13, "INC DE", func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() + 1); c.internalTick() })
	defineInstruction(0x1B, "DEC DE", func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() - 1); c.internalTick() })
	defineInstruction(0x23, "INC HL", func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() + 1); c.internalTick() })
	defineInstruction(0x2B, "DEC HL", func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() - 1); c.internalTick() })
	defineInstruction(0x33, "INC SP", func(c *CPU) { c.SP++; c.internalTick() })
	defineInstruction(0x3B, "DEC SP", func(c *CPU) { c.SP--; c.internalTick() })
}
