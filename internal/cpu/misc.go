package cpu

// daa adjusts A into packed BCD after an 8-bit addition or subtraction,
// following the flags the preceding op left behind.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset depending on the operation.
func (c *CPU) daa() {
	a := c.A
	carry := c.isFlagSet(FlagCarry)
	half := c.isFlagSet(FlagHalfCarry)
	subtract := c.isFlagSet(FlagSubtract)

	if !subtract {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if half || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if half {
			a -= 0x06
		}
	}

	c.A = a
	c.setFlags(a == 0, subtract, false, carry)
}

func init() {
	defineInstruction(0x00, "NOP", func(c *CPU) {})

	// STOP/HALT power-state semantics (CGB double-speed switch, the
	// halt bug, interrupt-driven wake) belong to the surrounding system
	// per spec; the core only owes the tick count.
	defineInstruction(0x10, "STOP", func(c *CPU) {
		c.internalTick()
		c.internalTick()
	})
	defineInstruction(0x76, "HALT", func(c *CPU) {
		c.internalTick()
		c.internalTick()
	})

	defineInstruction(0x27, "DAA", func(c *CPU) { c.daa() })

	defineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract, true)
		c.setFlag(FlagHalfCarry, true)
	})

	defineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry, true)
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
	})

	defineInstruction(0x3F, "CCF", func(c *CPU) {
		c.toggleFlag(FlagCarry)
		c.setFlag(FlagSubtract, false)
		c.setFlag(FlagHalfCarry, false)
	})

	// IME lives outside this core (§4.4/§9); EI/DI/RETI touch no field
	// here at all.
	defineInstruction(0xF3, "DI", func(c *CPU) {})
	defineInstruction(0xFB, "EI", func(c *CPU) {})
}
