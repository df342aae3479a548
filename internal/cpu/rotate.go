package cpu

// rlc rotates v left, bit 7 wrapping into bit 0 and into the carry flag.
func rlc(v uint8) (result uint8, carry bool) {
	carry = v&0x80 != 0
	result = v<<1 | v>>7
	return
}

// rrc rotates v right, bit 0 wrapping into bit 7 and into the carry flag.
func rrc(v uint8) (result uint8, carry bool) {
	carry = v&0x01 != 0
	result = v>>1 | v<<7
	return
}

// rl rotates v left through the carry flag: the incoming carry becomes
// bit 0, and the outgoing bit 7 becomes the new carry.
func rl(v uint8, carryIn bool) (result uint8, carry bool) {
	carry = v&0x80 != 0
	result = v << 1
	if carryIn {
		result |= 0x01
	}
	return
}

// rr rotates v right through the carry flag: the incoming carry becomes
// bit 7, and the outgoing bit 0 becomes the new carry.
func rr(v uint8, carryIn bool) (result uint8, carry bool) {
	carry = v&0x01 != 0
	result = v >> 1
	if carryIn {
		result |= 0x80
	}
	return
}

func init() {
	// The non-prefixed accumulator rotates always reset Z, unlike their
	// CB-prefixed counterparts below.
	defineInstruction(0x07, "RLCA", func(c *CPU) {
		result, carry := rlc(c.A)
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	defineInstruction(0x0F, "RRCA", func(c *CPU) {
		result, carry := rrc(c.A)
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	defineInstruction(0x17, "RLA", func(c *CPU) {
		result, carry := rl(c.A, c.isFlagSet(FlagCarry))
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	defineInstruction(0x1F, "RRA", func(c *CPU) {
		result, carry := rr(c.A, c.isFlagSet(FlagCarry))
		c.A = result
		c.setFlags(false, false, false, carry)
	})

	defineCBBlock(0x00, "RLC ", func(c *CPU, dst uint8, x uint8) {
		result, carry := rlc(x)
		c.setFlags(result == 0, false, false, carry)
		c.writeCBResult(dst, result)
	})
	defineCBBlock(0x08, "RRC ", func(c *CPU, dst uint8, x uint8) {
		result, carry := rrc(x)
		c.setFlags(result == 0, false, false, carry)
		c.writeCBResult(dst, result)
	})
	defineCBBlock(0x10, "RL ", func(c *CPU, dst uint8, x uint8) {
		result, carry := rl(x, c.isFlagSet(FlagCarry))
		c.setFlags(result == 0, false, false, carry)
		c.writeCBResult(dst, result)
	})
	defineCBBlock(0x18, "RR ", func(c *CPU, dst uint8, x uint8) {
		result, carry := rr(x, c.isFlagSet(FlagCarry))
		c.setFlags(result == 0, false, false, carry)
		c.writeCBResult(dst, result)
	})
}
