package cpu

// add adds x (and, if withCarry, the current carry flag) into A.
//
//	ADD A,x / ADC A,x
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry out of bit 3.
//	C - Set if carry out of bit 7.
func (c *CPU) add(x uint8, withCarry bool) {
	var carryIn uint16
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(x) + carryIn
	halfCarry := (c.A&0xF)+(x&0xF)+uint8(carryIn) > 0xF
	c.setFlags(uint8(sum) == 0, false, halfCarry, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts x (and, if withCarry, the current carry flag) from A.
//
//	SUB A,x / SBC A,x
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(x uint8, withCarry bool) {
	result, halfCarry, carry := c.subtract(x, withCarry)
	c.setFlags(result == 0, true, halfCarry, carry)
	c.A = result
}

// subtract performs the shared SUB/SBC/CP arithmetic without touching
// flags, so CP can reuse it without writing A.
func (c *CPU) subtract(x uint8, withCarry bool) (result uint8, halfCarry, carry bool) {
	var carryIn uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	halfCarry = (x&0xF)+carryIn > c.A&0xF
	carry = uint16(x)+uint16(carryIn) > uint16(c.A)
	result = c.A - x - carryIn
	return
}

// and, or, xor perform the bitwise op against A.
//
//	AND/OR/XOR A,x
func (c *CPU) and(x uint8) {
	c.A &= x
	c.setFlags(c.A == 0, false, true, false)
}

func (c *CPU) or(x uint8) {
	c.A |= x
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) xor(x uint8) {
	c.A ^= x
	c.setFlags(c.A == 0, false, false, false)
}

// cp compares x against A without storing the result.
//
//	CP A,x
func (c *CPU) cp(x uint8) {
	result, halfCarry, carry := c.subtract(x, false)
	c.setFlags(result == 0, true, halfCarry, carry)
}

// aluSource reads operand index src (0-7, with 6 meaning (HL)) the way
// every 8-bit ALU opcode addresses its operand.
func (c *CPU) aluSource(src uint8) uint8 {
	if src == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.registerPointer(src)
}

// generateALUBlock fills in the systematic 0x80-0xBF block: eight
// operations (ADD, ADC, SUB, SBC, AND, XOR, OR, CP) each over the eight
// standard operands (B,C,D,E,H,L,(HL),A).
func generateALUBlock() {
	ops := []struct {
		name string
		fn   func(c *CPU, x uint8)
	}{
		{"ADD A,", func(c *CPU, x uint8) { c.add(x, false) }},
		{"ADC A,", func(c *CPU, x uint8) { c.add(x, true) }},
		{"SUB ", func(c *CPU, x uint8) { c.sub(x, false) }},
		{"SBC A,", func(c *CPU, x uint8) { c.sub(x, true) }},
		{"AND ", func(c *CPU, x uint8) { c.and(x) }},
		{"XOR ", func(c *CPU, x uint8) { c.xor(x) }},
		{"OR ", func(c *CPU, x uint8) { c.or(x) }},
		{"CP ", func(c *CPU, x uint8) { c.cp(x) }},
	}
	for row, op := range ops {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x80 + uint8(row)*8 + src
			s, fn := src, op.fn
			defineInstruction(opcode, op.name+registerNames[s], func(c *CPU) {
				fn(c, c.aluSource(s))
			})
		}
	}
}

func init() {
	generateALUBlock()

	defineInstruction(0xC6, "ADD A,n", func(c *CPU) { c.add(c.readOperand(), false) })
	defineInstruction(0xCE, "ADC A,n", func(c *CPU) { c.add(c.readOperand(), true) })
	defineInstruction(0xD6, "SUB n", func(c *CPU) { c.sub(c.readOperand(), false) })
	defineInstruction(0xDE, "SBC A,n", func(c *CPU) { c.sub(c.readOperand(), true) })
	defineInstruction(0xE6, "AND n", func(c *CPU) { c.and(c.readOperand()) })
	defineInstruction(0xEE, "XOR n", func(c *CPU) { c.xor(c.readOperand()) })
	defineInstruction(0xF6, "OR n", func(c *CPU) { c.or(c.readOperand()) })
	defineInstruction(0xFE, "CP n", func(c *CPU) { c.cp(c.readOperand()) })
}
