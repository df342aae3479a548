package cpu

// writeCBResult stores value back into operand index dst (0-7, 6 meaning
// (HL)) the way every CB-prefixed write-back opcode does. Register
// targets are a plain assignment; (HL) costs one more bus write, which
// together with the read aluSource already charged gives the 4-cycle
// total CB (HL) opcodes need (2 for the prefix+extension fetch, 1 read,
// 1 write). BIT never calls this - it only reads.
func (c *CPU) writeCBResult(dst uint8, value uint8) {
	if dst == 6 {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.registerPointer(dst) = value
}

// defineCBBlock registers a CB-prefixed operation across all eight
// standard operands, starting at base (base+0 is operand B, base+7 is A).
// fn receives the operand index (so it can write its result back via
// writeCBResult) alongside the operand's current value.
func defineCBBlock(base uint8, name string, fn func(c *CPU, dst uint8, x uint8)) {
	for src := uint8(0); src < 8; src++ {
		opcode := base + src
		s := src
		label := name + registerNames[s]
		defineInstructionCB(opcode, label, func(c *CPU) {
			fn(c, s, c.aluSource(s))
		})
	}
}
