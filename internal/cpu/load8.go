package cpu

// generateRegisterLoads fills in the 0x40-0x7F block: LD r,r' for every
// register pair, plus the (HL) special cases on both sides. 0x76 is
// skipped — that's HALT, registered separately in misc.go.
func generateRegisterLoads() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 + dst*8 + src
			if dst == 6 && src == 6 {
				continue // 0x76 HALT
			}
			name := "LD " + registerNames[dst] + "," + registerNames[src]

			switch {
			case dst == 6:
				s := src
				defineInstruction(opcode, name, func(c *CPU) {
					c.writeByte(c.HL.Uint16(), *c.registerPointer(s))
				})
			case src == 6:
				d := dst
				defineInstruction(opcode, name, func(c *CPU) {
					*c.registerPointer(d) = c.readByte(c.HL.Uint16())
				})
			default:
				d, s := dst, src
				defineInstruction(opcode, name, func(c *CPU) {
					*c.registerPointer(d) = *c.registerPointer(s)
				})
			}
		}
	}
}

// generateImmediateLoads fills in LD r,n for every register and LD
// (HL),n, opcodes 0x06,0x0E,0x16,...,0x3E plus 0x36.
func generateImmediateLoads() {
	regs := []uint8{0, 1, 2, 3, 4, 5, 7} // B,C,D,E,H,L,A (6 is (HL),n below)
	for _, r := range regs {
		opcode := 0x06 + r*8
		reg := r
		defineInstruction(opcode, "LD "+registerNames[reg]+",n", func(c *CPU) {
			*c.registerPointer(reg) = c.readOperand()
		})
	}
	defineInstruction(0x36, "LD (HL),n", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.readOperand())
	})
}

func init() {
	generateRegisterLoads()
	generateImmediateLoads()

	defineInstruction(0x02, "LD (BC),A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) })
	defineInstruction(0x0A, "LD A,(BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) })
	defineInstruction(0x12, "LD (DE),A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) })
	defineInstruction(0x1A, "LD A,(DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) })

	defineInstruction(0x22, "LD (HL+),A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	defineInstruction(0x2A, "LD A,(HL+)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	defineInstruction(0x32, "LD (HL-),A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	defineInstruction(0x3A, "LD A,(HL-)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	defineInstruction(0xE0, "LDH (n),A", func(c *CPU) {
		addr := 0xFF00 + uint16(c.readOperand())
		c.writeByte(addr, c.A)
	})
	defineInstruction(0xF0, "LDH A,(n)", func(c *CPU) {
		addr := 0xFF00 + uint16(c.readOperand())
		c.A = c.readByte(addr)
	})
	defineInstruction(0xE2, "LD (C),A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	defineInstruction(0xF2, "LD A,(C)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })

	defineInstruction(0xEA, "LD (nn),A", func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })
	defineInstruction(0xFA, "LD A,(nn)", func(c *CPU) { c.A = c.readByte(c.readOperand16()) })
}
