package cpu

import "github.com/fauxboy/sm83/internal/types"

func init() {
	defineInstruction(0x01, "LD BC,nn", func(c *CPU) { c.BC.SetUint16(c.readOperand16()) })
	defineInstruction(0x11, "LD DE,nn", func(c *CPU) { c.DE.SetUint16(c.readOperand16()) })
	defineInstruction(0x21, "LD HL,nn", func(c *CPU) { c.HL.SetUint16(c.readOperand16()) })
	defineInstruction(0x31, "LD SP,nn", func(c *CPU) { c.SP = c.readOperand16() })

	defineInstruction(0x08, "LD (nn),SP", func(c *CPU) {
		addr := c.readOperand16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})

	defineInstruction(0xF9, "LD SP,HL", func(c *CPU) {
		c.SP = c.HL.Uint16()
		c.internalTick()
	})

	defineInstruction(0xF8, "LD HL,SP+e", func(c *CPU) {
		e := c.readOperand()
		result, halfCarry, carry := c.addSPOffset(e)
		c.internalTick()
		c.setFlags(false, false, halfCarry, carry)
		c.HL.SetUint16(result)
	})

	definePush(0xC5, "BC", func(c *CPU) *types.RegisterPair { return c.BC })
	definePush(0xD5, "DE", func(c *CPU) *types.RegisterPair { return c.DE })
	definePush(0xE5, "HL", func(c *CPU) *types.RegisterPair { return c.HL })
	defineInstruction(0xF5, "PUSH AF", func(c *CPU) {
		c.internalTick()
		c.writeByte(c.SP-1, c.A)
		c.writeByte(c.SP-2, c.F)
		c.SP -= 2
	})

	definePop(0xC1, "BC", func(c *CPU) *types.RegisterPair { return c.BC })
	definePop(0xD1, "DE", func(c *CPU) *types.RegisterPair { return c.DE })
	definePop(0xE1, "HL", func(c *CPU) *types.RegisterPair { return c.HL })
	defineInstruction(0xF1, "POP AF", func(c *CPU) {
		lo := c.readByte(c.SP)
		hi := c.readByte(c.SP + 1)
		c.SP += 2
		c.A = hi
		c.setF(lo)
	})
}

// definePush registers PUSH rr for a 16-bit register pair, for the three
// pairs (BC, DE, HL) that push their bytes straight from the pair view.
// PUSH AF and POP AF are registered separately above; POP AF masks the
// low nibble of F through setF.
func definePush(opcode uint8, name string, pair func(c *CPU) *types.RegisterPair) {
	defineInstruction(opcode, "PUSH "+name, func(c *CPU) {
		p := pair(c)
		c.internalTick()
		c.writeByte(c.SP-1, *p.High)
		c.writeByte(c.SP-2, *p.Low)
		c.SP -= 2
	})
}

func definePop(opcode uint8, name string, pair func(c *CPU) *types.RegisterPair) {
	defineInstruction(opcode, "POP "+name, func(c *CPU) {
		p := pair(c)
		lo := c.readByte(c.SP)
		hi := c.readByte(c.SP + 1)
		c.SP += 2
		*p.High = hi
		*p.Low = lo
	})
}
