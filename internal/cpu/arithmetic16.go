package cpu

import "github.com/fauxboy/sm83/internal/types"

// addHL adds value into HL.
//
//	ADD HL,rr
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry out of bit 11.
//	C - Set if carry out of bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	halfCarry := (hl&0xFFF)+(value&0xFFF) > 0xFFF
	c.setFlags(c.isFlagSet(FlagZero), false, halfCarry, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// defineAddHL registers ADD HL,rr for a source pair; one internal tick
// pays for the 16-bit add itself.
func defineAddHL(opcode uint8, name string, pair func(c *CPU) *types.RegisterPair) {
	defineInstruction(opcode, "ADD HL,"+name, func(c *CPU) {
		c.addHL(pair(c).Uint16())
		c.internalTick()
	})
}

func init() {
	defineAddHL(0x09, "BC", func(c *CPU) *types.RegisterPair { return c.BC })
	defineAddHL(0x19, "DE", func(c *CPU) *types.RegisterPair { return c.DE })
	defineAddHL(0x29, "HL", func(c *CPU) *types.RegisterPair { return c.HL })
	defineInstruction(0x39, "ADD HL,SP", func(c *CPU) {
		hl := c.HL.Uint16()
		sum := uint32(hl) + uint32(c.SP)
		halfCarry := (hl&0xFFF)+(c.SP&0xFFF) > 0xFFF
		c.setFlags(c.isFlagSet(FlagZero), false, halfCarry, sum > 0xFFFF)
		c.HL.SetUint16(uint16(sum))
		c.internalTick()
	})

	defineInstruction(0xE8, "ADD SP,e", func(c *CPU) {
		e := c.readOperand()
		result, halfCarry, carry := c.addSPOffset(e)
		c.internalTick()
		c.internalTick()
		c.setFlags(false, false, halfCarry, carry)
		c.SP = result
	})
}
