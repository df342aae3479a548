package cpu

// addSPOffset computes SP + sign-extend(e) and the flags that result,
// without touching any ticking — both LD HL,SP+e and ADD SP,e need this
// arithmetic but charge a different number of internal delay cycles
// around it, so the tick accounting lives in each instruction body.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Carry out of bit 3 of the low byte.
//	C - Carry out of bit 7 of the low byte.
func (c *CPU) addSPOffset(e uint8) (uint16, bool, bool) {
	signed := uint16(int16(int8(e)))
	result := c.SP + signed
	tmp := c.SP ^ signed ^ result
	halfCarry := tmp&0x10 != 0
	carry := tmp&0x100 != 0
	return result, halfCarry, carry
}
