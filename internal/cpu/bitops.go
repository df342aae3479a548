package cpu

import "github.com/fauxboy/sm83/pkg/bits"

// defineBitTestBlock registers BIT n,x across all eight operands for a
// fixed bit index n. Unlike the other CB families this one never writes
// its operand back, so (HL) targets cost 3 cycles (2 fetch + 1 read)
// instead of 4.
func defineBitTestBlock(n uint8) {
	base := 0x40 + n*8
	for src := uint8(0); src < 8; src++ {
		opcode := base + src
		s := src
		defineInstructionCB(opcode, "BIT "+string(rune('0'+n))+","+registerNames[s], func(c *CPU) {
			x := c.aluSource(s)
			c.setFlags(!bits.Test(x, n), false, true, c.isFlagSet(FlagCarry))
		})
	}
}

func defineSetResBlock(base uint8, name string, n uint8, op func(b, i uint8) uint8) {
	for src := uint8(0); src < 8; src++ {
		opcode := base + n*8 + src
		s := src
		defineInstructionCB(opcode, name+string(rune('0'+n))+","+registerNames[s], func(c *CPU) {
			c.writeCBResult(s, op(c.aluSource(s), n))
		})
	}
}

func init() {
	for n := uint8(0); n < 8; n++ {
		defineBitTestBlock(n)
		defineSetResBlock(0x80, "RES ", n, bits.Reset)
		defineSetResBlock(0xC0, "SET ", n, bits.Set)
	}
}
