package cpu

func init() {
	defineCBBlock(0x20, "SLA ", func(c *CPU, dst uint8, x uint8) {
		carry := x&0x80 != 0
		result := x << 1
		c.setFlags(result == 0, false, false, carry)
		c.writeCBResult(dst, result)
	})
	defineCBBlock(0x28, "SRA ", func(c *CPU, dst uint8, x uint8) {
		carry := x&0x01 != 0
		result := uint8(int8(x) >> 1)
		c.setFlags(result == 0, false, false, carry)
		c.writeCBResult(dst, result)
	})
	defineCBBlock(0x38, "SRL ", func(c *CPU, dst uint8, x uint8) {
		carry := x&0x01 != 0
		result := x >> 1
		c.setFlags(result == 0, false, false, carry)
		c.writeCBResult(dst, result)
	})
}
