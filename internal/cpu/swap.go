package cpu

func init() {
	defineCBBlock(0x30, "SWAP ", func(c *CPU, dst uint8, x uint8) {
		result := x<<4 | x>>4
		c.setFlags(result == 0, false, false, false)
		c.writeCBResult(dst, result)
	})
}
