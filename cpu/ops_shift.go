package cpu

func (c *Chip) asl(v uint8) uint8 {
	c.setFlag(FlagCarry, v&0x80 != 0)
	res := v << 1
	c.setZN(res)
	return res
}

func (c *Chip) lsr(v uint8) uint8 {
	c.setFlag(FlagCarry, v&0x01 != 0)
	res := v >> 1
	c.setZN(res)
	return res
}

func (c *Chip) rol(v uint8) uint8 {
	carryIn := c.P & FlagCarry
	c.setFlag(FlagCarry, v&0x80 != 0)
	res := (v << 1) | carryIn
	c.setZN(res)
	return res
}

func (c *Chip) ror(v uint8) uint8 {
	carryIn := (c.P & FlagCarry) << 7
	c.setFlag(FlagCarry, v&0x01 != 0)
	res := (v >> 1) | carryIn
	c.setZN(res)
	return res
}

func (c *Chip) inc(v uint8) uint8 {
	res := v + 1
	c.setZN(res)
	return res
}

func (c *Chip) dec(v uint8) uint8 {
	res := v - 1
	c.setZN(res)
	return res
}

func (c *Chip) aslAcc() {
	c.A = c.asl(c.A)
}

func (c *Chip) lsrAcc() {
	c.A = c.lsr(c.A)
}

func (c *Chip) rolAcc() {
	c.A = c.rol(c.A)
}

func (c *Chip) rorAcc() {
	c.A = c.ror(c.A)
}

func (c *Chip) inx() { c.X++; c.setZN(c.X) }
func (c *Chip) dex() { c.X--; c.setZN(c.X) }
func (c *Chip) iny() { c.Y++; c.setZN(c.Y) }
func (c *Chip) dey() { c.Y--; c.setZN(c.Y) }
