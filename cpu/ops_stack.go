package cpu

// pha/php/pla/plp all spend one bus cycle reading the next opcode
// byte (without advancing PC) before touching the stack; that's where
// their extra cycle beyond a push/pull actually goes on real hardware.

func (c *Chip) pha() {
	c.busRead(c.PC)
	c.pushStack(c.A)
}

func (c *Chip) php() {
	c.busRead(c.PC)
	c.pushStack(c.P | FlagBreak | FlagUnused)
}

func (c *Chip) pla() {
	c.busRead(c.PC)
	c.busRead(0x0100 + uint16(c.S)) // dummy read before S is incremented
	c.setA(c.popStack())
}

func (c *Chip) plp() {
	c.busRead(c.PC)
	c.busRead(0x0100 + uint16(c.S))
	v := c.popStack()
	c.P = (v &^ FlagBreak) | FlagUnused
}
