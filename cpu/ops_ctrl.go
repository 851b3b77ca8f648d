package cpu

func (c *Chip) jmpAbsolute() {
	lo := c.fetchByte()
	hi := c.fetchByte()
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// jmpIndirect reproduces the classic page-wrap bug: when the pointer's
// low byte is 0xFF, the high byte of the target is fetched from the
// start of the same page instead of the next one.
func (c *Chip) jmpIndirect() {
	ptrLo := c.fetchByte()
	ptrHi := c.fetchByte()
	lo := c.busRead(uint16(ptrHi)<<8 | uint16(ptrLo))
	hiAddr := uint16(ptrHi)<<8 | uint16(uint8(ptrLo+1))
	hi := c.busRead(hiAddr)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

func (c *Chip) jsr() {
	lo := c.fetchByte()
	c.busRead(0x0100 + uint16(c.S)) // internal delay, stack untouched
	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC))
	hi := c.fetchByte()
	c.PC = uint16(hi)<<8 | uint16(lo)
}

func (c *Chip) rts() {
	c.busRead(c.PC)
	c.busRead(0x0100 + uint16(c.S))
	lo := c.popStack()
	hi := c.popStack()
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.busRead(c.PC)
	c.PC++
}

func (c *Chip) rti() {
	c.busRead(c.PC)
	c.busRead(0x0100 + uint16(c.S))
	p := c.popStack()
	lo := c.popStack()
	hi := c.popStack()
	c.P = (p &^ FlagBreak) | FlagUnused
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// brk enters the interrupt sequence at the IRQ vector with the Break
// flag set on the pushed status byte. A hardware NMI that arrives
// during BRK's own bus cycles is only acted on at the next instruction
// boundary, after BRK has fully completed.
func (c *Chip) brk() {
	c.enterInterrupt(vectorIRQ, true)
}

func (c *Chip) nop() {}

func (c *Chip) clc() { c.setFlag(FlagCarry, false) }
func (c *Chip) sec() { c.setFlag(FlagCarry, true) }
func (c *Chip) cli() { c.setFlag(FlagInterrupt, false) }
func (c *Chip) sei() { c.setFlag(FlagInterrupt, true) }
func (c *Chip) clv() { c.setFlag(FlagOverflow, false) }
func (c *Chip) cld() { c.setFlag(FlagDecimal, false) }
func (c *Chip) sed() { c.setFlag(FlagDecimal, true) }
