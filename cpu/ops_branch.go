package cpu

// branch implements the relative-addressing timing shared by all
// eight conditional branches: the offset byte is always fetched (2
// cycles total), a taken branch spends one more cycle recomputing PC,
// and crossing a page boundary while doing so costs one cycle beyond
// that. A taken branch also arms the one-instruction interrupt-skip
// quirk, since the extra cycle it spends is the same cycle real
// hardware would otherwise have used to sample the interrupt lines.
func (c *Chip) branch(taken bool) {
	offset := int8(c.fetchByte())
	if !taken {
		return
	}

	old := c.PC
	c.busRead(old) // spend the cycle recomputing PC with the old PCH
	newPC := uint16(int32(old) + int32(offset))
	c.PC = newPC
	// Only arm the skip if we're not already within the one-instruction
	// grace period from a previous taken branch: a run of consecutive
	// taken branches must delay a pending interrupt by exactly one
	// instruction, not indefinitely.
	if !c.prevSkipInterrupt {
		c.skipInterrupt = true
	}

	if old&0xFF00 != newPC&0xFF00 {
		c.busRead((old & 0xFF00) | (newPC & 0x00FF))
	}
}

func (c *Chip) bcc() { c.branch(!c.flag(FlagCarry)) }
func (c *Chip) bcs() { c.branch(c.flag(FlagCarry)) }
func (c *Chip) beq() { c.branch(c.flag(FlagZero)) }
func (c *Chip) bne() { c.branch(!c.flag(FlagZero)) }
func (c *Chip) bmi() { c.branch(c.flag(FlagNegative)) }
func (c *Chip) bpl() { c.branch(!c.flag(FlagNegative)) }
func (c *Chip) bvc() { c.branch(!c.flag(FlagOverflow)) }
func (c *Chip) bvs() { c.branch(c.flag(FlagOverflow)) }
