package cpu

// adc adds v and the carry flag into A, honoring decimal mode. The BCD
// correction follows the standard nibble-fixup algorithm; in decimal
// mode Z is derived from the plain binary sum, and N and V from the
// intermediate sum that has only had its low nibble corrected, which
// is what NMOS silicon actually does (it's a well-known and frequently
// relied-upon quirk, not a bug in this implementation).
func (c *Chip) adc(v uint8) {
	carry := c.P & FlagCarry

	if c.flag(FlagDecimal) {
		lo := (c.A & 0x0F) + (v & 0x0F) + carry
		if lo >= 0x0A {
			lo = ((lo + 0x06) & 0x0F) + 0x10
		}
		sum := uint16(c.A&0xF0) + uint16(v&0xF0) + uint16(lo)
		if sum >= 0xA0 {
			sum += 0x60
		}
		seq := (c.A & 0xF0) + (v & 0xF0) + lo
		bin := c.A + v + carry

		c.setOverflow(c.A, v, seq)
		c.setCarryFromWide(sum)
		c.setFlag(FlagNegative, seq&0x80 != 0)
		c.setFlag(FlagZero, bin == 0)
		c.A = uint8(sum & 0xFF)
		return
	}

	sum := c.A + v + carry
	c.setOverflow(c.A, v, sum)
	c.setCarryFromWide(uint16(c.A) + uint16(v) + uint16(carry))
	c.A = sum
	c.setZN(c.A)
}

// sbc subtracts v and the borrow (inverted carry) from A. In binary
// mode it's exactly ADC with the operand's bits flipped, the classic
// 6502 trick; decimal mode needs its own nibble fixup since the result
// digits aren't simply the ones'-complement of ADC's.
func (c *Chip) sbc(v uint8) {
	if !c.flag(FlagDecimal) {
		c.adc(^v)
		return
	}

	carry := c.P & FlagCarry
	lo := int8(c.A&0x0F) - int8(v&0x0F) + int8(carry) - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0F) - 0x10
	}
	sum := int16(c.A&0xF0) - int16(v&0xF0) + int16(lo)
	if sum < 0 {
		sum -= 0x60
	}
	res := uint8(sum & 0xFF)

	b := c.A + ^v + carry
	c.setOverflow(c.A, ^v, b)
	c.setFlag(FlagNegative, b&0x80 != 0)
	c.setCarryFromWide(uint16(c.A) + uint16(^v) + uint16(carry))
	c.setFlag(FlagZero, b == 0)
	c.A = res
}

// compare implements CMP/CPX/CPY: an unsigned subtraction that sets
// flags but discards the result, with C set when reg >= v.
func (c *Chip) compare(reg, v uint8) {
	res := uint16(reg) - uint16(v)
	c.setFlag(FlagCarry, reg >= v)
	c.setZN(uint8(res))
}
