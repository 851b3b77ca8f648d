package cpu

// accessKind tells an effective-address resolver whether the
// instruction using it will only read the result, will read-modify-
// write it, or will only write it. Loads skip the extra page-cross
// bus cycle when the page wasn't actually crossed; stores and
// read-modify-write instructions always pay it, because real hardware
// can't know in advance that the low-byte add won't carry.
type accessKind int

const (
	accessLoad accessKind = iota
	accessRMW
	accessStore
)

// eaFunc resolves the effective address for an addressing mode,
// issuing whatever bus cycles that resolution requires.
type eaFunc func(c *Chip, kind accessKind) uint16

func eaZeroPage(c *Chip, _ accessKind) uint16 {
	return uint16(c.fetchByte())
}

func eaZeroPageIndexed(index func(c *Chip) uint8) eaFunc {
	return func(c *Chip, _ accessKind) uint16 {
		base := c.fetchByte()
		c.busRead(uint16(base)) // dummy read before the index is applied
		return uint16(base + index(c))
	}
}

func eaAbsolute(c *Chip, _ accessKind) uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func eaAbsoluteIndexed(index func(c *Chip) uint8) eaFunc {
	return func(c *Chip, kind accessKind) uint16 {
		lo := c.fetchByte()
		hi := c.fetchByte()
		idx := index(c)
		lowSum := uint16(lo) + uint16(idx)
		crossed := lowSum > 0xFF
		if crossed || kind != accessLoad {
			wrongAddr := uint16(hi)<<8 | (lowSum & 0xFF)
			c.busRead(wrongAddr)
		}
		return (uint16(hi)<<8 | uint16(lo)) + uint16(idx)
	}
}

func eaIndirectX(c *Chip, _ accessKind) uint16 {
	zp := c.fetchByte()
	c.busRead(uint16(zp)) // dummy read before X is applied
	ptr := zp + c.X
	lo := c.busRead(uint16(ptr))
	hi := c.busRead(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func eaIndirectY(c *Chip, kind accessKind) uint16 {
	zp := c.fetchByte()
	lo := c.busRead(uint16(zp))
	hi := c.busRead(uint16(zp + 1))
	lowSum := uint16(lo) + uint16(c.Y)
	crossed := lowSum > 0xFF
	if crossed || kind != accessLoad {
		wrongAddr := uint16(hi)<<8 | (lowSum & 0xFF)
		c.busRead(wrongAddr)
	}
	return (uint16(hi)<<8 | uint16(lo)) + uint16(c.Y)
}

func regX(c *Chip) uint8 { return c.X }
func regY(c *Chip) uint8 { return c.Y }

var (
	eaZeroPageX = eaZeroPageIndexed(regX)
	eaZeroPageY = eaZeroPageIndexed(regY)
	eaAbsoluteX = eaAbsoluteIndexed(regX)
	eaAbsoluteY = eaAbsoluteIndexed(regY)
)

// load reads the value addressed by ea and passes it to set (which
// updates a register and its Z/N flags).
func (c *Chip) load(ea eaFunc, set func(uint8)) {
	addr := ea(c, accessLoad)
	set(c.busRead(addr))
}

// store writes val to the address addressed by ea.
func (c *Chip) store(ea eaFunc, val uint8) {
	addr := ea(c, accessStore)
	c.busWrite(addr, val)
}

// rmw reads the value at ea, writes it back unchanged (the bus cycle
// real 6502 read-modify-write instructions always spend), computes the
// new value via op, and writes that back. op is a method expression
// like (*Chip).asl so it can update flags on c.
func (c *Chip) rmw(ea eaFunc, op func(*Chip, uint8) uint8) {
	addr := ea(c, accessRMW)
	val := c.busRead(addr)
	c.busWrite(addr, val)
	newVal := op(c, val)
	c.busWrite(addr, newVal)
}
