package cpu

func (c *Chip) setA(v uint8) { c.A = v; c.setZN(c.A) }
func (c *Chip) setX(v uint8) { c.X = v; c.setZN(c.X) }
func (c *Chip) setY(v uint8) { c.Y = v; c.setZN(c.Y) }

// The register-to-register transfers below only move the value; the
// one idle bus cycle each takes beyond its opcode fetch is issued by
// the implied wrapper in opcodes.go (via impliedCycle), not here.
func (c *Chip) tax() { c.setX(c.A) }
func (c *Chip) txa() { c.setA(c.X) }
func (c *Chip) tay() { c.setY(c.A) }
func (c *Chip) tya() { c.setA(c.Y) }
func (c *Chip) tsx() { c.setX(c.S) }

// txs copies X into S without touching any flag; S is not one of the
// registers N/Z track.
func (c *Chip) txs() { c.S = c.X }
