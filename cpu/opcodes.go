package cpu

// opFunc executes one opcode's worth of work, including its own
// operand fetches and any further bus cycles it needs. The opcode
// fetch cycle itself has already happened by the time an opFunc runs.
type opFunc func(c *Chip)

// opcodeTable is a dense, exhaustive map from opcode byte to handler.
// Every one of the 256 entries is populated: the 151 legal 6502
// opcodes get their real semantics, and every other slot defaults to
// illegalOpcode so a stray byte can never crash or corrupt state.
var opcodeTable [256]opFunc

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = illegalOpcode
	}

	// implied wraps a zero-operand instruction with the one idle bus
	// cycle it spends beyond its opcode fetch.
	implied := func(op func(*Chip)) opFunc {
		return func(c *Chip) {
			c.impliedCycle()
			op(c)
		}
	}
	// alu wires an addressing mode's effective address into an ALU op
	// that reads a value and folds it into the accumulator or flags.
	alu := func(ea eaFunc, op func(*Chip, uint8)) opFunc {
		return func(c *Chip) {
			c.load(ea, func(v uint8) { op(c, v) })
		}
	}
	aluImm := func(op func(*Chip, uint8)) opFunc {
		return func(c *Chip) { op(c, c.fetchByte()) }
	}
	rmw := func(ea eaFunc, op func(*Chip, uint8) uint8) opFunc {
		return func(c *Chip) { c.rmw(ea, op) }
	}
	ld := func(ea eaFunc, set func(*Chip, uint8)) opFunc {
		return func(c *Chip) { c.load(ea, func(v uint8) { set(c, v) }) }
	}
	ldImm := func(set func(*Chip, uint8)) opFunc {
		return func(c *Chip) { set(c, c.fetchByte()) }
	}
	st := func(ea eaFunc, reg func(*Chip) uint8) opFunc {
		return func(c *Chip) { c.store(ea, reg(c)) }
	}

	adc := func(c *Chip, v uint8) { c.adc(v) }
	and := func(c *Chip, v uint8) { c.and(v) }
	ora := func(c *Chip, v uint8) { c.ora(v) }
	eor := func(c *Chip, v uint8) { c.eor(v) }
	sbc := func(c *Chip, v uint8) { c.sbc(v) }
	bit := func(c *Chip, v uint8) { c.bit(v) }
	cmpA := func(c *Chip, v uint8) { c.compare(c.A, v) }
	cmpX := func(c *Chip, v uint8) { c.compare(c.X, v) }
	cmpY := func(c *Chip, v uint8) { c.compare(c.Y, v) }
	setA := func(c *Chip, v uint8) { c.setA(v) }
	setX := func(c *Chip, v uint8) { c.setX(v) }
	setY := func(c *Chip, v uint8) { c.setY(v) }
	getA := func(c *Chip) uint8 { return c.A }
	getX := func(c *Chip) uint8 { return c.X }
	getY := func(c *Chip) uint8 { return c.Y }

	set := func(op uint8, fn opFunc) { opcodeTable[op] = fn }

	// ADC
	set(0x69, aluImm(adc))
	set(0x65, alu(eaZeroPage, adc))
	set(0x75, alu(eaZeroPageX, adc))
	set(0x6D, alu(eaAbsolute, adc))
	set(0x7D, alu(eaAbsoluteX, adc))
	set(0x79, alu(eaAbsoluteY, adc))
	set(0x61, alu(eaIndirectX, adc))
	set(0x71, alu(eaIndirectY, adc))

	// AND
	set(0x29, aluImm(and))
	set(0x25, alu(eaZeroPage, and))
	set(0x35, alu(eaZeroPageX, and))
	set(0x2D, alu(eaAbsolute, and))
	set(0x3D, alu(eaAbsoluteX, and))
	set(0x39, alu(eaAbsoluteY, and))
	set(0x21, alu(eaIndirectX, and))
	set(0x31, alu(eaIndirectY, and))

	// ASL
	set(0x0A, implied(func(c *Chip) { c.aslAcc() }))
	set(0x06, rmw(eaZeroPage, (*Chip).asl))
	set(0x16, rmw(eaZeroPageX, (*Chip).asl))
	set(0x0E, rmw(eaAbsolute, (*Chip).asl))
	set(0x1E, rmw(eaAbsoluteX, (*Chip).asl))

	// Branches
	set(0x90, func(c *Chip) { c.bcc() })
	set(0xB0, func(c *Chip) { c.bcs() })
	set(0xF0, func(c *Chip) { c.beq() })
	set(0x30, func(c *Chip) { c.bmi() })
	set(0xD0, func(c *Chip) { c.bne() })
	set(0x10, func(c *Chip) { c.bpl() })
	set(0x50, func(c *Chip) { c.bvc() })
	set(0x70, func(c *Chip) { c.bvs() })

	// BIT
	set(0x24, alu(eaZeroPage, bit))
	set(0x2C, alu(eaAbsolute, bit))

	// BRK
	set(0x00, func(c *Chip) { c.brk() })

	// Flag ops
	set(0x18, implied(func(c *Chip) { c.clc() }))
	set(0xD8, implied(func(c *Chip) { c.cld() }))
	set(0x58, implied(func(c *Chip) { c.cli() }))
	set(0xB8, implied(func(c *Chip) { c.clv() }))
	set(0x38, implied(func(c *Chip) { c.sec() }))
	set(0xF8, implied(func(c *Chip) { c.sed() }))
	set(0x78, implied(func(c *Chip) { c.sei() }))

	// CMP
	set(0xC9, aluImm(cmpA))
	set(0xC5, alu(eaZeroPage, cmpA))
	set(0xD5, alu(eaZeroPageX, cmpA))
	set(0xCD, alu(eaAbsolute, cmpA))
	set(0xDD, alu(eaAbsoluteX, cmpA))
	set(0xD9, alu(eaAbsoluteY, cmpA))
	set(0xC1, alu(eaIndirectX, cmpA))
	set(0xD1, alu(eaIndirectY, cmpA))

	// CPX / CPY
	set(0xE0, aluImm(cmpX))
	set(0xE4, alu(eaZeroPage, cmpX))
	set(0xEC, alu(eaAbsolute, cmpX))
	set(0xC0, aluImm(cmpY))
	set(0xC4, alu(eaZeroPage, cmpY))
	set(0xCC, alu(eaAbsolute, cmpY))

	// DEC
	set(0xC6, rmw(eaZeroPage, (*Chip).dec))
	set(0xD6, rmw(eaZeroPageX, (*Chip).dec))
	set(0xCE, rmw(eaAbsolute, (*Chip).dec))
	set(0xDE, rmw(eaAbsoluteX, (*Chip).dec))

	// DEX / DEY / INX / INY
	set(0xCA, implied(func(c *Chip) { c.dex() }))
	set(0x88, implied(func(c *Chip) { c.dey() }))
	set(0xE8, implied(func(c *Chip) { c.inx() }))
	set(0xC8, implied(func(c *Chip) { c.iny() }))

	// EOR
	set(0x49, aluImm(eor))
	set(0x45, alu(eaZeroPage, eor))
	set(0x55, alu(eaZeroPageX, eor))
	set(0x4D, alu(eaAbsolute, eor))
	set(0x5D, alu(eaAbsoluteX, eor))
	set(0x59, alu(eaAbsoluteY, eor))
	set(0x41, alu(eaIndirectX, eor))
	set(0x51, alu(eaIndirectY, eor))

	// INC
	set(0xE6, rmw(eaZeroPage, (*Chip).inc))
	set(0xF6, rmw(eaZeroPageX, (*Chip).inc))
	set(0xEE, rmw(eaAbsolute, (*Chip).inc))
	set(0xFE, rmw(eaAbsoluteX, (*Chip).inc))

	// JMP / JSR
	set(0x4C, func(c *Chip) { c.jmpAbsolute() })
	set(0x6C, func(c *Chip) { c.jmpIndirect() })
	set(0x20, func(c *Chip) { c.jsr() })

	// LDA / LDX / LDY
	set(0xA9, ldImm(setA))
	set(0xA5, ld(eaZeroPage, setA))
	set(0xB5, ld(eaZeroPageX, setA))
	set(0xAD, ld(eaAbsolute, setA))
	set(0xBD, ld(eaAbsoluteX, setA))
	set(0xB9, ld(eaAbsoluteY, setA))
	set(0xA1, ld(eaIndirectX, setA))
	set(0xB1, ld(eaIndirectY, setA))

	set(0xA2, ldImm(setX))
	set(0xA6, ld(eaZeroPage, setX))
	set(0xB6, ld(eaZeroPageY, setX))
	set(0xAE, ld(eaAbsolute, setX))
	set(0xBE, ld(eaAbsoluteY, setX))

	set(0xA0, ldImm(setY))
	set(0xA4, ld(eaZeroPage, setY))
	set(0xB4, ld(eaZeroPageX, setY))
	set(0xAC, ld(eaAbsolute, setY))
	set(0xBC, ld(eaAbsoluteX, setY))

	// LSR
	set(0x4A, implied(func(c *Chip) { c.lsrAcc() }))
	set(0x46, rmw(eaZeroPage, (*Chip).lsr))
	set(0x56, rmw(eaZeroPageX, (*Chip).lsr))
	set(0x4E, rmw(eaAbsolute, (*Chip).lsr))
	set(0x5E, rmw(eaAbsoluteX, (*Chip).lsr))

	// NOP
	set(0xEA, implied(func(c *Chip) { c.nop() }))

	// ORA
	set(0x09, aluImm(ora))
	set(0x05, alu(eaZeroPage, ora))
	set(0x15, alu(eaZeroPageX, ora))
	set(0x0D, alu(eaAbsolute, ora))
	set(0x1D, alu(eaAbsoluteX, ora))
	set(0x19, alu(eaAbsoluteY, ora))
	set(0x01, alu(eaIndirectX, ora))
	set(0x11, alu(eaIndirectY, ora))

	// Stack
	set(0x48, func(c *Chip) { c.pha() })
	set(0x08, func(c *Chip) { c.php() })
	set(0x68, func(c *Chip) { c.pla() })
	set(0x28, func(c *Chip) { c.plp() })

	// ROL / ROR
	set(0x2A, implied(func(c *Chip) { c.rolAcc() }))
	set(0x26, rmw(eaZeroPage, (*Chip).rol))
	set(0x36, rmw(eaZeroPageX, (*Chip).rol))
	set(0x2E, rmw(eaAbsolute, (*Chip).rol))
	set(0x3E, rmw(eaAbsoluteX, (*Chip).rol))

	set(0x6A, implied(func(c *Chip) { c.rorAcc() }))
	set(0x66, rmw(eaZeroPage, (*Chip).ror))
	set(0x76, rmw(eaZeroPageX, (*Chip).ror))
	set(0x6E, rmw(eaAbsolute, (*Chip).ror))
	set(0x7E, rmw(eaAbsoluteX, (*Chip).ror))

	// RTI / RTS
	set(0x40, func(c *Chip) { c.rti() })
	set(0x60, func(c *Chip) { c.rts() })

	// SBC
	set(0xE9, aluImm(sbc))
	set(0xE5, alu(eaZeroPage, sbc))
	set(0xF5, alu(eaZeroPageX, sbc))
	set(0xED, alu(eaAbsolute, sbc))
	set(0xFD, alu(eaAbsoluteX, sbc))
	set(0xF9, alu(eaAbsoluteY, sbc))
	set(0xE1, alu(eaIndirectX, sbc))
	set(0xF1, alu(eaIndirectY, sbc))

	// STA / STX / STY
	set(0x85, st(eaZeroPage, getA))
	set(0x95, st(eaZeroPageX, getA))
	set(0x8D, st(eaAbsolute, getA))
	set(0x9D, st(eaAbsoluteX, getA))
	set(0x99, st(eaAbsoluteY, getA))
	set(0x81, st(eaIndirectX, getA))
	set(0x91, st(eaIndirectY, getA))

	set(0x86, st(eaZeroPage, getX))
	set(0x96, st(eaZeroPageY, getX))
	set(0x8E, st(eaAbsolute, getX))

	set(0x84, st(eaZeroPage, getY))
	set(0x94, st(eaZeroPageX, getY))
	set(0x8C, st(eaAbsolute, getY))

	// Register transfers
	set(0xAA, implied(func(c *Chip) { c.tax() }))
	set(0xA8, implied(func(c *Chip) { c.tay() }))
	set(0xBA, implied(func(c *Chip) { c.tsx() }))
	set(0x8A, implied(func(c *Chip) { c.txa() }))
	set(0x9A, implied(func(c *Chip) { c.txs() }))
	set(0x98, implied(func(c *Chip) { c.tya() }))
}

// illegalOpcode is the safe default for any of the 256 byte values
// that isn't one of the documented instructions: it behaves like a
// single-byte two-cycle NOP rather than crashing or corrupting
// register state. Real NMOS parts give undocumented opcodes varied,
// sometimes useful, behavior; reproducing that is out of scope here.
func illegalOpcode(c *Chip) {
	c.impliedCycle()
}
