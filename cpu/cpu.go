// Package cpu implements a cycle-accurate MOS 6502 core. It exposes no
// memory map, no I/O peripherals and no wall-clock pacing of its own;
// every bus cycle is handed to a host-supplied bus.TickFunc, exactly
// the way real silicon hands every cycle to whatever is wired to its
// pins.
package cpu

import "github.com/sjanota/go6502/bus"

// Chip is one 6502 core. Its exported fields are the architectural
// register file; everything else is unexported execution state.
type Chip struct {
	A, X, Y uint8
	S       uint8
	P       uint8
	PC      uint16

	tick bus.TickFunc
	pins bus.Pins

	cycles uint64

	resetPending bool
	nmiPending   bool
	nmiLine      bool // last-seen NMI pin state, for edge detection

	// skipInterrupt mirrors a real NMOS quirk: a branch that is taken
	// consumes the cycle that would otherwise have sampled the
	// interrupt lines, so the pending interrupt is serviced one
	// instruction later than it otherwise would be.
	skipInterrupt     bool
	prevSkipInterrupt bool
}

// New returns a Chip wired to tick. The chip starts in the same state
// real silicon is in immediately after power-on with RESET held low:
// A, X and Y are zero, S is 0xFD, PC is zero and P has only the
// permanently-set unused bit. The first call to Exec runs the 8-cycle
// reset sequence before executing any instruction.
func New(tick bus.TickFunc) *Chip {
	c := &Chip{
		S:            0xFD,
		P:            FlagUnused,
		tick:         tick,
		resetPending: true,
	}
	return c
}

// Reset arms the 8-cycle reset sequence to run on the next Exec call,
// mirroring the effect of asserting RES on real hardware.
func (c *Chip) Reset() {
	c.resetPending = true
}

// Exec runs whole instructions (and interrupt/reset sequences) until
// at least budget cycles have been consumed, then returns the number
// of cycles actually consumed. Because instructions always run to
// completion, the return value can exceed budget by as much as one
// instruction's worth of cycles; passing a budget of 0 runs exactly
// one step.
func (c *Chip) Exec(budget int) int {
	start := c.cycles
	consumed := func() int { return int(c.cycles - start) }

	c.step()
	if budget <= 0 {
		return consumed()
	}
	for consumed() < budget {
		c.step()
	}
	return consumed()
}

// step executes exactly one instruction, or one interrupt/reset entry
// sequence, whichever is due.
func (c *Chip) step() {
	if c.resetPending {
		c.resetPending = false
		c.runReset()
		return
	}

	if vector, pushB, ok := c.pollInterrupt(); ok {
		c.hijackFetch()
		c.enterInterrupt(vector, pushB)
		return
	}

	prevSkip := c.skipInterrupt
	c.skipInterrupt = false
	c.prevSkipInterrupt = prevSkip

	opcode := c.fetchOpcode()
	opcodeTable[opcode](c)
}

// pollInterrupt implements the documented polling convention: once per
// instruction boundary, reset beats NMI beats IRQ, and an IRQ is only
// taken if the I flag is clear and the chip isn't still within the
// one-instruction grace period after a taken branch.
func (c *Chip) pollInterrupt() (vector uint16, pushB bool, ok bool) {
	if c.nmiPending {
		c.nmiPending = false
		return vectorNMI, false, true
	}
	if c.skipInterrupt {
		return 0, false, false
	}
	if c.pins.IRQ() && !c.flag(FlagInterrupt) {
		return vectorIRQ, false, true
	}
	return 0, false, false
}

// runReset performs the eight bus cycles entering reset spends: three
// dummy program-counter-area reads, three dummy stack reads (reset
// never actually writes to the stack, and S already carries the value
// real hardware only reaches after those three suppressed pushes, so
// the reads target the same address all three times rather than
// descending), and finally fetching the reset vector and loading it
// into PC.
func (c *Chip) runReset() {
	c.busRead(c.PC)
	c.busRead(c.PC)
	c.busRead(c.PC)
	for i := 0; i < 3; i++ {
		c.busRead(0x0100 + uint16(c.S))
	}
	c.setFlag(FlagInterrupt, true)
	lo := c.busRead(vectorReset)
	hi := c.busRead(vectorReset + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// enterInterrupt runs the six remaining cycles of the seven-cycle
// interrupt entry sequence shared by hardware IRQ/NMI and software
// BRK (the sequence's first cycle, the SYNC-asserted opcode-fetch-or-
// hijack, already happened before this is called: fetchOpcode for
// software BRK, hijackFetch for a hardware interrupt): spend the
// second cycle, push PC, push P (with the Break flag set only for
// software BRK), set the I flag, and load PC from vector.
func (c *Chip) enterInterrupt(vector uint16, pushB bool) {
	if pushB {
		// BRK fetches and discards a signature byte before it pushes.
		c.fetchByte()
	} else {
		// Hardware interrupts still spend the cycle that would have
		// fetched the next instruction byte, but without advancing PC.
		c.busRead(c.PC)
	}
	c.pushStack(uint8(c.PC >> 8))
	c.pushStack(uint8(c.PC))
	flags := c.P | FlagUnused
	if pushB {
		flags |= FlagBreak
	} else {
		flags &^= FlagBreak
	}
	c.pushStack(flags)
	c.setFlag(FlagInterrupt, true)
	lo := c.busRead(vector)
	hi := c.busRead(vector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// fetchOpcode fetches the byte at PC with SYNC asserted and advances
// PC, then latches any pending NMI edge and updates live interrupt
// state from the pins the host returned.
func (c *Chip) fetchOpcode() uint8 {
	val := c.busReadSync(c.PC, true)
	c.PC++
	return val
}

// hijackFetch spends a hardware interrupt's first cycle: real silicon
// still asserts SYNC and reads the byte at PC that would otherwise
// have been the next opcode, but the byte is discarded (the BRK
// hijack) and PC is left unchanged, since this isn't
// an actual instruction byte. See spec.md §4.3.
func (c *Chip) hijackFetch() {
	c.busReadSync(c.PC, true)
}

// fetchByte fetches an instruction operand byte at PC (SYNC
// deasserted) and advances PC.
func (c *Chip) fetchByte() uint8 {
	val := c.busReadSync(c.PC, false)
	c.PC++
	return val
}

// busRead performs one bus read cycle at addr. If the host deasserts
// RDY, the same read is reissued on the next tick (the cycle still
// counts) until the host grants RDY, modeling the core's wait-state
// behavior; only read cycles can be stalled this way.
func (c *Chip) busRead(addr uint16) uint8 {
	return c.busReadSync(addr, false)
}

func (c *Chip) busReadSync(addr uint16, sync bool) uint8 {
	for {
		req := bus.Pins(0).WithAddr(addr).WithRW(true)
		if sync {
			req = req.WithSync()
		}
		resp := c.tick(req)
		c.cycles++
		c.latchInterrupts(resp)
		if resp.RDY() {
			c.pins = resp
			return resp.Data()
		}
		c.pins = resp
	}
}

// busWrite performs one bus write cycle at addr. Writes are never
// stalled by RDY.
func (c *Chip) busWrite(addr uint16, val uint8) {
	req := bus.Pins(0).WithAddr(addr).WithData(val).WithRW(false)
	resp := c.tick(req)
	c.cycles++
	c.latchInterrupts(resp)
	c.pins = resp
}

// latchInterrupts updates edge/level interrupt state from the pins the
// host returned on the cycle just completed. NMI is edge-triggered: it
// latches only on a rising edge of the NMI line. IRQ is level-
// triggered and re-read live from pins at poll time, so no latching is
// needed for it here. RES is level-triggered too; holding it keeps
// resetPending true until the host releases it before the next poll.
func (c *Chip) latchInterrupts(p bus.Pins) {
	if p.NMI() && !c.nmiLine {
		c.nmiPending = true
	}
	c.nmiLine = p.NMI()
	if p.RES() {
		c.resetPending = true
	}
}

func (c *Chip) pushStack(val uint8) {
	c.busWrite(0x0100+uint16(c.S), val)
	c.S--
}

func (c *Chip) popStack() uint8 {
	c.S++
	return c.busRead(0x0100 + uint16(c.S))
}

// impliedCycle spends the single idle bus cycle a one-byte, non-stack,
// non-memory instruction (register transfers, flag ops, accumulator
// shifts, NOP) takes beyond its opcode fetch.
func (c *Chip) impliedCycle() {
	c.busRead(c.PC)
}
