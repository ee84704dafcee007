package cpu

// execFunc runs one opcode's instruction body (having already fetched the
// opcode byte and advanced PC past it) and returns any cycles beyond the
// opcode's base count: +1 for a page-crossing load, +1/+2 for a taken
// branch. Most instructions return 0.
type execFunc func(c *Core, e *opEntry) int

// loadOp builds the exec for instructions that read an operand through an
// addressing mode and feed it to op: loads, compares, and the binary/ALU
// mnemonics. These are the only class that earns the +1 page-cross cycle.
func loadOp(op func(c *Core, v uint8)) execFunc {
	return func(c *Core, e *opEntry) int {
		addr, crossed := c.resolve(e.m)
		op(c, c.Mem.Read(addr))
		if crossed {
			return 1
		}
		return 0
	}
}

// storeOp builds the exec for ST*: never takes a page-cross penalty,
// always the worst-case cycle count baked into the table.
func storeOp(reg func(c *Core) uint8) execFunc {
	return func(c *Core, e *opEntry) int {
		addr, _ := c.resolve(e.m)
		c.Mem.Write(addr, reg(c))
		return 0
	}
}

// rmwOp builds the exec for read-modify-write memory instructions
// (ASL/LSR/ROL/ROR/INC/DEC): always worst-case cycles, no cross penalty.
func rmwOp(op func(c *Core, v uint8) uint8) execFunc {
	return func(c *Core, e *opEntry) int {
		addr, _ := c.resolve(e.m)
		v := op(c, c.Mem.Read(addr))
		c.Mem.Write(addr, v)
		return 0
	}
}

// accumulatorOp builds the exec for the accumulator-mode shift/rotates.
func accumulatorOp(op func(c *Core, v uint8) uint8) execFunc {
	return func(c *Core, e *opEntry) int {
		c.A = op(c, c.A)
		return 0
	}
}

// impliedOp builds the exec for single-byte register/flag/stack
// instructions that touch no memory operand.
func impliedOp(op func(c *Core)) execFunc {
	return func(c *Core, e *opEntry) int {
		op(c)
		return 0
	}
}

// branchOp builds the exec for a conditional branch: 0 extra cycles if not
// taken, +1 if taken, +1 more if the branch crosses a page.
func branchOp(test func(c *Core) bool) execFunc {
	return func(c *Core, e *opEntry) int {
		offset := c.Mem.Read(c.PC)
		c.PC++
		if !test(c) {
			return 0
		}
		from := c.PC
		to := from + uint16(int16(int8(offset)))
		c.PC = to
		if !samePage(from, to) {
			return 2
		}
		return 1
	}
}

// --- ALU/load mnemonics (operand already fetched as v) ---

func (c *Core) iAND(v uint8) { c.A &= v; c.setNZ(c.A) }
func (c *Core) iORA(v uint8) { c.A |= v; c.setNZ(c.A) }
func (c *Core) iEOR(v uint8) { c.A ^= v; c.setNZ(c.A) }
func (c *Core) iADC(v uint8) { c.adc(v) }
func (c *Core) iSBC(v uint8) { c.sbc(v) }
func (c *Core) iLDA(v uint8) { c.A = v; c.setNZ(c.A) }
func (c *Core) iLDX(v uint8) { c.X = v; c.setNZ(c.X) }
func (c *Core) iLDY(v uint8) { c.Y = v; c.setNZ(c.Y) }
func (c *Core) iCMP(v uint8) { c.compare(c.A, v) }
func (c *Core) iCPX(v uint8) { c.compare(c.X, v) }
func (c *Core) iCPY(v uint8) { c.compare(c.Y, v) }
func (c *Core) iBIT(v uint8) { c.bit(v) }

// --- RMW mnemonics ---

func (c *Core) iASL(v uint8) uint8 { return c.asl(v) }
func (c *Core) iLSR(v uint8) uint8 { return c.lsr(v) }
func (c *Core) iROL(v uint8) uint8 { return c.rol(v) }
func (c *Core) iROR(v uint8) uint8 { return c.ror(v) }
func (c *Core) iINC(v uint8) uint8 { v++; c.setNZ(v); return v }
func (c *Core) iDEC(v uint8) uint8 { v--; c.setNZ(v); return v }

// --- Implied-mode register/flag/stack instructions ---

func iTAX(c *Core) { c.X = c.A; c.setNZ(c.X) }
func iTAY(c *Core) { c.Y = c.A; c.setNZ(c.Y) }
func iTXA(c *Core) { c.A = c.X; c.setNZ(c.A) }
func iTYA(c *Core) { c.A = c.Y; c.setNZ(c.A) }
func iTSX(c *Core) { c.X = c.SP; c.setNZ(c.X) }
func iTXS(c *Core) { c.SP = c.X } // No flags per spec.
func iINX(c *Core) { c.X++; c.setNZ(c.X) }
func iINY(c *Core) { c.Y++; c.setNZ(c.Y) }
func iDEX(c *Core) { c.X--; c.setNZ(c.X) }
func iDEY(c *Core) { c.Y--; c.setNZ(c.Y) }
func iCLC(c *Core) { c.P &^= FlagCarry }
func iSEC(c *Core) { c.P |= FlagCarry }
func iCLI(c *Core) { c.P &^= FlagInterrupt }
func iSEI(c *Core) { c.P |= FlagInterrupt }
func iCLD(c *Core) { c.P &^= FlagDecimal }
func iSED(c *Core) { c.P |= FlagDecimal }
func iCLV(c *Core) { c.P &^= FlagOverflow }
func iNOP(c *Core) {}

func iPHA(c *Core) { c.push(c.A) }
func iPLA(c *Core) { c.A = c.pull(); c.setNZ(c.A) }
func iPHP(c *Core) { c.push(c.P | FlagUnused | FlagBreak) }
func iPLP(c *Core) { c.P = (c.pull() | FlagUnused) &^ FlagBreak }

// --- Control flow special cases: none of these fit the generic addressing
// shapes above (JMP has its own modes and the indirect bug, JSR/RTS/RTI
// push and pull in their own specific order, BRK drives the interrupt
// sequencer directly). ---

func execJMPAbsolute(c *Core, e *opEntry) int {
	addr, _ := c.resolve(ModeAbsolute)
	c.PC = addr
	return 0
}

func execJMPIndirect(c *Core, e *opEntry) int {
	c.PC = c.resolveJMPIndirect()
	return 0
}

// execJSR pushes the address of the last byte of the JSR instruction (not
// the address of the next one — RTS compensates by adding 1 on return) then
// jumps to the operand's absolute address.
func execJSR(c *Core, e *opEntry) int {
	target := c.Mem.ReadWord(c.PC)
	retAddr := c.PC + 1
	c.pushWord(retAddr)
	c.PC = target
	return 0
}

func execRTS(c *Core, e *opEntry) int {
	c.PC = c.pullWord() + 1
	return 0
}

func execRTI(c *Core, e *opEntry) int {
	c.P = (c.pull() | FlagUnused) &^ FlagBreak
	c.PC = c.pullWord()
	return 0
}

// execBRK skips BRK's phantom second byte before handing off to the shared
// interrupt sequencer with the B bit set in the pushed P.
func execBRK(c *Core, e *opEntry) int {
	c.PC++
	c.serviceInterrupt(IRQVector, true)
	return 0
}
