// Package cpu implements the core of an NMOS 6502: state store, addressing
// resolvers, ALU/flag primitives, the 151-entry opcode dispatch table, and
// the RESET/NMI/IRQ/BRK interrupt sequencer. It reproduces externally
// observable NMOS behavior (registers, memory effects, cycle counts, and
// documented quirks like the JMP indirect page-wrap bug) for all 56 official
// instructions. Undocumented opcodes are treated as a 2-cycle NOP, except
// $02 which halts the processor the way early 6502 testers used it.
package cpu

import (
	"github.com/dholbach/m6502/irq"
	"github.com/dholbach/m6502/memory"
)

// Status register bit layout, high to low: N V U B D I Z C.
const (
	FlagCarry     = uint8(0x01)
	FlagZero      = uint8(0x02)
	FlagInterrupt = uint8(0x04)
	FlagDecimal   = uint8(0x08)
	FlagBreak     = uint8(0x10) // Only ever present in a pushed copy of P.
	FlagUnused    = uint8(0x20) // Always reads as 1.
	FlagOverflow  = uint8(0x40)
	FlagNegative  = uint8(0x80)
)

// Vector addresses, each a little-endian 16-bit pointer.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// defaultLoadAddr is where LoadProgram places bytes absent an explicit
// address, matching the conventional entry point of the example programs
// this core is exercised against.
const defaultLoadAddr = uint16(0x0600)

// haltOpcode is the one undocumented opcode this core implements: it stops
// the processor instead of behaving as a NOP.
const haltOpcode = uint8(0x02)

// Core is a single NMOS 6502 instance: registers, a private 64KiB address
// space, and interrupt-pending state. A Core is owned by exactly one
// goroutine; nothing here is safe for concurrent use without external
// serialization, and Core does no locking of its own.
type Core struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16

	Mem memory.Store

	// Cycles is the running total of cycles consumed since construction. It
	// wraps modulo 2^32, matching a free-running hardware counter.
	Cycles uint32

	halted bool

	irqPending bool
	nmiPending bool

	// IRQLine and NMILine, if set, are sampled once at the top of Step in
	// addition to the directly-triggered pending flags above. This lets an
	// embedder wire a peer chip's interrupt output straight to the core
	// without polling it manually on every call.
	IRQLine irq.Sender
	NMILine irq.Sender
}

// New returns a Core in its documented power-on state: zeroed memory and
// index registers, SP=$FD, P=U|I ($24), PC=0, cycles=0, not halted, no
// interrupts pending.
func New() *Core {
	c := &Core{}
	c.hardResetRegisters()
	return c
}

// hardResetRegisters applies the fixed power-on register values. Shared by
// New and HardReset.
func (c *Core) hardResetRegisters() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagUnused | FlagInterrupt
	c.PC = 0
	c.Cycles = 0
	c.halted = false
	c.irqPending = false
	c.nmiPending = false
}

// LoadProgram copies bytes into memory starting at addr, wrapping modulo
// 65536 if the source runs past the end of the address space. addr defaults
// to $0600 when omitted, matching the example programs this core targets.
func (c *Core) LoadProgram(bytes []uint8, addr ...uint16) {
	a := defaultLoadAddr
	if len(addr) > 0 {
		a = addr[0]
	}
	c.Mem.Load(bytes, a)
}

// SetNMIVector writes a 16-bit little-endian address to the NMI vector.
func (c *Core) SetNMIVector(addr uint16) { c.Mem.WriteWord(NMIVector, addr) }

// SetResetVector writes a 16-bit little-endian address to the RESET vector.
func (c *Core) SetResetVector(addr uint16) { c.Mem.WriteWord(ResetVector, addr) }

// SetIRQVector writes a 16-bit little-endian address to the IRQ/BRK vector.
func (c *Core) SetIRQVector(addr uint16) { c.Mem.WriteWord(IRQVector, addr) }

// Reset performs a soft reset: A, X, Y go to zero, SP to $FD, P to U|I,
// halted and pending-interrupt state clear, and PC loads from the RESET
// vector. Memory (including the vectors themselves) is untouched.
func (c *Core) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagUnused | FlagInterrupt
	c.halted = false
	c.irqPending = false
	c.nmiPending = false
	c.PC = c.Mem.ReadWord(ResetVector)
}

// HardReset zeroes the entire state, memory included, then performs the
// same register setup as Reset (PC will read $0000 from the now-zeroed
// RESET vector since nothing has set it yet).
func (c *Core) HardReset() {
	c.Mem.Clear()
	c.hardResetRegisters()
	c.PC = c.Mem.ReadWord(ResetVector)
}

// ReadMemory returns the byte at addr.
func (c *Core) ReadMemory(addr uint16) uint8 { return c.Mem.Read(addr) }

// WriteMemory stores val at addr.
func (c *Core) WriteMemory(addr uint16, val uint8) { c.Mem.Write(addr, val) }

// TriggerIRQ raises the maskable interrupt line. It is sampled at the top of
// the next Step.
func (c *Core) TriggerIRQ() { c.irqPending = true }

// TriggerNMI raises the non-maskable interrupt line (edge-triggered). It is
// sampled at the top of the next Step.
func (c *Core) TriggerNMI() { c.nmiPending = true }

// IsHalted reports whether HLT ($02) has stopped the processor.
func (c *Core) IsHalted() bool { return c.halted }

// push stores val at $0100+SP then decrements SP, wrapping within page 1.
func (c *Core) push(val uint8) {
	c.Mem.Write(0x0100+uint16(c.SP), val)
	c.SP--
}

// pull increments SP, wrapping within page 1, then returns the byte there.
func (c *Core) pull() uint8 {
	c.SP++
	return c.Mem.Read(0x0100 + uint16(c.SP))
}

// pushWord pushes a 16-bit value high byte first, as the 6502 always does
// for PC on JSR/interrupts.
func (c *Core) pushWord(val uint16) {
	c.push(uint8(val >> 8))
	c.push(uint8(val & 0xFF))
}

// pullWord pulls a 16-bit value low byte first.
func (c *Core) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction (or one interrupt dispatch, or
// nothing if halted) and returns the number of cycles it consumed.
func (c *Core) Step() int {
	if c.halted {
		return 0
	}

	if c.NMILine != nil && c.NMILine.Raised() {
		c.nmiPending = true
	}
	if c.IRQLine != nil && c.IRQLine.Raised() {
		c.irqPending = true
	}

	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(NMIVector, false)
		c.Cycles += 7
		return 7
	}
	if c.irqPending {
		c.irqPending = false
		if c.P&FlagInterrupt != 0 {
			// Masked: the pending flag is still consumed (discard-on-mask,
			// per the documented source behavior), nothing else happens.
		} else {
			c.serviceInterrupt(IRQVector, false)
			c.Cycles += 7
			return 7
		}
	}

	op := c.Mem.Read(c.PC)
	c.PC++

	if op == haltOpcode {
		c.halted = true
		return 0
	}

	entry := &opcodeTable[op]
	var n int
	if entry.exec == nil {
		// Undocumented opcode: treated uniformly as an implied 2-cycle NOP.
		n = 2
	} else {
		n = entry.cycles + entry.exec(c, entry)
	}
	c.Cycles += uint32(n)
	return n
}

// Run invokes Step until the cycles consumed during this call reach or
// exceed targetCycles, or the core halts. It returns the cycles actually
// consumed.
func (c *Core) Run(targetCycles int) int {
	consumed := 0
	for consumed < targetCycles {
		if c.halted {
			break
		}
		consumed += c.Step()
	}
	return consumed
}

// serviceInterrupt implements the shared IRQ/NMI/BRK protocol: push PCH,
// PCL, then P (with the B bit set only for BRK), set I, then load PC from
// vector. pc has already been adjusted by the caller (BRK skips its phantom
// operand byte before calling this; IRQ/NMI push the PC unmodified).
func (c *Core) serviceInterrupt(vector uint16, brk bool) {
	c.pushWord(c.PC)
	pushed := c.P | FlagUnused
	if brk {
		pushed |= FlagBreak
	} else {
		pushed &^= FlagBreak
	}
	c.push(pushed)
	c.P |= FlagInterrupt
	c.PC = c.Mem.ReadWord(vector)
}
