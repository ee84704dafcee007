package cpu

// Mode identifies an addressing mode. It is exported so the disassemble
// package can format operands without duplicating this table. Implied and
// Accumulator instructions never call the resolvers below; they touch
// registers directly.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect // JMP only.
	ModeIndirectX
	ModeIndirectY
	ModeRelative // Branches only; handled inline, not via resolve.
)

// samePage reports whether a and b share a high byte.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// resolve computes the effective address for mode m, advancing PC past the
// operand bytes it consumes, and reports whether computing that address
// crossed a page boundary (meaningful only for the indexed modes that carry
// a page-cross read penalty).
func (c *Core) resolve(m Mode) (addr uint16, crossed bool) {
	switch m {
	case ModeImmediate:
		addr = c.PC
		c.PC++
	case ModeZeroPage:
		addr = uint16(c.Mem.Read(c.PC))
		c.PC++
	case ModeZeroPageX:
		op := c.Mem.Read(c.PC)
		c.PC++
		addr = uint16(op + c.X)
	case ModeZeroPageY:
		op := c.Mem.Read(c.PC)
		c.PC++
		addr = uint16(op + c.Y)
	case ModeAbsolute:
		addr = c.Mem.ReadWord(c.PC)
		c.PC += 2
	case ModeAbsoluteX:
		base := c.Mem.ReadWord(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		crossed = !samePage(base, addr)
	case ModeAbsoluteY:
		base := c.Mem.ReadWord(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		crossed = !samePage(base, addr)
	case ModeIndirectX:
		zp := c.Mem.Read(c.PC) + c.X
		c.PC++
		lo := c.Mem.Read(uint16(zp))
		hi := c.Mem.Read(uint16(zp + 1))
		addr = uint16(hi)<<8 | uint16(lo)
	case ModeIndirectY:
		zp := c.Mem.Read(c.PC)
		c.PC++
		lo := c.Mem.Read(uint16(zp))
		hi := c.Mem.Read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		crossed = !samePage(base, addr)
	}
	return addr, crossed
}

// resolveJMPIndirect computes the target of JMP ($addr), reproducing the
// NMOS bug where a pointer whose low byte is $FF reads its high byte from
// the start of the same page instead of crossing into the next one.
func (c *Core) resolveJMPIndirect() uint16 {
	ptr := c.Mem.ReadWord(c.PC)
	c.PC += 2
	lo := c.Mem.Read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := c.Mem.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}
