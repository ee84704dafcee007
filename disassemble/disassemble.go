// Package disassemble turns bytes in memory back into 6502 assembly text,
// reusing the cpu package's own opcode table so the mnemonics, modes and
// lengths here can never drift from what Core actually executes.
package disassemble

import (
	"fmt"

	"github.com/dholbach/m6502/cpu"
)

// Memory is the minimal read access disassembly needs; *memory.Store
// satisfies it, as does any test double with a Read method.
type Memory interface {
	Read(addr uint16) uint8
}

// Line is one decoded instruction: its address, raw bytes, and text form.
type Line struct {
	Addr  uint16
	Raw   []uint8
	Text  string
	Bytes int
}

// Step decodes the instruction at addr and returns its text form and
// length in bytes. Undocumented opcodes other than $02 print as a raw
// byte directive; $02 prints as HLT, matching Core's special case for it.
func Step(mem Memory, addr uint16) (text string, length int) {
	op := mem.Read(addr)
	if op == 0x02 {
		return "HLT", 1
	}

	info, ok := cpu.Lookup(op)
	if !ok {
		return fmt.Sprintf(".byte $%02X", op), 1
	}

	operand := formatOperand(mem, addr+1, info.Mode)
	if operand == "" {
		return info.Mnemonic, info.Bytes
	}
	return info.Mnemonic + " " + operand, info.Bytes
}

// Range decodes every instruction from start up to (not including) end,
// skipping over the bytes each instruction consumes.
func Range(mem Memory, start, end uint16) []Line {
	var lines []Line
	addr := start
	for addr < end {
		text, n := Step(mem, addr)
		raw := make([]uint8, n)
		for i := 0; i < n; i++ {
			raw[i] = mem.Read(addr + uint16(i))
		}
		lines = append(lines, Line{Addr: addr, Raw: raw, Text: text, Bytes: n})
		addr += uint16(n)
	}
	return lines
}

// String renders a Line the way a listing file would: address, raw bytes,
// then the decoded mnemonic.
func (l Line) String() string {
	hex := ""
	for _, b := range l.Raw {
		hex += fmt.Sprintf("%02X ", b)
	}
	return fmt.Sprintf("%04X: %-9s%s", l.Addr, hex, l.Text)
}

func formatOperand(mem Memory, addr uint16, m cpu.Mode) string {
	switch m {
	case cpu.ModeImplied:
		return ""
	case cpu.ModeAccumulator:
		return "A"
	case cpu.ModeImmediate:
		return fmt.Sprintf("#$%02X", mem.Read(addr))
	case cpu.ModeZeroPage:
		return fmt.Sprintf("$%02X", mem.Read(addr))
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("$%02X,X", mem.Read(addr))
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("$%02X,Y", mem.Read(addr))
	case cpu.ModeAbsolute:
		return fmt.Sprintf("$%04X", readWord(mem, addr))
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("$%04X,X", readWord(mem, addr))
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("$%04X,Y", readWord(mem, addr))
	case cpu.ModeIndirect:
		return fmt.Sprintf("($%04X)", readWord(mem, addr))
	case cpu.ModeIndirectX:
		return fmt.Sprintf("($%02X,X)", mem.Read(addr))
	case cpu.ModeIndirectY:
		return fmt.Sprintf("($%02X),Y", mem.Read(addr))
	case cpu.ModeRelative:
		offset := int8(mem.Read(addr))
		target := addr + 1 + uint16(int16(offset))
		return fmt.Sprintf("$%04X", target)
	}
	return ""
}

func readWord(mem Memory, addr uint16) uint16 {
	lo := mem.Read(addr)
	hi := mem.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
