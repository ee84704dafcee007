package cpu

// opEntry describes one opcode byte: its mnemonic (for disassembly), the
// addressing mode resolve needs, its encoded length, its base cycle count,
// and the handler that carries out its effect. A zero-value entry (exec ==
// nil) is an undocumented opcode and falls back to a 2-cycle NOP in Step.
type opEntry struct {
	mnemonic string
	m        Mode
	bytes    int
	cycles   int
	exec     execFunc
}

// OpInfo is the externally visible shape of one opcode table entry, for
// callers (the disassemble package) that need to format an instruction
// without reaching into cpu internals.
type OpInfo struct {
	Mnemonic string
	Mode     Mode
	Bytes    int
	Cycles   int
}

// Lookup returns the decoded shape of opcode byte op. ok is false for any
// of the 105 undocumented byte values (treated uniformly as a one-byte,
// two-cycle NOP by Step, except $02 which halts and never reaches here).
func Lookup(op uint8) (info OpInfo, ok bool) {
	e := &opcodeTable[op]
	if e.exec == nil {
		return OpInfo{}, false
	}
	return OpInfo{Mnemonic: e.mnemonic, Mode: e.m, Bytes: e.bytes, Cycles: e.cycles}, true
}

// opcodeTable is the 256-entry dispatch table. 151 entries are populated,
// one per legal encoding of the 56 official 6502 mnemonics; every other
// slot is left zero-valued. $02 never reaches this table — Step special
// cases it as the halt opcode before the lookup.
var opcodeTable = [256]opEntry{
	// ADC
	0x69: {"ADC", ModeImmediate, 2, 2, loadOp((*Core).iADC)},
	0x65: {"ADC", ModeZeroPage, 2, 3, loadOp((*Core).iADC)},
	0x75: {"ADC", ModeZeroPageX, 2, 4, loadOp((*Core).iADC)},
	0x6D: {"ADC", ModeAbsolute, 3, 4, loadOp((*Core).iADC)},
	0x7D: {"ADC", ModeAbsoluteX, 3, 4, loadOp((*Core).iADC)},
	0x79: {"ADC", ModeAbsoluteY, 3, 4, loadOp((*Core).iADC)},
	0x61: {"ADC", ModeIndirectX, 2, 6, loadOp((*Core).iADC)},
	0x71: {"ADC", ModeIndirectY, 2, 5, loadOp((*Core).iADC)},

	// AND
	0x29: {"AND", ModeImmediate, 2, 2, loadOp((*Core).iAND)},
	0x25: {"AND", ModeZeroPage, 2, 3, loadOp((*Core).iAND)},
	0x35: {"AND", ModeZeroPageX, 2, 4, loadOp((*Core).iAND)},
	0x2D: {"AND", ModeAbsolute, 3, 4, loadOp((*Core).iAND)},
	0x3D: {"AND", ModeAbsoluteX, 3, 4, loadOp((*Core).iAND)},
	0x39: {"AND", ModeAbsoluteY, 3, 4, loadOp((*Core).iAND)},
	0x21: {"AND", ModeIndirectX, 2, 6, loadOp((*Core).iAND)},
	0x31: {"AND", ModeIndirectY, 2, 5, loadOp((*Core).iAND)},

	// ASL
	0x0A: {"ASL", ModeAccumulator, 1, 2, accumulatorOp((*Core).iASL)},
	0x06: {"ASL", ModeZeroPage, 2, 5, rmwOp((*Core).iASL)},
	0x16: {"ASL", ModeZeroPageX, 2, 6, rmwOp((*Core).iASL)},
	0x0E: {"ASL", ModeAbsolute, 3, 6, rmwOp((*Core).iASL)},
	0x1E: {"ASL", ModeAbsoluteX, 3, 7, rmwOp((*Core).iASL)},

	// Branches
	0x90: {"BCC", ModeRelative, 2, 2, branchOp(func(c *Core) bool { return c.P&FlagCarry == 0 })},
	0xB0: {"BCS", ModeRelative, 2, 2, branchOp(func(c *Core) bool { return c.P&FlagCarry != 0 })},
	0xF0: {"BEQ", ModeRelative, 2, 2, branchOp(func(c *Core) bool { return c.P&FlagZero != 0 })},
	0x30: {"BMI", ModeRelative, 2, 2, branchOp(func(c *Core) bool { return c.P&FlagNegative != 0 })},
	0xD0: {"BNE", ModeRelative, 2, 2, branchOp(func(c *Core) bool { return c.P&FlagZero == 0 })},
	0x10: {"BPL", ModeRelative, 2, 2, branchOp(func(c *Core) bool { return c.P&FlagNegative == 0 })},
	0x50: {"BVC", ModeRelative, 2, 2, branchOp(func(c *Core) bool { return c.P&FlagOverflow == 0 })},
	0x70: {"BVS", ModeRelative, 2, 2, branchOp(func(c *Core) bool { return c.P&FlagOverflow != 0 })},

	// BIT
	0x24: {"BIT", ModeZeroPage, 2, 3, loadOp((*Core).iBIT)},
	0x2C: {"BIT", ModeAbsolute, 3, 4, loadOp((*Core).iBIT)},

	// BRK
	0x00: {"BRK", ModeImplied, 1, 7, execBRK},

	// Flag clear/set
	0x18: {"CLC", ModeImplied, 1, 2, impliedOp(iCLC)},
	0xD8: {"CLD", ModeImplied, 1, 2, impliedOp(iCLD)},
	0x58: {"CLI", ModeImplied, 1, 2, impliedOp(iCLI)},
	0xB8: {"CLV", ModeImplied, 1, 2, impliedOp(iCLV)},
	0x38: {"SEC", ModeImplied, 1, 2, impliedOp(iSEC)},
	0xF8: {"SED", ModeImplied, 1, 2, impliedOp(iSED)},
	0x78: {"SEI", ModeImplied, 1, 2, impliedOp(iSEI)},

	// CMP
	0xC9: {"CMP", ModeImmediate, 2, 2, loadOp((*Core).iCMP)},
	0xC5: {"CMP", ModeZeroPage, 2, 3, loadOp((*Core).iCMP)},
	0xD5: {"CMP", ModeZeroPageX, 2, 4, loadOp((*Core).iCMP)},
	0xCD: {"CMP", ModeAbsolute, 3, 4, loadOp((*Core).iCMP)},
	0xDD: {"CMP", ModeAbsoluteX, 3, 4, loadOp((*Core).iCMP)},
	0xD9: {"CMP", ModeAbsoluteY, 3, 4, loadOp((*Core).iCMP)},
	0xC1: {"CMP", ModeIndirectX, 2, 6, loadOp((*Core).iCMP)},
	0xD1: {"CMP", ModeIndirectY, 2, 5, loadOp((*Core).iCMP)},

	// CPX / CPY
	0xE0: {"CPX", ModeImmediate, 2, 2, loadOp((*Core).iCPX)},
	0xE4: {"CPX", ModeZeroPage, 2, 3, loadOp((*Core).iCPX)},
	0xEC: {"CPX", ModeAbsolute, 3, 4, loadOp((*Core).iCPX)},
	0xC0: {"CPY", ModeImmediate, 2, 2, loadOp((*Core).iCPY)},
	0xC4: {"CPY", ModeZeroPage, 2, 3, loadOp((*Core).iCPY)},
	0xCC: {"CPY", ModeAbsolute, 3, 4, loadOp((*Core).iCPY)},

	// DEC / DEX / DEY
	0xC6: {"DEC", ModeZeroPage, 2, 5, rmwOp((*Core).iDEC)},
	0xD6: {"DEC", ModeZeroPageX, 2, 6, rmwOp((*Core).iDEC)},
	0xCE: {"DEC", ModeAbsolute, 3, 6, rmwOp((*Core).iDEC)},
	0xDE: {"DEC", ModeAbsoluteX, 3, 7, rmwOp((*Core).iDEC)},
	0xCA: {"DEX", ModeImplied, 1, 2, impliedOp(iDEX)},
	0x88: {"DEY", ModeImplied, 1, 2, impliedOp(iDEY)},

	// EOR
	0x49: {"EOR", ModeImmediate, 2, 2, loadOp((*Core).iEOR)},
	0x45: {"EOR", ModeZeroPage, 2, 3, loadOp((*Core).iEOR)},
	0x55: {"EOR", ModeZeroPageX, 2, 4, loadOp((*Core).iEOR)},
	0x4D: {"EOR", ModeAbsolute, 3, 4, loadOp((*Core).iEOR)},
	0x5D: {"EOR", ModeAbsoluteX, 3, 4, loadOp((*Core).iEOR)},
	0x59: {"EOR", ModeAbsoluteY, 3, 4, loadOp((*Core).iEOR)},
	0x41: {"EOR", ModeIndirectX, 2, 6, loadOp((*Core).iEOR)},
	0x51: {"EOR", ModeIndirectY, 2, 5, loadOp((*Core).iEOR)},

	// INC / INX / INY
	0xE6: {"INC", ModeZeroPage, 2, 5, rmwOp((*Core).iINC)},
	0xF6: {"INC", ModeZeroPageX, 2, 6, rmwOp((*Core).iINC)},
	0xEE: {"INC", ModeAbsolute, 3, 6, rmwOp((*Core).iINC)},
	0xFE: {"INC", ModeAbsoluteX, 3, 7, rmwOp((*Core).iINC)},
	0xE8: {"INX", ModeImplied, 1, 2, impliedOp(iINX)},
	0xC8: {"INY", ModeImplied, 1, 2, impliedOp(iINY)},

	// JMP / JSR
	0x4C: {"JMP", ModeAbsolute, 3, 3, execJMPAbsolute},
	0x6C: {"JMP", ModeIndirect, 3, 5, execJMPIndirect},
	0x20: {"JSR", ModeAbsolute, 3, 6, execJSR},

	// LDA
	0xA9: {"LDA", ModeImmediate, 2, 2, loadOp((*Core).iLDA)},
	0xA5: {"LDA", ModeZeroPage, 2, 3, loadOp((*Core).iLDA)},
	0xB5: {"LDA", ModeZeroPageX, 2, 4, loadOp((*Core).iLDA)},
	0xAD: {"LDA", ModeAbsolute, 3, 4, loadOp((*Core).iLDA)},
	0xBD: {"LDA", ModeAbsoluteX, 3, 4, loadOp((*Core).iLDA)},
	0xB9: {"LDA", ModeAbsoluteY, 3, 4, loadOp((*Core).iLDA)},
	0xA1: {"LDA", ModeIndirectX, 2, 6, loadOp((*Core).iLDA)},
	0xB1: {"LDA", ModeIndirectY, 2, 5, loadOp((*Core).iLDA)},

	// LDX
	0xA2: {"LDX", ModeImmediate, 2, 2, loadOp((*Core).iLDX)},
	0xA6: {"LDX", ModeZeroPage, 2, 3, loadOp((*Core).iLDX)},
	0xB6: {"LDX", ModeZeroPageY, 2, 4, loadOp((*Core).iLDX)},
	0xAE: {"LDX", ModeAbsolute, 3, 4, loadOp((*Core).iLDX)},
	0xBE: {"LDX", ModeAbsoluteY, 3, 4, loadOp((*Core).iLDX)},

	// LDY
	0xA0: {"LDY", ModeImmediate, 2, 2, loadOp((*Core).iLDY)},
	0xA4: {"LDY", ModeZeroPage, 2, 3, loadOp((*Core).iLDY)},
	0xB4: {"LDY", ModeZeroPageX, 2, 4, loadOp((*Core).iLDY)},
	0xAC: {"LDY", ModeAbsolute, 3, 4, loadOp((*Core).iLDY)},
	0xBC: {"LDY", ModeAbsoluteX, 3, 4, loadOp((*Core).iLDY)},

	// LSR
	0x4A: {"LSR", ModeAccumulator, 1, 2, accumulatorOp((*Core).iLSR)},
	0x46: {"LSR", ModeZeroPage, 2, 5, rmwOp((*Core).iLSR)},
	0x56: {"LSR", ModeZeroPageX, 2, 6, rmwOp((*Core).iLSR)},
	0x4E: {"LSR", ModeAbsolute, 3, 6, rmwOp((*Core).iLSR)},
	0x5E: {"LSR", ModeAbsoluteX, 3, 7, rmwOp((*Core).iLSR)},

	// NOP
	0xEA: {"NOP", ModeImplied, 1, 2, impliedOp(iNOP)},

	// ORA
	0x09: {"ORA", ModeImmediate, 2, 2, loadOp((*Core).iORA)},
	0x05: {"ORA", ModeZeroPage, 2, 3, loadOp((*Core).iORA)},
	0x15: {"ORA", ModeZeroPageX, 2, 4, loadOp((*Core).iORA)},
	0x0D: {"ORA", ModeAbsolute, 3, 4, loadOp((*Core).iORA)},
	0x1D: {"ORA", ModeAbsoluteX, 3, 4, loadOp((*Core).iORA)},
	0x19: {"ORA", ModeAbsoluteY, 3, 4, loadOp((*Core).iORA)},
	0x01: {"ORA", ModeIndirectX, 2, 6, loadOp((*Core).iORA)},
	0x11: {"ORA", ModeIndirectY, 2, 5, loadOp((*Core).iORA)},

	// Stack ops
	0x48: {"PHA", ModeImplied, 1, 3, impliedOp(iPHA)},
	0x08: {"PHP", ModeImplied, 1, 3, impliedOp(iPHP)},
	0x68: {"PLA", ModeImplied, 1, 4, impliedOp(iPLA)},
	0x28: {"PLP", ModeImplied, 1, 4, impliedOp(iPLP)},

	// ROL / ROR
	0x2A: {"ROL", ModeAccumulator, 1, 2, accumulatorOp((*Core).iROL)},
	0x26: {"ROL", ModeZeroPage, 2, 5, rmwOp((*Core).iROL)},
	0x36: {"ROL", ModeZeroPageX, 2, 6, rmwOp((*Core).iROL)},
	0x2E: {"ROL", ModeAbsolute, 3, 6, rmwOp((*Core).iROL)},
	0x3E: {"ROL", ModeAbsoluteX, 3, 7, rmwOp((*Core).iROL)},
	0x6A: {"ROR", ModeAccumulator, 1, 2, accumulatorOp((*Core).iROR)},
	0x66: {"ROR", ModeZeroPage, 2, 5, rmwOp((*Core).iROR)},
	0x76: {"ROR", ModeZeroPageX, 2, 6, rmwOp((*Core).iROR)},
	0x6E: {"ROR", ModeAbsolute, 3, 6, rmwOp((*Core).iROR)},
	0x7E: {"ROR", ModeAbsoluteX, 3, 7, rmwOp((*Core).iROR)},

	// RTI / RTS
	0x40: {"RTI", ModeImplied, 1, 6, execRTI},
	0x60: {"RTS", ModeImplied, 1, 6, execRTS},

	// SBC
	0xE9: {"SBC", ModeImmediate, 2, 2, loadOp((*Core).iSBC)},
	0xE5: {"SBC", ModeZeroPage, 2, 3, loadOp((*Core).iSBC)},
	0xF5: {"SBC", ModeZeroPageX, 2, 4, loadOp((*Core).iSBC)},
	0xED: {"SBC", ModeAbsolute, 3, 4, loadOp((*Core).iSBC)},
	0xFD: {"SBC", ModeAbsoluteX, 3, 4, loadOp((*Core).iSBC)},
	0xF9: {"SBC", ModeAbsoluteY, 3, 4, loadOp((*Core).iSBC)},
	0xE1: {"SBC", ModeIndirectX, 2, 6, loadOp((*Core).iSBC)},
	0xF1: {"SBC", ModeIndirectY, 2, 5, loadOp((*Core).iSBC)},

	// STA
	0x85: {"STA", ModeZeroPage, 2, 3, storeOp(func(c *Core) uint8 { return c.A })},
	0x95: {"STA", ModeZeroPageX, 2, 4, storeOp(func(c *Core) uint8 { return c.A })},
	0x8D: {"STA", ModeAbsolute, 3, 4, storeOp(func(c *Core) uint8 { return c.A })},
	0x9D: {"STA", ModeAbsoluteX, 3, 5, storeOp(func(c *Core) uint8 { return c.A })},
	0x99: {"STA", ModeAbsoluteY, 3, 5, storeOp(func(c *Core) uint8 { return c.A })},
	0x81: {"STA", ModeIndirectX, 2, 6, storeOp(func(c *Core) uint8 { return c.A })},
	0x91: {"STA", ModeIndirectY, 2, 6, storeOp(func(c *Core) uint8 { return c.A })},

	// STX / STY
	0x86: {"STX", ModeZeroPage, 2, 3, storeOp(func(c *Core) uint8 { return c.X })},
	0x96: {"STX", ModeZeroPageY, 2, 4, storeOp(func(c *Core) uint8 { return c.X })},
	0x8E: {"STX", ModeAbsolute, 3, 4, storeOp(func(c *Core) uint8 { return c.X })},
	0x84: {"STY", ModeZeroPage, 2, 3, storeOp(func(c *Core) uint8 { return c.Y })},
	0x94: {"STY", ModeZeroPageX, 2, 4, storeOp(func(c *Core) uint8 { return c.Y })},
	0x8C: {"STY", ModeAbsolute, 3, 4, storeOp(func(c *Core) uint8 { return c.Y })},

	// Register transfers
	0xAA: {"TAX", ModeImplied, 1, 2, impliedOp(iTAX)},
	0xA8: {"TAY", ModeImplied, 1, 2, impliedOp(iTAY)},
	0xBA: {"TSX", ModeImplied, 1, 2, impliedOp(iTSX)},
	0x8A: {"TXA", ModeImplied, 1, 2, impliedOp(iTXA)},
	0x9A: {"TXS", ModeImplied, 1, 2, impliedOp(iTXS)},
	0x98: {"TYA", ModeImplied, 1, 2, impliedOp(iTYA)},
}
