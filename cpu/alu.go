package cpu

// setNZ sets the Zero and Negative flags from the given result byte.
func (c *Core) setNZ(v uint8) {
	c.P &^= FlagZero | FlagNegative
	if v == 0 {
		c.P |= FlagZero
	}
	if v&0x80 != 0 {
		c.P |= FlagNegative
	}
}

// setCarry sets the Carry flag from a 9-bit (or wider) ALU result.
func (c *Core) setCarry(result uint16) {
	c.P &^= FlagCarry
	if result > 0xFF {
		c.P |= FlagCarry
	}
}

// setOverflow sets the Overflow flag per the two's-complement sign-change
// rule: set when the inputs share a sign that differs from the result's.
func (c *Core) setOverflow(a, operand, result uint8) {
	c.P &^= FlagOverflow
	if (a^result)&(operand^result)&0x80 != 0 {
		c.P |= FlagOverflow
	}
}

// adc implements ADC. Decimal mode is never applied: D is tracked as a
// visible status bit but binary arithmetic is used regardless of its value
// (see DESIGN.md for why BCD correction is out of scope).
func (c *Core) adc(v uint8) {
	carry := c.P & FlagCarry
	sum := uint16(c.A) + uint16(v) + uint16(carry)
	result := uint8(sum)
	c.setOverflow(c.A, v, result)
	c.setCarry(sum)
	c.A = result
	c.setNZ(c.A)
}

// sbc implements SBC as ADC against the ones' complement of the operand,
// which reproduces NMOS carry/overflow semantics exactly (C=1 means no
// borrow occurred).
func (c *Core) sbc(v uint8) {
	c.adc(v ^ 0xFF)
}

// compare implements CMP/CPX/CPY: computes reg-v in 9 bits, sets Carry when
// reg >= v, and N/Z on the low 8 bits of the difference.
func (c *Core) compare(reg, v uint8) {
	diff := uint16(reg) + uint16(^v) + 1
	c.setCarry(diff)
	c.setNZ(uint8(diff))
}

// asl shifts left, capturing the vacated high bit into Carry.
func (c *Core) asl(v uint8) uint8 {
	c.setCarry(uint16(v) << 1)
	result := v << 1
	c.setNZ(result)
	return result
}

// lsr shifts right, capturing the vacated low bit into Carry.
func (c *Core) lsr(v uint8) uint8 {
	c.P &^= FlagCarry
	if v&0x01 != 0 {
		c.P |= FlagCarry
	}
	result := v >> 1
	c.setNZ(result)
	return result
}

// rol rotates left through Carry.
func (c *Core) rol(v uint8) uint8 {
	carryIn := c.P & FlagCarry
	c.setCarry(uint16(v) << 1)
	result := (v << 1) | carryIn
	c.setNZ(result)
	return result
}

// ror rotates right through Carry.
func (c *Core) ror(v uint8) uint8 {
	carryIn := (c.P & FlagCarry) << 7
	carryOut := v&0x01 != 0
	result := (v >> 1) | carryIn
	c.P &^= FlagCarry
	if carryOut {
		c.P |= FlagCarry
	}
	c.setNZ(result)
	return result
}

// bit implements BIT: Z from A&v, N and V copied directly from bits 7 and 6
// of v.
func (c *Core) bit(v uint8) {
	c.P &^= FlagZero | FlagNegative | FlagOverflow
	if c.A&v == 0 {
		c.P |= FlagZero
	}
	if v&FlagNegative != 0 {
		c.P |= FlagNegative
	}
	if v&FlagOverflow != 0 {
		c.P |= FlagOverflow
	}
}
