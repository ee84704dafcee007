package cpu

import "testing"

func TestSetNZ(t *testing.T) {
	tests := []struct {
		name    string
		v       uint8
		wantZ   bool
		wantN   bool
	}{
		{"zero", 0x00, true, false},
		{"positive", 0x01, false, false},
		{"negative", 0x80, false, true},
		{"negative nonzero", 0xFF, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.setNZ(tc.v)
			if got := c.P&FlagZero != 0; got != tc.wantZ {
				t.Errorf("Z = %t, want %t", got, tc.wantZ)
			}
			if got := c.P&FlagNegative != 0; got != tc.wantN {
				t.Errorf("N = %t, want %t", got, tc.wantN)
			}
		})
	}
}

func TestADC(t *testing.T) {
	tests := []struct {
		name          string
		a, v, carryIn uint8
		wantA         uint8
		wantC, wantV  bool
	}{
		{"no carry no overflow", 0x01, 0x01, 0, 0x02, false, false},
		{"carry out", 0xFF, 0x01, 0, 0x00, true, false},
		{"signed overflow", 0x7F, 0x01, 0, 0x80, false, true},
		{"carry in chains", 0x01, 0x01, 1, 0x03, false, false},
		{"negative overflow", 0x80, 0x80, 0, 0x00, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.A = tc.a
			if tc.carryIn != 0 {
				c.P |= FlagCarry
			}
			c.adc(tc.v)
			if c.A != tc.wantA {
				t.Errorf("A = %#x, want %#x", c.A, tc.wantA)
			}
			if got := c.P&FlagCarry != 0; got != tc.wantC {
				t.Errorf("C = %t, want %t", got, tc.wantC)
			}
			if got := c.P&FlagOverflow != 0; got != tc.wantV {
				t.Errorf("V = %t, want %t", got, tc.wantV)
			}
		})
	}
}

func TestSBCIsAdcOfComplement(t *testing.T) {
	c := New()
	c.A = 0x05
	c.P |= FlagCarry // No borrow going in.
	c.sbc(0x03)
	if c.A != 0x02 {
		t.Fatalf("5 - 3 = %#x, want 2", c.A)
	}
	if c.P&FlagCarry == 0 {
		t.Fatal("expected C set (no borrow) for 5-3")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		reg, v    uint8
		wantC     bool
		wantZ     bool
	}{
		{"equal", 0x10, 0x10, true, true},
		{"greater", 0x20, 0x10, true, false},
		{"less", 0x05, 0x10, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.compare(tc.reg, tc.v)
			if got := c.P&FlagCarry != 0; got != tc.wantC {
				t.Errorf("C = %t, want %t", got, tc.wantC)
			}
			if got := c.P&FlagZero != 0; got != tc.wantZ {
				t.Errorf("Z = %t, want %t", got, tc.wantZ)
			}
		})
	}
}

func TestShiftsAndRotates(t *testing.T) {
	c := New()
	if got := c.asl(0x81); got != 0x02 || c.P&FlagCarry == 0 {
		t.Errorf("asl(0x81) = %#x C=%t, want 0x02 C=true", got, c.P&FlagCarry != 0)
	}
	c = New()
	if got := c.lsr(0x01); got != 0x00 || c.P&FlagCarry == 0 {
		t.Errorf("lsr(0x01) = %#x C=%t, want 0x00 C=true", got, c.P&FlagCarry != 0)
	}
	c = New()
	c.P |= FlagCarry
	if got := c.rol(0x40); got != 0x81 {
		t.Errorf("rol(0x40) with C=1 = %#x, want 0x81", got)
	}
	c = New()
	c.P |= FlagCarry
	if got := c.ror(0x02); got != 0x81 {
		t.Errorf("ror(0x02) with C=1 = %#x, want 0x81", got)
	}
}

func TestBIT(t *testing.T) {
	c := New()
	c.A = 0x0F
	c.bit(0xC0) // N and V from bits 7/6 of operand, Z from A&v.
	if c.P&FlagZero == 0 {
		t.Error("expected Z set: 0x0F & 0xC0 == 0")
	}
	if c.P&FlagNegative == 0 {
		t.Error("expected N from bit 7 of operand")
	}
	if c.P&FlagOverflow == 0 {
		t.Error("expected V from bit 6 of operand")
	}
}
