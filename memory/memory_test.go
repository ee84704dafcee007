package memory

import "testing"

func TestReadWriteRoundTrip(t *testing.T) {
	var s Store
	s.Write(0x1234, 0xAB)
	if got := s.Read(0x1234); got != 0xAB {
		t.Fatalf("Read(0x1234) = %#x, want $AB", got)
	}
}

func TestClearZeroesEverything(t *testing.T) {
	var s Store
	s.Write(0x0000, 1)
	s.Write(0xFFFF, 1)
	s.Clear()
	if s.Read(0x0000) != 0 || s.Read(0xFFFF) != 0 {
		t.Fatal("Clear() left nonzero bytes")
	}
}

func TestLoadWrapsAtTopOfAddressSpace(t *testing.T) {
	var s Store
	s.Load([]uint8{0x11, 0x22, 0x33}, 0xFFFF)
	if got := s.Read(0xFFFF); got != 0x11 {
		t.Fatalf("Read(0xFFFF) = %#x, want $11", got)
	}
	if got := s.Read(0x0000); got != 0x22 {
		t.Fatalf("Read(0x0000) = %#x, want $22 (wrapped)", got)
	}
	if got := s.Read(0x0001); got != 0x33 {
		t.Fatalf("Read(0x0001) = %#x, want $33 (wrapped)", got)
	}
}

func TestWordRoundTrip(t *testing.T) {
	var s Store
	s.WriteWord(0x2000, 0xBEEF)
	if got := s.ReadWord(0x2000); got != 0xBEEF {
		t.Fatalf("ReadWord(0x2000) = %#x, want $BEEF", got)
	}
	if got := s.Read(0x2000); got != 0xEF {
		t.Fatalf("low byte at $2000 = %#x, want $EF (little-endian)", got)
	}
	if got := s.Read(0x2001); got != 0xBE {
		t.Fatalf("high byte at $2001 = %#x, want $BE", got)
	}
}
