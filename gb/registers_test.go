package gb

import "testing"

func TestFLowNibbleAlwaysReadsZero(t *testing.T) {
	var r Registers
	r.SetAF(0xABCD)
	got := r.F()
	want := byte(0xC0)
	if got != want {
		t.Errorf("got %#02x, want %#02x", got, want)
	}
	if r.AF()&0x000F != 0 {
		t.Errorf("AF low nibble not masked: %#04x", r.AF())
	}
}

func TestSetAPreservesF(t *testing.T) {
	var r Registers
	r.SetF(0x50)
	r.SetA(0x77)
	if r.F() != 0x50 {
		t.Errorf("F disturbed by SetA: got %#02x, want %#02x", r.F(), 0x50)
	}
	if r.A() != 0x77 {
		t.Errorf("got %#02x, want %#02x", r.A(), 0x77)
	}
}

func TestGet8Set8RoundTrip(t *testing.T) {
	var r Registers
	pairs := []reg8{regB, regC, regD, regE, regH, regL, regA}
	for _, which := range pairs {
		r.Set8(which, 0x3C)
		if got := r.Get8(which); got != 0x3C {
			t.Errorf("reg8 %v: got %#02x, want %#02x", which, got, 0x3C)
		}
	}
}

func TestGet16Set16RoundTrip(t *testing.T) {
	var r Registers
	pairs := []reg16{pairBC, pairDE, pairHL, pairSP}
	for _, which := range pairs {
		r.Set16(which, 0x1234)
		if got := r.Get16(which); got != 0x1234 {
			t.Errorf("reg16 %v: got %#04x, want %#04x", which, got, 0x1234)
		}
	}
}
