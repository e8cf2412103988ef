package gb

import "testing"

// Adapted from the teacher's mapper000 round-trip checks
// (nes/cartridge_test.go): a flat, unbanked ROM/RAM image just echoes
// back whatever was loaded or last written.

func TestFlatMBCReadsLoadedROM(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0150] = 0xAB
	m := NewFlatMBC(rom, false)

	got := m.ReadROM(0x0150)
	want := byte(0xAB)
	if got != want {
		t.Errorf("got %#02x, want %#02x", got, want)
	}
}

func TestFlatMBCWriteROMIsNoOp(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x10] = 0x01
	m := NewFlatMBC(rom, false)

	m.WriteROM(0x10, 0xFF)

	got := m.ReadROM(0x10)
	want := byte(0x01)
	if got != want {
		t.Errorf("WriteROM mutated backing: got %#02x, want %#02x", got, want)
	}
}

func TestFlatMBCExternalRAMWithoutRAMChip(t *testing.T) {
	m := NewFlatMBC(nil, false)

	m.WriteExternalRAM(0xA000, 0x55) // dropped, no RAM present

	got := m.ReadExternalRAM(0xA000)
	want := byte(0xFF)
	if got != want {
		t.Errorf("got %#02x, want %#02x", got, want)
	}
}

func TestFlatMBCExternalRAMRoundTrip(t *testing.T) {
	m := NewFlatMBC(nil, true)

	m.WriteExternalRAM(0xA123, 0x42)

	got := m.ReadExternalRAM(0xA123)
	want := byte(0x42)
	if got != want {
		t.Errorf("got %#02x, want %#02x", got, want)
	}
}
