package gb

// MBC is the cartridge-resident collaborator spec.md section 1 places out
// of scope ("Cartridge bank-switching logic (MBC*)... modeled as an
// opaque ROM/RAM backing that responds to writes in defined ranges") and
// section 6 names as the "Cartridge interface". It mirrors the shape of
// the teacher's Mapper interface (nes/mapper.go) - cpuMapRead/cpuMapWrite
// translating a CPU-visible address into an offset into cartridge-owned
// backing - generalized to also own the bytes instead of leaving them to
// the caller, since the LR35902 has no separate PPU-side address space to
// share a Mapper between.
type MBC interface {
	// ReadROM returns the byte visible at addr, which is in
	// [0x0000,0x8000) (ROM bank 0 + switchable ROM bank).
	ReadROM(addr uint16) byte
	// WriteROM forwards a CPU write in [0x0000,0x8000) to the cartridge.
	// Real MBCs treat these as bank-select control writes; the backing
	// ROM bytes themselves are never modified by a CPU write.
	WriteROM(addr uint16, v byte)
	// ReadExternalRAM returns the byte visible at addr, which is in
	// [0xA000,0xC000).
	ReadExternalRAM(addr uint16) byte
	// WriteExternalRAM writes addr, which is in [0xA000,0xC000), if
	// cartridge RAM is present; otherwise it is a no-op.
	WriteExternalRAM(addr uint16, v byte)
}

// FlatMBC is the MBC0-equivalent default: a single fixed 32 KiB ROM image
// and (optionally) a fixed external RAM backing, no bank switching.
// Grounded on the teacher's Mapper000 (nes/mapper000.go), which is the
// same "no bank switching, just address-mask into one flat image" shape
// for the 6502/NES case.
type FlatMBC struct {
	rom [0x8000]byte
	ram [0x2000]byte

	hasRAM bool
}

// NewFlatMBC builds a FlatMBC, copying as much of rom as fits into the
// fixed 32 KiB ROM window. hasRAM enables the external RAM window; without
// it, external RAM reads return 0xFF and writes are dropped, matching a
// cartridge with no RAM chip present.
func NewFlatMBC(rom []byte, hasRAM bool) *FlatMBC {
	m := &FlatMBC{hasRAM: hasRAM}
	copy(m.rom[:], rom)
	return m
}

func (m *FlatMBC) ReadROM(addr uint16) byte {
	if int(addr) >= len(m.rom) {
		return 0xFF
	}
	return m.rom[addr]
}

// WriteROM is a no-op for FlatMBC: there is no bank register to control,
// and the spec forbids a CPU write from mutating ROM backing.
func (m *FlatMBC) WriteROM(addr uint16, v byte) {}

func (m *FlatMBC) ReadExternalRAM(addr uint16) byte {
	if !m.hasRAM {
		return 0xFF
	}
	return m.ram[addr-externalRAMStart]
}

func (m *FlatMBC) WriteExternalRAM(addr uint16, v byte) {
	if !m.hasRAM {
		return
	}
	m.ram[addr-externalRAMStart] = v
}
