package gb

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
)

// snapshotState is the persisted state, gob-encoded as one struct: the
// register pairs, IME and the pending-EI flag, work RAM, HRAM, OAM, VRAM,
// IE and IF, external RAM (length depends on the cartridge), and the
// cycle counter. The I/O port bytes other than IF are not captured. Grounded on oisee-z80-optimizer's checkpoint.go, the one
// place in the pack that snapshots an emulated CPU's full state this way;
// encoding/gob itself is stdlib, justified in DESIGN.md since nothing in
// the pack wires a third-party serialization format to this exact
// concern.
type snapshotState struct {
	AF, BC, DE, HL uint16
	SP, PC         uint16

	IME       bool
	EIPending bool

	WorkRAM [0x2000]byte
	HRAM    [0x7F]byte
	OAM     [oamSize]byte
	VRAM    [0x2000]byte

	IE  byte
	IF  byte
	Ext []byte

	Cycles uint64
}

// Snapshot serializes the complete CPU+bus state (spec.md section 6,
// "snapshot() -> bytes"). External RAM is only captured when the attached
// cartridge is a *FlatMBC; an MBC implementation supplied by a frontend is
// responsible for its own persistence if it needs more.
func (c *CPU) Snapshot() ([]byte, error) {
	s := snapshotState{
		AF: c.Reg.AF(), BC: c.Reg.BC(), DE: c.Reg.DE(), HL: c.Reg.HL(),
		SP: c.Reg.SP, PC: c.Reg.PC,
		IME:       c.bus.ic.ime,
		EIPending: c.bus.ic.eiPending,
		WorkRAM:   c.bus.workRAM,
		HRAM:      c.bus.hram,
		OAM:       c.bus.oamMem.data,
		VRAM:      c.bus.vram,
		IE:        c.bus.ic.ie,
		IF:        c.bus.ic.ifr,
		Cycles:    c.bus.cycles.total,
	}
	if flat, ok := c.bus.cart.(*FlatMBC); ok && flat.hasRAM {
		s.Ext = append([]byte(nil), flat.ram[:]...)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&s); err != nil {
		return nil, errors.Wrap(err, "gb: encode snapshot")
	}
	return buf.Bytes(), nil
}

// Restore decodes into a scratch value first and only mutates c once
// decoding succeeds, so a malformed snapshot never leaves the CPU
// partially overwritten (spec.md section 7).
func (c *CPU) Restore(data []byte) error {
	var s snapshotState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return errors.Wrap(err, "gb: decode snapshot")
	}

	c.Reg.SetAF(s.AF)
	c.Reg.SetBC(s.BC)
	c.Reg.SetDE(s.DE)
	c.Reg.SetHL(s.HL)
	c.Reg.SP = s.SP
	c.Reg.PC = s.PC

	c.bus.ic.ime = s.IME
	c.bus.ic.eiPending = s.EIPending
	c.bus.ic.ie = s.IE
	c.bus.ic.ifr = s.IF

	c.bus.workRAM = s.WorkRAM
	c.bus.hram = s.HRAM
	c.bus.oamMem.data = s.OAM
	c.bus.vram = s.VRAM
	c.bus.cycles.total = s.Cycles

	if flat, ok := c.bus.cart.(*FlatMBC); ok && flat.hasRAM && len(s.Ext) == len(flat.ram) {
		copy(flat.ram[:], s.Ext)
	}

	c.locked = false
	c.halted = false
	c.haltBug = false

	return nil
}
