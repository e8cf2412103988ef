package gb

import (
	"fmt"
	"log"
)

// illegalOpcodes are the hardware-undefined base-page opcodes that lock
// the CPU when fetched (spec.md section 7).
var illegalOpcodes = map[byte]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
	0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

// errLocked is returned by Step once the CPU has fetched a hardware-
// illegal opcode; the CPU stops advancing PC until Reset.
type errLocked struct{ opcode byte }

func (e *errLocked) Error() string {
	return fmt.Sprintf("gb: cpu locked on illegal opcode %#02x", e.opcode)
}

// CPU is the fetch-decode-execute core: register file, bus, cycle
// counter and interrupt controller wired together (spec.md section 2's
// "Executor" plus the register file and interrupt controller it drives).
// Shaped after the teacher's Cpu6502 (nes/cpu.go): a struct embedding the
// register fields, a bus pointer, and an optional *log.Logger for a
// per-instruction trace.
type CPU struct {
	Reg Registers
	bus *Bus

	locked    bool
	lockedOn  byte
	halted    bool
	haltBug   bool // skip PC++ on the next opcode fetch

	// Logger, when non-nil, receives one line per retired instruction in
	// the teacher's "%04X\t%02X - %s" trace shape (nes/cpu.go Cycle).
	Logger *log.Logger
}

// NewCPU builds a zero-initialized CPU (spec.md section 3, "Register file
// and memory are created zero-initialized") wired to bus.
func NewCPU(bus *Bus) *CPU {
	return &CPU{bus: bus}
}

// LoadPostBootState seeds the documented post-boot-ROM register values
// (spec.md section 3's lifecycle note); a frontend is expected to call
// this, or restore a snapshot, before the first Step.
func (c *CPU) LoadPostBootState() {
	c.Reg.SetA(0x01)
	c.Reg.SetF(0xB0)
	c.Reg.SetBC(0x0013)
	c.Reg.SetDE(0x00D8)
	c.Reg.SetHL(0x014D)
	c.Reg.SP = 0xFFFE
	c.Reg.PC = 0x0100
}

// Reset clears the locked state, allowing Step to resume from whatever
// PC the caller sets next. It does not reinitialize registers or memory;
// the teacher's Reset (nes/cpu.go) re-seeds a concrete register snapshot,
// but spec.md section 7 only asks that Reset un-stick a locked CPU, and a
// frontend restoring a snapshot would not want registers clobbered under
// it.
func (c *CPU) Reset() {
	c.locked = false
	c.halted = false
	c.haltBug = false
}

// Locked reports whether the CPU fetched a hardware-illegal opcode and is
// no longer advancing.
func (c *CPU) Locked() bool { return c.locked }

// IME reports the current interrupt master enable state.
func (c *CPU) IME() bool { return c.bus.ic.ime }

// RequestInterrupt sets the IF bit for kind (spec.md section 6).
func (c *CPU) RequestInterrupt(kind InterruptKind) {
	c.bus.ic.setFlag(kind)
	if c.halted {
		c.halted = false
	}
}

// stall charges tCycles of CPU time with no corresponding bus
// transaction - the "explicit stalls" spec.md section 4.3 calls for
// beyond tick()'d memory accesses.
func (c *CPU) stall(tCycles int) { c.bus.cycles.stall(tCycles) }

func (c *CPU) fetchByte() byte {
	v := c.bus.Read(c.Reg.PC)
	c.Reg.PC++
	return v
}

func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push(v uint16) {
	c.Reg.SP--
	c.bus.Write(c.Reg.SP, byte(v>>8))
	c.Reg.SP--
	c.bus.Write(c.Reg.SP, byte(v))
}

func (c *CPU) pop() uint16 {
	lo := c.bus.Read(c.Reg.SP)
	c.Reg.SP++
	hi := c.bus.Read(c.Reg.SP)
	c.Reg.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// readR/writeR read or write one of the eight `r`-encoded 8-bit operands,
// transparently dereferencing (HL) through the bus (and ticking it) when
// which == regHLInd.
func (c *CPU) readR(which reg8) byte {
	if which == regHLInd {
		return c.bus.Read(c.Reg.HL())
	}
	return c.Reg.Get8(which)
}

func (c *CPU) writeR(which reg8, v byte) {
	if which == regHLInd {
		c.bus.Write(c.Reg.HL(), v)
		return
	}
	c.Reg.Set8(which, v)
}

// Step fetches, decodes and executes exactly one instruction, returning
// the number of T-cycles it took (spec.md section 6: "step() ->
// cycles_elapsed"). Dataflow follows spec.md section 2 verbatim: fetch via
// bus (+4) -> decode -> optional operand fetches (+4 each) -> execute
// (bus ops +4 each, explicit stalls as needed) -> PC updated.
func (c *CPU) Step() (uint8, error) {
	before := c.bus.cycles.Total()

	if c.locked {
		return 0, &errLocked{opcode: c.lockedOn}
	}

	armedBeforeThisStep := c.bus.ic.beginStep()

	if c.halted {
		if c.bus.ic.pending() {
			c.halted = false
		} else {
			c.stall(4)
			c.bus.ic.endStep(armedBeforeThisStep)
			return uint8(c.bus.cycles.Total() - before), nil
		}
	}

	opcode := c.bus.Read(c.Reg.PC)
	if c.haltBug {
		// The HALT bug: PC is not advanced for this one fetch, so the
		// byte just read is fetched again as the next opcode too.
		c.haltBug = false
	} else {
		c.Reg.PC++
	}

	if illegalOpcodes[opcode] {
		c.locked = true
		c.lockedOn = opcode
		return uint8(c.bus.cycles.Total() - before), &errLocked{opcode: opcode}
	}

	var name string
	if opcode == 0xCB {
		sub := c.fetchByte()
		inst := cbTable[sub]
		name = inst.name
		inst.exec(c)
	} else {
		inst := baseTable[opcode]
		name = inst.name
		inst.exec(c)
	}

	c.bus.ic.endStep(armedBeforeThisStep)

	if c.Logger != nil {
		c.Logger.Printf("%04X\t%02X - %-16s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X CYC:%d",
			c.Reg.PC, opcode, name,
			c.Reg.A(), c.Reg.F(), c.Reg.B(), c.Reg.C(), c.Reg.D(), c.Reg.E(), c.Reg.H(), c.Reg.L(),
			c.Reg.SP, c.bus.cycles.Total())
	}

	return uint8(c.bus.cycles.Total() - before), nil
}

// enterHalt is called by the HALT instruction handler. It applies the
// documented HALT bug (spec.md section 4.10): if IME is false and an
// interrupt is already pending at the moment HALT executes, the very
// next fetch does not advance PC.
func (c *CPU) enterHalt() {
	if !c.bus.ic.ime && c.bus.ic.pending() {
		c.haltBug = true
		return
	}
	c.halted = true
}
