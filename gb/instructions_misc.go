package gb

// NOP, HALT, STOP, DI, EI: the instructions that touch no registers or
// memory beyond their own opcode fetch.

func (c *CPU) opNOP() {}

func (c *CPU) opHALT() { c.enterHalt() }

// opSTOP is modeled as a no-op stall for this core-only scope: real
// hardware halts the system clock until a joypad interrupt, which is a
// peripheral this package never drives on its own (spec.md section 1).
// The encoded second byte (always 0x00) is still fetched, matching the
// two-byte opcode length, and the CPU is parked the same way HALT parks
// it.
func (c *CPU) opSTOP() {
	c.fetchByte()
	c.halted = true
}

func (c *CPU) opDI() {
	c.bus.ic.ime = false
	c.bus.ic.eiPending = false
}

func (c *CPU) opEI() {
	c.bus.ic.armEI()
}
