package gb

// Control-flow family: JP/JR/CALL/RET/RETI/RST. Conditional forms spend an
// extra internal cycle when the branch is taken but not when it falls
// through, which the teacher's branch instructions (nes/cpu.go opBCC et
// al.) also charge via their own extra-cycle return values; here the same
// shape is expressed as an explicit stall() only on the taken path. RET cc
// additionally spends one internal cycle before testing its condition, so
// it stalls once when not taken and twice when taken.

// condTrue evaluates one of the four condition codes against the current
// flags: 0=NZ, 1=Z, 2=NC, 3=C.
func (c *CPU) condTrue(cc int) bool {
	switch cc {
	case 0:
		return !c.Reg.GetFlag(FlagZ)
	case 1:
		return c.Reg.GetFlag(FlagZ)
	case 2:
		return !c.Reg.GetFlag(FlagC)
	case 3:
		return c.Reg.GetFlag(FlagC)
	}
	panic("gb: invalid condition code")
}

func (c *CPU) opJPnn() {
	addr := c.fetchWord()
	c.Reg.PC = addr
	c.stall(4)
}

func (c *CPU) opJPccnn(cc int) {
	addr := c.fetchWord()
	if c.condTrue(cc) {
		c.Reg.PC = addr
		c.stall(4)
	}
}

func (c *CPU) opJPHL() {
	c.Reg.PC = c.Reg.HL()
}

func (c *CPU) opJRe() {
	e := int8(c.fetchByte())
	c.Reg.PC = uint16(int32(c.Reg.PC) + int32(e))
	c.stall(4)
}

func (c *CPU) opJRcce(cc int) {
	e := int8(c.fetchByte())
	if c.condTrue(cc) {
		c.Reg.PC = uint16(int32(c.Reg.PC) + int32(e))
		c.stall(4)
	}
}

func (c *CPU) opCALLnn() {
	addr := c.fetchWord()
	c.stall(4)
	c.push(c.Reg.PC)
	c.Reg.PC = addr
}

func (c *CPU) opCALLccnn(cc int) {
	addr := c.fetchWord()
	if c.condTrue(cc) {
		c.stall(4)
		c.push(c.Reg.PC)
		c.Reg.PC = addr
	}
}

func (c *CPU) opRET() {
	c.Reg.PC = c.pop()
	c.stall(4)
}

func (c *CPU) opRETcc(cc int) {
	c.stall(4)
	if c.condTrue(cc) {
		c.Reg.PC = c.pop()
		c.stall(4)
	}
}

func (c *CPU) opRETI() {
	c.Reg.PC = c.pop()
	c.stall(4)
	c.bus.ic.ime = true
	c.bus.ic.eiPending = false
}

func (c *CPU) opRST(addr uint16) {
	c.stall(4)
	c.push(c.Reg.PC)
	c.Reg.PC = addr
}
