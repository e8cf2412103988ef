package gb

// This file groups the 8/16-bit arithmetic family: ADD/ADC/SUB/SBC/AND/
// XOR/OR/CP A,r, INC/DEC r, INC/DEC rr, ADD HL,rr, ADD SP,e/LD HL,SP+e,
// and the single-byte flag/accumulator adjusters DAA/CPL/SCF/CCF. Each
// helper computes its Flags value explicitly rather than writing F inline,
// per the flags-plumbing-as-value pattern spec.md section 9 settles on.

func addFlags(a, b byte, carryIn bool) (byte, Flags) {
	var c byte
	if carryIn {
		c = 1
	}
	sum := uint16(a) + uint16(b) + uint16(c)
	half := (a&0xF)+(b&0xF)+c > 0xF
	result := byte(sum)
	return result, allFlags(result == 0, false, half, sum > 0xFF)
}

func subFlags(a, b byte, carryIn bool) (byte, Flags) {
	var c byte
	if carryIn {
		c = 1
	}
	result := a - b - c
	half := int(a&0xF)-int(b&0xF)-int(c) < 0
	borrow := int(a)-int(b)-int(c) < 0
	return result, allFlags(result == 0, true, half, borrow)
}

func (c *CPU) aluAdd(b byte)  { v, f := addFlags(c.Reg.A(), b, false); c.Reg.SetA(v); f.Apply(&c.Reg) }
func (c *CPU) aluAdc(b byte) {
	v, f := addFlags(c.Reg.A(), b, c.Reg.GetFlag(FlagC))
	c.Reg.SetA(v)
	f.Apply(&c.Reg)
}
func (c *CPU) aluSub(b byte) { v, f := subFlags(c.Reg.A(), b, false); c.Reg.SetA(v); f.Apply(&c.Reg) }
func (c *CPU) aluSbc(b byte) {
	v, f := subFlags(c.Reg.A(), b, c.Reg.GetFlag(FlagC))
	c.Reg.SetA(v)
	f.Apply(&c.Reg)
}

func (c *CPU) aluAnd(b byte) {
	v := c.Reg.A() & b
	c.Reg.SetA(v)
	allFlags(v == 0, false, true, false).Apply(&c.Reg)
}

func (c *CPU) aluXor(b byte) {
	v := c.Reg.A() ^ b
	c.Reg.SetA(v)
	allFlags(v == 0, false, false, false).Apply(&c.Reg)
}

func (c *CPU) aluOr(b byte) {
	v := c.Reg.A() | b
	c.Reg.SetA(v)
	allFlags(v == 0, false, false, false).Apply(&c.Reg)
}

func (c *CPU) aluCp(b byte) {
	_, f := subFlags(c.Reg.A(), b, false)
	f.Apply(&c.Reg)
}

// incR/decR implement INC r/DEC r: all flags but C are touched.
func (c *CPU) incR(which reg8) {
	v := c.readR(which) + 1
	c.writeR(which, v)
	half := v&0x0F == 0
	Flags{Z: v == 0, SetZ: true, N: false, SetN: true, H: half, SetH: true}.Apply(&c.Reg)
}

func (c *CPU) decR(which reg8) {
	v := c.readR(which) - 1
	c.writeR(which, v)
	half := v&0x0F == 0x0F
	Flags{Z: v == 0, SetZ: true, N: true, SetN: true, H: half, SetH: true}.Apply(&c.Reg)
}

// incRR/decRR implement INC rr/DEC rr: no flags touched, one internal
// stall cycle since there's no bus traffic involved.
func (c *CPU) incRR(rr reg16) {
	c.Reg.Set16(rr, c.Reg.Get16(rr)+1)
	c.stall(4)
}

func (c *CPU) decRR(rr reg16) {
	c.Reg.Set16(rr, c.Reg.Get16(rr)-1)
	c.stall(4)
}

// addHL implements ADD HL,rr: touches N,H,C, leaves Z untouched.
func (c *CPU) addHL(rr reg16) {
	a := c.Reg.HL()
	b := c.Reg.Get16(rr)
	sum := uint32(a) + uint32(b)
	half := (a&0x0FFF)+(b&0x0FFF) > 0x0FFF
	c.Reg.SetHL(uint16(sum))
	Flags{N: false, SetN: true, H: half, SetH: true, C: sum > 0xFFFF, SetC: true}.Apply(&c.Reg)
	c.stall(4)
}

// addSPSigned is the shared arithmetic for ADD SP,e and LD HL,SP+e: e is
// sign-extended and added to SP; H/C are computed from the *low byte*
// unsigned addition, the canonical rule (spec.md section 9's decision,
// resolving the original's buggy variant in favor of the documented one).
func addSPSigned(sp uint16, e int8) (uint16, Flags) {
	se := uint16(int32(e))
	result := sp + se
	half := (sp&0x0F)+(se&0x0F) > 0x0F
	carry := (sp&0xFF)+(se&0xFF) > 0xFF
	return result, Flags{Z: false, SetZ: true, N: false, SetN: true, H: half, SetH: true, C: carry, SetC: true}
}

func (c *CPU) opAddSPe() {
	e := int8(c.fetchByte())
	v, f := addSPSigned(c.Reg.SP, e)
	c.Reg.SP = v
	f.Apply(&c.Reg)
	c.stall(8)
}

func (c *CPU) opLdHLSPe() {
	e := int8(c.fetchByte())
	v, f := addSPSigned(c.Reg.SP, e)
	c.Reg.SetHL(v)
	f.Apply(&c.Reg)
	c.stall(4)
}

// opDAA adjusts A to valid packed-BCD after an 8-bit ADD/ADC/SUB/SBC,
// following the N flag to pick the add or subtract correction table.
func (c *CPU) opDAA() {
	a := c.Reg.A()
	n := c.Reg.GetFlag(FlagN)
	h := c.Reg.GetFlag(FlagH)
	carry := c.Reg.GetFlag(FlagC)
	var adjust byte
	setCarry := carry
	if n {
		if h {
			adjust += 0x06
		}
		if carry {
			adjust += 0x60
		}
		a -= adjust
	} else {
		if h || a&0x0F > 0x09 {
			adjust += 0x06
		}
		if carry || a > 0x99 {
			adjust += 0x60
			setCarry = true
		}
		a += adjust
	}
	c.Reg.SetA(a)
	Flags{Z: a == 0, SetZ: true, H: false, SetH: true, C: setCarry, SetC: true}.Apply(&c.Reg)
}

func (c *CPU) opCPL() {
	c.Reg.SetA(^c.Reg.A())
	Flags{N: true, SetN: true, H: true, SetH: true}.Apply(&c.Reg)
}

func (c *CPU) opSCF() {
	Flags{N: false, SetN: true, H: false, SetH: true, C: true, SetC: true}.Apply(&c.Reg)
}

func (c *CPU) opCCF() {
	Flags{N: false, SetN: true, H: false, SetH: true, C: !c.Reg.GetFlag(FlagC), SetC: true}.Apply(&c.Reg)
}
