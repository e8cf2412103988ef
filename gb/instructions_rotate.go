package gb

// Rotate/shift family: the eight CB-page operations RLC/RRC/RL/RR/SLA/SRA/
// SWAP/SRL, plus the four base-page accumulator shortcuts RLCA/RLA/RRCA/
// RRA which share the same bit math but always clear Z regardless of the
// result (the one documented exception spec.md section 4.4 calls out).

func (c *CPU) rlc(v byte) (byte, Flags) {
	carry := v&0x80 != 0
	result := v<<1 | v>>7
	return result, allFlags(result == 0, false, false, carry)
}

func (c *CPU) rrc(v byte) (byte, Flags) {
	carry := v&0x01 != 0
	result := v>>1 | v<<7
	return result, allFlags(result == 0, false, false, carry)
}

func (c *CPU) rl(v byte) (byte, Flags) {
	var carryIn byte
	if c.Reg.GetFlag(FlagC) {
		carryIn = 1
	}
	carryOut := v&0x80 != 0
	result := v<<1 | carryIn
	return result, allFlags(result == 0, false, false, carryOut)
}

func (c *CPU) rr(v byte) (byte, Flags) {
	var carryIn byte
	if c.Reg.GetFlag(FlagC) {
		carryIn = 0x80
	}
	carryOut := v&0x01 != 0
	result := v>>1 | carryIn
	return result, allFlags(result == 0, false, false, carryOut)
}

func (c *CPU) sla(v byte) (byte, Flags) {
	carry := v&0x80 != 0
	result := v << 1
	return result, allFlags(result == 0, false, false, carry)
}

func (c *CPU) sra(v byte) (byte, Flags) {
	carry := v&0x01 != 0
	result := v>>1 | v&0x80
	return result, allFlags(result == 0, false, false, carry)
}

func (c *CPU) srl(v byte) (byte, Flags) {
	carry := v&0x01 != 0
	result := v >> 1
	return result, allFlags(result == 0, false, false, carry)
}

func (c *CPU) swap(v byte) (byte, Flags) {
	result := v<<4 | v>>4
	return result, allFlags(result == 0, false, false, false)
}

// cbRotate applies an (byte)->(byte,Flags) op to an r-encoded operand and
// writes both the result and the flags back.
func (c *CPU) cbRotate(op func(byte) (byte, Flags), which reg8) {
	v := c.readR(which)
	result, f := op(v)
	c.writeR(which, result)
	f.Apply(&c.Reg)
}

// The four base-page accumulator shortcuts: same bit math as their CB-page
// counterparts, but Z always reads 0.
func (c *CPU) opRLCA() { result, f := c.rlc(c.Reg.A()); c.Reg.SetA(result); f.SetZ, f.Z = true, false; f.Apply(&c.Reg) }
func (c *CPU) opRRCA() { result, f := c.rrc(c.Reg.A()); c.Reg.SetA(result); f.SetZ, f.Z = true, false; f.Apply(&c.Reg) }
func (c *CPU) opRLA()  { result, f := c.rl(c.Reg.A()); c.Reg.SetA(result); f.SetZ, f.Z = true, false; f.Apply(&c.Reg) }
func (c *CPU) opRRA()  { result, f := c.rr(c.Reg.A()); c.Reg.SetA(result); f.SetZ, f.Z = true, false; f.Apply(&c.Reg) }
