package gb

// This file groups the LD/PUSH/POP family: 8-bit register-to-register and
// immediate loads, 16-bit immediate loads, the indirect A<->(rr) forms
// (including the HL+/HL- auto-increment/decrement idioms), the absolute
// and high-page forms, and the stack-pointer loads/PUSH/POP.

func (c *CPU) ldRR(dst, src reg8) {
	c.writeR(dst, c.readR(src))
}

func (c *CPU) ldRImm(dst reg8) {
	c.writeR(dst, c.fetchByte())
}

func (c *CPU) ldRRImm(rr reg16) {
	c.Reg.Set16(rr, c.fetchWord())
}

func (c *CPU) ldIndA(addr uint16) { c.bus.Write(addr, c.Reg.A()) }
func (c *CPU) ldAInd(addr uint16) { c.Reg.SetA(c.bus.Read(addr)) }

func (c *CPU) opLdHLIncA() { c.ldIndA(c.Reg.HL()); c.Reg.SetHL(c.Reg.HL() + 1) }
func (c *CPU) opLdHLDecA() { c.ldIndA(c.Reg.HL()); c.Reg.SetHL(c.Reg.HL() - 1) }
func (c *CPU) opLdAHLInc() { c.ldAInd(c.Reg.HL()); c.Reg.SetHL(c.Reg.HL() + 1) }
func (c *CPU) opLdAHLDec() { c.ldAInd(c.Reg.HL()); c.Reg.SetHL(c.Reg.HL() - 1) }

func (c *CPU) opLdNNA() { addr := c.fetchWord(); c.ldIndA(addr) }
func (c *CPU) opLdANN() { addr := c.fetchWord(); c.ldAInd(addr) }

func (c *CPU) opLdCIndA() { c.bus.Write(0xFF00+uint16(c.Reg.C()), c.Reg.A()) }
func (c *CPU) opLdACInd() { c.Reg.SetA(c.bus.Read(0xFF00 + uint16(c.Reg.C()))) }

func (c *CPU) opLdhNA() { n := c.fetchByte(); c.bus.Write(0xFF00+uint16(n), c.Reg.A()) }
func (c *CPU) opLdhAN() { n := c.fetchByte(); c.Reg.SetA(c.bus.Read(0xFF00 + uint16(n))) }

func (c *CPU) opLdNNSP() {
	addr := c.fetchWord()
	c.bus.Write(addr, byte(c.Reg.SP))
	c.bus.Write(addr+1, byte(c.Reg.SP>>8))
}

func (c *CPU) opLdSPHL() {
	c.Reg.SP = c.Reg.HL()
	c.stall(4)
}

func (c *CPU) opPush(rr reg16) {
	c.stall(4)
	c.push(c.Reg.Get16(rr))
}

func (c *CPU) opPop(rr reg16) {
	c.Reg.Set16(rr, c.pop())
}
