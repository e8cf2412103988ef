package gb

// BIT/RES/SET n,r: the uniform CB-page family spec.md section 4.4
// describes. BIT only reads and sets Z/N/H, leaving C untouched; RES/SET
// read-modify-write the operand and touch no flags at all.

func (c *CPU) opBit(n uint, which reg8) {
	v := c.readR(which)
	zero := v&(1<<n) == 0
	Flags{Z: zero, SetZ: true, N: false, SetN: true, H: true, SetH: true}.Apply(&c.Reg)
}

func (c *CPU) opRes(n uint, which reg8) {
	c.writeR(which, c.readR(which)&^(1<<n))
}

func (c *CPU) opSet(n uint, which reg8) {
	c.writeR(which, c.readR(which)|(1<<n))
}
