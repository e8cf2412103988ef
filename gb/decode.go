package gb

import "fmt"

// instruction pairs a retired-trace name with its execution closure. Both
// baseTable and cbTable are built once, at package init, the way the
// teacher's InstLookup [16*16]Instruction table is built (nes/cpu.go) -
// except here most of the 256 entries per table are populated by looping
// over the bit-field families spec.md section 4 documents, rather than
// being 256 hand-written literals. Each entry's cycle cost falls out of
// however many bus reads/writes its exec closure performs, plus whatever
// explicit stall() calls it makes for cycles that touch no bus at all;
// nothing here hard-codes a per-opcode cycle count.
type instruction struct {
	name string
	exec func(c *CPU)
}

var baseTable [256]instruction
var cbTable [256]instruction

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var rrNamesSP = [4]string{"BC", "DE", "HL", "SP"}
var rrNamesAF = [4]string{"BC", "DE", "HL", "AF"}
var ccNames = [4]string{"NZ", "Z", "NC", "C"}

func unimplemented(op int) instruction {
	return instruction{
		name: fmt.Sprintf("ILLEGAL_%02X", op),
		exec: func(c *CPU) { panic(fmt.Sprintf("gb: opcode %#02x has no handler", op)) },
	}
}

// pushPopPair maps the 2-bit rr field PUSH/POP use ({BC,DE,HL,AF}) to a
// reg16, distinct from the {BC,DE,HL,SP} mapping every other 16-bit family
// uses - the one place spec.md's rr encoding is context dependent.
func pushPopPair(rr int) reg16 {
	if rr == 3 {
		return pairAF
	}
	return reg16(rr)
}

func init() {
	for i := range baseTable {
		baseTable[i] = unimplemented(i)
	}
	for i := range cbTable {
		cbTable[i] = unimplemented(i)
	}
	buildLoadBlock()
	buildALUBlock()
	buildIncDecBlock()
	buildWordBlock()
	buildStackBlock()
	buildBranchBlock()
	buildSingletons()
	buildCBTable()
}

// buildLoadBlock fills the 0x40-0x7F LD r,r' block, 0x76 excepted (HALT).
func buildLoadBlock() {
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := 0x40 | dst<<3 | src
			if dst == 6 && src == 6 {
				continue // 0x76 is HALT, wired in buildSingletons
			}
			d, s := reg8(dst), reg8(src)
			baseTable[op] = instruction{
				name: "LD " + regNames[dst] + "," + regNames[src],
				exec: func(c *CPU) { c.ldRR(d, s) },
			}
		}
	}
}

// buildALUBlock fills 0x80-0xBF: ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,r, plus
// the matching immediate forms A,n (0xC6|g<<3).
func buildALUBlock() {
	names := [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}
	ops := [8]func(c *CPU, b byte){
		func(c *CPU, b byte) { c.aluAdd(b) },
		func(c *CPU, b byte) { c.aluAdc(b) },
		func(c *CPU, b byte) { c.aluSub(b) },
		func(c *CPU, b byte) { c.aluSbc(b) },
		func(c *CPU, b byte) { c.aluAnd(b) },
		func(c *CPU, b byte) { c.aluXor(b) },
		func(c *CPU, b byte) { c.aluOr(b) },
		func(c *CPU, b byte) { c.aluCp(b) },
	}
	for g := 0; g < 8; g++ {
		for r := 0; r < 8; r++ {
			op := 0x80 | g<<3 | r
			which, fn := reg8(r), ops[g]
			baseTable[op] = instruction{
				name: names[g] + " A," + regNames[r],
				exec: func(c *CPU) { fn(c, c.readR(which)) },
			}
		}
		fn := ops[g]
		baseTable[0xC6|g<<3] = instruction{
			name: names[g] + " A,n",
			exec: func(c *CPU) { fn(c, c.fetchByte()) },
		}
	}
}

// buildIncDecBlock fills INC r (0x04|r<<3) and DEC r (0x05|r<<3), plus
// LD r,n (0x06|r<<3).
func buildIncDecBlock() {
	for r := 0; r < 8; r++ {
		which := reg8(r)
		baseTable[r<<3|0x04] = instruction{name: "INC " + regNames[r], exec: func(c *CPU) { c.incR(which) }}
		baseTable[r<<3|0x05] = instruction{name: "DEC " + regNames[r], exec: func(c *CPU) { c.decR(which) }}
		baseTable[r<<3|0x06] = instruction{name: "LD " + regNames[r] + ",n", exec: func(c *CPU) { c.ldRImm(which) }}
	}
}

// buildWordBlock fills the {BC,DE,HL,SP}-indexed 16-bit families: LD
// rr,nn; INC rr; ADD HL,rr; DEC rr.
func buildWordBlock() {
	for rr := 0; rr < 4; rr++ {
		pair := reg16(rr)
		baseTable[rr<<4|0x01] = instruction{name: "LD " + rrNamesSP[rr] + ",nn", exec: func(c *CPU) { c.ldRRImm(pair) }}
		baseTable[rr<<4|0x03] = instruction{name: "INC " + rrNamesSP[rr], exec: func(c *CPU) { c.incRR(pair) }}
		baseTable[rr<<4|0x09] = instruction{name: "ADD HL," + rrNamesSP[rr], exec: func(c *CPU) { c.addHL(pair) }}
		baseTable[rr<<4|0x0B] = instruction{name: "DEC " + rrNamesSP[rr], exec: func(c *CPU) { c.decRR(pair) }}
	}
}

// buildStackBlock fills PUSH rr (0xC5|rr<<4) and POP rr (0xC1|rr<<4),
// {BC,DE,HL,AF}-indexed.
func buildStackBlock() {
	for rr := 0; rr < 4; rr++ {
		pair := pushPopPair(rr)
		baseTable[rr<<4|0xC5] = instruction{name: "PUSH " + rrNamesAF[rr], exec: func(c *CPU) { c.opPush(pair) }}
		baseTable[rr<<4|0xC1] = instruction{name: "POP " + rrNamesAF[rr], exec: func(c *CPU) { c.opPop(pair) }}
	}
}

// buildBranchBlock fills the cc-indexed families: JR cc,e (0x20|cc<<3),
// RET cc (0xC0|cc<<3), JP cc,nn (0xC2|cc<<3), CALL cc,nn (0xC4|cc<<3).
func buildBranchBlock() {
	for cc := 0; cc < 4; cc++ {
		cond := cc
		baseTable[cc<<3|0x20] = instruction{name: "JR " + ccNames[cc] + ",e", exec: func(c *CPU) { c.opJRcce(cond) }}
		baseTable[cc<<3|0xC0] = instruction{name: "RET " + ccNames[cc], exec: func(c *CPU) { c.opRETcc(cond) }}
		baseTable[cc<<3|0xC2] = instruction{name: "JP " + ccNames[cc] + ",nn", exec: func(c *CPU) { c.opJPccnn(cond) }}
		baseTable[cc<<3|0xC4] = instruction{name: "CALL " + ccNames[cc] + ",nn", exec: func(c *CPU) { c.opCALLccnn(cond) }}
	}
	for n := 0; n < 8; n++ {
		addr := uint16(n * 8)
		baseTable[n<<3|0xC7] = instruction{name: fmt.Sprintf("RST %02XH", addr), exec: func(c *CPU) { c.opRST(addr) }}
	}
}

// buildSingletons wires every named, non-bit-field opcode: the ones
// spec.md section 4 lists individually rather than as a family.
func buildSingletons() {
	set := func(op int, name string, exec func(c *CPU)) {
		baseTable[op] = instruction{name: name, exec: exec}
	}
	set(0x00, "NOP", (*CPU).opNOP)
	set(0x02, "LD (BC),A", func(c *CPU) { c.ldIndA(c.Reg.BC()) })
	set(0x07, "RLCA", (*CPU).opRLCA)
	set(0x08, "LD (nn),SP", (*CPU).opLdNNSP)
	set(0x0A, "LD A,(BC)", func(c *CPU) { c.ldAInd(c.Reg.BC()) })
	set(0x0F, "RRCA", (*CPU).opRRCA)
	set(0x10, "STOP", (*CPU).opSTOP)
	set(0x12, "LD (DE),A", func(c *CPU) { c.ldIndA(c.Reg.DE()) })
	set(0x17, "RLA", (*CPU).opRLA)
	set(0x18, "JR e", (*CPU).opJRe)
	set(0x1A, "LD A,(DE)", func(c *CPU) { c.ldAInd(c.Reg.DE()) })
	set(0x1F, "RRA", (*CPU).opRRA)
	set(0x22, "LD (HL+),A", (*CPU).opLdHLIncA)
	set(0x27, "DAA", (*CPU).opDAA)
	set(0x2A, "LD A,(HL+)", (*CPU).opLdAHLInc)
	set(0x2F, "CPL", (*CPU).opCPL)
	set(0x32, "LD (HL-),A", (*CPU).opLdHLDecA)
	set(0x37, "SCF", (*CPU).opSCF)
	set(0x3A, "LD A,(HL-)", (*CPU).opLdAHLDec)
	set(0x3F, "CCF", (*CPU).opCCF)
	set(0x76, "HALT", (*CPU).opHALT)
	set(0xC3, "JP nn", (*CPU).opJPnn)
	set(0xC9, "RET", (*CPU).opRET)
	set(0xCB, "PREFIX CB", func(c *CPU) { cbTable[c.fetchByte()].exec(c) })
	set(0xCD, "CALL nn", (*CPU).opCALLnn)
	set(0xD9, "RETI", (*CPU).opRETI)
	set(0xE0, "LDH (n),A", (*CPU).opLdhNA)
	set(0xE2, "LD (C),A", (*CPU).opLdCIndA)
	set(0xE8, "ADD SP,e", (*CPU).opAddSPe)
	set(0xE9, "JP (HL)", (*CPU).opJPHL)
	set(0xEA, "LD (nn),A", (*CPU).opLdNNA)
	set(0xF0, "LDH A,(n)", (*CPU).opLdhAN)
	set(0xF2, "LD A,(C)", (*CPU).opLdACInd)
	set(0xF3, "DI", (*CPU).opDI)
	set(0xF8, "LD HL,SP+e", (*CPU).opLdHLSPe)
	set(0xF9, "LD SP,HL", (*CPU).opLdSPHL)
	set(0xFA, "LD A,(nn)", (*CPU).opLdANN)
	set(0xFB, "EI", (*CPU).opEI)
}

// buildCBTable fills the uniform CB-prefixed page: bits 7-6 pick the
// family (rotate/shift, BIT, RES, SET), bits 5-3 pick the bit index or
// rotate-shift variant, bits 2-0 pick the r-encoded operand.
func buildCBTable() {
	rotateOps := [8]func(c *CPU, v byte) (byte, Flags){
		(*CPU).rlc, (*CPU).rrc, (*CPU).rl, (*CPU).rr,
		(*CPU).sla, (*CPU).sra, (*CPU).swap, (*CPU).srl,
	}
	rotateNames := [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

	for sub := 0; sub < 8; sub++ {
		op, name := rotateOps[sub], rotateNames[sub]
		for r := 0; r < 8; r++ {
			code := sub<<3 | r
			which := reg8(r)
			cbTable[code] = instruction{
				name: name + " " + regNames[r],
				exec: func(c *CPU) { c.cbRotate(func(v byte) (byte, Flags) { return op(c, v) }, which) },
			}
		}
	}
	for n := 0; n < 8; n++ {
		bit := uint(n)
		for r := 0; r < 8; r++ {
			which := reg8(r)
			cbTable[0x40|n<<3|r] = instruction{
				name: fmt.Sprintf("BIT %d,%s", n, regNames[r]),
				exec: func(c *CPU) { c.opBit(bit, which) },
			}
			cbTable[0x80|n<<3|r] = instruction{
				name: fmt.Sprintf("RES %d,%s", n, regNames[r]),
				exec: func(c *CPU) { c.opRes(bit, which) },
			}
			cbTable[0xC0|n<<3|r] = instruction{
				name: fmt.Sprintf("SET %d,%s", n, regNames[r]),
				exec: func(c *CPU) { c.opSet(bit, which) },
			}
		}
	}
}
