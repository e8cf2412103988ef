package gb

// StatusFlag identifies one bit of the F register. Named and shifted the
// same way the teacher's SF6502 status-flag type is (nes/cpu.go), adapted
// to the LR35902's Z/N/H/C bits instead of the 6502's eight.
type StatusFlag byte

const (
	FlagC StatusFlag = 1 << 4 // Carry
	FlagH StatusFlag = 1 << 5 // Half-carry
	FlagN StatusFlag = 1 << 6 // Subtract
	FlagZ StatusFlag = 1 << 7 // Zero
)

// GetFlag reports whether the given flag bit is set in F.
func (r *Registers) GetFlag(f StatusFlag) bool {
	return r.F()&byte(f) != 0
}

// setFlag sets or clears a single flag bit in F, leaving the others alone.
func (r *Registers) setFlag(f StatusFlag, set bool) {
	cur := r.F()
	if set {
		cur |= byte(f)
	} else {
		cur &^= byte(f)
	}
	r.SetF(cur)
}

// Flags is the small result-of-computation struct every arithmetic/bit/
// rotate helper returns instead of mutating F directly. spec.md section 9
// calls this plumbing "mandatory": several instructions (INC/DEC, CPL,
// SCF, CCF) only ever touch a subset of the four flags, so a helper that
// wrote all four unconditionally would corrupt the ones it's supposed to
// leave alone. Each field is a pointer-free tri-state via a companion
// "Set*" bool; a flag whose Set* is false is left untouched by Apply.
type Flags struct {
	Z, SetZ bool
	N, SetN bool
	H, SetH bool
	C, SetC bool
}

// Apply writes the flags marked as set into F, leaving the rest untouched.
func (f Flags) Apply(r *Registers) {
	if f.SetZ {
		r.setFlag(FlagZ, f.Z)
	}
	if f.SetN {
		r.setFlag(FlagN, f.N)
	}
	if f.SetH {
		r.setFlag(FlagH, f.H)
	}
	if f.SetC {
		r.setFlag(FlagC, f.C)
	}
}

// allFlags builds a Flags value that touches all four bits, the common
// case for the ALU ops.
func allFlags(z, n, h, c bool) Flags {
	return Flags{Z: z, SetZ: true, N: n, SetN: true, H: h, SetH: true, C: c, SetC: true}
}
