package gb

// cycleCounter is the CPU's monotonic T-cycle tally (spec.md section 4.3).
// Every bus transaction ticks it by 4; the executor adds explicit stalls
// where an instruction's documented total exceeds its memory traffic
// (e.g. INC rr, conditional branches that are taken).
type cycleCounter struct {
	total uint64
}

// tick advances the counter by one memory access (4 T-cycles).
func (c *cycleCounter) tick() { c.total += 4 }

// tickN advances the counter by n memory accesses (4*n T-cycles).
func (c *cycleCounter) tickN(n int) { c.total += uint64(4 * n) }

// stall advances the counter by an arbitrary number of T-cycles not tied
// to a bus transaction (an "internal" cycle the hardware spends with no
// corresponding read/write, e.g. the one internal tick in PUSH or a
// taken-branch's extra cycle).
func (c *cycleCounter) stall(tCycles int) { c.total += uint64(tCycles) }

// Total returns the cycle counter's current value.
func (c *cycleCounter) Total() uint64 { return c.total }
