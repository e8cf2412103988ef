package gb

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// debugDumper renders a human-readable snapshot of CPU state, replacing
// the teacher's hand-formatted getCpuDebugString/DrawDebugPanel
// (nes/cpu.go, display.go - both out of scope here since they're PPU-panel
// rendering) with go-spew's generic struct dumper, grounded on the same
// debug-dump role hejops-gone and the sema-gbemu/thelolagemann-gomeboy
// manifests reach for go-spew to fill.
var debugDumper = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// RegisterDump is the teacher-log-line state slice (A,F,BC,DE,HL,SP,PC
// plus the four flag bits spelled out) that Step's per-instruction
// Logger line also prints inline; this is the same data as a standalone
// type for callers that want a full spew.Dump instead of one log line.
type RegisterDump struct {
	A, F           byte
	BC, DE, HL     uint16
	SP, PC         uint16
	Z, N, H, Carry bool
}

// Dump returns a multi-line, go-spew-rendered view of the register file
// plus the live flag bits.
func (c *CPU) Dump() string {
	d := RegisterDump{
		A: c.Reg.A(), F: c.Reg.F(),
		BC: c.Reg.BC(), DE: c.Reg.DE(), HL: c.Reg.HL(),
		SP: c.Reg.SP, PC: c.Reg.PC,
		Z: c.Reg.GetFlag(FlagZ), N: c.Reg.GetFlag(FlagN),
		H: c.Reg.GetFlag(FlagH), Carry: c.Reg.GetFlag(FlagC),
	}
	return fmt.Sprintf("cycle=%d\n%s", c.bus.cycles.Total(), debugDumper.Sdump(d))
}
