package gb

// Port is the collaborator interface a peripheral (PPU, APU, timer,
// joypad, serial) implements to claim a sub-range of the I/O region
// (0xFF00-0xFF7F) or of VRAM (spec.md section 6, "Memory bus contract to
// peripherals"). offset is not the absolute CPU address: I/O ports receive
// the offset from 0xFF00 (not from the start of the sub-range they were
// registered for), and a VRAM port receives the offset from 0x8000. This generalizes the
// teacher's single hardwired Ppu field on Bus (nes/bus.go CpuRead/
// CpuWrite dispatching straight to b.Ppu.cpuRead/cpuWrite) into a table
// any number of named peripherals can register against, since the core
// itself owns none of PPU/APU/timer/joypad (all named out of scope by
// spec.md section 1).
type Port interface {
	ReadPort(offset uint16) byte
	WritePort(offset uint16, v byte)
}

// unmappedPort is the Port every I/O sub-range starts out registered to:
// reads return 0xFF, writes are dropped. This is what an LR35902 with no
// frontend attached sees when nothing has claimed a given port yet -
// distinct from the hardwired-0xFF prohibited range, but behaviorally the
// same until a real peripheral registers.
type unmappedPort struct{}

func (unmappedPort) ReadPort(uint16) byte     { return 0xFF }
func (unmappedPort) WritePort(uint16, byte) {}

// portRegistry dispatches reads/writes in the I/O region to whichever
// Port has claimed the containing sub-range, falling back to
// unmappedPort. VRAM also goes through a Port so a PPU can observe writes
// live instead of the bus silently owning the backing array.
type portRegistry struct {
	io   [0x80]Port // one slot per I/O register, 0xFF00-0xFF7F
	vram Port       // nil until a PPU registers; nil means "own the bytes directly"
}

func newPortRegistry() *portRegistry {
	pr := &portRegistry{}
	for i := range pr.io {
		pr.io[i] = unmappedPort{}
	}
	return pr
}

// RegisterIOPort attaches p to handle the single I/O register at the
// given offset from 0xFF00.
func (pr *portRegistry) RegisterIOPort(offset uint16, p Port) {
	pr.io[offset] = p
}

// RegisterIORange attaches p to handle every I/O register in
// [start,end) (offsets from 0xFF00).
func (pr *portRegistry) RegisterIORange(start, end uint16, p Port) {
	for i := start; i < end; i++ {
		pr.io[i] = p
	}
}

// RegisterVRAM attaches a PPU to observe VRAM reads/writes. Until called,
// the bus serves VRAM out of its own backing array.
func (pr *portRegistry) RegisterVRAM(p Port) { pr.vram = p }
