package gb

// Address-space region boundaries (spec.md section 3). Named the way the
// teacher names its RAM/PPU/cartridge boundaries (nes/bus.go
// ramMinAddr/ramMaxAddr/ppuMinAddr/...), one pair of constants per region
// instead of one per decision branch.
const (
	romBank0Start     uint16 = 0x0000
	romSwitchableEnd  uint16 = 0x8000 // exclusive; bank0+switchable together
	vramStart         uint16 = 0x8000
	vramEnd           uint16 = 0xA000 // exclusive
	externalRAMStart  uint16 = 0xA000
	externalRAMEnd    uint16 = 0xC000 // exclusive
	workRAMStart      uint16 = 0xC000
	workRAMEnd        uint16 = 0xE000 // exclusive
	echoRAMStart      uint16 = 0xE000
	echoRAMEnd        uint16 = 0xFE00 // exclusive
	oamStart          uint16 = 0xFE00
	oamEnd            uint16 = 0xFEA0 // exclusive
	prohibitedStart   uint16 = 0xFEA0
	prohibitedEnd     uint16 = 0xFF00 // exclusive
	ioPortsStart      uint16 = 0xFF00
	ioPortsEnd        uint16 = 0xFF80 // exclusive
	hramStart         uint16 = 0xFF80
	hramEnd           uint16 = 0xFFFF // exclusive
)

// echoWindowSize is how much of work RAM the echo region actually
// mirrors: 0xE000-0xFDFF is 0x1E00 bytes, aliasing 0xC000-0xDDFF, not the
// full 0x2000-byte work RAM (spec.md section 3: "aliases
// 0xC000-0xDDFF").
const echoWindowSize = uint16(echoRAMEnd) - uint16(echoRAMStart)

// Bus is the flat 16-bit address space of spec.md section 3: a fixed
// 64 KiB map dispatched by region, mirroring the dispatch shape of the
// teacher's Bus.CpuRead/CpuWrite (nes/bus.go) generalized from three
// regions (RAM/PPU/cartridge) to the full LR35902 map.
type Bus struct {
	cart MBC

	vram    [0x2000]byte
	workRAM [0x2000]byte
	oamMem  oam
	hram    [0x7F]byte

	ports *portRegistry
	ic    *interruptController

	cycles *cycleCounter
}

// NewBus builds a Bus with no cartridge attached (all ROM/external-RAM
// reads return 0xFF until one is inserted via InsertCartridge) and every
// I/O port unmapped.
func NewBus() *Bus {
	return &Bus{
		ports:  newPortRegistry(),
		ic:     &interruptController{},
		cycles: &cycleCounter{},
	}
}

// InsertCartridge attaches the opaque ROM/RAM backing that serves
// 0x0000-0x7FFF and 0xA000-0xBFFF (spec.md section 6, "Cartridge
// interface").
func (b *Bus) InsertCartridge(cart MBC) { b.cart = cart }

// RegisterPort attaches a peripheral to a single I/O register.
func (b *Bus) RegisterPort(ioOffset uint16, p Port) { b.ports.RegisterIOPort(ioOffset, p) }

// RegisterPortRange attaches a peripheral to a contiguous run of I/O
// registers, offsets relative to 0xFF00.
func (b *Bus) RegisterPortRange(start, end uint16, p Port) { b.ports.RegisterIORange(start, end, p) }

// RegisterVRAM attaches a PPU to observe VRAM traffic instead of letting
// the bus serve it out of its own backing array.
func (b *Bus) RegisterVRAM(p Port) { b.ports.RegisterVRAM(p) }

// Read performs one CPU memory read, ticking the cycle counter by 4
// T-cycles (spec.md section 4.2: "Every bus transaction advances the
// cycle counter by 4").
func (b *Bus) Read(addr uint16) byte {
	v := b.readNoTick(addr)
	b.cycles.tick()
	return v
}

// Write performs one CPU memory write, ticking the cycle counter by 4
// T-cycles.
func (b *Bus) Write(addr uint16, v byte) {
	b.writeNoTick(addr, v)
	b.cycles.tick()
}

func (b *Bus) readNoTick(addr uint16) byte {
	switch {
	case addr < romSwitchableEnd:
		if b.cart == nil {
			return 0xFF
		}
		return b.cart.ReadROM(addr)
	case addr < vramEnd:
		if b.ports.vram != nil {
			return b.ports.vram.ReadPort(addr - vramStart)
		}
		return b.vram[addr-vramStart]
	case addr < externalRAMEnd:
		if b.cart == nil {
			return 0xFF
		}
		return b.cart.ReadExternalRAM(addr)
	case addr < workRAMEnd:
		return b.workRAM[addr-workRAMStart]
	case addr < echoRAMEnd:
		return b.workRAM[(addr-echoRAMStart)%echoWindowSize]
	case addr < oamEnd:
		return b.oamMem.read(addr - oamStart)
	case addr < prohibitedEnd:
		return 0xFF
	case addr < ioPortsEnd:
		return b.readIOPort(addr - ioPortsStart)
	case addr < hramEnd:
		return b.hram[addr-hramStart]
	default: // addr == 0xFFFF
		return b.ic.ie
	}
}

func (b *Bus) writeNoTick(addr uint16, v byte) {
	switch {
	case addr < romSwitchableEnd:
		if b.cart != nil {
			b.cart.WriteROM(addr, v)
		}
	case addr < vramEnd:
		if b.ports.vram != nil {
			b.ports.vram.WritePort(addr-vramStart, v)
		} else {
			b.vram[addr-vramStart] = v
		}
	case addr < externalRAMEnd:
		if b.cart != nil {
			b.cart.WriteExternalRAM(addr, v)
		}
	case addr < workRAMEnd:
		b.workRAM[addr-workRAMStart] = v
	case addr < echoRAMEnd:
		b.workRAM[(addr-echoRAMStart)%echoWindowSize] = v
	case addr < oamEnd:
		b.oamMem.write(addr-oamStart, v)
	case addr < prohibitedEnd:
		// dropped
	case addr < ioPortsEnd:
		b.writeIOPort(addr-ioPortsStart, v)
	case addr < hramEnd:
		b.hram[addr-hramStart] = v
	default: // addr == 0xFFFF
		b.ic.ie = v
	}
}

func (b *Bus) readIOPort(offset uint16) byte {
	if offset == ifPortOffset {
		return 0xE0 | b.ic.ifr
	}
	return b.ports.io[offset].ReadPort(offset)
}

func (b *Bus) writeIOPort(offset uint16, v byte) {
	if offset == ifPortOffset {
		b.ic.ifr = v & 0x1F
		return
	}
	b.ports.io[offset].WritePort(offset, v)
}
