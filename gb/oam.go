package gb

// oamSize is the size, in bytes, of the sprite attribute table: 40
// entries of 4 bytes each.
const oamSize = 0xA0

// oam is the object attribute memory backing at 0xFE00-0xFE9F. It is a
// flat byte region from the CPU's point of view (spec.md section 3 and
// section 6 treat OAM as plain bus-addressable memory the PPU happens to
// interpret); oamEntry/entries below exist only to give that memory a
// typed, documented view for whatever peripheral attaches here, the same
// role the teacher's objectAttributeMemory (nes/oam.go) plays for NES
// sprites.
type oam struct {
	data [oamSize]byte
}

func (o *oam) read(offset uint16) byte  { return o.data[offset] }
func (o *oam) write(offset uint16, v byte) { o.data[offset] = v }

// oamEntry is one of the 40 sprite attribute records OAM holds, laid out
// the way the LR35902 PPU reads them: Y, X, tile index, then attribute
// flags - the same four-field-per-sprite shape as the teacher's oamSprite
// (nes/oam.go), reordered to match real LR35902 sprite layout rather than
// the NES's.
type oamEntry struct {
	y, x, tile, attr byte
}

// entries returns a typed view over the 40 sprite records. It allocates;
// callers doing hot-path PPU work should read o.data directly instead.
// This exists for the ambient "OAM is addressable as typed sprite
// records, not just raw bytes" convenience the spec's data model implies
// without needing to re-derive the byte math at every call site.
func (o *oam) entries() [40]oamEntry {
	var out [40]oamEntry
	for i := 0; i < 40; i++ {
		base := i * 4
		out[i] = oamEntry{
			y:    o.data[base],
			x:    o.data[base+1],
			tile: o.data[base+2],
			attr: o.data[base+3],
		}
	}
	return out
}
