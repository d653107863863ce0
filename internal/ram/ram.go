package ram

import "ticforge/internal/bitpack"

// VRAM is the video-addressable region: framebuffer, palette, palette
// mapping table and a handful of scalar registers (border color, screen
// offset, mouse cursor sprite, blit segment). Every field here is part of
// the flat address space reachable through Peek/Poke.
type VRAM struct {
	Screen      [ScreenBytes]uint8
	Palette     [PaletteBytes]uint8
	PaletteMap  [PaletteMapBytes]uint8
	BorderColor uint8
	OffsetX     int8
	OffsetY     int8
	CursorSprID uint8
	BlitSegment uint8
}

// SoundRegister is one channel's live register state: frequency, volume
// and the 16-entry 4-bit waveform currently driving the synthesizer. It is
// distinct from the SFX table's per-tick envelope — this is the register
// the synthesizer reads every sample, refreshed from SFX data each tick.
type SoundRegister struct {
	Freq        uint16 // 10..4096 Hz
	Volume      uint8  // 0..15
	Waveform    [16]uint8
	StereoLeft  bool
	StereoRight bool
}

// RAM is the console's working memory: the union of every region
// spec.md §3 names. It is constructed once per VM and mutated in place by
// every tick; Peek/Poke give user scripts byte-addressable access to the
// regions that are conventionally addressable in the original engine
// (VRAM, tile/sprite banks, map, sprite flags, persistent memory).
type RAM struct {
	VRAM        VRAM
	Tiles       [TileBankBytes]uint8
	Sprites     [TileBankBytes]uint8
	Map         [MapBytes]uint8
	Input       Input
	SoundRegs   [SoundChannels]SoundRegister
	Waveforms   [EnvelopesCount][WaveformBytes]uint8
	SFX         [SFXCount]SFXEntry
	Patterns    [MusicPatterns]Pattern
	Tracks      [MusicTracks]Track
	Persistent  [PersistentSize]int32
	SpriteFlags [TotalSprites]uint8
	Font        [FontGlyphs][FontHeight]uint8 // one byte per row, low 6 bits used
}

// New returns an all-zero RAM: no waveforms, sprite flags or palette are
// preset (all zero is a valid silent, blank, untagged state).
func New() *RAM {
	return &RAM{}
}

const (
	vramBase      = 0
	vramScalarOff = ScreenBytes + PaletteBytes + PaletteMapBytes // 4 scalar bytes follow
	vramSize      = vramScalarOff + 4
	tilesBase     = vramBase + vramSize
	spritesBase   = tilesBase + TileBankBytes
	mapBase       = spritesBase + TileBankBytes
	flagsBase     = mapBase + MapBytes
	persistBase   = flagsBase + TotalSprites
	addrSpaceSize = persistBase + PersistentSize*4
)

// Peek reads one byte from the flat address space at addr.
func (r *RAM) Peek(addr int) uint8 {
	switch {
	case addr < ScreenBytes:
		return r.VRAM.Screen[addr]
	case addr < ScreenBytes+PaletteBytes:
		return r.VRAM.Palette[addr-ScreenBytes]
	case addr < ScreenBytes+PaletteBytes+PaletteMapBytes:
		return r.VRAM.PaletteMap[addr-ScreenBytes-PaletteBytes]
	case addr < vramSize:
		return r.vramScalar(addr - vramScalarOff)
	case addr < spritesBase:
		return r.Tiles[addr-tilesBase]
	case addr < mapBase:
		return r.Sprites[addr-spritesBase]
	case addr < flagsBase:
		return r.Map[addr-mapBase]
	case addr < persistBase:
		return r.SpriteFlags[addr-flagsBase]
	case addr < addrSpaceSize:
		return r.peekPersistent(addr - persistBase)
	default:
		return 0
	}
}

// Poke writes one byte to the flat address space at addr. Writes past the
// end of the address space are silently ignored, matching the original
// engine's tolerant memory API (scripts cannot crash the console by
// poking out of range).
func (r *RAM) Poke(addr int, value uint8) {
	switch {
	case addr < ScreenBytes:
		r.VRAM.Screen[addr] = value
	case addr < ScreenBytes+PaletteBytes:
		r.VRAM.Palette[addr-ScreenBytes] = value
	case addr < ScreenBytes+PaletteBytes+PaletteMapBytes:
		r.VRAM.PaletteMap[addr-ScreenBytes-PaletteBytes] = value
	case addr < vramSize:
		r.setVramScalar(addr-vramScalarOff, value)
	case addr < spritesBase:
		r.Tiles[addr-tilesBase] = value
	case addr < mapBase:
		r.Sprites[addr-spritesBase] = value
	case addr < flagsBase:
		r.Map[addr-mapBase] = value
	case addr < persistBase:
		r.SpriteFlags[addr-flagsBase] = value
	case addr < addrSpaceSize:
		r.pokePersistent(addr-persistBase, value)
	}
}

func (r *RAM) vramScalar(i int) uint8 {
	switch i {
	case 0:
		return r.VRAM.BorderColor
	case 1:
		return uint8(r.VRAM.OffsetX)
	case 2:
		return uint8(r.VRAM.OffsetY)
	case 3:
		return r.VRAM.CursorSprID<<4 | r.VRAM.BlitSegment&0x0F
	default:
		return 0
	}
}

func (r *RAM) setVramScalar(i int, value uint8) {
	switch i {
	case 0:
		r.VRAM.BorderColor = value
	case 1:
		r.VRAM.OffsetX = int8(value)
	case 2:
		r.VRAM.OffsetY = int8(value)
	case 3:
		r.VRAM.CursorSprID = value >> 4
		r.VRAM.BlitSegment = value & 0x0F
	}
}

func (r *RAM) peekPersistent(byteOff int) uint8 {
	slot := byteOff / 4
	shift := uint(byteOff%4) * 8
	return uint8(uint32(r.Persistent[slot]) >> shift)
}

func (r *RAM) pokePersistent(byteOff int, value uint8) {
	slot := byteOff / 4
	shift := uint(byteOff%4) * 8
	mask := uint32(0xFF) << shift
	r.Persistent[slot] = int32((uint32(r.Persistent[slot]) &^ mask) | (uint32(value) << shift))
}

// PeekNibble and PokeNibble give user code the 4-bit access spec.md §4.1
// describes for VRAM: index is in nibbles, addressing the same flat space
// as Peek/Poke one half-byte at a time.
func (r *RAM) PeekNibble(nibbleIdx int) uint8 {
	addr := nibbleIdx >> 1
	b := r.Peek(addr)
	buf := [1]uint8{b}
	return bitpack.Peek4(buf[:], nibbleIdx&1)
}

func (r *RAM) PokeNibble(nibbleIdx int, value uint8) {
	addr := nibbleIdx >> 1
	buf := [1]uint8{r.Peek(addr)}
	bitpack.Poke4(buf[:], nibbleIdx&1, value)
	r.Poke(addr, buf[0])
}

// Memcpy copies n bytes from src to dst within the flat address space,
// mirroring the engine's memcpy(dst, src, len) API.
func (r *RAM) Memcpy(dst, src, n int) {
	if dst == src || n <= 0 {
		return
	}
	if dst < src {
		for i := 0; i < n; i++ {
			r.Poke(dst+i, r.Peek(src+i))
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			r.Poke(dst+i, r.Peek(src+i))
		}
	}
}

// Memset fills n bytes starting at addr with value.
func (r *RAM) Memset(addr, n int, value uint8) {
	for i := 0; i < n; i++ {
		r.Poke(addr+i, value)
	}
}

// AddressSpaceSize is the size in bytes of the flat Peek/Poke space.
func AddressSpaceSize() int { return addrSpaceSize }
