package cart

import "ticforge/internal/ram"

// Bank is one of the 8 cartridge banks: a self-contained set of graphics,
// sound and map data that internal/vm can switch between via sync().
type Bank struct {
	Tiles      [ram.TileBankBytes]uint8
	Sprites    [ram.TileBankBytes]uint8
	Map        [ram.MapBytes]uint8
	Palette    [ram.PaletteBytes]uint8
	Samples    [ram.SFXCount]ram.SFXEntry
	Waveforms  [ram.EnvelopesCount][ram.WaveformBytes]uint8
	Patterns   [ram.MusicPatterns]ram.Pattern
	Tracks     [ram.MusicTracks]ram.Track
	Flags      [ram.TotalSprites]uint8
	Screen     [ram.ScreenBytes]uint8 // cover image, bank 0 only by convention
}

// Cartridge is the full in-memory cartridge: 8 banks, the cross-bank code
// blob (script source, concatenated from per-bank CODE chunks), a binary
// blob (for data: levels, assets shipped alongside code) and a language
// tag naming which script host the CODE blob targets.
type Cartridge struct {
	Banks  [ram.Banks]Bank
	Code   string
	Binary []byte
	Lang   string
}

// New returns an empty cartridge with every bank's palette and waveforms
// set to the engine defaults (Sweetie16 and the three builtin waveforms),
// matching what a freshly created cartridge looks like before any edits.
func New() *Cartridge {
	c := &Cartridge{}
	for i := range c.Banks {
		copy(c.Banks[i].Palette[:], defaultPalette[:])
		flattenWaveforms(&c.Banks[i], defaultWaveforms[:])
	}
	return c
}

// defaultPalette is the Sweetie16 16-color palette TIC-80 ships as its
// built-in default, copied byte-for-byte from original_source/src/cart.c.
var defaultPalette = [48]byte{
	0x1a, 0x1c, 0x2c, 0x5d, 0x27, 0x5d, 0xb1, 0x3e, 0x53, 0xef, 0x7d, 0x57,
	0xff, 0xcd, 0x75, 0xa7, 0xf0, 0x70, 0x38, 0xb7, 0x64, 0x25, 0x71, 0x79,
	0x29, 0x36, 0x6f, 0x3b, 0x5d, 0xc9, 0x41, 0xa6, 0xf6, 0x73, 0xef, 0xf7,
	0xf4, 0xf4, 0xf4, 0x94, 0xb0, 0xc2, 0x56, 0x6c, 0x86, 0x33, 0x3c, 0x57,
}

// defaultWaveforms is the three builtin envelope shapes (square, triangle,
// sawtooth), one 16-byte waveform per row, TIC-80 ships by default, copied byte-for-byte from
// original_source/src/cart.c.
var defaultWaveforms = [48]byte{
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
	0x10, 0x32, 0x54, 0x76, 0x98, 0xba, 0xdc, 0xfe, 0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01,
	0x10, 0x32, 0x54, 0x76, 0x98, 0xba, 0xdc, 0xfe, 0x10, 0x32, 0x54, 0x76, 0x98, 0xba, 0xdc, 0xfe,
}

func flattenWaveforms(b *Bank, flat []byte) {
	for i := range b.Waveforms {
		start := i * ram.WaveformBytes
		if start >= len(flat) {
			break
		}
		end := start + ram.WaveformBytes
		if end > len(flat) {
			end = len(flat)
		}
		copy(b.Waveforms[i][:], flat[start:end])
	}
}

// isDefaultBank reports whether a bank's palette and full waveform table
// exactly match the engine defaults — including the zero tail past the
// three built-in envelopes cart.c's Waveforms[] array defines.
func isDefaultBank(b *Bank) bool {
	var flatWave [ram.EnvelopesCount * ram.WaveformBytes]byte
	for i := range b.Waveforms {
		copy(flatWave[i*ram.WaveformBytes:], b.Waveforms[i][:])
	}

	var wantWave [ram.EnvelopesCount * ram.WaveformBytes]byte
	copy(wantWave[:], defaultWaveforms[:])

	return flatWave == wantWave && b.Palette == defaultPalette
}
