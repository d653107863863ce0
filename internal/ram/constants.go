// Package ram implements the fixed-layout RAM address space described in
// spec.md §3: a byte-addressable union of VRAM, tile/sprite banks, map,
// input latches, sound registers, SFX/music tables, persistent memory,
// sprite flags and the system font. Rather than reinterpret-casting a flat
// byte array (unsafe and non-portable in Go), RAM exposes named typed
// regions plus Peek/Poke accessors that compute offsets the same way the
// teacher's memory.MemorySystem dispatches reads across its bank union —
// see DESIGN.md.
package ram

const (
	ScreenWidth  = 240
	ScreenHeight = 136

	PaletteBPP   = 4
	PaletteSize  = 1 << PaletteBPP // 16 colors
	FrameRate    = 60

	SpriteSize      = 8
	BankSprites     = 256 // tiles per bank
	SpriteBanks     = 2
	TotalSprites    = BankSprites * SpriteBanks // 512, spans tile+sprite banks
	SpriteSheetSize = 128

	MapCols   = ScreenWidth / SpriteSize  // 30
	MapRows   = ScreenHeight / SpriteSize // 17
	MapWidth  = ScreenWidth               // cells, per spec §3: "Map 240x136 cells"
	MapHeight = ScreenHeight

	PersistentSize = 256 // 32-bit slots
	SaveIDSize     = 64

	SoundChannels  = 4
	StereoChannels = 2
	SFXTicks       = 30
	SFXCount       = 64
	NotesPerOctave = 12
	Octaves        = 8
	MaxVolume      = 15
	TotalNotes     = NotesPerOctave * Octaves // 96

	MusicPatternRows = 64
	MusicPatterns    = 60
	MusicFrames      = 16
	MusicTracks      = 8

	DefaultTempo = 150
	DefaultSpeed = 6
	NotesPerBeat = 4

	EnvelopesCount = 16
	EnvelopeValues = 32 // 32 samples unpacked from 16 nibbles by shift

	CodeSize = 0x10000
	Banks    = 8

	Gamepads = 4

	FontWidth   = 6
	FontHeight  = 6
	FontGlyphs  = 256
	AltFontSize = 4

	KeyboardHold   = 20
	KeyboardPeriod = 3

	FreqMin = 10
	FreqMax = 4096

	// NoteNone/NoteStop/NoteStart mirror original_source/src/tic.h's
	// note-field sentinels: a pattern row's note byte is either "do
	// nothing" (0), "stop" (1), or NoteStart+n for note n in [0,95].
	NoteNone  = 0
	NoteStop  = 1
	NoteStart = 4
)

// ScreenBytes is the framebuffer size at 4 bits per pixel.
const ScreenBytes = ScreenWidth * ScreenHeight * PaletteBPP / 8

// TileBankBytes is one 256-tile, 8x8, 4bpp bank.
const TileBankBytes = BankSprites * SpriteSize * SpriteSize * PaletteBPP / 8

// MapBytes is one byte per map cell (tile id).
const MapBytes = MapWidth * MapHeight

// PaletteBytes holds 16 RGB triples.
const PaletteBytes = PaletteSize * 3

// PaletteMapBytes holds 16 4-bit mapping indices, 2 per byte.
const PaletteMapBytes = PaletteSize * PaletteBPP / 8

// WaveformBytes holds one 16-nibble (32-sample-unpacked) envelope.
const WaveformBytes = EnvelopeValues * PaletteBPP / 8
