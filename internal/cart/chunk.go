// Package cart implements the chunk-based cartridge codec: binary
// load/save, the optional PNG "shareable cartridge" wrapper, and the
// in-memory Cartridge/Bank layout every chunk type round-trips through.
// Grounded on internal/memory/cartridge.go's header-parse style and
// original_source/src/cart.c's chunk algorithm.
package cart

import "encoding/binary"

// ChunkType identifies the payload a chunk carries. Values and ordering
// match original_source/src/cart.c's ChunkType enum exactly, including the
// two deprecated slots, so historical cartridges still parse.
type ChunkType uint8

const (
	ChunkDummy       ChunkType = 0
	ChunkTiles       ChunkType = 1
	ChunkSprites     ChunkType = 2
	ChunkCoverDep    ChunkType = 3 // deprecated: GIF cover image
	ChunkMap         ChunkType = 4
	ChunkCode        ChunkType = 5
	ChunkFlags       ChunkType = 6
	ChunkTemp2       ChunkType = 7
	ChunkTemp3       ChunkType = 8
	ChunkSamples     ChunkType = 9
	ChunkWaveform    ChunkType = 10
	ChunkTemp4       ChunkType = 11
	ChunkPalette     ChunkType = 12
	ChunkPatternsDep ChunkType = 13 // deprecated: pre-command patterns
	ChunkMusic       ChunkType = 14
	ChunkPatterns    ChunkType = 15
	ChunkCodeZip     ChunkType = 16
	ChunkDefault     ChunkType = 17
	ChunkScreen      ChunkType = 18
	ChunkBinary      ChunkType = 19
	ChunkLang        ChunkType = 20
)

// bankSize is the maximum payload a single CODE or BINARY chunk may carry;
// a chunk with a zero size field and one of these two types means "a full
// bank", per cart.c's chunkSize() sentinel.
const bankSize = 0x10000

// chunkHeader is the 4-byte header preceding every chunk's payload: a
// 5-bit type, 3-bit bank index, 16-bit little-endian size and an unused
// temp byte, packed exactly as original_source/src/cart.c's bitfield
// Chunk struct (verified static_assert(sizeof(Chunk) == 4)).
type chunkHeader struct {
	Type ChunkType
	Bank int
	Size int
}

func (h chunkHeader) encode() [4]byte {
	var buf [4]byte
	buf[0] = uint8(h.Type)&0x1F | uint8(h.Bank&0x07)<<5
	binary.LittleEndian.PutUint16(buf[1:3], uint16(h.Size))
	buf[3] = 0
	return buf
}

func decodeChunkHeader(buf []byte) chunkHeader {
	return chunkHeader{
		Type: ChunkType(buf[0] & 0x1F),
		Bank: int(buf[0] >> 5),
		Size: int(binary.LittleEndian.Uint16(buf[1:3])),
	}
}

// payloadSize resolves the chunkHeader's real payload length, applying the
// CODE/BINARY full-bank sentinel.
func (h chunkHeader) payloadSize() int {
	if h.Size == 0 && (h.Type == ChunkCode || h.Type == ChunkBinary) {
		return bankSize
	}
	return h.Size
}
