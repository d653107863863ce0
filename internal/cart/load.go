package cart

import (
	"fmt"

	"ticforge/internal/ram"
)

const chunkHeaderSize = 4

// Load decodes a cartridge from its chunk-based binary form, transparently
// unwrapping the PNG "shareable cartridge" container if present. It
// follows original_source/src/cart.c's two-pass algorithm: palette and
// CHUNK_DEFAULT chunks load first (so every other region has the right
// palette context), then everything else, with CODE and BINARY chunks
// collected per bank and concatenated in descending bank order once the
// second pass finishes.
func Load(data []byte) (*Cartridge, error) {
	buf, err := unwrapIfPNG(data)
	if err != nil {
		return nil, fmt.Errorf("cart: %w", err)
	}

	cart := &Cartridge{}

	if err := loadPalettesAndDefaults(cart, buf); err != nil {
		return nil, fmt.Errorf("cart: %w", err)
	}

	codeChunks := make([][]byte, ram.Banks)
	binaryChunks := make([][]byte, ram.Banks)

	if err := loadRemainingChunks(cart, buf, codeChunks, binaryChunks); err != nil {
		return nil, fmt.Errorf("cart: %w", err)
	}

	assembleBinary(cart, binaryChunks)
	if cart.Code == "" {
		assembleCode(cart, codeChunks)
	}

	return cart, nil
}

func walkChunks(buf []byte, visit func(h chunkHeader, payload []byte) error) error {
	pos := 0
	for pos+chunkHeaderSize <= len(buf) {
		h := decodeChunkHeader(buf[pos : pos+chunkHeaderSize])
		pos += chunkHeaderSize

		size := h.payloadSize()
		if pos+size > len(buf) {
			return fmt.Errorf("chunk type %d at offset %d overruns buffer (size %d)", h.Type, pos, size)
		}

		payload := buf[pos : pos+size]
		if err := visit(h, payload); err != nil {
			return err
		}
		pos += size
	}
	return nil
}

func loadPalettesAndDefaults(cart *Cartridge, buf []byte) error {
	return walkChunks(buf, func(h chunkHeader, payload []byte) error {
		if h.Bank < 0 || h.Bank >= ram.Banks {
			return nil
		}
		switch h.Type {
		case ChunkPalette:
			copyInto(cart.Banks[h.Bank].Palette[:], payload)
		case ChunkDefault:
			copy(cart.Banks[h.Bank].Palette[:], defaultPalette[:])
			flattenWaveforms(&cart.Banks[h.Bank], defaultWaveforms[:])
		}
		return nil
	})
}

func loadRemainingChunks(cart *Cartridge, buf []byte, codeChunks, binaryChunks [][]byte) error {
	return walkChunks(buf, func(h chunkHeader, payload []byte) error {
		bank := h.Bank
		if bank < 0 || bank >= ram.Banks {
			return nil
		}
		b := &cart.Banks[bank]

		switch h.Type {
		case ChunkTiles:
			copyInto(b.Tiles[:], payload)
		case ChunkSprites:
			copyInto(b.Sprites[:], payload)
		case ChunkMap:
			copyInto(b.Map[:], payload)
		case ChunkSamples:
			decodeSamples(b, payload)
		case ChunkWaveform:
			flattenWaveforms(b, payload)
		case ChunkMusic:
			decodeTracks(b, payload)
		case ChunkPatterns:
			decodePatterns(b, payload)
		case ChunkPatternsDep:
			decodePatterns(b, payload)
			convertDeprecatedVolumeCommand(b)
		case ChunkFlags:
			copyInto(b.Flags[:], payload)
		case ChunkScreen:
			copyInto(b.Screen[:], payload)
		case ChunkLang:
			cart.Lang = string(payload)
		case ChunkCode:
			codeChunks[bank] = append([]byte(nil), payload...)
		case ChunkCodeZip:
			raw, err := inflate(payload)
			if err == nil {
				cart.Code = string(raw)
			}
		case ChunkBinary:
			binaryChunks[bank] = append([]byte(nil), payload...)
		case ChunkCoverDep:
			// Deprecated GIF cover image: no decoder is carried forward,
			// kept only so old carts still parse without error.
		}
		return nil
	})
}

func copyInto(dst []byte, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst, src[:n])
}

// assembleBinary concatenates per-bank BINARY chunks highest-bank-first,
// matching cart.c's RFOR (reverse for) loop over the binary[] array.
func assembleBinary(cart *Cartridge, chunks [][]byte) {
	var out []byte
	for i := len(chunks) - 1; i >= 0; i-- {
		if chunks[i] != nil {
			out = append(out, chunks[i]...)
		}
	}
	cart.Binary = out
}

// assembleCode concatenates per-bank CODE chunks highest-bank-first, same
// ordering rule as assembleBinary. Skipped if a CHUNK_CODE_ZIP chunk
// already populated cart.Code.
func assembleCode(cart *Cartridge, chunks [][]byte) {
	var out []byte
	for i := len(chunks) - 1; i >= 0; i-- {
		if chunks[i] != nil {
			out = append(out, chunks[i]...)
		}
	}
	cart.Code = string(out)
}

// convertDeprecatedVolumeCommand mirrors cart.c's deprecated-pattern
// workaround: an old-format row with a note but no command gets its bare
// volume param promoted into an explicit volume command, inverted
// (MAX_VOLUME - param) the way the old editor stored it.
func convertDeprecatedVolumeCommand(b *Bank) {
	const musicCmdEmpty = 0
	const musicCmdVolume = 1
	for p := range b.Patterns {
		for r := range b.Patterns[p].Rows {
			row := &b.Patterns[p].Rows[r]
			if row.Note >= ram.NoteStart && row.Command == musicCmdEmpty {
				row.Command = musicCmdVolume
				inverted := uint8(ram.MaxVolume) - row.Param
				row.Param = inverted
				row.Volume = inverted
			}
		}
	}
}
