package cart

import "ticforge/internal/ram"

// Save encodes a cartridge back into its chunk-based binary form. Mirrors
// original_source/src/cart.c's tic_cart_save: each bank either gets a
// single zero-length CHUNK_DEFAULT marker (palette and waveforms are
// unmodified from the engine defaults) or explicit PALETTE/WAVEFORM
// chunks, followed by the TILES/SPRITES/MAP/SAMPLES/PATTERNS/MUSIC/FLAGS/
// SCREEN chunks, each trimmed of trailing zero bytes and left out when
// nothing remains after trimming.
// CODE and BINARY are split back into per-bank chunks and written
// highest-bank-first, matching the load side's reverse-order assembly.
func Save(cart *Cartridge) []byte {
	var out []byte

	for i := range cart.Banks {
		b := &cart.Banks[i]

		if isDefaultBank(b) {
			out = append(out, saveFixedChunk(ChunkDefault, nil, i)...)
		} else {
			out = append(out, saveChunk(ChunkPalette, b.Palette[:], i)...)
			out = append(out, saveChunk(ChunkWaveform, flattenWaveformBytes(b), i)...)
		}

		out = append(out, saveChunk(ChunkTiles, b.Tiles[:], i)...)
		out = append(out, saveChunk(ChunkSprites, b.Sprites[:], i)...)
		out = append(out, saveChunk(ChunkMap, b.Map[:], i)...)
		out = append(out, saveChunk(ChunkSamples, encodeSamples(b), i)...)
		out = append(out, saveChunk(ChunkPatterns, encodePatterns(b), i)...)
		out = append(out, saveChunk(ChunkMusic, encodeTracks(b), i)...)
		out = append(out, saveChunk(ChunkFlags, b.Flags[:], i)...)
		out = append(out, saveChunk(ChunkScreen, b.Screen[:], i)...)
	}

	out = append(out, saveBankedBlob(ChunkBinary, cart.Binary)...)
	out = append(out, saveBankedBlob(ChunkCode, []byte(cart.Code))...)

	if cart.Lang != "" {
		out = append(out, saveFixedChunk(ChunkLang, []byte(cart.Lang), 0)...)
	}

	return out
}

func flattenWaveformBytes(b *Bank) []byte {
	out := make([]byte, ram.EnvelopesCount*ram.WaveformBytes)
	for i := range b.Waveforms {
		copy(out[i*ram.WaveformBytes:], b.Waveforms[i][:])
	}
	return out
}

// calcTrimmedSize mirrors cart.c's calcBufferSize: trailing zero bytes are
// not written, since a reload zero-fills the destination first.
func calcTrimmedSize(buf []byte) int {
	n := len(buf)
	for n > 0 && buf[n-1] == 0 {
		n--
	}
	return n
}

func saveChunk(t ChunkType, from []byte, bank int) []byte {
	return saveFixedChunk(t, from[:calcTrimmedSize(from)], bank)
}

func saveFixedChunk(t ChunkType, payload []byte, bank int) []byte {
	if len(payload) == 0 && t != ChunkDefault {
		return nil
	}
	h := chunkHeader{Type: t, Bank: bank, Size: len(payload)}
	hdr := h.encode()
	out := make([]byte, 0, len(hdr)+len(payload))
	out = append(out, hdr[:]...)
	out = append(out, payload...)
	return out
}

// saveBankedBlob splits a cross-bank blob (CODE or BINARY) back into
// per-bank chunks of at most bankSize bytes, written highest-bank-first:
// the first segment goes to the highest bank, so Load's
// assembleCode/assembleBinary, which concatenate highest bank first,
// restore the original order.
func saveBankedBlob(t ChunkType, blob []byte) []byte {
	if len(blob) == 0 {
		return nil
	}

	numBanks := (len(blob) + bankSize - 1) / bankSize
	var out []byte
	for seg := 0; seg < numBanks; seg++ {
		start := seg * bankSize
		end := start + bankSize
		if end > len(blob) {
			end = len(blob)
		}
		out = append(out, saveFixedChunk(t, blob[start:end], numBanks-1-seg)...)
	}
	return out
}
