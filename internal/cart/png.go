package cart

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const cartChunkTag = "caRt"

// unwrapIfPNG detects TIC-80's "shareable cartridge" format — a cover-art
// PNG carrying the cart's chunk data, deflate-compressed, inside a private
// ancillary "caRt" chunk — and returns the decompressed cart bytes. If
// data isn't a PNG at all, it is returned unchanged: Go's image/png only
// decodes pixels, so the ancillary-chunk scan is hand-rolled, the way
// original_source/src/cart.c walks PNG chunks manually in C.
func unwrapIfPNG(data []byte) ([]byte, error) {
	if len(data) < 8 || !bytes.Equal(data[:8], pngSignature) {
		return data, nil
	}

	pos := 8
	for pos+8 <= len(data) {
		length := binary.BigEndian.Uint32(data[pos : pos+4])
		typeStart := pos + 4
		if typeStart+4 > len(data) {
			break
		}
		chunkType := string(data[typeStart : typeStart+4])
		payloadStart := typeStart + 4
		payloadEnd := payloadStart + int(length)
		if payloadEnd > len(data) {
			break
		}

		if chunkType == cartChunkTag && length > 0 {
			return inflate(data[payloadStart:payloadEnd])
		}

		pos = payloadEnd + 4 // skip payload + trailing CRC32
	}

	return nil, fmt.Errorf("png cartridge has no %q chunk", cartChunkTag)
}

// wrapPNG embeds the given cart bytes as a deflate-compressed "caRt"
// ancillary chunk inside an existing PNG cover image, so the result is
// both a valid viewable image and a loadable cartridge.
func wrapPNG(coverPNG []byte, cartBytes []byte) ([]byte, error) {
	if len(coverPNG) < 8 || !bytes.Equal(coverPNG[:8], pngSignature) {
		return nil, fmt.Errorf("cover image is not a PNG")
	}

	compressed, err := deflate(cartBytes)
	if err != nil {
		return nil, err
	}

	chunk := encodePNGChunk(cartChunkTag, compressed)

	// Insert the new chunk right before IEND so existing viewers that stop
	// at IEND still see a well-formed image.
	iendOffset := bytes.LastIndex(coverPNG, []byte("IEND"))
	if iendOffset < 4 {
		return nil, fmt.Errorf("cover image has no IEND chunk")
	}
	insertAt := iendOffset - 4 // back up over IEND's length field

	out := make([]byte, 0, len(coverPNG)+len(chunk))
	out = append(out, coverPNG[:insertAt]...)
	out = append(out, chunk...)
	out = append(out, coverPNG[insertAt:]...)
	return out, nil
}

func encodePNGChunk(chunkType string, payload []byte) []byte {
	buf := make([]byte, 0, 12+len(payload))
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	buf = append(buf, lenBuf[:]...)

	typeAndPayload := append([]byte(chunkType), payload...)
	buf = append(buf, typeAndPayload...)

	crc := crc32.ChecksumIEEE(typeAndPayload)
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc)
	buf = append(buf, crcBuf[:]...)
	return buf
}

func inflate(compressed []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inflate cart data: %w", err)
	}
	return out, nil
}

func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("deflate cart data: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("deflate cart data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate cart data: %w", err)
	}
	return buf.Bytes(), nil
}
