package cart

import "ticforge/internal/ram"

// This file defines the explicit byte layouts used to serialize the typed
// sound/music tables (internal/ram.SFXEntry, ram.Pattern, ram.Track) into
// and out of cartridge chunks. The original engine reinterprets C bitfield
// structs directly as bytes; Go has no portable equivalent, so each table
// gets a named encode/decode pair instead.

// Loop region start/size range over SFXTicks (0..30), which needs 5 bits —
// too wide for a nibble pair — so each region gets a full byte per field
// rather than the original's packed bitfield.
const sfxEntrySize = ram.SFXTicks*2 + 3*2 + 1 + 1 // ticks + 3 loop regions (2 bytes each) + header + speed

func encodeSFXEntry(e *ram.SFXEntry) []byte {
	buf := make([]byte, sfxEntrySize)
	for i, tick := range e.Ticks {
		buf[i*2] = tick.Wave&0x0F | (tick.Volume&0x0F)<<4
		buf[i*2+1] = tick.Arpeggio&0x0F | uint8(tick.Pitch&0x0F)<<4
	}
	off := ram.SFXTicks * 2
	buf[off], buf[off+1] = e.WaveLoop.Start, e.WaveLoop.Size
	buf[off+2], buf[off+3] = e.VolumeLoop.Start, e.VolumeLoop.Size
	buf[off+4], buf[off+5] = e.ArpeggioLoop.Start, e.ArpeggioLoop.Size
	off += 6

	header := e.Octave & 0x07
	if e.Pitch16x {
		header |= 1 << 3
	}
	if e.Reverse {
		header |= 1 << 4
	}
	if e.StereoLeft {
		header |= 1 << 5
	}
	if e.StereoRight {
		header |= 1 << 6
	}
	buf[off] = header
	buf[off+1] = uint8(e.Speed)
	return buf
}

func decodeSFXEntry(e *ram.SFXEntry, buf []byte) {
	*e = ram.SFXEntry{}
	n := len(buf)
	for i := range e.Ticks {
		lo, hi := i*2, i*2+1
		if lo >= n {
			break
		}
		e.Ticks[i].Wave = buf[lo] & 0x0F
		e.Ticks[i].Volume = buf[lo] >> 4
		if hi < n {
			e.Ticks[i].Arpeggio = buf[hi] & 0x0F
			e.Ticks[i].Pitch = int8(buf[hi]>>4) << 4 >> 4 // sign-extend 4-bit field
		}
	}
	// Save trims trailing zero bytes, so the last entry may end early;
	// missing bytes read as zero.
	at := func(i int) uint8 {
		if i < n {
			return buf[i]
		}
		return 0
	}
	off := ram.SFXTicks * 2
	e.WaveLoop = ram.LoopRegion{Start: at(off), Size: at(off + 1)}
	e.VolumeLoop = ram.LoopRegion{Start: at(off + 2), Size: at(off + 3)}
	e.ArpeggioLoop = ram.LoopRegion{Start: at(off + 4), Size: at(off + 5)}
	off += 6

	header := at(off)
	e.Octave = header & 0x07
	e.Pitch16x = header&(1<<3) != 0
	e.Reverse = header&(1<<4) != 0
	e.StereoLeft = header&(1<<5) != 0
	e.StereoRight = header&(1<<6) != 0
	e.Speed = int8(at(off + 1))
}

func encodeSamples(b *Bank) []byte {
	buf := make([]byte, 0, ram.SFXCount*sfxEntrySize)
	for i := range b.Samples {
		buf = append(buf, encodeSFXEntry(&b.Samples[i])...)
	}
	return buf
}

func decodeSamples(b *Bank, payload []byte) {
	for i := range b.Samples {
		start := i * sfxEntrySize
		if start >= len(payload) {
			break
		}
		end := start + sfxEntrySize
		if end > len(payload) {
			end = len(payload)
		}
		decodeSFXEntry(&b.Samples[i], payload[start:end])
	}
}

const rowSize = 6 // Note, Octave, Command, Param, SfxID, Volume

func encodePatterns(b *Bank) []byte {
	buf := make([]byte, 0, ram.MusicPatterns*ram.MusicPatternRows*rowSize)
	for p := range b.Patterns {
		for _, row := range b.Patterns[p].Rows {
			buf = append(buf, row.Note, row.Octave, row.Command, row.Param, row.SfxID, row.Volume)
		}
	}
	return buf
}

func decodePatterns(b *Bank, payload []byte) {
	pos := 0
	for p := range b.Patterns {
		for r := range b.Patterns[p].Rows {
			if pos+rowSize > len(payload) {
				return
			}
			b.Patterns[p].Rows[r] = ram.Row{
				Note:    payload[pos],
				Octave:  payload[pos+1],
				Command: payload[pos+2],
				Param:   payload[pos+3],
				SfxID:   payload[pos+4],
				Volume:  payload[pos+5],
			}
			pos += rowSize
		}
	}
}

const trackHeaderSize = 4 // Tempo (2 bytes) + Speed (1 byte) + Rows (1 byte)

func encodeTracks(b *Bank) []byte {
	buf := make([]byte, 0, ram.MusicTracks*(trackHeaderSize+ram.MusicFrames*ram.SoundChannels))
	for t := range b.Tracks {
		tr := &b.Tracks[t]
		buf = append(buf, uint8(tr.Tempo), uint8(tr.Tempo>>8), uint8(tr.Speed), uint8(tr.Rows))
		for _, f := range tr.Frames {
			buf = append(buf, f.PatternIndex[:]...)
		}
	}
	return buf
}

func decodeTracks(b *Bank, payload []byte) {
	pos := 0
	trackSize := trackHeaderSize + ram.MusicFrames*ram.SoundChannels
	for t := range b.Tracks {
		if pos+trackSize > len(payload) {
			return
		}
		tr := &b.Tracks[t]
		tr.Tempo = int(payload[pos]) | int(payload[pos+1])<<8
		tr.Speed = int(int8(payload[pos+2]))
		tr.Rows = int(payload[pos+3])
		pos += trackHeaderSize
		for f := range tr.Frames {
			copy(tr.Frames[f].PatternIndex[:], payload[pos:pos+ram.SoundChannels])
			pos += ram.SoundChannels
		}
	}
}
