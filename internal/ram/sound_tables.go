package ram

// SFXTick is one of the 30 ticks in an SFX envelope: the four lanes the
// cursor walks across — waveform, volume, arpeggio and pitch — exactly as
// laid out by original_source/src/tic.h's sfx tick bitfield.
type SFXTick struct {
	Wave     uint8 // envelope index, 0..EnvelopesCount-1
	Volume   uint8 // 0..MaxVolume
	Arpeggio uint8 // semitone offset, 0..15
	Pitch    int8  // signed pitch bend
}

// LoopRegion marks a [Start, Start+Size) span of ticks that repeats once
// the cursor reaches its end, instead of the SFX ending.
type LoopRegion struct {
	Start uint8
	Size  uint8
}

// SFXEntry is one of the 64 sound-effect slots: a 30-tick envelope plus
// loop regions for each lane and the header fields (octave, speed,
// stereo pan, reverse playback, extended pitch range) from tic.h's sfx
// bitfield struct.
type SFXEntry struct {
	Ticks [SFXTicks]SFXTick

	WaveLoop     LoopRegion
	VolumeLoop   LoopRegion
	ArpeggioLoop LoopRegion

	Octave      uint8 // 0..Octaves-1
	Speed       int8  // signed tick-rate multiplier, 0 is normal speed
	Reverse     bool
	Pitch16x    bool
	StereoLeft  bool
	StereoRight bool
}

// Row is one channel's cell within a pattern: a note (or the NoteNone/
// NoteStop sentinels), its octave, the sfx slot it triggers, volume, and
// a tracker command/param pair for effects (slide, arpeggio, vibrato,
// volume ramp, speed/tempo set — see DESIGN.md's Open Question decision
// on row effect semantics).
type Row struct {
	Note    uint8
	Octave  uint8
	Command uint8
	Param   uint8
	SfxID   uint8
	Volume  uint8
}

// Pattern is one of the 60 reusable note sequences, MusicPatternRows rows
// deep, played on a single channel.
type Pattern struct {
	Rows [MusicPatternRows]Row
}

// Frame assigns one pattern index per channel; a Track is a sequence of
// frames, i.e. the song's arrangement.
type Frame struct {
	PatternIndex [SoundChannels]uint8
}

// Track is one of the 8 song slots: an ordered list of frames, the
// tempo/speed pair that determines the row-advance rate (see
// RowsPerTick), and how many of a pattern's MusicPatternRows rows play
// before advancing to the next frame.
type Track struct {
	Frames [MusicFrames]Frame
	Tempo  int
	Speed  int
	Rows   int // 1..MusicPatternRows rows played per pattern before advancing
}

// RowLimit returns how many rows of this track's patterns play before
// the tracker advances to the next frame, defaulting to the full pattern
// length when unset.
func (t *Track) RowLimit() int {
	if t.Rows <= 0 || t.Rows > MusicPatternRows {
		return MusicPatternRows
	}
	return t.Rows
}

// RowsPerTick returns how many tracker rows the row counter advances per
// VM tick at this track's tempo and speed (see DESIGN.md's Open Question
// decision on the row-advance formula).
func (t *Track) RowsPerTick() float64 {
	tempo := t.Tempo
	if tempo <= 0 {
		tempo = DefaultTempo
	}
	speed := t.Speed
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return float64(tempo) / 60.0 * float64(NotesPerBeat) / float64(speed)
}
