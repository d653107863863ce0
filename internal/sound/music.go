package sound

import "ticforge/internal/ram"

// playMode mirrors the tracker's three playback states.
type playMode int

const (
	musicStop playMode = iota
	musicPlay
	musicPlayFrame
)

// musicState is the tracker's transport: which track/frame/row is
// playing, the tick counter the row-advance formula consumes, and the
// four music-driven hardware channels (spec.md §4.3's second channel
// array, distinct from the direct-sfx() array).
type musicState struct {
	mode     playMode
	track    int
	frame    int
	row      int
	loop     bool
	ticks    int
	channels [ram.SoundChannels]playerChannel
}

func newMusicState() musicState {
	m := musicState{track: -1, row: -1}
	for i := range m.channels {
		m.channels[i] = newPlayerChannel()
	}
	return m
}

func (m *musicState) resetChannels() {
	for i := range m.channels {
		m.channels[i].stop()
	}
}

// ticksForRow inverts Track.RowsPerTick to find the tick count the
// row-advance counter should start at so playback begins at row.
func ticksForRow(track *ram.Track, row int) int {
	if row < 0 {
		return 0
	}
	rpt := track.RowsPerTick()
	if rpt <= 0 {
		return 0
	}
	return int(float64(row) / rpt)
}

// start begins playback of trackIdx at frame/row (row < 0 starts at the
// beginning), or stops the tracker entirely when trackIdx < 0.
func (m *musicState) start(tracks *[ram.MusicTracks]ram.Track, trackIdx, frame, row int, loop bool, asFrame bool) {
	m.track = trackIdx
	if trackIdx < 0 {
		m.mode = musicStop
		m.resetChannels()
		return
	}

	m.row = row
	if frame < 0 {
		frame = 0
	}
	m.frame = frame
	m.loop = loop
	if asFrame {
		m.mode = musicPlayFrame
	} else {
		m.mode = musicPlay
	}

	m.ticks = ticksForRow(&tracks[trackIdx], row)
}

func (m *musicState) stop() {
	m.track = -1
	m.mode = musicStop
	m.resetChannels()
}

// step is one tick of the tracker transport: it advances the row counter,
// triggers note-on/note-off on row transitions, handles frame/track
// advance and looping, then steps every active music channel's SFX
// cursor into regs. It mirrors original_source/src/tic.c's processMusic.
func (m *musicState) step(tracks *[ram.MusicTracks]ram.Track, patterns *[ram.MusicPatterns]ram.Pattern, regs *[ram.SoundChannels]ram.SoundRegister, waveforms *[ram.EnvelopesCount][ram.WaveformBytes]uint8, samples *[ram.SFXCount]ram.SFXEntry) {
	if m.mode == musicStop || m.track < 0 {
		return
	}

	track := &tracks[m.track]
	row := int(float64(m.ticks) * track.RowsPerTick())
	m.ticks++

	rowLimit := track.RowLimit()
	if row >= rowLimit {
		row = 0
		m.ticks = 0
		m.resetChannels()

		switch m.mode {
		case musicPlay:
			m.frame++
			if m.frame >= ram.MusicFrames {
				if m.loop {
					m.frame = 0
				} else {
					m.stop()
					return
				}
			} else if allPatternsEmpty(track, m.frame) {
				if m.loop {
					m.frame = 0
				} else {
					m.stop()
					return
				}
			}
		case musicPlayFrame:
			if !m.loop {
				m.stop()
				return
			}
		}
	}

	if row != m.row && row < rowLimit {
		m.row = row
		for ch := 0; ch < ram.SoundChannels; ch++ {
			patternID := track.Frames[m.frame].PatternIndex[ch]
			if patternID == 0 {
				continue
			}
			pattern := &patterns[patternID-1]
			r := pattern.Rows[m.row]

			if r.Note <= ram.NoteNone {
				continue
			}

			m.channels[ch].stop()
			if r.Note >= ram.NoteStart {
				note := int(r.Note) - ram.NoteStart
				volume := ram.MaxVolume - int(r.Volume)
				m.channels[ch].trigger(int(r.SfxID), note, int(r.Octave), -1, uint8(volume), 0, 0)
			}
		}
	}

	for ch := 0; ch < ram.SoundChannels; ch++ {
		c := &m.channels[ch]
		if c.index < 0 {
			continue
		}
		c.step(&samples[c.index], waveforms, &regs[ch])
	}
}

func allPatternsEmpty(track *ram.Track, frame int) bool {
	for _, id := range track.Frames[frame].PatternIndex {
		if id != 0 {
			return false
		}
	}
	return true
}
