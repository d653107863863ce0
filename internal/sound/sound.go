package sound

import "ticforge/internal/ram"

// Synth ties together the two SFX channel arrays (direct sfx() calls and
// the music tracker), the per-hardware-channel synthesis state, and the
// stereo blip buffers, implementing the tick_start/tick_end split
// original_source/src/tic.c uses: registers are rebuilt from the SFX/
// music state once per tick (Tick), then rendered to PCM once the rest of
// the tick's drawing is done (Render).
type Synth struct {
	direct [ram.SoundChannels]playerChannel
	music  musicState
	regs   [ram.SoundChannels]registerState
	left   blipBuffer
	right  blipBuffer
}

// New returns a silent Synth with both channel arrays idle.
func New() *Synth {
	s := &Synth{music: newMusicState()}
	for i := range s.direct {
		s.direct[i] = newPlayerChannel()
	}
	return s
}

// Tick rebuilds r.SoundRegs for this frame: music plays first, then any
// active direct sfx() channel overwrites its hardware channel, matching
// spec.md §4.3's "a direct sfx() call on a channel stops any music on
// that channel for the duration" priority rule (it falls out naturally
// from write order, not a special case).
func (s *Synth) Tick(r *ram.RAM, tracks *[ram.MusicTracks]ram.Track, patterns *[ram.MusicPatterns]ram.Pattern, waveforms *[ram.EnvelopesCount][ram.WaveformBytes]uint8, samples *[ram.SFXCount]ram.SFXEntry) {
	for i := range r.SoundRegs {
		r.SoundRegs[i] = ram.SoundRegister{}
	}

	s.music.step(tracks, patterns, &r.SoundRegs, waveforms, samples)

	for ch := range s.direct {
		c := &s.direct[ch]
		if c.index < 0 {
			continue
		}
		c.step(&samples[c.index], waveforms, &r.SoundRegs[ch])
	}
}

// Render synthesizes one tick's worth of stereo PCM (sampleRate/60 frames
// per channel) from the current SoundRegs, advancing each hardware
// channel's phase/LFSR state and writing band-limited samples into out
// (interleaved left/right int16).
func (s *Synth) Render(r *ram.RAM, samplesPerTick int, out []int16) {
	for ch := range r.SoundRegs {
		reg := &r.SoundRegs[ch]
		s.regs[ch].run(reg, &s.left, &s.right, reg.StereoLeft, reg.StereoRight)
	}

	left := make([]int16, samplesPerTick)
	right := make([]int16, samplesPerTick)
	s.left.readSamples(left, samplesPerTick)
	s.right.readSamples(right, samplesPerTick)

	for i := 0; i < samplesPerTick && i*2+1 < len(out); i++ {
		out[i*2] = left[i]
		out[i*2+1] = right[i]
	}
}

// Sfx starts sfx index on channel ch: note/octave combine into the
// played frequency, duration is in ticks (-1 = infinite), speed overrides
// the sfx entry's own default speed when in range (-4..3).
func (s *Synth) Sfx(entries *[ram.SFXCount]ram.SFXEntry, channel, index, note, octave, duration int, volume uint8, speed int8) {
	if channel < 0 || channel >= ram.SoundChannels {
		return
	}
	entrySpeed := int8(0)
	if index >= 0 && index < len(entries) {
		entrySpeed = entries[index].Speed
	}
	s.direct[channel].trigger(index, note, octave, duration, volume, speed, entrySpeed)
}

// SfxStop silences channel ch's direct sfx playback.
func (s *Synth) SfxStop(channel int) {
	if channel < 0 || channel >= ram.SoundChannels {
		return
	}
	s.direct[channel].stop()
}

// Music starts track playing at frame/row (row<0 starts at the top);
// track<0 stops the tracker.
func (s *Synth) Music(tracks *[ram.MusicTracks]ram.Track, track, frame, row int, loop bool) {
	s.music.start(tracks, track, frame, row, loop, false)
}

// MusicFrame behaves like Music but plays only a single frame, looping it
// in place when loop is set instead of advancing through the song.
func (s *Synth) MusicFrame(tracks *[ram.MusicTracks]ram.Track, track, frame, row int, loop bool) {
	s.music.start(tracks, track, frame, row, loop, true)
}

// MusicStop halts tracker playback.
func (s *Synth) MusicStop(tracks *[ram.MusicTracks]ram.Track) {
	s.music.start(tracks, -1, 0, -1, false, false)
}

// SfxPos reports the 4-lane cursor position of channel ch's direct sfx
// playback, for scripts inspecting SFX progress (spec.md §4.3).
func (s *Synth) SfxPos(channel int) (wave, volume, arpeggio, pitch int) {
	if channel < 0 || channel >= ram.SoundChannels {
		return -1, -1, -1, -1
	}
	p := s.direct[channel].pos
	return p.wave, p.volume, p.arpeggio, p.pitch
}

// ChannelDuration reports the remaining tick count on channel ch's
// direct sfx playback (0 once it has stopped, -1 if infinite).
func (s *Synth) ChannelDuration(channel int) int {
	if channel < 0 || channel >= ram.SoundChannels || s.direct[channel].index < 0 {
		return 0
	}
	return s.direct[channel].duration
}
