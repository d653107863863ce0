package sound

import "ticforge/internal/ram"

const pianoOffset = -8 // calibrates (note 0..11, octave 0..7) onto the 96-note range

// cursorPos is the 4-lane SFX cursor spec.md §4.3 describes: wave,
// volume, arpeggio and pitch each walk the 30-tick table independently
// (sharing position only when their loop regions happen to agree).
type cursorPos struct {
	wave, volume, arpeggio, pitch int
}

// playerChannel is one hardware channel's SFX playback state, shared by
// both the direct-sfx() array and the music-tracker array (spec.md
// §4.3's "two parallel channel arrays").
type playerChannel struct {
	index    int // sfx slot, -1 = not playing
	freq     int // base frequency in Hz, set at trigger time
	duration int // remaining ticks, -1 = infinite
	volume   uint8
	speed    int8
	tick     int
	pos      cursorPos
}

func newPlayerChannel() playerChannel {
	return playerChannel{index: -1, pos: cursorPos{-1, -1, -1, -1}, tick: -1}
}

func (c *playerChannel) reset() {
	c.pos = cursorPos{-1, -1, -1, -1}
	c.tick = -1
}

// trigger starts sfx index on this channel: note and octave combine with
// pianoOffset into an absolute note index, duration is in ticks (-1 =
// infinite), speed overrides the sfx entry's own default when it is
// within the valid -4..3 range.
func (c *playerChannel) trigger(index, note, octave, duration int, volume uint8, speed int8, entrySpeed int8) {
	c.volume = volume
	if speed < -4 || speed > 3 {
		speed = entrySpeed
	}
	c.speed = speed
	c.freq = int(NoteToFreq(note + octave*ram.NotesPerOctave + pianoOffset))
	c.duration = duration
	c.index = index
	c.reset()
}

// stop mirrors triggering sfx index -1: the channel silences immediately.
func (c *playerChannel) stop() {
	c.trigger(-1, 0, 0, -1, 0, 0, 0)
}

// calcLoopPos counts pos steps from tick 0, jumping back to loop.Start
// whenever it would pass the region's last tick (start+size-1), or clamps
// to the last tick when the lane has no loop region, exactly as
// original_source/src/tic.c's calcLoopPos.
func calcLoopPos(loop ram.LoopRegion, pos int) int {
	if loop.Size > 0 {
		offset := 0
		end := int(loop.Start) + int(loop.Size) - 1
		for i := 0; i < pos; i++ {
			if offset < end {
				offset++
			} else {
				offset = int(loop.Start)
			}
		}
		return offset
	}
	if pos >= ram.SFXTicks {
		return ram.SFXTicks - 1
	}
	if pos < 0 {
		return 0
	}
	return pos
}

// step advances the channel's cursor by one tick and, if the SFX is still
// sounding, writes the resulting frequency/volume/waveform into reg.
// Returns false when the channel just stopped (duration already reached
// zero on a prior tick, or no sfx was playing).
//
// duration counts down after the tick it reaches zero on still sounds:
// a one-tick trigger plays its one tick of audio, then reports
// duration == 0 at tick-end rather than going silent on the same tick it
// was triggered.
func (c *playerChannel) step(entry *ram.SFXEntry, waveforms *[ram.EnvelopesCount][ram.WaveformBytes]uint8, reg *ram.SoundRegister) bool {
	if c.index < 0 || c.duration == 0 {
		c.reset()
		c.index = -1
		return false
	}

	c.tick++
	pos := c.tick
	if c.speed != 0 {
		if c.speed > 0 {
			pos *= 1 + int(c.speed)
		} else {
			pos /= 1 - int(c.speed)
		}
	}

	c.pos.wave = calcLoopPos(entry.WaveLoop, pos)
	c.pos.volume = calcLoopPos(entry.VolumeLoop, pos)
	c.pos.arpeggio = calcLoopPos(entry.ArpeggioLoop, pos)
	c.pos.pitch = calcLoopPos(ram.LoopRegion{}, pos)

	if c.duration > 0 {
		c.duration--
	}

	volume := (ram.MaxVolume - int(entry.Ticks[c.pos.volume].Volume)) * int(c.volume) / ram.MaxVolume
	if volume <= 0 {
		return true
	}

	freq := c.freq
	arp := int(entry.Ticks[c.pos.arpeggio].Arpeggio)
	if entry.Reverse {
		arp = -arp
	}
	if arp != 0 {
		freq = int(NoteToFreq(FreqToNote(float64(freq)) + arp))
	}

	pitch := int(entry.Ticks[c.pos.pitch].Pitch)
	if entry.Pitch16x {
		pitch *= 16
	}
	freq += pitch

	reg.Freq = clampFreq(freq)
	reg.Volume = uint8(volume)
	reg.Waveform = waveforms[entry.Ticks[c.pos.wave].Wave%ram.EnvelopesCount]
	reg.StereoLeft = entry.StereoLeft
	reg.StereoRight = entry.StereoRight
	if !entry.StereoLeft && !entry.StereoRight {
		reg.StereoLeft, reg.StereoRight = true, true
	}

	return true
}

func clampFreq(freq int) uint16 {
	if freq < ram.FreqMin {
		return ram.FreqMin
	}
	if freq > ram.FreqMax {
		return ram.FreqMax
	}
	return uint16(freq)
}
