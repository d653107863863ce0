package sound

import (
	"testing"

	"ticforge/internal/ram"
)

const samplesPerTickAt44100 = 735 // 44100Hz / 60fps

func sineEntry() ram.SFXEntry {
	e := ram.SFXEntry{}
	for i := range e.Ticks {
		e.Ticks[i].Wave = 0
		e.Ticks[i].Volume = 0 // 0 = loudest
	}
	return e
}

// Scenario: sfx(0, "C-4", 1, 0, 15, 0) with sfx 0 a non-flat, non-noise
// waveform renders one tick (735 stereo frames) containing non-zero
// samples, and leaves the channel's duration at 0 by tick-end. The
// waveform here has silent phases, so not every sample is non-zero.
func TestSynthOneTickSfxProducesAFullTickOfAudio(t *testing.T) {
	var samples [ram.SFXCount]ram.SFXEntry
	samples[0] = sineEntry()

	var waveforms [ram.EnvelopesCount][ram.WaveformBytes]uint8
	waveforms[0][0] = 0xFF
	waveforms[0][4] = 0x0F

	var tracks [ram.MusicTracks]ram.Track
	var patterns [ram.MusicPatterns]ram.Pattern
	r := ram.New()

	note, octave, ok := ParseNoteName("C-4")
	if !ok {
		t.Fatalf("ParseNoteName(C-4) failed to parse")
	}

	synth := New()
	synth.Sfx(&samples, 0, 0, note, octave, 1, ram.MaxVolume, 0)
	synth.Tick(r, &tracks, &patterns, &waveforms, &samples)

	out := make([]int16, samplesPerTickAt44100*2)
	synth.Render(r, samplesPerTickAt44100, out)

	nonZero := 0
	for i := 0; i < samplesPerTickAt44100; i++ {
		if out[i*2] != 0 || out[i*2+1] != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Fatalf("triggering a one-tick sfx should produce audible samples this tick")
	}

	if got := synth.ChannelDuration(0); got != 0 {
		t.Fatalf("channel duration at tick-end = %d, want 0", got)
	}
}

func TestSynthSfxStopSilencesChannel(t *testing.T) {
	var samples [ram.SFXCount]ram.SFXEntry
	samples[0] = sineEntry()
	var waveforms [ram.EnvelopesCount][ram.WaveformBytes]uint8
	waveforms[0][0] = 0xFF
	var tracks [ram.MusicTracks]ram.Track
	var patterns [ram.MusicPatterns]ram.Pattern
	r := ram.New()

	synth := New()
	synth.Sfx(&samples, 0, 0, 0, 4, -1, ram.MaxVolume, 0)
	synth.Tick(r, &tracks, &patterns, &waveforms, &samples)
	if synth.ChannelDuration(0) == 0 {
		t.Fatalf("infinite sfx should report a non-zero (or -1) duration while playing")
	}

	synth.SfxStop(0)
	synth.Tick(r, &tracks, &patterns, &waveforms, &samples)
	if synth.ChannelDuration(0) != 0 {
		t.Fatalf("SfxStop should silence the channel, duration = %d", synth.ChannelDuration(0))
	}
}

func TestSynthDirectSfxOverridesMusicOnSameChannel(t *testing.T) {
	var samples [ram.SFXCount]ram.SFXEntry
	samples[0] = sineEntry()
	samples[1] = sineEntry()
	var waveforms [ram.EnvelopesCount][ram.WaveformBytes]uint8
	waveforms[0][0] = 0xFF

	var tracks [ram.MusicTracks]ram.Track
	tracks[0] = ram.Track{Tempo: 150, Speed: 1, Rows: 64}
	tracks[0].Frames[0].PatternIndex[0] = 1
	var patterns [ram.MusicPatterns]ram.Pattern
	patterns[0].Rows[0] = ram.Row{Note: ram.NoteStart, Octave: 4, SfxID: 1, Volume: 0}

	r := ram.New()
	synth := New()
	synth.Music(&tracks, 0, 0, -1, false)
	synth.Sfx(&samples, 0, 0, 0, 4, -1, ram.MaxVolume, 0)
	synth.Tick(r, &tracks, &patterns, &waveforms, &samples)

	if r.SoundRegs[0].Volume == 0 {
		t.Fatalf("channel 0 should carry audible register state after the direct sfx call")
	}
}

func TestSynthSfxPosReportsIdleChannel(t *testing.T) {
	synth := New()
	wave, vol, arp, pitch := synth.SfxPos(0)
	if wave != -1 || vol != -1 || arp != -1 || pitch != -1 {
		t.Fatalf("idle channel SfxPos = (%d,%d,%d,%d), want all -1", wave, vol, arp, pitch)
	}
}

func TestSynthMusicStopHaltsTracker(t *testing.T) {
	var tracks [ram.MusicTracks]ram.Track
	tracks[0] = ram.Track{Tempo: 150, Speed: 6, Rows: 64}

	synth := New()
	synth.Music(&tracks, 0, 0, 0, false)
	synth.MusicStop(&tracks)

	if synth.music.mode != musicStop {
		t.Fatalf("MusicStop should put the tracker back into musicStop, got %v", synth.music.mode)
	}
}
