package sound

import (
	"testing"

	"ticforge/internal/ram"
)

func TestCalcLoopPosClampsWithoutLoop(t *testing.T) {
	if got := calcLoopPos(ram.LoopRegion{}, 5); got != 5 {
		t.Fatalf("no-loop position 5 = %d, want 5", got)
	}
	if got := calcLoopPos(ram.LoopRegion{}, ram.SFXTicks+10); got != ram.SFXTicks-1 {
		t.Fatalf("no-loop position past the end = %d, want clamp to %d", got, ram.SFXTicks-1)
	}
	if got := calcLoopPos(ram.LoopRegion{}, -1); got != 0 {
		t.Fatalf("no-loop negative position = %d, want clamp to 0", got)
	}
}

func TestCalcLoopPosCycles(t *testing.T) {
	loop := ram.LoopRegion{Start: 2, Size: 3} // covers ticks 2,3,4
	seen := map[int]bool{}
	for pos := 0; pos < 20; pos++ {
		got := calcLoopPos(loop, pos)
		if pos < int(loop.Start) {
			// Ticks before the loop region play straight through.
			if got != pos {
				t.Fatalf("calcLoopPos(%d) = %d, want %d before the loop start", pos, got, pos)
			}
			continue
		}
		if got < int(loop.Start) || got > int(loop.Start)+int(loop.Size)-1 {
			t.Fatalf("calcLoopPos(%d) = %d, out of loop range [%d,%d]", pos, got, loop.Start, int(loop.Start)+int(loop.Size)-1)
		}
		seen[got] = true
	}
	for i := 2; i <= 4; i++ {
		if !seen[i] {
			t.Fatalf("loop never visited tick %d", i)
		}
	}
}

func TestPlayerChannelTriggerAndStop(t *testing.T) {
	c := newPlayerChannel()
	c.trigger(0, 0, 4, 10, ram.MaxVolume, 0, 0)
	if c.index != 0 || c.duration != 10 {
		t.Fatalf("trigger did not set index/duration: %+v", c)
	}
	c.stop()
	if c.index != -1 {
		t.Fatalf("stop should clear index, got %d", c.index)
	}
}

func TestPlayerChannelStepOneTickDurationSoundsThenStops(t *testing.T) {
	c := newPlayerChannel()
	entry := ram.SFXEntry{}
	for i := range entry.Ticks {
		entry.Ticks[i].Wave = 0
		entry.Ticks[i].Volume = 0 // 0 = loudest, per MaxVolume-Volume scaling
	}
	var waveforms [ram.EnvelopesCount][ram.WaveformBytes]uint8
	waveforms[0][0] = 0xFF // non-zero envelope, not the noise sentinel

	c.trigger(0, 0, 4, 1, ram.MaxVolume, 0, 0)

	var reg ram.SoundRegister
	if ok := c.step(&entry, &waveforms, &reg); !ok {
		t.Fatalf("one-tick duration should still sound on the triggering tick")
	}
	if reg.Volume == 0 {
		t.Fatalf("register volume should be non-zero on the sounding tick, got %+v", reg)
	}
	if c.duration != 0 {
		t.Fatalf("duration after its one tick = %d, want 0", c.duration)
	}

	if ok := c.step(&entry, &waveforms, &reg); ok {
		t.Fatalf("channel should report stopped once duration has reached 0")
	}
	if c.index != -1 {
		t.Fatalf("channel index should reset to -1 once stopped, got %d", c.index)
	}
}

func TestPlayerChannelStepInfiniteDurationKeepsPlaying(t *testing.T) {
	c := newPlayerChannel()
	entry := ram.SFXEntry{}
	var waveforms [ram.EnvelopesCount][ram.WaveformBytes]uint8
	waveforms[0][0] = 0xFF

	c.trigger(0, 0, 4, -1, ram.MaxVolume, 0, 0)
	var reg ram.SoundRegister
	for i := 0; i < 50; i++ {
		if ok := c.step(&entry, &waveforms, &reg); !ok {
			t.Fatalf("infinite-duration channel stopped early at tick %d", i)
		}
	}
	if c.duration != -1 {
		t.Fatalf("infinite duration should never count down, got %d", c.duration)
	}
}

func TestPlayerChannelStereoDefaultsToBothWhenUnset(t *testing.T) {
	c := newPlayerChannel()
	entry := ram.SFXEntry{} // StereoLeft/StereoRight both false
	var waveforms [ram.EnvelopesCount][ram.WaveformBytes]uint8
	waveforms[0][0] = 0xFF

	c.trigger(0, 0, 4, -1, ram.MaxVolume, 0, 0)
	var reg ram.SoundRegister
	c.step(&entry, &waveforms, &reg)
	if !reg.StereoLeft || !reg.StereoRight {
		t.Fatalf("an sfx with no explicit pan should play on both channels, got %+v", reg)
	}
}

func TestPlayerChannelStereoRespectsExplicitPan(t *testing.T) {
	c := newPlayerChannel()
	entry := ram.SFXEntry{StereoLeft: true}
	var waveforms [ram.EnvelopesCount][ram.WaveformBytes]uint8
	waveforms[0][0] = 0xFF

	c.trigger(0, 0, 4, -1, ram.MaxVolume, 0, 0)
	var reg ram.SoundRegister
	c.step(&entry, &waveforms, &reg)
	if !reg.StereoLeft || reg.StereoRight {
		t.Fatalf("left-only pan should not also set StereoRight, got %+v", reg)
	}
}
