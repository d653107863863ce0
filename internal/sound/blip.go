package sound

import "ticforge/internal/ram"

// clockRate is the virtual synthesis clock, matching
// original_source/src/tic.c's CLOCKRATE (TIC_FRAMERATE * 30000): period
// and phase math happens in clock ticks, not audio samples, so that
// waveform step edges land on a much finer grid than the output sample
// rate and can be band-limited before downsampling.
const clockRate = ram.FrameRate * 30000

// clocksPerTick is how many clock ticks elapse in one 1/60s VM tick.
const clocksPerTick = clockRate / ram.FrameRate

// blipKernel is a small binomial-window band-limited step kernel: each
// delta event is spread across a few neighboring clock slots instead of
// landing as a single sample-domain step, which is what keeps the later
// cumulative sum from producing harsh aliased edges at the downsample
// step. Per spec.md's Design Note, this is the "band-limited step table"
// the engine's blip buffer is built from.
var blipKernel = [5]int32{1, 4, 6, 4, 1} // sums to 16

const blipKernelHalf = len(blipKernel) / 2

// blipBuffer accumulates band-limited amplitude deltas across one VM
// tick's worth of clock ticks and reads them out as PCM samples, carrying
// the trailing amplitude level across tick boundaries so consecutive
// ticks splice without a discontinuity. It owns no state beyond its delta
// ring, per spec.md's Design Note on the blip buffer.
type blipBuffer struct {
	delta [clocksPerTick + len(blipKernel)]int32
	carry int32
}

// addDelta spreads a step change of amp at clock tick t (0..clocksPerTick)
// across the band-limited kernel. The integer rounding remainder goes to
// the center tap, so the taps sum to amp.
func (b *blipBuffer) addDelta(t int, amp int32) {
	if amp == 0 {
		return
	}
	spread := int32(0)
	for i, w := range blipKernel {
		part := amp * w / 16
		spread += part
		idx := t + i - blipKernelHalf
		if idx < 0 || idx >= len(b.delta) {
			continue
		}
		b.delta[idx] += part
	}
	if t >= 0 && t < len(b.delta) {
		b.delta[t] += amp - spread
	}
}

// readSamples downsamples the accumulated band-limited step function to n
// evenly spaced PCM samples, then clears the delta ring and carries the
// final amplitude level into the next tick.
func (b *blipBuffer) readSamples(out []int16, n int) {
	level := b.carry
	samplePos := 0
	nextBoundary := 0
	if n > 0 {
		nextBoundary = clocksPerTick / n
	}
	for clk := 0; clk < clocksPerTick; clk++ {
		level += b.delta[clk]
		for samplePos < n && clk >= nextBoundary {
			out[samplePos] = clampSample(level)
			samplePos++
			nextBoundary = (clocksPerTick * (samplePos + 1)) / n
		}
	}
	for samplePos < n {
		out[samplePos] = clampSample(level)
		samplePos++
	}
	b.carry = level
	for i := range b.delta {
		b.delta[i] = 0
	}
}

func clampSample(level int32) int16 {
	if level > 32767 {
		return 32767
	}
	if level < -32768 {
		return -32768
	}
	return int16(level)
}
