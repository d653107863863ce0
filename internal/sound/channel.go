package sound

import "ticforge/internal/ram"

// envelopeRate is the clock-tick rate an envelope's 32-step phase
// advances at, derived the same way original_source/src/tic.c derives its
// Rate enum: clockRate * envelopeFreqScale / EnvelopeValues.
const envelopeFreqScale = 2

const envelopeRate = clockRate * envelopeFreqScale / ram.EnvelopeValues

const (
	minPeriod = 10
	maxPeriod = 4096
)

// periodForEnvelope returns how many clock ticks one envelope phase step
// lasts at the given register frequency.
func periodForEnvelope(freq uint16) int {
	if freq == 0 {
		return maxPeriod
	}
	period := int(envelopeRate/(int(freq)*envelopeFreqScale) - 1)
	return clampPeriod(period)
}

// periodForNoise returns how many clock ticks one LFSR step lasts.
func periodForNoise(freq uint16) int {
	if freq == 0 {
		return maxPeriod
	}
	period := int(envelopeRate/int(freq) - 1)
	return clampPeriod(period)
}

func clampPeriod(p int) int {
	if p < minPeriod {
		return minPeriod
	}
	if p > maxPeriod {
		return maxPeriod
	}
	return p
}

// getAmp scales a raw 0..15 waveform sample by channel volume into the
// delta-buffer amplitude range, split evenly across the four hardware
// channels: one channel peaks at 16380 and four together at 65520, which
// clampSample saturates at the int16 limit.
func getAmp(volume uint8, sample uint8) int32 {
	const maxAmp = 65535 / (ram.MaxVolume * ram.SoundChannels)
	return int32(sample) * maxAmp * int32(volume) / ram.MaxVolume
}

// registerState is the per-hardware-channel synthesis state carried
// across ticks: the fractional clock-time remainder, the envelope phase
// (or LFSR state for noise), and the last emitted amplitude (so only the
// delta needs to reach the blip buffer).
type registerState struct {
	time  int
	phase uint16
	amp   int32
}

// run advances one hardware channel's register through one VM tick's
// worth of clock ticks, pushing amplitude deltas into the stereo blip
// buffers it is routed to.
func (s *registerState) run(reg *ram.SoundRegister, left, right *blipBuffer, toLeft, toRight bool) {
	noise := isNoiseWaveform(reg.Waveform)
	for s.time < clocksPerTick {
		var amp int32
		var period int
		if noise {
			if s.phase == 0 {
				s.phase = 1
			}
			feedback := s.phase & 1
			s.phase = (feedback * (0b11 << 13)) ^ (s.phase >> 1)
			bit := uint8(0)
			if s.phase&1 != 0 {
				bit = ram.MaxVolume
			}
			amp = getAmp(reg.Volume, bit)
			period = periodForNoise(reg.Freq)
		} else {
			s.phase = (s.phase + 1) % ram.EnvelopeValues
			amp = getAmp(reg.Volume, envelopeSample(reg.Waveform, int(s.phase)))
			period = periodForEnvelope(reg.Freq)
		}

		delta := amp - s.amp
		s.amp = amp
		if delta != 0 {
			if toLeft {
				left.addDelta(s.time, delta)
			}
			if toRight {
				right.addDelta(s.time, delta)
			}
		}
		s.time += period
	}
	s.time -= clocksPerTick
}
