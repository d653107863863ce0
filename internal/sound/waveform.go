package sound

import "ticforge/internal/ram"

// isNoiseWaveform reports whether a register's waveform is the all-zero
// sentinel that selects the noise generator instead of an envelope, per
// spec.md §4.3: "Noise is signaled by an all-zero waveform."
func isNoiseWaveform(waveform [ram.WaveformBytes]uint8) bool {
	for _, b := range waveform {
		if b != 0 {
			return false
		}
	}
	return true
}

// envelopeSample reads the unpacked sample at phase (0..31) from a
// 16-byte packed waveform, unpacking its 32 nibbles to 32 samples by shift
// (low nibble then high nibble of each byte), per spec.md §4.3.
func envelopeSample(waveform [ram.WaveformBytes]uint8, phase int) uint8 {
	phase &= ram.EnvelopeValues - 1
	b := waveform[phase/2]
	if phase%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}
