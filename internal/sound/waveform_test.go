package sound

import (
	"testing"

	"ticforge/internal/ram"
)

func TestIsNoiseWaveform(t *testing.T) {
	var zero [ram.WaveformBytes]uint8
	if !isNoiseWaveform(zero) {
		t.Fatalf("all-zero waveform should read as noise")
	}
	nonZero := zero
	nonZero[3] = 0x01
	if isNoiseWaveform(nonZero) {
		t.Fatalf("non-zero waveform should not read as noise")
	}
}

func TestEnvelopeSampleUnpacksNibbles(t *testing.T) {
	var wf [ram.WaveformBytes]uint8
	wf[0] = 0xA5 // low nibble 0x5, high nibble 0xA
	if got := envelopeSample(wf, 0); got != 0x5 {
		t.Fatalf("phase 0 = %x, want 5", got)
	}
	if got := envelopeSample(wf, 1); got != 0xA {
		t.Fatalf("phase 1 = %x, want a", got)
	}
	if got := envelopeSample(wf, ram.EnvelopeValues); got != 0x5 {
		t.Fatalf("phase wraps at EnvelopeValues, got %x", got)
	}
}
