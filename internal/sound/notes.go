// Package sound implements the four-channel synthesizer described in
// spec.md §4.3: note/frequency conversion, the SFX envelope player, the
// music tracker, and the band-limited delta-buffer PCM renderer. It is
// grounded on the teacher's internal/apu.APU (phase-accumulator synthesis,
// per-channel register state) and on original_source/src/tic.c's sound
// engine (runEnvelope/runNoise/sfx/processMusic), which fixed-point
// synthesis alone does not model — the engine here works in fractional
// clock ticks because the reference engine's period/blip-buffer math is
// expressed in a 1.8MHz virtual clock, not in audio sample counts.
package sound

import "math"

const (
	baseNoteFreq = 440.0 // A4, Hz
	baseNotePos  = 49    // A4's index among the 96-note range
)

// NoteToFreq converts a note index, numbered so that A4 is baseNotePos
// (49) and C4 is 40, to its frequency in Hz under 12-tone equal
// temperament tuned to A4 = 440Hz. Index 0 is G#0 and C0 is -8; callers
// map (note, octave) onto this scale with pianoOffset.
func NoteToFreq(note int) float64 {
	return math.Pow(2, float64(note-baseNotePos)/12.0) * baseNoteFreq
}

// FreqToNote is NoteToFreq's inverse, rounding to the nearest note.
func FreqToNote(freq float64) int {
	if freq <= 0 {
		return 0
	}
	return int(math.Round(12.0*math.Log2(freq/baseNoteFreq))) + baseNotePos
}

var noteLetters = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParseNoteName parses a 3-character note name in the "C-4"/"C#4" form the
// scripting API's sfx() call takes: a letter A..G, then either '-' (natural)
// or '#' (sharp), then an octave digit 0..7. It returns the note's 0..11
// position within its octave, the octave itself, and whether s parsed.
func ParseNoteName(s string) (note, octave int, ok bool) {
	if len(s) != 3 {
		return 0, 0, false
	}
	base, found := noteLetters[s[0]]
	if !found {
		return 0, 0, false
	}
	switch s[1] {
	case '#':
		base++
	case '-':
	default:
		return 0, 0, false
	}
	if s[2] < '0' || s[2] > '7' {
		return 0, 0, false
	}
	return base, int(s[2] - '0'), true
}
