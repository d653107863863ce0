package sound

import "testing"

func TestNoteFreqRoundTrip(t *testing.T) {
	for note := 0; note < 96; note++ {
		freq := NoteToFreq(note)
		got := FreqToNote(freq)
		diff := got - note
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 {
			t.Fatalf("note %d -> freq %.4f -> note %d, want round trip within 0.5 semitone", note, freq, got)
		}
	}
}

func TestA4Is440Hz(t *testing.T) {
	if got := NoteToFreq(baseNotePos); got != baseNoteFreq {
		t.Fatalf("NoteToFreq(A4) = %v, want 440", got)
	}
	if got := FreqToNote(440.0); got != baseNotePos {
		t.Fatalf("FreqToNote(440) = %d, want %d", got, baseNotePos)
	}
}

func TestParseNoteName(t *testing.T) {
	cases := []struct {
		s         string
		note, oct int
		ok        bool
	}{
		{"C-4", 0, 4, true},
		{"A-4", 9, 4, true},
		{"C#4", 1, 4, true},
		{"G-0", 7, 0, true},
		{"B-7", 11, 7, true},
		{"H-4", 0, 0, false},
		{"C?4", 0, 0, false},
		{"C-x", 0, 0, false},
		{"C4", 0, 0, false},
	}
	for _, c := range cases {
		note, oct, ok := ParseNoteName(c.s)
		if ok != c.ok {
			t.Fatalf("ParseNoteName(%q) ok = %v, want %v", c.s, ok, c.ok)
		}
		if !ok {
			continue
		}
		if note != c.note || oct != c.oct {
			t.Fatalf("ParseNoteName(%q) = (%d, %d), want (%d, %d)", c.s, note, oct, c.note, c.oct)
		}
	}
}
