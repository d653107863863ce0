package bitpack

import "testing"

// TestNibbleRoundTrip checks property 1 from spec.md §8: poke4 then peek4
// returns the written value, and the sibling nibble is untouched.
func TestNibbleRoundTrip(t *testing.T) {
	buf := make([]uint8, 16)
	for i := range buf {
		buf[i] = 0xFF
	}

	for idx := 0; idx < 32; idx++ {
		for v := uint8(0); v <= 15; v++ {
			siblingIdx := idx ^ 1
			before := Peek4(buf, siblingIdx)

			Poke4(buf, idx, v)

			if got := Peek4(buf, idx); got != v {
				t.Fatalf("Peek4(%d) = %d, want %d", idx, got, v)
			}
			if got := Peek4(buf, siblingIdx); got != before {
				t.Fatalf("sibling nibble at %d changed: got %d, want %d", siblingIdx, got, before)
			}
		}
	}
}

func TestPeek2Poke2(t *testing.T) {
	buf := make([]uint8, 4)
	for idx := 0; idx < 16; idx++ {
		Poke2(buf, idx, uint8(idx%4))
	}
	for idx := 0; idx < 16; idx++ {
		if got := Peek2(buf, idx); got != uint8(idx%4) {
			t.Fatalf("Peek2(%d) = %d, want %d", idx, got, idx%4)
		}
	}
}

func TestPeek1Poke1(t *testing.T) {
	buf := make([]uint8, 2)
	Poke1(buf, 0, 1)
	Poke1(buf, 3, 1)
	Poke1(buf, 15, 1)

	for _, idx := range []int{0, 3, 15} {
		if got := Peek1(buf, idx); got != 1 {
			t.Fatalf("Peek1(%d) = %d, want 1", idx, got)
		}
	}
	if got := Peek1(buf, 1); got != 0 {
		t.Fatalf("Peek1(1) = %d, want 0", got)
	}
}

func TestPeekPokeBitsDispatch(t *testing.T) {
	buf := make([]uint8, 8)
	PokeBits(buf, 4, 3, 9)
	if got := PeekBits(buf, 4, 3); got != 9 {
		t.Fatalf("PeekBits(4,3) = %d, want 9", got)
	}
	PokeBits(buf, 8, 2, 200)
	if got := PeekBits(buf, 8, 2); got != 200 {
		t.Fatalf("PeekBits(8,2) = %d, want 200", got)
	}
}
