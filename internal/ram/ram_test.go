package ram

import "testing"

func TestPeekPokeScreen(t *testing.T) {
	r := New()
	r.Poke(0, 0xAB)
	if got := r.Peek(0); got != 0xAB {
		t.Fatalf("Peek(0) = %#x, want 0xAB", got)
	}
}

func TestPeekPokeNibbleAddressesScreen(t *testing.T) {
	r := New()
	r.PokeNibble(3, 0x7)
	if got := r.PeekNibble(3); got != 0x7 {
		t.Fatalf("PeekNibble(3) = %#x, want 0x7", got)
	}
	// Nibble 3 is the high nibble of byte 1; low nibble of byte 1 must be
	// untouched (property 1's sibling-preservation, lifted up through RAM).
	if got := r.PeekNibble(2); got != 0 {
		t.Fatalf("PeekNibble(2) = %#x, want 0 (sibling untouched)", got)
	}
}

func TestMemcpyOverlapForward(t *testing.T) {
	r := New()
	for i := 0; i < 8; i++ {
		r.Poke(i, uint8(i+1))
	}
	r.Memcpy(2, 0, 8)
	want := []uint8{1, 2, 1, 2, 3, 4, 5, 6}
	for i, w := range want {
		if got := r.Peek(i); got != w {
			t.Fatalf("byte %d = %d, want %d", i, got, w)
		}
	}
}

func TestMemset(t *testing.T) {
	r := New()
	r.Memset(10, 5, 0x3)
	for i := 10; i < 15; i++ {
		if got := r.Peek(i); got != 0x3 {
			t.Fatalf("byte %d = %d, want 3", i, got)
		}
	}
	if got := r.Peek(9); got != 0 {
		t.Fatalf("byte 9 = %d, want 0 (outside fill range)", got)
	}
}

// TestPersistentIsolation is spec.md property 9: resetting volatile state
// must not disturb persistent memory.
func TestPersistentIsolation(t *testing.T) {
	r := New()
	r.SetPmem(5, 42)
	r.Poke(0, 0xFF)

	r.ResetVolatile()

	if got := r.Pmem(5); got != 42 {
		t.Fatalf("Pmem(5) = %d after reset, want 42", got)
	}
	if got := r.Peek(0); got != 0 {
		t.Fatalf("Peek(0) = %d after reset, want 0 (volatile cleared)", got)
	}
}

func TestPmemOutOfRangeIsSafe(t *testing.T) {
	r := New()
	if got := r.Pmem(-1); got != 0 {
		t.Fatalf("Pmem(-1) = %d, want 0", got)
	}
	if got := r.Pmem(PersistentSize); got != 0 {
		t.Fatalf("Pmem(out of range) = %d, want 0", got)
	}
}
