package vm

import (
	"testing"

	"ticforge/internal/ram"
)

// fakeHost is a minimal ScriptHost used to exercise Console's scheduler
// and callback wiring without a real interpreter.
type fakeHost struct {
	ticks        int
	scanlineRows []int
	overlineRuns int
	borderCalls  int
	initCode     string
}

func (h *fakeHost) Name() string           { return "fake" }
func (h *fakeHost) FileExtension() string  { return ".fake" }
func (h *fakeHost) ProjectComment() string { return "-- fake cart" }

func (h *fakeHost) Init(c *Console, code string) error {
	h.initCode = code
	return nil
}
func (h *fakeHost) Close() {}
func (h *fakeHost) Tick()  { h.ticks++ }

func (h *fakeHost) Scanline(row int) { h.scanlineRows = append(h.scanlineRows, row) }
func (h *fakeHost) Overline()        { h.overlineRuns++ }
func (h *fakeHost) Border(row int) uint8 {
	h.borderCalls++
	return 0
}

func (h *fakeHost) Eval(code string) (string, error)   { return "", nil }
func (h *fakeHost) Outline(code string) []OutlineRange { return nil }

func (h *fakeHost) Keywords() []string { return nil }
func (h *fakeHost) CommentDelimiters() (string, string, string) { return "--", "--[[", "]]" }
func (h *fakeHost) StringDelimiters() []string                  { return []string{`"`, "'"} }

func TestConsoleTickInvokesBoundHost(t *testing.T) {
	c := newTestConsole()
	h := &fakeHost{}
	c.Host = h

	c.Tick()
	c.Tick()

	if h.ticks != 2 {
		t.Fatalf("host.Tick called %d times, want 2", h.ticks)
	}
}

func TestConsoleCompositeInvokesScanlineOverlineBorder(t *testing.T) {
	c := newTestConsole()
	h := &fakeHost{}
	c.Host = h
	c.Tick()

	out := make([]uint32, ram.ScreenWidth*ram.ScreenHeight)
	c.Composite(out)

	if len(h.scanlineRows) != ram.ScreenHeight {
		t.Fatalf("scanline invoked %d times, want %d", len(h.scanlineRows), ram.ScreenHeight)
	}
	if h.borderCalls != ram.ScreenHeight {
		t.Fatalf("border invoked %d times, want %d", h.borderCalls, ram.ScreenHeight)
	}
	if h.overlineRuns != 1 {
		t.Fatalf("overline invoked %d times, want 1", h.overlineRuns)
	}
}

func TestConsoleTickNoOpWhenStoppedOrPaused(t *testing.T) {
	c := New(newTestConsole().Cart) // fresh, never Start()ed
	h := &fakeHost{}
	c.Host = h

	c.Tick()
	if h.ticks != 0 {
		t.Fatal("Tick should no-op while the console was never started")
	}

	c.Start()
	c.Pause()
	c.Tick()
	if h.ticks != 0 {
		t.Fatal("Tick should no-op while paused")
	}

	c.Resume()
	c.Tick()
	if h.ticks != 1 {
		t.Fatalf("host.Tick called %d times after resume, want 1", h.ticks)
	}
}

func TestResetReinitializesHost(t *testing.T) {
	c := newTestConsole()
	h := &fakeHost{}
	c.Host = h
	c.Cart.Code = "function TIC() end"

	c.Reset()

	if h.initCode != c.Cart.Code {
		t.Fatalf("Init called with code %q, want %q", h.initCode, c.Cart.Code)
	}
}
