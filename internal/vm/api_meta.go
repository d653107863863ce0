package vm

import (
	"ticforge/internal/logging"
	"ticforge/internal/ram"
)

// The Meta group (spec.md §6.2): timing, exit/reset, tile-flag access,
// the vbank selector and the trace/error reporting path.

// Time returns milliseconds of VM time elapsed since boot, derived from
// the tick counter rather than a wall clock so it stays deterministic
// across hosts and replays.
func (c *Console) Time() float64 {
	return float64(c.frameCount) * 1000.0 / float64(ram.FrameRate)
}

// Tstamp returns a host-supplied wall-clock Unix timestamp. The core has
// no clock of its own (spec.md's scheduling model is purely tick-driven);
// a script host wires this to its platform clock and Console just carries
// whatever value was last set via SetTstamp.
func (c *Console) Tstamp() int64 { return c.tstamp }

// SetTstamp lets the host push its wall-clock reading in before Tick.
func (c *Console) SetTstamp(unix int64) { c.tstamp = unix }

// Exit stops the scheduler; Tick becomes a no-op until Start is called
// again, matching spec.md §7's host-abort error path.
func (c *Console) Exit() { c.running = false }

func (c *Console) Fget(tileID, n int) bool       { return c.Raster.Fget(tileID, n) }
func (c *Console) Fset(tileID, n int, value bool) { c.Raster.Fset(tileID, n, value) }

// Vbank selects the active video-bank index for the current draw calls,
// returning the previously active index. Only bank 0 has any effect on
// drawing (RAM carries a single VRAM region); other indices are recorded
// but otherwise inert, matching spec.md §7's clamp-not-error convention
// for indices outside what a given implementation backs with real state.
func (c *Console) Vbank(id int) int {
	prev := c.vbank
	c.vbank = id
	return prev
}

// Trace writes message to the logger under the script component, the
// trace() API's destination per spec.md §6.2.
func (c *Console) Trace(message string) {
	if c.Logger != nil {
		c.Logger.Log(logging.ComponentScript, logging.LevelInfo, message)
	}
}

// ReportError is the core's one error-reporting path (spec.md §7): a
// script host's binding layer calls this when it catches a programmer
// error in user code. It both logs and forwards to OnError, if set.
func (c *Console) ReportError(message string, color uint8) {
	if c.Logger != nil {
		c.Logger.Logf(logging.ComponentScript, logging.LevelError, "%s", message)
	}
	if c.OnError != nil {
		c.OnError(message, color)
	}
}
