// Package vm ties the RAM, cartridge, rasterizer and synth packages
// together behind the tick scheduler and the ~40-function API spec.md
// §6.2 describes, plus the ScriptHost ABI a language binding implements
// to drive user code. It is grounded on the teacher's Emulator struct
// (component fields plus Start/Stop/Pause/Resume/Reset lifecycle) and
// MasterClock (component-step wiring), adapted from cycle-accurate
// CPU/PPU/APU stepping to the fixed 60fps function-call tick model
// spec.md §4.5 describes — see DESIGN.md.
package vm

import (
	"ticforge/internal/cart"
	"ticforge/internal/logging"
	"ticforge/internal/ram"
	"ticforge/internal/raster"
	"ticforge/internal/sound"
)

// SamplesPerTick is the number of stereo sample pairs tick_end produces
// at the engine's fixed 44100Hz output rate: 44100/60 = 735.
const SamplesPerTick = 44100 / ram.FrameRate

// ErrorFunc is the one error-reporting path out of the core (spec.md §7):
// programmer errors in user code are caught by the script host's binding
// layer and forwarded here as (message, border-flash color).
type ErrorFunc func(message string, color uint8)

// Console is one running VM instance: a cartridge, the RAM working set
// synced from it, a rasterizer and synth bound to that RAM, and whatever
// ScriptHost is driving user code this session.
type Console struct {
	Cart   *cart.Cartridge
	RAM    *ram.RAM
	Raster *raster.Rasterizer
	Synth  *sound.Synth
	Logger *logging.Logger

	Host ScriptHost

	// OnError is spec.md §7's single error callback. ForceExit is polled
	// cooperatively by a long-running script host inside Tick; returning
	// true aborts the current tick's user-code run.
	OnError   ErrorFunc
	ForceExit func() bool

	// AudioBuffer holds one tick's worth of interleaved stereo PCM,
	// refilled in place by TickEnd.
	AudioBuffer []int16

	currentBank int
	firstTick   bool
	running     bool
	paused      bool
	frameCount  uint64
	vbank       int
	saveID      string
	tstamp      int64
}

// New returns a Console bound to c, with a private 1000-entry logger.
func New(c *cart.Cartridge) *Console {
	return NewWithLogger(c, logging.New(1000))
}

// NewWithLogger is New but lets the caller share a logger across several
// consoles or a wider host application.
func NewWithLogger(c *cart.Cartridge, logger *logging.Logger) *Console {
	r := ram.New()
	return &Console{
		Cart:        c,
		RAM:         r,
		Raster:      raster.New(r),
		Synth:       sound.New(),
		Logger:      logger,
		firstTick:   true,
		saveID:      deriveSaveID(c.Code),
		AudioBuffer: make([]int16, SamplesPerTick*ram.StereoChannels),
	}
}

// Start/Stop/Pause/Resume mirror the teacher's Emulator lifecycle
// methods: Tick is a no-op whenever running is false or paused is true.
func (c *Console) Start()   { c.running = true; c.paused = false }
func (c *Console) Stop()    { c.running = false }
func (c *Console) Pause()   { c.paused = true }
func (c *Console) Resume()  { c.paused = false }
func (c *Console) Running() bool { return c.running }
func (c *Console) Paused() bool  { return c.paused }

// FrameCount returns the number of ticks run so far.
func (c *Console) FrameCount() uint64 { return c.frameCount }

// Reset reloads bank 0 into the RAM working set and clears every other
// region, preserving persistent memory (spec.md property 9 and
// original_source/src/tic.c's reset()).
func (c *Console) Reset() {
	c.RAM.ResetVolatile()
	c.currentBank = 0
	c.firstTick = true
	c.syncBank(0)
	c.Raster.ResetPaletteMap()
	if c.Host != nil {
		if err := c.Host.Init(c, c.Cart.Code); err != nil {
			c.ReportError(err.Error(), 8)
		}
	}
}
