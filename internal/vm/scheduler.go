package vm

// TickStart runs spec.md §4.5's pre-user-code step: on the very first
// tick after load it copies bank 0 into the RAM working set (the host is
// expected to have already written this tick's input into c.RAM.Input
// before calling Tick), then latches input so Btn/Btnp/Key/Keyp observe
// this tick's press/release edges.
func (c *Console) TickStart() {
	if c.firstTick {
		c.syncBank(c.currentBank)
		c.firstTick = false
	}
	c.RAM.Input.Latch()
}

// TickEnd runs spec.md §4.5's post-user-code step: advance the music
// tracker and any direct sfx channels into this tick's sound registers,
// then synthesize this tick's PCM into AudioBuffer. Compositing the
// framebuffer is a separate call (Composite) so a host can defer drawing
// until it is actually about to present a frame.
func (c *Console) TickEnd() {
	c.Synth.Tick(c.RAM, &c.RAM.Tracks, &c.RAM.Patterns, &c.RAM.Waveforms, &c.RAM.SFX)
	c.Synth.Render(c.RAM, SamplesPerTick, c.AudioBuffer)
}

// Tick runs one full frame: TickStart, the bound script host's Tick
// entry point, then TickEnd. It is a no-op while Stopped or Paused,
// matching the teacher's RunFrame early return.
func (c *Console) Tick() {
	if !c.running || c.paused {
		return
	}
	c.TickStart()
	if c.Host != nil {
		c.Host.Tick()
	}
	c.TickEnd()
	c.frameCount++
}

// Composite renders the current VRAM framebuffer into out (row-major
// RGBA, sized ScreenWidth*ScreenHeight), invoking the bound script
// host's scanline/overline/border callbacks along the way. Safe to call
// with Host == nil (renders with no per-row hooks).
func (c *Console) Composite(out []uint32) {
	if c.Host == nil {
		c.Raster.Composite(out, nil, nil, nil)
		return
	}
	c.Raster.Composite(out, c.Host.Scanline, c.Host.Border, c.Host.Overline)
}
