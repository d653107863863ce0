package vm

// The Sound group (spec.md §6.2) delegates straight into internal/sound,
// threading through the RAM-resident SFX/track tables sync keeps in
// sync with the cartridge.

func (c *Console) Sfx(index, channel, note, octave, duration int, volume uint8, speed int8) {
	c.Synth.Sfx(&c.RAM.SFX, channel, index, note, octave, duration, volume, speed)
}

func (c *Console) SfxStop(channel int) { c.Synth.SfxStop(channel) }

func (c *Console) Music(track, frame, row int, loop bool) {
	c.Synth.Music(&c.RAM.Tracks, track, frame, row, loop)
}

func (c *Console) MusicFrame(track, frame, row int, loop bool) {
	c.Synth.MusicFrame(&c.RAM.Tracks, track, frame, row, loop)
}

func (c *Console) MusicStop() { c.Synth.MusicStop(&c.RAM.Tracks) }

func (c *Console) SfxPos(channel int) (wave, volume, arpeggio, pitch int) {
	return c.Synth.SfxPos(channel)
}

func (c *Console) ChannelDuration(channel int) int { return c.Synth.ChannelDuration(channel) }
