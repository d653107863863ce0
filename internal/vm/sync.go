package vm

import "ticforge/internal/ram"

// SyncMask selects which regions Sync copies between a cart bank and the
// RAM working set, matching spec.md §6.2's sync(mask, bank, tocart).
type SyncMask uint8

const (
	SyncTiles SyncMask = 1 << iota
	SyncSprites
	SyncMap
	SyncPalette
	SyncSound // samples, waveforms, patterns, tracks
	SyncFlags
	SyncScreen

	SyncAll = SyncTiles | SyncSprites | SyncMap | SyncPalette | SyncSound | SyncFlags | SyncScreen
)

// Sync copies every region selected by mask between cart bank `bank` and
// the RAM working set: toCart true copies RAM -> bank, false copies
// bank -> RAM. Out-of-range banks are a no-op, per spec.md §7's
// resource-bounds clamping rule. Because each direction is a pure
// field-for-field copy, calling Sync(mask, bank, false) immediately
// followed by Sync(mask, bank, true) is always identity on the bank
// (spec.md property 8).
func (c *Console) Sync(mask SyncMask, bank int, toCart bool) {
	if bank < 0 || bank >= ram.Banks {
		return
	}
	b := &c.Cart.Banks[bank]
	if toCart {
		if mask&SyncTiles != 0 {
			b.Tiles = c.RAM.Tiles
		}
		if mask&SyncSprites != 0 {
			b.Sprites = c.RAM.Sprites
		}
		if mask&SyncMap != 0 {
			b.Map = c.RAM.Map
		}
		if mask&SyncPalette != 0 {
			b.Palette = c.RAM.VRAM.Palette
		}
		if mask&SyncSound != 0 {
			b.Samples = c.RAM.SFX
			b.Waveforms = c.RAM.Waveforms
			b.Patterns = c.RAM.Patterns
			b.Tracks = c.RAM.Tracks
		}
		if mask&SyncFlags != 0 {
			b.Flags = c.RAM.SpriteFlags
		}
		if mask&SyncScreen != 0 {
			b.Screen = c.RAM.VRAM.Screen
		}
	} else {
		if mask&SyncTiles != 0 {
			c.RAM.Tiles = b.Tiles
		}
		if mask&SyncSprites != 0 {
			c.RAM.Sprites = b.Sprites
		}
		if mask&SyncMap != 0 {
			c.RAM.Map = b.Map
		}
		if mask&SyncPalette != 0 {
			c.RAM.VRAM.Palette = b.Palette
		}
		if mask&SyncSound != 0 {
			c.RAM.SFX = b.Samples
			c.RAM.Waveforms = b.Waveforms
			c.RAM.Patterns = b.Patterns
			c.RAM.Tracks = b.Tracks
		}
		if mask&SyncFlags != 0 {
			c.RAM.SpriteFlags = b.Flags
		}
		if mask&SyncScreen != 0 {
			c.RAM.VRAM.Screen = b.Screen
		}
	}
	c.currentBank = bank
}

// syncBank loads every region of bank into RAM, used at boot and reset.
func (c *Console) syncBank(bank int) {
	c.Sync(SyncAll, bank, false)
}

// CurrentBank returns the bank index last synced into RAM.
func (c *Console) CurrentBank() int { return c.currentBank }
