// Package raster implements the software rasterizer: the clip rectangle,
// palette-mapping layer, and every drawing primitive described in
// spec.md §4.2. It is grounded on the teacher's internal/ppu.PPU — a
// register-struct-with-methods shape addressing a shared VRAM — adapted
// from a hardware PPU's BG/sprite/window registers to the fantasy
// console's single flat framebuffer plus palette mapping table.
package raster

import (
	"ticforge/internal/bitpack"
	"ticforge/internal/ram"
)

// Clip is the current clip rectangle; draws outside it are discarded.
type Clip struct {
	Left, Top, Right, Bottom int
}

func fullScreenClip() Clip {
	return Clip{0, 0, ram.ScreenWidth, ram.ScreenHeight}
}

// contains reports whether (x, y) lies inside the clip rectangle.
func (c Clip) contains(x, y int) bool {
	return x >= c.Left && x < c.Right && y >= c.Top && y < c.Bottom
}

// ScanlineFunc is invoked once per composited framebuffer row.
type ScanlineFunc func(row int)

// OverlineFunc is invoked once after the full frame is composited.
type OverlineFunc func()

// BorderFunc is invoked once per scanline row, before that row is drawn,
// and returns the border color to use for that row — spec.md §4.5's
// callback.border hook, letting a script paint horizontal border bars the
// same way callback.scanline repaints the palette mid-frame.
type BorderFunc func(row int) uint8

// Rasterizer draws into a RAM's VRAM region, honoring the current clip
// rectangle and palette mapping. It holds no state beyond the clip
// rectangle and the per-scanline extent buffers primitives reuse —
// everything else lives in the RAM it is given.
type Rasterizer struct {
	ram  *ram.RAM
	clip Clip

	// left/right are reused across circ/elli/tri fills to avoid
	// reallocating a height-136 extent buffer on every draw call, per
	// spec.md §4.2's "per-scanline left/right extent buffer" note.
	left, right [ram.ScreenHeight]int32
}

// New returns a Rasterizer bound to r, with a full-screen clip rectangle
// and the identity palette mapping (mapping[i] == i) — the palette
// mapping table lives in RAM, not the cartridge, so a freshly loaded RAM
// has no cart-supplied mapping to inherit and must start identity rather
// than all-zero.
func New(r *ram.RAM) *Rasterizer {
	rz := &Rasterizer{ram: r, clip: fullScreenClip()}
	rz.ResetPaletteMap()
	return rz
}

// Clip sets the clip rectangle, intersected with the screen bounds.
func (rz *Rasterizer) Clip(x, y, w, h int) {
	l, t, right, bottom := x, y, x+w, y+h
	if l < 0 {
		l = 0
	}
	if t < 0 {
		t = 0
	}
	if right > ram.ScreenWidth {
		right = ram.ScreenWidth
	}
	if bottom > ram.ScreenHeight {
		bottom = ram.ScreenHeight
	}
	if right < l {
		right = l
	}
	if bottom < t {
		bottom = t
	}
	rz.clip = Clip{Left: l, Top: t, Right: right, Bottom: bottom}
}

// ResetClip restores the full-screen clip rectangle.
func (rz *Rasterizer) ResetClip() {
	rz.clip = fullScreenClip()
}

// CurrentClip returns the active clip rectangle.
func (rz *Rasterizer) CurrentClip() Clip {
	return rz.clip
}

// PaletteMap returns the current 16-entry mapping[c] for color c.
func (rz *Rasterizer) PaletteMap(c uint8) uint8 {
	return bitpack.Peek4(rz.ram.VRAM.PaletteMap[:], int(c&0x0F))
}

// SetPaletteMap sets mapping[index] = value.
func (rz *Rasterizer) SetPaletteMap(index int, value uint8) {
	bitpack.Poke4(rz.ram.VRAM.PaletteMap[:], index&0x0F, value)
}

// ResetPaletteMap restores the identity mapping (mapping[i] = i).
func (rz *Rasterizer) ResetPaletteMap() {
	for i := 0; i < ram.PaletteSize; i++ {
		rz.SetPaletteMap(i, uint8(i))
	}
}

// putPixel is the one place every primitive funnels through: clip, then
// palette-map, then poke4 into VRAM.screen. This is what makes properties
// 2 (clip safety) and 3 (palette mapping purity) hold for every primitive
// built on top of it.
func (rz *Rasterizer) putPixel(x, y int, color uint8) {
	if !rz.clip.contains(x, y) {
		return
	}
	mapped := rz.PaletteMap(color)
	idx := y*ram.ScreenWidth + x
	rz.ram.PokeNibble(idx, mapped)
}

// Cls fills the entire screen (ignoring clip, matching the engine's cls
// which always clears the full framebuffer) with color.
func (rz *Rasterizer) Cls(color uint8) {
	mapped := rz.PaletteMap(color)
	packed := mapped&0x0F | mapped<<4
	for i := range rz.ram.VRAM.Screen {
		rz.ram.VRAM.Screen[i] = packed
	}
}

// Pix draws one pixel.
func (rz *Rasterizer) Pix(x, y int, color uint8) {
	rz.putPixel(x, y, color)
}

// PixGet reads back the palette-mapped color stored at (x, y), ignoring
// clip (a read, not a draw).
func (rz *Rasterizer) PixGet(x, y int) uint8 {
	if x < 0 || x >= ram.ScreenWidth || y < 0 || y >= ram.ScreenHeight {
		return 0
	}
	idx := y*ram.ScreenWidth + x
	return rz.ram.PeekNibble(idx)
}
