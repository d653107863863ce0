package raster

import "ticforge/internal/ram"

// Composite renders the current VRAM framebuffer into a row-major RGBA
// (0xRRGGBBAA) output buffer sized ScreenWidth*ScreenHeight, invoking the
// scanline callback before each row is composited (so it can mutate the
// palette or screen offset for raster effects), the border callback to
// fetch that row's border color, and the overline callback once after the
// full frame, per spec.md §4.5 step 5.
func (rz *Rasterizer) Composite(out []uint32, scanline ScanlineFunc, border BorderFunc, overline OverlineFunc) {
	for row := 0; row < ram.ScreenHeight; row++ {
		if scanline != nil {
			scanline(row)
		}
		if border != nil {
			rz.ram.VRAM.BorderColor = border(row)
		}

		offsetX := int(rz.ram.VRAM.OffsetX)
		offsetY := int(rz.ram.VRAM.OffsetY)

		for col := 0; col < ram.ScreenWidth; col++ {
			srcX := wrap(col-offsetX, ram.ScreenWidth)
			srcY := wrap(row-offsetY, ram.ScreenHeight)
			colorIdx := rz.ram.PeekNibble(srcY*ram.ScreenWidth + srcX)
			out[row*ram.ScreenWidth+col] = rz.rgba(colorIdx)
		}
	}

	if overline != nil {
		overline()
	}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

func (rz *Rasterizer) rgba(colorIdx uint8) uint32 {
	i := int(colorIdx&0x0F) * 3
	p := rz.ram.VRAM.Palette
	r, g, b := p[i], p[i+1], p[i+2]
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF
}

// BorderColor returns the mapped border color register value.
func (rz *Rasterizer) BorderColor() uint8 {
	return rz.ram.VRAM.BorderColor
}
