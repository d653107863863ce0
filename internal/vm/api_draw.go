package vm

import "ticforge/internal/raster"

// The Drawing group (spec.md §6.2) is a thin pass-through onto
// internal/raster; Console owns clamping/clipping nowhere itself, since
// every primitive already clips against the rasterizer's own clip
// rectangle.

func (c *Console) Cls(color uint8) { c.Raster.Cls(color) }
func (c *Console) Pix(x, y int, color uint8) { c.Raster.Pix(x, y, color) }
func (c *Console) PixGet(x, y int) uint8 { return c.Raster.PixGet(x, y) }

func (c *Console) Line(x0, y0, x1, y1 int, color uint8) {
	c.Raster.Line(x0, y0, x1, y1, color)
}

func (c *Console) Rect(x, y, w, h int, color uint8)  { c.Raster.Rect(x, y, w, h, color) }
func (c *Console) Rectb(x, y, w, h int, color uint8) { c.Raster.Rectb(x, y, w, h, color) }

func (c *Console) Circ(x, y, r int, color uint8)  { c.Raster.Circ(x, y, r, color) }
func (c *Console) Circb(x, y, r int, color uint8) { c.Raster.Circb(x, y, r, color) }

func (c *Console) Elli(x, y, a, b int, color uint8)  { c.Raster.Elli(x, y, a, b, color) }
func (c *Console) Ellib(x, y, a, b int, color uint8) { c.Raster.Ellib(x, y, a, b, color) }

func (c *Console) Tri(x0, y0, x1, y1, x2, y2 int, color uint8) {
	c.Raster.Tri(x0, y0, x1, y1, x2, y2, color)
}

func (c *Console) Trib(x0, y0, x1, y1, x2, y2 int, color uint8) {
	c.Raster.Trib(x0, y0, x1, y1, x2, y2, color)
}

func (c *Console) Textri(x0, y0, x1, y1, x2, y2, u0, v0, u1, v1, u2, v2 float64, source raster.TriSource, chromaKeys []uint8) {
	c.Raster.Textri(int(x0), int(y0), int(x1), int(y1), int(x2), int(y2), u0, v0, u1, v1, u2, v2, source, chromaKeys)
}

func (c *Console) Spr(tileID, x, y int, opts raster.SprOpts) {
	c.Raster.Spr(tileID, x, y, opts)
}

func (c *Console) SprRect(tileID, x, y, w, h int, opts raster.SprOpts) {
	c.Raster.SprRect(tileID, x, y, w, h, opts)
}

func (c *Console) Map(mx, my, w, h, x, y int, remap raster.RemapFunc, chromaKeys []uint8) {
	c.Raster.Map(mx, my, w, h, x, y, remap, chromaKeys)
}

func (c *Console) Mget(cx, cy int) uint8        { return c.Raster.Mget(cx, cy) }
func (c *Console) Mset(cx, cy int, tileID uint8) { c.Raster.Mset(cx, cy, tileID) }

func (c *Console) Clip(x, y, w, h int) { c.Raster.Clip(x, y, w, h) }
func (c *Console) ResetClip()          { c.Raster.ResetClip() }

func (c *Console) Print(text string, x, y int, color uint8, opts raster.PrintOpts) int {
	return c.Raster.Print(text, x, y, color, opts)
}

func (c *Console) Font(text string, x, y, baseTileID int, opts raster.FontOpts) int {
	return c.Raster.Font(text, x, y, baseTileID, opts)
}

func (c *Console) PaletteMap(color uint8) uint8          { return c.Raster.PaletteMap(color) }
func (c *Console) SetPaletteMap(index int, value uint8)  { c.Raster.SetPaletteMap(index, value) }
func (c *Console) ResetPaletteMap()                      { c.Raster.ResetPaletteMap() }
