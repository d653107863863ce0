package raster

import (
	"ticforge/internal/bitpack"
	"ticforge/internal/ram"
)

const tilesPerRow = ram.SpriteSheetSize / ram.SpriteSize // 16

// tileBank returns the bank ([]byte view) and within-bank tile index for
// a tile id spanning the combined 512-tile sheet (tile bank + sprite bank
// back to back), per spec.md §4.2's "bank of 512 spanning both tile and
// sprite banks".
func (rz *Rasterizer) tileBank(tileID int) ([]uint8, int) {
	if tileID < ram.BankSprites {
		return rz.ram.Tiles[:], tileID
	}
	return rz.ram.Sprites[:], tileID - ram.BankSprites
}

// tilePixel reads the 4bpp color index at local (lx, ly) within tile id.
func (rz *Rasterizer) tilePixel(tileID, lx, ly int) uint8 {
	if tileID < 0 || tileID >= ram.TotalSprites {
		return 0
	}
	bank, idx := rz.tileBank(tileID)
	nibbleIdx := idx*ram.SpriteSize*ram.SpriteSize + ly*ram.SpriteSize + lx
	return bitpack.Peek4(bank, nibbleIdx)
}

// Fget reads user flag bit n (0..7) of sprite tileID's flag byte.
func (rz *Rasterizer) Fget(tileID, n int) bool {
	if tileID < 0 || tileID >= ram.TotalSprites || n < 0 || n > 7 {
		return false
	}
	return rz.ram.SpriteFlags[tileID]&(1<<uint(n)) != 0
}

// Fset writes user flag bit n of sprite tileID's flag byte.
func (rz *Rasterizer) Fset(tileID, n int, value bool) {
	if tileID < 0 || tileID >= ram.TotalSprites || n < 0 || n > 7 {
		return
	}
	mask := uint8(1) << uint(n)
	if value {
		rz.ram.SpriteFlags[tileID] |= mask
	} else {
		rz.ram.SpriteFlags[tileID] &^= mask
	}
}

// Mget reads the tile id at map cell (cx, cy).
func (rz *Rasterizer) Mget(cx, cy int) uint8 {
	if cx < 0 || cx >= ram.MapWidth || cy < 0 || cy >= ram.MapHeight {
		return 0
	}
	return rz.ram.Map[cy*ram.MapWidth+cx]
}

// Mset writes the tile id at map cell (cx, cy).
func (rz *Rasterizer) Mset(cx, cy int, tileID uint8) {
	if cx < 0 || cx >= ram.MapWidth || cy < 0 || cy >= ram.MapHeight {
		return
	}
	rz.ram.Map[cy*ram.MapWidth+cx] = tileID
}

// SprOpts configures an Spr call: up to 15 chroma-key colors, integer
// scale, flip and 90°-rotation, per spec.md §4.2.
type SprOpts struct {
	ChromaKeys []uint8
	Scale      int
	FlipH      bool
	FlipV      bool
	Rotate     int // 0..3, quarter turns clockwise
}

func (o SprOpts) isChromaKey(c uint8) bool {
	for _, k := range o.ChromaKeys {
		if k == c {
			return true
		}
	}
	return false
}

func (o SprOpts) scale() int {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// Spr draws one 8x8 tile at (x, y) with the given options.
func (rz *Rasterizer) Spr(tileID, x, y int, opts SprOpts) {
	scale := opts.scale()
	for ly := 0; ly < ram.SpriteSize; ly++ {
		for lx := 0; lx < ram.SpriteSize; lx++ {
			sx, sy := transformLocal(lx, ly, opts.FlipH, opts.FlipV, opts.Rotate)
			c := rz.tilePixel(tileID, sx, sy)
			if opts.isChromaKey(c) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					rz.putPixel(x+lx*scale+dx, y+ly*scale+dy, c)
				}
			}
		}
	}
}

// SprRect draws a w×h rectangle of tiles starting at tileID, tiles read
// left-to-right, top-to-bottom from the sheet's tilesPerRow stride.
func (rz *Rasterizer) SprRect(tileID, x, y, w, h int, opts SprOpts) {
	size := opts.scale() * ram.SpriteSize
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			id := tileID + ty*tilesPerRow + tx
			rz.Spr(id, x+tx*size, y+ty*size, opts)
		}
	}
}

func transformLocal(lx, ly int, flipH, flipV bool, rotate int) (int, int) {
	const n = ram.SpriteSize
	for r := 0; r < ((rotate%4)+4)%4; r++ {
		lx, ly = ly, n-1-lx
	}
	if flipH {
		lx = n - 1 - lx
	}
	if flipV {
		ly = n - 1 - ly
	}
	return lx, ly
}

// RemapFunc lets map() rewrite a cell's (tileID, flip, rotate) before it
// is drawn, per spec.md §4.2's remap-during-map-draw callback.
type RemapFunc func(x, y, tileID int) (newTileID int, flipH, flipV bool, rotate int)

// Map draws a w×h cell rectangle starting at map cell (mx, my), onto
// screen position (x, y). remap may be nil (identity).
func (rz *Rasterizer) Map(mx, my, w, h, x, y int, remap RemapFunc, chromaKeys []uint8) {
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			tileID := int(rz.Mget(mx+cx, my+cy))
			flipH, flipV, rotate := false, false, 0
			if remap != nil {
				tileID, flipH, flipV, rotate = remap(mx+cx, my+cy, tileID)
			}
			opts := SprOpts{ChromaKeys: chromaKeys, Scale: 1, FlipH: flipH, FlipV: flipV, Rotate: rotate}
			rz.Spr(tileID, x+cx*ram.SpriteSize, y+cy*ram.SpriteSize, opts)
		}
	}
}
