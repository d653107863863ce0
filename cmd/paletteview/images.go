package main

import (
	"image"
	"image/color"

	"ticforge/internal/bitpack"
	"ticforge/internal/cart"
	"ticforge/internal/ram"
)

// swatchSize is the pixel edge length of one rendered palette swatch.
const swatchSize = 24

// tileScale is how many screen pixels each tile pixel is blown up to so
// 8x8 tiles are visible at normal window sizes.
const tileScale = 3

// paletteImage renders a bank's 16-color palette as a single row of
// swatches, the same RGB-triple layout ram.PaletteBytes describes.
func paletteImage(b *cart.Bank) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ram.PaletteSize*swatchSize, swatchSize))
	for i := 0; i < ram.PaletteSize; i++ {
		c := color.RGBA{
			R: b.Palette[i*3],
			G: b.Palette[i*3+1],
			B: b.Palette[i*3+2],
			A: 0xFF,
		}
		fillRect(img, i*swatchSize, 0, swatchSize, swatchSize, c)
	}
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

// tileSheetImage unpacks a bank's 4bpp tile data (256 tiles, 8x8 each)
// into a 16x16 grid and renders it against the bank's own palette, so the
// sheet looks the way it would composited on screen.
func tileSheetImage(b *cart.Bank, useSprites bool) *image.RGBA {
	const cols, rows = 16, ram.BankSprites / 16

	raw := b.Tiles[:]
	if useSprites {
		raw = b.Sprites[:]
	}

	sheet := image.NewRGBA(image.Rect(0, 0, cols*ram.SpriteSize*tileScale, rows*ram.SpriteSize*tileScale))
	for tile := 0; tile < ram.BankSprites; tile++ {
		tx := (tile % cols) * ram.SpriteSize
		ty := (tile / cols) * ram.SpriteSize
		nibbleBase := tile * ram.SpriteSize * ram.SpriteSize

		for py := 0; py < ram.SpriteSize; py++ {
			for px := 0; px < ram.SpriteSize; px++ {
				idx := nibbleBase + py*ram.SpriteSize + px
				pal := bitpack.Peek4(raw, idx)
				c := color.RGBA{
					R: b.Palette[int(pal)*3],
					G: b.Palette[int(pal)*3+1],
					B: b.Palette[int(pal)*3+2],
					A: 0xFF,
				}
				fillRect(sheet, (tx+px)*tileScale, (ty+py)*tileScale, tileScale, tileScale, c)
			}
		}
	}
	return sheet
}
