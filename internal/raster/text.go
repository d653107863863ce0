package raster

import "ticforge/internal/ram"

// glyphWidth returns the rightmost set column + 1 for glyph ch, used by
// variable-width Print layout. A blank glyph reports width 0.
func (rz *Rasterizer) glyphWidth(ch uint8) int {
	row := rz.ram.Font[ch]
	width := 0
	for r := 0; r < ram.FontHeight; r++ {
		for c := ram.FontWidth - 1; c >= 0; c-- {
			if row[r]&(1<<uint(c)) != 0 && c+1 > width {
				width = c + 1
			}
		}
	}
	return width
}

func (rz *Rasterizer) drawGlyph(ch uint8, x, y, scale int, color uint8) {
	glyph := rz.ram.Font[ch]
	for r := 0; r < ram.FontHeight; r++ {
		for c := 0; c < ram.FontWidth; c++ {
			if glyph[r]&(1<<uint(c)) == 0 {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					rz.putPixel(x+c*scale+dx, y+r*scale+dy, color)
				}
			}
		}
	}
}

// PrintOpts configures a Print call.
type PrintOpts struct {
	Scale     int
	Fixed     bool // fixed-width layout (always FontWidth per glyph) vs variable
	SmallFont bool // reserved: alternate glyph set selector
}

// Print draws text using the system font and returns the total advance
// width in pixels.
func (rz *Rasterizer) Print(text string, x, y int, color uint8, opts PrintOpts) int {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	cursor := x
	for i := 0; i < len(text); i++ {
		ch := text[i]
		rz.drawGlyph(ch, cursor, y, scale, color)

		advance := ram.FontWidth
		if !opts.Fixed {
			advance = rz.glyphWidth(ch) + 1
		}
		cursor += advance * scale
	}
	return cursor - x
}

// FontOpts configures a Font call, which draws text from user sprite data
// instead of the system font.
type FontOpts struct {
	Scale      int
	Fixed      bool
	CharWidth  int
	CharHeight int
	ChromaKeys []uint8
}

// Font draws text using a user-defined font starting at baseTileID (glyph
// for byte value v is tile baseTileID+v), and returns the advance width.
func (rz *Rasterizer) Font(text string, x, y int, baseTileID int, opts FontOpts) int {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cw, ch := opts.CharWidth, opts.CharHeight
	if cw <= 0 {
		cw = ram.SpriteSize
	}
	if ch <= 0 {
		ch = ram.SpriteSize
	}

	cursor := x
	for i := 0; i < len(text); i++ {
		tileID := baseTileID + int(text[i])
		rz.Spr(tileID, cursor, y, SprOpts{ChromaKeys: opts.ChromaKeys, Scale: scale})
		cursor += cw * scale
	}
	return cursor - x
}
