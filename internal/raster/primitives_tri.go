package raster

// Tri draws a filled triangle by tracing its three edges into the shared
// extent buffer, then filling each touched row once.
func (rz *Rasterizer) Tri(x0, y0, x1, y1, x2, y2 int, color uint8) {
	top, bottom := minInt3(y0, y1, y2), maxInt3(y0, y1, y2)
	rz.clearExtents(top, bottom)
	rz.traceEdge(x0, y0, x1, y1)
	rz.traceEdge(x1, y1, x2, y2)
	rz.traceEdge(x2, y2, x0, y0)
	rz.fillExtents(top, bottom, 0, color)
}

// Trib draws a triangle's border as three line segments.
func (rz *Rasterizer) Trib(x0, y0, x1, y1, x2, y2 int, color uint8) {
	rz.Line(x0, y0, x1, y1, color)
	rz.Line(x1, y1, x2, y2, color)
	rz.Line(x2, y2, x0, y0, color)
}

// traceEdge widens the extent buffer's rows along the Bresenham line from
// (x0,y0) to (x1,y1), the same stepping Line uses but recording spans
// instead of drawing pixels.
func (rz *Rasterizer) traceEdge(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		rz.widenExtent(y, x)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// TriSource selects which VRAM-adjacent region Textri samples from.
type TriSource int

const (
	SourceSpriteSheet TriSource = iota
	SourceMap
)

type vertex struct {
	X, Y, U, V float64
}

// Textri draws a filled triangle with (u, v) texture coordinates
// interpolated per-pixel (affine, not perspective-correct — matching the
// 2D fantasy console's texture model) sampling either the combined
// sprite sheet or the map, with an optional chroma-key color.
func (rz *Rasterizer) Textri(x0, y0, x1, y1, x2, y2 int, u0, v0, u1, v1, u2, v2 float64, source TriSource, chromaKeys []uint8) {
	verts := [3]vertex{{float64(x0), float64(y0), u0, v0}, {float64(x1), float64(y1), u1, v1}, {float64(x2), float64(y2), u2, v2}}

	minX, maxX := minFloat3(verts[0].X, verts[1].X, verts[2].X), maxFloat3(verts[0].X, verts[1].X, verts[2].X)
	minY, maxY := minFloat3(verts[0].Y, verts[1].Y, verts[2].Y), maxFloat3(verts[0].Y, verts[1].Y, verts[2].Y)

	area := edgeFn(verts[0], verts[1], verts[2])
	if area == 0 {
		return
	}

	clip := rz.CurrentClip()
	x0i, x1i := maxInt(int(minX), clip.Left), minInt(int(maxX)+1, clip.Right)
	y0i, y1i := maxInt(int(minY), clip.Top), minInt(int(maxY)+1, clip.Bottom)

	for py := y0i; py < y1i; py++ {
		for px := x0i; px < x1i; px++ {
			p := vertex{X: float64(px) + 0.5, Y: float64(py) + 0.5}
			w0 := edgeFn(verts[1], verts[2], p) / area
			w1 := edgeFn(verts[2], verts[0], p) / area
			w2 := edgeFn(verts[0], verts[1], p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			u := w0*verts[0].U + w1*verts[1].U + w2*verts[2].U
			v := w0*verts[0].V + w1*verts[1].V + w2*verts[2].V

			var c uint8
			if source == SourceMap {
				c = rz.sampleMapPixel(int(u), int(v))
			} else {
				c = rz.sampleSheetPixel(int(u), int(v))
			}

			skip := false
			for _, k := range chromaKeys {
				if k == c {
					skip = true
					break
				}
			}
			if skip {
				continue
			}
			rz.putPixel(px, py, c)
		}
	}
}

func edgeFn(a, b, p vertex) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func (rz *Rasterizer) sampleSheetPixel(u, v int) uint8 {
	if u < 0 || v < 0 {
		return 0
	}
	tileCol, tileRow := u/8, v/8
	tileID := tileRow*tilesPerRow + tileCol
	return rz.tilePixel(tileID, u%8, v%8)
}

func (rz *Rasterizer) sampleMapPixel(u, v int) uint8 {
	if u < 0 || v < 0 {
		return 0
	}
	cellX, cellY := u/8, v/8
	tileID := int(rz.Mget(cellX, cellY))
	return rz.tilePixel(tileID, u%8, v%8)
}

func minFloat3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxFloat3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
