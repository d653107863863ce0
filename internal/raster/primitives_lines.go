package raster

// Line draws a Bresenham line from (x0, y0) to (x1, y1).
func (rz *Rasterizer) Line(x0, y0, x1, y1 int, color uint8) {
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
		rz.putPixel(x, y, color)
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

// hline draws a horizontal span [x0, x1] (inclusive, either order) at row
// y. Every filled-area primitive (rect, circ, elli, tri) funnels through
// this so clip/palette-map behavior stays in one place.
func (rz *Rasterizer) hline(x0, x1, y int, color uint8) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		rz.putPixel(x, y, color)
	}
}

// Rect draws a filled w×h rectangle with top-left corner (x, y).
func (rz *Rasterizer) Rect(x, y, w, h int, color uint8) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		rz.hline(x, x+w-1, row, color)
	}
}

// Rectb draws a w×h rectangle's border only.
func (rz *Rasterizer) Rectb(x, y, w, h int, color uint8) {
	if w <= 0 || h <= 0 {
		return
	}
	rz.hline(x, x+w-1, y, color)
	rz.hline(x, x+w-1, y+h-1, color)
	for row := y + 1; row < y+h-1; row++ {
		rz.putPixel(x, row, color)
		rz.putPixel(x+w-1, row, color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
