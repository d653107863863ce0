package raster

// widenExtent records that row y includes column x, growing the row's
// [left, right] span if x lies outside it.
func (rz *Rasterizer) widenExtent(y, x int) {
	if y < 0 || y >= len(rz.left) {
		return
	}
	if rz.left[y] > rz.right[y] {
		rz.left[y] = int32(x)
		rz.right[y] = int32(x)
		return
	}
	if int32(x) < rz.left[y] {
		rz.left[y] = int32(x)
	}
	if int32(x) > rz.right[y] {
		rz.right[y] = int32(x)
	}
}

func (rz *Rasterizer) clearExtents(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= len(rz.left) {
		bottom = len(rz.left) - 1
	}
	for y := top; y <= bottom; y++ {
		rz.left[y] = 1
		rz.right[y] = 0
	}
}

func (rz *Rasterizer) fillExtents(top, bottom, offsetY int, color uint8) {
	if top < 0 {
		top = 0
	}
	if bottom >= len(rz.left) {
		bottom = len(rz.left) - 1
	}
	for y := top; y <= bottom; y++ {
		if rz.left[y] > rz.right[y] {
			continue
		}
		rz.hline(int(rz.left[y]), int(rz.right[y]), y+offsetY, color)
	}
}

// Circ draws a filled circle of radius r centered at (x, y) using the
// midpoint algorithm, tracing extents into the shared per-row buffer so
// each scanline is filled exactly once (spec.md §4.2).
func (rz *Rasterizer) Circ(x, y, r int, color uint8) {
	if r < 0 {
		return
	}
	rz.clearExtents(y-r, y+r)
	rz.traceCircle(r, func(dx, dy int) {
		rz.widenExtent(y+dy, x-dx)
		rz.widenExtent(y+dy, x+dx)
		rz.widenExtent(y-dy, x-dx)
		rz.widenExtent(y-dy, x+dx)
	})
	rz.fillExtents(y-r, y+r, 0, color)
}

// Circb draws a circle's border only.
func (rz *Rasterizer) Circb(x, y, r int, color uint8) {
	if r < 0 {
		return
	}
	rz.traceCircle(r, func(dx, dy int) {
		rz.putPixel(x+dx, y+dy, color)
		rz.putPixel(x-dx, y+dy, color)
		rz.putPixel(x+dx, y-dy, color)
		rz.putPixel(x-dx, y-dy, color)
	})
}

// traceCircle walks the midpoint circle algorithm's one-octant arc and
// invokes plot twice per step, for (x, y) and its diagonal mirror (y, x)
// (plot receives (dx, dy) relative to center; it is the caller's job to
// mirror across both axes and, for the extent-buffer fill case, to widen
// spans rather than plot points directly).
func (rz *Rasterizer) traceCircle(r int, plot func(dx, dy int)) {
	x, y := r, 0
	err := 1 - r

	for x >= y {
		plot(x, y)
		plot(y, x)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}
