package raster

// Elli draws a filled ellipse centered at (x, y) with semi-axes a, b using
// the midpoint ellipse algorithm, tracing extents the same way Circ does.
func (rz *Rasterizer) Elli(x, y, a, b int, color uint8) {
	if a < 0 || b < 0 {
		return
	}
	rz.clearExtents(y-b, y+b)
	rz.traceEllipse(a, b, func(dx, dy int) {
		rz.widenExtent(y+dy, x-dx)
		rz.widenExtent(y+dy, x+dx)
		rz.widenExtent(y-dy, x-dx)
		rz.widenExtent(y-dy, x+dx)
	})
	rz.fillExtents(y-b, y+b, 0, color)
}

// Ellib draws an ellipse's border only.
func (rz *Rasterizer) Ellib(x, y, a, b int, color uint8) {
	if a < 0 || b < 0 {
		return
	}
	rz.traceEllipse(a, b, func(dx, dy int) {
		rz.putPixel(x+dx, y+dy, color)
		rz.putPixel(x-dx, y+dy, color)
		rz.putPixel(x+dx, y-dy, color)
		rz.putPixel(x-dx, y-dy, color)
	})
}

// traceEllipse walks the two regions of the midpoint ellipse algorithm
// (where the curve's slope is shallower/steeper than -1) and invokes plot
// for each (dx, dy) pair relative to center, one quadrant's worth of
// points (caller mirrors across both axes).
func (rz *Rasterizer) traceEllipse(a, b int, plot func(dx, dy int)) {
	if a == 0 {
		for dy := -b; dy <= b; dy++ {
			plot(0, dy)
		}
		return
	}
	if b == 0 {
		for dx := -a; dx <= a; dx++ {
			plot(dx, 0)
		}
		return
	}

	a2, b2 := a*a, b*b
	x, y := 0, b
	dx, dy := 0, 2*a2*y
	err := b2 - a2*b + a2/4

	// Region 1: slope shallower than -1.
	for dx < dy {
		plot(x, y)
		x++
		dx += 2 * b2
		if err < 0 {
			err += b2 + dx
		} else {
			y--
			dy -= 2 * a2
			err += b2 + dx - dy
		}
	}

	// Region 2: slope steeper than -1.
	err = b2*(x*x+x) + a2*(y-1)*(y-1) - a2*b2
	for y >= 0 {
		plot(x, y)
		y--
		dy -= 2 * a2
		if err > 0 {
			err += a2 - dy
		} else {
			x++
			dx += 2 * b2
			err += a2 - dy + dx
		}
	}
}
