package projection

// clipRect clips planar geometry to an axis-aligned rectangle. It is the
// final transform stage of a projection pipeline (after resampling), so its
// coordinates are screen pixels.
//
// Lines are clipped segment-by-segment with Liang-Barsky interpolation,
// breaking into separate lineStart/lineEnd runs as the line leaves and
// re-enters the rectangle. Polygon rings are buffered and clipped whole with
// Sutherland-Hodgman so rings stay closed along the clip border.
type clipRect struct {
	x0, y0, x1, y1 float64
	sink           Stream

	polygon bool
	ring    [][2]float64

	lining     bool
	hasPrev    bool
	px, py     float64
	lineActive bool
}

func newClipRect(x0, y0, x1, y1 float64, sink Stream) *clipRect {
	return &clipRect{x0: x0, y0: y0, x1: x1, y1: y1, sink: sink}
}

// NewClipRectStream returns a stream that clips planar geometry to the
// rectangle [x0,x1]x[y0,y1] before forwarding to sink.
func NewClipRectStream(x0, y0, x1, y1 float64, sink Stream) Stream {
	return newClipRect(x0, y0, x1, y1, sink)
}

func (c *clipRect) contains(x, y float64) bool {
	return x >= c.x0 && x <= c.x1 && y >= c.y0 && y <= c.y1
}

func (c *clipRect) Point(x, y float64) {
	switch {
	case c.polygon:
		c.ring = append(c.ring, [2]float64{x, y})
	case c.lining:
		c.linePoint(x, y)
	default:
		if c.contains(x, y) {
			c.sink.Point(x, y)
		}
	}
}

func (c *clipRect) linePoint(x, y float64) {
	if !c.hasPrev {
		c.px, c.py = x, y
		c.hasPrev = true
		return
	}
	ax, ay, bx, by, aClipped, bClipped, visible := c.clipSegment(c.px, c.py, x, y)
	if visible {
		if !c.lineActive {
			c.sink.LineStart()
			c.sink.Point(ax, ay)
			c.lineActive = true
		} else if aClipped {
			// The line left the rectangle and came back: break the run.
			c.sink.LineEnd()
			c.sink.LineStart()
			c.sink.Point(ax, ay)
		}
		c.sink.Point(bx, by)
		if bClipped {
			c.sink.LineEnd()
			c.lineActive = false
		}
	}
	c.px, c.py = x, y
}

func (c *clipRect) LineStart() {
	if c.polygon {
		c.ring = c.ring[:0]
		return
	}
	c.lining = true
	c.hasPrev = false
	c.lineActive = false
}

func (c *clipRect) LineEnd() {
	if c.polygon {
		c.emitRing(clipRingToRect(c.ring, c.x0, c.y0, c.x1, c.y1))
		return
	}
	if c.lineActive {
		c.sink.LineEnd()
		c.lineActive = false
	}
	c.lining = false
}

func (c *clipRect) PolygonStart() {
	c.polygon = true
	c.sink.PolygonStart()
}

func (c *clipRect) PolygonEnd() {
	c.polygon = false
	c.sink.PolygonEnd()
}

// Sphere renders as the full clip rectangle: the whole globe clipped to the
// viewport is the viewport.
func (c *clipRect) Sphere() {
	c.sink.PolygonStart()
	c.sink.LineStart()
	c.sink.Point(c.x0, c.y0)
	c.sink.Point(c.x1, c.y0)
	c.sink.Point(c.x1, c.y1)
	c.sink.Point(c.x0, c.y1)
	c.sink.LineEnd()
	c.sink.PolygonEnd()
}

func (c *clipRect) emitRing(ring [][2]float64) {
	if len(ring) < 3 {
		return
	}
	c.sink.LineStart()
	for _, p := range ring {
		c.sink.Point(p[0], p[1])
	}
	c.sink.LineEnd()
}

// clipSegment clips the segment (ax,ay)-(bx,by) to the rectangle using the
// Liang-Barsky parametric method. aClipped/bClipped report whether either
// endpoint was moved onto the rectangle border.
func (c *clipRect) clipSegment(ax, ay, bx, by float64) (cax, cay, cbx, cby float64, aClipped, bClipped, visible bool) {
	t0, t1 := 0.0, 1.0
	dx := bx - ax
	dy := by - ay

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}

	if !clip(-dx, ax-c.x0) || !clip(dx, c.x1-ax) ||
		!clip(-dy, ay-c.y0) || !clip(dy, c.y1-ay) {
		return 0, 0, 0, 0, false, false, false
	}
	cax, cay = ax+t0*dx, ay+t0*dy
	cbx, cby = ax+t1*dx, ay+t1*dy
	return cax, cay, cbx, cby, t0 > 0, t1 < 1, true
}

// clipRingToRect clips a polygon ring (open form, no duplicate closing
// point) to a rectangle with Sutherland-Hodgman, one border half-plane at a
// time. Returns an open ring; empty when fully outside.
func clipRingToRect(ring [][2]float64, x0, y0, x1, y1 float64) [][2]float64 {
	if len(ring) == 0 {
		return nil
	}
	out := ring
	for edge := 0; edge < 4; edge++ {
		in := out
		out = nil
		if len(in) == 0 {
			return nil
		}
		inside := func(p [2]float64) bool {
			switch edge {
			case 0:
				return p[0] >= x0
			case 1:
				return p[0] <= x1
			case 2:
				return p[1] >= y0
			default:
				return p[1] <= y1
			}
		}
		intersect := func(a, b [2]float64) [2]float64 {
			var t float64
			switch edge {
			case 0:
				t = (x0 - a[0]) / (b[0] - a[0])
				return [2]float64{x0, a[1] + t*(b[1]-a[1])}
			case 1:
				t = (x1 - a[0]) / (b[0] - a[0])
				return [2]float64{x1, a[1] + t*(b[1]-a[1])}
			case 2:
				t = (y0 - a[1]) / (b[1] - a[1])
				return [2]float64{a[0] + t*(b[0]-a[0]), y0}
			default:
				t = (y1 - a[1]) / (b[1] - a[1])
				return [2]float64{a[0] + t*(b[0]-a[0]), y1}
			}
		}
		prev := in[len(in)-1]
		prevIn := inside(prev)
		for _, cur := range in {
			curIn := inside(cur)
			if curIn {
				if !prevIn {
					out = append(out, intersect(prev, cur))
				}
				out = append(out, cur)
			} else if prevIn {
				out = append(out, intersect(prev, cur))
			}
			prev, prevIn = cur, curIn
		}
	}
	return out
}
