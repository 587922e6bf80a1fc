package mosaic

import "github.com/paulmach/orb"

// Graticule generates meridian and parallel lines for feeding through a
// projection stream, the standard companion geometry for checking a
// composite's layout.
type Graticule struct {
	// Extent bounds the generated lines, [lon, lat] degrees.
	Extent Bounds
	// Step is the spacing between meridians and parallels in degrees.
	Step [2]float64
	// Precision is the sampling step along each line in degrees.
	Precision float64
}

// DefaultGraticule covers the world (parallels capped near the poles) with
// 10 degree spacing sampled every 2.5 degrees.
func DefaultGraticule() Graticule {
	return Graticule{
		Extent:    Bounds{MinLon: -180, MinLat: -80, MaxLon: 180, MaxLat: 80},
		Step:      [2]float64{10, 10},
		Precision: 2.5,
	}
}

// Lines returns the graticule as one line string per meridian and
// parallel.
func (g Graticule) Lines() []orb.LineString {
	step := g.Step
	if step[0] <= 0 {
		step[0] = 10
	}
	if step[1] <= 0 {
		step[1] = 10
	}
	precision := g.Precision
	if precision <= 0 {
		precision = 2.5
	}
	ext := g.Extent
	if ext.IsZero() {
		ext = DefaultGraticule().Extent
	}

	var lines []orb.LineString
	for lon := ext.MinLon; lon <= ext.MaxLon+clipInset; lon += step[0] {
		var ls orb.LineString
		for lat := ext.MinLat; lat <= ext.MaxLat+clipInset; lat += precision {
			ls = append(ls, orb.Point{lon, lat})
		}
		lines = append(lines, ls)
	}
	for lat := ext.MinLat; lat <= ext.MaxLat+clipInset; lat += step[1] {
		var ls orb.LineString
		for lon := ext.MinLon; lon <= ext.MaxLon+clipInset; lon += precision {
			ls = append(ls, orb.Point{lon, lat})
		}
		lines = append(lines, ls)
	}
	return lines
}

// MultiLineString returns the graticule as a single geometry.
func (g Graticule) MultiLineString() orb.MultiLineString {
	lines := g.Lines()
	out := make(orb.MultiLineString, len(lines))
	copy(out, lines)
	return out
}

// Outline returns the extent boundary as a closed ring.
func (g Graticule) Outline() orb.Ring {
	ext := g.Extent
	if ext.IsZero() {
		ext = DefaultGraticule().Extent
	}
	return orb.Ring{
		{ext.MinLon, ext.MinLat},
		{ext.MaxLon, ext.MinLat},
		{ext.MaxLon, ext.MaxLat},
		{ext.MinLon, ext.MaxLat},
		{ext.MinLon, ext.MinLat},
	}
}
