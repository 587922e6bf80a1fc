package projection

import "math"

// Projection composes a raw projection with rotation, centering, scaling,
// translation, precision-controlled resampling, and clipping into the
// standard projection contract: forward/inverse point evaluation plus a
// stream transform chain.
//
// Setters return the projection for chaining and rebuild derived state
// immediately; the cached stream is invalidated by every setter.
type Projection struct {
	raw   Raw
	conic ConicFactory // non-nil only for conic families

	k      float64 // scale
	tx, ty float64 // translate

	lambda0, phi0                     float64 // center, radians
	deltaLambda, deltaPhi, deltaGamma float64 // rotation, radians
	parallel1, parallel2              float64 // standard parallels, radians

	theta  float64         // clip angle, radians; <= 0 selects antimeridian cutting
	clip   *[2][2]float64  // pixel clip extent, nil = unclipped
	delta2 float64         // squared resampling precision

	rot              rotation
	dx, dy           float64
	projectTransform func(lambda, phi float64) (float64, float64)

	cacheSink   Stream
	cacheStream Stream
}

// New returns a projection over the given raw math with the conventional
// defaults: scale 150, translate [480, 250], precision sqrt(0.5), no
// rotation, antimeridian cutting, no clip extent.
func New(raw Raw) *Projection {
	p := &Projection{
		raw:    raw,
		k:      150,
		tx:     480,
		ty:     250,
		theta:  -1,
		delta2: 0.5,
	}
	p.recenter()
	return p
}

// NewConic returns a projection whose raw math is rebuilt from the factory
// whenever the standard parallels change. Initial parallels are [0, 60].
func NewConic(factory ConicFactory) *Projection {
	p := &Projection{
		conic:     factory,
		parallel1: 0,
		parallel2: 60 * Radians,
		k:         150,
		tx:        480,
		ty:        250,
		theta:     -1,
		delta2:    0.5,
	}
	p.raw = factory(p.parallel1, p.parallel2)
	p.recenter()
	return p
}

// IsConic reports whether the projection supports standard parallels.
func (p *Projection) IsConic() bool { return p.conic != nil }

// Scale returns the current scale factor.
func (p *Projection) Scale() float64 { return p.k }

// SetScale sets the scale factor.
func (p *Projection) SetScale(k float64) *Projection {
	p.k = k
	p.recenter()
	return p
}

// Translate returns the current translate point in pixels.
func (p *Projection) Translate() [2]float64 { return [2]float64{p.tx, p.ty} }

// SetTranslate sets the pixel position of the projection center.
func (p *Projection) SetTranslate(t [2]float64) *Projection {
	p.tx, p.ty = t[0], t[1]
	p.recenter()
	return p
}

// Center returns the geographic center in degrees.
func (p *Projection) Center() [2]float64 {
	return [2]float64{p.lambda0 * Degrees, p.phi0 * Degrees}
}

// SetCenter sets the geographic center (degrees) mapped to the translate
// point.
func (p *Projection) SetCenter(c [2]float64) *Projection {
	p.lambda0 = c[0] * Radians
	p.phi0 = c[1] * Radians
	p.recenter()
	return p
}

// Rotate returns the three-axis rotation in degrees.
func (p *Projection) Rotate() [3]float64 {
	return [3]float64{p.deltaLambda * Degrees, p.deltaPhi * Degrees, p.deltaGamma * Degrees}
}

// SetRotate sets the three-axis rotation (degrees).
func (p *Projection) SetRotate(r [3]float64) *Projection {
	p.deltaLambda = r[0] * Radians
	p.deltaPhi = r[1] * Radians
	p.deltaGamma = r[2] * Radians
	p.recenter()
	return p
}

// Parallels returns the standard parallels in degrees. Meaningful only when
// IsConic reports true.
func (p *Projection) Parallels() [2]float64 {
	return [2]float64{p.parallel1 * Degrees, p.parallel2 * Degrees}
}

// SetParallels sets the standard parallels (degrees) and rebuilds the conic
// raw projection. It is a no-op for non-conic projections.
func (p *Projection) SetParallels(parallels [2]float64) *Projection {
	if p.conic == nil {
		return p
	}
	p.parallel1 = parallels[0] * Radians
	p.parallel2 = parallels[1] * Radians
	p.raw = p.conic(p.parallel1, p.parallel2)
	p.recenter()
	return p
}

// ClipAngle returns the small-circle clip angle in degrees, 0 when
// antimeridian cutting is in effect.
func (p *Projection) ClipAngle() float64 {
	if p.theta <= 0 {
		return 0
	}
	return p.theta * Degrees
}

// SetClipAngle sets the small-circle clip radius (degrees). A value of 0
// restores antimeridian cutting.
func (p *Projection) SetClipAngle(angle float64) *Projection {
	if angle > 0 {
		p.theta = angle * Radians
	} else {
		p.theta = -1
	}
	p.invalidate()
	return p
}

// ClipExtent returns the pixel clip rectangle, or nil when unclipped.
func (p *Projection) ClipExtent() *[2][2]float64 {
	if p.clip == nil {
		return nil
	}
	r := *p.clip
	return &r
}

// SetClipExtent sets the pixel clip rectangle [[x0,y0],[x1,y1]]. Passing nil
// removes clipping.
func (p *Projection) SetClipExtent(extent *[2][2]float64) *Projection {
	if extent == nil {
		p.clip = nil
	} else {
		r := *extent
		p.clip = &r
	}
	p.invalidate()
	return p
}

// Precision returns the resampling precision in pixels.
func (p *Projection) Precision() float64 { return math.Sqrt(p.delta2) }

// SetPrecision sets the resampling precision (pixels); 0 disables adaptive
// resampling.
func (p *Projection) SetPrecision(precision float64) *Projection {
	p.delta2 = precision * precision
	p.invalidate()
	return p
}

// Project maps [longitude, latitude] in degrees to pixel coordinates.
// ok is false when the projection math is undefined at the coordinate.
func (p *Projection) Project(coord [2]float64) (xy [2]float64, ok bool) {
	lambda, phi := p.rot.rotate(coord[0]*Radians, coord[1]*Radians)
	x, y := p.projectTransform(lambda, phi)
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return [2]float64{}, false
	}
	return [2]float64{x, y}, true
}

// Invert maps pixel coordinates back to [longitude, latitude] degrees.
// ok is false when the raw projection has no inverse or the point is outside
// its planar domain.
func (p *Projection) Invert(xy [2]float64) (coord [2]float64, ok bool) {
	inv, invertible := p.raw.(RawInvertible)
	if !invertible {
		return [2]float64{}, false
	}
	x := (xy[0] - p.dx) / p.k
	y := (p.dy - xy[1]) / p.k
	lambda, phi := inv.Invert(x, y)
	if math.IsNaN(lambda) || math.IsNaN(phi) {
		return [2]float64{}, false
	}
	lambda, phi = p.rot.invert(lambda, phi)
	return [2]float64{lambda * Degrees, phi * Degrees}, true
}

// Stream returns the transform chain feeding sink: degrees to radians,
// rotation, spherical clipping, resampled projection, then rectangle
// clipping. The chain is cached per sink identity and rebuilt after any
// parameter change.
func (p *Projection) Stream(sink Stream) Stream {
	if p.cacheStream != nil && p.cacheSink == sink {
		return p.cacheStream
	}

	var post Stream = sink
	if p.clip != nil {
		post = newClipRect(p.clip[0][0], p.clip[0][1], p.clip[1][0], p.clip[1][1], sink)
	}
	res := newResample(p.projectTransform, p.delta2, post)
	var pre Stream
	if p.theta > 0 {
		pre = newClipCircle(p.theta, res)
	} else {
		pre = newClipAntimeridian(res)
	}
	rot := &rotateStream{rot: p.rot}
	rot.sink = pre
	rad := &transformRadians{}
	rad.sink = rot

	p.cacheSink = sink
	p.cacheStream = rad
	return rad
}

// recenter rebuilds the rotation and the planar transform so the geographic
// center projects to the translate point.
func (p *Projection) recenter() {
	p.rot = newRotation(p.deltaLambda, p.deltaPhi, p.deltaGamma)
	cx, cy := p.raw.Project(p.lambda0, p.phi0)
	p.dx = p.tx - cx*p.k
	p.dy = p.ty + cy*p.k
	raw, k, dx, dy := p.raw, p.k, p.dx, p.dy
	p.projectTransform = func(lambda, phi float64) (float64, float64) {
		x, y := raw.Project(lambda, phi)
		return dx + x*k, dy - y*k
	}
	p.invalidate()
}

func (p *Projection) invalidate() {
	p.cacheSink = nil
	p.cacheStream = nil
}

// rotateStream applies the projection rotation to point events.
type rotateStream struct {
	passthroughStream
	rot rotation
}

func (s *rotateStream) Point(lambda, phi float64) {
	s.sink.Point(s.rot.rotate(lambda, phi))
}
