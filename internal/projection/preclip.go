package projection

import "math"

// Spherical pre-clipping runs after rotation and before resampling, in
// radians. Two strategies exist: antimeridian cutting (the default) and
// small-circle clipping about the projection center (ClipAngle).
//
// Both cut lines at the clip boundary; rings that straddle the boundary are
// cut the same way and not re-joined along it. Composite atlases clip every
// sub-projection to a small pixel rectangle, so boundary-straddling rings
// are already confined by the rectangle post-clip.

// clipAntimeridian cuts line segments that cross the antimeridian, emitting
// the crossing point on both sides so no segment spans the discontinuity.
type clipAntimeridian struct {
	sink Stream

	lining           bool
	hasPrev          bool
	lambda0, phi0    float64
	sign0            float64
}

func newClipAntimeridian(sink Stream) *clipAntimeridian {
	return &clipAntimeridian{sink: sink}
}

func (c *clipAntimeridian) Point(lambda, phi float64) {
	if !c.lining {
		c.sink.Point(lambda, phi)
		return
	}
	s := sign(lambda)
	if lambda == 0 || math.Abs(lambda) == pi {
		s = c.sign0
	}
	if c.hasPrev && s != c.sign0 && math.Abs(lambda-c.lambda0) >= pi {
		// Nudge exact boundary points off the discontinuity.
		if math.Abs(c.lambda0) == pi {
			c.lambda0 -= c.sign0 * epsilon
		}
		if math.Abs(lambda) == pi {
			lambda -= s * epsilon
		}
		phiCross := antimeridianIntersect(c.lambda0, c.phi0, lambda, phi)
		c.sink.Point(c.sign0*pi, phiCross)
		c.sink.LineEnd()
		c.sink.LineStart()
		c.sink.Point(s*pi, phiCross)
	}
	c.sink.Point(lambda, phi)
	c.lambda0, c.phi0, c.sign0 = lambda, phi, s
	c.hasPrev = true
}

// antimeridianIntersect returns the latitude at which the great circle
// through the two points crosses the antimeridian.
func antimeridianIntersect(lambda0, phi0, lambda1, phi1 float64) float64 {
	sinLambda0Lambda1 := math.Sin(lambda0 - lambda1)
	if math.Abs(sinLambda0Lambda1) <= epsilon {
		return (phi0 + phi1) / 2
	}
	cosPhi0 := math.Cos(phi0)
	cosPhi1 := math.Cos(phi1)
	return math.Atan((math.Sin(phi0)*cosPhi1*math.Sin(lambda1) -
		math.Sin(phi1)*cosPhi0*math.Sin(lambda0)) /
		(cosPhi0 * cosPhi1 * sinLambda0Lambda1))
}

func (c *clipAntimeridian) LineStart() {
	c.lining = true
	c.hasPrev = false
	c.sink.LineStart()
}

func (c *clipAntimeridian) LineEnd() {
	c.lining = false
	c.sink.LineEnd()
}

func (c *clipAntimeridian) PolygonStart() { c.sink.PolygonStart() }
func (c *clipAntimeridian) PolygonEnd()   { c.sink.PolygonEnd() }
func (c *clipAntimeridian) Sphere()       { c.sink.Sphere() }

// clipCircle clips geometry to the spherical cap of angular radius theta
// about the projection center (the origin of rotated coordinates). Segments
// crossing the cap boundary are cut at the boundary by bisection.
type clipCircle struct {
	cosTheta float64
	sink     Stream

	lining        bool
	hasPrev       bool
	lambda0, phi0 float64
	prevVisible   bool
	lineActive    bool
}

func newClipCircle(theta float64, sink Stream) *clipCircle {
	return &clipCircle{cosTheta: math.Cos(theta), sink: sink}
}

func (c *clipCircle) visible(lambda, phi float64) bool {
	return math.Cos(lambda)*math.Cos(phi) > c.cosTheta
}

// boundary bisects the segment between a visible and an invisible endpoint
// until the crossing is located to within epsilon.
func (c *clipCircle) boundary(laIn, phIn, laOut, phOut float64) (float64, float64) {
	for i := 0; i < 32; i++ {
		laMid, phMid := sphericalMidpoint(laIn, phIn, laOut, phOut)
		if c.visible(laMid, phMid) {
			laIn, phIn = laMid, phMid
		} else {
			laOut, phOut = laMid, phMid
		}
	}
	return laIn, phIn
}

func sphericalMidpoint(lambda0, phi0, lambda1, phi1 float64) (float64, float64) {
	x0, y0, z0 := cartesian(lambda0, phi0)
	x1, y1, z1 := cartesian(lambda1, phi1)
	x := x0 + x1
	y := y0 + y1
	z := z0 + z1
	m := math.Sqrt(x*x + y*y + z*z)
	if m < epsilon2 {
		return lambda0, phi0
	}
	return math.Atan2(y, x), asinClamped(z / m)
}

func (c *clipCircle) Point(lambda, phi float64) {
	v := c.visible(lambda, phi)
	if !c.lining {
		if v {
			c.sink.Point(lambda, phi)
		}
		return
	}
	if !c.hasPrev {
		if v {
			c.sink.LineStart()
			c.sink.Point(lambda, phi)
			c.lineActive = true
		}
	} else if v != c.prevVisible {
		var bl, bp float64
		if v {
			bl, bp = c.boundary(lambda, phi, c.lambda0, c.phi0)
			c.sink.LineStart()
			c.sink.Point(bl, bp)
			c.sink.Point(lambda, phi)
			c.lineActive = true
		} else {
			bl, bp = c.boundary(c.lambda0, c.phi0, lambda, phi)
			c.sink.Point(bl, bp)
			c.sink.LineEnd()
			c.lineActive = false
		}
	} else if v {
		c.sink.Point(lambda, phi)
	}
	c.lambda0, c.phi0, c.prevVisible = lambda, phi, v
	c.hasPrev = true
}

func (c *clipCircle) LineStart() {
	c.lining = true
	c.hasPrev = false
	c.lineActive = false
}

func (c *clipCircle) LineEnd() {
	if c.lineActive {
		c.sink.LineEnd()
		c.lineActive = false
	}
	c.lining = false
}

func (c *clipCircle) PolygonStart() { c.sink.PolygonStart() }
func (c *clipCircle) PolygonEnd()   { c.sink.PolygonEnd() }
func (c *clipCircle) Sphere()       { c.sink.Sphere() }
