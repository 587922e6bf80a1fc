package projection

import "math"

const resampleMaxDepth = 16

var cosMinDistance = math.Cos(30 * Radians)

// newResample wraps sink with adaptive resampling of the projected transform:
// long segments are subdivided at their spherical midpoint until the planar
// deviation falls below delta2 (squared pixels). With delta2 == 0 the
// transform is applied point-by-point with no subdivision.
func newResample(project func(lambda, phi float64) (float64, float64), delta2 float64, sink Stream) Stream {
	if delta2 == 0 {
		r := &resampleNone{project: project}
		r.sink = sink
		return r
	}
	return &resample{project: project, delta2: delta2, sink: sink}
}

type resampleNone struct {
	passthroughStream
	project func(lambda, phi float64) (float64, float64)
}

func (r *resampleNone) Point(lambda, phi float64) {
	r.sink.Point(r.project(lambda, phi))
}

type resample struct {
	project func(lambda, phi float64) (float64, float64)
	delta2  float64
	sink    Stream

	// trailing point of the open line, planar and cartesian
	lambda0, x0, y0, a0, b0, c0 float64
	// first point of the open ring, for closure resampling
	lambda00, x00, y00, a00, b00, c00 float64

	lining bool
	ringing bool
	ringStarted bool
}

func (r *resample) Point(lambda, phi float64) {
	switch {
	case !r.lining:
		x, y := r.project(lambda, phi)
		r.sink.Point(x, y)
	case r.ringing && !r.ringStarted:
		r.linePoint(lambda, phi)
		r.lambda00, r.x00, r.y00 = r.lambda0, r.x0, r.y0
		r.a00, r.b00, r.c00 = r.a0, r.b0, r.c0
		r.ringStarted = true
	default:
		r.linePoint(lambda, phi)
	}
}

func (r *resample) linePoint(lambda, phi float64) {
	a, b, c := cartesian(lambda, phi)
	x, y := r.project(lambda, phi)
	r.resampleLineTo(r.x0, r.y0, r.lambda0, r.a0, r.b0, r.c0, x, y, lambda, a, b, c, resampleMaxDepth)
	r.lambda0, r.x0, r.y0, r.a0, r.b0, r.c0 = lambda, x, y, a, b, c
	r.sink.Point(x, y)
}

func (r *resample) LineStart() {
	r.x0 = math.NaN()
	r.lining = true
	r.sink.LineStart()
}

func (r *resample) LineEnd() {
	if r.ringing && r.ringStarted {
		r.resampleLineTo(r.x0, r.y0, r.lambda0, r.a0, r.b0, r.c0,
			r.x00, r.y00, r.lambda00, r.a00, r.b00, r.c00, resampleMaxDepth)
	}
	r.lining = false
	r.ringStarted = false
	r.sink.LineEnd()
}

func (r *resample) PolygonStart() {
	r.ringing = true
	r.sink.PolygonStart()
}

func (r *resample) PolygonEnd() {
	r.ringing = false
	r.sink.PolygonEnd()
}

func (r *resample) Sphere() {
	r.sink.Sphere()
}

func (r *resample) resampleLineTo(x0, y0, lambda0, a0, b0, c0, x1, y1, lambda1, a1, b1, c1 float64, depth int) {
	dx := x1 - x0
	dy := y1 - y0
	d2 := dx*dx + dy*dy
	if d2 > 4*r.delta2 && depth > 0 {
		depth--
		a := a0 + a1
		b := b0 + b1
		c := c0 + c1
		m := math.Sqrt(a*a + b*b + c*c)
		c /= m
		phi2 := asinClamped(c)
		var lambda2 float64
		if math.Abs(math.Abs(c)-1) < epsilon || math.Abs(lambda0-lambda1) < epsilon {
			lambda2 = (lambda0 + lambda1) / 2
		} else {
			lambda2 = math.Atan2(b, a)
		}
		x2, y2 := r.project(lambda2, phi2)
		dx2 := x2 - x0
		dy2 := y2 - y0
		dz := dy*dx2 - dx*dy2
		// Split when the midpoint deviates, the segment is lopsided, or the
		// endpoints are angularly distant.
		if dz*dz/d2 > r.delta2 ||
			math.Abs((dx*dx2+dy*dy2)/d2-0.5) > 0.3 ||
			a0*a1+b0*b1+c0*c1 < cosMinDistance {
			a /= m
			b /= m
			r.resampleLineTo(x0, y0, lambda0, a0, b0, c0, x2, y2, lambda2, a, b, c, depth)
			r.sink.Point(x2, y2)
			r.resampleLineTo(x2, y2, lambda2, a, b, c, x1, y1, lambda1, a1, b1, c1, depth)
		}
	}
}

// cartesian converts spherical radians to a unit vector.
func cartesian(lambda, phi float64) (x, y, z float64) {
	cosPhi := math.Cos(phi)
	return cosPhi * math.Cos(lambda), cosPhi * math.Sin(lambda), math.Sin(phi)
}
