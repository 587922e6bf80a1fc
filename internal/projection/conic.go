package projection

import "math"

// ConicFactory builds a conic raw projection for a pair of standard
// parallels given in radians. Conic projections are reparameterized when
// their parallels change, so the pipeline holds the factory rather than a
// fixed Raw.
type ConicFactory func(phi0, phi1 float64) RawInvertible

// NewConicConformal returns the Lambert conformal conic projection with the
// given standard parallels (radians). With equal parallels at the equator it
// degenerates to Mercator.
func NewConicConformal(phi0, phi1 float64) RawInvertible {
	cy0 := math.Cos(phi0)
	var n float64
	if phi0 == phi1 {
		n = math.Sin(phi0)
	} else {
		n = math.Log(cy0/math.Cos(phi1)) /
			math.Log(math.Tan((halfPi+phi1)/2)/math.Tan((halfPi+phi0)/2))
	}
	if n == 0 {
		return Mercator{}
	}
	f := cy0 * math.Pow(math.Tan((halfPi+phi0)/2), n) / n
	return conicConformal{n: n, f: f}
}

type conicConformal struct {
	n, f float64
}

func (c conicConformal) Project(lambda, phi float64) (x, y float64) {
	// Clamp latitudes approaching the pole of divergence.
	if c.f > 0 {
		if phi < -halfPi+epsilon {
			phi = -halfPi + epsilon
		}
	} else {
		if phi > halfPi-epsilon {
			phi = halfPi - epsilon
		}
	}
	r := c.f / math.Pow(math.Tan((halfPi+phi)/2), c.n)
	return r * math.Sin(c.n*lambda), c.f - r*math.Cos(c.n*lambda)
}

func (c conicConformal) Invert(x, y float64) (lambda, phi float64) {
	fy := c.f - y
	r := sign(c.n) * math.Sqrt(x*x+fy*fy)
	l := math.Atan2(x, math.Abs(fy)) * sign(fy)
	if fy*c.n < 0 {
		l -= pi * sign(x) * sign(fy)
	}
	return l / c.n, 2*math.Atan(math.Pow(c.f/r, 1/c.n)) - halfPi
}

// NewConicEqualArea returns the Albers conic equal-area projection with the
// given standard parallels (radians). With symmetric parallels it degenerates
// to the cylindrical equal-area projection.
func NewConicEqualArea(phi0, phi1 float64) RawInvertible {
	sy0 := math.Sin(phi0)
	n := (sy0 + math.Sin(phi1)) / 2
	if math.Abs(n) < epsilon {
		return CylindricalEqualArea{CosPhi0: math.Cos(phi0)}
	}
	c := 1 + sy0*(2*n-sy0)
	return conicEqualArea{n: n, c: c, r0: math.Sqrt(c) / n}
}

type conicEqualArea struct {
	n, c, r0 float64
}

func (p conicEqualArea) Project(lambda, phi float64) (x, y float64) {
	r := math.Sqrt(p.c-2*p.n*math.Sin(phi)) / p.n
	return r * math.Sin(p.n*lambda), p.r0 - r*math.Cos(p.n*lambda)
}

func (p conicEqualArea) Invert(x, y float64) (lambda, phi float64) {
	r0y := p.r0 - y
	l := math.Atan2(x, math.Abs(r0y)) * sign(r0y)
	if r0y*p.n < 0 {
		l -= pi * sign(x) * sign(r0y)
	}
	return l / p.n, asinClamped((p.c - (x*x+r0y*r0y)*p.n*p.n) / (2 * p.n))
}

// NewConicEquidistant returns the equidistant conic projection with the
// given standard parallels (radians).
func NewConicEquidistant(phi0, phi1 float64) RawInvertible {
	cy0 := math.Cos(phi0)
	var n float64
	if phi0 == phi1 {
		n = math.Sin(phi0)
	} else {
		n = (cy0 - math.Cos(phi1)) / (phi1 - phi0)
	}
	if math.Abs(n) < epsilon {
		return Equirectangular{}
	}
	return conicEquidistant{n: n, g: cy0/n + phi0}
}

type conicEquidistant struct {
	n, g float64
}

func (p conicEquidistant) Project(lambda, phi float64) (x, y float64) {
	gy := p.g - phi
	nx := p.n * lambda
	return gy * math.Sin(nx), p.g - gy*math.Cos(nx)
}

func (p conicEquidistant) Invert(x, y float64) (lambda, phi float64) {
	gy := p.g - y
	l := math.Atan2(x, math.Abs(gy)) * sign(gy)
	if gy*p.n < 0 {
		l -= pi * sign(x) * sign(gy)
	}
	return l / p.n, p.g - sign(p.n)*math.Sqrt(x*x+gy*gy)
}
