package projection

import "math"

// azimuthal builds the common azimuthal forward/inverse pair from a radial
// scale function and its inverse angle function.
type azimuthal struct {
	scale func(cxcy float64) float64
	angle func(z float64) float64
}

func (a azimuthal) Project(lambda, phi float64) (x, y float64) {
	cx := math.Cos(lambda)
	cy := math.Cos(phi)
	k := a.scale(cx * cy)
	if math.IsInf(k, 0) {
		return 2, 0
	}
	return k * cy * math.Sin(lambda), k * math.Sin(phi)
}

func (a azimuthal) Invert(x, y float64) (lambda, phi float64) {
	z := math.Sqrt(x*x + y*y)
	c := a.angle(z)
	sc := math.Sin(c)
	cc := math.Cos(c)
	lambda = math.Atan2(x*sc, z*cc)
	if z == 0 {
		return lambda, asinClamped(0)
	}
	return lambda, asinClamped(y * sc / z)
}

// AzimuthalEqualArea is the Lambert azimuthal equal-area projection.
func AzimuthalEqualArea() RawInvertible {
	return azimuthal{
		scale: func(cxcy float64) float64 { return math.Sqrt(2 / (1 + cxcy)) },
		angle: func(z float64) float64 { return 2 * asinClamped(z/2) },
	}
}

// AzimuthalEquidistant is the azimuthal equidistant projection.
func AzimuthalEquidistant() RawInvertible {
	return azimuthal{
		scale: func(cxcy float64) float64 {
			c := acosClamped(cxcy)
			if c == 0 {
				return 1
			}
			return c / math.Sin(c)
		},
		angle: func(z float64) float64 { return z },
	}
}

// Stereographic is the stereographic projection.
type Stereographic struct{}

func (Stereographic) Project(lambda, phi float64) (x, y float64) {
	cy := math.Cos(phi)
	k := 1 + math.Cos(lambda)*cy
	return cy * math.Sin(lambda) / k, math.Sin(phi) / k
}

func (Stereographic) Invert(x, y float64) (lambda, phi float64) {
	z := math.Sqrt(x*x + y*y)
	c := 2 * math.Atan(z)
	sc := math.Sin(c)
	cc := math.Cos(c)
	lambda = math.Atan2(x*sc, z*cc)
	if z == 0 {
		return lambda, 0
	}
	return lambda, asinClamped(y * sc / z)
}

// Orthographic is the orthographic projection: the globe as seen from
// infinite distance. Forward projection of the far hemisphere folds onto
// the near one; the clip angle is normally set to 90 degrees.
type Orthographic struct{}

func (Orthographic) Project(lambda, phi float64) (x, y float64) {
	return math.Cos(phi) * math.Sin(lambda), math.Sin(phi)
}

func (Orthographic) Invert(x, y float64) (lambda, phi float64) {
	z := math.Sqrt(x*x + y*y)
	c := asinClamped(z)
	sc := math.Sin(c)
	cc := math.Cos(c)
	lambda = math.Atan2(x*sc, z*cc)
	if z == 0 {
		return lambda, 0
	}
	return lambda, asinClamped(y * sc / z)
}
