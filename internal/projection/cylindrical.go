package projection

import "math"

// Mercator is the spherical Mercator projection.
//
// The projected y diverges toward the poles; callers clip to a finite
// extent before rendering.
type Mercator struct{}

func (Mercator) Project(lambda, phi float64) (x, y float64) {
	return lambda, math.Log(math.Tan((halfPi + phi) / 2))
}

func (Mercator) Invert(x, y float64) (lambda, phi float64) {
	return x, 2*math.Atan(math.Exp(y)) - halfPi
}

// TransverseMercator is the spherical transverse Mercator projection,
// the Mercator cylinder rotated 90 degrees so the line of tangency is a
// meridian rather than the equator.
type TransverseMercator struct{}

func (TransverseMercator) Project(lambda, phi float64) (x, y float64) {
	return math.Log(math.Tan((halfPi + phi) / 2)), -lambda
}

func (TransverseMercator) Invert(x, y float64) (lambda, phi float64) {
	return -y, 2*math.Atan(math.Exp(x)) - halfPi
}

// Equirectangular is the plate carree projection: longitude and latitude map
// linearly to x and y.
type Equirectangular struct{}

func (Equirectangular) Project(lambda, phi float64) (x, y float64) {
	return lambda, phi
}

func (Equirectangular) Invert(x, y float64) (lambda, phi float64) {
	return x, y
}

// CylindricalEqualArea is the Lambert cylindrical equal-area projection with
// standard parallel phi0 (radians). Conic equal-area degenerates to this
// when its parallels are symmetric about the equator.
type CylindricalEqualArea struct {
	CosPhi0 float64
}

func (c CylindricalEqualArea) Project(lambda, phi float64) (x, y float64) {
	return lambda * c.CosPhi0, math.Sin(phi) / c.CosPhi0
}

func (c CylindricalEqualArea) Invert(x, y float64) (lambda, phi float64) {
	return x / c.CosPhi0, asinClamped(y * c.CosPhi0)
}
