package projection

import "math"

// NaturalEarth is the Natural Earth pseudocylindrical projection, defined by
// polynomial fits rather than closed-form spherical math. The inverse is
// computed by Newton iteration on the latitude polynomial.
type NaturalEarth struct{}

func (NaturalEarth) Project(lambda, phi float64) (x, y float64) {
	phi2 := phi * phi
	phi4 := phi2 * phi2
	x = lambda * (0.8707 - 0.131979*phi2 + phi4*(-0.013791+phi4*(0.003971*phi2-0.001529*phi4)))
	y = phi * (1.007226 + phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4)))
	return x, y
}

func (NaturalEarth) Invert(x, y float64) (lambda, phi float64) {
	phi = y
	for i := 0; i < 25; i++ {
		phi2 := phi * phi
		phi4 := phi2 * phi2
		delta := (phi*(1.007226+phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4))) - y) /
			(1.007226 + phi2*(3*0.015085+phi4*(-7*0.044475+11*0.028874*phi2-13*0.005916*phi4)))
		phi -= delta
		if math.Abs(delta) < epsilon {
			break
		}
	}
	phi2 := phi * phi
	phi4 := phi2 * phi2
	lambda = x / (0.8707 - 0.131979*phi2 + phi4*(-0.013791+phi4*(0.003971*phi2-0.001529*phi4)))
	return lambda, phi
}
