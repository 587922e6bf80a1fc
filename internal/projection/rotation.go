package projection

import "math"

// rotation is a composed spherical rotation by [deltaLambda, deltaPhi,
// deltaGamma] radians: a rotation about the polar axis followed by rotations
// moving the pole and spinning about it. It is exactly invertible.
type rotation struct {
	deltaLambda          float64
	cosPhi, sinPhi       float64
	cosGamma, sinGamma   float64
	identityPhiGamma     bool
}

func newRotation(deltaLambda, deltaPhi, deltaGamma float64) rotation {
	return rotation{
		deltaLambda:      normalizeLambda(deltaLambda),
		cosPhi:           math.Cos(deltaPhi),
		sinPhi:           math.Sin(deltaPhi),
		cosGamma:         math.Cos(deltaGamma),
		sinGamma:         math.Sin(deltaGamma),
		identityPhiGamma: deltaPhi == 0 && deltaGamma == 0,
	}
}

// normalizeLambda wraps a longitude in radians into (-pi, pi].
func normalizeLambda(lambda float64) float64 {
	if math.Abs(lambda) > pi {
		lambda = math.Mod(lambda+pi, tau)
		if lambda < 0 {
			lambda += tau
		}
		lambda -= pi
	}
	return lambda
}

func (r rotation) rotate(lambda, phi float64) (float64, float64) {
	lambda = normalizeLambda(lambda + r.deltaLambda)
	if r.identityPhiGamma {
		return lambda, phi
	}
	cosPhiP := math.Cos(phi)
	x := math.Cos(lambda) * cosPhiP
	y := math.Sin(lambda) * cosPhiP
	z := math.Sin(phi)
	k := z*r.cosPhi + x*r.sinPhi
	return math.Atan2(y*r.cosGamma-k*r.sinGamma, x*r.cosPhi-z*r.sinPhi),
		asinClamped(k*r.cosGamma + y*r.sinGamma)
}

func (r rotation) invert(lambda, phi float64) (float64, float64) {
	if !r.identityPhiGamma {
		cosPhiP := math.Cos(phi)
		x := math.Cos(lambda) * cosPhiP
		y := math.Sin(lambda) * cosPhiP
		z := math.Sin(phi)
		k := z*r.cosGamma - y*r.sinGamma
		lambda = math.Atan2(y*r.cosGamma+z*r.sinGamma, x*r.cosPhi+k*r.sinPhi)
		phi = asinClamped(k*r.cosPhi - x*r.sinPhi)
	}
	return normalizeLambda(lambda - r.deltaLambda), phi
}
