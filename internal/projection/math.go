package projection

import "math"

const (
	epsilon  = 1e-6
	epsilon2 = 1e-12
	pi       = math.Pi
	halfPi   = pi / 2
	quarterPi = pi / 4
	tau      = 2 * pi

	// Radians converts degrees to radians when multiplied.
	Radians = pi / 180
	// Degrees converts radians to degrees when multiplied.
	Degrees = 180 / pi
)

// sign returns -1 for negative x, +1 otherwise.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// asinClamped is asin with its argument clamped to [-1, 1], so that values
// that drift just outside the domain from floating-point error do not
// produce NaN.
func asinClamped(x float64) float64 {
	if x > 1 {
		return halfPi
	}
	if x < -1 {
		return -halfPi
	}
	return math.Asin(x)
}

// acosClamped is acos with its argument clamped to [-1, 1].
func acosClamped(x float64) float64 {
	if x > 1 {
		return 0
	}
	if x < -1 {
		return pi
	}
	return math.Acos(x)
}
