package projection

// Raw is a raw projection: the bare spherical-to-planar math, operating in
// radians on the unit sphere, before any rotation, scaling, or translation
// is applied.
type Raw interface {
	// Project maps spherical coordinates (lambda, phi) in radians to planar
	// coordinates in projection units.
	Project(lambda, phi float64) (x, y float64)
}

// RawInvertible is a raw projection with an inverse.
//
// Callers must feature-test for this interface before inverting; some
// projections (or future registrations) may be forward-only.
type RawInvertible interface {
	Raw
	// Invert maps planar coordinates back to spherical (lambda, phi) radians.
	Invert(x, y float64) (lambda, phi float64)
}
