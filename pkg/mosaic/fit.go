package mosaic

import "github.com/paulmach/orb"

// FitExtent rescales and re-translates the composite so the projected
// geometry fills the pixel extent [[x0,y0],[x1,y1]], preserving every
// territory's relative size and offset (the reference scale changes, the
// multipliers do not).
//
// Fitting measures the composite's clipped output, so geometry outside
// every territory's clip extent does not influence the fit.
func (c *CompositeProjection) FitExtent(extent [2][2]float64, g orb.Geometry) *CompositeProjection {
	b, ok := PathBounds(c, g)
	if !ok {
		return c
	}
	w := b[1][0] - b[0][0]
	h := b[1][1] - b[0][1]
	if w <= 0 || h <= 0 {
		return c
	}
	kx := (extent[1][0] - extent[0][0]) / w
	ky := (extent[1][1] - extent[0][1]) / h
	k := kx
	if ky < k {
		k = ky
	}
	c.SetScale(c.Scale() * k)

	// Re-measure at the new scale and center the result in the extent.
	b, ok = PathBounds(c, g)
	if !ok {
		return c
	}
	t := c.Translate()
	cx := (extent[0][0] + extent[1][0]) / 2
	cy := (extent[0][1] + extent[1][1]) / 2
	bx := (b[0][0] + b[1][0]) / 2
	by := (b[0][1] + b[1][1]) / 2
	c.SetTranslate([2]float64{t[0] + cx - bx, t[1] + cy - by})
	return c
}

// FitSize is FitExtent with the extent [[0,0],[width,height]].
func (c *CompositeProjection) FitSize(width, height float64, g orb.Geometry) *CompositeProjection {
	return c.FitExtent([2][2]float64{{0, 0}, {width, height}}, g)
}
