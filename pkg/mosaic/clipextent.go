package mosaic

// Clip extent math. A sub-projection's clip extent confines its rendering
// to a rectangular slot on the canvas; without one, geometry from the
// projection's mathematically infinite domain would bleed across the rest
// of the composite.

// clipInset is shaved off every computed clip rectangle edge so that two
// abutting territory rectangles never share boundary pixels.
const clipInset = 1e-6

// defaultClipHalfExtent is the half-size of the fallback clip square as a
// fraction of scale: a square of side scale*0.2 centered on the territory's
// translate point.
const defaultClipHalfExtent = 0.1

// ClipExtentFraction is a clip rectangle in normalized units: fractions of
// the projection scale, relative to the translate point.
type ClipExtentFraction struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// NormalizedToPixelClipExtent converts a normalized clip rectangle into an
// absolute pixel rectangle for the given scale and translate point, with a
// small epsilon inset against edge-adjacency artifacts.
func NormalizedToPixelClipExtent(f ClipExtentFraction, scale float64, translate [2]float64) [2][2]float64 {
	return [2][2]float64{
		{translate[0] + f.X1*scale + clipInset, translate[1] + f.Y1*scale + clipInset},
		{translate[0] + f.X2*scale - clipInset, translate[1] + f.Y2*scale - clipInset},
	}
}

// PixelClipExtentFromOffset converts a center-relative pixel rectangle, the
// form used by the persisted config's layout.clipExtent, into an absolute
// pixel rectangle about the given center point.
func PixelClipExtentFromOffset(center [2]float64, rect [2][2]float64) [2][2]float64 {
	return [2][2]float64{
		{center[0] + rect[0][0] + clipInset, center[1] + rect[0][1] + clipInset},
		{center[0] + rect[1][0] - clipInset, center[1] + rect[1][1] - clipInset},
	}
}

// DefaultClipExtent returns the fallback clip rectangle for a territory
// with no configured clip extent: a square of side scale*0.2 centered on
// the translate point.
func DefaultClipExtent(scale float64, translate [2]float64) [2][2]float64 {
	h := scale * defaultClipHalfExtent
	return [2][2]float64{
		{translate[0] - h, translate[1] - h},
		{translate[0] + h, translate[1] + h},
	}
}

// ValidPixelRect reports whether the rectangle is well-formed: x1 < x2 and
// y1 < y2. Degenerate rectangles are rejected by the sub-projection
// factory, which substitutes DefaultClipExtent.
func ValidPixelRect(rect [2][2]float64) bool {
	return rect[0][0] < rect[1][0] && rect[0][1] < rect[1][1]
}

func rectContains(rect [2][2]float64, x, y float64) bool {
	return x >= rect[0][0] && x <= rect[1][0] && y >= rect[0][1] && y <= rect[1][1]
}
