package mosaic

import (
	"github.com/rs/zerolog"
)

// DefaultReferenceScale is used when a config carries no reference scale.
const DefaultReferenceScale = 2700

// defaultConicParallels prevents degenerate single-parallel behavior when a
// conic territory omits its parallels.
var defaultConicParallels = [2]float64{0, 60}

// newSubProjection builds one territory's concrete projection from its
// resolved parameters.
//
// Positioning depends on the projection family: conic and azimuthal
// projections take a rotation, cylindrical and pseudocylindrical ones take
// a center. A geographic focus point (focusLongitude/focusLatitude) is
// applied through whichever primitive the family supports and takes
// precedence over an explicit rotate array.
//
// A malformed configured clip extent is replaced by the scale-derived
// default rather than propagated; the substitution is logged on the debug
// channel.
func newSubProjection(t TerritoryConfig, params Parameters, width, height, referenceScale float64, registry *Registry, logger zerolog.Logger) (*Projection, Family, error) {
	if t.Projection.ID == "" {
		return nil, "", &ErrInvalidConfig{Field: "projection.id", Territory: t.Code, Reason: "missing"}
	}
	proj, family, err := registry.Create(t.Projection.ID)
	if err != nil {
		return nil, "", err
	}

	// Positioning.
	switch {
	case params.FocusLongitude != nil && params.FocusLatitude != nil:
		focus := [2]float64{*params.FocusLongitude, *params.FocusLatitude}
		if family.usesCenter() {
			proj.SetCenter(focus)
		} else {
			proj.SetRotate([3]float64{-focus[0], -focus[1], 0})
		}
	case params.Rotate != nil && !family.usesCenter():
		proj.SetRotate(padRotation(params.Rotate))
	case params.Center != nil && family.usesCenter():
		proj.SetCenter(*params.Center)
	}

	if family == FamilyConic {
		if params.Parallels != nil {
			proj.SetParallels(*params.Parallels)
		} else {
			proj.SetParallels(defaultConicParallels)
		}
	}

	if referenceScale <= 0 {
		referenceScale = DefaultReferenceScale
	}
	multiplier := 1.0
	if params.ScaleMultiplier != nil {
		multiplier = *params.ScaleMultiplier
	}
	proj.SetScale(referenceScale * multiplier)

	if family == FamilyAzimuthal && params.ClipAngle != nil {
		proj.SetClipAngle(*params.ClipAngle)
	}
	if params.Precision != nil {
		proj.SetPrecision(*params.Precision)
	}

	offset := resolveTranslateOffset(t, params)
	translate := [2]float64{width/2 + offset[0], height/2 + offset[1]}
	proj.SetTranslate(translate)

	clip := resolveClipExtent(t, proj.Scale(), translate, logger)
	proj.SetClipExtent(&clip)

	return proj, family, nil
}

// resolveTranslateOffset prefers layout.translateOffset; the deprecated
// parameters.translateOffset is accepted as a fallback for configs written
// before layout became canonical.
func resolveTranslateOffset(t TerritoryConfig, params Parameters) [2]float64 {
	if t.Layout.TranslateOffset != ([2]float64{}) {
		return t.Layout.TranslateOffset
	}
	if params.TranslateOffset != nil {
		return *params.TranslateOffset
	}
	return [2]float64{}
}

func resolveClipExtent(t TerritoryConfig, scale float64, translate [2]float64, logger zerolog.Logger) [2][2]float64 {
	if t.Layout.ClipExtent != nil {
		abs := PixelClipExtentFromOffset(translate, *t.Layout.ClipExtent)
		if ValidPixelRect(abs) {
			return abs
		}
		logger.Debug().
			Str("territory", t.Code).
			Floats64("clipExtent", flattenRect(*t.Layout.ClipExtent)).
			Msg("malformed clip extent, substituting scale-derived default")
	}
	return DefaultClipExtent(scale, translate)
}

func flattenRect(rect [2][2]float64) []float64 {
	return []float64{rect[0][0], rect[0][1], rect[1][0], rect[1][1]}
}

// padRotation pads or truncates a rotation array to three components.
func padRotation(rotate []float64) [3]float64 {
	var out [3]float64
	copy(out[:], rotate)
	return out
}
