package mosaic

import "fmt"

// Family classifies a projection by the positioning and parameter
// primitives it accepts. Cylindrical and pseudocylindrical projections are
// positioned with center; conic and azimuthal projections are positioned
// with rotate. Parallels apply to conic projections only, clip angle to
// azimuthal only.
type Family string

const (
	FamilyCylindrical       Family = "cylindrical"
	FamilyConic             Family = "conic"
	FamilyAzimuthal         Family = "azimuthal"
	FamilyPseudocylindrical Family = "pseudocylindrical"
	FamilyPolyhedral        Family = "polyhedral"
	FamilyComposite         Family = "composite"
	FamilyOther             Family = "other"
)

// usesCenter reports whether the family is positioned with center rather
// than rotate. The two are mathematically interconvertible
// (rotate = [-centerLon, -centerLat, 0]) but a concrete projection accepts
// only one form.
func (f Family) usesCenter() bool {
	return f == FamilyCylindrical || f == FamilyPseudocylindrical
}

// Parameter keys accepted by Parameters.Set and ParameterManager setters.
const (
	KeyCenter          = "center"
	KeyRotate          = "rotate"
	KeyParallels       = "parallels"
	KeyScale           = "scale"
	KeyBaseScale       = "baseScale"
	KeyScaleMultiplier = "scaleMultiplier"
	KeyTranslate       = "translate"
	KeyTranslateOffset = "translateOffset"
	KeyClipAngle       = "clipAngle"
	KeyPrecision       = "precision"
	KeyFocusLongitude  = "focusLongitude"
	KeyFocusLatitude   = "focusLatitude"
)

// ParameterKeys returns every key understood by the parameter model.
func ParameterKeys() []string {
	return []string{
		KeyCenter, KeyRotate, KeyParallels, KeyScale, KeyBaseScale,
		KeyScaleMultiplier, KeyTranslate, KeyTranslateOffset,
		KeyClipAngle, KeyPrecision, KeyFocusLongitude, KeyFocusLatitude,
	}
}

// Parameters is a sparse set of projection parameters. A nil field means
// "not set", which matters for layered inheritance: merging overlays only
// the fields the higher layer actually sets.
//
// Fields irrelevant to a projection's family are ignored by the factory but
// still stored and round-tripped, for forward compatibility.
type Parameters struct {
	Center          *[2]float64 `json:"center,omitempty"`
	Rotate          []float64   `json:"rotate,omitempty"`
	Parallels       *[2]float64 `json:"parallels,omitempty"`
	Scale           *float64    `json:"scale,omitempty"`
	BaseScale       *float64    `json:"baseScale,omitempty"`
	ScaleMultiplier *float64    `json:"scaleMultiplier,omitempty"`
	Translate       *[2]float64 `json:"translate,omitempty"`
	// TranslateOffset here is a deprecated duplicate of
	// Layout.TranslateOffset; readers accept it, the exporter never writes
	// it.
	TranslateOffset *[2]float64 `json:"translateOffset,omitempty"`
	ClipAngle       *float64    `json:"clipAngle,omitempty"`
	Precision       *float64    `json:"precision,omitempty"`
	FocusLongitude  *float64    `json:"focusLongitude,omitempty"`
	FocusLatitude   *float64    `json:"focusLatitude,omitempty"`
}

// Clone returns a deep copy.
func (p Parameters) Clone() Parameters {
	out := p
	out.Center = clonePair(p.Center)
	out.Parallels = clonePair(p.Parallels)
	out.Translate = clonePair(p.Translate)
	out.TranslateOffset = clonePair(p.TranslateOffset)
	out.Scale = cloneScalar(p.Scale)
	out.BaseScale = cloneScalar(p.BaseScale)
	out.ScaleMultiplier = cloneScalar(p.ScaleMultiplier)
	out.ClipAngle = cloneScalar(p.ClipAngle)
	out.Precision = cloneScalar(p.Precision)
	out.FocusLongitude = cloneScalar(p.FocusLongitude)
	out.FocusLatitude = cloneScalar(p.FocusLatitude)
	if p.Rotate != nil {
		out.Rotate = append([]float64(nil), p.Rotate...)
	}
	return out
}

func clonePair(v *[2]float64) *[2]float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneScalar(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Merge overlays other onto p key-wise: every field other sets replaces
// p's, every field other leaves nil survives from p.
func (p Parameters) Merge(other Parameters) Parameters {
	out := p.Clone()
	o := other.Clone()
	if o.Center != nil {
		out.Center = o.Center
	}
	if o.Rotate != nil {
		out.Rotate = o.Rotate
	}
	if o.Parallels != nil {
		out.Parallels = o.Parallels
	}
	if o.Scale != nil {
		out.Scale = o.Scale
	}
	if o.BaseScale != nil {
		out.BaseScale = o.BaseScale
	}
	if o.ScaleMultiplier != nil {
		out.ScaleMultiplier = o.ScaleMultiplier
	}
	if o.Translate != nil {
		out.Translate = o.Translate
	}
	if o.TranslateOffset != nil {
		out.TranslateOffset = o.TranslateOffset
	}
	if o.ClipAngle != nil {
		out.ClipAngle = o.ClipAngle
	}
	if o.Precision != nil {
		out.Precision = o.Precision
	}
	if o.FocusLongitude != nil {
		out.FocusLongitude = o.FocusLongitude
	}
	if o.FocusLatitude != nil {
		out.FocusLatitude = o.FocusLatitude
	}
	return out
}

// IsEmpty reports whether no field is set.
func (p Parameters) IsEmpty() bool {
	return p.Center == nil && p.Rotate == nil && p.Parallels == nil &&
		p.Scale == nil && p.BaseScale == nil && p.ScaleMultiplier == nil &&
		p.Translate == nil && p.TranslateOffset == nil && p.ClipAngle == nil &&
		p.Precision == nil && p.FocusLongitude == nil && p.FocusLatitude == nil
}

// Get returns the value stored under key, with ok reporting whether the key
// is set. Pair keys return [2]float64, rotate returns []float64, scalar
// keys return float64.
func (p Parameters) Get(key string) (value any, ok bool) {
	switch key {
	case KeyCenter:
		if p.Center != nil {
			return *p.Center, true
		}
	case KeyRotate:
		if p.Rotate != nil {
			return append([]float64(nil), p.Rotate...), true
		}
	case KeyParallels:
		if p.Parallels != nil {
			return *p.Parallels, true
		}
	case KeyScale:
		if p.Scale != nil {
			return *p.Scale, true
		}
	case KeyBaseScale:
		if p.BaseScale != nil {
			return *p.BaseScale, true
		}
	case KeyScaleMultiplier:
		if p.ScaleMultiplier != nil {
			return *p.ScaleMultiplier, true
		}
	case KeyTranslate:
		if p.Translate != nil {
			return *p.Translate, true
		}
	case KeyTranslateOffset:
		if p.TranslateOffset != nil {
			return *p.TranslateOffset, true
		}
	case KeyClipAngle:
		if p.ClipAngle != nil {
			return *p.ClipAngle, true
		}
	case KeyPrecision:
		if p.Precision != nil {
			return *p.Precision, true
		}
	case KeyFocusLongitude:
		if p.FocusLongitude != nil {
			return *p.FocusLongitude, true
		}
	case KeyFocusLatitude:
		if p.FocusLatitude != nil {
			return *p.FocusLatitude, true
		}
	}
	return nil, false
}

// Set stores value under key. Scalar keys accept float64 or int; pair keys
// accept [2]float64 or []float64 of length 2; rotate accepts []float64 of
// length 2 or 3. Unknown keys and wrong shapes return ErrInvalidParameter.
func (p *Parameters) Set(key string, value any) error {
	switch key {
	case KeyCenter, KeyParallels, KeyTranslate, KeyTranslateOffset:
		pair, err := asPair(key, value)
		if err != nil {
			return err
		}
		switch key {
		case KeyCenter:
			p.Center = &pair
		case KeyParallels:
			p.Parallels = &pair
		case KeyTranslate:
			p.Translate = &pair
		case KeyTranslateOffset:
			p.TranslateOffset = &pair
		}
	case KeyRotate:
		rot, err := asRotate(value)
		if err != nil {
			return err
		}
		p.Rotate = rot
	case KeyScale, KeyBaseScale, KeyScaleMultiplier, KeyClipAngle,
		KeyPrecision, KeyFocusLongitude, KeyFocusLatitude:
		f, err := asScalar(key, value)
		if err != nil {
			return err
		}
		switch key {
		case KeyScale:
			p.Scale = &f
		case KeyBaseScale:
			p.BaseScale = &f
		case KeyScaleMultiplier:
			p.ScaleMultiplier = &f
		case KeyClipAngle:
			p.ClipAngle = &f
		case KeyPrecision:
			p.Precision = &f
		case KeyFocusLongitude:
			p.FocusLongitude = &f
		case KeyFocusLatitude:
			p.FocusLatitude = &f
		}
	default:
		return &ErrInvalidParameter{Key: key, Reason: "unknown parameter key"}
	}
	return nil
}

// Clear removes the value stored under key. Unknown keys are ignored.
func (p *Parameters) Clear(key string) {
	switch key {
	case KeyCenter:
		p.Center = nil
	case KeyRotate:
		p.Rotate = nil
	case KeyParallels:
		p.Parallels = nil
	case KeyScale:
		p.Scale = nil
	case KeyBaseScale:
		p.BaseScale = nil
	case KeyScaleMultiplier:
		p.ScaleMultiplier = nil
	case KeyTranslate:
		p.Translate = nil
	case KeyTranslateOffset:
		p.TranslateOffset = nil
	case KeyClipAngle:
		p.ClipAngle = nil
	case KeyPrecision:
		p.Precision = nil
	case KeyFocusLongitude:
		p.FocusLongitude = nil
	case KeyFocusLatitude:
		p.FocusLatitude = nil
	}
}

func asScalar(key string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, &ErrInvalidParameter{Key: key, Reason: fmt.Sprintf("expected a number, got %T", value)}
	}
}

func asPair(key string, value any) ([2]float64, error) {
	switch v := value.(type) {
	case [2]float64:
		return v, nil
	case []float64:
		if len(v) != 2 {
			return [2]float64{}, &ErrInvalidParameter{Key: key, Reason: fmt.Sprintf("expected 2 elements, got %d", len(v))}
		}
		return [2]float64{v[0], v[1]}, nil
	default:
		return [2]float64{}, &ErrInvalidParameter{Key: key, Reason: fmt.Sprintf("expected a coordinate pair, got %T", value)}
	}
}

func asRotate(value any) ([]float64, error) {
	switch v := value.(type) {
	case []float64:
		if len(v) != 2 && len(v) != 3 {
			return nil, &ErrInvalidParameter{Key: KeyRotate, Reason: fmt.Sprintf("expected 2 or 3 elements, got %d", len(v))}
		}
		return append([]float64(nil), v...), nil
	case [2]float64:
		return []float64{v[0], v[1]}, nil
	case [3]float64:
		return []float64{v[0], v[1], v[2]}, nil
	default:
		return nil, &ErrInvalidParameter{Key: KeyRotate, Reason: fmt.Sprintf("expected a rotation array, got %T", value)}
	}
}

// Validation is the structured result of ValidateParameter. Routine
// rejection happens on every editing keystroke, so it is a value rather
// than an error.
type Validation struct {
	IsValid bool
	Error   string
}

func invalid(format string, args ...any) Validation {
	return Validation{Error: fmt.Sprintf(format, args...)}
}

// ValidateParameter checks key and value against a projection family:
// keys irrelevant to the family (parallels on a cylindrical projection,
// clip angle on a conic one) are rejected, as are malformed shapes and
// non-positive scale, clip angle, or precision values.
func ValidateParameter(family Family, key string, value any) Validation {
	switch key {
	case KeyParallels:
		if family != FamilyConic {
			return invalid("parallels apply to conic projections only (family %q)", family)
		}
		if _, err := asPair(key, value); err != nil {
			return invalid("%v", err)
		}
	case KeyClipAngle:
		if family != FamilyAzimuthal {
			return invalid("clip angle applies to azimuthal projections only (family %q)", family)
		}
		f, err := asScalar(key, value)
		if err != nil {
			return invalid("%v", err)
		}
		if f <= 0 {
			return invalid("clip angle must be positive, got %v", f)
		}
	case KeyCenter:
		if !family.usesCenter() && family != FamilyOther {
			return invalid("center applies to cylindrical and pseudocylindrical projections; use rotate for family %q", family)
		}
		if _, err := asPair(key, value); err != nil {
			return invalid("%v", err)
		}
	case KeyRotate:
		if family.usesCenter() {
			return invalid("rotate applies to conic and azimuthal projections; use center for family %q", family)
		}
		if _, err := asRotate(value); err != nil {
			return invalid("%v", err)
		}
	case KeyScale, KeyBaseScale, KeyScaleMultiplier, KeyPrecision:
		f, err := asScalar(key, value)
		if err != nil {
			return invalid("%v", err)
		}
		if f <= 0 {
			return invalid("%s must be positive, got %v", key, f)
		}
	case KeyTranslate, KeyTranslateOffset:
		if _, err := asPair(key, value); err != nil {
			return invalid("%v", err)
		}
	case KeyFocusLongitude, KeyFocusLatitude:
		if _, err := asScalar(key, value); err != nil {
			return invalid("%v", err)
		}
	default:
		return invalid("unknown parameter key %q", key)
	}
	return Validation{IsValid: true}
}
