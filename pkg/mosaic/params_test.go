package mosaic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func pair(a, b float64) *[2]float64 { return &[2]float64{a, b} }

func TestParametersMergeIsKeyWise(t *testing.T) {
	base := Parameters{
		Scale:  f64(100),
		Rotate: []float64{-2, -46, 0},
	}
	override := Parameters{Scale: f64(200)}

	merged := base.Merge(override)
	require.NotNil(t, merged.Scale)
	assert.Equal(t, 200.0, *merged.Scale)
	// A scale override must not erase the base rotate.
	assert.Equal(t, []float64{-2, -46, 0}, merged.Rotate)
}

func TestParametersMergeDoesNotMutateReceiver(t *testing.T) {
	base := Parameters{Scale: f64(100)}
	_ = base.Merge(Parameters{Scale: f64(200)})
	assert.Equal(t, 100.0, *base.Scale)
}

func TestParametersSetGetClear(t *testing.T) {
	var p Parameters

	require.NoError(t, p.Set(KeyScale, 2700.0))
	require.NoError(t, p.Set(KeyCenter, []float64{-61.46, 16.14}))
	require.NoError(t, p.Set(KeyRotate, []float64{-2.5, -46.5}))

	v, ok := p.Get(KeyScale)
	require.True(t, ok)
	assert.Equal(t, 2700.0, v)

	v, ok = p.Get(KeyCenter)
	require.True(t, ok)
	assert.Equal(t, [2]float64{-61.46, 16.14}, v)

	_, ok = p.Get(KeyPrecision)
	assert.False(t, ok)

	p.Clear(KeyScale)
	_, ok = p.Get(KeyScale)
	assert.False(t, ok)
}

func TestParametersSetRejectsBadShapes(t *testing.T) {
	var p Parameters

	assert.Error(t, p.Set("nonsense", 1.0))
	assert.Error(t, p.Set(KeyCenter, []float64{1, 2, 3}))
	assert.Error(t, p.Set(KeyScale, "big"))
	assert.Error(t, p.Set(KeyRotate, []float64{1}))

	var invalidErr *ErrInvalidParameter
	assert.ErrorAs(t, p.Set(KeyCenter, 5), &invalidErr)
}

func TestValidateParameterFamilyRelevance(t *testing.T) {
	// Parallels belong to conic projections only.
	assert.True(t, ValidateParameter(FamilyConic, KeyParallels, []float64{44, 49}).IsValid)
	v := ValidateParameter(FamilyCylindrical, KeyParallels, []float64{44, 49})
	assert.False(t, v.IsValid)
	assert.Contains(t, v.Error, "conic")

	// Clip angle belongs to azimuthal projections only.
	assert.True(t, ValidateParameter(FamilyAzimuthal, KeyClipAngle, 90.0).IsValid)
	assert.False(t, ValidateParameter(FamilyConic, KeyClipAngle, 90.0).IsValid)

	// Positioning primitives are family-exclusive.
	assert.True(t, ValidateParameter(FamilyCylindrical, KeyCenter, []float64{2.5, 46.5}).IsValid)
	assert.False(t, ValidateParameter(FamilyConic, KeyCenter, []float64{2.5, 46.5}).IsValid)
	assert.True(t, ValidateParameter(FamilyConic, KeyRotate, []float64{-2.5, -46.5, 0}).IsValid)
	assert.False(t, ValidateParameter(FamilyCylindrical, KeyRotate, []float64{-2.5, -46.5}).IsValid)
}

func TestValidateParameterShapes(t *testing.T) {
	assert.False(t, ValidateParameter(FamilyConic, KeyParallels, []float64{44}).IsValid)
	assert.False(t, ValidateParameter(FamilyCylindrical, KeyScale, -5.0).IsValid)
	assert.False(t, ValidateParameter(FamilyCylindrical, KeyScale, 0.0).IsValid)
	assert.False(t, ValidateParameter(FamilyAzimuthal, KeyClipAngle, -30.0).IsValid)
	assert.False(t, ValidateParameter(FamilyCylindrical, KeyPrecision, 0.0).IsValid)
	assert.False(t, ValidateParameter(FamilyCylindrical, "mystery", 1.0).IsValid)
	assert.True(t, ValidateParameter(FamilyCylindrical, KeyTranslateOffset, []float64{-336, -39}).IsValid)
}

func TestValidateParameterNeverPanics(t *testing.T) {
	// Validation runs on every keystroke; whatever arrives, it must return
	// a structured result.
	for _, key := range ParameterKeys() {
		for _, value := range []any{nil, "x", []float64{}, map[string]any{}} {
			_ = ValidateParameter(FamilyConic, key, value)
		}
	}
}
