package mosaic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCarriesCompositeState(t *testing.T) {
	c := loadFrance(t)

	cfg := c.Export()
	assert.Equal(t, ConfigVersion, cfg.Version)
	assert.Equal(t, PatternSingleFocus, cfg.Pattern)
	assert.Equal(t, 2700.0, cfg.ReferenceScale)
	assert.Equal(t, "france", cfg.Metadata.AtlasID)
	assert.NotEmpty(t, cfg.Metadata.ExportID)
	assert.NotEmpty(t, cfg.Metadata.ExportDate)
	require.Len(t, cfg.Territories, 4)

	met := cfg.Territories[0]
	assert.Equal(t, "FR-MET", met.Code)
	assert.Equal(t, [2]float64{}, met.Layout.TranslateOffset, "primary exports a zero offset")
	require.NotNil(t, met.Projection.Parameters.Parallels)
	assert.Equal(t, [2]float64{44, 49}, *met.Projection.Parameters.Parallels)

	gp := cfg.Territories[1]
	assert.Equal(t, "FR-GP", gp.Code)
	params := gp.Projection.Parameters
	require.NotNil(t, params.Scale)
	assert.InDelta(t, 3780, *params.Scale, 1e-9)
	require.NotNil(t, params.BaseScale)
	assert.Equal(t, 2700.0, *params.BaseScale)
	require.NotNil(t, params.ScaleMultiplier)
	assert.InDelta(t, 1.4, *params.ScaleMultiplier, 1e-9)
	require.NotNil(t, params.Center)
	assert.InDelta(t, -61.46, params.Center[0], 1e-9)
	assert.InDelta(t, 16.14, params.Center[1], 1e-9)
	assert.InDelta(t, -336, gp.Layout.TranslateOffset[0], 1e-9)
	assert.InDelta(t, -39, gp.Layout.TranslateOffset[1], 1e-9)
	require.NotNil(t, gp.Layout.ClipExtent)
	assert.Equal(t, [2][2]float64{{-24, -28}, {24, 28}}, *gp.Layout.ClipExtent)
}

func TestExportReflectsMutations(t *testing.T) {
	c := loadFrance(t)
	c.SetScale(5400)
	c.SetTranslate([2]float64{500, 300})

	cfg := c.Export()
	assert.Equal(t, 5400.0, cfg.ReferenceScale)
	// Offsets are recomputed relative to the current primary translate, so
	// they match the configured layout.
	assert.InDelta(t, -336, cfg.Territories[1].Layout.TranslateOffset[0], 1e-9)
	assert.InDelta(t, -39, cfg.Territories[1].Layout.TranslateOffset[1], 1e-9)
}

func TestExportRoundTrip(t *testing.T) {
	c := loadFrance(t)

	cfg := c.Export()
	require.NoError(t, cfg.Validate())

	reloaded, err := NewLoader(nil).Load(cfg, DefaultLoadOptions())
	require.NoError(t, err)

	for _, coord := range [][2]float64{
		{2.5, 46.5},
		{4.8, 45.7},
		{-61.46, 16.14},
		{55.53, -21.13},
	} {
		want, okWant := c.Project(coord)
		got, okGot := reloaded.Project(coord)
		require.Equal(t, okWant, okGot, "routing diverged for %v", coord)
		assert.InDelta(t, want[0], got[0], 1e-6)
		assert.InDelta(t, want[1], got[1], 1e-6)
	}
}

func TestExportJSON(t *testing.T) {
	c := loadFrance(t)

	data, err := c.ExportJSON()
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, ConfigVersion, cfg.Version)
	assert.Len(t, cfg.Territories, 4)
}
