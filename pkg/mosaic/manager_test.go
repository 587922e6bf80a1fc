package mosaic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInheritancePrecedence(t *testing.T) {
	m := NewParameterManager(Parameters{})

	require.NoError(t, m.SetGlobalParameter(KeyScale, 100.0))
	require.NoError(t, m.SetTerritoryParameter("FR-GP", KeyScale, 200.0))

	gp := m.EffectiveParameters("FR-GP")
	require.NotNil(t, gp.Scale)
	assert.Equal(t, 200.0, *gp.Scale)

	met := m.EffectiveParameters("FR-MET")
	require.NotNil(t, met.Scale)
	assert.Equal(t, 100.0, *met.Scale)
}

func TestEffectiveParametersMergeIsKeyWise(t *testing.T) {
	m := NewParameterManager(Parameters{})
	m.SetAtlasParameters(Parameters{Rotate: []float64{-2.5, -46.5, 0}})
	require.NoError(t, m.SetGlobalParameter(KeyPrecision, 0.5))
	require.NoError(t, m.SetTerritoryParameter("FR-GP", KeyScale, 200.0))

	p := m.EffectiveParameters("FR-GP")
	assert.Equal(t, []float64{-2.5, -46.5, 0}, p.Rotate)
	require.NotNil(t, p.Precision)
	assert.Equal(t, 0.5, *p.Precision)
	require.NotNil(t, p.Scale)
	assert.Equal(t, 200.0, *p.Scale)
}

func TestDefaultsAreLowestPriority(t *testing.T) {
	m := NewParameterManager(Parameters{Scale: f64(2700)})

	p := m.EffectiveParameters("FR-MET")
	require.NotNil(t, p.Scale)
	assert.Equal(t, 2700.0, *p.Scale)

	m.SetAtlasParameters(Parameters{Scale: f64(3000)})
	p = m.EffectiveParameters("FR-MET")
	assert.Equal(t, 3000.0, *p.Scale)
}

func TestClearTerritoryOverrideKeepsMapSparse(t *testing.T) {
	m := NewParameterManager(Parameters{})

	require.NoError(t, m.SetTerritoryParameter("FR-GP", KeyScale, 200.0))
	require.NoError(t, m.SetTerritoryParameter("FR-GP", KeyPrecision, 0.3))
	assert.True(t, m.HasTerritoryOverrides("FR-GP"))

	m.ClearTerritoryOverride("FR-GP", KeyScale)
	assert.True(t, m.HasTerritoryOverrides("FR-GP"))

	m.ClearTerritoryOverride("FR-GP", KeyPrecision)
	// Last override removed: the territory disappears from the map.
	assert.False(t, m.HasTerritoryOverrides("FR-GP"))
}

func TestClearAllTerritoryOverrides(t *testing.T) {
	m := NewParameterManager(Parameters{})
	require.NoError(t, m.SetTerritoryParameter("FR-GP", KeyScale, 200.0))

	m.ClearAllTerritoryOverrides("FR-GP")
	assert.False(t, m.HasTerritoryOverrides("FR-GP"))
	_, ok := m.EffectiveParameters("FR-GP").Get(KeyScale)
	assert.False(t, ok)
}

func TestParameterInheritanceReporting(t *testing.T) {
	m := NewParameterManager(Parameters{})
	m.SetAtlasParameters(Parameters{Scale: f64(2700)})
	require.NoError(t, m.SetGlobalParameter(KeyScale, 100.0))
	require.NoError(t, m.SetTerritoryParameter("FR-GP", KeyScale, 200.0))

	info := m.ParameterInheritance("FR-GP", KeyScale)
	assert.Equal(t, 200.0, info.Value)
	assert.Equal(t, SourceTerritory, info.Source)
	assert.True(t, info.IsOverridden)
	assert.Equal(t, 2700.0, info.AtlasValue)
	assert.Equal(t, 100.0, info.GlobalValue)

	info = m.ParameterInheritance("FR-MET", KeyScale)
	assert.Equal(t, 100.0, info.Value)
	assert.Equal(t, SourceGlobal, info.Source)
	assert.False(t, info.IsOverridden)
}

func TestParameterInheritanceFallsBackThroughLayers(t *testing.T) {
	m := NewParameterManager(Parameters{Precision: f64(0.707)})
	m.SetAtlasParameters(Parameters{Scale: f64(2700)})

	info := m.ParameterInheritance("FR-MET", KeyScale)
	assert.Equal(t, SourceAtlas, info.Source)
	assert.Equal(t, 2700.0, info.Value)

	info = m.ParameterInheritance("FR-MET", KeyPrecision)
	assert.Equal(t, SourceDefault, info.Source)
	assert.Equal(t, 0.707, info.Value)
}

func TestChangeNotification(t *testing.T) {
	m := NewParameterManager(Parameters{})

	var changes []ParameterChange
	m.OnChange(func(ch ParameterChange) { changes = append(changes, ch) })

	require.NoError(t, m.SetGlobalParameter(KeyScale, 100.0))
	require.NoError(t, m.SetGlobalParameter(KeyScale, 150.0))
	require.NoError(t, m.SetTerritoryParameter("FR-GP", KeyScale, 200.0))

	require.Len(t, changes, 3)
	assert.Equal(t, ParameterChange{Key: KeyScale, Value: 100.0, Source: SourceGlobal}, changes[0])
	assert.Equal(t, 150.0, changes[1].Value)
	assert.Equal(t, 100.0, changes[1].PreviousValue)
	assert.Equal(t, SourceTerritory, changes[2].Source)
	assert.Equal(t, "FR-GP", changes[2].TerritoryCode)
}

func TestSetTerritoryParametersPatchEmitsPerKey(t *testing.T) {
	m := NewParameterManager(Parameters{})

	var keys []string
	m.OnChange(func(ch ParameterChange) { keys = append(keys, ch.Key) })

	m.SetTerritoryParameters("FR-GP", Parameters{
		Scale:     f64(200),
		Precision: f64(0.5),
	})
	assert.ElementsMatch(t, []string{KeyScale, KeyPrecision}, keys)
}

func TestSetterRejectsInvalidValue(t *testing.T) {
	m := NewParameterManager(Parameters{})

	var fired bool
	m.OnChange(func(ParameterChange) { fired = true })

	assert.Error(t, m.SetGlobalParameter(KeyScale, "huge"))
	assert.Error(t, m.SetTerritoryParameter("FR-GP", "bogus", 1.0))
	assert.False(t, fired, "no event for a rejected mutation")
	assert.False(t, m.HasTerritoryOverrides("FR-GP"))
}

func TestReset(t *testing.T) {
	m := NewParameterManager(Parameters{Precision: f64(0.707)})
	m.SetAtlasParameters(Parameters{Scale: f64(2700)})
	require.NoError(t, m.SetTerritoryParameter("FR-GP", KeyScale, 200.0))

	m.Reset()

	p := m.EffectiveParameters("FR-GP")
	_, ok := p.Get(KeyScale)
	assert.False(t, ok)
	// Package defaults survive a reset.
	require.NotNil(t, p.Precision)
	assert.Equal(t, 0.707, *p.Precision)
}
