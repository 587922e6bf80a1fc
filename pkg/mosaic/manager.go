package mosaic

// ParameterSource identifies the inheritance layer a parameter value came
// from.
type ParameterSource string

const (
	SourceDefault   ParameterSource = "default"
	SourceAtlas     ParameterSource = "atlas"
	SourceGlobal    ParameterSource = "global"
	SourceTerritory ParameterSource = "territory"
)

// ParameterChange describes one parameter mutation, delivered synchronously
// to subscribed listeners.
type ParameterChange struct {
	Key           string
	Value         any
	PreviousValue any
	Source        ParameterSource
	TerritoryCode string
}

// ParameterInheritance reports where a territory's effective value for one
// key comes from, for UIs distinguishing inherited from overridden values.
type ParameterInheritance struct {
	Value        any
	Source       ParameterSource
	IsOverridden bool
	AtlasValue   any
	GlobalValue  any
}

// ParameterManager is a layered parameter store: package defaults, then
// atlas defaults, then global overrides, then per-territory overrides, with
// later layers winning key-wise. One manager serves one editing session;
// it is reset when switching atlases or presets.
//
// Change notification is synchronous. A listener must not mutate the same
// manager from inside its callback; the manager does not guard against
// re-entrant emission.
type ParameterManager struct {
	defaults  Parameters
	atlas     Parameters
	global    Parameters
	territory map[string]*Parameters
	listeners []func(ParameterChange)
}

// NewParameterManager returns a manager with the given package-level
// defaults (the lowest-priority layer).
func NewParameterManager(defaults Parameters) *ParameterManager {
	return &ParameterManager{
		defaults:  defaults.Clone(),
		territory: make(map[string]*Parameters),
	}
}

// OnChange subscribes a listener to every parameter mutation.
func (m *ParameterManager) OnChange(fn func(ParameterChange)) {
	m.listeners = append(m.listeners, fn)
}

func (m *ParameterManager) emit(ch ParameterChange) {
	for _, fn := range m.listeners {
		fn(ch)
	}
}

// SetAtlasParameters replaces the atlas defaults layer, typically when a
// new atlas is selected.
func (m *ParameterManager) SetAtlasParameters(p Parameters) {
	m.atlas = p.Clone()
}

// SetGlobalParameter stores one key in the global layer.
func (m *ParameterManager) SetGlobalParameter(key string, value any) error {
	prev, _ := m.global.Get(key)
	if err := m.global.Set(key, value); err != nil {
		return err
	}
	v, _ := m.global.Get(key)
	m.emit(ParameterChange{Key: key, Value: v, PreviousValue: prev, Source: SourceGlobal})
	return nil
}

// SetGlobalParameters merges every set field of patch into the global
// layer.
func (m *ParameterManager) SetGlobalParameters(patch Parameters) {
	prev := m.global
	m.global = m.global.Merge(patch)
	for _, key := range ParameterKeys() {
		if v, ok := patch.Get(key); ok {
			p, _ := prev.Get(key)
			m.emit(ParameterChange{Key: key, Value: v, PreviousValue: p, Source: SourceGlobal})
		}
	}
}

// SetTerritoryParameter stores one key in a territory's override layer.
func (m *ParameterManager) SetTerritoryParameter(code, key string, value any) error {
	layer := m.territory[code]
	if layer == nil {
		layer = &Parameters{}
	}
	prev, _ := layer.Get(key)
	if err := layer.Set(key, value); err != nil {
		return err
	}
	m.territory[code] = layer
	v, _ := layer.Get(key)
	m.emit(ParameterChange{Key: key, Value: v, PreviousValue: prev, Source: SourceTerritory, TerritoryCode: code})
	return nil
}

// SetTerritoryParameters merges every set field of patch into a
// territory's override layer.
func (m *ParameterManager) SetTerritoryParameters(code string, patch Parameters) {
	layer := m.territory[code]
	if layer == nil {
		layer = &Parameters{}
	}
	prev := *layer
	merged := layer.Merge(patch)
	m.territory[code] = &merged
	for _, key := range ParameterKeys() {
		if v, ok := patch.Get(key); ok {
			p, _ := prev.Get(key)
			m.emit(ParameterChange{Key: key, Value: v, PreviousValue: p, Source: SourceTerritory, TerritoryCode: code})
		}
	}
}

// ClearTerritoryOverride removes one key from a territory's override
// layer. The override map stays sparse: a territory with no remaining
// overrides is removed entirely, so presence in the map signals explicit
// customization.
func (m *ParameterManager) ClearTerritoryOverride(code, key string) {
	layer := m.territory[code]
	if layer == nil {
		return
	}
	layer.Clear(key)
	if layer.IsEmpty() {
		delete(m.territory, code)
	}
}

// ClearAllTerritoryOverrides removes a territory's entire override layer.
func (m *ParameterManager) ClearAllTerritoryOverrides(code string) {
	delete(m.territory, code)
}

// HasTerritoryOverrides reports whether a territory has been explicitly
// customized.
func (m *ParameterManager) HasTerritoryOverrides(code string) bool {
	_, ok := m.territory[code]
	return ok
}

// OverriddenTerritories returns the codes with explicit overrides.
func (m *ParameterManager) OverriddenTerritories() []string {
	out := make([]string, 0, len(m.territory))
	for code := range m.territory {
		out = append(out, code)
	}
	return out
}

// EffectiveParameters resolves the merged parameters for a territory:
// default, then atlas, then global, then the territory's overrides, later
// layers winning per key. An empty code resolves without a territory
// layer.
func (m *ParameterManager) EffectiveParameters(code string) Parameters {
	merged := m.defaults.Merge(m.atlas).Merge(m.global)
	if code != "" {
		if layer := m.territory[code]; layer != nil {
			merged = merged.Merge(*layer)
		}
	}
	return merged
}

// ParameterInheritance reports which layer supplies a territory's
// effective value for key: the most specific layer with the key set wins,
// matching EffectiveParameters.
func (m *ParameterManager) ParameterInheritance(code, key string) ParameterInheritance {
	info := ParameterInheritance{Source: SourceDefault}
	info.AtlasValue, _ = m.atlas.Get(key)
	info.GlobalValue, _ = m.global.Get(key)

	if layer := m.territory[code]; layer != nil {
		if v, ok := layer.Get(key); ok {
			info.Value = v
			info.Source = SourceTerritory
			info.IsOverridden = true
			return info
		}
	}
	if v, ok := m.global.Get(key); ok {
		info.Value = v
		info.Source = SourceGlobal
		return info
	}
	if v, ok := m.atlas.Get(key); ok {
		info.Value = v
		info.Source = SourceAtlas
		return info
	}
	info.Value, _ = m.defaults.Get(key)
	return info
}

// Reset clears the atlas, global, and territory layers, keeping the
// package defaults. Used when switching atlases or presets.
func (m *ParameterManager) Reset() {
	m.atlas = Parameters{}
	m.global = Parameters{}
	m.territory = make(map[string]*Parameters)
}
