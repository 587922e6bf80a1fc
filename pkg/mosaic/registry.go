package mosaic

import (
	"sort"

	"github.com/cartolab/mosaic/internal/projection"
)

// Projection is one concrete projection instance: raw math plus rotation,
// center, scale, translate, precision, and clipping, with chainable
// setters and the stream transform chain.
type Projection = projection.Projection

// Stream is the geometry event interface piped through projections.
type Stream = projection.Stream

// ProjectionFactory constructs a fresh projection instance.
type ProjectionFactory func() *Projection

// Registration pairs a factory with its projection family.
type Registration struct {
	Family  Family
	Factory ProjectionFactory
}

// Registry maps projection ids to factories. It is an explicit object
// owned by a Loader rather than process-global state, so independent
// loaders (and isolated tests) can hold different registries.
//
// Registry is not safe for concurrent mutation; register everything before
// sharing it.
type Registry struct {
	entries map[string]Registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Registration)}
}

// Register adds (or replaces) a projection factory under id.
func (r *Registry) Register(id string, family Family, factory ProjectionFactory) {
	r.entries[id] = Registration{Family: family, Factory: factory}
}

// RegisterProjections adds every entry of the map.
func (r *Registry) RegisterProjections(m map[string]Registration) {
	for id, reg := range m {
		r.entries[id] = reg
	}
}

// Unregister removes id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	delete(r.entries, id)
}

// IsRegistered reports whether id has a factory.
func (r *Registry) IsRegistered(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Registered returns the sorted list of registered ids.
func (r *Registry) Registered() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create instantiates the projection registered under id, returning its
// family alongside. Unregistered ids return ErrProjectionNotRegistered
// naming the known ids.
func (r *Registry) Create(id string) (*Projection, Family, error) {
	reg, ok := r.entries[id]
	if !ok {
		return nil, "", &ErrProjectionNotRegistered{ID: id, Registered: r.Registered()}
	}
	return reg.Factory(), reg.Family, nil
}

// DefaultRegistry returns a registry pre-populated with the built-in
// projection families.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("mercator", FamilyCylindrical, func() *Projection {
		return projection.New(projection.Mercator{})
	})
	r.Register("transverse-mercator", FamilyCylindrical, func() *Projection {
		return projection.New(projection.TransverseMercator{})
	})
	r.Register("equirectangular", FamilyCylindrical, func() *Projection {
		return projection.New(projection.Equirectangular{})
	})
	r.Register("conic-conformal", FamilyConic, func() *Projection {
		return projection.NewConic(projection.NewConicConformal)
	})
	r.Register("conic-equal-area", FamilyConic, func() *Projection {
		return projection.NewConic(projection.NewConicEqualArea)
	})
	r.Register("conic-equidistant", FamilyConic, func() *Projection {
		return projection.NewConic(projection.NewConicEquidistant)
	})
	r.Register("azimuthal-equal-area", FamilyAzimuthal, func() *Projection {
		return projection.New(projection.AzimuthalEqualArea())
	})
	r.Register("azimuthal-equidistant", FamilyAzimuthal, func() *Projection {
		return projection.New(projection.AzimuthalEquidistant())
	})
	r.Register("stereographic", FamilyAzimuthal, func() *Projection {
		return projection.New(projection.Stereographic{})
	})
	r.Register("orthographic", FamilyAzimuthal, func() *Projection {
		return projection.New(projection.Orthographic{}).SetClipAngle(90)
	})
	r.Register("natural-earth", FamilyPseudocylindrical, func() *Projection {
		return projection.New(projection.NaturalEarth{})
	})
	return r
}
