// Package mosaic composes multiple independently projected geographic
// territories into a single map projection.
//
// An atlas such as "France with overseas territories" cannot be drawn with
// one continuous projection: each territory needs its own projection family,
// center, scale, and position on the canvas. This package builds one
// sub-projection per territory and combines them into a CompositeProjection
// that satisfies the standard projection contract (forward/inverse point
// evaluation plus geometry streaming), so rendering pipelines can treat the
// atlas exactly like a single projection.
//
// Typical use:
//
//	loader := mosaic.NewLoader(mosaic.DefaultRegistry())
//	proj, err := loader.LoadFromJSON(configJSON, mosaic.DefaultLoadOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xy, ok := proj.Project([2]float64{2.35, 48.85})
//
// Configuration is declarative JSON (see Config) and round-trips through
// Export. Runtime parameter editing goes through ParameterManager, which
// layers territory overrides over global and atlas defaults.
package mosaic
