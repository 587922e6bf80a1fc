package mosaic

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
)

// LoadOptions configures composite construction.
type LoadOptions struct {
	// Width and Height are the canvas dimensions in pixels. Territory
	// translate points are computed relative to the canvas center.
	Width  float64
	Height float64

	// Debug enables per-territory diagnostics on stderr. Without it the
	// loader logs through Logger, which defaults to a no-op.
	Debug bool

	// Logger overrides the loader's logger for this load.
	Logger *zerolog.Logger
}

// DefaultLoadOptions returns the conventional 960x500 canvas with logging
// disabled.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Width: 960, Height: 500}
}

// Loader builds composite projections from declarative configs. Each
// loader owns its projection registry, so independent loaders can expose
// different projection sets.
type Loader struct {
	registry *Registry
	logger   zerolog.Logger
}

// NewLoader returns a loader over the given registry; nil selects
// DefaultRegistry.
func NewLoader(registry *Registry) *Loader {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Loader{registry: registry, logger: zerolog.Nop()}
}

// SetLogger replaces the loader's logger. The zero default is a no-op
// logger.
func (l *Loader) SetLogger(logger zerolog.Logger) *Loader {
	l.logger = logger
	return l
}

// Registry returns the loader's projection registry.
func (l *Loader) Registry() *Registry { return l.registry }

// Load validates cfg and assembles the composite projection.
//
// An unregistered projection id or a structurally invalid config aborts the
// load. A territory whose sub-projection fails to build for any other
// reason is skipped with a logged diagnostic: one malformed entry degrades
// the composite to partial rendering instead of blanking the whole map.
func (l *Loader) Load(cfg *Config, opts LoadOptions) (*CompositeProjection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultLoadOptions()
		if opts.Width <= 0 {
			opts.Width = d.Width
		}
		if opts.Height <= 0 {
			opts.Height = d.Height
		}
	}
	logger := l.logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	if opts.Debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	subs := make([]*SubProjection, 0, len(cfg.Territories))
	for _, t := range cfg.Territories {
		params := Parameters{}
		if t.Projection.Parameters != nil {
			params = t.Projection.Parameters.Clone()
		}
		proj, family, err := newSubProjection(t, params, opts.Width, opts.Height, cfg.ReferenceScale, l.registry, logger)
		if err != nil {
			var notRegistered *ErrProjectionNotRegistered
			if errors.As(err, &notRegistered) {
				return nil, err
			}
			logger.Warn().
				Str("territory", t.Code).
				Err(err).
				Msg("skipping territory: sub-projection construction failed")
			continue
		}
		multiplier := 1.0
		if params.ScaleMultiplier != nil {
			multiplier = *params.ScaleMultiplier
		}
		subs = append(subs, &SubProjection{
			Code:             t.Code,
			Name:             t.Name,
			Role:             t.Role,
			ProjectionID:     t.Projection.ID,
			Family:           family,
			Projection:       proj,
			Bounds:           t.Bounds,
			ScaleMultiplier:  multiplier,
			TranslateOffset:  resolveTranslateOffset(t, params),
			ClipExtentOffset: t.Layout.ClipExtent,
		})
		translate := proj.Translate()
		logger.Debug().
			Str("territory", t.Code).
			Str("projection", t.Projection.ID).
			Float64("scale", proj.Scale()).
			Floats64("translate", translate[:]).
			Msg("sub-projection built")
	}
	if len(subs) == 0 {
		return nil, &ErrInvalidConfig{Field: "territories", Reason: "no territory could be constructed"}
	}
	return newCompositeProjection(cfg, subs, opts.Width, opts.Height, logger), nil
}

// LoadFromJSON parses a JSON config and delegates to Load. Syntactically
// invalid JSON surfaces as ErrMalformedJSON, distinct from the schema
// errors Load reports.
func (l *Loader) LoadFromJSON(data []byte, opts LoadOptions) (*CompositeProjection, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ErrMalformedJSON{Err: err}
	}
	return l.Load(&cfg, opts)
}
