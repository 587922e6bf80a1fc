package mosaic

import (
	"time"

	"github.com/google/uuid"
)

// Export reconstructs a Config from the composite's live state. Loading
// the result reproduces an equivalent composite: same territories, same
// effective scale and offset per territory, within floating-point
// tolerance.
//
// Metadata carries the atlas identity the composite was loaded with, a
// fresh export id, and the export timestamp.
func (c *CompositeProjection) Export() *Config {
	cfg := &Config{
		Version:        ConfigVersion,
		Pattern:        c.pattern,
		ReferenceScale: c.referenceScale,
		Metadata: Metadata{
			AtlasID:    c.metadata.AtlasID,
			AtlasName:  c.metadata.AtlasName,
			ExportDate: time.Now().UTC().Format(time.RFC3339),
			ExportID:   uuid.NewString(),
		},
	}
	base := c.Translate()
	for _, s := range c.subs {
		scale := s.Projection.Scale()
		multiplier := s.ScaleMultiplier
		baseScale := c.referenceScale

		params := &Parameters{
			Scale:           &scale,
			BaseScale:       &baseScale,
			ScaleMultiplier: &multiplier,
		}
		if s.Family.usesCenter() {
			center := s.Projection.Center()
			params.Center = &center
		} else {
			r := s.Projection.Rotate()
			params.Rotate = []float64{r[0], r[1], r[2]}
		}
		if s.Family == FamilyConic {
			parallels := s.Projection.Parallels()
			params.Parallels = &parallels
		}
		if s.Family == FamilyAzimuthal {
			if angle := s.Projection.ClipAngle(); angle > 0 {
				params.ClipAngle = &angle
			}
		}

		translate := s.Projection.Translate()
		offset := [2]float64{translate[0] - base[0], translate[1] - base[1]}
		if s == c.primary {
			offset = [2]float64{}
		}

		cfg.Territories = append(cfg.Territories, TerritoryConfig{
			Code: s.Code,
			Name: s.Name,
			Role: s.Role,
			Projection: ProjectionConfig{
				ID:         s.ProjectionID,
				Family:     s.Family,
				Parameters: params,
			},
			Layout: Layout{
				TranslateOffset: offset,
				ClipExtent:      s.ClipExtentOffset,
			},
			Bounds: s.Bounds,
		})
	}
	return cfg
}

// ExportJSON marshals Export's result with indentation, the form written
// to preset files.
func (c *CompositeProjection) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(c.Export(), "", "  ")
}
