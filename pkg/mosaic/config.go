package mosaic

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ConfigVersion is the persisted configuration format version this package
// reads and writes.
const ConfigVersion = "1.0"

// Pattern describes the atlas structure: one primary territory with
// secondaries deriving their layout from it, or equal members with no
// hierarchy.
type Pattern string

const (
	PatternSingleFocus  Pattern = "single-focus"
	PatternEqualMembers Pattern = "equal-members"
)

// Role is a territory's standing within the atlas pattern.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleMember    Role = "member"
)

// Config is the persisted composite projection configuration. Loading a
// Config and exporting the resulting composite reproduces an equivalent
// Config.
type Config struct {
	Version        string            `json:"version"`
	Metadata       Metadata          `json:"metadata"`
	Pattern        Pattern           `json:"pattern"`
	ReferenceScale float64           `json:"referenceScale"`
	Territories    []TerritoryConfig `json:"territories"`
}

// Metadata identifies the atlas a config belongs to.
type Metadata struct {
	AtlasID    string `json:"atlasId"`
	AtlasName  string `json:"atlasName,omitempty"`
	ExportDate string `json:"exportDate,omitempty"`
	ExportID   string `json:"exportId,omitempty"`
}

// TerritoryConfig configures one territory's sub-projection.
type TerritoryConfig struct {
	Code       string           `json:"code"`
	Name       string           `json:"name,omitempty"`
	Role       Role             `json:"role,omitempty"`
	Projection ProjectionConfig `json:"projection"`
	Layout     Layout           `json:"layout"`
	Bounds     Bounds           `json:"bounds"`
}

// ProjectionConfig selects and parameterizes a territory's projection.
type ProjectionConfig struct {
	ID         string      `json:"id"`
	Family     Family      `json:"family,omitempty"`
	Parameters *Parameters `json:"parameters"`
}

// Layout positions a territory on the canvas. TranslateOffset is the pixel
// displacement from the canvas center; ClipExtent, when present, is a
// center-relative pixel rectangle ([[x1,y1],[x2,y2]] about the territory's
// translate point).
type Layout struct {
	TranslateOffset [2]float64      `json:"translateOffset"`
	ClipExtent      *[2][2]float64  `json:"clipExtent,omitempty"`
}

// Validate checks the structural invariants of the config: supported
// version, atlas identity, at least one territory, and per-territory
// required fields. It returns the first problem found; a structurally
// invalid config is a data-integrity error for the caller to fix, never
// silently defaulted.
func (c *Config) Validate() error {
	if c.Version == "" {
		return &ErrInvalidConfig{Field: "version", Reason: "missing"}
	}
	if c.Version != ConfigVersion {
		return &ErrUnsupportedVersion{Version: c.Version, Supported: ConfigVersion}
	}
	if c.Metadata.AtlasID == "" {
		return &ErrInvalidConfig{Field: "metadata.atlasId", Reason: "missing"}
	}
	if c.Pattern != "" && c.Pattern != PatternSingleFocus && c.Pattern != PatternEqualMembers {
		return &ErrInvalidConfig{Field: "pattern", Reason: `must be "single-focus" or "equal-members"`}
	}
	if len(c.Territories) == 0 {
		return &ErrInvalidConfig{Field: "territories", Reason: "missing or empty"}
	}
	seen := make(map[string]bool, len(c.Territories))
	for i, t := range c.Territories {
		if t.Code == "" {
			return &ErrInvalidConfig{Field: "code", Territory: indexLabel(i), Reason: "missing"}
		}
		if seen[t.Code] {
			return &ErrInvalidConfig{Field: "code", Territory: t.Code, Reason: "duplicate territory code"}
		}
		seen[t.Code] = true
		if t.Projection.ID == "" {
			return &ErrInvalidConfig{Field: "projection.id", Territory: t.Code, Reason: "missing"}
		}
		if t.Projection.Parameters == nil {
			return &ErrInvalidConfig{Field: "projection.parameters", Territory: t.Code, Reason: "missing"}
		}
		if t.Bounds.IsZero() {
			return &ErrInvalidConfig{Field: "bounds", Territory: t.Code, Reason: "missing"}
		}
	}
	return nil
}

func indexLabel(i int) string {
	return "#" + strconv.Itoa(i)
}
