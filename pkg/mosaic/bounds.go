package mosaic

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Bounds is a geographic bounding box in WGS-84 decimal degrees.
//
// MinLon > MaxLon is legal and means the box crosses the antimeridian;
// containment and center math go through an s2.Rect, which handles the
// wrap correctly.
//
// Bounds marshals as [[minLon,minLat],[maxLon,maxLat]], the form used by
// the persisted config format.
type Bounds struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

func (b Bounds) rect() s2.Rect {
	return s2.Rect{
		Lat: r1.Interval{Lo: b.MinLat * s1.Degree.Radians(), Hi: b.MaxLat * s1.Degree.Radians()},
		Lng: s1.IntervalFromEndpoints(b.MinLon*s1.Degree.Radians(), b.MaxLon*s1.Degree.Radians()),
	}
}

// Contains reports whether the point (lon, lat) lies within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return b.rect().ContainsLatLng(s2.LatLngFromDegrees(lat, lon))
}

// Intersects reports whether the two boxes overlap.
func (b Bounds) Intersects(other Bounds) bool {
	return b.rect().Intersects(other.rect())
}

// Center returns the geographic center as [lon, lat] degrees.
func (b Bounds) Center() [2]float64 {
	c := b.rect().Center()
	return [2]float64{c.Lng.Degrees(), c.Lat.Degrees()}
}

// IsZero reports whether the bounds is the zero value.
func (b Bounds) IsZero() bool {
	return b.MinLon == 0 && b.MinLat == 0 && b.MaxLon == 0 && b.MaxLat == 0
}

// MarshalJSON encodes as [[minLon,minLat],[maxLon,maxLat]].
func (b Bounds) MarshalJSON() ([]byte, error) {
	return json.Marshal([2][2]float64{{b.MinLon, b.MinLat}, {b.MaxLon, b.MaxLat}})
}

// UnmarshalJSON decodes [[minLon,minLat],[maxLon,maxLat]].
func (b *Bounds) UnmarshalJSON(data []byte) error {
	var corners [2][2]float64
	if err := json.Unmarshal(data, &corners); err != nil {
		return fmt.Errorf("bounds: %w", err)
	}
	b.MinLon, b.MinLat = corners[0][0], corners[0][1]
	b.MaxLon, b.MaxLat = corners[1][0], corners[1][1]
	return nil
}
