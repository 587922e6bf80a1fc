package mosaic

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventRecorder captures the event sequence as compact tokens.
type eventRecorder struct {
	events []string
}

func (r *eventRecorder) Point(x, y float64) {
	r.events = append(r.events, fmt.Sprintf("point(%g,%g)", x, y))
}
func (r *eventRecorder) LineStart()    { r.events = append(r.events, "lineStart") }
func (r *eventRecorder) LineEnd()      { r.events = append(r.events, "lineEnd") }
func (r *eventRecorder) PolygonStart() { r.events = append(r.events, "polygonStart") }
func (r *eventRecorder) PolygonEnd()   { r.events = append(r.events, "polygonEnd") }
func (r *eventRecorder) Sphere()       { r.events = append(r.events, "sphere") }

func TestStreamGeometryPoint(t *testing.T) {
	rec := &eventRecorder{}
	StreamGeometry(orb.Point{2.5, 46.5}, rec)
	assert.Equal(t, []string{"point(2.5,46.5)"}, rec.events)
}

func TestStreamGeometryLineString(t *testing.T) {
	rec := &eventRecorder{}
	StreamGeometry(orb.LineString{{0, 0}, {1, 1}, {2, 0}}, rec)
	assert.Equal(t, []string{
		"lineStart", "point(0,0)", "point(1,1)", "point(2,0)", "lineEnd",
	}, rec.events)
}

func TestStreamGeometryPolygonDropsClosingPoint(t *testing.T) {
	rec := &eventRecorder{}
	StreamGeometry(orb.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
	}, rec)
	assert.Equal(t, []string{
		"polygonStart",
		"lineStart", "point(0,0)", "point(4,0)", "point(4,4)", "point(0,4)", "lineEnd",
		"polygonEnd",
	}, rec.events)
}

func TestStreamGeometryMultiPolygon(t *testing.T) {
	rec := &eventRecorder{}
	StreamGeometry(orb.MultiPolygon{
		{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
		{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
	}, rec)
	assert.Equal(t, 2, count(rec.events, "polygonStart"))
	assert.Equal(t, 2, count(rec.events, "polygonEnd"))
}

func TestStreamGeometryCollection(t *testing.T) {
	rec := &eventRecorder{}
	StreamGeometry(orb.Collection{
		orb.Point{1, 2},
		orb.LineString{{0, 0}, {1, 0}},
	}, rec)
	assert.Equal(t, []string{
		"point(1,2)",
		"lineStart", "point(0,0)", "point(1,0)", "lineEnd",
	}, rec.events)
}

func count(events []string, kind string) int {
	n := 0
	for _, e := range events {
		if e == kind {
			n++
		}
	}
	return n
}

func TestPathBounds(t *testing.T) {
	c := loadFrance(t)

	// Guadeloupe's bounding box projects inside its clip rectangle.
	gp, _ := c.SubProjection("FR-GP")
	rect := gp.Projection.ClipExtent()
	require.NotNil(t, rect)

	b, ok := PathBounds(c, orb.MultiPoint{
		{-61.46, 16.14},
		{-61.6, 16.0},
		{-61.3, 16.3},
	})
	require.True(t, ok)
	assert.GreaterOrEqual(t, b[0][0], rect[0][0])
	assert.GreaterOrEqual(t, b[0][1], rect[0][1])
	assert.LessOrEqual(t, b[1][0], rect[1][0])
	assert.LessOrEqual(t, b[1][1], rect[1][1])
}

func TestPathBoundsNothingVisible(t *testing.T) {
	c := loadFrance(t)

	// Mid-Pacific: clipped away by every territory.
	_, ok := PathBounds(c, orb.Point{-150, 0})
	assert.False(t, ok)
}

func TestFitExtent(t *testing.T) {
	c := loadFrance(t)

	geom := orb.MultiPoint{
		{2.5, 46.5}, {-5.0, 48.4}, {7.7, 48.6}, {3.0, 42.5},
	}
	c.FitExtent([2][2]float64{{0, 0}, {400, 400}}, geom)

	b, ok := PathBounds(c, geom)
	require.True(t, ok)
	assert.GreaterOrEqual(t, b[0][0], -1e-6)
	assert.GreaterOrEqual(t, b[0][1], -1e-6)
	assert.LessOrEqual(t, b[1][0], 400+1e-6)
	assert.LessOrEqual(t, b[1][1], 400+1e-6)

	// The limiting dimension fills the extent.
	w := b[1][0] - b[0][0]
	h := b[1][1] - b[0][1]
	assert.InDelta(t, 400, maxf(w, h), 1)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
