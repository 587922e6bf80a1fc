package mosaic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGraticule(t *testing.T) {
	lines := DefaultGraticule().Lines()

	// 37 meridians (-180..180 by 10) and 17 parallels (-80..80 by 10).
	assert.Len(t, lines, 54)

	// Meridians come first and hold longitude constant.
	first := lines[0]
	require.NotEmpty(t, first)
	for _, p := range first {
		assert.Equal(t, -180.0, p[0])
	}
	assert.Equal(t, -80.0, first[0][1])
	assert.Equal(t, 80.0, first[len(first)-1][1])
}

func TestGraticuleCustomExtent(t *testing.T) {
	g := Graticule{
		Extent:    Bounds{MinLon: -10, MinLat: 40, MaxLon: 10, MaxLat: 50},
		Step:      [2]float64{5, 5},
		Precision: 1,
	}
	lines := g.Lines()
	// 5 meridians and 3 parallels.
	assert.Len(t, lines, 8)

	for _, ls := range lines {
		for _, p := range ls {
			assert.GreaterOrEqual(t, p[0], -10.0)
			assert.LessOrEqual(t, p[0], 10.0+clipInset)
			assert.GreaterOrEqual(t, p[1], 40.0)
			assert.LessOrEqual(t, p[1], 50.0+clipInset)
		}
	}
}

func TestGraticuleOutlineIsClosed(t *testing.T) {
	ring := DefaultGraticule().Outline()
	require.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestGraticuleStreamsThroughComposite(t *testing.T) {
	c := loadFrance(t)

	rec := &pixelRecorder{}
	StreamGeometry(DefaultGraticule().MultiLineString(), c.Stream(rec))

	// Some graticule segments must survive in the metropolitan inset.
	require.NotEmpty(t, rec.points)
	met, _ := c.SubProjection("FR-MET")
	rect := met.Projection.ClipExtent()
	require.NotNil(t, rect)
	found := false
	for _, p := range rec.points {
		if rectContains(*rect, p[0], p[1]) {
			found = true
			break
		}
	}
	assert.True(t, found)
}
