package mosaic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedToPixelClipExtent(t *testing.T) {
	rect := NormalizedToPixelClipExtent(
		ClipExtentFraction{X1: -0.1, Y1: -0.05, X2: 0.1, Y2: 0.05},
		1000,
		[2]float64{480, 250},
	)
	assert.InDelta(t, 380, rect[0][0], 1e-3)
	assert.InDelta(t, 200, rect[0][1], 1e-3)
	assert.InDelta(t, 580, rect[1][0], 1e-3)
	assert.InDelta(t, 300, rect[1][1], 1e-3)
	// Epsilon inset keeps abutting rectangles from sharing edge pixels.
	assert.Greater(t, rect[0][0], 380.0)
	assert.Less(t, rect[1][0], 580.0)
}

func TestPixelClipExtentFromOffset(t *testing.T) {
	rect := PixelClipExtentFromOffset([2]float64{144, 211}, [2][2]float64{{-24, -28}, {24, 28}})
	assert.InDelta(t, 120, rect[0][0], 1e-3)
	assert.InDelta(t, 183, rect[0][1], 1e-3)
	assert.InDelta(t, 168, rect[1][0], 1e-3)
	assert.InDelta(t, 239, rect[1][1], 1e-3)
}

func TestDefaultClipExtentIsScaleDerivedSquare(t *testing.T) {
	rect := DefaultClipExtent(2700, [2]float64{480, 250})
	assert.Equal(t, [2][2]float64{{210, -20}, {750, 520}}, rect)
	// Side length is scale * 0.2.
	assert.InDelta(t, 540, rect[1][0]-rect[0][0], 1e-9)
	assert.InDelta(t, 540, rect[1][1]-rect[0][1], 1e-9)
}

func TestValidPixelRect(t *testing.T) {
	assert.True(t, ValidPixelRect([2][2]float64{{0, 0}, {1, 1}}))
	assert.False(t, ValidPixelRect([2][2]float64{{5, 5}, {1, 1}}))
	assert.False(t, ValidPixelRect([2][2]float64{{0, 0}, {0, 1}}))
	assert.False(t, ValidPixelRect([2][2]float64{{0, 1}, {1, 1}}))
}

func TestRectContains(t *testing.T) {
	rect := [2][2]float64{{10, 10}, {20, 20}}
	assert.True(t, rectContains(rect, 15, 15))
	assert.True(t, rectContains(rect, 10, 20))
	assert.False(t, rectContains(rect, 9.99, 15))
	assert.False(t, rectContains(rect, 15, 20.01))
}
