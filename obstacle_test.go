package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareAt(x, y, size float64) Polygon {
	return Polygon{
		Vertices: []Point{{0, 0}, {size, 0}, {size, size}, {0, size}},
		Offset:   Point{x, y},
	}
}

func TestNewObstacleAppliesOffset(t *testing.T) {
	o, err := NewObstacle(squareAt(100, 50, 10), DefaultClearance)
	require.NoError(t, err)

	assert.Equal(t, []Point{{100, 50}, {110, 50}, {110, 60}, {100, 60}}, o.Vertices)
	require.Len(t, o.Edges, 4)
	assert.Equal(t, LineSegment{Point{100, 60}, Point{100, 50}}, o.Edges[3], "last edge wraps to the first vertex")
	assert.Equal(t, []int{0, 1, 2, 3}, o.ClearanceIndices())
	assert.Len(t, o.ClearancePoints(), 4)
}

func TestNewObstacleRejectsDegenerate(t *testing.T) {
	_, err := NewObstacle(Polygon{Vertices: []Point{{0, 0}, {1, 0}}}, DefaultClearance)
	assert.ErrorIs(t, err, ErrDegeneratePolygon)
}

func TestObstacleBoundsIncludeClearance(t *testing.T) {
	o, err := NewObstacle(squareAt(0, 0, 100), DefaultClearance)
	require.NoError(t, err)

	b := o.Bounds()
	assert.Less(t, b.MinX, 0.0)
	assert.Less(t, b.MinY, 0.0)
	assert.Greater(t, b.MaxX, 100.0)
	assert.Greater(t, b.MaxY, 100.0)
}

func TestObstacleFlipBoundaryHasNoClearance(t *testing.T) {
	poly := squareAt(10, 10, 500)
	poly.Flip = true

	o, err := NewObstacle(poly, DefaultClearance)
	require.NoError(t, err)
	assert.Empty(t, o.Clearance)
	assert.Equal(t, BBox{MinX: 10, MinY: 10, MaxX: 510, MaxY: 510}, o.Bounds())
}
