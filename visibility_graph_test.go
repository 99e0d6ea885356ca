package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSquareWorld returns a builder holding one 100x100 square at (100,100)
func newSquareWorld(t *testing.T) (*Graph, *VisibilityBuilder, *Obstacle) {
	t.Helper()
	g := NewGraph()
	vb := NewVisibilityBuilder(g)
	o, err := NewObstacle(squareAt(100, 100, 100), DefaultClearance)
	require.NoError(t, err)
	ids, err := vb.AddObstacle(o)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	return g, vb, o
}

func assertSymmetric(t *testing.T, g *Graph) {
	t.Helper()
	for _, a := range g.NodeIDs() {
		assert.False(t, g.Connected(a, a), "node %d connected to itself", a)
		for _, b := range g.NodeIDs() {
			assert.Equal(t, g.Connected(a, b), g.Connected(b, a), "edge %d-%d not symmetric", a, b)
		}
	}
}

func TestVisibilityOcclusion(t *testing.T) {
	g, vb, _ := newSquareWorld(t)
	left := g.AddNode(Point{50, 150}, RoleOpen)
	right := g.AddNode(Point{250, 150}, RoleOpen)
	below := g.AddNode(Point{50, 250}, RoleOpen)

	vb.RebuildDirty()

	assert.False(t, g.Connected(left, right), "square sits between them")
	assert.True(t, g.Connected(left, below), "same open side")
	assertSymmetric(t, g)
}

func TestVisibilityExactTouchIsBlocked(t *testing.T) {
	g, vb, _ := newSquareWorld(t)
	// Runs exactly along the top edge
	a := g.AddNode(Point{50, 100}, RoleOpen)
	b := g.AddNode(Point{250, 100}, RoleOpen)
	// Grazes the top-left vertex only
	c := g.AddNode(Point{0, 200}, RoleOpen)
	d := g.AddNode(Point{200, 0}, RoleOpen)

	vb.RebuildDirty()

	assert.False(t, g.Connected(a, b))
	assert.False(t, g.Connected(c, d))
}

func TestVisibilityClearanceSelfExit(t *testing.T) {
	g, vb, o := newSquareWorld(t)
	agent := g.AddNode(o.Clearance[0], RoleOpen)
	outside := g.AddNode(Point{50, 50}, RoleOpen)

	vb.RebuildDirty()

	assert.True(t, g.Connected(agent, outside), "own connector must not block")
	assert.Greater(t, g.Degree(agent), 1)
}

func TestVisibilityClearanceNodesRouteAroundSquare(t *testing.T) {
	g, vb, o := newSquareWorld(t)
	vb.RebuildDirty()

	// Clearance nodes were added in vertex order starting at id 0
	topLeft, topRight, bottomRight, bottomLeft := NodeID(0), NodeID(1), NodeID(2), NodeID(3)
	assert.True(t, g.Connected(topLeft, topRight))
	assert.True(t, g.Connected(topRight, bottomRight))
	assert.True(t, g.Connected(bottomRight, bottomLeft))
	assert.True(t, g.Connected(bottomLeft, topLeft))
	assert.False(t, g.Connected(topLeft, bottomRight), "diagonal crosses the square")
	assert.False(t, g.Connected(topRight, bottomLeft))

	pos, _ := g.Position(topLeft)
	assert.Equal(t, o.Clearance[0], pos)
}

func TestVisibilityRebuildIsIdempotent(t *testing.T) {
	g, vb, _ := newSquareWorld(t)
	a := g.AddNode(Point{50, 150}, RoleOpen)
	g.AddNode(Point{50, 250}, RoleOpen)
	vb.RebuildDirty()

	before := g.Neighbors(a)
	edges := g.Edges()
	vb.RecomputeAdjacency(a)
	vb.RecomputeAdjacency(a)

	assert.Equal(t, before, g.Neighbors(a))
	assert.Equal(t, edges, g.Edges())
	assert.False(t, g.Node(a).Dirty)
}

func TestVisibilityMovedNodeIsRebuilt(t *testing.T) {
	g, vb, _ := newSquareWorld(t)
	mover := g.AddNode(Point{50, 150}, RoleOpen)
	fixed := g.AddNode(Point{250, 150}, RoleOpen)
	vb.RebuildDirty()
	require.False(t, g.Connected(mover, fixed))

	g.MoveNode(mover, Point{250, 50})
	assert.Equal(t, 1, vb.RebuildDirty())
	assert.True(t, g.Connected(mover, fixed))
	assert.Zero(t, vb.RebuildDirty(), "nothing left to rebuild")
}

func TestVisibilityEnclosedNodeIsIsolated(t *testing.T) {
	g := NewGraph()
	vb := NewVisibilityBuilder(g)
	boundary := squareAt(0, 0, 100)
	boundary.Flip = true
	o, err := NewObstacle(boundary, DefaultClearance)
	require.NoError(t, err)
	_, err = vb.AddObstacle(o)
	require.NoError(t, err)

	inside := g.AddNode(Point{50, 50}, RoleOpen)
	outside := g.AddNode(Point{-50, -50}, RoleOpen)
	vb.RebuildDirty()

	assert.Zero(t, g.Degree(inside))
	path, ok := FindPath(g, inside, outside)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestSpatialIndexMatchesBruteForce(t *testing.T) {
	w, err := NewWorld(DefaultScene())
	require.NoError(t, err)

	obstacles := w.Obstacles()
	for _, a := range w.Graph.NodeIDs() {
		for _, b := range w.Graph.NodeIDs() {
			pa, _ := w.Graph.Position(a)
			pb, _ := w.Graph.Position(b)
			seg := LineSegment{P1: pa, P2: pb}
			assert.Equal(t,
				LineIntersectsObstacles(seg, obstacles),
				LineIntersectsObstacles(seg, w.Builder.index.QuerySegment(seg)),
				"segment %d-%d", a, b)
		}
	}
	assertSymmetric(t, w.Graph)
}
