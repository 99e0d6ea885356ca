package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitSquareGraph connects the corners of a unit square along its sides only
func unitSquareGraph() *Graph {
	g := NewGraph()
	corners := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, c := range corners {
		g.AddNode(c, RoleOpen)
	}
	for i := range corners {
		g.SetEdge(NodeID(i), NodeID((i+1)%len(corners)))
	}
	return g
}

func TestFindPathUnitSquare(t *testing.T) {
	g := unitSquareGraph()

	path, ok := FindPath(g, 0, 2)
	require.True(t, ok)
	assert.Equal(t, []NodeID{0, 1, 2}, path, "equal-cost tie goes to the earlier frontier entry")
	assert.Equal(t, 2, PathCost(path))

	// Repeated searches give the same answer
	again, _ := FindPath(g, 0, 2)
	assert.Equal(t, path, again)
}

func TestFindPathSameNode(t *testing.T) {
	g := unitSquareGraph()

	path, ok := FindPath(g, 3, 3)
	require.True(t, ok)
	assert.Equal(t, []NodeID{3}, path)
	assert.Zero(t, PathCost(path))
}

func TestFindPathDisconnected(t *testing.T) {
	g := unitSquareGraph()
	lonely := g.AddNode(Point{5, 5}, RoleOpen)

	path, ok := FindPath(g, 0, lonely)
	assert.False(t, ok)
	assert.Nil(t, path)

	path, ok = FindPath(g, lonely, 0)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindPathUnknownNodes(t *testing.T) {
	g := unitSquareGraph()

	_, ok := FindPath(g, 0, NodeID(100))
	assert.False(t, ok)
	_, ok = FindPath(nil, 0, 1)
	assert.False(t, ok)
}

func TestFindPathEdgesAreLive(t *testing.T) {
	w, err := NewWorld(DefaultScene())
	require.NoError(t, err)
	ids := w.Graph.NodeIDs()

	found := 0
	for _, start := range ids {
		for _, goal := range ids {
			path, ok := FindPath(w.Graph, start, goal)
			if !ok {
				assert.Nil(t, path)
				continue
			}
			found++
			require.NotEmpty(t, path)
			assert.Equal(t, start, path[0])
			assert.Equal(t, goal, path[len(path)-1])
			for i := 0; i+1 < len(path); i++ {
				assert.True(t, w.Graph.Connected(path[i], path[i+1]), "hop %d-%d", path[i], path[i+1])
			}
		}
	}
	assert.Greater(t, found, len(ids))
}
