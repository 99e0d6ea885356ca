package main

import (
	"fmt"
	"log"
	"math"
)

// World holds the graph, the obstacles and the two agents. It is driven
// one tick at a time from a single goroutine.
type World struct {
	Graph   *Graph
	Builder *VisibilityBuilder
	Player  *Agent
	Chaser  *Agent
	Ticks   int
}

// NewWorld builds obstacles, clearance nodes and agents from a scene and
// runs the first full visibility build.
func NewWorld(scene Scene) (*World, error) {
	if err := scene.ValidateAgents(); err != nil {
		return nil, err
	}

	clearance := scene.Clearance
	if clearance <= 0 {
		clearance = DefaultClearance
	}

	g := NewGraph()
	w := &World{
		Graph:   g,
		Builder: NewVisibilityBuilder(g),
	}

	for i, poly := range scene.Obstacles {
		obstacle, err := NewObstacle(poly, clearance)
		if err != nil {
			return nil, fmt.Errorf("failed to build obstacle %d: %w", i, err)
		}
		if _, err := w.Builder.AddObstacle(obstacle); err != nil {
			return nil, fmt.Errorf("failed to index obstacle %d: %w", i, err)
		}
	}

	w.Player = NewAgent(g, scene.Player.Pos, scene.Player.Size)
	w.Chaser = NewAgent(g, scene.Chaser.Pos, scene.Chaser.Size)

	log.Println("🗺️  Building visibility graph...")
	w.Builder.BuildAll()
	w.refreshRoles()

	return w, nil
}

// Step runs one tick: apply intents, rebuild dirty nodes, update agents.
// It returns false once quit was requested.
func (w *World) Step(in Intents) bool {
	if in.Quit {
		return false
	}
	if in.TogglePursuit {
		w.Chaser.ToggleTarget(w.Player)
	}
	w.Player.Accelerate(in.Direction)

	w.Builder.RebuildDirty()

	w.Player.Update(w.Graph)
	w.Chaser.Update(w.Graph)

	w.refreshRoles()
	w.Ticks++
	return true
}

// Obstacles returns the static obstacles
func (w *World) Obstacles() []*Obstacle {
	return w.Builder.Obstacles()
}

// Extent covers every obstacle and both agents
func (w *World) Extent() BBox {
	extent := BBox{
		MinX: math.Min(w.Player.Pos.X, w.Chaser.Pos.X),
		MinY: math.Min(w.Player.Pos.Y, w.Chaser.Pos.Y),
		MaxX: math.Max(w.Player.Pos.X+w.Player.Size.X, w.Chaser.Pos.X+w.Chaser.Size.X),
		MaxY: math.Max(w.Player.Pos.Y+w.Player.Size.Y, w.Chaser.Pos.Y+w.Chaser.Size.Y),
	}
	for _, o := range w.Obstacles() {
		b := o.Bounds()
		extent.MinX = math.Min(extent.MinX, b.MinX)
		extent.MinY = math.Min(extent.MinY, b.MinY)
		extent.MaxX = math.Max(extent.MaxX, b.MaxX)
		extent.MaxY = math.Max(extent.MaxY, b.MaxY)
	}
	return extent
}

// ChaseDistance is the distance between the chaser and the player
func (w *World) ChaseDistance() float64 {
	return w.Chaser.Pos.Distance(w.Player.Pos)
}

// refreshRoles recolours nodes for display
func (w *World) refreshRoles() {
	for _, id := range w.Graph.NodeIDs() {
		role := RoleOpen
		if w.Graph.Degree(id) == 0 {
			role = RoleClosed
		}
		w.Graph.Node(id).Role = role
	}

	path := w.Chaser.Path
	for i := 1; i < len(path)-1; i++ {
		w.Graph.Node(path[i]).Role = RolePath
	}
	w.Graph.Node(w.Chaser.Node).Role = RoleStart
	w.Graph.Node(w.Player.Node).Role = RoleEnd
}
