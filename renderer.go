package main

import (
	"fmt"
	"image/color"
)

// Renderer receives the primitives of one frame. Present is called last.
type Renderer interface {
	Clear(c color.RGBA)
	Polygon(points []Point, c color.RGBA)
	Circle(center Point, radius float64, c color.RGBA)
	Line(a, b Point, c color.RGBA)
	Text(pos Point, text string, c color.RGBA)
	Present() error
}

// Colors used in rendering
var (
	colorBackground = color.RGBA{20, 20, 20, 255}
	colorObstacle   = color.RGBA{200, 0, 0, 255}
	colorConnector  = color.RGBA{0, 200, 200, 255}
	colorEdge       = color.RGBA{60, 60, 60, 255}
	colorPath       = color.RGBA{200, 200, 200, 255}
	colorAgent      = color.RGBA{200, 0, 200, 255}
	colorLabel      = color.RGBA{255, 127, 80, 255} // coral
)

// RoleColor returns the display colour of a node role
func RoleColor(role NodeRole) color.RGBA {
	switch role {
	case RoleClosed:
		return color.RGBA{38, 70, 83, 255}
	case RoleStart:
		return color.RGBA{233, 196, 106, 255}
	case RoleEnd:
		return color.RGBA{231, 111, 81, 255}
	case RolePath:
		return color.RGBA{244, 162, 97, 255}
	default:
		return color.RGBA{41, 157, 143, 255}
	}
}

// DrawOptions toggles the optional overlays
type DrawOptions struct {
	ShowEdges      bool
	ShowConnectors bool
}

const nodeRadius = 4

// DrawWorld issues one frame: obstacles, graph, chaser path, agents, label
func DrawWorld(w *World, r Renderer, opts DrawOptions, fps float64) error {
	r.Clear(colorBackground)

	for _, o := range w.Obstacles() {
		r.Polygon(o.Vertices, colorObstacle)
		if opts.ShowConnectors {
			for _, i := range o.ClearanceIndices() {
				r.Line(o.Vertices[i], o.Clearance[i], colorConnector)
			}
		}
	}

	if opts.ShowEdges {
		for _, e := range w.Graph.Edges() {
			a, _ := w.Graph.Position(e.A)
			b, _ := w.Graph.Position(e.B)
			r.Line(a, b, colorEdge)
		}
	}

	for _, id := range w.Graph.NodeIDs() {
		node := w.Graph.Node(id)
		r.Circle(node.Pos, nodeRadius, RoleColor(node.Role))
	}

	path := w.Chaser.Path
	for i := 0; i+1 < len(path); i++ {
		a, _ := w.Graph.Position(path[i])
		b, _ := w.Graph.Position(path[i+1])
		r.Line(a, b, colorPath)
	}

	for _, agent := range []*Agent{w.Chaser, w.Player} {
		r.Polygon(agentRect(agent), colorAgent)
	}

	r.Text(Point{0, 0}, fmt.Sprintf("%d", int(fps)), colorLabel)
	return r.Present()
}

// agentRect returns the corners of an agent's body
func agentRect(a *Agent) []Point {
	return []Point{
		a.Pos,
		{X: a.Pos.X + a.Size.X, Y: a.Pos.Y},
		a.Pos.Add(a.Size),
		{X: a.Pos.X, Y: a.Pos.Y + a.Size.Y},
	}
}
