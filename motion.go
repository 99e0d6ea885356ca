package main

import "math"

const (
	DefaultMaxSpeed = 2.0
	Acceleration    = 5.0   // Velocity change per held direction per tick
	EaseDistance    = 100.0 // Below this distance to the target, approach slows down
	EaseDivisor     = 25.0
)

// Agent is a mobile node: the keyboard-driven player or the chaser
type Agent struct {
	Node     NodeID
	Pos      Point
	Vel      Point
	Size     Point
	MaxSpeed float64
	Target   *Agent
	Path     []NodeID // Last path followed, nil when idle
}

// NewAgent creates an agent and its graph node
func NewAgent(g *Graph, pos, size Point) *Agent {
	return &Agent{
		Node:     g.AddNode(pos, RoleOpen),
		Pos:      pos,
		Size:     size,
		MaxSpeed: DefaultMaxSpeed,
	}
}

// Accelerate applies held direction flags to the velocity
func (a *Agent) Accelerate(dir Direction) {
	if dir.Has(DirLeft) {
		a.Vel.X -= Acceleration
	}
	if dir.Has(DirRight) {
		a.Vel.X += Acceleration
	}
	if dir.Has(DirUp) {
		a.Vel.Y -= Acceleration
	}
	if dir.Has(DirDown) {
		a.Vel.Y += Acceleration
	}
}

// ToggleTarget starts pursuing other, or stops if already pursuing
func (a *Agent) ToggleTarget(other *Agent) {
	if a.Target != nil {
		a.Target = nil
		return
	}
	a.Target = other
}

// Update runs one tick: follow the path towards the target if any, then
// integrate velocity into position.
func (a *Agent) Update(g *Graph) {
	a.Path = nil
	if a.Target != nil {
		path, ok := FindPath(g, a.Node, a.Target.Node)
		if ok && len(path) > 1 {
			a.Path = path
			waypoint, _ := g.Position(path[1])
			ease := path[1] == a.Target.Node && a.Pos.Distance(waypoint) < EaseDistance
			a.MoveToward(waypoint, ease)
		}
	}

	if a.Vel.X == 0 && a.Vel.Y == 0 {
		return
	}

	a.Pos = a.Pos.Add(a.Vel)
	g.MoveNode(a.Node, a.Pos)
	a.Vel = Point{}
}

// MoveToward sets the velocity towards point, capped at MaxSpeed
func (a *Agent) MoveToward(point Point, ease bool) {
	delta := point.Sub(a.Pos)
	if ease {
		delta = delta.Scale(1 / EaseDivisor)
	}
	a.Vel = ClampVelocity(delta, a.MaxSpeed)
}

// ClampVelocity scales v so that neither axis exceeds maxSpeed. Both axes
// share one scale factor so the direction is kept.
func ClampVelocity(v Point, maxSpeed float64) Point {
	largest := math.Max(math.Abs(v.X), math.Abs(v.Y))
	if largest <= maxSpeed || largest == 0 {
		return v
	}
	return v.Scale(maxSpeed / largest)
}

// Center returns the middle of the agent's body
func (a *Agent) Center() Point {
	return a.Pos.Add(a.Size.Scale(0.5))
}
