package main

import "log"

// VisibilityBuilder keeps a graph's adjacency consistent with node positions
// and the static obstacle set.
type VisibilityBuilder struct {
	graph     *Graph
	obstacles []*Obstacle
	index     *SpatialIndex
}

// NewVisibilityBuilder creates a builder over the given graph
func NewVisibilityBuilder(graph *Graph) *VisibilityBuilder {
	return &VisibilityBuilder{
		graph: graph,
		index: NewSpatialIndex(),
	}
}

// AddObstacle registers an obstacle and adds one graph node per clearance
// point. Obstacles cannot be removed.
func (vb *VisibilityBuilder) AddObstacle(o *Obstacle) ([]NodeID, error) {
	if err := vb.index.Insert(o); err != nil {
		return nil, err
	}
	vb.obstacles = append(vb.obstacles, o)

	ids := make([]NodeID, 0, len(o.Clearance))
	for _, p := range o.ClearancePoints() {
		ids = append(ids, vb.graph.AddNode(p, RoleOpen))
	}
	return ids, nil
}

// Obstacles returns the registered obstacles in insertion order
func (vb *VisibilityBuilder) Obstacles() []*Obstacle {
	return vb.obstacles
}

// RecomputeAdjacency rebuilds every edge of id against the current node
// and obstacle sets, then clears its dirty flag.
func (vb *VisibilityBuilder) RecomputeAdjacency(id NodeID) {
	node := vb.graph.Node(id)
	if node == nil {
		return
	}

	vb.graph.ClearEdges(id)
	for _, otherID := range vb.graph.NodeIDs() {
		if otherID == id {
			continue
		}
		other := vb.graph.Node(otherID)
		segment := LineSegment{P1: node.Pos, P2: other.Pos}
		if !LineIntersectsObstacles(segment, vb.index.QuerySegment(segment)) {
			vb.graph.SetEdge(id, otherID)
		}
	}
	node.Dirty = false
}

// RebuildDirty recomputes every queued node once and returns how many were rebuilt
func (vb *VisibilityBuilder) RebuildDirty() int {
	rebuilt := 0
	for _, id := range vb.graph.TakeDirty() {
		node := vb.graph.Node(id)
		if node == nil || !node.Dirty {
			continue
		}
		vb.RecomputeAdjacency(id)
		rebuilt++
	}
	return rebuilt
}

// BuildAll runs the first full build and logs its size
func (vb *VisibilityBuilder) BuildAll() {
	totalNodes := vb.graph.Len()
	log.Printf("   Obstacles: %d\n", len(vb.obstacles))
	log.Printf("   Unique nodes: %d\n", totalNodes)
	log.Printf("   Checking up to %d possible edges...\n", (totalNodes*(totalNodes-1))/2)

	rebuilt := vb.RebuildDirty()

	log.Printf("   Nodes built: %d\n", rebuilt)
	log.Printf("   Edges added: %d\n", len(vb.graph.Edges()))
}

// LineIntersectsObstacles reports whether seg is blocked by any obstacle
// edge or clearance connector. A connector does not block a segment that
// starts or ends on its own clearance point.
func LineIntersectsObstacles(seg LineSegment, obstacles []*Obstacle) bool {
	for _, o := range obstacles {
		for _, edge := range o.Edges {
			if SegmentsIntersect(seg, edge) {
				return true
			}
		}
		for _, i := range o.ClearanceIndices() {
			norm := o.Clearance[i]
			if seg.P1 == norm || seg.P2 == norm {
				continue
			}
			if SegmentsIntersect(seg, LineSegment{P1: o.Vertices[i], P2: norm}) {
				return true
			}
		}
	}
	return false
}
