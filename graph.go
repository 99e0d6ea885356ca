package main

import "sort"

// NodeID identifies a graph node for its whole lifetime
type NodeID int

// NodeRole is informational only, used when drawing
type NodeRole int

const (
	RoleOpen NodeRole = iota + 1
	RoleClosed
	RoleStart
	RoleEnd
	RolePath
)

// Node is a point of interest in the visibility graph
type Node struct {
	ID    NodeID
	Pos   Point
	Role  NodeRole
	Dirty bool
}

// EdgeRef is one undirected edge, A < B
type EdgeRef struct {
	A, B NodeID
}

// Graph owns the nodes and a symmetric adjacency table. Edges are only
// changed through SetEdge and ClearEdge.
type Graph struct {
	nodes  map[NodeID]*Node
	order  []NodeID
	adj    map[NodeID]map[NodeID]struct{}
	dirty  []NodeID
	nextID NodeID
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*Node),
		adj:   make(map[NodeID]map[NodeID]struct{}),
	}
}

// AddNode creates a dirty node and queues it for its first build
func (g *Graph) AddNode(pos Point, role NodeRole) NodeID {
	id := g.nextID
	g.nextID++

	g.nodes[id] = &Node{ID: id, Pos: pos, Role: role}
	g.order = append(g.order, id)
	g.adj[id] = make(map[NodeID]struct{})
	g.markDirty(id)
	return id
}

// MoveNode repositions a node and queues it for recomputation
func (g *Graph) MoveNode(id NodeID, pos Point) {
	node, ok := g.nodes[id]
	if !ok {
		return
	}
	node.Pos = pos
	g.markDirty(id)
}

func (g *Graph) markDirty(id NodeID) {
	node := g.nodes[id]
	if node.Dirty {
		return
	}
	node.Dirty = true
	g.dirty = append(g.dirty, id)
}

// TakeDirty drains the dirty work-list in the order nodes were queued.
// Flags stay set until the builder clears them.
func (g *Graph) TakeDirty() []NodeID {
	ids := g.dirty
	g.dirty = nil
	return ids
}

// Node returns the node with the given id, or nil
func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

// Position returns the position of a node
func (g *Graph) Position(id NodeID) (Point, bool) {
	node, ok := g.nodes[id]
	if !ok {
		return Point{}, false
	}
	return node.Pos, true
}

// NodeIDs returns every node id in creation order
func (g *Graph) NodeIDs() []NodeID {
	return g.order
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

// SetEdge connects a and b on both sides. Self-loops and unknown nodes are ignored.
func (g *Graph) SetEdge(a, b NodeID) {
	if a == b {
		return
	}
	adjA, okA := g.adj[a]
	adjB, okB := g.adj[b]
	if !okA || !okB {
		return
	}
	adjA[b] = struct{}{}
	adjB[a] = struct{}{}
}

// ClearEdge removes the edge between a and b from both sides
func (g *Graph) ClearEdge(a, b NodeID) {
	delete(g.adj[a], b)
	delete(g.adj[b], a)
}

// ClearEdges removes every edge touching id
func (g *Graph) ClearEdges(id NodeID) {
	for other := range g.adj[id] {
		g.ClearEdge(id, other)
	}
}

func (g *Graph) Connected(a, b NodeID) bool {
	_, ok := g.adj[a][b]
	return ok
}

func (g *Graph) Degree(id NodeID) int {
	return len(g.adj[id])
}

// Neighbors returns the ids connected to id in ascending order
func (g *Graph) Neighbors(id NodeID) []NodeID {
	neighbors := make([]NodeID, 0, len(g.adj[id]))
	for other := range g.adj[id] {
		neighbors = append(neighbors, other)
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	return neighbors
}

// Edges returns every undirected edge once, for drawing
func (g *Graph) Edges() []EdgeRef {
	edges := make([]EdgeRef, 0)
	for _, id := range g.order {
		for _, other := range g.Neighbors(id) {
			if id < other {
				edges = append(edges, EdgeRef{A: id, B: other})
			}
		}
	}
	return edges
}
