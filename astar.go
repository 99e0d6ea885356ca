package main

import (
	"container/heap"
)

// searchEntry is one frontier entry of the best-first search
type searchEntry struct {
	NodeID   NodeID
	Priority float64 // Hops so far + distance to goal
	Seq      int     // Insertion order, breaks priority ties
	Index    int     // Index in the heap
}

// PriorityQueue implements heap.Interface ordered by (Priority, Seq)
type PriorityQueue []*searchEntry

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	entry := x.(*searchEntry)
	entry.Index = n
	*pq = append(*pq, entry)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.Index = -1
	*pq = old[0 : n-1]
	return entry
}

// FindPath searches the graph from start to goal. Every edge costs one hop;
// the Euclidean distance to the goal guides the frontier. The returned path
// includes both ends. ok is false when the goal cannot be reached.
func FindPath(g *Graph, start, goal NodeID) ([]NodeID, bool) {
	if g == nil || g.Node(start) == nil || g.Node(goal) == nil {
		return nil, false
	}
	goalPoint := g.Node(goal).Pos

	openSet := &PriorityQueue{}
	heap.Init(openSet)
	heap.Push(openSet, &searchEntry{NodeID: start})

	cameFrom := map[NodeID]NodeID{}
	costSoFar := map[NodeID]int{start: 0}
	seq := 1

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*searchEntry)
		if current.NodeID == goal {
			break
		}

		for _, next := range g.Neighbors(current.NodeID) {
			newCost := costSoFar[current.NodeID] + 1
			if oldCost, seen := costSoFar[next]; seen && newCost >= oldCost {
				continue
			}
			costSoFar[next] = newCost
			cameFrom[next] = current.NodeID
			heap.Push(openSet, &searchEntry{
				NodeID:   next,
				Priority: float64(newCost) + g.Node(next).Pos.Distance(goalPoint),
				Seq:      seq,
			})
			seq++
		}
	}

	return reconstructPath(cameFrom, start, goal)
}

// reconstructPath walks predecessor links back from goal
func reconstructPath(cameFrom map[NodeID]NodeID, start, goal NodeID) ([]NodeID, bool) {
	path := []NodeID{}
	for current := goal; current != start; {
		path = append(path, current)
		prev, ok := cameFrom[current]
		if !ok {
			return nil, false
		}
		current = prev
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// PathCost returns the number of hops in a path
func PathCost(path []NodeID) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
