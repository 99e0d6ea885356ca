package main

import (
	"errors"
	"math"
)

// ErrDegeneratePolygon is returned for obstacle outlines with fewer than 3 vertices
var ErrDegeneratePolygon = errors.New("polygon needs at least 3 vertices")

// Polygon is an obstacle definition as it appears in a scene
type Polygon struct {
	Vertices []Point `json:"vertices"`
	Offset   Point   `json:"offset"`
	Flip     bool    `json:"flip,omitempty"` // Set for enclosing boundaries
}

// Obstacle is a closed polygon placed in the world. It never changes after
// NewObstacle returns.
type Obstacle struct {
	Vertices  []Point
	Flip      bool
	Clearance map[int]Point // Vertex index -> clearance point
	Edges     []LineSegment

	clearanceOrder []int
	bounds         BBox
}

// NewObstacle translates the polygon by its offset and derives edges and
// clearance points.
func NewObstacle(poly Polygon, clearance float64) (*Obstacle, error) {
	if len(poly.Vertices) < 3 {
		return nil, ErrDegeneratePolygon
	}

	vertices := make([]Point, len(poly.Vertices))
	for i, v := range poly.Vertices {
		vertices[i] = v.Add(poly.Offset)
	}

	o := &Obstacle{
		Vertices:  vertices,
		Flip:      poly.Flip,
		Clearance: PolygonNormals(vertices, clearance, poly.Flip),
		Edges:     make([]LineSegment, len(vertices)),
	}
	for i, v := range vertices {
		o.Edges[i] = LineSegment{P1: v, P2: vertices[(i+1)%len(vertices)]}
	}
	o.clearanceOrder = sortedKeys(o.Clearance)
	o.bounds = o.computeBounds()

	return o, nil
}

// ClearanceIndices returns the vertex indices that carry a clearance point, ascending
func (o *Obstacle) ClearanceIndices() []int {
	return o.clearanceOrder
}

// ClearancePoints returns clearance points in vertex order
func (o *Obstacle) ClearancePoints() []Point {
	points := make([]Point, 0, len(o.clearanceOrder))
	for _, i := range o.clearanceOrder {
		points = append(points, o.Clearance[i])
	}
	return points
}

// Bounds covers every vertex and clearance point
func (o *Obstacle) Bounds() BBox {
	return o.bounds
}

func (o *Obstacle) computeBounds() BBox {
	bbox := BBox{
		MinX: o.Vertices[0].X,
		MinY: o.Vertices[0].Y,
		MaxX: o.Vertices[0].X,
		MaxY: o.Vertices[0].Y,
	}
	extend := func(p Point) {
		bbox.MinX = math.Min(bbox.MinX, p.X)
		bbox.MinY = math.Min(bbox.MinY, p.Y)
		bbox.MaxX = math.Max(bbox.MaxX, p.X)
		bbox.MaxY = math.Max(bbox.MaxY, p.Y)
	}
	for _, v := range o.Vertices[1:] {
		extend(v)
	}
	for _, c := range o.Clearance {
		extend(c)
	}
	return bbox
}

// BBox represents an axis-aligned bounding box
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// segmentBBox calculates the bounding box of a segment
func segmentBBox(seg LineSegment) BBox {
	return BBox{
		MinX: math.Min(seg.P1.X, seg.P2.X),
		MinY: math.Min(seg.P1.Y, seg.P2.Y),
		MaxX: math.Max(seg.P1.X, seg.P2.X),
		MaxY: math.Max(seg.P1.Y, seg.P2.Y),
	}
}
