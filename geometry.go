package main

import (
	"math"
	"sort"
)

// DefaultClearance is how far clearance points sit from their obstacle vertex
const DefaultClearance = 12.0

// Point is a position in the plane. Screen convention: Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Cross returns the z component of the cross product p x other
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LineSegment represents a line segment between two points
type LineSegment struct {
	P1, P2 Point
}

// SegmentsIntersect reports whether two segments cross or touch.
// Touching endpoints and collinear overlap count as intersecting; there is
// no epsilon, so exact tangency is treated as blocked.
func SegmentsIntersect(s0, s1 LineSegment) bool {
	d1 := direction(s1.P1, s1.P2, s0.P1)
	d2 := direction(s1.P1, s1.P2, s0.P2)
	d3 := direction(s0.P1, s0.P2, s1.P1)
	d4 := direction(s0.P1, s0.P2, s1.P2)

	// Collinear: only overlapping spans intersect
	if d1 == 0 && d2 == 0 && d3 == 0 && d4 == 0 {
		return onSegment(s1.P1, s1.P2, s0.P1) || onSegment(s1.P1, s1.P2, s0.P2) ||
			onSegment(s0.P1, s0.P2, s1.P1) || onSegment(s0.P1, s0.P2, s1.P2)
	}

	return d1*d2 <= 0 && d3*d4 <= 0
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 Point) float64 {
	return (p3.X-p1.X)*(p2.Y-p1.Y) - (p2.X-p1.X)*(p3.Y-p1.Y)
}

// onSegment checks if point q lies within the bounding box of segment pr
func onSegment(p, r, q Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// SegmentIntersectsCircle tests the infinite line through seg against a
// circle. It is deliberately conservative: points of the line beyond the
// segment's endpoints also count.
func SegmentIntersectsCircle(seg LineSegment, center Point, radius float64) bool {
	a := seg.P1.Sub(center)
	b := seg.P2.Sub(center)
	d := b.Sub(a)
	drSquared := d.X*d.X + d.Y*d.Y
	if drSquared == 0 {
		return a.X*a.X+a.Y*a.Y < radius*radius
	}
	det := a.X*b.Y - b.X*a.Y
	return radius*radius*drSquared > det*det
}

// PolygonNormals computes clearance points for a polygon. For each vertex the
// angle between its neighbours is bisected and a point is placed length away
// along the bisector. Convex vertices get a point unless flip is set, in which
// case only concave vertices do (the polygon encloses the walkable area).
func PolygonNormals(points []Point, length float64, flip bool) map[int]Point {
	norms := make(map[int]Point)
	n := len(points)
	if n < 3 {
		return norms
	}

	for i, ref := range points {
		v1 := points[(i-1+n)%n].Sub(ref)
		v2 := points[(i+1)%n].Sub(ref)
		l1, l2 := v1.Len(), v2.Len()
		if l1 == 0 || l2 == 0 {
			continue
		}

		t := math.Atan2(v2.Y, v2.X)
		cos := (v1.X*v2.X + v1.Y*v2.Y) / (l1 * l2)
		a := math.Acos(math.Max(-1, math.Min(1, cos)))
		convex := v1.X*v2.Y < v2.X*v1.Y

		var theta float64
		switch {
		case convex && !flip:
			theta = t + a/2 + math.Pi
		case !convex && flip:
			theta = t + math.Pi - a/2
		default:
			continue
		}
		norms[i] = Point{
			X: ref.X + math.Cos(theta)*length,
			Y: ref.Y + math.Sin(theta)*length,
		}
	}

	return norms
}

// sortedKeys returns the keys of a vertex-index map in ascending order
func sortedKeys(m map[int]Point) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
