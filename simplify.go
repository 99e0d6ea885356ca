package main

import (
	"github.com/paulmach/orb/simplify"
)

// SimplifyPolygon drops nearly collinear vertices with Douglas-Peucker.
// Fewer vertices means fewer clearance points and fewer edges to test on
// every rebuild. Outlines that would collapse below a triangle are kept as is.
func SimplifyPolygon(polygon Polygon, epsilon float64) Polygon {
	if epsilon <= 0 || len(polygon.Vertices) <= 3 {
		return polygon
	}

	// Simplify in local coordinates so the offset survives
	local := polygon
	local.Offset = Point{}
	simplified := simplify.DouglasPeucker(epsilon).Ring(ringFromPolygon(local))

	result := polygonFromRing(simplified, polygon.Flip)
	if len(result.Vertices) < 3 {
		return polygon // Failed to simplify adequately
	}
	result.Offset = polygon.Offset
	return result
}

// SimplifyPolygons simplifies multiple polygons
func SimplifyPolygons(polygons []Polygon, epsilon float64) []Polygon {
	simplified := make([]Polygon, len(polygons))
	for i, poly := range polygons {
		simplified[i] = SimplifyPolygon(poly, epsilon)
	}
	return simplified
}
