package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// MergeOverlappingPolygons removes obstacles that lie entirely inside
// another obstacle. Their clearance points could never be reached, so they
// only cost line-of-sight tests. Enclosing boundaries are left alone.
func MergeOverlappingPolygons(polygons []Polygon) []Polygon {
	if len(polygons) <= 1 {
		return polygons
	}
	return removeContainedPolygons(polygons)
}

// removeContainedPolygons removes polygons that are fully contained within other polygons
func removeContainedPolygons(polygons []Polygon) []Polygon {
	rings := make([]orb.Ring, len(polygons))
	for i, poly := range polygons {
		rings[i] = ringFromPolygon(poly)
	}

	result := make([]Polygon, 0, len(polygons))
	contained := make([]bool, len(polygons))

	// Check each polygon against all others
	for i := 0; i < len(polygons); i++ {
		if contained[i] || polygons[i].Flip {
			continue
		}

		for j := 0; j < len(polygons); j++ {
			if i == j || contained[j] || polygons[j].Flip {
				continue
			}

			// Check if polygon i is contained in polygon j
			if isRingContainedIn(rings[i], rings[j]) {
				contained[i] = true
				break
			}
		}
	}

	// Collect non-contained polygons
	for i := 0; i < len(polygons); i++ {
		if !contained[i] {
			result = append(result, polygons[i])
		}
	}

	return result
}

// isRingContainedIn checks if ring a is fully contained within ring b
func isRingContainedIn(a, b orb.Ring) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	// Quick bounding box check first
	boundA, boundB := a.Bound(), b.Bound()
	if !boundB.Contains(boundA.Min) || !boundB.Contains(boundA.Max) {
		return false
	}

	// Check if all vertices of A are inside B
	for _, vertex := range a {
		if !planar.RingContains(b, vertex) {
			return false
		}
	}

	return true
}
