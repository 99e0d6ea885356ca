package main

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// rtreego rejects zero-length sides, so every box is padded by this much
const boundsPadding = 1e-6

// ObstacleEntry wraps an obstacle for R-tree storage
type ObstacleEntry struct {
	Obstacle *Obstacle
	Order    int
	BBox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *ObstacleEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// SpatialIndex answers which obstacles a segment could possibly touch
type SpatialIndex struct {
	tree  *rtreego.Rtree
	count int
}

// NewSpatialIndex creates a new spatial index
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{tree: rtreego.NewTree(2, 2, 8)}
}

// Insert adds an obstacle; insertion order is kept for query results
func (si *SpatialIndex) Insert(o *Obstacle) error {
	bbox, err := rectFromBBox(o.Bounds())
	if err != nil {
		return err
	}
	si.tree.Insert(&ObstacleEntry{Obstacle: o, Order: si.count, BBox: bbox})
	si.count++
	return nil
}

// Len returns the number of indexed obstacles
func (si *SpatialIndex) Len() int {
	return si.count
}

// QuerySegment returns obstacles whose bounds meet the segment's bounding
// box, in insertion order.
func (si *SpatialIndex) QuerySegment(seg LineSegment) []*Obstacle {
	bbox, err := rectFromBBox(segmentBBox(seg))
	if err != nil {
		return []*Obstacle{}
	}

	results := si.tree.SearchIntersect(bbox)
	entries := make([]*ObstacleEntry, 0, len(results))
	for _, item := range results {
		entries = append(entries, item.(*ObstacleEntry))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Order < entries[j].Order })

	obstacles := make([]*Obstacle, len(entries))
	for i, entry := range entries {
		obstacles[i] = entry.Obstacle
	}
	return obstacles
}

// rectFromBBox converts a bounding box into a padded rtreego rectangle
func rectFromBBox(b BBox) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.MinX - boundsPadding, b.MinY - boundsPadding},
		[]float64{b.MaxX - b.MinX + 2*boundsPadding, b.MaxY - b.MinY + 2*boundsPadding},
	)
}
