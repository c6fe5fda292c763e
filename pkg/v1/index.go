package vectorio

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// FeatureIndex answers bounding-box queries over a set of features using an
// R-tree spatial index.
//
// Queries are O(log N) against the R-tree instead of O(N) over the feature
// slice, which matters for viewport-style access over large layers.
//
// Example:
//
//	idx := vectorio.NewFeatureIndex()
//	for i := range features {
//	    idx.Add(&features[i])
//	}
//	visible := idx.Query(orb.Bound{Min: orb.Point{7.0, 50.0}, Max: orb.Point{7.5, 50.5}})
type FeatureIndex struct {
	rtree *rtreego.Rtree
	count int
}

type indexEntry struct {
	feature *Feature
	rect    rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect { return e.rect }

// NewFeatureIndex returns an empty index.
func NewFeatureIndex() *FeatureIndex {
	// 2D, min=25, max=50 children per node.
	return &FeatureIndex{rtree: rtreego.NewTree(2, 25, 50)}
}

// Add indexes the feature by its geometry bound. Features without geometry
// are not indexed.
func (ix *FeatureIndex) Add(f *Feature) {
	if f.Geometry == nil {
		return
	}
	ix.rtree.Insert(&indexEntry{feature: f, rect: rectFromBound(f.Geometry.Bound())})
	ix.count++
}

// Query returns all indexed features whose bounds intersect b.
func (ix *FeatureIndex) Query(b orb.Bound) []*Feature {
	var out []*Feature
	for _, spatial := range ix.rtree.SearchIntersect(rectFromBound(b)) {
		out = append(out, spatial.(*indexEntry).feature)
	}
	return out
}

// Count returns the number of indexed features.
func (ix *FeatureIndex) Count() int { return ix.count }

// rectFromBound converts an orb bound to an R-tree rectangle. Degenerate
// extents (points, axis-aligned lines) get a tiny positive length, which
// rtreego requires.
func rectFromBound(b orb.Bound) rtreego.Rect {
	point := rtreego.Point{b.Min[0], b.Min[1]}
	lengths := []float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]}
	for i, l := range lengths {
		if l <= 0 {
			lengths[i] = 1e-9
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}
