package feature

import (
	"github.com/dhconnelly/rtreego"

	"github.com/ice200117/mapnik/pkg/geom"
)

// Index provides fast spatial queries over a collection of features.
//
// Features are keyed by their envelope in an R-tree, so intersect queries
// are O(log N) instead of a linear scan. The envelope is captured at
// insertion time; re-insert a feature if its geometries change.
//
// Example:
//
//	idx := feature.NewIndex(features...)
//	viewport := geom.NewBox2D(-71.5, 42.0, -71.0, 42.5)
//	visible := idx.Search(viewport)
//
// Index has no internal locking; see the package documentation for the
// concurrency contract.
type Index struct {
	features []*Feature
	rtree    *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature *Feature
	bounds  geom.Box2D
}

// epsilon pads zero-extent envelopes so point features get a non-zero
// R-tree rectangle (~11 meters at the equator for degree coordinates).
const epsilon = 0.0001

// Bounds implements the rtreego.Spatial interface.
func (e *indexedFeature) Bounds() rtreego.Rect {
	return rectFromBox(e.bounds)
}

func rectFromBox(b geom.Box2D) rtreego.Rect {
	point := rtreego.Point{b.MinX, b.MinY}
	lengths := []float64{b.Width(), b.Height()}
	for i := range lengths {
		if lengths[i] < epsilon {
			lengths[i] = epsilon
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewIndex builds an index over the given features. Features whose
// envelope is empty (no geometries) are skipped.
func NewIndex(features ...*Feature) *Index {
	idx := &Index{
		rtree: rtreego.NewTree(2, 25, 50),
	}
	for _, f := range features {
		idx.Insert(f)
	}
	return idx
}

// Insert adds f to the index, keyed by its current envelope. Features
// with an empty envelope are ignored.
func (idx *Index) Insert(f *Feature) {
	bounds := f.Envelope()
	if !bounds.Valid() {
		return
	}
	if idx.rtree == nil {
		idx.rtree = rtreego.NewTree(2, 25, 50)
	}
	idx.features = append(idx.features, f)
	idx.rtree.Insert(&indexedFeature{feature: f, bounds: bounds})
}

// Len returns the number of indexed features.
func (idx *Index) Len() int {
	return len(idx.features)
}

// Features returns all indexed features in insertion order. Callers must
// not modify the returned slice.
func (idx *Index) Features() []*Feature {
	return idx.features
}

// Search returns every indexed feature whose envelope intersects bounds.
// An invalid query box matches nothing.
func (idx *Index) Search(bounds geom.Box2D) []*Feature {
	if !bounds.Valid() {
		return nil
	}
	if idx.rtree == nil {
		return idx.searchLinear(bounds)
	}

	spatials := idx.rtree.SearchIntersect(rectFromBox(bounds))

	result := make([]*Feature, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		result = append(result, indexed.feature)
	}
	return result
}

// searchLinear is the fallback scan for a zero-value Index with no tree.
func (idx *Index) searchLinear(bounds geom.Box2D) []*Feature {
	var result []*Feature
	for _, f := range idx.features {
		if bounds.Intersects(f.Envelope()) {
			result = append(result, f)
		}
	}
	return result
}
