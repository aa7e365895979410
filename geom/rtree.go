package geom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/dhconnelly/rtreego"
)

const bboxPad = 1e-9

// regionEntry adapts one region's bounding box to rtreego.Spatial.
type regionEntry struct {
	id   int
	rect *rtreego.Rect
}

func (e *regionEntry) Bounds() *rtreego.Rect { return e.rect }

// RegionIndex accelerates the Leg Propagator's "which polygon could this
// point be entering" scan (spec.md §4.3 Step 4): instead of testing every
// non-reference polygon in turn, shortlist the few whose bounding box
// actually covers the point with an R-tree, then run the exact
// PointInPolygon test only on those.
type RegionIndex struct {
	tree *rtreego.Rtree
}

// NewRegionIndex builds a spatial index over region bounding boxes.
// bounds[k] is the bbox of region k+1 (region 0, the 1D reference, is
// never indexed: it is the fallback when no polygon matches).
func NewRegionIndex(bounds []BBox) *RegionIndex {
	tree := rtreego.NewTree(2, 4, 8)
	for k, b := range bounds {
		p := rtreego.Point{b.ThetaMin, b.RadiusMin}
		lengths := []float64{
			width(b.ThetaMax-b.ThetaMin, bboxPad),
			width(b.RadiusMax-b.RadiusMin, bboxPad),
		}
		rect, err := rtreego.NewRect(p, lengths)
		if err != nil {
			chk.Panic("cannot build spatial index for region %d: %v", k+1, err)
		}
		tree.Insert(&regionEntry{id: k + 1, rect: rect})
	}
	return &RegionIndex{tree: tree}
}

func width(w, pad float64) float64 {
	if w < pad {
		return pad
	}
	return w
}

// Candidates returns the region ids (1-based) whose bounding box contains
// p. Callers still must confirm membership with the exact PointInPolygon
// test: a bounding-box hit is necessary, not sufficient.
func (ri *RegionIndex) Candidates(p Point) []int {
	rect, err := rtreego.NewRect(rtreego.Point{p.Theta, p.Radius}, []float64{bboxPad, bboxPad})
	if err != nil {
		chk.Panic("cannot query spatial index: %v", err)
	}
	hits := ri.tree.SearchIntersect(rect)
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*regionEntry).id)
	}
	return ids
}
