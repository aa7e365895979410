package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func square() []Point {
	return []Point{{0, 10}, {1, 10}, {1, 11}, {0, 11}}
}

func Test_pip01(tst *testing.T) {
	chk.PrintTitle("pip01. point strictly inside/outside a square")
	poly := square()
	bb := BoundingBox(poly)
	if !PointInPolygon(poly, Point{0.5, 10.5}, 0, bb) {
		tst.Errorf("center point should be inside")
	}
	if PointInPolygon(poly, Point{5, 5}, 0, bb) {
		tst.Errorf("far point should be outside")
	}
}

func Test_pip02(tst *testing.T) {
	chk.PrintTitle("pip02. boundary handling depends on inclusive flag")
	poly := square()
	bb := BoundingBox(poly)
	edge := Point{0.5, 10}
	if PointInPolygon(poly, edge, 0, bb) {
		tst.Errorf("inclusive=0 must not treat the boundary as inside")
	}
	if !PointInPolygon(poly, edge, -1, bb) {
		tst.Errorf("inclusive=-1 must treat the boundary as inside")
	}
	if !PointInPolygon(poly, edge, 1, bb) {
		tst.Errorf("inclusive=1 must treat the boundary as inside")
	}
}

func Test_junction01(tst *testing.T) {
	chk.PrintTitle("junction01. crossing segments intersect at the expected point")
	found, p := SegmentJunction(Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0})
	if !found {
		tst.Fatalf("expected an intersection")
	}
	chk.AnaNum(tst, "theta", 1e-12, p.Theta, 1.0, false)
	chk.AnaNum(tst, "radius", 1e-12, p.Radius, 1.0, false)
}

func Test_junction02(tst *testing.T) {
	chk.PrintTitle("junction02. parallel segments never intersect")
	found, _ := SegmentJunction(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1})
	if found {
		tst.Errorf("parallel segments must not report an intersection")
	}
}

func Test_locdist01(tst *testing.T) {
	chk.PrintTitle("locdist01. chord length collapses to law of cosines in-plane")
	d := LocDist(0, 0, 6371, 1, 0, 6371)
	want := 2 * 6371 * math.Sin(0.5*math.Pi/180)
	chk.AnaNum(tst, "d", 1e-9, d, want, false)
}

func Test_grid01(tst *testing.T) {
	chk.PrintTitle("grid01. CreateGrid snaps its last point to b")
	g := CreateGrid(0, 10, 3, 2)
	if g[len(g)-1] != 10 {
		tst.Errorf("last grid point must be exactly b, got %v", g[len(g)-1])
	}
}

func Test_rtree01(tst *testing.T) {
	chk.PrintTitle("rtree01. region index shortlists the right region")
	bounds := []BBox{
		{0, 1, 10, 11},
		{5, 6, 20, 21},
	}
	ri := NewRegionIndex(bounds)
	ids := ri.Candidates(Point{0.5, 10.5})
	if len(ids) != 1 || ids[0] != 1 {
		tst.Errorf("expected candidate [1], got %v", ids)
	}
}
