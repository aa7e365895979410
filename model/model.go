// Package model implements the Model Builder (spec.md §4.1): construction
// of the radial grid for the 1D reference model, rectification of
// polygonal regions into dense polylines aligned with that grid, and
// derivation of each region's layered velocity/density arrays.
package model

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/shuleyu/RayTracing/config"
	"github.com/shuleyu/RayTracing/earth"
	"github.com/shuleyu/RayTracing/geom"
)

// Model is the read-only context shared by every ray-tracing worker
// (spec.md §5 "Shared state"). Nothing in it is mutated once built.
type Model struct {
	RE float64

	// R[0] is the 1D reference grid; R[k], k>=1 is the contiguous slice of
	// R[0] spanning region k's polygon.
	R   [][]float64
	Vp  [][]float64
	Vs  [][]float64
	Rho [][]float64

	// Regions[0] is unused (region 0 is the unbounded 1D reference).
	Regions      [][]geom.Point
	RegionBounds []geom.BBox
	DVp          []float64
	DVs          []float64
	DRho         []float64

	// SpecialDepths is sorted ascending and always contains at least
	// {0, RE-earth.CMB, RE-earth.ICB, RE} so the fixed discontinuities of
	// spec.md §3 are always honoured even if the caller's config omits
	// them.
	SpecialDepths []float64

	Index *geom.RegionIndex
}

// Build runs the Model Builder over cfg, producing the shared, read-only
// ModelContext every worker traces rays against.
func Build(cfg *config.Config) *Model {
	m := &Model{RE: earth.RE}

	m.buildSpecialDepths(cfg)
	m.buildReferenceGrid(cfg)
	m.buildRegions(cfg)
	m.buildIndex()

	return m
}

func (m *Model) buildSpecialDepths(cfg *config.Config) {
	set := map[float64]bool{0: true, m.RE: true, m.RE - earth.CMB: true, m.RE - earth.ICB: true}
	for _, d := range cfg.SpecialDepths {
		set[d] = true
	}
	for _, d := range cfg.Deviations {
		set[d.DepthTop] = true
		set[d.DepthBot] = true
	}
	out := make([]float64, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Float64s(out)
	m.SpecialDepths = out
}

func (m *Model) buildIndex() {
	if len(m.RegionBounds) <= 1 {
		m.Index = geom.NewRegionIndex(nil)
		return
	}
	m.Index = geom.NewRegionIndex(m.RegionBounds[1:])
}

// devs converts the config's deviation records to the earth package's type.
func devs(cfg *config.Config) []earth.Deviation {
	out := make([]earth.Deviation, len(cfg.Deviations))
	for i, d := range cfg.Deviations {
		out[i] = earth.Deviation{
			DepthTop: d.DepthTop, DepthBot: d.DepthBot,
			DVp: d.DVp, DVs: d.DVs, DRho: d.DRho,
		}
	}
	return out
}

// closestIndex returns the index of the R[0] entry closest to r (R[0] is
// strictly descending), mirroring the original system's findClosetLayer.
func closestIndex(r []float64, target float64) int {
	// r descending: find first index where r[i] <= target.
	idx := sort.Search(len(r), func(i int) bool { return r[i] <= target })
	switch {
	case idx == 0:
		return 0
	case idx == len(r):
		return len(r) - 1
	default:
		if math.Abs(r[idx]-target) < math.Abs(r[idx-1]-target) {
			return idx
		}
		return idx - 1
	}
}

func mustIntInvariant(cond bool, msg string, args ...interface{}) {
	if !cond {
		chk.Panic(msg, args...)
	}
}

func debugf(cfg *config.Config, format string, args ...interface{}) {
	if cfg.DebugInfo {
		io.Pf(format, args...)
	}
}
