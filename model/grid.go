package model

import (
	"sort"

	"github.com/shuleyu/RayTracing/config"
	"github.com/shuleyu/RayTracing/geom"
)

// buildReferenceGrid constructs R[0]: concatenate the per-spec radial
// grids (deduplicating shared endpoints), force the endpoints to exactly
// RE and 0, and splice in the exact radii of every special depth and
// deviation boundary so later equality comparisons against interface
// radii are exact (spec.md §4.1 "Radial grid R[0]").
func (m *Model) buildReferenceGrid(cfg *config.Config) {
	var r0 []float64
	for _, g := range cfg.Grid {
		asc := geom.CreateGrid(m.RE-g.Depth2, m.RE-g.Depth1, g.Inc, 2)
		desc := make([]float64, len(asc))
		for i, v := range asc {
			desc[len(asc)-1-i] = v
		}
		if len(r0) > 0 {
			r0 = r0[:len(r0)-1] // drop the duplicated shared endpoint
		}
		r0 = append(r0, desc...)
	}
	if len(r0) == 0 {
		r0 = []float64{m.RE, 0}
	}
	r0[0] = m.RE
	r0[len(r0)-1] = 0

	insertSet := map[float64]bool{0: true, m.RE: true}
	for _, d := range m.SpecialDepths {
		insertSet[m.RE-d] = true
	}
	for _, d := range cfg.Deviations {
		insertSet[m.RE-d.DepthTop] = true
		insertSet[m.RE-d.DepthBot] = true
	}

	toInsert := make([]float64, 0, len(insertSet))
	for r := range insertSet {
		toInsert = append(toInsert, r)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(toInsert)))

	merged := mergeDescending(r0, toInsert)
	for i := 1; i < len(merged); i++ {
		mustIntInvariant(merged[i] < merged[i-1], "R[0] is not strictly descending at index %d (%v >= %v)", i, merged[i], merged[i-1])
	}
	m.R = append(m.R, merged)
}

// mergeDescending walks existing (descending) and insert (descending, must
// all lie within [0,existing[0]]) in tandem, keeping whichever radius
// comes first in descending order; equal values are kept once.
func mergeDescending(existing, insert []float64) []float64 {
	out := make([]float64, 0, len(existing)+len(insert))
	i, j := 0, 0
	for i < len(existing) && j < len(insert) {
		switch {
		case existing[i] == insert[j]:
			out = append(out, existing[i])
			i++
			j++
		case existing[i] > insert[j]:
			out = append(out, existing[i])
			i++
		default:
			out = append(out, insert[j])
			j++
		}
	}
	out = append(out, existing[i:]...)
	out = append(out, insert[j:]...)
	return out
}
