package model

// VelocityAt returns the region-scaled P or S velocity nearest to depth
// within region's layer slice, used by the Seeder (spec.md §4.2) to turn
// a takeoff angle into a ray parameter.
func (m *Model) VelocityAt(region int, depth float64, isP bool) float64 {
	idx := closestIndex(m.R[region], m.RE-depth)
	if isP {
		return m.Vp[region][idx]
	}
	return m.Vs[region][idx]
}
