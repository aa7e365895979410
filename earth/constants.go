// Package earth holds the physical constants of the radially-symmetric
// reference Earth and the PREM reference velocity/density profile.
package earth

// RE is the mean Earth radius, km.
const RE = 6371.0

// CMB and ICB are the radii, km, of the two fixed internal discontinuities.
const (
	CMB = 3480.0
	ICB = 1221.5
)

// Deviation is one record of a deviation specification: within
// [DepthTop,DepthBot] (km), the 1D reference model is scaled by the given
// percentages. Only the first containing record applies at any depth.
type Deviation struct {
	DepthTop, DepthBot float64
	DVp, DVs, DRho     float64 // percent
}

// Scale returns the first deviation record containing depth, or (1,1,1) if
// none contains it.
func Scale(depth float64, devs []Deviation) (dvp, dvs, drho float64) {
	dvp, dvs, drho = 1, 1, 1
	for _, d := range devs {
		if d.DepthTop <= depth && depth <= d.DepthBot {
			dvp = 1 + d.DVp/100
			dvs = 1 + d.DVs/100
			drho = 1 + d.DRho/100
			break
		}
	}
	return
}
