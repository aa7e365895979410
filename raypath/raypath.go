// Package raypath implements the 1D ray-shooter collaborator named (but
// left unspecified) in spec.md §6: given a layered radius/velocity profile,
// a ray parameter, and a depth window, trace the path the ray follows
// within that window.
package raypath

import "math"

// RayPath shoots a ray with parameter p (sec/deg) through the layered
// profile r/v (descending radius, r[0] the largest) restricted to the
// window [topDepth,botDepth] (km, topDepth < botDepth, both present in r
// as exact radii by construction of the model's grid).
//
// It always shoots starting at the shallow end of the window (topDepth)
// toward the deep end: callers going up reverse the returned samples
// themselves (this is what lets the same routine serve both up- and
// down-going legs, since a ray path computed for one direction is the
// time-reverse of the other for a fixed p).
//
// degrees[0] == 0 and degrees is non-decreasing. lastIdx is the index into
// r/v of the final sample. turned reports whether the ray reached a
// turning point (local slowness r/v dropping to/below p) before reaching
// the window's deep end. The samples then stop in the layer where the ray
// turns: the returned path, time and distance cover the down-going part
// only and do not include the way back up toward topDepth.
func RayPath(re float64, r, v []float64, p, topDepth, botDepth float64) (timeSec, distKm float64, degrees []float64, lastIdx int, turned bool) {

	rTop, rBot := re-topDepth, re-botDepth

	iTop, okTop := indexOf(r, rTop)
	iBot, okBot := indexOf(r, rBot)
	if !okTop || !okBot || iTop > iBot {
		// degenerate window: nothing to shoot.
		return 0, 0, []float64{0}, iTop, false
	}

	degrees = []float64{0}
	if iTop == iBot {
		return 0, 0, degrees, iTop, false
	}

	// p arrives in sec/deg (p_deg = p_rad * pi/180, spec.md glossary); the
	// classical ray integrals below are stated in terms of the per-radian
	// slowness, so convert once and convert the accumulated angle back to
	// degrees at the end of each layer.
	rad2deg := 180 / math.Pi
	pRad := p * rad2deg

	for k := iTop; k < iBot; k++ {
		ra, rb := r[k], r[k+1]
		va, vb := v[k], v[k+1]
		rm := 0.5 * (ra + rb)
		vm := 0.5 * (va + vb)
		if vm < 1e-9 {
			// a zero-velocity (fluid, wrong-wave-type) layer: cannot carry
			// this wave type further; treat as an immediate turning point.
			turned = true
			lastIdx = k
			return
		}
		eta := rm / vm
		if eta <= pRad {
			// turning within this layer: use the outer radius's slowness
			// to bound the partial traversal, then stop (the path bends
			// back to rTop and never reaches rBot within this window).
			etaOuter := ra / va
			denom := math.Sqrt(math.Max(etaOuter*etaOuter-pRad*pRad, 1e-12))
			dr := ra - rm
			dThetaRad := pRad * dr / (ra * denom)
			dt := etaOuter * etaOuter * dr / (ra * denom)
			degrees = append(degrees, degrees[len(degrees)-1]+dThetaRad*rad2deg)
			timeSec += dt
			distKm += dr
			turned = true
			lastIdx = k
			return
		}
		denom := math.Sqrt(eta*eta - pRad*pRad)
		dr := ra - rb
		dThetaRad := pRad * dr / (rm * denom)
		dt := eta * eta * dr / (rm * denom)

		degrees = append(degrees, degrees[len(degrees)-1]+dThetaRad*rad2deg)
		timeSec += dt
		distKm += dr
		lastIdx = k + 1
	}
	return
}

// indexOf returns the index of the closest value to target in a descending
// array, and whether it matched within tolerance (the model's grid is
// built to contain the exact radius, so this should always be an exact
// hit; the tolerance only guards against floating point noise).
func indexOf(r []float64, target float64) (int, bool) {
	best, bestDiff := 0, math.MaxFloat64
	for i, v := range r {
		d := math.Abs(v - target)
		if d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best, bestDiff < 1e-6
}
