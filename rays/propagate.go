package rays

import (
	"math"
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/shuleyu/RayTracing/coef"
	"github.com/shuleyu/RayTracing/earth"
	"github.com/shuleyu/RayTracing/geom"
	"github.com/shuleyu/RayTracing/raypath"
)

const depthEps = 1e-9

// processLeg is the Leg Propagator (spec.md §4.3): trace one leg of the
// ray at slot i, resolve the interface it terminates at, and emit up to
// four children at freshly reserved slots.
func (e *Engine) processLeg(i int) {
	h := &e.Heads[i]
	m := e.Model

	depth := m.RE - h.Pr
	top, bot := e.targetWindow(depth, h.GoUp, h.InRegion)

	v := m.Vs[h.InRegion]
	if h.IsP {
		v = m.Vp[h.InRegion]
	}

	timeSec, distKm, degrees, lastIdx, turned := raypath.RayPath(m.RE, m.R[h.InRegion], v, h.RayP, top, bot)
	e.debugf("leg %d: region=%d depth=%.3f window=[%.3f,%.3f] turned=%v samples=%d\n",
		i, h.InRegion, depth, top, bot, turned, len(degrees))

	if len(degrees) <= 1 {
		// Trivial leg: terminates only this ray (spec.md §7).
		h.RemainingLegs = 0
		e.Sink.RaysTheta[i] = []float64{h.Pt}
		e.Sink.RaysRadius[i] = []float64{h.Pr}
		e.Sink.RaysN[i] = 1
		e.Sink.RayInfo[i] = io.Sf("%d %s trivial leg.", h.Color, h.Comp.String())
		return
	}

	n := len(degrees)
	rIndex := func(j int) int {
		if h.GoUp {
			return lastIdx - j
		}
		return j + lastIdx - (n - 1)
	}
	if h.GoUp {
		back := degrees[n-1]
		reversed := make([]float64, n)
		for j, d := range degrees {
			reversed[n-1-j] = back - d
		}
		degrees = reversed
	}

	mDir := 1.0
	if h.GoLeft {
		mDir = -1.0
	}
	samplePt := func(j int) geom.Point {
		return geom.Point{Theta: h.Pt + mDir*degrees[j], Radius: m.R[h.InRegion][rIndex(j)]}
	}

	// Record the path polyline for this leg.
	pathTheta := make([]float64, n)
	pathRadius := make([]float64, n)
	for j := 0; j < n; j++ {
		p := samplePt(j)
		pathTheta[j], pathRadius[j] = p.Theta, p.Radius
	}
	e.Sink.RaysTheta[i] = pathTheta
	e.Sink.RaysRadius[i] = pathRadius
	e.Sink.RaysN[i] = n

	// Step 4: region crossing detection.
	rayEnd := n
	nextRegion := h.InRegion
	for j := 0; j < n; j++ {
		p := samplePt(j)
		if h.InRegion != 0 {
			if !geom.PointInPolygon(m.Regions[h.InRegion], p, -1, m.RegionBounds[h.InRegion]) {
				rayEnd, nextRegion = j, e.regionContaining(p)
				break
			}
		} else {
			if k := e.regionContaining(p); k != 0 {
				rayEnd, nextRegion = j, k
				break
			}
		}
	}

	var junc geom.Point
	var tiltAngle float64
	var p2, q2 geom.Point

	if rayEnd < n {
		// Recompute travel time/distance up to the crossing using
		// current-region velocity at the far end of each sub-segment
		// (avoids dividing by a zero-velocity fluid layer).
		timeSec, distKm = 0, 0
		for j := 0; j < rayEnd; j++ {
			a, b := samplePt(j), samplePt(j+1)
			d := geom.LocDist(a.Theta, 0, a.Radius, b.Theta, 0, b.Radius)
			vel := v[rIndex(j+1)]
			distKm += d
			if vel > 1e-9 {
				timeSec += d / vel
			}
		}

		p2, q2 = samplePt(rayEnd-1), samplePt(rayEnd)

		searchRegion := nextRegion
		if nextRegion == 0 {
			searchRegion = h.InRegion
		}
		poly := m.Regions[searchRegion]
		ok := false
		var p1, q1 geom.Point
		for k := 0; k < len(poly); k++ {
			a, b := poly[k], poly[(k+1)%len(poly)]
			if hit, pt := geom.SegmentJunction(a, b, p2, q2); hit {
				p1, q1, junc, ok = a, b, pt, true
				break
			}
		}
		if !ok {
			chk.Panic("leg %d: no polygon edge intersects the region-crossing segment (invariant violated)", i)
		}

		d := geom.LocDist(p2.Theta, 0, p2.Radius, junc.Theta, 0, junc.Radius)
		distKm += d
		vel := v[rIndex(rayEnd-1)]
		if vel > 1e-9 {
			timeSec += d / vel
		}

		tiltAngle = math.Atan2(q1.Radius-p1.Radius, (q1.Theta-p1.Theta)*(math.Pi/180)*junc.Radius) * 180 / math.Pi
	} else {
		nextRegion = h.InRegion
		tiltAngle = 0
		junc = samplePt(n - 1)
		p2 = samplePt(n - 2)
		q2 = junc
	}

	// Step 6: incidence and direction.
	rayd := math.Atan2(q2.Radius-p2.Radius, (q2.Theta-p2.Theta)*(math.Pi/180)*junc.Radius) * 180 / math.Pi
	raydHor := mod360(rayd - tiltAngle)
	absH := math.Abs(mod180(raydHor))
	incident := 90 - absH
	if absH > 90 {
		incident = absH - 90
	}

	// Step 7: interface-type classification and medium lookup.
	side1, side2 := classifyBase(junc.Radius, m.RE, h.GoUp)

	var idx1 int
	if rayEnd < n {
		idx1 = clampIndex(rIndex(rayEnd-1), len(m.R[h.InRegion]))
	} else {
		si := n
		if h.GoUp {
			si--
		}
		idx1 = clampIndex(rIndex(si-1), len(m.R[h.InRegion]))
	}
	rho1, vp1, vs1 := m.Rho[h.InRegion][idx1], m.Vp[h.InRegion][idx1], m.Vs[h.InRegion][idx1]

	var rho2, vp2, vs2 float64
	if rayEnd < n {
		idx2 := clampIndex(rIndex(rayEnd), len(m.R[h.InRegion]))
		rawRho, rawVp, rawVs := m.Rho[h.InRegion][idx2], m.Vp[h.InRegion][idx2], m.Vs[h.InRegion][idx2]
		if nextRegion != h.InRegion {
			rho2 = rawRho / m.DRho[h.InRegion] * m.DRho[nextRegion]
			vp2 = rawVp / m.DVp[h.InRegion] * m.DVp[nextRegion]
			vs2 = rawVs / m.DVs[h.InRegion] * m.DVs[nextRegion]
		} else {
			rho2, vp2, vs2 = rawRho, rawVp, rawVs
		}
	} else {
		si := n
		if h.GoUp {
			si--
		}
		idx2 := clampIndex(rIndex(si), len(m.R[h.InRegion]))
		rho2, vp2, vs2 = m.Rho[h.InRegion][idx2], m.Vp[h.InRegion][idx2], m.Vs[h.InRegion][idx2]
	}

	if vs1 < 0.01 {
		side1 = 'L'
	}
	if side2 == 'S' && vs2 < 0.01 {
		side2 = 'L'
	}
	mode := combineMode(side1, side2)

	// Step 8: coefficients.
	polarity := coef.PSV
	if h.Comp == CompSH {
		polarity = coef.SH
	}
	c := coef.PlaneWaveCoefficients(rho1, vp1, vs1, rho2, vp2, vs2, incident, polarity, mode)
	rpp, rps, rsp, rss, tpp, tps, tsp, tss := extract(c, mode, h.Comp, turned)

	// Step 9: scattering angles and child ray parameters.
	rStart := junc.Radius

	crossesRegion := nextRegion != h.InRegion
	tsTakeoff, tsRayP, tsOK := snellChild(h.IsP, h.IsP, vp1, vs1, vp2, vs2, incident, raydHor, tiltAngle, rStart, crossesRegion)
	tdTakeoff, tdRayP, tdOK := snellChild(h.IsP, !h.IsP, vp1, vs1, vp2, vs2, incident, raydHor, tiltAngle, rStart, crossesRegion)
	rsTakeoff := mod180(-raydHor + tiltAngle + 90)
	rdX := mod360(-raydHor)
	rdTakeoff, _, rdOK := snellChild(h.IsP, !h.IsP, vp1, vs1, vp1, vs1, incident, rdX, tiltAngle, rStart, false)

	e.debugf("leg %d: junction=(%.3f,%.3f) tilt=%.3f deg inc=%.3f deg mode=%v\n"+
		"  TS: takeoff=%.3f rayP=%.3f ok=%v  TD: takeoff=%.3f rayP=%.3f ok=%v\n"+
		"  RD: takeoff=%.3f ok=%v  RS: takeoff=%.3f\n",
		i, junc.Theta, junc.Radius, tiltAngle, incident, mode,
		tsTakeoff, tsRayP, tsOK, tdTakeoff, tdRayP, tdOK,
		rdTakeoff, rdOK, rsTakeoff)

	// Step 10: outcome gating.
	enableTS, enableTD, enableRS, enableRD := e.Cfg.TS, e.Cfg.TD, e.Cfg.RS, e.Cfg.RD
	origTS, origTD, origRD := enableTS, enableTD, enableRD

	if !h.GoUp && turned {
		enableTS, enableTD, enableRD = false, false, false
	}
	if junc.Radius == m.RE {
		enableTS, enableTD = false, false
	}
	atCMB := junc.Radius == earth.CMB
	atICB := junc.Radius == earth.ICB
	if (atCMB && !h.GoUp) || (atICB && h.GoUp) {
		if h.IsP {
			enableTD = false
		} else {
			enableTS = false
		}
	}
	if (atICB && !h.GoUp && h.IsP) || (atCMB && h.GoUp && h.IsP) {
		enableRD = false
	}
	if h.Comp == CompSH {
		enableTD, enableRD = false, false
	}

	enableTS = enableTS && tsOK && !math.IsNaN(tsTakeoff)
	enableTD = enableTD && tdOK && !math.IsNaN(tdTakeoff)
	enableRD = enableRD && rdOK && !math.IsNaN(rdTakeoff)
	enableRS = enableRS && !math.IsNaN(rsTakeoff)

	// Step 11: commit.
	h.TravelTime, h.TravelDist, h.Inc = timeSec, distKm, incident
	h.RemainingLegs--

	if junc.Radius == m.RE {
		h.Surfacing++
	}
	if !e.Cfg.StopAtSurface || h.Surfacing < 2 {
		if junc.Radius == m.RE {
			e.emitSurfaceRecord(i, incident, junc.Theta, h.RemainingLegs)
		}
	}
	e.Sink.RayInfo[i] = io.Sf("%d %s %g sec. inc %g deg. amp %g. dist %g km.",
		h.Color, h.Comp.String(), h.TravelTime, h.Inc, h.Amp, h.TravelDist)

	z := forfeitedDescendants(e.Cfg.Branches, h.RemainingLegs)

	if e.Cfg.StopAtSurface && junc.Radius == m.RE {
		atomic.AddInt64(&e.estimation, -int64(e.Cfg.Branches)*z)
		return
	}
	if h.RemainingLegs <= 0 {
		return
	}

	if origTS && !enableTS {
		atomic.AddInt64(&e.estimation, -z)
	}
	if origTD && !enableTD {
		atomic.AddInt64(&e.estimation, -z)
	}
	if origRD && !enableRD {
		atomic.AddInt64(&e.estimation, -z)
	}

	childRemaining := h.RemainingLegs

	if !crossesRegion {
		tsRayP, tdRayP = h.RayP, h.RayP
	}

	if enableTS {
		e.emitChild(i, h, junc, childRemaining, h.IsP, nextRegion, tsRayP, tsTakeoff, signedAmp(tpp_or_tss(h.IsP, tpp, tss)))
	}
	if enableTD {
		e.emitChild(i, h, junc, childRemaining, !h.IsP, nextRegion, tdRayP, tdTakeoff, signedAmp(tps_or_tsp(h.IsP, tps, tsp)))
	}
	if enableRD {
		e.emitChild(i, h, junc, childRemaining, !h.IsP, h.InRegion, h.RayP, rdTakeoff, signedAmp(rps_or_rsp(h.IsP, rps, rsp)))
	}
	if enableRS {
		e.emitChild(i, h, junc, childRemaining, h.IsP, h.InRegion, h.RayP, rsTakeoff, signedAmp(rss_or_rpp(h.IsP, rss, rpp)))
	}
}

func (e *Engine) emitChild(parent int, h *Ray, junc geom.Point, remaining int, isP bool, region int, rayP, takeoff, ampFactor float64) {
	child := Ray{
		IsP:           isP,
		Comp:          inferComp(isP, h.Comp),
		GoUp:          math.Abs(takeoff) > 90, // TODO: bias away from exactly 90 deg if horizontal takeoffs ever misclassify up/down.
		GoLeft:        takeoff < 0,
		InRegion:      region,
		Pt:            junc.Theta,
		Pr:            junc.Radius,
		RayP:          rayP,
		Takeoff:       takeoff,
		Amp:           h.Amp * ampFactor,
		RemainingLegs: remaining,
		Prev:          parent,
		Color:         h.Color,
		Debug:         h.Debug,
	}
	e.addSlot(child)
}

func inferComp(isP bool, parent Comp) Comp {
	if isP {
		return CompP
	}
	if parent == CompSH {
		return CompSH
	}
	return CompSV
}

// snellChild applies Snell's law and the geographic-frame fold of spec.md
// §4.3 Step 9 for a transmitted (same or different wave type) outcome. The
// caller chooses which pair of speeds to pass as (vp2,vs2): for TS/TD this
// is the far-side medium; for RD it is side 1's own (vp1,vs1), since a
// reflected-different ray stays on side 1 but changes wave type.
func snellChild(parentIsP, childIsP bool, vp1, vs1, vp2, vs2, incident, raydHor, tiltAngle, rStart float64, crossesRegion bool) (takeoff, rayP float64, ok bool) {
	c1 := vp1
	if !parentIsP {
		c1 = vs1
	}
	c2 := vp2
	if !childIsP {
		c2 = vs2
	}
	sinOut := math.Sin(incident*math.Pi/180) * c2 / c1
	if sinOut < -1 || sinOut > 1 {
		return math.NaN(), 0, false
	}
	takeoffOut := math.Asin(sinOut)*180/math.Pi - incident

	if raydHor > 0 && raydHor <= 90 || raydHor > 180 && raydHor <= 270 {
		takeoff = mod180(raydHor - takeoffOut + tiltAngle + 90)
	} else {
		takeoff = mod180(raydHor + takeoffOut + tiltAngle + 90)
	}

	if crossesRegion {
		rayP = (math.Pi / 180) * rStart * math.Sin(math.Abs(takeoff)*math.Pi/180) / c2
	}
	return takeoff, rayP, !math.IsNaN(takeoff) && !math.IsNaN(rayP)
}

func tpp_or_tss(parentIsP bool, tpp, tss complex128) complex128 {
	if parentIsP {
		return tpp
	}
	return tss
}

func tps_or_tsp(parentIsP bool, tps, tsp complex128) complex128 {
	if parentIsP {
		return tps
	}
	return tsp
}

func rps_or_rsp(parentIsP bool, rps, rsp complex128) complex128 {
	if parentIsP {
		return rsp
	}
	return rps
}

func rss_or_rpp(parentIsP bool, rss, rpp complex128) complex128 {
	if parentIsP {
		return rpp
	}
	return rss
}

func signedAmp(c complex128) float64 {
	sign := 1.0
	if imag(c) == 0 && real(c) < 0 {
		sign = -1
	}
	return sign * cmplxAbs(c)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func clampIndex(idx, n int) int {
	if n == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func classifyBase(radius, re float64, goUp bool) (side1, side2 byte) {
	switch {
	case radius == re:
		return 'S', 'A'
	case radius == earth.CMB:
		if goUp {
			return 'L', 'S'
		}
		return 'S', 'L'
	case radius == earth.ICB:
		if goUp {
			return 'S', 'L'
		}
		return 'L', 'S'
	case radius < earth.ICB || radius > earth.CMB:
		return 'S', 'S'
	default:
		return 'L', 'L'
	}
}

func combineMode(side1, side2 byte) coef.Mode {
	switch {
	case side2 == 'A':
		return coef.SA
	case side1 == 'S' && side2 == 'S':
		return coef.SS
	case side1 == 'S' && side2 == 'L':
		return coef.SL
	case side1 == 'L' && side2 == 'S':
		return coef.LS
	default:
		return coef.LL
	}
}

// extract pulls the named reflection/transmission coefficients out of the
// 8-vector PlaneWaveCoefficients returns, per spec.md §4.3 Step 8's table.
func extract(c [8]complex128, mode coef.Mode, comp Comp, turned bool) (rpp, rps, rsp, rss, tpp, tps, tsp, tss complex128) {
	switch mode {
	case coef.SS:
		if comp == CompSH {
			rss, tss = c[0], c[1]
		} else {
			rpp, rps, rsp, rss = c[0], c[1], c[2], c[3]
			tpp, tps, tsp, tss = c[4], c[1], c[6], c[7] // T_PS reuses Coef[1], per spec.md Open Question 2.
		}
	case coef.SL:
		switch comp {
		case CompP:
			tpp = c[4]
		case CompSV:
			rps, rsp, rss, tsp = c[1], c[2], c[3], c[5]
		case CompSH:
			rss = 1
		}
	case coef.LS:
		if comp == CompP {
			rpp, tpp, tps = c[0], c[1], c[2]
		}
	case coef.LL:
		if comp == CompP {
			rpp, tpp = c[0], c[1]
		}
	case coef.SA:
		if comp == CompSH {
			rss = 1
		} else {
			rpp, rps, rsp, rss = c[0], c[1], c[2], c[3]
		}
	}
	if turned {
		rpp, rss = 1, 1
	}
	return
}

func forfeitedDescendants(branches, remainingLegs int) int64 {
	if remainingLegs <= 0 {
		return 0
	}
	if branches == 1 {
		return int64(remainingLegs)
	}
	sum, term := int64(0), int64(1)
	for k := 0; k < remainingLegs; k++ {
		sum += term
		term *= int64(branches)
	}
	return sum
}

func mod360(x float64) float64 {
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	return x
}

func mod180(x float64) float64 {
	x = math.Mod(x+180, 360)
	if x <= 0 {
		x += 360
	}
	return x - 180
}

// targetWindow finds the special depth nearest the current depth on the
// side the ray is heading, clipped to the current region's radial span
// (spec.md §4.3 Step 1).
func (e *Engine) targetWindow(depth float64, goUp bool, region int) (top, bot float64) {
	sd := e.Model.SpecialDepths
	if goUp {
		top, bot = nearestAbove(sd, depth), depth
	} else {
		top, bot = depth, nearestBelow(sd, depth)
	}
	rb := e.Model.RegionBounds[region]
	regionTop := e.Model.RE - rb.RadiusMax
	regionBot := e.Model.RE - rb.RadiusMin
	if top < regionTop {
		top = regionTop
	}
	if bot > regionBot {
		bot = regionBot
	}
	return
}

func nearestAbove(sd []float64, depth float64) float64 {
	best := sd[0]
	for _, d := range sd {
		if d < depth-depthEps {
			best = d
		}
	}
	return best
}

func nearestBelow(sd []float64, depth float64) float64 {
	best := sd[len(sd)-1]
	for i := len(sd) - 1; i >= 0; i-- {
		if sd[i] > depth+depthEps {
			best = sd[i]
		}
	}
	return best
}

// regionContaining returns the first non-reference region containing p
// (region 0 if none), using the spatial index to shortlist candidates
// before the exact PointInPolygon test (spec.md §4.3 Step 4).
func (e *Engine) regionContaining(p geom.Point) int {
	for _, k := range e.Model.Index.Candidates(p) {
		if geom.PointInPolygon(e.Model.Regions[k], p, 1, e.Model.RegionBounds[k]) {
			return k
		}
	}
	return 0
}

func (e *Engine) debugf(format string, args ...interface{}) {
	if e.Cfg.DebugInfo {
		io.Pf(format, args...)
	}
}
