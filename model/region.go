package model

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/shuleyu/RayTracing/config"
	"github.com/shuleyu/RayTracing/earth"
	"github.com/shuleyu/RayTracing/geom"
)

// buildRegions rectifies each input polygon into a dense polyline aligned
// with R[0], derives its truncated layer slice, and computes per-layer
// Vp/Vs/Rho (spec.md §4.1 "Polygon rectification" / "Per-region layer
// slice").
func (m *Model) buildRegions(cfg *config.Config) {

	r0 := m.R[0]

	// Region 0 (1D reference) placeholders.
	m.Regions = [][]geom.Point{nil}
	m.RegionBounds = []geom.BBox{{
		ThetaMin: -math.MaxFloat64, ThetaMax: math.MaxFloat64,
		RadiusMin: -math.MaxFloat64, RadiusMax: math.MaxFloat64,
	}}
	m.DVp, m.DVs, m.DRho = []float64{1}, []float64{1}, []float64{1}

	dev := devs(cfg)

	for pi, poly := range cfg.Polygons {
		n := len(poly.Theta)
		if n < 3 || len(poly.Depth) != n {
			chk.Panic("region %d: malformed polygon (need >=3 vertices, matching Theta/Depth lengths)", pi+1)
		}

		xmin, xmax := math.MaxFloat64, -math.MaxFloat64
		ymin, ymax := math.MaxFloat64, -math.MaxFloat64
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			t1, t2 := poly.Theta[j], poly.Theta[k]
			r1, r2 := m.RE-poly.Depth[j], m.RE-poly.Depth[k]
			xmin, xmax = utl.Min(xmin, t1), utl.Max(xmax, t2)
			ymin, ymax = utl.Min(ymin, r1), utl.Max(ymax, r2)
		}

		iYmin := closestIndex(r0, ymin)
		iYmax := closestIndex(r0, ymax)
		if iYmax > iYmin {
			chk.Panic("region %d: inverted radial span after snapping to the reference grid", pi+1)
		}
		snappedYmin, snappedYmax := r0[iYmin], r0[iYmax]

		var line []geom.Point
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			t1, t2 := poly.Theta[j], poly.Theta[k]
			r1, r2 := m.RE-poly.Depth[j], m.RE-poly.Depth[k]

			if r1 == ymin {
				r1 = snappedYmin
			}
			if r1 == ymax {
				r1 = snappedYmax
			}
			if r2 == ymin {
				r2 = snappedYmin
			}
			if r2 == ymax {
				r2 = snappedYmax
			}

			tDist, rDist := t2-t1, r2-r1
			npts := 2
			dr, dt := rDist, tDist
			for geom.LocDist(t1, 0, r1, t1+dt, 0, r1+dr) > cfg.RectifyLimit {
				npts *= 2
				dr = rDist / float64(npts-1)
				dt = tDist / float64(npts-1)
			}
			for p := 0; p < npts-1; p++ {
				line = append(line, geom.Point{Theta: t1 + float64(p)*dt, Radius: r1 + float64(p)*dr})
			}
		}

		m.Regions = append(m.Regions, line)
		m.RegionBounds = append(m.RegionBounds, geom.BBox{
			ThetaMin: xmin, ThetaMax: xmax,
			RadiusMin: snappedYmin, RadiusMax: snappedYmax,
		})

		var props config.RegionProperties
		if pi < len(cfg.RegionProps) {
			props = cfg.RegionProps[pi]
		}
		m.DVp = append(m.DVp, 1+props.DVp/100)
		m.DVs = append(m.DVs, 1+props.DVs/100)
		m.DRho = append(m.DRho, 1+props.DRho/100)

		rk := append([]float64{}, r0[iYmax:iYmin+1]...)
		m.R = append(m.R, rk)
	}

	m.deriveVelocities(dev)
}

func (m *Model) deriveVelocities(dev []earth.Deviation) {
	m.Vp = make([][]float64, len(m.R))
	m.Vs = make([][]float64, len(m.R))
	m.Rho = make([][]float64, len(m.R))
	for i, layer := range m.R {
		m.Vp[i] = make([]float64, len(layer))
		m.Vs[i] = make([]float64, len(layer))
		m.Rho[i] = make([]float64, len(layer))
		for j, r := range layer {
			vp, vs, rho := earth.PREM(m.RE - r)
			dvp, dvs, drho := earth.Scale(m.RE-r, dev)
			m.Vp[i][j] = m.DVp[i] * dvp * vp
			m.Vs[i][j] = m.DVs[i] * dvs * vs
			m.Rho[i][j] = m.DRho[i] * drho * rho
		}
	}
}
