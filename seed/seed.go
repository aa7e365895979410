// Package seed implements the Ray Seeder (spec.md §4.2): it locates each
// input ray's enclosing region and turns its takeoff angle into the ray
// parameter the Leg Propagator actually integrates on.
package seed

import (
	"math"

	"github.com/shuleyu/RayTracing/config"
	"github.com/shuleyu/RayTracing/geom"
	"github.com/shuleyu/RayTracing/model"
	"github.com/shuleyu/RayTracing/rays"
)

// Seed places every cfg.InitRays entry into e via e.AddSeed, after locating
// its enclosing region and deriving its ray parameter.
func Seed(e *rays.Engine, m *model.Model, cfg *config.Config) {
	for _, ir := range cfg.InitRays {
		region := locate(m, ir.Theta, ir.Depth)

		isP := ir.Comp == 0
		v := m.VelocityAt(region, ir.Depth, isP)
		rayP := math.Pi / 180 * (m.RE - ir.Depth) * math.Sin(math.Abs(ir.Takeoff)/180*math.Pi) / v

		e.AddSeed(rays.Ray{
			IsP:           isP,
			Comp:          compOf(ir.Comp),
			GoUp:          math.Abs(ir.Takeoff) >= 90,
			GoLeft:        ir.Takeoff < 0,
			InRegion:      region,
			Pt:            ir.Theta,
			Pr:            m.RE - ir.Depth,
			RayP:          rayP,
			Takeoff:       ir.Takeoff,
			Amp:           1,
			RemainingLegs: ir.Steps,
			Color:         ir.Color,
			Debug:         cfg.DebugInfo,
		})
	}
}

// locate returns the id of the first polygon (in input order) containing
// (theta, RE-depth), or 0 (the 1D reference) if none does.
func locate(m *model.Model, theta, depth float64) int {
	p := geom.Point{Theta: theta, Radius: m.RE - depth}
	for k := 1; k < len(m.Regions); k++ {
		if geom.PointInPolygon(m.Regions[k], p, 1, m.RegionBounds[k]) {
			return k
		}
	}
	return 0
}

func compOf(c int) rays.Comp {
	switch c {
	case 1:
		return rays.CompSV
	case 2:
		return rays.CompSH
	default:
		return rays.CompP
	}
}
