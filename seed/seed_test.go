package seed

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/shuleyu/RayTracing/config"
	"github.com/shuleyu/RayTracing/model"
	"github.com/shuleyu/RayTracing/rays"
)

func baseConfig() *config.Config {
	cfg := &config.Config{
		Grid:          []config.GridSpec{{Depth1: 0, Depth2: 2889, Inc: 50}},
		RectifyLimit:  50,
		NThread:       1,
		Branches:      4,
		PotentialSize: 8,
	}
	cfg2 := *cfg
	return &cfg2
}

func TestSeedRegion0(tst *testing.T) {

	chk.PrintTitle("SeedRegion0. a ray with no enclosing polygon seeds into region 0")

	cfg := baseConfig()
	cfg.InitRays = []config.InitRay{
		{Steps: 3, Comp: 0, Color: 1, Theta: 0, Depth: 0, Takeoff: 30},
	}
	m := model.Build(cfg)
	e := rays.NewEngine(m, cfg)

	Seed(e, m, cfg)

	if e.Heads[0].InRegion != 0 {
		tst.Errorf("expected seed ray to fall back to region 0, got %d", e.Heads[0].InRegion)
	}
	if e.Heads[0].Prev != -1 {
		tst.Errorf("seed ray must have Prev==-1, got %d", e.Heads[0].Prev)
	}
	if e.Heads[0].RayP <= 0 {
		tst.Errorf("expected a positive ray parameter, got %v", e.Heads[0].RayP)
	}
}

func TestSeedInsidePolygon(tst *testing.T) {

	chk.PrintTitle("SeedInsidePolygon. a ray inside a polygon is assigned that region")

	cfg := baseConfig()
	cfg.Polygons = []config.Polygon{
		{Theta: []float64{-5, 5, 5, -5}, Depth: []float64{100, 100, 300, 300}},
	}
	cfg.RegionProps = []config.RegionProperties{{DVp: 5, DVs: 5, DRho: 0}}
	cfg.InitRays = []config.InitRay{
		{Steps: 3, Comp: 0, Color: 1, Theta: 0, Depth: 200, Takeoff: 10},
	}
	m := model.Build(cfg)
	e := rays.NewEngine(m, cfg)

	Seed(e, m, cfg)

	if e.Heads[0].InRegion != 1 {
		tst.Errorf("expected seed ray inside the polygon to land in region 1, got %d", e.Heads[0].InRegion)
	}

	v := m.VelocityAt(1, 200, true)
	want := math.Pi / 180 * (m.RE - 200) * math.Sin(10.0/180*math.Pi) / v
	chk.Scalar(tst, "rayP", 1e-9, e.Heads[0].RayP, want)
}

func TestSeedGoUpGoLeft(tst *testing.T) {

	chk.PrintTitle("SeedGoUpGoLeft. takeoff sign/magnitude set GoLeft/GoUp")

	cfg := baseConfig()
	cfg.InitRays = []config.InitRay{
		{Steps: 1, Comp: 1, Color: 0, Theta: 0, Depth: 0, Takeoff: -95},
		{Steps: 1, Comp: 2, Color: 0, Theta: 0, Depth: 0, Takeoff: 45},
	}
	m := model.Build(cfg)
	e := rays.NewEngine(m, cfg)

	Seed(e, m, cfg)

	if !e.Heads[0].GoUp || !e.Heads[0].GoLeft {
		tst.Errorf("takeoff -95 should set both GoUp and GoLeft")
	}
	if e.Heads[0].Comp != rays.CompSV {
		tst.Errorf("comp 1 should map to CompSV")
	}
	if e.Heads[1].GoUp || e.Heads[1].GoLeft {
		tst.Errorf("takeoff 45 should set neither GoUp nor GoLeft")
	}
	if e.Heads[1].Comp != rays.CompSH {
		tst.Errorf("comp 2 should map to CompSH")
	}
}
