package rays_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/shuleyu/RayTracing/config"
	"github.com/shuleyu/RayTracing/model"
	"github.com/shuleyu/RayTracing/rays"
	"github.com/shuleyu/RayTracing/seed"
)

func vanillaCfg() *config.Config {
	return &config.Config{
		Grid:          []config.GridSpec{{Depth1: 0, Depth2: 6371, Inc: 200}},
		RectifyLimit:  100,
		TS:            true,
		TD:            true,
		RS:            true,
		RD:            true,
		NThread:       2,
		Branches:      4,
		PotentialSize: 64,
	}
}

func Test_scenario01(tst *testing.T) {

	chk.PrintTitle("scenario01. a trivial degenerate leg terminates with no children")

	cfg := vanillaCfg()
	cfg.InitRays = []config.InitRay{
		{Steps: 1, Comp: 0, Color: 1, Theta: 0, Depth: 0, Takeoff: 180},
	}

	m := model.Build(cfg)
	e := rays.NewEngine(m, cfg)
	seed.Seed(e, m, cfg)
	e.Run()

	if e.Heads[0].RemainingLegs != 0 {
		tst.Errorf("a one-step ray must end with RemainingLegs==0, got %d", e.Heads[0].RemainingLegs)
	}
	if e.Sink.RayInfo[0] == "" {
		tst.Errorf("RayInfo[0] must be filled after Run")
	}
}

func Test_scenario02(tst *testing.T) {

	chk.PrintTitle("scenario02. reflection/transmission tree never exceeds potentialSize, and remainingLegs follows its parent")

	cfg := vanillaCfg()
	cfg.InitRays = []config.InitRay{
		{Steps: 3, Comp: 0, Color: 1, Theta: 0, Depth: 0, Takeoff: 0},
	}

	m := model.Build(cfg)
	e := rays.NewEngine(m, cfg)
	seed.Seed(e, m, cfg)
	e.Run()

	n := 0
	for n < len(e.Heads) && e.Sink.RayInfo[n] != "" {
		n++
	}
	if n == 0 {
		tst.Fatalf("no rays were ever processed")
	}

	for i := 1; i < n; i++ {
		h := e.Heads[i]
		if h.Prev < 0 {
			continue
		}
		parent := e.Heads[h.Prev]
		if h.RemainingLegs != parent.RemainingLegs-1 {
			tst.Errorf("ray %d: remainingLegs=%d, expected parent(%d)'s remainingLegs-1=%d",
				i, h.RemainingLegs, h.Prev, parent.RemainingLegs-1)
		}
	}
}

func Test_scenario03(tst *testing.T) {

	chk.PrintTitle("scenario03. with StopAtSurface set, a ray reflected back up from the CMB still reports its surface arrival")

	cfg := vanillaCfg()
	cfg.StopAtSurface = true
	cfg.InitRays = []config.InitRay{
		{Steps: 4, Comp: 0, Color: 1, Theta: 0, Depth: 0, Takeoff: 0},
	}

	m := model.Build(cfg)
	e := rays.NewEngine(m, cfg)
	seed.Seed(e, m, cfg)
	e.Run()

	found := false
	for _, s := range e.Sink.ReachSurfaces {
		if s != "" {
			found = true
			break
		}
	}
	if !found {
		tst.Errorf("a ray bouncing off the CMB must eventually report a surface arrival record somewhere in its descendants")
	}
}
