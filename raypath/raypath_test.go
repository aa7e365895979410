package raypath

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

const re = 6371.0

func straightProfile(n int, v float64) (r, vv []float64) {
	r = make([]float64, n)
	vv = make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = re - float64(i)
		vv[i] = v
	}
	return
}

func Test_raypath01(tst *testing.T) {
	chk.PrintTitle("raypath01. vertical ray (p=0) travels straight down, no turning")
	r, v := straightProfile(101, 8.0)
	t, d, deg, lastIdx, turned := RayPath(re, r, v, 0, 0, 100)
	if turned {
		tst.Errorf("a p=0 ray never turns")
	}
	chk.AnaNum(tst, "dist", 1e-9, d, 100, false)
	chk.AnaNum(tst, "time", 1e-6, t, 100.0/8.0, false)
	if lastIdx != 100 {
		tst.Errorf("expected lastIdx=100, got %d", lastIdx)
	}
	if deg[0] != 0 {
		tst.Errorf("degrees must start at 0")
	}
	for i := 1; i < len(deg); i++ {
		if deg[i] < deg[i-1] {
			tst.Errorf("degrees must be non-decreasing")
		}
	}
}

func Test_raypath02(tst *testing.T) {
	chk.PrintTitle("raypath02. trivial window returns a single sample")
	r, v := straightProfile(101, 8.0)
	_, _, deg, _, turned := RayPath(re, r, v, 0, 0, 0)
	if len(deg) != 1 {
		tst.Errorf("expected a single trivial sample, got %d", len(deg))
	}
	if turned {
		tst.Errorf("trivial leg cannot turn")
	}
}

func Test_raypath03(tst *testing.T) {
	chk.PrintTitle("raypath03. a large ray parameter turns before reaching the window bottom")
	r, v := straightProfile(101, 8.0)
	etaRad := re / 8.0 // per-radian slowness of this flat profile
	p := etaRad * 0.999999 * (3.14159265358979 / 180.0) // convert to sec/deg, just under critical
	_, _, _, _, turned := RayPath(re, r, v, p, 0, 100)
	if !turned {
		tst.Errorf("expected the ray to turn for a near-critical ray parameter")
	}
}
