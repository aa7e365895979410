package earth

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_prem01(tst *testing.T) {

	chk.PrintTitle("prem01. surface and top-of-outer-core values are in the right ballpark")

	vp, vs, rho := PREM(0)
	chk.AnaNum(tst, "vp@surface", 0.2, vp, 1.45, false)
	chk.AnaNum(tst, "vs@surface", 1e-12, vs, 0, false)
	chk.AnaNum(tst, "rho@surface", 0.1, rho, 1.02, false)

	// 1 km below the CMB: a depth exactly on the CMB resolves to the
	// mantle shell above it.
	vp, vs, _ = PREM(RE - CMB + 1)
	if vs > 0.01 {
		tst.Errorf("outer core must be fluid (vs~0), got vs=%v", vs)
	}
	if vp < 7 || vp > 9 {
		tst.Errorf("vp just below the CMB out of expected range: %v", vp)
	}
}

func Test_prem02(tst *testing.T) {

	chk.PrintTitle("prem02. scaling by a deviation record")

	devs := []Deviation{{DepthTop: 0, DepthBot: 100, DVp: 5, DVs: -2, DRho: 0}}
	dvp, dvs, drho := Scale(50, devs)
	chk.AnaNum(tst, "dvp", 1e-12, dvp, 1.05, false)
	chk.AnaNum(tst, "dvs", 1e-12, dvs, 0.98, false)
	chk.AnaNum(tst, "drho", 1e-12, drho, 1.0, false)

	dvp, dvs, drho = Scale(500, devs)
	chk.AnaNum(tst, "dvp-outside", 1e-12, dvp, 1.0, false)
	chk.AnaNum(tst, "dvs-outside", 1e-12, dvs, 1.0, false)
	chk.AnaNum(tst, "drho-outside", 1e-12, drho, 1.0, false)
}
