package coef

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sh01(tst *testing.T) {
	chk.PrintTitle("sh01. SH reflection/transmission energy bookkeeping at normal incidence")
	c := PlaneWaveCoefficients(3.0, 8.0, 4.5, 3.3, 8.2, 4.7, 0, SH, SS)
	r, t := c[0], c[1]
	// normal-incidence impedance formulas, real-valued.
	z1, z2 := 3.0*4.5, 3.3*4.7
	wantR := (z1 - z2) / (z1 + z2)
	wantT := 2 * z1 / (z1 + z2)
	chk.AnaNum(tst, "R_SS", 1e-9, real(r), wantR, false)
	chk.AnaNum(tst, "T_SS", 1e-9, real(t), wantT, false)
}

func Test_sh02(tst *testing.T) {
	chk.PrintTitle("sh02. SH against a free surface fully reflects")
	c := PlaneWaveCoefficients(3.0, 8.0, 4.5, 0, 0, 0, 30, SH, SA)
	if cmplx.Abs(c[0]-1) > 1e-12 {
		tst.Errorf("expected total reflection at the free surface, got %v", c[0])
	}
}

func Test_solidsolid01(tst *testing.T) {
	chk.PrintTitle("solidsolid01. mode-converted terms vanish at normal incidence")
	c := PlaneWaveCoefficients(3.0, 8.0, 4.5, 3.3, 8.2, 4.7, 0, PSV, SS)
	for _, idx := range []int{1, 2, 5, 6} { // R_PS,R_SP,T_PS,T_SP
		if cmplx.Abs(c[idx]) > 1e-6 {
			tst.Errorf("expected coefficient[%d] ~ 0 at normal incidence, got %v", idx, c[idx])
		}
	}
}

func Test_solidsolid02(tst *testing.T) {
	chk.PrintTitle("solidsolid02. identical media on both sides gives no reflection")
	c := PlaneWaveCoefficients(3.0, 8.0, 4.5, 3.0, 8.0, 4.5, 20, PSV, SS)
	if cmplx.Abs(c[0]) > 1e-6 {
		tst.Errorf("expected R_PP ~ 0 for a null interface, got %v", c[0])
	}
}

func Test_liquid01(tst *testing.T) {
	chk.PrintTitle("liquid01. solid-liquid interface carries no shear transmission")
	c := PlaneWaveCoefficients(3.0, 8.0, 4.5, 10.0, 8.0, 0, 10, PSV, SL)
	if c[5] != 0 {
		tst.Errorf("T_SP must be zero across a solid-liquid interface, got %v", c[5])
	}
}
