package earth

// layer is one PREM polynomial shell, radii in km, coefficients evaluated
// against x = r/RE as in Dziewonski & Anderson (1981).
type layer struct {
	rMin, rMax      float64
	rho, vp, vs     [4]float64 // c0 + c1 x + c2 x^2 + c3 x^3
}

// premLayers is the classic PREM table (no ocean/crust anisotropy, no
// attenuation — this is a reference velocity model, not a full PREM
// reproduction of Q/anisotropic parameters, which are out of this
// system's scope per spec.md §1 Non-goals: no anisotropy).
var premLayers = []layer{
	{0, 1221.5,
		[4]float64{13.0885, 0, -8.8381, 0},
		[4]float64{11.2622, 0, -6.3640, 0},
		[4]float64{3.6678, 0, -4.4475, 0}},
	{1221.5, 3480.0,
		[4]float64{12.5815, -1.2638, -3.6426, -5.5281},
		[4]float64{11.0487, -4.0362, 4.8023, -13.5732},
		[4]float64{0, 0, 0, 0}},
	{3480.0, 3630.0,
		[4]float64{7.9565, -6.4761, 5.5283, -3.0807},
		[4]float64{15.3891, -5.3181, 5.5242, -2.5514},
		[4]float64{6.9254, 1.4672, -2.0834, 0.9783}},
	{3630.0, 5600.0,
		[4]float64{7.9565, -6.4761, 5.5283, -3.0807},
		[4]float64{24.9520, -40.4673, 51.4832, -26.6419},
		[4]float64{11.1671, -13.7818, 17.4575, -9.2777}},
	{5600.0, 5701.0,
		[4]float64{7.9565, -6.4761, 5.5283, -3.0807},
		[4]float64{29.2766, -23.6027, 5.5242, -2.5514},
		[4]float64{22.3459, -17.2473, -2.0834, 0.9783}},
	{5701.0, 5771.0,
		[4]float64{5.3197, -1.4836, 0, 0},
		[4]float64{19.0957, -9.8672, 0, 0},
		[4]float64{9.9839, -4.9324, 0, 0}},
	{5771.0, 5971.0,
		[4]float64{11.2494, -8.0298, 0, 0},
		[4]float64{39.7027, -32.6166, 0, 0},
		[4]float64{22.3512, -18.5856, 0, 0}},
	{5971.0, 6151.0,
		[4]float64{7.1089, -3.8045, 0, 0},
		[4]float64{20.3926, -12.2569, 0, 0},
		[4]float64{8.9496, -4.4597, 0, 0}},
	{6151.0, 6346.6,
		[4]float64{2.6910, 0.6924, 0, 0},
		[4]float64{4.1875, 3.9382, 0, 0},
		[4]float64{2.1519, 2.3481, 0, 0}},
	{6346.6, 6356.0,
		[4]float64{2.9000, 0, 0, 0},
		[4]float64{6.8000, 0, 0, 0},
		[4]float64{3.9000, 0, 0, 0}},
	{6356.0, 6368.0,
		[4]float64{2.6000, 0, 0, 0},
		[4]float64{5.8000, 0, 0, 0},
		[4]float64{3.2000, 0, 0, 0}},
	{6368.0, RE,
		[4]float64{1.0200, 0, 0, 0},
		[4]float64{1.4500, 0, 0, 0},
		[4]float64{0, 0, 0, 0}},
}

func poly(c [4]float64, x float64) float64 {
	return c[0] + x*(c[1]+x*(c[2]+x*c[3]))
}

// PREM returns (vp, vs, rho) in (km/s, km/s, g/cm^3) at the given depth,
// km. It is monotone-defined: every depth in [0,RE] falls in exactly one
// tabulated shell (shell boundaries are shared, so depths exactly on a
// boundary resolve to the shallower shell, matching R[0]'s convention of
// walking layers from the surface down).
func PREM(depth float64) (vp, vs, rho float64) {
	r := RE - depth
	if r < 0 {
		r = 0
	}
	if r > RE {
		r = RE
	}
	x := r / RE
	for i := len(premLayers) - 1; i >= 0; i-- {
		l := premLayers[i]
		if r >= l.rMin && r <= l.rMax {
			return poly(l.vp, x), poly(l.vs, x), poly(l.rho, x)
		}
	}
	l := premLayers[0]
	return poly(l.vp, x), poly(l.vs, x), poly(l.rho, x)
}
