package geom

import "math"

// SegmentJunction finds the intersection point of segments p1-q1 and
// p2-q2, if any, treating (θ,r) as Cartesian coordinates (consistent with
// the tilt/incidence angle formulas in the Leg Propagator, which also use
// raw θ/r differences). Returns (false, Point{}) for parallel or
// non-intersecting segments.
func SegmentJunction(p1, q1, p2, q2 Point) (bool, Point) {
	r := Point{q1.Theta - p1.Theta, q1.Radius - p1.Radius}
	s := Point{q2.Theta - p2.Theta, q2.Radius - p2.Radius}

	denom := cross(r, s)
	if math.Abs(denom) < 1e-15 {
		return false, Point{}
	}

	qp := Point{p2.Theta - p1.Theta, p2.Radius - p1.Radius}
	t := cross(qp, s) / denom
	u := cross(qp, r) / denom

	const eps = 1e-9
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return false, Point{}
	}
	return true, Point{p1.Theta + t*r.Theta, p1.Radius + t*r.Radius}
}

func cross(a, b Point) float64 {
	return a.Theta*b.Radius - a.Radius*b.Theta
}

// LocDist returns the great-circle chord length, km, between two points
// given as (θ, φ, r) spherical coordinates: θ is the polar angle (deg),
// φ the azimuth (deg), r the radius (km). The ray tracer is a 2D (polar)
// system, so callers always pass the same φ for both points (they lie in
// one meridian plane); LocDist stays general so it doubles as the 3D
// chord-distance collaborator the original system names it as.
func LocDist(theta1, phi1, r1, theta2, phi2, r2 float64) float64 {
	d2r := math.Pi / 180
	st1, ct1 := math.Sincos(theta1 * d2r)
	st2, ct2 := math.Sincos(theta2 * d2r)
	cosAng := ct1*ct2 + st1*st2*math.Cos((phi1-phi2)*d2r)
	d2 := r1*r1 + r2*r2 - 2*r1*r2*cosAng
	if d2 < 0 {
		d2 = 0
	}
	return math.Sqrt(d2)
}
