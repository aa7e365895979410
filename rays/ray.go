// Package rays implements the unit of work (the Ray head), the Leg
// Propagator kernel, and the bounded-concurrency Scheduler that drives it
// (the core of the system: special-depth window selection, 1D ray
// shooting, region-crossing detection, interface geometry, Zoeppritz
// coefficient extraction, and reflection/transmission tree expansion).
package rays

// Comp identifies a ray's wave component.
type Comp int

const (
	CompP Comp = iota
	CompSV
	CompSH
)

func (c Comp) String() string {
	switch c {
	case CompP:
		return "P"
	case CompSV:
		return "SV"
	case CompSH:
		return "SH"
	}
	return "?"
}

// Ray is one ray head: the unit of work scheduled by the Engine. Nothing
// mutates a Ray once its owning worker has committed it and emitted its
// children.
type Ray struct {
	IsP      bool
	Comp     Comp
	GoUp     bool
	GoLeft   bool
	InRegion int

	Pt, Pr float64 // current (theta, radius)

	RayP    float64 // sec/deg
	Takeoff float64 // deg, at the node this ray was born at

	Amp float64

	TravelTime, TravelDist float64 // of the leg this head just traced
	Inc                    float64 // incidence angle at the terminating interface

	RemainingLegs int
	Prev          int // index of parent, or -1 for a seed ray

	Color     int
	Debug     bool
	Surfacing int
}
