// Package sink is the Result Sink (spec.md §4.5): plain output buffers,
// one slot per ray head, filled in place by the Leg Propagator and owned
// by the caller.
package sink

// Sink holds the three per-slot output buffers. All slices are
// pre-allocated to potentialSize and written exactly once per slot, by
// that slot's own worker (§5 "Shared state": unique-writer per index).
type Sink struct {
	RayInfo []string

	RaysTheta  [][]float64
	RaysRadius [][]float64
	RaysN      []int

	ReachSurfaces []string
}

// New allocates a Sink sized for n ray slots.
func New(n int) *Sink {
	return &Sink{
		RayInfo:       make([]string, n),
		RaysTheta:     make([][]float64, n),
		RaysRadius:    make([][]float64, n),
		RaysN:         make([]int, n),
		ReachSurfaces: make([]string, n),
	}
}
