package rays

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
)

// emitSurfaceRecord walks the prev chain from the seed ray down to slot i,
// accumulating travel time and building the phase-letter and ray-id
// chains, then writes the surface-arrival record for slot i (spec.md
// §4.3 Step 11; the ray-id chain is the feature original_source carries
// that spec.md's distillation only gestures at, see SPEC_FULL.md §4).
func (e *Engine) emitSurfaceRecord(i int, incident, theta float64, remainingLegs int) {
	var chain []int
	for idx := i; idx != -1; idx = e.Heads[idx].Prev {
		chain = append(chain, idx)
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}

	var totalTime float64
	var phase []byte
	ids := make([]string, 0, len(chain))
	for _, k := range chain {
		h := &e.Heads[k]
		totalTime += h.TravelTime
		letter := byte('P')
		if !h.IsP {
			letter = 'S'
		}
		if h.GoUp {
			letter += 'p' - 'P'
		}
		phase = append(phase, letter)
		ids = append(ids, strconv.Itoa(k+1))
	}

	seed := &e.Heads[chain[0]]
	tail := &e.Heads[i]

	e.Sink.ReachSurfaces[i] = io.Sf(
		"takeoff %g deg, rayP %g sec/deg, inc %g deg, theta %g deg, time %g sec, amp %g, remainingLegs %d, phase %s, ids %s",
		seed.Takeoff, seed.RayP, incident, theta, totalTime, tail.Amp, remainingLegs,
		strings.Join(phaseStrings(phase), "->"), strings.Join(ids, "->"),
	)
}

func phaseStrings(phase []byte) []string {
	out := make([]string, len(phase))
	for i, b := range phase {
		out[i] = string(b)
	}
	return out
}
