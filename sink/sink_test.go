package sink

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNewSizesBuffers(tst *testing.T) {

	chk.PrintTitle("New. buffer allocation")

	s := New(5)
	if len(s.RayInfo) != 5 || len(s.RaysTheta) != 5 || len(s.RaysRadius) != 5 ||
		len(s.RaysN) != 5 || len(s.ReachSurfaces) != 5 {
		tst.Errorf("New(5) did not allocate all five buffers at length 5")
	}

	// every path buffer starts empty; a slot that never surfaces stays "".
	for i := 0; i < 5; i++ {
		if s.RaysN[i] != 0 || s.RaysTheta[i] != nil || s.ReachSurfaces[i] != "" {
			tst.Errorf("slot %d not zero-valued on allocation", i)
		}
	}
}
