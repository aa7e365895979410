// Package viz renders rectified regions and ray paths with gosl/plt, the
// same plotting collaborator the teacher's model packages use for their
// own diagnostic plots.
package viz

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/shuleyu/RayTracing/model"
	"github.com/shuleyu/RayTracing/rays"
)

// Render draws every rectified region polygon and every traced ray path
// into a single PNG under dir/rays.png.
func Render(dir string, m *model.Model, e *rays.Engine) {

	plt.SetForEps(1.2, 400)

	for k := 1; k < len(m.Regions); k++ {
		theta := make([]float64, len(m.Regions[k])+1)
		radius := make([]float64, len(m.Regions[k])+1)
		for j, p := range m.Regions[k] {
			theta[j], radius[j] = p.Theta, p.Radius
		}
		theta[len(m.Regions[k])], radius[len(m.Regions[k])] = theta[0], radius[0]
		plt.Plot(theta, radius, io.Sf("'k-', lw=1, clip_on=0, label='region %d'", k))
	}

	for i := range e.Heads {
		theta := e.Sink.RaysTheta[i]
		radius := e.Sink.RaysRadius[i]
		if len(theta) < 2 {
			continue
		}
		plt.Plot(theta, radius, "'b-', lw=0.5, clip_on=0")
	}

	plt.Equal()
	plt.AxisOff()
	plt.Gll("$\\theta$", "$r$", "")
	plt.SaveD(dir, "rays.png")
}
