// Package config holds the input data structures of spec.md §6 and loads
// them from a JSON run file, following gofem/inp's `.sim`-file convention.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// InitRay is one seed ray specification.
type InitRay struct {
	Steps   int     `json:"steps"`   // max number of legs
	Comp    int     `json:"comp"`    // 0=P, 1=SV, 2=SH
	Color   int     `json:"color"`   // display colour tag, opaque to the engine
	Theta   float64 `json:"theta"`   // deg
	Depth   float64 `json:"depth"`   // km
	Takeoff float64 `json:"takeoff"` // deg, (-180,180]
}

// GridSpec is one radial grid specification, refined between two depths.
type GridSpec struct {
	Depth1 float64 `json:"depth1"`
	Depth2 float64 `json:"depth2"`
	Inc    float64 `json:"inc"`
}

// Deviation perturbs the 1D reference model within [DepthTop,DepthBot].
type Deviation struct {
	DepthTop float64 `json:"depthTop"`
	DepthBot float64 `json:"depthBot"`
	DVp      float64 `json:"dVp"`  // percent
	DVs      float64 `json:"dVs"`  // percent
	DRho     float64 `json:"dRho"` // percent
}

// RegionProperties are the scalar perturbations of one polygonal region.
type RegionProperties struct {
	DVp  float64 `json:"dVp"`
	DVs  float64 `json:"dVs"`
	DRho float64 `json:"dRho"`
}

// Polygon is one region's boundary, vertices in parallel Theta/Depth
// arrays (first and last vertex not repeated).
type Polygon struct {
	Theta []float64 `json:"theta"`
	Depth []float64 `json:"depth"`
}

// Config is the full set of inputs named in spec.md §6.
type Config struct {
	InitRays []InitRay `json:"initRays"`

	Grid          []GridSpec         `json:"grid"`
	SpecialDepths []float64          `json:"specialDepths"`
	Deviations    []Deviation        `json:"deviations"`
	RegionProps   []RegionProperties `json:"regionProperties"`
	Polygons      []Polygon          `json:"regionPolygons"`

	RectifyLimit float64 `json:"rectifyLimit"` // km

	TS bool `json:"ts"`
	TD bool `json:"td"`
	RS bool `json:"rs"`
	RD bool `json:"rd"`

	NThread       int  `json:"nThread"`
	Branches      int  `json:"branches"`
	PotentialSize int  `json:"potentialSize"`
	StopAtSurface bool `json:"stopAtSurface"`
	DebugInfo     bool `json:"debugInfo"`
}

// Load reads and parses a JSON run file, panicking (via gosl/chk) on any
// I/O or parse error, matching gofem/inp.ReadSim's fail-fast convention.
func Load(path string) *Config {
	buf, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("cannot read config file %q:\n%v", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(buf, &cfg); err != nil {
		chk.Panic("cannot parse config file %q:\n%v", path, err)
	}
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	if c.NThread == 0 {
		c.NThread = 1
	}
	if c.Branches == 0 {
		c.Branches = 4
	}
}
