// Command raytrace runs a seismic ray-tracing job from a JSON run file,
// wiring the Model Builder, Ray Seeder, Scheduler/Leg Propagator, and
// Result Sink end to end (spec.md §3 dataflow).
package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/shuleyu/RayTracing/config"
	"github.com/shuleyu/RayTracing/internal/viz"
	"github.com/shuleyu/RayTracing/model"
	"github.com/shuleyu/RayTracing/rays"
	"github.com/shuleyu/RayTracing/seed"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nRayTracing -- seismic ray-tracing engine\n\n")

	plot := flag.Bool("plot", false, "render regions and ray paths after the run")
	outDir := flag.String("out", "/tmp/raytracing", "directory to write results into")
	flag.Parse()

	if len(flag.Args()) == 0 {
		chk.Panic("Please, provide a run file. Ex.: raytrace run.json")
	}
	fnamepath := flag.Arg(0)

	defer utl.DoProf(false)()

	cfg := config.Load(fnamepath)

	m := model.Build(cfg)
	e := rays.NewEngine(m, cfg)
	seed.Seed(e, m, cfg)
	e.Run()

	writeResults(*outDir, e)

	if *plot {
		viz.Render(*outDir, m, e)
	}

	io.Pf("\ndone: %d rays traced, %d reached the surface.\n", len(e.Heads), countSurfacing(e))
}

func writeResults(dir string, e *rays.Engine) {
	var rayInfo, surfaces strings.Builder
	for i, s := range e.Sink.RayInfo {
		rayInfo.WriteString(strconv.Itoa(i + 1))
		rayInfo.WriteString(" ")
		rayInfo.WriteString(s)
		rayInfo.WriteString("\n")
	}
	for i, s := range e.Sink.ReachSurfaces {
		if s == "" {
			continue
		}
		surfaces.WriteString(strconv.Itoa(i + 1))
		surfaces.WriteString(" ")
		surfaces.WriteString(s)
		surfaces.WriteString("\n")
	}
	io.WriteFileSD(dir, "rayinfo.txt", rayInfo.String())
	io.WriteFileSD(dir, "surfaces.txt", surfaces.String())
}

func countSurfacing(e *rays.Engine) int {
	n := 0
	for _, s := range e.Sink.ReachSurfaces {
		if s != "" {
			n++
		}
	}
	return n
}
