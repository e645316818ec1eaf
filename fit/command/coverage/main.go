package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/epireport/incubation-analysis/fit"
)

// Simulation harness: draws cohorts from a known log-normal, bootstraps
// each one and reports how often the intervals cover the true median.

var (
	trials     = flag.Int("trials", 100, "number of simulated cohorts")
	cases      = flag.Int("n", 100, "cases per simulated cohort")
	replicates = flag.Int("b", 200, "bootstrap replicates per trial")
	workers    = flag.Int("workers", 0, "bootstrap workers, zero for CPU count")
	mu         = flag.Float64("mu", math.Log(5), "true log-scale location")
	sigma      = flag.Float64("sigma", 0.5, "true log-scale spread")
	width      = flag.Float64("width", 95, "interval width in percent")
	seed       = flag.Int64("seed", 1, "base seed")
)

func main() {
	flag.Parse()

	cfg := fit.Config{Quantiles: []float64{0.5}}
	trueMedian := math.Exp(*mu)

	covered := 0
	discarded := 0
	for trial := 0; trial < *trials; trial++ {
		c := fit.SimulateCohort(*cases, *mu, *sigma, *seed+int64(trial)*1000)
		d, err := fit.Bootstrap(c, cfg, fit.BootstrapConfig{
			Replicates: *replicates,
			Seed:       *seed + int64(trial),
			Workers:    *workers,
			Width:      *width,
		})
		if nil != err {
			panic(err)
		}

		lo, hi := fit.Interval(d.Quantiles[0], *width)
		hit := lo <= trueMedian && trueMedian <= hi
		if hit {
			covered++
		}
		discarded += d.Discarded
		fmt.Printf("trial %4d: median CI [%6.3f, %6.3f] covered=%v discarded=%d\n",
			trial, lo, hi, hit, d.Discarded)
	}

	fmt.Printf("\ncoverage: %d/%d (%.1f%%) at nominal %.0f%%, %d replicates discarded in total\n",
		covered, *trials, 100*float64(covered)/float64(*trials), *width, discarded)
}
