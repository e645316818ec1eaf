package fit

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/epireport/incubation-analysis/schema"
)

const (
	defaultReplicates     = 1000
	defaultMaxDiscardFrac = 0.05
	defaultWidth          = 95
)

// BootstrapConfig drives the resampler.
type BootstrapConfig struct {
	// Replicates defaults to 1000.
	Replicates int
	// Seed makes runs bit-for-bit reproducible for a given cohort and
	// replicate count, regardless of Workers.
	Seed int64
	// Workers defaults to the CPU count.
	Workers int
	// MaxDiscardFrac is the tolerated share of non-converging replicates
	// before the intervals are flagged unreliable. Defaults to 0.05.
	MaxDiscardFrac float64
	// Width is the interval width in percent, default 95.
	Width float64
}

func (c BootstrapConfig) replicates() int {
	if c.Replicates <= 0 {
		return defaultReplicates
	}
	return c.Replicates
}

func (c BootstrapConfig) workers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

func (c BootstrapConfig) maxDiscardFrac() float64 {
	if c.MaxDiscardFrac <= 0 {
		return defaultMaxDiscardFrac
	}
	return c.MaxDiscardFrac
}

func (c BootstrapConfig) width() float64 {
	if c.Width <= 0 {
		return defaultWidth
	}
	return c.Width
}

// replicate is one refit's outputs, quantiles in requested order.
type replicate struct {
	ok        bool
	params    [2]float64
	mean      float64
	quantiles []float64
}

// Distribution carries the per-output draws across the replicates that
// converged. Interval widths are extracted afterwards, so one bootstrap
// pass can serve several widths.
type Distribution struct {
	Params    [2][]float64
	Mean      []float64
	Quantiles [][]float64
	Requested int
	Discarded int
}

// Used is the number of replicates that converged.
func (d *Distribution) Used() int {
	return d.Requested - d.Discarded
}

// Unreliable reports whether too many replicates were discarded for the
// intervals to be trusted.
func (d *Distribution) Unreliable(maxFrac float64) bool {
	return float64(d.Discarded) > maxFrac*float64(d.Requested)
}

// Interval is the percentile confidence interval of the given width in
// percent over one output's draws.
func Interval(draws []float64, width float64) (float64, float64) {
	sorted := make([]float64, len(draws))
	copy(sorted, draws)
	sort.Float64s(sorted)
	tail := (100 - width) / 200
	lo := stat.Quantile(tail, stat.Empirical, sorted, nil)
	hi := stat.Quantile(1-tail, stat.Empirical, sorted, nil)
	return lo, hi
}

// Bootstrap refits the estimator on resamples of the cohort, drawing whole
// cases with replacement. Replicates that fail to converge are skipped and
// counted, never fatal; the whole bootstrap only fails when fewer than two
// replicates survive.
//
// Each replicate owns a rand stream derived from (Seed, replicate index),
// so results do not depend on the worker count or on scheduling.
func Bootstrap(c schema.Cohort, cfg Config, bcfg BootstrapConfig) (*Distribution, error) {
	total := bcfg.replicates()
	workers := bcfg.workers()

	replicates := make([]replicate, total)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < total; i += workers {
				replicates[i] = refit(c, cfg, subSeed(bcfg.Seed, i))
			}
		}(w)
	}
	wg.Wait()

	d := &Distribution{
		Quantiles: make([][]float64, len(cfg.Quantiles)),
		Requested: total,
	}
	// reduce in replicate order so the outcome is reproducible
	for _, r := range replicates {
		if !r.ok {
			d.Discarded++
			continue
		}
		d.Params[0] = append(d.Params[0], r.params[0])
		d.Params[1] = append(d.Params[1], r.params[1])
		d.Mean = append(d.Mean, r.mean)
		for q := range r.quantiles {
			d.Quantiles[q] = append(d.Quantiles[q], r.quantiles[q])
		}
	}

	if d.Discarded > 0 {
		log.WithFields(log.Fields{
			"prefix":    logPrefix,
			"cohort":    c.Name,
			"discarded": d.Discarded,
			"requested": total,
		}).Warn("bootstrap replicates did not converge")
	}
	if d.Used() < 2 {
		return nil, fmt.Errorf("cohort %s: %d of %d bootstrap replicates converged: %w",
			c.Name, d.Used(), total, ErrDidNotConverge)
	}
	return d, nil
}

// refit draws one resample and fits it.
func refit(c schema.Cohort, cfg Config, seed int64) replicate {
	rng := rand.New(rand.NewSource(seed))
	n := c.Size()
	sample := schema.Cohort{
		Name:      c.Name,
		Intervals: make([]schema.DerivedInterval, n),
	}
	for i := range sample.Intervals {
		sample.Intervals[i] = c.Intervals[rng.Intn(n)]
	}

	point, err := Fit(sample, cfg)
	if nil != err {
		return replicate{}
	}
	return replicate{
		ok:        true,
		params:    point.Params,
		mean:      point.Mean,
		quantiles: point.Quantiles,
	}
}

// subSeed mixes the run seed with the replicate index (splitmix64) so
// neighboring replicates do not share low-bit patterns.
func subSeed(seed int64, i int) int64 {
	z := uint64(seed) + uint64(i+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
