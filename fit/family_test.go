package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trapezoid integration of the CDF, as an independent check of the closed
// forms
func numericCDFIntegral(fam Family, t float64, x []float64) float64 {
	const steps = 4000
	h := t / steps
	sum := 0.0
	for i := 0; i < steps; i++ {
		a := float64(i) * h
		sum += (fam.CDF(a, x) + fam.CDF(a+h, x)) / 2 * h
	}
	return sum
}

func TestCDFIntegralMatchesNumeric(t *testing.T) {
	cases := []struct {
		fam Family
		x   []float64
	}{
		{LogNormal{}, LogNormal{}.FromNatural(1.6, 0.5)},
		{Gamma{}, Gamma{}.FromNatural(2.5, 2.0)},
		{Weibull{}, Weibull{}.FromNatural(2.0, 6.0)},
	}
	for _, c := range cases {
		for _, upper := range []float64{0.5, 2, 5, 12, 20} {
			want := numericCDFIntegral(c.fam, upper, c.x)
			got := c.fam.CDFIntegral(upper, c.x)
			assert.InDelta(t, want, got, 1e-3, "%s at t=%v", c.fam.Name(), upper)
		}
		assert.Equal(t, 0.0, c.fam.CDFIntegral(0, c.x), c.fam.Name())
		assert.Equal(t, 0.0, c.fam.CDFIntegral(-3, c.x), c.fam.Name())
	}
}

func TestLogNormalMoments(t *testing.T) {
	f := LogNormal{}
	x := f.FromNatural(1.6, 0.5)

	assert.InDelta(t, math.Exp(1.6+0.125), f.Mean(x), 1e-12)
	assert.InDelta(t, math.Exp(1.6), f.GeoMean(x), 1e-12)
	assert.InDelta(t, math.Exp(1.6), f.Quantile(0.5, x), 1e-9, "median equals the geometric mean")

	mu, sigma := f.Natural(x)
	assert.InDelta(t, 1.6, mu, 1e-12)
	assert.InDelta(t, 0.5, sigma, 1e-12)
}

func TestGammaMoments(t *testing.T) {
	f := Gamma{}
	x := f.FromNatural(2.5, 2.0)

	assert.InDelta(t, 5.0, f.Mean(x), 1e-12)
	assert.Less(t, f.GeoMean(x), f.Mean(x), "geometric mean sits below the arithmetic mean")
	assert.Greater(t, f.GeoMean(x), 0.0)
}

func TestWeibullMoments(t *testing.T) {
	f := Weibull{}
	x := f.FromNatural(2.0, 6.0)

	assert.InDelta(t, 6*math.Gamma(1.5), f.Mean(x), 1e-12)
	assert.Less(t, f.GeoMean(x), f.Mean(x))
	assert.Greater(t, f.GeoMean(x), 0.0)
}

func TestQuantilesMonotone(t *testing.T) {
	families := []struct {
		fam Family
		x   []float64
	}{
		{LogNormal{}, LogNormal{}.FromNatural(1.6, 0.5)},
		{Gamma{}, Gamma{}.FromNatural(2.5, 2.0)},
		{Weibull{}, Weibull{}.FromNatural(2.0, 6.0)},
	}
	probs := []float64{0.025, 0.05, 0.25, 0.5, 0.75, 0.95, 0.975, 0.99}
	for _, c := range families {
		prev := 0.0
		for _, p := range probs {
			q := c.fam.Quantile(p, c.x)
			assert.Greater(t, q, prev, "%s at p=%v", c.fam.Name(), p)
			prev = q
		}
	}
}

func TestInitFinite(t *testing.T) {
	durations := []float64{4, 5.5, 6, 3, 0.1, 8, 5, 5}
	for _, fam := range []Family{LogNormal{}, Gamma{}, Weibull{}} {
		x := fam.Init(durations)
		require.Equal(t, 2, len(x), fam.Name())
		for _, v := range x {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), fam.Name())
		}
	}

	// all-equal durations must not blow up the spread estimate
	x := LogNormal{}.Init([]float64{5, 5, 5})
	_, sigma := LogNormal{}.Natural(x)
	assert.InDelta(t, 0.1, sigma, 1e-9)
}

func TestFamilyByName(t *testing.T) {
	for name, want := range map[string]string{
		"":           "lognormal",
		"lognormal":  "lognormal",
		"log-normal": "lognormal",
		"gamma":      "gamma",
		"weibull":    "weibull",
	} {
		fam, err := FamilyByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, fam.Name())
	}

	_, err := FamilyByName("cauchy")
	assert.Error(t, err)
}
