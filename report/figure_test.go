package report

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epireport/incubation-analysis/schema"
)

func renderable(cohort, family string, mu, sigma float64) schema.FitResult {
	return schema.FitResult{
		Cohort: cohort,
		Family: family,
		Params: []schema.ParamEstimate{
			{Name: "mu", Estimate: schema.Estimate{Value: mu}},
			{Name: "sigma", Estimate: schema.Estimate{Value: sigma}},
		},
	}
}

func countPixels(img image.Image, want color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if got.R == want.R && got.G == want.G && got.B == want.B {
				n++
			}
		}
	}
	return n
}

func TestRenderCurves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdf.png")
	results := []schema.FitResult{
		renderable("all", "lognormal", 1.76, 0.42),
		renderable("fever-only", "lognormal", 2.1, 0.6),
	}

	require.NoError(t, RenderCurves(path, results))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, figureWidth, img.Bounds().Dx())
	assert.Equal(t, figureHeight, img.Bounds().Dy())

	// the curves start at the origin, so probe the axis midway up instead
	axis := color.NRGBAModel.Convert(img.At(plotX(0), plotY(0.5))).(color.NRGBA)
	assert.Equal(t, uint8(0), axis.R)
	assert.Equal(t, uint8(0), axis.G)
	assert.Equal(t, uint8(0), axis.B)

	// both cohorts leave a visible curve
	assert.Greater(t, countPixels(img, curvePalette[0]), 100)
	assert.Greater(t, countPixels(img, curvePalette[1]), 100)
}

func TestRenderCurvesUnknownFamily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdf.png")
	err := RenderCurves(path, []schema.FitResult{renderable("all", "cauchy", 1.76, 0.42)})
	assert.Error(t, err)
}

func TestRenderCurvesBadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdf.png")
	r := renderable("all", "lognormal", 1.76, 0.42)
	r.Params = r.Params[:1]

	err := RenderCurves(path, []schema.FitResult{r})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all")
}
