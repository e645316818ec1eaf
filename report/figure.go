package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/epireport/incubation-analysis/fit"
	"github.com/epireport/incubation-analysis/schema"
)

const (
	figureWidth  = 800
	figureHeight = 500
	marginLeft   = 60
	marginRight  = 190
	marginTop    = 30
	marginBottom = 50
	curveMaxDays = 21.0
)

var curvePalette = []color.RGBA{
	{R: 0xd6, G: 0x2d, B: 0x20, A: 0xff},
	{R: 0x2b, G: 0x8c, B: 0xbe, A: 0xff},
	{R: 0x31, G: 0xa3, B: 0x54, A: 0xff},
	{R: 0x75, G: 0x6b, B: 0xb1, A: 0xff},
	{R: 0xe6, G: 0x8a, B: 0x00, A: 0xff},
}

// RenderCurves draws each cohort's fitted cumulative distribution into a
// PNG at path, one curve per cohort with a legend.
func RenderCurves(path string, results []schema.FitResult) error {
	img := image.NewRGBA(image.Rect(0, 0, figureWidth, figureHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawAxes(img)

	for i, r := range results {
		fam, err := fit.FamilyByName(r.Family)
		if nil != err {
			return err
		}
		if len(r.Params) != 2 {
			return fmt.Errorf("cohort %s: expected two parameters, got %d", r.Cohort, len(r.Params))
		}

		x := fam.FromNatural(r.Params[0].Value, r.Params[1].Value)
		col := curvePalette[i%len(curvePalette)]
		drawCurve(img, fam, x, col)
		drawLegendEntry(img, i, r.Cohort, col)
	}

	f, err := os.Create(path)
	if nil != err {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func plotX(t float64) int {
	w := figureWidth - marginLeft - marginRight
	return marginLeft + int(math.Round(t/curveMaxDays*float64(w)))
}

func plotY(p float64) int {
	h := figureHeight - marginTop - marginBottom
	return figureHeight - marginBottom - int(math.Round(p*float64(h)))
}

func drawAxes(img *image.RGBA) {
	black := color.RGBA{A: 0xff}
	grey := color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

	for i := 0; i <= 4; i++ {
		p := float64(i) / 4
		y := plotY(p)
		for x := plotX(0); x <= plotX(curveMaxDays); x++ {
			img.Set(x, y, grey)
		}
		drawLabel(img, plotX(0)-38, y+4, fmt.Sprintf("%.2f", p), black)
	}
	for d := 0; d <= int(curveMaxDays); d += 3 {
		x := plotX(float64(d))
		for y := plotY(1); y <= plotY(0); y++ {
			img.Set(x, y, grey)
		}
		drawLabel(img, x-4, plotY(0)+16, fmt.Sprintf("%d", d), black)
	}

	// axes over the grid
	for x := plotX(0); x <= plotX(curveMaxDays); x++ {
		img.Set(x, plotY(0), black)
	}
	for y := plotY(1); y <= plotY(0); y++ {
		img.Set(plotX(0), y, black)
	}

	drawLabel(img, (plotX(0)+plotX(curveMaxDays))/2-60, figureHeight-12, "days since exposure", black)
}

func drawCurve(img *image.RGBA, fam fit.Family, x []float64, col color.RGBA) {
	w := figureWidth - marginLeft - marginRight
	prevY := plotY(fam.CDF(0, x))
	for px := 0; px <= w; px++ {
		t := float64(px) / float64(w) * curveMaxDays
		y := plotY(fam.CDF(t, x))
		drawSegment(img, marginLeft+px, prevY, y, col)
		prevY = y
	}
}

// drawSegment fills the vertical span between consecutive curve samples so
// steep sections stay connected.
func drawSegment(img *image.RGBA, x, y0, y1 int, col color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		img.Set(x, y, col)
	}
}

func drawLegendEntry(img *image.RGBA, i int, name string, col color.RGBA) {
	x0 := figureWidth - marginRight + 12
	y := marginTop + 20*i + 10
	for x := x0; x < x0+18; x++ {
		img.Set(x, y, col)
		img.Set(x, y+1, col)
	}
	drawLabel(img, x0+24, y+5, name, color.RGBA{A: 0xff})
}

func drawLabel(img *image.RGBA, x, y int, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
