package experiments

import (
	"image/color"
	"math"
	"time"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/spectralkit/gobie/utils"
)

// errChart accumulates log10-error markers over a sweep and renders them in
// a single frame once the sweep completes.
type errChart struct {
	xMin, xMax float32
	yMin, yMax float32
	lines      map[color.RGBA][]float32
	labels     []chartLabel
}

type chartLabel struct {
	text string
	col  color.RGBA
}

func newErrChart(xMin, xMax float64) (ec *errChart) {
	ec = &errChart{
		xMin:  float32(xMin),
		xMax:  float32(xMax),
		yMin:  -17,
		yMax:  1,
		lines: make(map[color.RGBA][]float32),
	}
	return
}

// AddPoint places a crosshair at (x, log10(e)), floored at 1e-17 so exact
// zeros still plot.
func (ec *errChart) AddPoint(x, e float64, cn utils.ColorName) {
	var (
		col = utils.GetColor(cn)
		xl  = float32(x)
		yl  = float32(math.Log10(e + 1.e-17))
		xs  = 0.01 * (ec.xMax - ec.xMin)
		ys  = 0.01 * (ec.yMax - ec.yMin)
	)
	ec.lines[col] = append(ec.lines[col],
		xl-xs, yl, xl+xs, yl,
		xl, yl-ys, xl, yl+ys,
	)
}

func (ec *errChart) AddLabel(text string, cn utils.ColorName) {
	ec.labels = append(ec.labels, chartLabel{text: text, col: utils.GetColor(cn)})
}

// Render draws the accumulated markers. With a delay it returns after
// sleeping, otherwise it holds the window open.
func (ec *errChart) Render(graphDelay ...time.Duration) {
	ch := chart2d.NewChart2D(ec.xMin, ec.xMax, ec.yMin, ec.yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range ec.lines {
		ch.AddLine(line, col)
	}
	for i, lbl := range ec.labels {
		tf := assets.NewTextFormatter("NotoSans", "Regular", 24,
			lbl.col, true, false)
		y := ec.yMax - 0.05*(ec.yMax-ec.yMin)*float32(i+1)
		ch.Printf(tf, ec.xMin+0.02*(ec.xMax-ec.xMin), y, "%s", lbl.text)
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
		return
	}
	for {
	}
}
