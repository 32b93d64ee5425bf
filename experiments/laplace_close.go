// Package experiments holds the drivers that reproduce the convergence
// figures and tables of the close evaluation paper: each experiment is a
// struct built from YAML parameters whose Run prints its table and
// optionally plots while computing.
package experiments

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/spectralkit/gobie/cauchy"
	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/laplace"
	"github.com/spectralkit/gobie/params"
	"github.com/spectralkit/gobie/utils"
)

// testDensity is the smooth periodic density laid down on every grid of a
// sweep, so coarse and reference grids sample the same function.
func testDensity(seg *geom2D.Segment) (sigma utils.Matrix) {
	sigma = utils.NewMatrix(seg.N, 1)
	for j, tj := range seg.T.DataP {
		sigma.DataP[j] = math.Exp(math.Cos(tj)) * math.Sin(2*tj+0.3)
	}
	return
}

// LaplaceClose sweeps target distance and node count for the Laplace double
// layer potential, comparing native quadrature against the compensated close
// evaluation scheme. Reproduces the error-versus-distance figure.
type LaplaceClose struct {
	ip   *params.Parameters
	side cauchy.Side
}

func NewLaplaceClose(ip *params.Parameters) (c *LaplaceClose, err error) {
	c = &LaplaceClose{ip: ip}
	c.side, err = ip.SideEnum()
	return
}

func (c *LaplaceClose) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		ip    = c.ip
		N     = ip.Ns[len(ip.Ns)-1]
		chart *errChart
	)
	if showGraph {
		chart = newErrChart(-16, 0)
		chart.AddLabel("native", utils.Red)
		chart.AddLabel("close", utils.Blue)
	}
	ip.Print()
	seg, err := ip.Segment(N)
	if err != nil {
		panic(err)
	}
	ref, err := ip.Segment(4 * N)
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nerror vs distance, N = %d, %s side\n", N, c.side)
	fmt.Printf("%12s %14s %14s\n", "distance", "native", "close")
	var logD, logNative []float64
	for _, d := range ip.Distances {
		tg := offsetTargets(seg, d, c.side)
		errNative := maxDiff(
			laplace.DLPMatrix(tg, seg).Mul(testDensity(seg)),
			closeEvalOn(ref, tg, c.side))
		errClose := maxDiff(
			closeEvalOn(seg, tg, c.side),
			closeEvalOn(ref, tg, c.side))
		fmt.Printf("%12.3e %14.6e %14.6e\n", d, errNative, errClose)
		logD = append(logD, math.Log10(d))
		logNative = append(logNative, math.Log10(errNative+1.e-17))
		if showGraph {
			chart.AddPoint(math.Log10(d), errNative, utils.Red)
			chart.AddPoint(math.Log10(d), errClose, utils.Blue)
		}
	}
	_, slope := stat.LinearRegression(logD, logNative, nil, false)
	fmt.Printf("native error growth: %.2f digits lost per decade of approach\n", -slope)

	fmt.Printf("\nclose scheme self convergence at distance %.1e\n", ip.Distances[len(ip.Distances)-1])
	fmt.Printf("%8s %14s\n", "N", "error")
	d := ip.Distances[len(ip.Distances)-1]
	var ns, logE []float64
	for _, n := range ip.Ns {
		segN, err := ip.Segment(n)
		if err != nil {
			panic(err)
		}
		tg := offsetTargets(segN, d, c.side)
		e := maxDiff(closeEvalOn(segN, tg, c.side), closeEvalOn(ref, tg, c.side))
		fmt.Printf("%8d %14.6e\n", n, e)
		ns = append(ns, float64(n))
		logE = append(logE, math.Log10(e+1.e-17))
	}
	_, rate := stat.LinearRegression(ns, logE, nil, false)
	fmt.Printf("spectral rate: %.3f digits per node\n", -rate)
	if showGraph {
		chart.Render(graphDelay...)
	}
}

// offsetTargets pushes one target off the curve at every eighth node, on the
// requested side.
func offsetTargets(seg *geom2D.Segment, d float64, side cauchy.Side) *geom2D.Targets {
	var (
		sign = complex(-d, 0)
		pts  []complex128
	)
	if side == cauchy.Exterior {
		sign = complex(d, 0)
	}
	for j := 0; j < seg.N; j += 8 {
		pts = append(pts, seg.Z.DataP[j]+sign*seg.Nx.DataP[j])
	}
	return geom2D.NewTargets(pts)
}

// closeEvalOn evaluates the corrector on seg; run on the reference grid it
// serves as the sweep's truth value.
func closeEvalOn(seg *geom2D.Segment, tg *geom2D.Targets, side cauchy.Side) utils.Matrix {
	res, err := laplace.CloseGlobal(seg, testDensity(seg), tg, side, false)
	if err != nil {
		panic(err)
	}
	return res.U
}

func maxDiff(a, b utils.Matrix) (e float64) {
	for i, val := range a.DataP {
		if d := math.Abs(val - b.DataP[i]); d > e {
			e = d
		}
	}
	return
}
