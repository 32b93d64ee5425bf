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

// DirichletBVP solves the interior Laplace Dirichlet problem with a double
// layer ansatz against node count, then evaluates the solution on a mixed
// target set: deep interior points through the native quadrature and a fan
// of targets walking up to the boundary through the close evaluation
// scheme, routed by distance to the nodes. Reproduces the BVP convergence
// table.
type DirichletBVP struct {
	ip *params.Parameters
	z0 complex128 // singularity of the exact harmonic solution, outside
}

func NewDirichletBVP(ip *params.Parameters) *DirichletBVP {
	return &DirichletBVP{ip: ip, z0: 1.8 + 1.4i}
}

func (c *DirichletBVP) exact(z complex128) float64 { return real(1 / (z - c.z0)) }

func (c *DirichletBVP) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		ip    = c.ip
		chart *errChart
		lastN = ip.Ns[len(ip.Ns)-1]
		ns    []float64
		logE  []float64
	)
	if showGraph {
		chart = newErrChart(0, float64(lastN))
		chart.AddLabel("far", utils.Red)
		chart.AddLabel("near", utils.Blue)
	}
	ip.Print()
	fmt.Printf("\n%8s %14s %14s\n", "N", "far err", "near err")
	for _, n := range ip.Ns {
		seg, err := ip.Segment(n)
		if err != nil {
			panic(err)
		}
		f := utils.NewMatrix(n, 1)
		for j, z := range seg.Z.DataP {
			f.DataP[j] = c.exact(z)
		}
		sigma, err := laplace.SolveInteriorDirichlet(seg, f)
		if err != nil {
			panic(err)
		}

		// One target list mixing deep interior points with a fan walking
		// up to the boundary. Distance to the nodes routes each target to
		// native quadrature or the corrector.
		pts := []complex128{0, 0.15 - 0.1i}
		for _, d := range ip.Distances {
			pts = append(pts, seg.Z.DataP[n/3]-complex(d, 0)*seg.Nx.DataP[n/3])
		}
		tg := geom2D.NewTargets(pts)
		cutoff := math.Min(0.5, 10*math.Pi/float64(n))

		far := tg.Subset(geom2D.FarTargets(seg, tg, cutoff))
		uFar := laplace.DLPMatrix(far, seg).Mul(sigma)
		var farErr float64
		for i, z := range far.Z {
			farErr = math.Max(farErr, math.Abs(uFar.At(i, 0)-c.exact(z)))
		}

		near := tg.Subset(geom2D.NearTargets(seg, tg, cutoff))
		res, err := laplace.CloseGlobal(seg, sigma, near, cauchy.Interior, false)
		if err != nil {
			panic(err)
		}
		var nearErr float64
		for i, z := range near.Z {
			nearErr = math.Max(nearErr, math.Abs(res.U.At(i, 0)-c.exact(z)))
		}

		fmt.Printf("%8d %14.6e %14.6e\n", n, farErr, nearErr)
		ns = append(ns, float64(n))
		logE = append(logE, math.Log10(nearErr+1.e-17))
		if showGraph {
			chart.AddPoint(float64(n), farErr, utils.Red)
			chart.AddPoint(float64(n), nearErr, utils.Blue)
		}
	}
	_, rate := stat.LinearRegression(ns, logE, nil, false)
	fmt.Printf("spectral rate: %.3f digits per node\n", -rate)
	if showGraph {
		chart.Render(graphDelay...)
	}
}
