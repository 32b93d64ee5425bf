package experiments

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/params"
	"github.com/spectralkit/gobie/stokes"
	"github.com/spectralkit/gobie/utils"
)

// StokesIdentity checks the constant density identities of the Stokes double
// layer potential against node count: velocity -sigma, pressure zero and
// traction zero at interior targets, plus wrapper/composition agreement.
// Reproduces the spectral convergence table.
type StokesIdentity struct {
	ip *params.Parameters
}

func NewStokesIdentity(ip *params.Parameters) *StokesIdentity {
	return &StokesIdentity{ip: ip}
}

func (c *StokesIdentity) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		ip       = c.ip
		cx, cy   = 1., 2.
		zs       = []complex128{0.1 + 0.05i, -0.2 + 0.1i, 0.15i}
		ns       = []complex128{1, 1i, complex(math.Cos(0.7), math.Sin(0.7))}
		nsSweep  []float64
		logE     []float64
		lastN    = ip.Ns[len(ip.Ns)-1]
		assembly time.Duration
		chart    *errChart
	)
	if showGraph {
		chart = newErrChart(0, float64(lastN))
		chart.AddLabel("velocity", utils.Green)
	}
	ip.Print()
	fmt.Printf("\n%8s %14s %14s %14s %14s\n", "N", "vel err", "pres err", "trac err", "wrapper diff")
	for _, n := range ip.Ns {
		seg, err := ip.Segment(n)
		if err != nil {
			panic(err)
		}
		tg, err := geom2D.NewTargetsWithNormals(zs, ns)
		if err != nil {
			panic(err)
		}
		sigma := utils.NewMatrix(2*n, 1)
		for j := 0; j < n; j++ {
			sigma.DataP[j], sigma.DataP[j+n] = cx, cy
		}
		start := time.Now()
		K, err := stokes.DLPMatrices(tg, seg, ip.Mu, stokes.Velocity|stokes.Pressure|stokes.Traction)
		assembly = time.Since(start)
		if err != nil {
			panic(err)
		}
		res, err := stokes.Eval(seg, sigma, tg, ip.Mu, stokes.Velocity|stokes.Pressure|stokes.Traction)
		if err != nil {
			panic(err)
		}
		var velErr, presErr, tracErr float64
		M := tg.Len()
		for i := 0; i < M; i++ {
			velErr = math.Max(velErr, math.Abs(res.Vel.At(i, 0)+cx))
			velErr = math.Max(velErr, math.Abs(res.Vel.At(i+M, 0)+cy))
			presErr = math.Max(presErr, math.Abs(res.Pres.At(i, 0)))
			tracErr = math.Max(tracErr, math.Abs(res.Trac.At(i, 0)))
			tracErr = math.Max(tracErr, math.Abs(res.Trac.At(i+M, 0)))
		}
		wrapDiff := maxDiff(res.Vel, K.Vel.Mul(sigma))
		fmt.Printf("%8d %14.6e %14.6e %14.6e %14.6e\n", n, velErr, presErr, tracErr, wrapDiff)
		if n == lastN {
			instr, counted := countInstructions(func() {
				_, _ = stokes.DLPMatrices(tg, seg, ip.Mu, stokes.Velocity|stokes.Pressure|stokes.Traction)
			})
			if counted {
				fmt.Printf("assembly at N = %d: %s, %d instructions\n", n, assembly, instr)
			} else {
				fmt.Printf("assembly at N = %d: %s\n", n, assembly)
			}
			fmt.Printf("%s\n", utils.GetMemUsage())
		}
		nsSweep = append(nsSweep, float64(n))
		logE = append(logE, math.Log10(velErr+1.e-17))
		if showGraph {
			chart.AddPoint(float64(n), velErr, utils.Green)
		}
	}
	_, rate := stat.LinearRegression(nsSweep, logE, nil, false)
	fmt.Printf("spectral rate: %.3f digits per node\n", -rate)
	if showGraph {
		chart.Render(graphDelay...)
	}
}
