package laplace

import (
	"fmt"
	"math"

	"github.com/spectralkit/gobie/cauchy"
	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/quadrature"
	"github.com/spectralkit/gobie/utils"
)

// CloseResult carries the outputs of a close evaluation request. U is always
// set. When the gradient is requested, Un holds the directional derivative
// n.grad(u) if the targets carry normals, otherwise Ux and Uy hold the raw
// partials. Every matrix is M targets by K density columns.
type CloseResult struct {
	U      utils.Matrix
	Ux, Uy utils.Matrix
	Un     utils.Matrix
}

// CloseGlobal evaluates the Laplace double layer potential of the density
// columns sigma (seg.N rows, one column per right hand side) at the targets,
// retaining spectral accuracy for targets arbitrarily close to the curve on
// the given side.
//
// The potential is recovered as u = Re v for the function v, holomorphic on
// that side of the curve, whose one sided boundary limit is computed node by
// node from the singularity subtracted Cauchy sum
//
//	vb_i = ( sum_{j/=i} (sigma_j - sigma_i)/(z_j - z_i) cw_j
//	         + sigma'_i / sp_i * w_i ) / (-2 pi i)
//
// with sigma' the FFT derivative of the density along the curve; the interior
// limit additionally subtracts sigma (the two one sided limits of the Cauchy
// integral differ by the density). The boundary values then feed the
// compensated barycentric evaluator, whose complex derivative yields
// u_x = Re v', u_y = -Im v'.
func CloseGlobal(seg *geom2D.Segment, sigma utils.Matrix, tg *geom2D.Targets, side cauchy.Side, wantGrad bool) (res CloseResult, err error) {
	var (
		N, K = sigma.Dims()
	)
	if N != seg.N {
		err = fmt.Errorf("density has %d rows, segment has %d nodes", N, seg.N)
		return
	}
	csigma := utils.NewCMatrix(N, K)
	for i, val := range sigma.DataP {
		csigma.DataP[i] = complex(val, 0)
	}
	vb := boundaryLimit(seg, csigma, side)
	vc, vcp, err := cauchy.CompEval(seg, vb, tg.Z, side, wantGrad)
	if err != nil {
		return
	}
	res.U = vc.Real()
	if !wantGrad {
		return
	}
	if tg.HasNormals() {
		res.Un = directional(vcp, tg)
	} else {
		res.Ux = vcp.Real()
		res.Uy = vcp.Imag().Scale(-1)
	}
	return
}

// CCloseResult is CloseResult for a complex valued density.
type CCloseResult struct {
	U      utils.CMatrix
	Ux, Uy utils.CMatrix
	Un     utils.CMatrix
}

// CloseGlobalComplex is the advanced capability of the Laplace path: a
// complex valued density, evaluated by applying the real scheme to its real
// and imaginary parts and recombining. The Stokes kernels never accept
// complex densities.
func CloseGlobalComplex(seg *geom2D.Segment, sigma utils.CMatrix, tg *geom2D.Targets, side cauchy.Side, wantGrad bool) (res CCloseResult, err error) {
	var (
		re, im CloseResult
	)
	if re, err = CloseGlobal(seg, sigma.Real(), tg, side, wantGrad); err != nil {
		return
	}
	if im, err = CloseGlobal(seg, sigma.Imag(), tg, side, wantGrad); err != nil {
		return
	}
	res.U = combine(re.U, im.U)
	if !wantGrad {
		return
	}
	if tg.HasNormals() {
		res.Un = combine(re.Un, im.Un)
	} else {
		res.Ux = combine(re.Ux, im.Ux)
		res.Uy = combine(re.Uy, im.Uy)
	}
	return
}

func combine(re, im utils.Matrix) (R utils.CMatrix) {
	var (
		nr, nc = re.Dims()
	)
	R = utils.NewCMatrix(nr, nc)
	for i := range R.DataP {
		R.DataP[i] = complex(re.DataP[i], im.DataP[i])
	}
	return
}

// boundaryLimit computes the one sided boundary values of the holomorphic
// potential proxy v from the density columns. Cost is O(N^2) per column from
// the all pairs sum.
func boundaryLimit(seg *geom2D.Segment, sigma utils.CMatrix, side cauchy.Side) (vb utils.CMatrix) {
	var (
		N, K  = sigma.Dims()
		scale = complex(0, 1/(2.*math.Pi)) // 1/(-2 pi i)
	)
	vb = utils.NewCMatrix(N, K)
	for c := 0; c < K; c++ {
		col := sigma.Col(c)
		colp := quadrature.SpectralDiffComplex(col.DataP)
		for i := 0; i < N; i++ {
			var sum complex128
			for j := 0; j < N; j++ {
				if j == i {
					continue
				}
				sum += (col.DataP[j] - col.DataP[i]) / (seg.Z.DataP[j] - seg.Z.DataP[i]) * seg.CW.DataP[j]
			}
			sum += colp[i] / complex(seg.Sp.DataP[i], 0) * complex(seg.W.DataP[i], 0)
			vb.DataP[i*K+c] = sum * scale
			if side == cauchy.Interior {
				vb.DataP[i*K+c] -= col.DataP[i]
			}
		}
	}
	return
}

// directional contracts the complex derivative v' with the target normals:
// n.grad(u) = Re(v' n) for n = nx + i ny.
func directional(vcp utils.CMatrix, tg *geom2D.Targets) (Un utils.Matrix) {
	var (
		M, K = vcp.Dims()
	)
	Un = utils.NewMatrix(M, K)
	for i := 0; i < M; i++ {
		for c := 0; c < K; c++ {
			Un.DataP[i*K+c] = real(vcp.DataP[i*K+c] * tg.Nx[i])
		}
	}
	return
}
