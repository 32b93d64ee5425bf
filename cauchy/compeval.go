// Package cauchy evaluates holomorphic functions off a closed curve from
// their boundary node values, using the compensated barycentric form of the
// Cauchy integral. Unlike the naive discretization, whose error blows up as
// targets approach the curve, the compensated quotient stays accurate
// arbitrarily close to (and on) the nodes.
package cauchy

import (
	"fmt"

	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/quadrature"
	"github.com/spectralkit/gobie/utils"
)

// Side selects which side of the curve the evaluated function is holomorphic
// on. Exterior evaluation requires decay at infinity, v(inf) = 0.
type Side uint8

const (
	Interior Side = iota
	Exterior
)

func (s Side) String() string {
	switch s {
	case Interior:
		return "interior"
	case Exterior:
		return "exterior"
	}
	return fmt.Sprintf("side(%d)", uint8(s))
}

// Valid reports whether s names a defined side.
func (s Side) Valid() bool { return s <= Exterior }

// CompEval evaluates, at each target, the function holomorphic on the given
// side of seg whose boundary values at the nodes are the columns of vb
// (seg.N rows, one column per density). It returns the values vc and, when
// wantDeriv is set, the complex derivatives vcp, each sized len(targets) by
// the column count of vb.
//
// Interior targets use the barycentric quotient of the Cauchy integral of vb
// against that of the constant one; exterior targets compensate with the
// decaying basis 1/(z - a), a = seg.Inside. Derivatives reuse the same
// quotient on the FFT differentiated boundary values, which keeps them
// stable for targets arbitrarily close to a node. Targets bitwise equal to
// a node copy the node values directly. An empty target set returns empty
// matrices.
func CompEval(seg *geom2D.Segment, vb utils.CMatrix, targets []complex128, side Side, wantDeriv bool) (vc, vcp utils.CMatrix, err error) {
	var (
		N, K = vb.Dims()
		M    = len(targets)
		vbp  utils.CMatrix
	)
	if N != seg.N {
		err = fmt.Errorf("boundary data has %d rows, segment has %d nodes", N, seg.N)
		return
	}
	if !side.Valid() {
		err = fmt.Errorf("unknown side %s", side)
		return
	}
	if M == 0 {
		return
	}
	if wantDeriv {
		vbp = boundaryDeriv(seg, vb)
		vcp = utils.NewCMatrix(M, K)
	}

	// Side dependent weights
	ww := make([]complex128, N)
	copy(ww, seg.CW.DataP)
	if side == Exterior {
		for j := range ww {
			ww[j] /= seg.Z.DataP[j] - seg.Inside
		}
	}

	vc = utils.NewCMatrix(M, K)
	wd := make([]complex128, N) // ww_j / (z_j - t)
	for i, t := range targets {
		if j := nodeIndex(seg, t); j >= 0 {
			for c := 0; c < K; c++ {
				vc.DataP[i*K+c] = vb.DataP[j*K+c]
				if wantDeriv {
					vcp.DataP[i*K+c] = vbp.DataP[j*K+c]
				}
			}
			continue
		}
		var den complex128
		for j := 0; j < N; j++ {
			wd[j] = ww[j] / (seg.Z.DataP[j] - t)
			den += wd[j]
		}
		for c := 0; c < K; c++ {
			var num, dnum complex128
			for j := 0; j < N; j++ {
				num += wd[j] * vb.DataP[j*K+c]
			}
			vc.DataP[i*K+c] = num / den
			if wantDeriv {
				for j := 0; j < N; j++ {
					dnum += wd[j] * vbp.DataP[j*K+c]
				}
				vcp.DataP[i*K+c] = dnum / den
			}
		}
	}
	return
}

// nodeIndex returns the index of the node bitwise equal to t, or -1.
func nodeIndex(seg *geom2D.Segment, t complex128) int {
	for j, z := range seg.Z.DataP {
		if z == t {
			return j
		}
	}
	return -1
}

// boundaryDeriv converts boundary values to complex derivatives dv/dz at the
// nodes via the chain rule dv/dz = (dv/dt) / (dz/dt).
func boundaryDeriv(seg *geom2D.Segment, vb utils.CMatrix) (vbp utils.CMatrix) {
	var (
		N, K = vb.Dims()
	)
	vbp = utils.NewCMatrix(N, K)
	for c := 0; c < K; c++ {
		col := vb.Col(c)
		dcol := quadrature.SpectralDiffComplex(col.DataP)
		for j := 0; j < N; j++ {
			vbp.DataP[j*K+c] = dcol[j] / seg.Zp.DataP[j]
		}
	}
	return
}
