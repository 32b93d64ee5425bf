package geom2D

import (
	"math"
	"math/cmplx"

	"github.com/james-bowman/sparse"

	"github.com/spectralkit/gobie/utils"
)

// NearTargets returns the indices of targets lying within dist of any curve
// node. The target-node incidence is accumulated sparsely so large far field
// target sets cost little; the returned index selects the targets that need
// close evaluation treatment rather than the native quadrature.
func NearTargets(seg *Segment, tg *Targets, dist float64) (near utils.Index) {
	var (
		M = tg.Len()
		N = seg.N
	)
	incidence := utils.NewDOK(M, N)
	for i, t := range tg.Z {
		for j, z := range seg.Z.DataP {
			if cmplx.Abs(t-z) < dist {
				incidence.Set(i, j, 1)
			}
		}
	}
	ones := utils.NewDOK(N, 1)
	for j := 0; j < N; j++ {
		ones.Set(j, 0, 1)
	}
	counts := sparse.NewCSR(M, 1, nil, nil, nil)
	counts.Mul(incidence.ToCSR(), ones.ToCSR())
	for i := 0; i < M; i++ {
		if counts.At(i, 0) > 0 {
			near = append(near, i)
		}
	}
	return
}

// FarTargets is the complement of NearTargets over the same target set.
func FarTargets(seg *Segment, tg *Targets, dist float64) (far utils.Index) {
	near := NearTargets(seg, tg, dist)
	for i := 0; i < tg.Len(); i++ {
		if !near.Contains(i) {
			far = append(far, i)
		}
	}
	return
}

// Inside reports for each point whether the curve encloses it. The winding
// value is the discretized Cauchy integral of 1, near one for enclosed
// points and near zero outside; points within a few node spacings of the
// curve should be classified with NearTargets first.
func Inside(seg *Segment, points []complex128) (in []bool) {
	in = make([]bool, len(points))
	for i, p := range points {
		var w complex128
		for j, z := range seg.Z.DataP {
			w += seg.CW.DataP[j] / (z - p)
		}
		w *= complex(0, -1/(2*math.Pi))
		in[i] = real(w) > 0.5
	}
	return
}

// Subset returns a new target set restricted to the given indices. A subset
// of self targets is no longer a self target set.
func (tg *Targets) Subset(I utils.Index) (r *Targets) {
	r = &Targets{Z: make([]complex128, len(I))}
	for i, ind := range I {
		r.Z[i] = tg.Z[ind]
	}
	if tg.HasNormals() {
		r.Nx = make([]complex128, len(I))
		for i, ind := range I {
			r.Nx[i] = tg.Nx[ind]
		}
	}
	return
}
