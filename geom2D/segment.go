// Package geom2D holds the discretized closed curves and evaluation target
// sets shared by the layer potential kernels. Curves are smooth 2pi periodic
// maps into the complex plane, sampled at N equispaced parameter nodes so
// that the periodic trapezoid rule and FFT differentiation apply.
package geom2D

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/spectralkit/gobie/quadrature"
	"github.com/spectralkit/gobie/utils"
)

// MapFunc evaluates a curve parametrization (or one of its derivatives) at
// parameter t in [0, 2pi).
type MapFunc func(t float64) complex128

// Segment is a closed curve discretized at N equispaced parameter nodes,
// traversed counterclockwise. All per node fields are node ordered and are
// treated as immutable once constructed.
//
// W holds the scalar quadrature weights sp*2pi/N used for real valued line
// integrals, CW the complex weights zp*2pi/N used for contour integrals.
type Segment struct {
	N      int
	T      utils.Vector  // parameter nodes on [0, 2pi)
	Z      utils.CVector // curve nodes z(t)
	Zp     utils.CVector // dz/dt
	Zpp    utils.CVector // d2z/dt2
	Sp     utils.Vector  // speed |dz/dt|
	Tang   utils.CVector // unit tangents
	Nx     utils.CVector // outward unit normals
	Cur    utils.Vector  // signed curvature, positive for convex CCW curves
	W      utils.Vector  // scalar quadrature weights
	CW     utils.CVector // complex quadrature weights
	Inside complex128    // reference point enclosed by the curve
}

// NewSegment discretizes the closed curve z = f(t) using analytic first and
// second derivative maps fp and fpp. N must be even and at least 4.
func NewSegment(N int, f, fp, fpp MapFunc) (seg *Segment, err error) {
	if err = checkNodeCount(N); err != nil {
		return
	}
	var (
		T, _ = quadrature.PeriodicTrapezoid(N)
		z    = utils.NewCVector(N)
		zp   = utils.NewCVector(N)
		zpp  = utils.NewCVector(N)
	)
	for i, t := range T.DataP {
		z.DataP[i] = f(t)
		zp.DataP[i] = fp(t)
		zpp.DataP[i] = fpp(t)
	}
	return newSegment(T, z, zp, zpp)
}

// NewSegmentSpectral discretizes z = f(t) and obtains the derivative fields
// by FFT differentiation of the nodes, for curves only available as a map.
func NewSegmentSpectral(N int, f MapFunc) (seg *Segment, err error) {
	if err = checkNodeCount(N); err != nil {
		return
	}
	var (
		T, _ = quadrature.PeriodicTrapezoid(N)
		z    = utils.NewCVector(N)
	)
	for i, t := range T.DataP {
		z.DataP[i] = f(t)
	}
	zp := utils.NewCVector(N, quadrature.SpectralDiffComplex(z.DataP))
	zpp := utils.NewCVector(N, quadrature.SpectralDiffComplex(zp.DataP))
	return newSegment(T, z, zp, zpp)
}

func newSegment(T utils.Vector, z, zp, zpp utils.CVector) (seg *Segment, err error) {
	var (
		N      = z.Len()
		h      = 2. * math.Pi / float64(N)
		center complex128
	)
	seg = &Segment{
		N:    N,
		T:    T,
		Z:    z,
		Zp:   zp,
		Zpp:  zpp,
		Sp:   utils.NewVector(N),
		Tang: utils.NewCVector(N),
		Nx:   utils.NewCVector(N),
		Cur:  utils.NewVector(N),
		W:    utils.NewVector(N),
		CW:   utils.NewCVector(N),
	}
	for i := 0; i < N; i++ {
		sp := cmplx.Abs(zp.DataP[i])
		if sp < utils.NODETOL {
			err = fmt.Errorf("degenerate parametrization: speed %v at node %d", sp, i)
			return nil, err
		}
		tang := zp.DataP[i] / complex(sp, 0)
		seg.Sp.DataP[i] = sp
		seg.Tang.DataP[i] = tang
		seg.Nx.DataP[i] = -1i * tang
		// kappa = Im(conj(zp) zpp) / sp^3
		seg.Cur.DataP[i] = imag(cmplx.Conj(zp.DataP[i])*zpp.DataP[i]) / utils.POW(sp, 3)
		seg.W.DataP[i] = sp * h
		seg.CW.DataP[i] = zp.DataP[i] * complex(h, 0)
		center += z.DataP[i]
	}
	seg.Inside = center / complex(float64(N), 0)
	return
}

// Perimeter returns the arc length of the discretized curve.
func (s *Segment) Perimeter() (p float64) {
	for _, w := range s.W.DataP {
		p += w
	}
	return
}

// Winding returns the discrete winding number of the curve about z, close to
// one for enclosed points and close to zero outside.
func (s *Segment) Winding(z complex128) float64 {
	var sum complex128
	for j, cw := range s.CW.DataP {
		sum += cw / (s.Z.DataP[j] - z)
	}
	return real(sum / complex(0, 2.*math.Pi))
}

// Encloses reports whether z lies inside the curve, by winding number. The
// test degrades for points within a few node spacings of the curve.
func (s *Segment) Encloses(z complex128) bool {
	return math.Abs(s.Winding(z)-1) < 0.5
}

func checkNodeCount(N int) (err error) {
	if N < 4 || N%2 != 0 {
		err = fmt.Errorf("node count must be even and at least 4, got %d", N)
	}
	return
}
