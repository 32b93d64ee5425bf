package laplace

import (
	"fmt"
	"math"

	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/quadrature"
	"github.com/spectralkit/gobie/utils"
)

// DLPMatrix returns the M x N matrix A mapping double layer density values at
// the nodes of seg to potential values at the targets, quadrature weights
// folded into the columns. When tg aliases seg (self evaluation by identity,
// never by proximity) the singular diagonal is replaced by its analytic
// limit -kappa_j/(4pi) * w_j, the Nystrom self interaction correction, so
// that A represents the principal value operator on the curve.
func DLPMatrix(tg *geom2D.Targets, seg *geom2D.Segment) (A utils.Matrix) {
	var (
		M, N = tg.Len(), seg.N
		self = tg.IsSelf(seg)
	)
	A = utils.NewMatrix(M, N)
	for i, x := range tg.Z {
		for j, y := range seg.Z.DataP {
			if self && i == j {
				A.DataP[i*N+j] = -seg.Cur.DataP[j] / (4. * math.Pi) * seg.W.DataP[j]
				continue
			}
			r := x - y
			rho2 := real(r)*real(r) + imag(r)*imag(r)
			d := real(r)*real(seg.Nx.DataP[j]) + imag(r)*imag(seg.Nx.DataP[j])
			A.DataP[i*N+j] = d / (2. * math.Pi * rho2) * seg.W.DataP[j]
		}
	}
	return
}

// DLPGradMatrices returns the M x N matrices Ax, Ay mapping density values to
// the first partials of the double layer potential at the targets. There is
// no analytic self limit for the gradient kernel, so self evaluation requests
// return ErrSelfEvalUnsupported.
func DLPGradMatrices(tg *geom2D.Targets, seg *geom2D.Segment) (Ax, Ay utils.Matrix, err error) {
	var (
		M, N = tg.Len(), seg.N
	)
	if tg.IsSelf(seg) {
		err = fmt.Errorf("laplace gradient: %w", ErrSelfEvalUnsupported)
		return
	}
	Ax, Ay = utils.NewMatrix(M, N), utils.NewMatrix(M, N)
	for i, x := range tg.Z {
		for j, y := range seg.Z.DataP {
			var (
				r     = x - y
				rx    = real(r)
				ry    = imag(r)
				nx    = real(seg.Nx.DataP[j])
				ny    = imag(seg.Nx.DataP[j])
				rho2  = rx*rx + ry*ry
				d     = rx*nx + ry*ny
				scale = seg.W.DataP[j] / (2. * math.Pi)
			)
			Ax.DataP[i*N+j] = scale * (nx/rho2 - 2.*rx*d/(rho2*rho2))
			Ay.DataP[i*N+j] = scale * (ny/rho2 - 2.*ry*d/(rho2*rho2))
		}
	}
	return
}

// SLPMatrix returns the M x N matrix for the single layer potential
//
//	u(x) = -(1/2pi) integral of ln|x-y| sigma(y) ds(y)
//
// Off the curve the native rule applies. On the curve (tg aliasing seg) the
// logarithmic singularity is integrated with the Martensen-Kussmaul split:
// the periodic log kernel gets the circulant Kress weights, the smooth
// remainder the trapezoid rule, keeping spectral accuracy through the
// singularity.
func SLPMatrix(tg *geom2D.Targets, seg *geom2D.Segment) (A utils.Matrix) {
	var (
		M, N = tg.Len(), seg.N
		h    = 2. * math.Pi / float64(N)
	)
	A = utils.NewMatrix(M, N)
	if !tg.IsSelf(seg) {
		for i, x := range tg.Z {
			for j, y := range seg.Z.DataP {
				r := x - y
				rho := math.Hypot(real(r), imag(r))
				A.DataP[i*N+j] = -math.Log(rho) / (2. * math.Pi) * seg.W.DataP[j]
			}
		}
		return
	}
	R := quadrature.KressLogWeights(N)
	for i, x := range tg.Z {
		for j, y := range seg.Z.DataP {
			k := i - j
			if k < 0 {
				k = -k
			}
			var smooth float64
			if i == j {
				// ln(|z_i-z_j| / 2|sin((t_i-t_j)/2)|) -> ln(speed)
				smooth = math.Log(seg.Sp.DataP[j])
			} else {
				rho := math.Hypot(real(x-y), imag(x-y))
				sin := math.Abs(math.Sin(0.5 * float64(i-j) * h))
				smooth = math.Log(rho / (2. * sin))
			}
			A.DataP[i*N+j] = -(0.5*R.DataP[k] + h*smooth) / (2. * math.Pi) * seg.Sp.DataP[j]
		}
	}
	return
}
