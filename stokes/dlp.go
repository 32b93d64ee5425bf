package stokes

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/utils"
)

// Matrices holds the dense kernel matrices of one assembly. Vel maps a 2N
// density vector to 2M target velocities, Pres to M pressures, Trac to 2M
// traction components. Matrices not requested stay empty.
type Matrices struct {
	Vel  utils.Matrix // 2M x 2N
	Pres utils.Matrix // M x 2N
	Trac utils.Matrix // 2M x 2N
}

// DLPMatrices assembles the requested kernel matrices for the Stokes double
// layer potential of viscosity mu,
//
//	u_a(x) = (1/pi) integral of r_a r_b (r.n) / |r|^4 sigma_b(y) ds(y)
//
// with r = x - y and n the outward source normal, quadrature weights folded
// into the columns. Self evaluation (tg aliasing seg) substitutes the
// analytic velocity diagonal limit -kappa_j/(2pi) t (x) t * w_j; pressure and
// traction have no such limit and return ErrSelfEvalUnsupported when
// requested on self targets. Traction needs target normals.
//
// Target rows are partitioned across goroutines; rows are independent so no
// ordering between blocks is guaranteed or required.
func DLPMatrices(tg *geom2D.Targets, seg *geom2D.Segment, mu float64, flags Flags) (K Matrices, err error) {
	var (
		M, N = tg.Len(), seg.N
		self = tg.IsSelf(seg)
	)
	if flags.Has(Pressure|Traction) && self {
		err = fmt.Errorf("stokes pressure/traction: %w", ErrSelfEvalUnsupported)
		return
	}
	if flags.Has(Traction) && !tg.HasNormals() {
		err = fmt.Errorf("stokes traction: %w", ErrMissingNormals)
		return
	}
	K.Vel = utils.NewMatrix(2*M, 2*N)
	if flags.Has(Pressure) {
		K.Pres = utils.NewMatrix(M, 2*N)
	}
	if flags.Has(Traction) {
		K.Trac = utils.NewMatrix(2*M, 2*N)
	}
	var (
		pm = utils.NewPartitionMap(runtime.NumCPU(), M)
		wg sync.WaitGroup
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				assembleRow(&K, tg, seg, mu, flags, i, self)
			}
		}(np)
	}
	wg.Wait()
	return
}

// assembleRow fills the target row i of every requested matrix.
func assembleRow(K *Matrices, tg *geom2D.Targets, seg *geom2D.Segment, mu float64, flags Flags, i int, self bool) {
	var (
		N  = seg.N
		M  = tg.Len()
		x  = tg.Z[i]
		mx [2]float64
	)
	if tg.HasNormals() {
		mx[0], mx[1] = real(tg.Nx[i]), imag(tg.Nx[i])
	}
	for j, y := range seg.Z.DataP {
		var (
			w  = seg.W.DataP[j]
			nj = [2]float64{real(seg.Nx.DataP[j]), imag(seg.Nx.DataP[j])}
		)
		if self && i == j {
			// Analytic diagonal limit of the stresslet kernel. The off
			// diagonal entries share one scalar, written once so the two
			// blocks stay bitwise identical.
			var (
				t   = [2]float64{real(seg.Tang.DataP[j]), imag(seg.Tang.DataP[j])}
				c   = -seg.Cur.DataP[j] / (2. * math.Pi) * w
				off = c * t[0] * t[1]
			)
			K.Vel.DataP[i*2*N+j] = c * t[0] * t[0]
			K.Vel.DataP[i*2*N+j+N] = off
			K.Vel.DataP[(i+M)*2*N+j] = off
			K.Vel.DataP[(i+M)*2*N+j+N] = c * t[1] * t[1]
			continue
		}
		var (
			r    = [2]float64{real(x - y), imag(x - y)}
			rho2 = r[0]*r[0] + r[1]*r[1]
			d    = r[0]*nj[0] + r[1]*nj[1]
			cvel = d / (math.Pi * rho2 * rho2) * w
			off  = cvel * r[0] * r[1]
		)
		K.Vel.DataP[i*2*N+j] = cvel * r[0] * r[0]
		K.Vel.DataP[i*2*N+j+N] = off
		K.Vel.DataP[(i+M)*2*N+j] = off
		K.Vel.DataP[(i+M)*2*N+j+N] = cvel * r[1] * r[1]
		if flags.Has(Pressure) {
			cp := mu / math.Pi * w
			for b := 0; b < 2; b++ {
				K.Pres.DataP[i*2*N+j+b*N] = cp * (-nj[b]/rho2 + 2.*r[b]*d/(rho2*rho2))
			}
		}
		if flags.Has(Traction) {
			var (
				rm = r[0]*mx[0] + r[1]*mx[1]
				nm = nj[0]*mx[0] + nj[1]*mx[1]
				ct = mu / math.Pi * w
			)
			for a := 0; a < 2; a++ {
				for b := 0; b < 2; b++ {
					var del float64
					if a == b {
						del = 1
					}
					val := mx[a]*nj[b]/rho2 +
						(d*r[a]*mx[b]+d*rm*del+nm*r[a]*r[b]+rm*nj[a]*r[b])/(rho2*rho2) -
						8.*d*rm*r[a]*r[b]/(rho2*rho2*rho2)
					K.Trac.DataP[(i+a*M)*2*N+j+b*N] = ct * val
				}
			}
		}
	}
}
