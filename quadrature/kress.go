package quadrature

import (
	"math"

	"github.com/spectralkit/gobie/utils"
)

// KressLogWeights returns the circulant weights R of the Martensen-Kuhnau
// quadrature for the periodic logarithmic kernel,
//
//	integral 0..2pi of ln(4 sin^2((t-s)/2)) f(s) ds  ~=  sum_j R[|i-j| mod N] f(t_j)
//
// at the equispaced nodes t_i. The rule is spectrally accurate for smooth
// periodic f and underpins the single layer self interaction matrix.
func KressLogWeights(N int) (R utils.Vector) {
	checkN(N)
	var (
		n = N / 2
		h = 2. * math.Pi / float64(N)
	)
	R = utils.NewVector(N)
	for k := 0; k < N; k++ {
		var sum float64
		for m := 1; m < n; m++ {
			sum += math.Cos(float64(m*k)*h) / float64(m)
		}
		sign := 1.
		if k%2 != 0 {
			sign = -1.
		}
		R.DataP[k] = -2.*math.Pi*sum/float64(n) - sign*math.Pi/float64(n*n)
	}
	return
}

// KressLogMatrix expands the circulant weights into a dense N x N matrix with
// entries R[|i-j| mod N].
func KressLogMatrix(N int) (A utils.Matrix) {
	var (
		R = KressLogWeights(N)
	)
	A = utils.NewMatrix(N, N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			k := i - j
			if k < 0 {
				k = -k
			}
			A.DataP[i*N+j] = R.DataP[k]
		}
	}
	return
}
