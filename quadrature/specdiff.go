package quadrature

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/spectralkit/gobie/utils"
)

// SpectralDiffComplex differentiates 2pi periodic samples f at N equispaced
// nodes via the FFT, returning df/dt at the same nodes. The Nyquist mode is
// zeroed, the standard choice that keeps the derivative of real data real.
func SpectralDiffComplex(f []complex128) (fp []complex128) {
	var (
		N   = len(f)
		fft = fourier.NewCmplxFFT(N)
	)
	checkN(N)
	work := make([]complex128, N)
	copy(work, f)
	coeff := fft.Coefficients(nil, work)
	for m := range coeff {
		k := math.Round(fft.Freq(m) * float64(N))
		if m == N/2 {
			k = 0
		}
		coeff[m] *= complex(0, k)
	}
	fp = fft.Sequence(nil, coeff)
	scale := complex(1/float64(N), 0)
	for i := range fp {
		fp[i] *= scale
	}
	return
}

// SpectralDiff differentiates real periodic samples using the half spectrum
// transform.
func SpectralDiff(f utils.Vector) (fp utils.Vector) {
	var (
		N   = f.Len()
		fft = fourier.NewFFT(N)
	)
	checkN(N)
	coeff := fft.Coefficients(nil, f.DataP)
	for m := range coeff {
		if m == N/2 {
			coeff[m] = 0
			continue
		}
		coeff[m] *= complex(0, float64(m))
	}
	fp = utils.NewVector(N, fft.Sequence(nil, coeff))
	fp.Scale(1 / float64(N))
	return
}

// SpectralDiffMatrix returns the dense N x N trigonometric differentiation
// matrix D with D*f equal to SpectralDiff(f) for even N.
func SpectralDiffMatrix(N int) (D utils.Matrix) {
	checkN(N)
	var (
		h = 2. * math.Pi / float64(N)
	)
	D = utils.NewMatrix(N, N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			if i == j {
				continue
			}
			sign := 1.
			if (i-j)%2 != 0 {
				sign = -1.
			}
			D.DataP[i*N+j] = 0.5 * sign / math.Tan(0.5*h*float64(i-j))
		}
	}
	return
}
