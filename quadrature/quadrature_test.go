package quadrature

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func near(a, b, tol float64) (l bool) {
	if math.Abs(a-b) <= tol {
		l = true
	}
	return
}

func TestPeriodicTrapezoid(t *testing.T) {
	// Weights tile the period
	{
		_, W := PeriodicTrapezoid(16)
		var sum float64
		for _, w := range W.DataP {
			sum += w
		}
		assert.True(t, near(sum, 2.*math.Pi, 1.e-14))
	}
	// Spectral convergence on a smooth periodic integrand:
	// integral of exp(cos t) over one period is 2 pi I0(1)
	{
		const exact = 7.954926521012845
		for _, N := range []int{8, 16, 32} {
			T, W := PeriodicTrapezoid(N)
			var sum float64
			for i := 0; i < N; i++ {
				sum += W.DataP[i] * math.Exp(math.Cos(T.DataP[i]))
			}
			err := math.Abs(sum - exact)
			fmt.Printf("N = %d, trapezoid error = %v\n", N, err)
			if N >= 16 {
				assert.True(t, near(sum, exact, 1.e-12))
			}
		}
	}
	// Odd or undersized rules are rejected
	assert.Panics(t, func() { PeriodicTrapezoid(7) })
	assert.Panics(t, func() { PeriodicTrapezoid(2) })
}

func TestSpectralDiff(t *testing.T) {
	var (
		N    = 32
		T, _ = PeriodicTrapezoid(N)
	)
	// Real samples: d/dt sin(3t) = 3 cos(3t)
	{
		f := T.Copy().Apply(func(t float64) float64 { return math.Sin(3. * t) })
		fp := SpectralDiff(f)
		for i := 0; i < N; i++ {
			assert.True(t, near(fp.DataP[i], 3.*math.Cos(3.*T.DataP[i]), 1.e-11))
		}
	}
	// Complex samples: d/dt exp(2it) = 2i exp(2it)
	{
		f := make([]complex128, N)
		for i := range f {
			f[i] = cmplx.Exp(complex(0, 2.*T.DataP[i]))
		}
		fp := SpectralDiffComplex(f)
		for i := 0; i < N; i++ {
			want := 2i * cmplx.Exp(complex(0, 2.*T.DataP[i]))
			assert.True(t, near(cmplx.Abs(fp[i]-want), 0, 1.e-11))
		}
	}
	// Dense operator agrees with the FFT path
	{
		D := SpectralDiffMatrix(N)
		f := T.Copy().Apply(func(t float64) float64 { return math.Exp(math.Sin(t)) })
		fp := SpectralDiff(f.Copy())
		Df := D.Mul(f.ToMatrix())
		for i := 0; i < N; i++ {
			assert.True(t, near(Df.DataP[i], fp.DataP[i], 1.e-10))
		}
	}
}

func TestKressLogWeights(t *testing.T) {
	var (
		N    = 16
		T, _ = PeriodicTrapezoid(N)
		R    = KressLogWeights(N)
	)
	// The log kernel annihilates constants: integral ln(4 sin^2((t-s)/2)) ds = 0
	{
		var sum float64
		for _, r := range R.DataP {
			sum += r
		}
		assert.True(t, near(sum, 0, 1.e-13))
	}
	// First harmonic: integral ln(4 sin^2((t-s)/2)) cos(s) ds = -2 pi cos(t)
	{
		A := KressLogMatrix(N)
		for i := 0; i < N; i++ {
			var sum float64
			for j := 0; j < N; j++ {
				sum += A.At(i, j) * math.Cos(T.DataP[j])
			}
			assert.True(t, near(sum, -2.*math.Pi*math.Cos(T.DataP[i]), 1.e-12))
		}
	}
}
