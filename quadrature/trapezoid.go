// Package quadrature builds the periodic quadrature rules and spectral
// differentiation operators used by the boundary integral kernels. All rules
// live on the standard parameter interval [0, 2pi) with N equispaced nodes.
package quadrature

import (
	"fmt"
	"math"

	"github.com/spectralkit/gobie/utils"
)

// PeriodicTrapezoid returns the nodes T and weights W of the N point periodic
// trapezoid rule on [0, 2pi). For smooth periodic integrands the rule
// converges spectrally.
func PeriodicTrapezoid(N int) (T, W utils.Vector) {
	checkN(N)
	var (
		h = 2. * math.Pi / float64(N)
	)
	T, W = utils.NewVector(N), utils.NewVector(N)
	for i := 0; i < N; i++ {
		T.DataP[i] = h * float64(i)
		W.DataP[i] = h
	}
	return
}

func checkN(N int) {
	if N < 4 || N%2 != 0 {
		err := fmt.Errorf("node count must be even and at least 4, got %d", N)
		panic(err)
	}
}
