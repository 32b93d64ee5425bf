package stokes

import (
	"fmt"

	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/utils"
)

// Result carries the fields of one evaluation. Vel is 2M x K for K density
// columns; Pres is M x K; Trac is 2M x K. Fields not requested stay empty.
type Result struct {
	Vel  utils.Matrix
	Pres utils.Matrix
	Trac utils.Matrix
}

// Eval applies the double layer kernel matrices to the density columns and
// returns exactly the fields requested by flags. sigma has 2N rows (x
// components stacked over y components) and any number of columns; columns
// are independent and come back column for column identical to separate
// calls. Eval is pure composition over DLPMatrices, so its output matches a
// caller doing the matrix multiply directly.
func Eval(seg *geom2D.Segment, sigma utils.Matrix, tg *geom2D.Targets, mu float64, flags Flags) (res Result, err error) {
	var (
		nr, _ = sigma.Dims()
	)
	if nr != 2*seg.N {
		err = fmt.Errorf("density has %d rows, want %d (2 components x %d nodes)", nr, 2*seg.N, seg.N)
		return
	}
	K, err := DLPMatrices(tg, seg, mu, flags)
	if err != nil {
		return
	}
	res.Vel = K.Vel.Mul(sigma)
	if flags.Has(Pressure) {
		res.Pres = K.Pres.Mul(sigma)
	}
	if flags.Has(Traction) {
		res.Trac = K.Trac.Mul(sigma)
	}
	return
}
