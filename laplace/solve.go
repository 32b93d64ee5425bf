package laplace

import (
	"fmt"

	"github.com/spectralkit/gobie/geom2D"
	"github.com/spectralkit/gobie/utils"
)

// SolveInteriorDirichlet solves the interior Laplace Dirichlet problem on the
// region bounded by seg with a double layer ansatz u = D sigma. The interior
// boundary limit gives the second kind system
//
//	(-I/2 + A) sigma = f
//
// with A the self corrected DLP matrix, solved densely by LU. f may carry
// multiple boundary condition columns; sigma comes back column for column.
// The resulting density is evaluated off the curve with DLPMatrix or, near
// the curve, CloseGlobal with the Interior side.
func SolveInteriorDirichlet(seg *geom2D.Segment, f utils.Matrix) (sigma utils.Matrix, err error) {
	var (
		nr, _ = f.Dims()
		N     = seg.N
	)
	if nr != N {
		err = fmt.Errorf("boundary data has %d rows, segment has %d nodes", nr, N)
		return
	}
	A := DLPMatrix(geom2D.SelfTargets(seg), seg).Subtract(utils.NewDiagMatrix(N, nil, 0.5))
	if sigma, err = A.LUSolve(f); err != nil {
		err = fmt.Errorf("dirichlet solve: %w", err)
	}
	return
}
