// Package laplace assembles dense Nystrom matrices and close evaluation
// corrections for the Laplace layer potentials on closed curves. The double
// layer potential of a density sigma on curve S is
//
//	u(x) = (1/2pi) integral over S of ((x-y).n(y) / |x-y|^2) sigma(y) ds(y)
//
// discretized with the periodic trapezoid rule over the curve nodes. Native
// quadrature is spectrally accurate on the curve (with the analytic diagonal
// substitution) and away from it, but loses digits for targets within a few
// node spacings of the curve; CloseGlobal recovers those digits with the
// Helsing-Ojala compensated scheme.
package laplace

import (
	"errors"
)

// ErrSelfEvalUnsupported marks output requests whose kernel has no
// implemented self interaction limit. Gradient (and any hypersingular)
// self evaluation is rejected rather than silently returning the
// singular native formula.
var ErrSelfEvalUnsupported = errors.New("self evaluation is not supported for this output")
