// Package stokes assembles dense Nystrom matrices for the Stokes double
// layer potential on closed curves and evaluates velocity, pressure and
// traction fields from boundary densities. Vector densities and outputs are
// stored node fast, component slow: all x components first, then all y
// components, never interleaved.
package stokes

import (
	"errors"
)

var (
	// ErrSelfEvalUnsupported marks pressure or traction requests with the
	// targets aliasing the source curve. Only the velocity kernel has an
	// analytic self interaction limit; the others would silently return the
	// singular native formula, so the request is rejected instead.
	ErrSelfEvalUnsupported = errors.New("self evaluation is not supported for this output")
	// ErrMissingNormals marks traction requests on targets built without
	// normals.
	ErrMissingNormals = errors.New("targets carry no normals")
)

// Flags selects which output matrices or fields a call produces. Velocity is
// always implied.
type Flags uint8

const (
	Velocity Flags = 1 << iota
	Pressure
	Traction
)

func (f Flags) Has(g Flags) bool { return f&g != 0 }
