package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// CMatrix mirrors Matrix for complex128 element types. The boundary integral
// kernels work in the complex plane, so dense complex storage gets the same
// chainable treatment as the real case.
type CMatrix struct {
	M     *mat.CDense
	DataP []complex128
}

func NewCMatrix(nr, nc int, dataO ...[]complex128) (R CMatrix) {
	var m *mat.CDense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewCMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewCDense(nr, nc, dataO[0])
	} else {
		m = mat.NewCDense(nr, nc, make([]complex128, nr*nc))
	}
	R = CMatrix{
		M:     m,
		DataP: m.RawCMatrix().Data,
	}
	return
}

func (m CMatrix) Dims() (r, c int)             { return m.M.Dims() }
func (m CMatrix) At(i, j int) complex128       { return m.M.At(i, j) }
func (m CMatrix) RawCMatrix() cblas128.General { return m.M.RawCMatrix() }

func (m CMatrix) IsEmpty() bool { return m.M == nil }

func (m CMatrix) Copy() (R CMatrix) {
	var (
		nr, nc = m.Dims()
		dataR  = make([]complex128, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewCMatrix(nr, nc, dataR)
	return
}

func (m CMatrix) Set(i, j int, val complex128) CMatrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m CMatrix) Add(A CMatrix) CMatrix { // Changes receiver
	for i, val := range A.DataP {
		m.DataP[i] += val
	}
	return m
}

func (m CMatrix) Subtract(A CMatrix) CMatrix { // Changes receiver
	for i, val := range A.DataP {
		m.DataP[i] -= val
	}
	return m
}

func (m CMatrix) Scale(a complex128) CMatrix { // Changes receiver
	for i := range m.DataP {
		m.DataP[i] *= a
	}
	return m
}

func (m CMatrix) Apply(f func(complex128) complex128) CMatrix { // Changes receiver
	for i, val := range m.DataP {
		m.DataP[i] = f(val)
	}
	return m
}

func (m CMatrix) Col(j int) (R CVector) {
	var (
		nr, nc = m.Dims()
	)
	j = lim(j, nc)
	R = NewCVector(nr)
	for i := range R.DataP {
		R.DataP[i] = m.DataP[i*nc+j]
	}
	return
}

func (m CMatrix) SetCol(j int, data []complex128) CMatrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	j = lim(j, nc)
	if len(data) != nr {
		err := fmt.Errorf("mismatch in column assignment: nr = %v, len(data) = %v\n", nr, len(data))
		panic(err)
	}
	for i, val := range data {
		m.DataP[i*nc+j] = val
	}
	return m
}

// Real returns the real parts as a new Matrix.
func (m CMatrix) Real() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	for i, val := range m.DataP {
		R.DataP[i] = real(val)
	}
	return
}

// Imag returns the imaginary parts as a new Matrix.
func (m CMatrix) Imag() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	for i, val := range m.DataP {
		R.DataP[i] = imag(val)
	}
	return
}

// CVector is a dense complex column vector in the style of Vector.
type CVector struct {
	DataP []complex128
}

func NewCVector(n int, dataO ...[]complex128) (R CVector) {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewCVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		R = CVector{DataP: dataO[0]}
	} else {
		R = CVector{DataP: make([]complex128, n)}
	}
	return
}

func (v CVector) Len() int               { return len(v.DataP) }
func (v CVector) AtVec(i int) complex128 { return v.DataP[i] }

func (v CVector) Copy() (R CVector) {
	var (
		dataR = make([]complex128, v.Len())
	)
	copy(dataR, v.DataP)
	R = NewCVector(v.Len(), dataR)
	return
}

func (v CVector) Scale(a complex128) CVector {
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v CVector) Add(a CVector) CVector {
	for i, val := range a.DataP {
		v.DataP[i] += val
	}
	return v
}

func (v CVector) Sub(a CVector) CVector {
	for i, val := range a.DataP {
		v.DataP[i] -= val
	}
	return v
}

func (v CVector) Apply(f func(complex128) complex128) CVector {
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

// ToCMatrix returns a copy of v as an Nx1 complex column matrix.
func (v CVector) ToCMatrix() (R CMatrix) {
	var (
		dataR = make([]complex128, v.Len())
	)
	copy(dataR, v.DataP)
	R = NewCMatrix(v.Len(), 1, dataR)
	return
}

// Real returns the real parts as a new Vector.
func (v CVector) Real() (R Vector) {
	R = NewVector(v.Len())
	for i, val := range v.DataP {
		R.DataP[i] = real(val)
	}
	return
}

// Imag returns the imaginary parts as a new Vector.
func (v CVector) Imag() (R Vector) {
	R = NewVector(v.Len())
	for i, val := range v.DataP {
		R.DataP[i] = imag(val)
	}
	return
}
