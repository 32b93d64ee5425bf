package utils

import (
	"fmt"

	"gonum.org/v1/gonum/lapack/lapack64"

	"gonum.org/v1/gonum/blas/blas64"

	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	DataP    []float64
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
		name:  "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewDiagMatrix returns a square matrix with diag on the main diagonal, or a
// constant diagonal of scalar[0] when diag is nil.
func NewDiagMatrix(nr int, diag []float64, scalar ...float64) (R Matrix) {
	R = NewMatrix(nr, nr)
	switch {
	case diag != nil:
		if len(diag) != nr {
			err := fmt.Errorf("mismatch in allocation: NewDiagMatrix nr = %v, len(diag) = %v\n", nr, len(diag))
			panic(err)
		}
		for i, val := range diag {
			R.DataP[i*(nr+1)] = val
		}
	case len(scalar) != 0:
		for i := 0; i < nr; i++ {
			R.DataP[i*(nr+1)] = scalar[0]
		}
	default:
		panic("must provide either diagonal data or a scalar fill value")
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) IsEmpty() bool { return m.M == nil }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) Slice(I, K, J, L int) (R Matrix) { // Does not change receiver
	var (
		nrR   = K - I
		ncR   = L - J
		_, nc = m.Dims()
		dataR = make([]float64, nrR*ncR)
		dataM = m.DataP
	)
	for i := I; i < K; i++ {
		for j := J; j < L; j++ {
			dataR[(i-I)*ncR+(j-J)] = dataM[i*nc+j]
		}
	}
	R = NewMatrix(nrR, ncR, dataR)
	return
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[j*nr+i] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

func (m Matrix) SliceRows(I Index) (R Matrix) { // Does not change receiver
	// I should contain a list of row indices into M
	var (
		nr, nc   = m.Dims()
		nI       = len(I)
		maxIndex = nr - 1
	)
	R = NewMatrix(nI, nc)
	for iNewRow, i := range I {
		if i > maxIndex || i < 0 {
			fmt.Printf("index out of bounds: index = %d, max_bounds = %d\n", i, maxIndex)
			panic("unable to subset rows from matrix")
		}
		R.M.SetRow(iNewRow, m.M.RawRowView(i))
	}
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	i, j = lim(i, nr), lim(j, nc)
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	var (
		_, nc = m.Dims()
	)
	j = lim(j, nc)
	m.checkWritable()
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	var (
		nr, _ = m.Dims()
	)
	i = lim(i, nr)
	m.checkWritable()
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range A.DataP {
		m.DataP[i] += val
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range A.DataP {
		m.DataP[i] -= val
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.checkWritable()
	for i := range m.DataP {
		m.DataP[i] *= a
	}
	return m
}

func (m Matrix) AddScalar(a float64) Matrix { // Changes receiver
	m.checkWritable()
	for i := range m.DataP {
		m.DataP[i] += a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range m.DataP {
		m.DataP[i] = f(val)
	}
	return m
}

func (m Matrix) POW(p int) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range m.DataP {
		m.DataP[i] = POW(val, p)
	}
	return m
}

func (m Matrix) ElMul(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	for i, val := range A.DataP {
		m.DataP[i] *= val
	}
	return m
}

// Non chainable methods

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// LUSolve solves m * X = B for X using an LU factorization of m.
func (m Matrix) LUSolve(B Matrix) (X Matrix, err error) {
	var (
		nrB, ncB = B.Dims()
		lu       mat.LU
	)
	X = NewMatrix(nrB, ncB)
	lu.Factorize(m.M)
	if err = lu.SolveTo(X.M, false, B.M); err != nil {
		err = fmt.Errorf("unable to solve linear system: %w", err)
	}
	return
}

func (m Matrix) Col(j int) Vector {
	var (
		nr, nc = m.M.Dims()
		vData  = make([]float64, nr)
	)
	j = lim(j, nc)
	for i := range vData {
		vData[i] = m.DataP[i*nc+j]
	}
	return NewVector(nr, vData)
}

func (m Matrix) Row(i int) Vector {
	var (
		nr, nc = m.M.Dims()
		vData  = make([]float64, nc)
	)
	i = lim(i, nr)
	for j := range vData {
		vData[j] = m.DataP[j+i*nc]
	}
	return NewVector(nc, vData)
}

func (m Matrix) Min() (min float64) {
	min = m.DataP[0]
	for _, val := range m.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	max = m.DataP[0]
	for _, val := range m.DataP {
		if val > max {
			max = val
		}
	}
	return
}

// MaxAbs returns the largest absolute value in the matrix.
func (m Matrix) MaxAbs() (max float64) {
	for _, val := range m.DataP {
		if val < 0 {
			val = -val
		}
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) Print(msgI ...string) (o string) {
	var msg string
	if len(msgI) != 0 {
		msg = msgI[0]
	}
	formatString := "%s = \n%8.4f\n"
	o = fmt.Sprintf(formatString, msg, mat.Formatted(m.M, mat.Squeeze()))
	fmt.Print(o)
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func lim(i, imax int) int {
	if i < 0 {
		return imax + i // Support indexing from end, -1 is imax
	}
	return i
}
