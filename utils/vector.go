package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		V:     v,
		DataP: v.RawVector().Data,
	}
	return
}

func NewVectorConstant(n int, val float64) (R Vector) {
	R = NewVector(n)
	for i := range R.DataP {
		R.DataP[i] = val
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Copy() (R Vector) {
	var (
		dataR = make([]float64, v.Len())
	)
	copy(dataR, v.DataP)
	R = NewVector(v.Len(), dataR)
	return
}

// Chainable (extended) methods
func (v Vector) Sub(a Vector) Vector { v.V.SubVec(v.V, a.V); return v }

func (v Vector) Add(a float64) Vector {
	for i := range v.DataP {
		v.DataP[i] += a
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v Vector) Set(i int, val float64) Vector {
	i = lim(i, v.Len())
	v.DataP[i] = val
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = POW(val, p)
	}
	return v
}

func (v Vector) ElMul(a Vector) Vector {
	for i, val := range a.DataP {
		v.DataP[i] *= val
	}
	return v
}

func (v Vector) Min() (min float64) {
	min = v.DataP[0]
	for _, val := range v.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) MaxAbs() (max float64) {
	for _, val := range v.DataP {
		if aval := math.Abs(val); aval > max {
			max = aval
		}
	}
	return
}

// Concat returns a new vector composed of v followed by a.
func (v Vector) Concat(a Vector) (R Vector) {
	var (
		N     = v.Len() + a.Len()
		dataR = make([]float64, N)
	)
	copy(dataR, v.DataP)
	copy(dataR[v.Len():], a.DataP)
	R = NewVector(N, dataR)
	return
}

// ToMatrix returns a copy of v as an Nx1 column matrix.
func (v Vector) ToMatrix() (R Matrix) {
	var (
		dataR = make([]float64, v.Len())
	)
	copy(dataR, v.DataP)
	R = NewMatrix(v.Len(), 1, dataR)
	return
}

// Outer returns the outer product of v with a.
func (v Vector) Outer(a Vector) (R Matrix) {
	var (
		nr, nc = v.Len(), a.Len()
	)
	R = NewMatrix(nr, nc)
	for i, vVal := range v.DataP {
		for j, aVal := range a.DataP {
			R.DataP[i*nc+j] = vVal * aVal
		}
	}
	return
}

func (v Vector) Print(msgI ...string) (o string) {
	var msg string
	if len(msgI) != 0 {
		msg = msgI[0]
	}
	formatString := "%s = \n%8.4f\n"
	o = fmt.Sprintf(formatString, msg, mat.Formatted(v.V, mat.Squeeze()))
	fmt.Print(o)
	return
}
