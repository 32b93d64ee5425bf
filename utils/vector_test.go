package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// Constant fill and chained scalar ops
	{
		v := NewVectorConstant(3, 1)
		assert.Equal(t, []float64{1, 1, 1}, v.DataP)
		v.Scale(2).Add(1)
		assert.Equal(t, []float64{3, 3, 3}, v.DataP)
	}
	// Concat
	{
		v1 := NewVector(2, []float64{1, 2})
		v2 := NewVector(3, []float64{3, 4, 5})
		v := v1.Concat(v2)
		assert.Equal(t, []float64{1, 2, 3, 4, 5}, v.DataP)
	}
	// Outer
	{
		v1 := NewVector(3, []float64{1, 2, 3})
		v2 := NewVector(2, []float64{2, 3})
		A := v1.Outer(v2)
		assert.Equal(t, []float64{
			2, 3,
			4, 6,
			6, 9,
		}, A.DataP)
	}
	// POW and MaxAbs
	{
		v := NewVector(3, []float64{-3, 1, 2})
		assert.Equal(t, 3., v.MaxAbs())
		v.POW(2)
		assert.Equal(t, []float64{9, 1, 4}, v.DataP)
	}
	// ToMatrix forms a column
	{
		v := NewVector(2, []float64{7, 8})
		M := v.ToMatrix()
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 1, nc)
		assert.Equal(t, []float64{7, 8}, M.DataP)
	}
	// Sub, Set and ElMul mutate the receiver
	{
		v := NewVector(3, []float64{5, 6, 7})
		v.Sub(NewVector(3, []float64{1, 2, 3}))
		assert.Equal(t, []float64{4, 4, 4}, v.DataP)
		v.Set(1, 0).ElMul(NewVector(3, []float64{2, 2, 2}))
		assert.Equal(t, []float64{8, 0, 8}, v.DataP)
	}
	// Extremes and Print
	{
		v := NewVector(3, []float64{-3, 1, 2})
		assert.Equal(t, -3., v.Min())
		assert.Equal(t, 2., v.Max())
		assert.Contains(t, v.Print("v"), "v =")
	}
}

func TestCMatrix(t *testing.T) {
	// Column extraction and assignment
	{
		M := NewCMatrix(2, 2, []complex128{
			1 + 1i, 2,
			3, 4 - 1i,
		})
		c := M.Col(1)
		assert.Equal(t, []complex128{2, 4 - 1i}, c.DataP)
		M.SetCol(0, []complex128{5, 6})
		assert.Equal(t, complex128(5), M.At(0, 0))
		assert.Equal(t, complex128(6), M.At(1, 0))
	}
	// Real / Imag split
	{
		M := NewCMatrix(1, 2, []complex128{3 + 4i, -1 - 2i})
		assert.Equal(t, []float64{3, -1}, M.Real().DataP)
		assert.Equal(t, []float64{4, -2}, M.Imag().DataP)
	}
	// Elementwise add / subtract, Apply and Set
	{
		M := NewCMatrix(1, 2, []complex128{1 + 1i, 2})
		A := NewCMatrix(1, 2, []complex128{1i, 1})
		M.Add(A)
		assert.Equal(t, []complex128{1 + 2i, 3}, M.DataP)
		M.Subtract(A).Apply(func(v complex128) complex128 { return 2 * v })
		assert.Equal(t, []complex128{2 + 2i, 4}, M.DataP)
		M.Set(0, 1, 5i)
		assert.Equal(t, 5i, M.At(0, 1))
	}
	// CVector ops
	{
		v := NewCVector(2, []complex128{1 + 1i, 2})
		v.Scale(1i)
		assert.Equal(t, []complex128{-1 + 1i, 2i}, v.DataP)
	}
	// CVector arithmetic chain
	{
		v := NewCVector(2, []complex128{1, 2i})
		v.Add(NewCVector(2, []complex128{1i, 1}))
		assert.Equal(t, []complex128{1 + 1i, 1 + 2i}, v.DataP)
		v.Sub(NewCVector(2, []complex128{1 + 1i, 1}))
		assert.Equal(t, []complex128{0, 2i}, v.DataP)
		v.Apply(func(z complex128) complex128 { return z * z })
		assert.Equal(t, []complex128{0, -4}, v.DataP)
		assert.Equal(t, complex128(-4), v.AtVec(1))
	}
}

func TestPartitionMap(t *testing.T) {
	// Buckets tile the index space with max imbalance of one
	for _, maxIndex := range []int{7, 32, 287} {
		pm := NewPartitionMap(4, maxIndex)
		var total, minDim, maxDim int
		minDim = maxIndex
		for n := 0; n < pm.ParallelDegree; n++ {
			dim := pm.GetBucketDimension(n)
			total += dim
			if dim < minDim {
				minDim = dim
			}
			if dim > maxDim {
				maxDim = dim
			}
		}
		assert.Equal(t, maxIndex, total)
		assert.LessOrEqual(t, maxDim-minDim, 1)
	}
	// Degree is clamped so no bucket is empty
	pm := NewPartitionMap(16, 3)
	assert.Equal(t, 3, pm.ParallelDegree)
}
