/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"fmt"
	"math/big"

	"github.com/fentec-project/gohibe/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major.
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c *big.Int) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make([]*big.Int, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// CheckBound checks whether the absolute values of all matrix elements
// are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound.
func (m Matrix) CheckBound(bound *big.Int) error {
	for _, v := range m {
		err := v.CheckBound(bound)
		if err != nil {
			return err
		}
	}
	return nil
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// Mod applies the element-wise modulo operation on matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Mod(modulo *big.Int) Matrix {
	vectors := make([]Vector, m.Rows())

	for i, v := range m {
		vectors[i] = v.Mod(modulo)
	}

	matrix, _ := NewMatrix(vectors)

	return matrix
}

// Apply applies an element-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(*big.Int) *big.Int) Matrix {
	res := make(Matrix, len(m))

	for i, vi := range m {
		res[i] = vi.Apply(f)
	}

	return res
}

// Dot calculates the dot product (inner product) of matrices m and other,
// which we define as the sum of the dot product of rows of both matrices.
// It returns an error if m and other have different dimensions.
func (m Matrix) Dot(other Matrix) (*big.Int, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	r := new(big.Int)

	for i := 0; i < m.Rows(); i++ {
		prod, err := m[i].Dot(other[i])
		if err != nil {
			return nil, err
		}
		r = r.Add(r, prod)
	}

	return r, nil
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	vectors := make([]Vector, m.Rows())

	for i, v := range m {
		vectors[i] = v.Add(other[i])
	}

	matrix, err := NewMatrix(vectors)
	if err != nil {
		return nil, err
	}
	return matrix, nil
}

// Sub subtracts matrix other from matrix m.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	vecs := make([]Vector, m.Rows())

	for i, v := range m {
		vecs[i] = v.Sub(other[i])
	}

	return NewMatrix(vecs)
}

// Mul multiplies matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if the number of columns of m differs from the
// number of rows of other.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("cannot multiply matrices")
	}

	prod := make([]Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		prod[i] = make([]*big.Int, other.Cols())
		for j := 0; j < other.Cols(); j++ {
			otherCol, _ := other.GetCol(j)
			prod[i][j], _ = m[i].Dot(otherCol)
		}
	}

	return NewMatrix(prod)
}

// MulScalar multiplies elements of matrix m by a scalar x.
// The result is returned in a new Matrix.
func (m Matrix) MulScalar(x *big.Int) Matrix {
	return m.Apply(func(i *big.Int) *big.Int {
		return new(big.Int).Mul(i, x)
	})
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the number
// of elements of v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, fmt.Errorf("cannot multiply matrix by a vector")
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		res[i], _ = row.Dot(v)
	}

	return res, nil
}

// MulG1 calculates m * [bn256.G1] and returns the
// result in a new MatrixG1 instance.
func (m Matrix) MulG1() MatrixG1 {
	prod := make(MatrixG1, len(m))
	for i := range prod {
		prod[i] = m[i].MulG1()
	}

	return prod
}

// MulG2 calculates m * [bn256.G2] and returns the
// result in a new MatrixG2 instance.
func (m Matrix) MulG2() MatrixG2 {
	prod := make(MatrixG2, len(m))
	for i := range prod {
		prod[i] = m[i].MulG2()
	}

	return prod
}

// GaussianElimination uses Gaussian elimination to transform a matrix
// into an equivalent upper triangular form
func (m Matrix) GaussianElimination(p *big.Int) (Matrix, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("the matrix should not be empty")
	}

	// we copy matrix m into res
	res := make(Matrix, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		res[i] = make(Vector, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			res[i][j] = new(big.Int).Set(m[i][j])
		}
	}

	// res is transformed to be in the upper triangular form
	h, k := 0, 0
	for h < m.Rows() && k < res.Cols() {
		zero := true
		for i := h; i < m.Rows(); i++ {
			if res[i][k].Sign() != 0 {
				res[h], res[i] = res[i], res[h]
				zero = false
				break
			}
		}
		if zero {
			k++
			continue
		}
		mHKInv := new(big.Int).ModInverse(res[h][k], p)
		for i := h + 1; i < m.Rows(); i++ {
			f := new(big.Int).Mul(mHKInv, res[i][k])
			res[i][k] = big.NewInt(0)
			for j := k + 1; j < res.Cols(); j++ {
				res[i][j].Sub(res[i][j], new(big.Int).Mul(f, res[h][j]))
				res[i][j].Mod(res[i][j], p)
			}
		}
		k++
		h++
	}

	return res, nil
}

// InverseModGauss returns the inverse matrix of m in the group Z_p.
// The algorithm uses Gaussian elimination. It also returns the product
// of the pivots mod p, which equals the determinant up to sign (row
// swaps are not tracked). In case the matrix is not invertible it
// returns an error.
func (m Matrix) InverseModGauss(p *big.Int) (Matrix, *big.Int, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, nil, fmt.Errorf("the matrix should not be empty")
	}
	if m.Rows() != m.Cols() {
		return nil, nil, fmt.Errorf("the number of rows must equal the number of columns")
	}

	// we copy matrix m into matExt and extend it with identity
	matExt := make(Matrix, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		matExt[i] = make(Vector, m.Cols()*2)
		for j := 0; j < m.Cols(); j++ {
			matExt[i][j] = new(big.Int).Set(m[i][j])
		}
		for j := m.Cols(); j < 2*m.Cols(); j++ {
			if i+m.Cols() == j {
				matExt[i][j] = big.NewInt(1)
			} else {
				matExt[i][j] = big.NewInt(0)
			}

		}
	}

	triang, err := matExt.GaussianElimination(p)
	if err != nil {
		return nil, nil, err
	}

	// check if the inverse can be computed
	det := big.NewInt(1)
	for i := 0; i < matExt.Rows(); i++ {
		det.Mul(det, triang[i][i])
		det.Mod(det, p)
	}
	if det.Sign() == 0 {
		return nil, det, fmt.Errorf("matrix non-invertable")
	}

	// use the upper triangular form to obtain the solution
	matInv := make(Matrix, m.Rows())
	for k := 0; k < m.Rows(); k++ {
		matInv[k] = make(Vector, m.Cols())
		for i := m.Rows() - 1; i >= 0; i-- {
			for j := m.Rows() - 1; j >= 0; j-- {
				if matInv[k][j] == nil {
					tmpSum, _ := triang[i][j+1 : m.Cols()].Dot(matInv[k][j+1:])
					matInv[k][j] = new(big.Int).Sub(triang[i][m.Cols()+k], tmpSum)
					mHKInv := new(big.Int).ModInverse(triang[i][j], p)
					matInv[k][j].Mul(matInv[k][j], mHKInv)
					matInv[k][j].Mod(matInv[k][j], p)
					break
				}
			}
		}
	}

	return matInv.Transpose(), det, nil
}
