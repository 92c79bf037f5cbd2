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

package hibe

import (
	"github.com/fentec-project/bn256"
	"github.com/fentec-project/gohibe/data"
	"github.com/fentec-project/gohibe/internal"
	"github.com/fentec-project/gohibe/sample"
)

// maxMatrixResamples bounds how many times Setup will draw a fresh
// Dimension x Dimension matrix over Z_p looking for an invertible one
// before giving up. A uniform draw is singular only with negligible
// probability, so exhausting this budget signals a broken sampler.
const maxMatrixResamples = 8

// sampleDualOrthonormalBases draws a random invertible Dimension x
// Dimension matrix X over Z_p and returns the dual pairing vector
// space bases B (in G1) and B* (in G2) derived from X and Y = (X^-1)^T.
//
// For the canonical bases A1 of G1^Dimension and A2 of G2^Dimension,
// e(A1[j], A2[k]) is the GT generator iff j == k. Because B = X.A1 and
// B* = Y.A2 with Y = (X^-1)^T, summing e(B[i][j], B*[k][j]) over j
// collapses to the same delta: the bases are dual-orthonormal, which
// is the identity every HibeCore operation below depends on.
//
// Since A1[j] has the G1 generator in coordinate j and the identity
// elsewhere, B[i] = sum_j X[i][j].A1[j] reduces to X[i] multiplied
// elementwise into the generator, i.e. data.Matrix.MulG1() applied to
// X row by row; the same collapse gives B* = Y.MulG2().
func sampleDualOrthonormalBases(rnd sample.Sampler) (data.MatrixG1, data.MatrixG2, error) {
	p := bn256.Order

	for attempt := 0; attempt < maxMatrixResamples; attempt++ {
		x, err := data.NewRandomMatrix(Dimension, Dimension, rnd)
		if err != nil {
			return nil, nil, err
		}

		xInv, _, err := x.InverseModGauss(p)
		if err != nil {
			continue
		}

		y := xInv.Transpose()
		return x.MulG1(), y.MulG2(), nil
	}

	return nil, nil, internal.ErrSingularMatrix
}
