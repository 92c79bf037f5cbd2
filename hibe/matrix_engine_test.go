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
	"math/big"
	"testing"

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/gohibe/sample"
	"github.com/stretchr/testify/assert"
)

// singularThenRandom returns zero for its first zeroDraws calls,
// forcing the matrix they fill to be singular, then delegates every
// later call to next.
type singularThenRandom struct {
	zeroDraws int
	draws     int
	next      sample.Sampler
}

func (s *singularThenRandom) Sample() (*big.Int, error) {
	s.draws++
	if s.draws <= s.zeroDraws {
		return big.NewInt(0), nil
	}
	return s.next.Sample()
}

func TestSampleDualOrthonormalBasesRetriesPastSingularDraw(t *testing.T) {
	underlying := sample.NewDeterministicStream(bn256.Order)
	underlying.Reseed([]byte("matrix-engine-retry-seed"))

	rnd := &singularThenRandom{
		zeroDraws: Dimension * Dimension,
		next:      underlying,
	}

	b, bStar, err := sampleDualOrthonormalBases(rnd)
	assert.NoError(t, err)
	assert.Len(t, b, Dimension)
	assert.Len(t, bStar, Dimension)

	// The all-zero matrix consumes exactly one Dimension x Dimension
	// draw before InverseModGauss rejects it; the second draw must be
	// invertible (overwhelmingly likely for a uniform matrix over
	// Z_p), so exactly two attempts' worth of draws are consumed.
	assert.Equal(t, 2*Dimension*Dimension, rnd.draws)
}

func TestSampleDualOrthonormalBasesGivesUpAfterResampleBudget(t *testing.T) {
	rnd := &singularThenRandom{zeroDraws: maxMatrixResamples * Dimension * Dimension}

	_, _, err := sampleDualOrthonormalBases(rnd)
	assert.Error(t, err)
}
