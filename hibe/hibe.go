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

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/gohibe/data"
	"github.com/fentec-project/gohibe/internal"
	"github.com/fentec-project/gohibe/sample"
	"github.com/pkg/errors"
)

// pairSum computes the GT product (additive notation: sum) of the
// pairwise pairings of g1 and g2, i.e. prod_i e(g1[i], g2[i]). It is
// the building block both for the e1/e2 masks computed in Setup and
// for the inner product evaluated at the heart of Decrypt.
func pairSum(g1 data.VectorG1, g2 data.VectorG2) *bn256.GT {
	sum := new(bn256.GT).ScalarBaseMult(big.NewInt(0))
	for i := range g1 {
		sum.Add(sum, bn256.Pair(g1[i], g2[i]))
	}
	return sum
}

// Setup samples a fresh dual pairing vector space and the scalars that
// mask it, and returns the resulting PublicParams and MasterKey. rnd
// must already be seeded; every random draw in this function comes
// from it, in the order: the basis-sampling matrix draws, then
// (alpha1, alpha2, gamma, epsilon, theta, sigma).
func Setup(rnd sample.Sampler) (*PublicParams, *MasterKey, error) {
	b, bStar, err := sampleDualOrthonormalBases(rnd)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to sample dual orthonormal bases")
	}

	masks, err := data.NewRandomVector(6, rnd)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to sample Setup masking scalars")
	}
	alpha1, alpha2, gamma, epsilon, theta, sigma := masks[0], masks[1], masks[2], masks[3], masks[4], masks[5]

	d1, d2, d3, d4, d5, d6 := b[0], b[1], b[2], b[3], b[4], b[5]
	dStar1, dStar2, dStar3, dStar4, dStar5, dStar6 := bStar[0], bStar[1], bStar[2], bStar[3], bStar[4], bStar[5]

	pp := &PublicParams{
		E1: pairSum(d1.MulScalar(alpha1), dStar1),
		E2: pairSum(d2.MulScalar(alpha2), dStar2),
		D:  [Dimension]data.VectorG1{d1, d2, d3, d4, d5, d6},
	}

	msk := &MasterKey{
		Alpha1:        alpha1,
		Alpha2:        alpha2,
		DStar1:        dStar1,
		DStar2:        dStar2,
		DStar1Gamma:   dStar1.MulScalar(gamma),
		DStar2Epsilon: dStar2.MulScalar(epsilon),
		DStar3Theta:   dStar3.MulScalar(theta),
		DStar4Theta:   dStar4.MulScalar(theta),
		DStar5Sigma:   dStar5.MulScalar(sigma),
		DStar6Sigma:   dStar6.MulScalar(sigma),
	}

	return pp, msk, nil
}

// genBlock evaluates the shared KeyGen/Delegate block formula:
//
//	y.mat[0] + w.mat[1] + (id.r1).mat[2] - r1.mat[3] + (id.r2).mat[4] - r2.mat[5]
//
// over Z_p, against the six supplied G2 vectors.
func genBlock(mat helperVectors, y, w, r1, r2, id *big.Int) data.VectorG2 {
	p := bn256.Order
	idR1 := new(big.Int).Mod(new(big.Int).Mul(id, r1), p)
	idR2 := new(big.Int).Mod(new(big.Int).Mul(id, r2), p)
	negR1 := new(big.Int).Mod(new(big.Int).Neg(r1), p)
	negR2 := new(big.Int).Mod(new(big.Int).Neg(r2), p)

	block := mat[0].MulScalar(y)
	block = block.Add(mat[1].MulScalar(w))
	block = block.Add(mat[2].MulScalar(idR1))
	block = block.Add(mat[3].MulScalar(negR1))
	block = block.Add(mat[4].MulScalar(idR2))
	block = block.Add(mat[5].MulScalar(negR2))
	return block
}

// KeyGen issues a SecretKey for the hierarchical identity formed by
// the level labels packed into identity (each labelLen bytes long).
// The draw order per block is (y, w, r1, r2); the last block's (y, w)
// are fixed to (alpha1, alpha2) minus the sum of the earlier ones, so
// that the key body's blocks sum, in their first two coordinates, to
// (alpha1, alpha2) as required for correct decryption.
func KeyGen(msk *MasterKey, identity []byte, labelLen, level int, rnd sample.Sampler) (*SecretKey, error) {
	ids, err := splitIdentity(identity, labelLen, level)
	if err != nil {
		return nil, err
	}

	p := bn256.Order
	mat := helperVectors{msk.DStar1, msk.DStar2, msk.DStar3Theta, msk.DStar4Theta, msk.DStar5Sigma, msk.DStar6Sigma}

	k := make(data.VectorG2, Dimension*level)
	accY, accW := big.NewInt(0), big.NewInt(0)
	for j := 0; j < level-1; j++ {
		draws, err := data.NewRandomVector(4, rnd)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sample KeyGen block randomness")
		}
		y, w, r1, r2 := draws[0], draws[1], draws[2], draws[3]
		block := genBlock(mat, y, w, r1, r2, ids[j])
		copy(k[j*Dimension:(j+1)*Dimension], block)

		accY.Mod(accY.Add(accY, y), p)
		accW.Mod(accW.Add(accW, w), p)
	}

	yLast := new(big.Int).Mod(new(big.Int).Sub(msk.Alpha1, accY), p)
	wLast := new(big.Int).Mod(new(big.Int).Sub(msk.Alpha2, accW), p)
	lastDraws, err := data.NewRandomVector(2, rnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample KeyGen last-block randomness")
	}
	lastBlock := genBlock(mat, yLast, wLast, lastDraws[0], lastDraws[1], ids[level-1])
	copy(k[(level-1)*Dimension:level*Dimension], lastBlock)

	return &SecretKey{
		Level:         level,
		DStar1Gamma:   msk.DStar1Gamma,
		DStar2Epsilon: msk.DStar2Epsilon,
		DStar3Theta:   msk.DStar3Theta,
		DStar4Theta:   msk.DStar4Theta,
		DStar5Sigma:   msk.DStar5Sigma,
		DStar6Sigma:   msk.DStar6Sigma,
		K:             k,
	}, nil
}

// Delegate extends parent, a SecretKey at level parent.Level, to a
// SecretKey at level parent.Level+1. identity carries all new-level
// labels concatenated; the caller is responsible for the first
// new-level-1 of them matching the labels parent was derived for.
//
// The per-block materials come from parent's delegation-helper
// vectors rather than from (d1*, d2*, ...), the last block's (y, w)
// are the negated sums of the earlier ones (there is no alpha to
// reach, only zero), and parent's own blocks are folded into the
// first new-level-1 blocks of the result so the sum invariant parent
// already satisfies carries through unchanged.
func Delegate(parent *SecretKey, identity []byte, labelLen, newLevel int, rnd sample.Sampler) (*SecretKey, error) {
	if newLevel != parent.Level+1 {
		return nil, errors.New("delegation must extend a key by exactly one level")
	}
	ids, err := splitIdentity(identity, labelLen, newLevel)
	if err != nil {
		return nil, err
	}

	p := bn256.Order
	mat := helperVectors{
		parent.DStar1Gamma, parent.DStar2Epsilon,
		parent.DStar3Theta, parent.DStar4Theta,
		parent.DStar5Sigma, parent.DStar6Sigma,
	}

	k := make(data.VectorG2, Dimension*newLevel)
	accY, accW := big.NewInt(0), big.NewInt(0)
	for j := 0; j < newLevel-1; j++ {
		draws, err := data.NewRandomVector(4, rnd)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sample Delegate block randomness")
		}
		y, w, r1, r2 := draws[0], draws[1], draws[2], draws[3]
		block := genBlock(mat, y, w, r1, r2, ids[j])
		block = block.Add(parent.K[j*Dimension : (j+1)*Dimension])
		copy(k[j*Dimension:(j+1)*Dimension], block)

		accY.Mod(accY.Add(accY, y), p)
		accW.Mod(accW.Add(accW, w), p)
	}

	yLast := new(big.Int).Mod(new(big.Int).Neg(accY), p)
	wLast := new(big.Int).Mod(new(big.Int).Neg(accW), p)
	lastDraws, err := data.NewRandomVector(2, rnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample Delegate last-block randomness")
	}
	lastBlock := genBlock(mat, yLast, wLast, lastDraws[0], lastDraws[1], ids[newLevel-1])
	copy(k[(newLevel-1)*Dimension:newLevel*Dimension], lastBlock)

	return &SecretKey{
		Level:         newLevel,
		DStar1Gamma:   parent.DStar1Gamma,
		DStar2Epsilon: parent.DStar2Epsilon,
		DStar3Theta:   parent.DStar3Theta,
		DStar4Theta:   parent.DStar4Theta,
		DStar5Sigma:   parent.DStar5Sigma,
		DStar6Sigma:   parent.DStar6Sigma,
		K:             k,
	}, nil
}

// Encrypt encrypts message, a bn256.GT element, toward the
// hierarchical identity packed into identity. The same (s1, s2) appear
// in every block, which is what lets Decrypt recover the message with
// a single product over all Level*Dimension pairings.
func Encrypt(pp *PublicParams, message *bn256.GT, identity []byte, labelLen, level int, rnd sample.Sampler) (*Ciphertext, error) {
	ids, err := splitIdentity(identity, labelLen, level)
	if err != nil {
		return nil, err
	}

	s, err := data.NewRandomVector(2, rnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample Encrypt blinding scalars")
	}
	s1, s2 := s[0], s[1]

	c0 := new(bn256.GT).Set(message)
	c0.Add(c0, new(bn256.GT).ScalarMult(pp.E1, s1))
	c0.Add(c0, new(bn256.GT).ScalarMult(pp.E2, s2))

	d1, d2, d3, d4, d5, d6 := pp.D[0], pp.D[1], pp.D[2], pp.D[3], pp.D[4], pp.D[5]
	c := make(data.VectorG1, Dimension*level)
	for j := 0; j < level; j++ {
		t, err := data.NewRandomVector(2, rnd)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sample Encrypt block randomness")
		}
		t1, t2 := t[0], t[1]
		idT1 := new(big.Int).Mod(new(big.Int).Mul(ids[j], t1), bn256.Order)
		idT2 := new(big.Int).Mod(new(big.Int).Mul(ids[j], t2), bn256.Order)

		block := d1.MulScalar(s1)
		block = block.Add(d2.MulScalar(s2))
		block = block.Add(d3.MulScalar(t1))
		block = block.Add(d4.MulScalar(idT1))
		block = block.Add(d5.MulScalar(t2))
		block = block.Add(d6.MulScalar(idT2))
		copy(c[j*Dimension:(j+1)*Dimension], block)
	}

	return &Ciphertext{Level: level, C0: c0, C: c}, nil
}

// Decrypt recovers the bn256.GT element ct was built from, provided sk
// was issued for the same hierarchical identity ct was encrypted to.
// There is no integrity check: a key for an unrelated hierarchy still
// returns a (uniformly distributed) GT element rather than an error.
func Decrypt(sk *SecretKey, ct *Ciphertext) (*bn256.GT, error) {
	if sk.Level != ct.Level {
		return nil, internal.ErrLevelMismatch
	}

	b := pairSum(ct.C, sk.K)
	result := new(bn256.GT).Set(ct.C0)
	result.Add(result, new(bn256.GT).Neg(b))
	return result, nil
}
