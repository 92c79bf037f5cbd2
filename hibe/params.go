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
)

// Dimension is the fixed size of the dual pairing vector spaces the
// scheme works over. The semi-functional key/ciphertext spaces used
// only in the Lewko-Waters security proof are not modeled here, so
// every basis, key block and ciphertext block has exactly this many
// coordinates.
const Dimension = 6

// PublicParams is the public output of Setup. E1 and E2 are the two
// "Z-coordinate mask" pairings that blind a ciphertext's c0 component;
// D holds the six ordered G1 basis vectors d1..d6, each of length
// Dimension.
type PublicParams struct {
	E1 *bn256.GT
	E2 *bn256.GT
	D  [Dimension]data.VectorG1
}

// MasterKey is the master secret produced by Setup. It is only needed
// to issue SecretKeys directly (KeyGen); delegation never touches it.
type MasterKey struct {
	Alpha1, Alpha2 *big.Int

	DStar1, DStar2 data.VectorG2

	// Delegation-helper vectors: d1*.gamma, d2*.epsilon, d3*.theta,
	// d4*.theta, d5*.sigma, d6*.sigma. These, and only these, are
	// carried forward unchanged into every SecretKey issued from this
	// master key, so that the holder can delegate further.
	DStar1Gamma   data.VectorG2
	DStar2Epsilon data.VectorG2
	DStar3Theta   data.VectorG2
	DStar4Theta   data.VectorG2
	DStar5Sigma   data.VectorG2
	DStar6Sigma   data.VectorG2
}

// SecretKey is a key issued for a hierarchical identity of the given
// Level. K holds Level blocks of Dimension G2 elements each; the six
// delegation-helper vectors let the holder delegate to level Level+1.
type SecretKey struct {
	Level int

	DStar1Gamma   data.VectorG2
	DStar2Epsilon data.VectorG2
	DStar3Theta   data.VectorG2
	DStar4Theta   data.VectorG2
	DStar5Sigma   data.VectorG2
	DStar6Sigma   data.VectorG2

	K data.VectorG2
}

// Ciphertext is an encryption of a bn256.GT element toward a
// hierarchical identity of the given Level. C holds Level blocks of
// Dimension G1 elements each.
type Ciphertext struct {
	Level int
	C0    *bn256.GT
	C     data.VectorG1
}

// helperVectors returns the six vectors that play the role of
// (d1*, d2*, d3*.theta, d4*.theta, d5*.sigma, d6*.sigma) in the block
// formula used by KeyGen, or of the delegation-helper vectors in the
// formula used by Delegate. Both operations share the same skeleton.
type helperVectors [6]data.VectorG2
