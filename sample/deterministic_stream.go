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

package sample

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// DeterministicStream is a Sampler that draws an unbounded sequence of
// uniform values from [0, max) out of a salsa20 keystream keyed by a
// caller-supplied seed. Unlike a single-shot deterministic draw, a
// DeterministicStream remembers its position, so repeated Sample calls
// walk forward through the stream instead of returning the same value.
//
// Reseeding is destructive: it discards the current position and starts
// a fresh stream. Two streams reseeded with identical bytes and driven
// through the same sequence of Sample calls produce identical output,
// which is what lets callers reproduce an operation byte-for-byte.
type DeterministicStream struct {
	max     *big.Int
	key     [32]byte
	counter uint64
}

// NewDeterministicStream creates a stream sampling uniformly from
// [0, max). The stream has no key until Reseed is called.
func NewDeterministicStream(max *big.Int) *DeterministicStream {
	return &DeterministicStream{max: new(big.Int).Set(max)}
}

// Reseed derives a fresh salsa20 key from seed via SHA-256 and resets
// the draw counter to zero. The system does not mix in any entropy of
// its own; the caller is responsible for supplying high-entropy bytes.
func (d *DeterministicStream) Reseed(seed []byte) {
	d.key = sha256.Sum256(seed)
	d.counter = 0
}

// Sample draws the next uniform value in [0, max) from the stream,
// using rejection sampling over successive keystream blocks so the
// result is unbiased.
func (d *DeterministicStream) Sample() (*big.Int, error) {
	if d.max.Sign() <= 0 {
		return nil, fmt.Errorf("upper bound on samples should be positive")
	}

	maxBits := d.max.BitLen()
	maxBytes := (maxBits + 7) / 8
	if maxBytes == 0 {
		maxBytes = 1
	}
	over := uint(8*maxBytes - maxBits)

	for {
		var nonce [8]byte
		binary.BigEndian.PutUint64(nonce[:], d.counter)
		d.counter++

		in := make([]byte, maxBytes)
		out := make([]byte, maxBytes)
		salsa20.XORKeyStream(out, in, &nonce, &d.key)
		out[0] >>= over

		candidate := new(big.Int).SetBytes(out)
		if candidate.Cmp(d.max) < 0 {
			return candidate, nil
		}
	}
}
