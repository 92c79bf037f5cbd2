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

// Package facade exposes the HIBE core as a narrow set of byte-in,
// byte-out functions suitable for crossing a foreign-function
// boundary: every argument and every result is a plain []byte or int,
// and every failure is signaled by a nil return rather than an error
// value or a panic escaping the package.
package facade

import (
	"sync"

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/gohibe/hibe"
	"github.com/fentec-project/gohibe/sample"
)

// rng is the process-wide CSPRNG singleton backing every facade
// operation. The HIBE core is specified as single-threaded per
// operation with a shared mutable random-number context, so every
// facade operation holds mu for its whole duration and concurrent
// calls run one after another.
var (
	mu  sync.Mutex
	rng = sample.NewDeterministicStream(bn256.Order)
)

// guarded runs f under mu and converts any panic escaping f (or the
// pairing library beneath it) into a nil result, per the facade's
// no-partial-result exit discipline.
func guarded(f func() ([]byte, error)) (result []byte) {
	mu.Lock()
	defer mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			result = nil
		}
	}()

	out, err := f()
	if err != nil {
		return nil
	}
	return out
}

// safely is guarded with the singleton CSPRNG freshly reseeded from
// seed beforehand, for operations that require randomness.
func safely(seed []byte, f func() ([]byte, error)) []byte {
	return guarded(func() ([]byte, error) {
		rng.Reseed(seed)
		return f()
	})
}

// SizeOfBnModP, SizeOfG1, SizeOfG2, SizeOfGtCompressed and
// SizeOfGtUncompressed report the fixed encoded widths of the curve's
// primitives for the chosen pairing library.
func SizeOfBnModP() int        { return hibe.SizeOfBnModP() }
func SizeOfG1() int            { return hibe.SizeOfG1() }
func SizeOfG2() int            { return hibe.SizeOfG2() }
func SizeOfGtCompressed() int  { return hibe.SizeOfGtCompressed() }
func SizeOfGtUncompressed() int { return hibe.SizeOfGtUncompressed() }

// RandomGtElement reseeds the CSPRNG from seed and returns a
// uniformly distributed compressed G_T element: the GT generator
// raised to an exponent drawn uniformly from the CSPRNG, which has
// the same distribution as sampling a group element directly.
func RandomGtElement(seed []byte) []byte {
	return safely(seed, func() ([]byte, error) {
		k, err := rng.Sample()
		if err != nil {
			return nil, err
		}
		e := new(bn256.GT).ScalarBaseMult(k)
		return e.Marshal(), nil
	})
}

// Setup performs Setup then KeyGen for level 1 with the single label
// identity[0:labelLen], concatenates the encoded PublicParams with the
// encoded level-1 SecretKey, and returns the result. The master key is
// discarded; this entry point is for callers that only need a single
// rooted key.
func Setup(identity []byte, labelLen int, seed []byte) []byte {
	return safely(seed, func() ([]byte, error) {
		pp, msk, err := hibe.Setup(rng)
		if err != nil {
			return nil, err
		}
		sk, err := hibe.KeyGen(msk, identity, labelLen, 1, rng)
		if err != nil {
			return nil, err
		}

		out := make([]byte, 0, hibe.SizeOfPublicParams()+hibe.SizeOfSecretKey(1))
		out = append(out, hibe.EncodePublicParams(pp)...)
		out = append(out, hibe.EncodeSecretKey(sk)...)
		return out, nil
	})
}

// Encrypt decodes message as a G_T element, encrypts it toward the
// identity hierarchy packed in identity, and returns the encoded
// Ciphertext at the given level.
func Encrypt(pp []byte, message []byte, identity []byte, labelLen, level int, seed []byte) []byte {
	return safely(seed, func() ([]byte, error) {
		pubParams, err := hibe.DecodePublicParams(pp)
		if err != nil {
			return nil, err
		}
		m := new(bn256.GT)
		if _, err := m.Unmarshal(message); err != nil {
			return nil, err
		}

		ct, err := hibe.Encrypt(pubParams, m, identity, labelLen, level, rng)
		if err != nil {
			return nil, err
		}
		return hibe.EncodeCiphertext(ct), nil
	})
}

// Decrypt decodes sk and ct at the given level and returns the
// compressed G_T bytes of the recovered message. There is no
// authenticated-decryption check: sk for a mismatched hierarchy still
// returns a (uniformly distributed) result rather than an error.
func Decrypt(sk []byte, ct []byte, level int) []byte {
	return guarded(func() ([]byte, error) {
		secretKey, err := hibe.DecodeSecretKey(sk, level)
		if err != nil {
			return nil, err
		}
		cipher, err := hibe.DecodeCiphertext(ct, level)
		if err != nil {
			return nil, err
		}

		m, err := hibe.Decrypt(secretKey, cipher)
		if err != nil {
			return nil, err
		}
		return m.Marshal(), nil
	})
}

// Delegate extends parentSK, a SecretKey at level newLevel-1, to a
// SecretKey at newLevel for the hierarchy packed in identity. identity
// carries all newLevel labels; the first newLevel-1 MUST equal those
// parentSK was derived for (the caller's responsibility — Delegate
// does not verify this).
func Delegate(parentSK []byte, identity []byte, labelLen, newLevel int, seed []byte) []byte {
	return safely(seed, func() ([]byte, error) {
		parent, err := hibe.DecodeSecretKey(parentSK, newLevel-1)
		if err != nil {
			return nil, err
		}

		sk, err := hibe.Delegate(parent, identity, labelLen, newLevel, rng)
		if err != nil {
			return nil, err
		}
		return hibe.EncodeSecretKey(sk), nil
	})
}
