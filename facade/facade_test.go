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

package facade

import (
	"testing"

	"github.com/fentec-project/gohibe/hibe"
	"github.com/stretchr/testify/assert"
)

func TestSizePredictorsMatchHibe(t *testing.T) {
	assert.Equal(t, hibe.SizeOfBnModP(), SizeOfBnModP())
	assert.Equal(t, hibe.SizeOfG1(), SizeOfG1())
	assert.Equal(t, hibe.SizeOfG2(), SizeOfG2())
	assert.Equal(t, hibe.SizeOfGtCompressed(), SizeOfGtCompressed())
	assert.Equal(t, hibe.SizeOfGtUncompressed(), SizeOfGtUncompressed())
}

func TestRandomGtElementDeterminism(t *testing.T) {
	a := RandomGtElement([]byte("facade-seed"))
	b := RandomGtElement([]byte("facade-seed"))
	assert.NotNil(t, a)
	assert.Equal(t, a, b)
	assert.Equal(t, SizeOfGtCompressed(), len(a))

	c := RandomGtElement([]byte("other-seed"))
	assert.NotEqual(t, a, c)
}

func TestSetupEncryptDecryptRoundTrip(t *testing.T) {
	identity := []byte("alice")
	labelLen := len(identity)

	blob := Setup(identity, labelLen, []byte("setup-seed"))
	assert.NotNil(t, blob)
	assert.Equal(t, hibe.SizeOfPublicParams()+hibe.SizeOfSecretKey(1), len(blob))

	pp := blob[:hibe.SizeOfPublicParams()]
	sk := blob[hibe.SizeOfPublicParams():]

	message := RandomGtElement([]byte("message-seed"))
	ct := Encrypt(pp, message, identity, labelLen, 1, []byte("encrypt-seed"))
	assert.NotNil(t, ct)
	assert.Equal(t, hibe.SizeOfCiphertext(1), len(ct))

	recovered := Decrypt(sk, ct, 1)
	assert.Equal(t, message, recovered)
}

func TestDelegateThenDecryptRoundTrip(t *testing.T) {
	rootLabel := []byte("root")
	labelLen := len(rootLabel)

	blob := Setup(rootLabel, labelLen, []byte("setup-seed"))
	assert.NotNil(t, blob)
	pp := blob[:hibe.SizeOfPublicParams()]
	sk1 := blob[hibe.SizeOfPublicParams():]

	identity := append(append([]byte{}, rootLabel...), []byte("kid1")...)
	sk2 := Delegate(sk1, identity, labelLen, 2, []byte("delegate-seed"))
	assert.NotNil(t, sk2)
	assert.Equal(t, hibe.SizeOfSecretKey(2), len(sk2))

	message := RandomGtElement([]byte("message-seed"))
	ct := Encrypt(pp, message, identity, labelLen, 2, []byte("encrypt-seed"))
	assert.NotNil(t, ct)

	recovered := Decrypt(sk2, ct, 2)
	assert.Equal(t, message, recovered)
}

func TestDecryptMalformedInputReturnsNil(t *testing.T) {
	result := Decrypt([]byte("too short"), []byte("also too short"), 1)
	assert.Nil(t, result)
}

func TestEncryptWithMismatchedPublicParamsReturnsNil(t *testing.T) {
	result := Encrypt([]byte("garbage"), []byte("garbage"), []byte("alice"), 5, 1, []byte("seed"))
	assert.Nil(t, result)
}
