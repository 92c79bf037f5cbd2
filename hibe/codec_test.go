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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicParamsRoundTrip(t *testing.T) {
	pp, _, err := Setup(seededStream("codec-pp-seed"))
	assert.NoError(t, err)

	encoded := EncodePublicParams(pp)
	assert.Equal(t, SizeOfPublicParams(), len(encoded))

	decoded, err := DecodePublicParams(encoded)
	assert.NoError(t, err)
	assert.Equal(t, encoded, EncodePublicParams(decoded))
}

func TestMasterKeyRoundTrip(t *testing.T) {
	_, msk, err := Setup(seededStream("codec-msk-seed"))
	assert.NoError(t, err)

	encoded := EncodeMasterKey(msk)
	assert.Equal(t, SizeOfMasterKey(), len(encoded))

	decoded, err := DecodeMasterKey(encoded)
	assert.NoError(t, err)
	assert.Equal(t, encoded, EncodeMasterKey(decoded))
}

func TestSecretKeyRoundTrip(t *testing.T) {
	_, msk, err := Setup(seededStream("codec-sk-seed"))
	assert.NoError(t, err)

	for level := 1; level <= 3; level++ {
		labels := make([]string, level)
		for i := range labels {
			labels[i] = "abcd"
		}
		identity, labelLen := identityOf(labels...)

		sk, err := KeyGen(msk, identity, labelLen, level, seededStream("codec-sk-keygen"))
		assert.NoError(t, err)

		encoded := EncodeSecretKey(sk)
		assert.Equal(t, SizeOfSecretKey(level), len(encoded))

		decoded, err := DecodeSecretKey(encoded, level)
		assert.NoError(t, err)
		assert.Equal(t, encoded, EncodeSecretKey(decoded))
	}
}

func TestCiphertextRoundTrip(t *testing.T) {
	pp, _, err := Setup(seededStream("codec-ct-seed"))
	assert.NoError(t, err)

	identity, labelLen := identityOf("lvl1", "lvl2")
	message := randomMessage(t, "codec-ct-message")

	ct, err := Encrypt(pp, message, identity, labelLen, 2, seededStream("codec-ct-encrypt"))
	assert.NoError(t, err)

	encoded := EncodeCiphertext(ct)
	assert.Equal(t, SizeOfCiphertext(2), len(encoded))

	decoded, err := DecodeCiphertext(encoded, 2)
	assert.NoError(t, err)
	assert.Equal(t, encoded, EncodeCiphertext(decoded))
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := DecodePublicParams(make([]byte, SizeOfPublicParams()-1))
	assert.Error(t, err)

	_, err = DecodeMasterKey(make([]byte, SizeOfMasterKey()+1))
	assert.Error(t, err)

	_, err = DecodeSecretKey(make([]byte, SizeOfSecretKey(2)), 1)
	assert.Error(t, err)

	_, err = DecodeCiphertext(make([]byte, SizeOfCiphertext(1)-1), 1)
	assert.Error(t, err)
}

func TestSizeOfPublicParamsMatchesDimensionFormula(t *testing.T) {
	expected := Dimension*Dimension*sizeOfG1 + 2*sizeOfGT
	assert.Equal(t, expected, SizeOfPublicParams())
}
