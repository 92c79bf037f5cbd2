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
)

// Byte widths of the four encoded primitives the codec works with.
// bn256 exposes a single Marshal/Unmarshal format per group, so there
// is no separate "compressed" representation for G1 or G2: the
// compressed and uncompressed widths for G_T below are likewise the
// same width, for the same reason (see DESIGN.md).
const (
	sizeOfScalar = 32
	sizeOfG1     = 64
	sizeOfG2     = 128
	sizeOfGT     = 384
)

// SizeOfBnModP, SizeOfG1, SizeOfG2, SizeOfGtCompressed and
// SizeOfGtUncompressed are the size predictors §6 of the facade
// exposes directly to callers.
func SizeOfBnModP() int        { return sizeOfScalar }
func SizeOfG1() int            { return sizeOfG1 }
func SizeOfG2() int            { return sizeOfG2 }
func SizeOfGtCompressed() int  { return sizeOfGT }
func SizeOfGtUncompressed() int { return sizeOfGT }

// SizeOfPublicParams, SizeOfMasterKey, SizeOfSecretKey and
// SizeOfCiphertext predict the encoded length of each object without
// constructing one, per §4.4's size-predictor formulas.
func SizeOfPublicParams() int {
	return Dimension*Dimension*sizeOfG1 + 2*sizeOfGT
}

func SizeOfMasterKey() int {
	return Dimension*(Dimension+2)*sizeOfG2 + 2*sizeOfScalar
}

func SizeOfSecretKey(level int) int {
	return (Dimension*Dimension + level*Dimension) * sizeOfG2
}

func SizeOfCiphertext(level int) int {
	return sizeOfGT + level*Dimension*sizeOfG1
}

func encodeScalar(x *big.Int) []byte {
	buf := make([]byte, sizeOfScalar)
	b := new(big.Int).Mod(x, bn256.Order).Bytes()
	copy(buf[sizeOfScalar-len(b):], b)
	return buf
}

func decodeScalar(buf []byte) (*big.Int, []byte, error) {
	if len(buf) < sizeOfScalar {
		return nil, nil, internal.MalformedInput
	}
	x := new(big.Int).SetBytes(buf[:sizeOfScalar])
	return x, buf[sizeOfScalar:], nil
}

func encodeG1(p *bn256.G1) []byte {
	return p.Marshal()
}

func decodeG1(buf []byte) (*bn256.G1, []byte, error) {
	if len(buf) < sizeOfG1 {
		return nil, nil, internal.MalformedInput
	}
	p := new(bn256.G1)
	if _, err := p.Unmarshal(buf[:sizeOfG1]); err != nil {
		return nil, nil, internal.MalformedInput
	}
	return p, buf[sizeOfG1:], nil
}

func encodeG2(p *bn256.G2) []byte {
	return p.Marshal()
}

func decodeG2(buf []byte) (*bn256.G2, []byte, error) {
	if len(buf) < sizeOfG2 {
		return nil, nil, internal.MalformedInput
	}
	p := new(bn256.G2)
	if _, err := p.Unmarshal(buf[:sizeOfG2]); err != nil {
		return nil, nil, internal.MalformedInput
	}
	return p, buf[sizeOfG2:], nil
}

func encodeGT(e *bn256.GT) []byte {
	return e.Marshal()
}

func decodeGT(buf []byte) (*bn256.GT, []byte, error) {
	if len(buf) < sizeOfGT {
		return nil, nil, internal.MalformedInput
	}
	e := new(bn256.GT)
	if _, err := e.Unmarshal(buf[:sizeOfGT]); err != nil {
		return nil, nil, internal.MalformedInput
	}
	return e, buf[sizeOfGT:], nil
}

func encodeVectorG1(v data.VectorG1) []byte {
	buf := make([]byte, 0, len(v)*sizeOfG1)
	for _, p := range v {
		buf = append(buf, encodeG1(p)...)
	}
	return buf
}

func encodeVectorG2(v data.VectorG2) []byte {
	buf := make([]byte, 0, len(v)*sizeOfG2)
	for _, p := range v {
		buf = append(buf, encodeG2(p)...)
	}
	return buf
}

func decodeVectorG2(buf []byte, n int) (data.VectorG2, []byte, error) {
	out := make(data.VectorG2, n)
	var p *bn256.G2
	var err error
	for i := 0; i < n; i++ {
		p, buf, err = decodeG2(buf)
		if err != nil {
			return nil, nil, err
		}
		out[i] = p
	}
	return out, buf, nil
}

// EncodePublicParams serializes pp following the PP layout of §4.4:
// e1 and e2, then the six G1 basis vectors interleaved column by
// column (d1[j] .. d6[j] for j = 0..Dimension-1).
func EncodePublicParams(pp *PublicParams) []byte {
	buf := make([]byte, 0, SizeOfPublicParams())
	buf = append(buf, encodeGT(pp.E1)...)
	buf = append(buf, encodeGT(pp.E2)...)
	for j := 0; j < Dimension; j++ {
		for k := 0; k < Dimension; k++ {
			buf = append(buf, encodeG1(pp.D[k][j])...)
		}
	}
	return buf
}

// DecodePublicParams is the inverse of EncodePublicParams.
func DecodePublicParams(buf []byte) (*PublicParams, error) {
	if len(buf) != SizeOfPublicParams() {
		return nil, internal.MalformedPubParam
	}
	e1, rest, err := decodeGT(buf)
	if err != nil {
		return nil, internal.MalformedPubParam
	}
	e2, rest, err := decodeGT(rest)
	if err != nil {
		return nil, internal.MalformedPubParam
	}

	var d [Dimension]data.VectorG1
	for k := range d {
		d[k] = make(data.VectorG1, Dimension)
	}
	for j := 0; j < Dimension; j++ {
		for k := 0; k < Dimension; k++ {
			var p *bn256.G1
			p, rest, err = decodeG1(rest)
			if err != nil {
				return nil, internal.MalformedPubParam
			}
			d[k][j] = p
		}
	}

	return &PublicParams{E1: e1, E2: e2, D: d}, nil
}

// EncodeMasterKey serializes msk following the MSK layout of §4.4:
// alpha1, alpha2, then for j = 0..Dimension-1 the eight per-column G2
// elements (d1*[j], d2*[j], and the six delegation-helper columns).
func EncodeMasterKey(msk *MasterKey) []byte {
	buf := make([]byte, 0, SizeOfMasterKey())
	buf = append(buf, encodeScalar(msk.Alpha1)...)
	buf = append(buf, encodeScalar(msk.Alpha2)...)

	cols := []data.VectorG2{
		msk.DStar1, msk.DStar2,
		msk.DStar1Gamma, msk.DStar2Epsilon,
		msk.DStar3Theta, msk.DStar4Theta,
		msk.DStar5Sigma, msk.DStar6Sigma,
	}
	for j := 0; j < Dimension; j++ {
		for _, col := range cols {
			buf = append(buf, encodeG2(col[j])...)
		}
	}
	return buf
}

// DecodeMasterKey is the inverse of EncodeMasterKey.
func DecodeMasterKey(buf []byte) (*MasterKey, error) {
	if len(buf) != SizeOfMasterKey() {
		return nil, internal.MalformedMasterKey
	}
	alpha1, rest, err := decodeScalar(buf)
	if err != nil {
		return nil, internal.MalformedMasterKey
	}
	alpha2, rest, err := decodeScalar(rest)
	if err != nil {
		return nil, internal.MalformedMasterKey
	}

	cols := make([]data.VectorG2, 8)
	for i := range cols {
		cols[i] = make(data.VectorG2, Dimension)
	}
	for j := 0; j < Dimension; j++ {
		for i := range cols {
			var p *bn256.G2
			p, rest, err = decodeG2(rest)
			if err != nil {
				return nil, internal.MalformedMasterKey
			}
			cols[i][j] = p
		}
	}

	return &MasterKey{
		Alpha1:        alpha1,
		Alpha2:        alpha2,
		DStar1:        cols[0],
		DStar2:        cols[1],
		DStar1Gamma:   cols[2],
		DStar2Epsilon: cols[3],
		DStar3Theta:   cols[4],
		DStar4Theta:   cols[5],
		DStar5Sigma:   cols[6],
		DStar6Sigma:   cols[7],
	}, nil
}

// EncodeSecretKey serializes sk following the SK_l layout of §4.4: for
// j = 0..Dimension-1 the six delegation-helper columns, then the
// Level*Dimension elements of K in order.
func EncodeSecretKey(sk *SecretKey) []byte {
	buf := make([]byte, 0, SizeOfSecretKey(sk.Level))
	cols := []data.VectorG2{
		sk.DStar1Gamma, sk.DStar2Epsilon,
		sk.DStar3Theta, sk.DStar4Theta,
		sk.DStar5Sigma, sk.DStar6Sigma,
	}
	for j := 0; j < Dimension; j++ {
		for _, col := range cols {
			buf = append(buf, encodeG2(col[j])...)
		}
	}
	buf = append(buf, encodeVectorG2(sk.K)...)
	return buf
}

// DecodeSecretKey is the inverse of EncodeSecretKey. level must be
// supplied by the caller; it is not recoverable from the encoding
// alone, per §4.4.
func DecodeSecretKey(buf []byte, level int) (*SecretKey, error) {
	if level < 1 || len(buf) != SizeOfSecretKey(level) {
		return nil, internal.MalformedSecKey
	}

	cols := make([]data.VectorG2, 6)
	for i := range cols {
		cols[i] = make(data.VectorG2, Dimension)
	}
	rest := buf
	var err error
	for j := 0; j < Dimension; j++ {
		for i := range cols {
			var p *bn256.G2
			p, rest, err = decodeG2(rest)
			if err != nil {
				return nil, internal.MalformedSecKey
			}
			cols[i][j] = p
		}
	}

	k, rest, err := decodeVectorG2(rest, level*Dimension)
	if err != nil {
		return nil, internal.MalformedSecKey
	}
	if len(rest) != 0 {
		return nil, internal.MalformedSecKey
	}

	return &SecretKey{
		Level:         level,
		DStar1Gamma:   cols[0],
		DStar2Epsilon: cols[1],
		DStar3Theta:   cols[2],
		DStar4Theta:   cols[3],
		DStar5Sigma:   cols[4],
		DStar6Sigma:   cols[5],
		K:             k,
	}, nil
}

// EncodeCiphertext serializes ct following the CT_l layout of §4.4:
// c0, then the Level*Dimension elements of c in order.
func EncodeCiphertext(ct *Ciphertext) []byte {
	buf := make([]byte, 0, SizeOfCiphertext(ct.Level))
	buf = append(buf, encodeGT(ct.C0)...)
	buf = append(buf, encodeVectorG1(ct.C)...)
	return buf
}

// DecodeCiphertext is the inverse of EncodeCiphertext. level must be
// supplied by the caller, as with DecodeSecretKey.
func DecodeCiphertext(buf []byte, level int) (*Ciphertext, error) {
	if level < 1 || len(buf) != SizeOfCiphertext(level) {
		return nil, internal.MalformedCipher
	}

	c0, rest, err := decodeGT(buf)
	if err != nil {
		return nil, internal.MalformedCipher
	}

	n := level * Dimension
	c := make(data.VectorG1, n)
	for i := 0; i < n; i++ {
		var p *bn256.G1
		p, rest, err = decodeG1(rest)
		if err != nil {
			return nil, internal.MalformedCipher
		}
		c[i] = p
	}
	if len(rest) != 0 {
		return nil, internal.MalformedCipher
	}

	return &Ciphertext{Level: level, C0: c0, C: c}, nil
}
