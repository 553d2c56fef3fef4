// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gf251

import (
	"strconv"
)

// N defines the modulus for the GF251 prime field.  Its virtue is that the
// entire field fits in a byte, making exhaustive whole-field checks cheap.
const N = 251

// Element type for the GF251 prime field.  This is defined as an array of one
// element to prevent accidental use of native arithmetic operators (+,*).
// Values are stored in their natural (unencoded) form, in the range [0,N).
type Element [1]uint8

// New constructs a new field element from a given unsigned integer.  This
// will panic if the supplied value is too large.
func New(val uint8) Element {
	if val >= N {
		panic("invalid GF251 element")
	}
	//
	return Element{val}
}

// Add x + y
func (x Element) Add(y Element) Element {
	val := uint16(x[0]) + uint16(y[0])
	if val >= N {
		val -= N
	}
	//
	return Element{uint8(val)}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	val := int16(x[0]) - int16(y[0])
	if val < 0 {
		val += N
	}
	//
	return Element{uint8(val)}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	val := uint16(x[0]) * uint16(y[0])
	//
	return Element{uint8(val % N)}
}

// Inverse x⁻¹, or 0 if x = 0.  Computed via Fermat's little theorem as
// x^(N-2), which maps zero to zero for free.
func (x Element) Inverse() Element {
	res := Element{1}
	// 0^(N-2) = 0, hence zero maps to zero without a special case.
	for i := 0; i < N-2; i++ {
		res = res.Mul(x)
	}
	//
	return res
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	switch {
	case x[0] > y[0]:
		return 1
	case x[0] < y[0]:
		return -1
	default:
		return 0
	}
}

// IsZero checks whether x is the additive identity.
func (x Element) IsZero() bool {
	return x[0] == 0
}

// IsOne checks whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x[0] == 1
}

// SetUint64 returns the element representing the given value, reduced modulo
// N.
func (x Element) SetUint64(val uint64) Element {
	return Element{uint8(val % N)}
}

// SetBytes interprets bytes as the big-endian encoding of an integer, reduced
// modulo N.
func (x Element) SetBytes(bytes []byte) Element {
	var acc uint64
	//
	for _, b := range bytes {
		acc = ((acc << 8) + uint64(b)) % N
	}
	//
	return Element{uint8(acc)}
}

// Uint8 returns the numerical value of x.
func (x Element) Uint8() uint8 {
	return x[0]
}

// String returns the decimal representation of x.
func (x Element) String() string {
	return strconv.FormatUint(uint64(x[0]), 10)
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return strconv.FormatUint(uint64(x[0]), base)
}
