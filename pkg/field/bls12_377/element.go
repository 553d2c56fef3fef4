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
package bls12_377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform to the field.Element interface.  The
// zero value represents 0, as required.
type Element struct {
	inner fr.Element
}

// New constructs an element from a given uint64 value.
func New(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	res.Add(&x.inner, &y.inner)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	res.Sub(&x.inner, &y.inner)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	res.Mul(&x.inner, &y.inner)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.  The underlying fr.Element already follows the
// zero-maps-to-zero convention.
func (x Element) Inverse() Element {
	var res fr.Element
	res.Inverse(&x.inner)
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.inner.Cmp(&y.inner)
}

// IsZero checks whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.inner.IsZero()
}

// IsOne checks whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.inner.IsOne()
}

// SetUint64 returns the element representing the given value.
func (x Element) SetUint64(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// SetBytes interprets bytes as the big-endian encoding of an integer, reduced
// modulo the field order.
func (x Element) SetBytes(bytes []byte) Element {
	var res fr.Element
	res.SetBytes(bytes)
	//
	return Element{res}
}

// String returns the decimal representation of x.
func (x Element) String() string {
	return x.inner.String()
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.inner.Text(base)
}
