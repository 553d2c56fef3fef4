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
package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  Implementations are required to be
// value types whose zero value represents the additive identity, such that
// Zero[F]() is always meaningful.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Sub x-y
	Sub(y Operand) Operand
	// Mul x*y
	Mul(y Operand) Operand
	// Inverse x⁻¹, or 0 if x = 0.  Totality of this operation (rather than
	// failure on zero) is relied upon by the boolean constraint algebra.
	Inverse() Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// IsZero checks whether this value is the additive identity.
	IsZero() bool
	// IsOne checks whether this value is the multiplicative identity.
	IsOne() bool
	// SetUint64 returns the element representing the given value.  It's the
	// canonical way of constructing new elements.
	SetUint64(val uint64) Operand
	// SetBytes interprets the given bytes as the big-endian encoding of an
	// integer, reduced into the field.
	SetBytes(bytes []byte) Operand
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0.
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1.
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 constructs a field element from a given uint64.
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// BigInt constructs a field element from a given big.Int, which must be
// non-negative.
func BigInt[F Element[F]](val big.Int) F {
	var element F
	// Handle negative values
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return element.SetBytes(val.Bytes())
}
