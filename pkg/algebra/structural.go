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
package algebra

import (
	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/ir"
)

// CounterConstancy constrains x to change only at rows where the counter ct
// is zero: whenever ct is non-zero, x must equal its previous value.  The
// constraint is deliberately vacuous at ct = 0, allowing x to change exactly
// at counter resets.
func CounterConstancy[F field.Element[F]](ct ir.Term[F], x ir.Term[F]) ir.Term[F] {
	return ir.IfNot(ct, DidntChange(x))
}

// ByteDecomposition constrains acc to be the big-endian accumulation of the
// byte stream read from bytes, one value per row, restarting whenever the
// counter ct returns to zero: at ct = 0 the accumulator is the byte itself,
// otherwise acc = 256*prev(acc) + bytes.  Precondition (not enforced here):
// bytes is constrained elsewhere to the range 0-255.
func ByteDecomposition[F field.Element[F]](ct ir.Term[F], acc ir.Term[F], bytes ir.Term[F]) ir.Term[F] {
	return ir.IfElse(ct,
		// Base case: first byte of a window.
		Eq(acc, bytes),
		// Accumulation case.
		Eq(acc, ir.Sum(ir.Product(ir.Const64[F](256), Prev(acc)), bytes)))
}

// PlateauConstraint constrains x to plateau at successive integer levels: x
// starts at 0 on a segment's first row, holds its value through the
// segment's interior, and increments by exactly one at the segment boundary.
// Here ct indexes position within the segment and c holds the segment's
// target count, with c = 0 acting as a sentinel ("no active level") forcing
// x = 1.  The cases apply in order:
//
//	c = 0   ==> x = 1
//	ct = 0  ==> x = 0
//	ct = c  ==> x = prev(x) + 1
//	else    ==> x unchanged
//
// Preconditions (caller's responsibility): c is constant across each segment
// delimited by ct, and x is constrained binary elsewhere if used as a flag.
func PlateauConstraint[F field.Element[F]](ct ir.Term[F], x ir.Term[F], c ir.Term[F]) ir.Term[F] {
	return ir.IfElse(c,
		Eq(x, ir.One[F]()),
		ir.IfElse(ct,
			x,
			ir.IfElse(Eq(ct, c),
				Eq(x, ir.Sum(Prev(x), ir.One[F]())),
				DidntChange(x))))
}

// StampConstancy gates the variability of c by the stamp column: on rows
// where stamp remains constant into the next row, c must remain constant as
// well.  No constraint is imposed on rows where the stamp is about to
// change, hence c may only change at stamp segment boundaries.
func StampConstancy[F field.Element[F]](stamp ir.Term[F], c ir.Term[F]) ir.Term[F] {
	return ir.If(RemainsConstant(stamp), RemainsConstant(c))
}
