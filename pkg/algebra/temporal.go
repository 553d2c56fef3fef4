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

// Next evaluates a term one row ahead of the current row.
func Next[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return ir.Shifted(e, 1)
}

// Prev evaluates a term one row behind the current row.
func Prev[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return ir.Shifted(e, -1)
}

// WillEq constructs a vanishing constraint asserting that e0 at the next row
// equals e1 at the current row.
func WillEq[F field.Element[F]](e0 ir.Term[F], e1 ir.Term[F]) ir.Term[F] {
	return Eq(Next(e0), e1)
}

// WasEq constructs a vanishing constraint asserting that e0 at the previous
// row equals e1 at the current row.
func WasEq[F field.Element[F]](e0 ir.Term[F], e1 ir.Term[F]) ir.Term[F] {
	return Eq(Prev(e0), e1)
}

// Inc constructs a vanishing constraint asserting that e at the next row
// equals e at the current row plus a fixed offset.  This is the building
// block for monotonically increasing counters.
func Inc[F field.Element[F]](e ir.Term[F], offset uint64) ir.Term[F] {
	return Eq(Next(e), ir.Sum(e, ir.Const64[F](offset)))
}

// Dec constructs a vanishing constraint asserting that e at the next row
// equals e at the current row minus a fixed offset.
func Dec[F field.Element[F]](e ir.Term[F], offset uint64) ir.Term[F] {
	return Eq(Next(e), ir.Subtract(e, ir.Const64[F](offset)))
}

// DidntChange constructs a vanishing constraint asserting that e holds the
// same value as at the previous row.  The backward-looking direction is
// deliberate: at a segment's first row a structural constraint can instead
// use RemainsConstant and avoid reading before the trace start.
func DidntChange[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return Eq(e, Prev(e))
}

// DidChange is the logical negation of DidntChange, with the same {0,1}
// caveats as Neq.
func DidChange[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return Neq(e, Prev(e))
}

// RemainsConstant is the forward-looking variant of DidntChange, asserting
// that e holds the same value into the next row.
func RemainsConstant[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return Eq(Next(e), e)
}
