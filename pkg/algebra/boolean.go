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

// Package algebra provides the derived constraint combinators from which
// trace correctness conditions are assembled: a boolean algebra over field
// elements, temporal relations between adjacent rows, and counter/stamp
// driven structural constraints.  Every combinator is a pure expression
// template; a constraint built from one is satisfied at a row iff it
// evaluates to zero there.
//
// Unless stated otherwise, the boolean operators follow the convention that
// 1 denotes true and 0 denotes false, and are only boolean-sound when their
// operands are already known to be {0,1}-valued.  Binary-ness is itself a
// constraint (IsBinary) which callers are expected to compose alongside.
package algebra

import (
	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/ir"
)

// IsZero lifts a term into the {0,1}-valued zero predicate 1 - e*e⁻¹.  For
// any field element this evaluates to 1 when e = 0 and 0 otherwise, relying
// on the convention that the inverse of zero is zero.
func IsZero[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return ir.Subtract(ir.One[F](), ir.Product(e, ir.Invert(e)))
}

// IsNotZero is the complement of IsZero, expressed via conditional
// selection: 0 when e = 0, and 1 otherwise.
func IsNotZero[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return ir.IfElse(e, ir.Const64[F](0), ir.One[F]())
}

// Eq constructs the vanishing difference a - b, which is zero exactly when
// a = b.  Note that Eq is not {0,1}-valued; it is intended for direct use as
// a vanishing constraint rather than as a reusable boolean.
func Eq[F field.Element[F]](a ir.Term[F], b ir.Term[F]) ir.Term[F] {
	return ir.Subtract(a, b)
}

// Neq is the logical negation of Eq.  Since Not is defined as 1 - x, Neq is
// only a sound boolean when a - b is {0,1}-valued; used standalone as a
// vanishing constraint it asserts a - b = 1.  Compositions beyond that
// require operands already constrained to {0,1}.
func Neq[F field.Element[F]](a ir.Term[F], b ir.Term[F]) ir.Term[F] {
	return Not(Eq(a, b))
}

// Not constructs the negation 1 - e.  This is total on all field elements,
// but carries boolean meaning only for {0,1}-valued operands.
func Not[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return ir.Subtract(ir.One[F](), e)
}

// And constructs the conjunction e0*e1.  Standard conjunction only when both
// operands are {0,1}-valued; more generally it vanishes when either operand
// does.
func And[F field.Element[F]](e0 ir.Term[F], e1 ir.Term[F]) ir.Term[F] {
	return ir.Product(e0, e1)
}

// Or constructs the disjunction of two {0,1}-valued terms via De Morgan.
func Or[F field.Element[F]](e0 ir.Term[F], e1 ir.Term[F]) ir.Term[F] {
	return Not(And(Not(e0), Not(e1)))
}

// Xor constructs the exclusive-or e0 + e1 - 2*e0*e1 of two {0,1}-valued
// terms.
func Xor[F field.Element[F]](e0 ir.Term[F], e1 ir.Term[F]) ir.Term[F] {
	return ir.Subtract(
		ir.Sum(e0, e1),
		ir.Product(ir.Const64[F](2), e0, e1))
}

// IsBinary constructs the constraint e*(1-e), which vanishes iff e is 0 or
// 1.  This is the precondition-establishing constraint which the structural
// layer assumes has been composed for any column it treats as a flag.
func IsBinary[F field.Element[F]](e ir.Term[F]) ir.Term[F] {
	return ir.Product(e, Not(e))
}
