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
package schema

import (
	"errors"
	"fmt"

	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/ir"
	"github.com/consensys/vanishing/pkg/trace"
)

// Failure records a constraint which did not hold at a specific row of a
// trace.
type Failure struct {
	// Handle of the failing constraint.
	Handle string
	// Row at which the constraint failed.
	Row int
	// Value the constraint expression evaluated to (empty when evaluation
	// itself failed, e.g. on an unknown column).
	Value string
	// Err holds the evaluation error, if any.
	Err error
}

// Error implementation for the error interface.
func (p Failure) Error() string {
	if p.Err != nil {
		return fmt.Sprintf("constraint %q cannot be evaluated (row %d): %v", p.Handle, p.Row, p.Err)
	}
	//
	return fmt.Sprintf("constraint %q does not hold (row %d)", p.Handle, p.Row)
}

// VanishingConstraint specifies a constraint which should hold on every row
// of a trace.  The only exception is when the constraint is undefined at a
// row because it reads beyond the trace bounds (e.g. a shifted access on the
// first or last row); such rows are ignored.
type VanishingConstraint[F field.Element[F]] struct {
	// A unique identifier for this constraint, used in failure reports.
	Handle string
	// The expression which should evaluate to zero on every row.
	Expr ir.Term[F]
}

// NewVanishingConstraint constructs a new vanishing constraint.
func NewVanishingConstraint[F field.Element[F]](handle string, expr ir.Term[F]) VanishingConstraint[F] {
	return VanishingConstraint[F]{handle, expr}
}

// HoldsLocally checks whether this constraint holds (i.e. vanishes or is
// undefined) at a given row of a trace.
func (p VanishingConstraint[F]) HoldsLocally(k int, tr trace.Trace[F]) (bool, Failure) {
	val, err := p.Expr.EvalAt(k, tr)
	//
	switch {
	case errors.Is(err, trace.ErrOutOfBounds):
		// Undefined at this row, hence must pass.
		return true, Failure{}
	case err != nil:
		return false, Failure{Handle: p.Handle, Row: k, Err: err}
	case !val.IsZero():
		return false, Failure{Handle: p.Handle, Row: k, Value: val.String()}
	}
	//
	return true, Failure{}
}

// Accepts checks whether this constraint holds on every row of a trace,
// returning one failure per offending row.
func (p VanishingConstraint[F]) Accepts(tr trace.Trace[F]) []Failure {
	var failures []Failure
	//
	for k := 0; k < tr.Height(); k++ {
		if ok, failure := p.HoldsLocally(k, tr); !ok {
			failures = append(failures, failure)
		}
	}
	//
	return failures
}

// String generates a human-readable representation of this constraint.
func (p VanishingConstraint[F]) String() string {
	return fmt.Sprintf("(vanish %s %s)", p.Handle, p.Expr.Lisp())
}
