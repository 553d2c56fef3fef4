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

// Package ir provides the primitive expression terms from which constraint
// expressions are composed: constants, (shifted) column accesses, field
// arithmetic and conditional selection.  Terms are pure templates which are
// instantiated at a given trace row via EvalAt; they hold no state of their
// own and never mutate the trace.
package ir

import (
	"strings"

	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/trace"
)

// Term represents a component of a constraint expression which can be
// evaluated at a given row of a given trace.  Evaluation is total over field
// values, but can be *undefined* at a row when it touches a cell beyond the
// trace bounds (signalled by trace.ErrOutOfBounds).  Constraints built from
// terms hold vacuously at rows where they are undefined.
type Term[F field.Element[F]] interface {
	// EvalAt evaluates this term at the given row of the given trace.
	EvalAt(k int, tr trace.Trace[F]) (F, error)
	// Lisp returns an S-expression rendering of this term, for error
	// reporting and debugging.
	Lisp() string
}

// lispOfTerms renders a function application as an S-expression.
func lispOfTerms[F field.Element[F]](symbol string, args ...Term[F]) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(symbol)
	//
	for _, arg := range args {
		builder.WriteString(" ")
		builder.WriteString(arg.Lisp())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
