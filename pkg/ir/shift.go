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
package ir

import (
	"fmt"

	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/trace"
)

// Shift evaluates its argument at a fixed offset relative to the row under
// evaluation, thereby shifting every column access within the argument.  At
// rows where the offset lands outside the trace, the shifted term is
// undefined.
type Shift[F field.Element[F]] struct {
	// Term being shifted.
	Arg Term[F]
	// Relative row offset.
	Offset int
}

// Shifted constructs a term evaluating the given term at a given relative
// row offset.  A zero offset is a no-op.
func Shifted[F field.Element[F]](arg Term[F], offset int) Term[F] {
	if offset == 0 {
		return arg
	}
	// Collapse shifts of plain column accesses.
	if col, ok := arg.(*ColumnAccess[F]); ok {
		return &ColumnAccess[F]{col.Column, col.Shift + offset}
	}
	//
	return &Shift[F]{arg, offset}
}

// EvalAt implementation for the Term interface.
func (p *Shift[F]) EvalAt(k int, tr trace.Trace[F]) (F, error) {
	return p.Arg.EvalAt(k+p.Offset, tr)
}

// Lisp implementation for the Term interface.
func (p *Shift[F]) Lisp() string {
	return fmt.Sprintf("(shift %s %d)", p.Arg.Lisp(), p.Offset)
}
