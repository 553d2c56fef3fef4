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

// ColumnAccess reads the value of a given column at a fixed offset relative
// to the row under evaluation.  A shift of 0 reads the current row, +1 the
// next row, -1 the previous row, etc.  Accesses beyond the trace bounds are
// undefined rather than erroneous (see trace.ErrOutOfBounds).
type ColumnAccess[F field.Element[F]] struct {
	// Name of the column being accessed.
	Column string
	// Relative row offset of the access.
	Shift int
}

// NewColumnAccess constructs a term reading a given column at a given
// relative offset.
func NewColumnAccess[F field.Element[F]](column string, shift int) Term[F] {
	return &ColumnAccess[F]{column, shift}
}

// Column constructs a term reading a given column at the current row.
func Column[F field.Element[F]](column string) Term[F] {
	return &ColumnAccess[F]{column, 0}
}

// EvalAt implementation for the Term interface.
func (p *ColumnAccess[F]) EvalAt(k int, tr trace.Trace[F]) (F, error) {
	return tr.Get(p.Column, k+p.Shift)
}

// Lisp implementation for the Term interface.
func (p *ColumnAccess[F]) Lisp() string {
	if p.Shift == 0 {
		return p.Column
	}
	//
	return fmt.Sprintf("(shift %s %d)", p.Column, p.Shift)
}
