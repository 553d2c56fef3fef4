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
package trace

import (
	"errors"
)

// ErrOutOfBounds is returned when a column is read at a row which lies
// outside the trace.  Such reads are not failures in themselves: a shifted
// expression evaluated at the first or last row of a trace is simply
// undefined there, and constraints treat undefined rows as holding.
var ErrOutOfBounds = errors.New("row index out of bounds")

// Trace describes a set of named data columns of equal height, queryable at
// a given row.  Traces are populated externally and read-only thereafter,
// hence safe for concurrent reads.
type Trace[F any] interface {
	// Get the value of a given column at a given row.  If the column does
	// not exist then an error is returned; if the row index is out of bounds
	// then ErrOutOfBounds is returned.
	Get(column string, row int) (F, error)
	// Height returns the number of rows in this trace.
	Height() int
	// Columns returns the names of all columns, in declaration order.
	Columns() []string
}

// RawColumn represents a single named column of data, prior to being
// assembled into a trace.
type RawColumn[F any] struct {
	// Name of this column.
	Name string
	// Data held in this column, one value per row.
	Data []F
}
