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
	"fmt"
)

// ArrayTrace provides an array-backed implementation of Trace, where every
// column holds exactly the same number of rows.
type ArrayTrace[F any] struct {
	// Number of rows in every column.
	height int
	// Columns in declaration order.
	columns []RawColumn[F]
	// Mapping from column names to their index in columns.
	index map[string]int
}

// NewArrayTrace constructs a trace from zero or more raw columns.  All
// columns must have the same height, and column names must be unique.
func NewArrayTrace[F any](columns ...RawColumn[F]) (*ArrayTrace[F], error) {
	var (
		height int
		index  = make(map[string]int, len(columns))
	)
	//
	for i, col := range columns {
		if _, ok := index[col.Name]; ok {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		} else if i > 0 && len(col.Data) != height {
			return nil, fmt.Errorf("column %q has height %d, expected %d", col.Name, len(col.Data), height)
		}
		//
		height = len(col.Data)
		index[col.Name] = i
	}
	//
	return &ArrayTrace[F]{height, columns, index}, nil
}

// Get implementation for the Trace interface.
func (p *ArrayTrace[F]) Get(column string, row int) (F, error) {
	var empty F
	//
	i, ok := p.index[column]
	if !ok {
		return empty, fmt.Errorf("unknown column %q", column)
	} else if row < 0 || row >= p.height {
		return empty, ErrOutOfBounds
	}
	//
	return p.columns[i].Data[row], nil
}

// Height implementation for the Trace interface.
func (p *ArrayTrace[F]) Height() int {
	return p.height
}

// Columns implementation for the Trace interface.
func (p *ArrayTrace[F]) Columns() []string {
	names := make([]string, len(p.columns))
	for i, col := range p.columns {
		names[i] = col.Name
	}
	//
	return names
}
