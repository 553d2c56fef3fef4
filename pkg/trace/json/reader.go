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
package json

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"

	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/trace"
)

// FromBytes parses a trace expressed in JSON notation.  For example, {"X":
// [0], "Y": [1]} is a trace containing one row of data each for two columns
// "X" and "Y".  Columns are returned in lexicographic order to keep the
// result deterministic, since JSON objects are unordered.
func FromBytes[F field.Element[F]](data []byte) ([]trace.RawColumn[F], error) {
	var rawData map[string][]big.Int
	// Attempt to unmarshall
	if err := json.Unmarshal(data, &rawData); err != nil {
		return nil, err
	}
	// Construct column data
	cols := make([]trace.RawColumn[F], 0, len(rawData))
	//
	for name, rawInts := range rawData {
		// Validate data array
		if row := validateBigInts(rawInts); row >= 0 {
			return nil, fmt.Errorf("column %s contains negative value (row %d, value %s)",
				name, row, rawInts[row].String())
		}
		// Construct column
		cols = append(cols, trace.RawColumn[F]{Name: name, Data: newArrayFromBigInts[F](rawInts)})
	}
	//
	sort.Slice(cols, func(i, j int) bool { return cols[i].Name < cols[j].Name })
	// Done.
	return cols, nil
}

func newArrayFromBigInts[F field.Element[F]](data []big.Int) []F {
	arr := make([]F, len(data))
	//
	for i := range data {
		arr[i] = field.BigInt[F](data[i])
	}
	//
	return arr
}

// Check all values are non-negative, returning the offending row (or a
// negative value if everything checks out).
func validateBigInts(data []big.Int) int {
	for i, val := range data {
		if val.Sign() < 0 {
			return i
		}
	}
	//
	return -1
}
