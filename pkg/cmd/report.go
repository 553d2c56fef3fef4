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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/trace"
	"golang.org/x/term"
)

// Number of rows shown either side of a failing row.
const reportContext = 2

// printRowContext prints a window of the trace around a failing row, one
// line per column, clipped to the terminal width when writing to one.
func printRowContext[F field.Element[F]](tr trace.Trace[F], row int) {
	var (
		width       = reportWidth()
		first, last = row - reportContext, row + reportContext
	)
	// Clip window to the trace
	if first < 0 {
		first = 0
	}
	//
	if last >= tr.Height() {
		last = tr.Height() - 1
	}
	// Header row
	header := "          |"
	for k := first; k <= last; k++ {
		marker := " "
		if k == row {
			marker = ">"
		}
		//
		header += fmt.Sprintf(" %s%8d", marker, k)
	}
	//
	fmt.Println(clip(header, width))
	// One line per column
	for _, name := range tr.Columns() {
		line := fmt.Sprintf("%9s |", name)
		//
		for k := first; k <= last; k++ {
			val, err := tr.Get(name, k)
			if err != nil {
				line += fmt.Sprintf(" %9s", "?")
			} else {
				line += fmt.Sprintf(" %9s", val.String())
			}
		}
		//
		fmt.Println(clip(line, width))
	}
	//
	fmt.Println()
}

// Determine how wide report lines may be.  When stdout is not a terminal
// (e.g. redirected to a file), lines are not clipped at all.
func reportWidth() int {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil {
			return width
		}
	}
	//
	return -1
}

func clip(line string, width int) string {
	if width < 0 || len(line) <= width {
		return line
	}
	// Leave room for the truncation marker.
	return strings.TrimRight(line[:width-1], " ") + "…"
}
