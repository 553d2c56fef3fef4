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
	"runtime"
	"sort"
	"sync"

	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/ir"
	"github.com/consensys/vanishing/pkg/trace"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Schema holds a set of named vanishing constraints to be checked against a
// trace.
type Schema[F field.Element[F]] struct {
	constraints []VanishingConstraint[F]
}

// Add a new vanishing constraint to this schema.
func (p *Schema[F]) Add(handle string, expr ir.Term[F]) {
	p.constraints = append(p.constraints, NewVanishingConstraint(handle, expr))
}

// Constraints returns the constraints held in this schema, in declaration
// order.
func (p *Schema[F]) Constraints() []VanishingConstraint[F] {
	return p.constraints
}

// Accepts checks every constraint against every row of the given trace,
// returning all failures encountered (or nil if the trace is accepted).
// Constraints are checked in parallel: every expression reads only the
// current row and its immediate neighbours of a read-only trace, so there is
// no ordering requirement between rows or between constraints.  Failures are
// reported in (handle, row) order to keep output deterministic.
func (p *Schema[F]) Accepts(tr trace.Trace[F]) []Failure {
	var (
		mux      sync.Mutex
		failures []Failure
		group    errgroup.Group
	)
	//
	group.SetLimit(runtime.NumCPU())
	//
	for _, c := range p.constraints {
		group.Go(func() error {
			log.Debugf("checking constraint %q over %d rows", c.Handle, tr.Height())
			//
			if errs := c.Accepts(tr); len(errs) > 0 {
				mux.Lock()
				failures = append(failures, errs...)
				mux.Unlock()
			}
			//
			return nil
		})
	}
	// Only nil errors above, hence no error here.
	_ = group.Wait()
	//
	sort.Slice(failures, func(i, j int) bool {
		if failures[i].Handle != failures[j].Handle {
			return failures[i].Handle < failures[j].Handle
		}
		//
		return failures[i].Row < failures[j].Row
	})
	//
	return failures
}
