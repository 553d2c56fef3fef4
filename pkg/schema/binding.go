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
	"fmt"

	"github.com/consensys/vanishing/pkg/algebra"
	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/ir"
	"gopkg.in/yaml.v3"
)

// Declaration binds a named combinator onto trace columns.  Which fields are
// required depends on the kind; unused fields must be left empty.
type Declaration struct {
	// Kind of combinator being bound (see bind for the supported set).
	Kind string `yaml:"kind"`
	// Handle identifying the resulting constraint in failure reports.
	// Defaults to "kind:target" when empty.
	Handle string `yaml:"handle,omitempty"`
	// Target column being constrained.
	Target string `yaml:"target,omitempty"`
	// Counter column delimiting segments (counter-constancy,
	// byte-decomposition, plateau).
	Counter string `yaml:"counter,omitempty"`
	// Source column providing per-row contributions (byte-decomposition).
	Source string `yaml:"source,omitempty"`
	// Level column holding the per-segment target count (plateau).
	Level string `yaml:"level,omitempty"`
	// Stamp column gating changes of the target (stamp-constancy).
	Stamp string `yaml:"stamp,omitempty"`
	// Offset for increment/decrement constraints (defaults to 1).
	Offset uint64 `yaml:"offset,omitempty"`
}

// Binding is the top-level structure of a schema file: a list of combinator
// declarations.
type Binding struct {
	Constraints []Declaration `yaml:"constraints"`
}

// FromYaml parses a YAML schema file and binds every declaration, yielding a
// checkable schema.
func FromYaml[F field.Element[F]](data []byte) (*Schema[F], error) {
	var (
		binding Binding
		schema  Schema[F]
	)
	//
	if err := yaml.Unmarshal(data, &binding); err != nil {
		return nil, err
	}
	//
	for i, decl := range binding.Constraints {
		expr, err := bind[F](decl)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		//
		schema.Add(decl.handle(), expr)
	}
	//
	return &schema, nil
}

func (p Declaration) handle() string {
	if p.Handle != "" {
		return p.Handle
	}
	//
	return fmt.Sprintf("%s:%s", p.Kind, p.Target)
}

// Bind a declaration to its combinator, checking that exactly the required
// columns were named.
func bind[F field.Element[F]](decl Declaration) (ir.Term[F], error) {
	target := ir.Column[F](decl.Target)
	//
	switch decl.Kind {
	case "binary":
		if err := decl.requires("target"); err != nil {
			return nil, err
		}
		//
		return algebra.IsBinary(target), nil
	case "constant":
		if err := decl.requires("target"); err != nil {
			return nil, err
		}
		//
		return algebra.RemainsConstant(target), nil
	case "increment":
		if err := decl.requires("target"); err != nil {
			return nil, err
		}
		//
		return algebra.Inc(target, max(decl.Offset, 1)), nil
	case "counter-constancy":
		if err := decl.requires("target", "counter"); err != nil {
			return nil, err
		}
		//
		return algebra.CounterConstancy(ir.Column[F](decl.Counter), target), nil
	case "byte-decomposition":
		if err := decl.requires("target", "counter", "source"); err != nil {
			return nil, err
		}
		//
		return algebra.ByteDecomposition(ir.Column[F](decl.Counter), target, ir.Column[F](decl.Source)), nil
	case "plateau":
		if err := decl.requires("target", "counter", "level"); err != nil {
			return nil, err
		}
		//
		return algebra.PlateauConstraint(ir.Column[F](decl.Counter), target, ir.Column[F](decl.Level)), nil
	case "stamp-constancy":
		if err := decl.requires("target", "stamp"); err != nil {
			return nil, err
		}
		//
		return algebra.StampConstancy(ir.Column[F](decl.Stamp), target), nil
	default:
		return nil, fmt.Errorf("unknown constraint kind %q", decl.Kind)
	}
}

// Check that all required fields (and no others) were given for this
// declaration.
func (p Declaration) requires(fields ...string) error {
	given := map[string]string{
		"target": p.Target, "counter": p.Counter, "source": p.Source,
		"level": p.Level, "stamp": p.Stamp,
	}
	//
	for _, field := range fields {
		if given[field] == "" {
			return fmt.Errorf("kind %q requires a %q column", p.Kind, field)
		}
		//
		delete(given, field)
	}
	// Anything left over was not expected.
	for field, value := range given {
		if value != "" {
			return fmt.Errorf("kind %q does not accept a %q column", p.Kind, field)
		}
	}
	//
	return nil
}
