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

	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/field/bls12_377"
	"github.com/consensys/vanishing/pkg/field/gf251"
	"github.com/consensys/vanishing/pkg/schema"
	"github.com/consensys/vanishing/pkg/trace"
	tracejson "github.com/consensys/vanishing/pkg/trace/json"
	"github.com/consensys/vanishing/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] trace_file schema_file",
	Short: "Check a given trace against a set of constraints.",
	Long: `Check a given trace against a set of constraints.
	Traces are given as JSON files mapping column names to value arrays.
	Constraints are given as YAML files binding combinators to columns.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		// Dispatch on the requested field implementation.
		switch name := GetString(cmd, "field"); name {
		case "gf251":
			runCheckCmd[gf251.Element](cmd, args)
		case "bls12-377":
			runCheckCmd[bls12_377.Element](cmd, args)
		default:
			log.Errorf("unknown field %q", name)
			os.Exit(2)
		}
	},
}

func runCheckCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	var (
		report = GetFlag(cmd, "report")
		stats  = util.NewPerfStats()
	)
	// Parse trace
	tr := readTraceFile[F](args[0])
	stats.Log("parsing trace")
	// Parse & bind schema
	sc := readSchemaFile[F](args[1])
	stats.Log("binding schema")
	// Go!
	failures := sc.Accepts(tr)
	stats.Log("checking trace")
	//
	if len(failures) == 0 {
		log.Infof("trace accepted (%d constraints, %d rows)", len(sc.Constraints()), tr.Height())
		return
	}
	//
	for _, failure := range failures {
		fmt.Println(failure.Error())
		//
		if report {
			printRowContext(tr, failure.Row)
		}
	}
	//
	os.Exit(1)
}

// Read a JSON trace file and assemble it into an array trace, exiting on
// failure.
func readTraceFile[F field.Element[F]](filename string) trace.Trace[F] {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		log.Errorln(err)
		os.Exit(2)
	}
	//
	cols, err := tracejson.FromBytes[F](bytes)
	if err != nil {
		log.Errorf("%s: %v", filename, err)
		os.Exit(2)
	}
	//
	tr, err := trace.NewArrayTrace(cols...)
	if err != nil {
		log.Errorf("%s: %v", filename, err)
		os.Exit(2)
	}
	//
	return tr
}

// Read a YAML schema file and bind its declarations, exiting on failure.
func readSchemaFile[F field.Element[F]](filename string) *schema.Schema[F] {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		log.Errorln(err)
		os.Exit(2)
	}
	//
	sc, err := schema.FromYaml[F](bytes)
	if err != nil {
		log.Errorf("%s: %v", filename, err)
		os.Exit(2)
	}
	//
	return sc
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("report", false, "print surrounding trace rows for each failure")
	checkCmd.Flags().String("field", "bls12-377", "field implementation to evaluate over (gf251 | bls12-377)")
}
