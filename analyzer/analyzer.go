// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"flag"
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/unitflow/internal/run"
	"fillmore-labs.com/unitflow/internal/store"
)

// Public API constants for the unitflow analyzers.
const (
	unitsName = run.UnitsName
	unitsDoc  = `units infers measurement units of integer expressions and reports mismatched arithmetic`

	mtagName = run.MTagName
	mtagDoc  = `mtagdata tracks parameters stored into tagged memory regions and creates alias tags for them`

	url = "https://pkg.go.dev/fillmore-labs.com/unitflow"
)

// NewUnits creates a new instance of the unit inference analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Units] variable is typically sufficient.
//
// The result of the analyzer is a [*UnitsResult].
func NewUnits(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:       unitsName,
		Doc:        unitsDoc,
		URL:        url,
		Run:        r.RunUnits,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		ResultType: reflect.TypeFor[*UnitsResult](),
		FactTypes:  []analysis.Fact{(*store.FuncSummary)(nil), (*store.MemberUnits)(nil)},
	}

	registerFlags(&a.Flags, r, true)

	return a
}

// NewMTag creates a new instance of the memory tag analyzer.
//
// The result of the analyzer is a [*MTagResult].
func NewMTag(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:       mtagName,
		Doc:        mtagDoc,
		URL:        url,
		Run:        r.RunMTag,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		ResultType: reflect.TypeFor[*MTagResult](),
		FactTypes:  []analysis.Fact{(*store.TagSummary)(nil), (*store.TagMap)(nil)},
	}

	registerFlags(&a.Flags, r, false)

	return a
}

var (
	// Units is a pre-configured *[analysis.Analyzer] inferring measurement units.
	Units = NewUnits()

	// MTag is a pre-configured *[analysis.Analyzer] propagating memory tags.
	MTag = NewMTag()
)

// registerFlags binds the [Options] values of the analyzer to command line flag values.
func registerFlags(flags *flag.FlagSet, o *run.Options, units bool) {
	flags.Var(newBehaviorValue(&o.Behavior, generated), "generated", "check generated files")
	flags.IntVar(&o.Rounds, "rounds", o.Rounds, "number of analysis rounds per package")
	flags.StringVar(&o.BuiltinsFile, "builtins", o.BuiltinsFile, "YAML `file` extending the builtin tables")

	if !units {
		return
	}

	flags.Var(newBehaviorValue(&o.Behavior, returnMerges), "return-merges", "report ambiguous unit merges on return paths")
	flags.Var(newBehaviorValue(&o.Behavior, comparisonWidening), "widen-comparisons", "propagate units across comparisons")
}
