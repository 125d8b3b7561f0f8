// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package tracker_test

import (
	"fmt"
	"go/ast"
	"go/types"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/unitflow/internal/config"
	. "fillmore-labs.com/unitflow/internal/tracker"
)

func TestMayReturn(t *testing.T) {
	t.Parallel()

	b, err := config.DefaultBuiltins()
	if err != nil {
		t.Fatalf("Can't load builtins: %v", err)
	}

	noReturn := append(slices.Clone(b.NoReturn), "test/cantreturn.bug")

	testdata := analysistest.TestData()

	testAnalyzer := &analysis.Analyzer{
		Name: "mayreturn",
		Doc:  "report calls that end their block",
		Run: func(p *analysis.Pass) (any, error) {
			return nil, report(p, New(p.TypesInfo, noReturn...))
		},
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	analysistest.Run(t, testdata, testAnalyzer, "./cantreturn")
}

func report(p *analysis.Pass, tr Tracker) error {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return fmt.Errorf("result of %s missing", inspect.Analyzer.Name)
	}

	for c := range in.Root().Preorder((*ast.ExprStmt)(nil)) {
		call, ok := c.Node().(*ast.ExprStmt).X.(*ast.CallExpr)
		if !ok || tr.MayReturn(call) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     call.Pos(),
			End:     call.End(),
			Message: "Can't return",
		})
	}

	return nil
}

func TestNoTable(t *testing.T) {
	t.Parallel()

	var noReturn map[string]struct{}

	call := &ast.CallExpr{Fun: ast.NewIdent("exit")}
	info := &types.Info{
		Types: map[ast.Expr]types.TypeAndValue{},
		Uses:  map[*ast.Ident]types.Object{},
	}

	if CantReturn(info, noReturn, call) {
		t.Error("Unresolved call can't return")
	}
}
