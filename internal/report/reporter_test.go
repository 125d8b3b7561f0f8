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

package report_test

import (
	"go/ast"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/unitflow/internal/report"
)

func TestReporter(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	testAnalyzer := &analysis.Analyzer{
		Name: "reportanalyzer",
		Doc:  "test reporter",
		Run:  reportrun,
	}

	analysistest.Run(t, testdata, testAnalyzer, "./dedup")
}

func reportrun(p *analysis.Pass) (any, error) {
	r := New(p, false, "units")

	for _, f := range p.Files {
		ast.Inspect(f, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			// Reported twice, emitted once
			r.Reportf(call, "marked")
			r.Reportf(call, "marked")

			return true
		})
	}

	return nil, nil
}
