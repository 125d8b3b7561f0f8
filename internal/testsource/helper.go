// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package testsource type checks Go statement fragments for unit tests.
//
// Sources are wrapped in a function body inside package "test". Declarations
// following the fragment can be appended by closing the body early.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"
)

const testpkg = "test"

// Load parses and type checks src, returning the type information and the
// function wrapping the fragment.
func Load(tb testing.TB, src string) (*types.Info, *ast.FuncDecl) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn := firstFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}

	conf := types.Config{Importer: importer.Default()}

	if _, err := conf.Check(testpkg, fset, []*ast.File{f}, info); err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return info, fn
}

// Values returns the first right hand side of every assignment in fn's body.
// Other statements are skipped.
func Values(fn *ast.FuncDecl) []ast.Expr {
	var values []ast.Expr

	for _, stmt := range fn.Body.List {
		if assign, ok := stmt.(*ast.AssignStmt); ok && len(assign.Rhs) > 0 {
			values = append(values, assign.Rhs[0])
		}
	}

	return values
}

func wrapSource(src string) string {
	var b strings.Builder

	b.WriteString("package " + testpkg + "\n\nfunc _() {\n")
	b.WriteString(src)
	b.WriteString("\n}\n")

	return b.String()
}

func firstFuncDecl(f *ast.File) *ast.FuncDecl {
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			return fn
		}
	}

	return nil
}
