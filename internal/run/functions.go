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

package run

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/unitflow/internal/astutil"
	"fillmore-labs.com/unitflow/internal/flow"
)

// function is a function declaration to analyze.
type function struct {
	flow.Func
	body inspector.Cursor
}

// functions returns the function declarations of the package, callees before callers.
// Generated files and declarations with nolint comments naming one of linters are skipped.
func functions(p *analysis.Pass, in *inspector.Inspector, generated bool, linters ...string) []flow.Func {
	var (
		currentFile astutil.CurrentFile
		funcs       []function
	)

	root, filter := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
	}

	root.Inspect(filter, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			if !generated && currentFile.Generated() {
				return false
			}

			// Skip files with nolint comment
			return node.Doc == nil || !astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1], linters...)

		case *ast.FuncDecl:
			if node.Body == nil {
				return false
			}

			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Function declaration %s without file info", node.Name.Name)

				return false
			}

			// Skip functions with nolint comment
			if node.Doc != nil && astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1], linters...) {
				return false
			}

			obj, ok := p.TypesInfo.Defs[node.Name].(*types.Func)
			if !ok {
				return false
			}

			funcs = append(funcs, function{
				Func: flow.Func{Decl: node, Obj: obj},
				body: i.ChildAt(edge.FuncDecl_Body, -1),
			})

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return calleeFirst(p.TypesInfo, funcs)
}

// calleeFirst orders funcs in depth first post order of their static calls.
func calleeFirst(info *types.Info, funcs []function) []flow.Func {
	index := make(map[*types.Func]int, len(funcs))
	for i, fn := range funcs {
		index[fn.Obj] = i
	}

	visited := make([]bool, len(funcs))
	order := make([]flow.Func, 0, len(funcs))

	var visit func(i int)
	visit = func(i int) {
		if visited[i] {
			return
		}

		visited[i] = true

		for c := range funcs[i].body.Preorder((*ast.CallExpr)(nil)) {
			callee := typeutil.StaticCallee(info, c.Node().(*ast.CallExpr))
			if callee == nil {
				continue
			}

			if j, ok := index[callee.Origin()]; ok {
				visit(j)
			}
		}

		order = append(order, funcs[i].Func)
	}

	for i := range funcs {
		visit(i)
	}

	return order
}
