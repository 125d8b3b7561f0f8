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

package astutil

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"
)

// Strip removes parentheses and type conversions around expr.
func Strip(info *types.Info, expr ast.Expr) ast.Expr {
	for {
		expr = astutil.Unparen(expr)

		call, ok := expr.(*ast.CallExpr)
		if !ok || len(call.Args) != 1 {
			return expr
		}

		if tv, ok := info.Types[call.Fun]; !ok || !tv.IsType() {
			return expr
		}

		expr = call.Args[0]
	}
}

// NameOf returns the name an identifier or qualified identifier refers to, and
// the object's qualified name "path.Name" when it is declared at package level.
func NameOf(info *types.Info, expr ast.Expr) (name, qualified string, ok bool) {
	var id *ast.Ident

	switch e := astutil.Unparen(expr).(type) {
	case *ast.Ident:
		id = e

	case *ast.SelectorExpr:
		if sel, ok := info.Selections[e]; ok && sel.Kind() != types.FieldVal {
			return "", "", false
		}

		id = e.Sel

	default:
		return "", "", false
	}

	obj := info.Uses[id]
	if obj == nil {
		return id.Name, "", true
	}

	if pkg := obj.Pkg(); pkg != nil && obj.Parent() == pkg.Scope() {
		qualified = pkg.Path() + "." + obj.Name()
	}

	return obj.Name(), qualified, true
}
