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

package flow

import (
	"cmp"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// Key is the structural identity of a tracked value: a root variable and a field path.
// p.f and (*p).f have the same key.
type Key struct {
	Obj  types.Object
	Path string
}

// String returns a human readable name, like "s.len" or "*p".
func (k Key) String() string {
	name := k.Obj.Name() + k.Path
	if rest, ok := strings.CutPrefix(k.Path, "*"); ok {
		name = "*" + k.Obj.Name() + rest
	}

	return name
}

// compare orders keys by declaration position, then path.
func (k Key) compare(o Key) int {
	if c := cmp.Compare(k.Obj.Pos(), o.Obj.Pos()); c != 0 {
		return c
	}

	if c := cmp.Compare(k.Obj.Name(), o.Obj.Name()); c != 0 {
		return c
	}

	return cmp.Compare(k.Path, o.Path)
}

// KeyOf returns the key of an expression denoting a variable or a field of one.
func KeyOf(info *types.Info, expr ast.Expr) (Key, bool) {
	switch e := astutil.Unparen(expr).(type) {
	case *ast.Ident:
		obj, ok := info.Uses[e].(*types.Var)
		if !ok {
			obj, ok = info.Defs[e].(*types.Var)
		}

		if !ok || obj == nil || e.Name == "_" {
			return Key{}, false
		}

		return Key{Obj: obj}, true

	case *ast.SelectorExpr:
		sel, ok := info.Selections[e]
		if !ok {
			// Qualified identifier
			return KeyOf(info, e.Sel)
		}

		if sel.Kind() != types.FieldVal {
			return Key{}, false
		}

		x := astutil.Unparen(e.X)
		if star, ok := x.(*ast.StarExpr); ok {
			x = star.X
		}

		k, ok := KeyOf(info, x)
		if !ok {
			return Key{}, false
		}

		k.Path += "." + e.Sel.Name

		return k, true

	case *ast.StarExpr:
		k, ok := KeyOf(info, e.X)
		if !ok {
			return Key{}, false
		}

		k.Path += "*"

		return k, true

	case *ast.UnaryExpr:
		if e.Op != token.AND {
			return Key{}, false
		}

		// &x.f is tracked as x.f
		return KeyOf(info, e.X)

	default:
		return Key{}, false
	}
}
