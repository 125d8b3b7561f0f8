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

package units

import (
	"go/ast"
	"go/constant"
	"go/types"

	"fillmore-labs.com/unitflow/internal/astutil"
	"fillmore-labs.com/unitflow/internal/config"
)

// pageSize is the page size assumed for literal constants.
const pageSize = 4096

// hints recognizes well known names.
type hints struct {
	info  *types.Info
	names config.Names
}

// match reports whether expr names one of list.
func (h hints) match(list []string, expr ast.Expr) bool {
	name, qualified, ok := astutil.NameOf(h.info, astutil.Strip(h.info, expr))

	return ok && config.Match(list, name, qualified)
}

// calls reports whether expr is a call of a function named in list.
func (h hints) calls(list []string, expr ast.Expr) bool {
	call, ok := astutil.Strip(h.info, expr).(*ast.CallExpr)

	return ok && h.match(list, call.Fun)
}

func (h hints) sizeof(expr ast.Expr) bool {
	call, ok := astutil.Strip(h.info, expr).(*ast.CallExpr)
	if !ok {
		return false
	}

	if b, ok := h.callee(call).(*types.Builtin); ok && b.Name() == "Sizeof" {
		return true
	}

	return h.match(h.names.Sizeof, call.Fun)
}

func (h hints) callee(call *ast.CallExpr) types.Object {
	fun := astutil.Strip(h.info, call.Fun)

	switch f := fun.(type) {
	case *ast.Ident:
		return h.info.Uses[f]

	case *ast.SelectorExpr:
		return h.info.Uses[f.Sel]

	default:
		return nil
	}
}

// pageSize reports whether expr is a page size name or the literal page size.
func (h hints) pageSize(expr ast.Expr) bool {
	if h.match(h.names.PageSize, expr) {
		return true
	}

	tv, ok := h.info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
		return false
	}

	v, exact := constant.Int64Val(tv.Value)

	return exact && v == pageSize
}

func (h hints) pageShift(expr ast.Expr) bool { return h.match(h.names.PageShift, expr) }

func (h hints) wordBits(expr ast.Expr) bool { return h.match(h.names.WordBits, expr) }

// arraySize reports whether expr counts the elements of an array.
func (h hints) arraySize(expr ast.Expr) bool {
	if h.calls(h.names.ArraySize, expr) {
		return true
	}

	call, ok := astutil.Strip(h.info, expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return false
	}

	if b, ok := h.callee(call).(*types.Builtin); !ok || b.Name() != "len" && b.Name() != "cap" {
		return false
	}

	typ := h.info.TypeOf(call.Args[0])
	if typ == nil {
		return false
	}

	if p, ok := typ.Underlying().(*types.Pointer); ok {
		typ = p.Elem()
	}

	_, ok = typ.Underlying().(*types.Array)

	return ok
}

// named returns the unit of a recognized name.
func (h hints) named(expr ast.Expr) (Unit, bool) {
	switch {
	case h.sizeof(expr):
		return Byte, true

	case h.match(h.names.PageSize, expr):
		return Byte, true

	case h.match(h.names.Jiffies, expr):
		return Jiffy, true

	case h.wordBits(expr):
		return Bit, true

	case h.arraySize(expr):
		return ElementCount, true

	default:
		return 0, false
	}
}

// opaque reports whether expr has an address type which arithmetic doesn't preserve units for.
func opaque(info *types.Info, expr ast.Expr) bool {
	typ := info.TypeOf(expr)
	if typ == nil {
		return false
	}

	switch t := typ.Underlying().(type) {
	case *types.Pointer, *types.Array, *types.Slice:
		return true

	case *types.Basic:
		return t.Kind() == types.UnsafePointer

	default:
		return false
	}
}
