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

// Package valrange computes the absolute value range of an expression.
//
// Ranges are coarse: constants are exact, integer valued expressions span their
// type, and function or address values name the referenced object.
package valrange

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"math/big"

	"golang.org/x/tools/go/ast/astutil"
)

// Range is a closed interval of integers, optionally referring to a symbol.
// A Range without bounds and symbol is unknown.
type Range struct {
	Lower, Upper *big.Int
	// Symbol is the qualified name of a referenced function or, prefixed with "&", variable.
	Symbol string
}

// NewRange creates the interval [lower, upper].
func NewRange(lower, upper *big.Int) Range {
	return Range{Lower: lower, Upper: upper}
}

// Unknown reports whether nothing is known about the range.
func (r Range) Unknown() bool {
	return r.Lower == nil && r.Symbol == ""
}

// String returns the encoded form of r.
func (r Range) String() string {
	switch {
	case r.Symbol != "":
		return r.Symbol

	case r.Lower == nil:
		return "whole"

	case r.Lower.Cmp(r.Upper) == 0:
		return bound(r.Lower)

	default:
		return bound(r.Lower) + "-" + bound(r.Upper)
	}
}

func bound(b *big.Int) string {
	if b.Sign() < 0 {
		return "(" + b.String() + ")"
	}

	return b.String()
}

// Of returns the absolute range of expr.
func Of(info *types.Info, sizes types.Sizes, expr ast.Expr) Range {
	expr = astutil.Unparen(expr)

	if tv, ok := info.Types[expr]; ok {
		if tv.Value != nil {
			if v, ok := constant.Val(constant.ToInt(tv.Value)).(int64); ok {
				return NewRange(big.NewInt(v), big.NewInt(v))
			}

			if v, ok := constant.Val(constant.ToInt(tv.Value)).(*big.Int); ok {
				return NewRange(v, v)
			}
		}

		if tv.IsNil() {
			return NewRange(new(big.Int), new(big.Int))
		}
	}

	if s := symbolOf(info, expr); s != "" {
		return Range{Symbol: s}
	}

	return typeRange(sizes, info.TypeOf(expr))
}

func symbolOf(info *types.Info, expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		if fn, ok := info.Uses[e].(*types.Func); ok {
			return fn.FullName()
		}

	case *ast.SelectorExpr:
		if sel, ok := info.Selections[e]; ok {
			if fn, ok := sel.Obj().(*types.Func); ok && sel.Kind() == types.MethodExpr {
				return fn.FullName()
			}

			return ""
		}

		return symbolOf(info, e.Sel)

	case *ast.UnaryExpr:
		if e.Op != token.AND {
			return ""
		}

		if v := addressed(info, astutil.Unparen(e.X)); v != nil {
			return "&" + v.Pkg().Path() + "." + v.Name()
		}
	}

	return ""
}

// addressed returns the package level variable denoted by expr.
func addressed(info *types.Info, expr ast.Expr) *types.Var {
	var id *ast.Ident

	switch e := expr.(type) {
	case *ast.Ident:
		id = e

	case *ast.SelectorExpr:
		if _, ok := info.Selections[e]; ok {
			return nil
		}

		id = e.Sel

	default:
		return nil
	}

	v, ok := info.Uses[id].(*types.Var)
	if !ok || v.Pkg() == nil || v.Parent() != v.Pkg().Scope() {
		return nil
	}

	return v
}

// typeRange returns the range spanned by an integer type.
func typeRange(sizes types.Sizes, typ types.Type) Range {
	if typ == nil {
		return Range{}
	}

	basic, ok := typ.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return Range{}
	}

	width := uint(64)
	if basic.Info()&types.IsUntyped == 0 && sizes != nil {
		width = uint(sizes.Sizeof(basic) * 8)
	}

	one := big.NewInt(1)

	if basic.Info()&types.IsUnsigned != 0 {
		upper := new(big.Int).Lsh(one, width)

		return NewRange(new(big.Int), upper.Sub(upper, one))
	}

	upper := new(big.Int).Lsh(one, width-1)
	lower := new(big.Int).Neg(upper)

	return NewRange(lower, upper.Sub(upper, one))
}
