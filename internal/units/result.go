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

	"golang.org/x/tools/go/ast/astutil"
)

// Result holds the units of the expressions of a package.
type Result struct {
	units      map[ast.Expr]Unit
	arraySizes map[ast.Expr]struct{}
}

func newResult() *Result {
	return &Result{
		units:      make(map[ast.Expr]Unit),
		arraySizes: make(map[ast.Expr]struct{}),
	}
}

func (r *Result) set(expr ast.Expr, u Unit) { r.units[expr] = u }

func (r *Result) arraySize(expr ast.Expr) { r.arraySizes[expr] = struct{}{} }

// Unit returns the unit of expr at its evaluation, if known.
func (r *Result) Unit(expr ast.Expr) (Unit, bool) {
	u, ok := r.units[astutil.Unparen(expr)]

	return u, ok
}

// UnitString returns the name of the unit of expr, if known.
func (r *Result) UnitString(expr ast.Expr) (string, bool) {
	u, ok := r.Unit(expr)
	if !ok {
		return "", false
	}

	return u.String(), true
}

// IsArraySize reports whether expr counts the elements of an array.
func (r *Result) IsArraySize(expr ast.Expr) bool {
	if u, ok := r.Unit(expr); ok && u == ElementCount {
		return true
	}

	_, ok := r.arraySizes[astutil.Unparen(expr)]

	return ok
}
