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
	"go/token"

	"fillmore-labs.com/unitflow/internal/astutil"
	"fillmore-labs.com/unitflow/internal/lattice"
	"fillmore-labs.com/unitflow/internal/summary"
)

// units returns the unit of expr at the current program point, if known.
func (e *Engine) units(c *flowContext, expr ast.Expr) (Unit, bool) {
	info := e.pass.TypesInfo
	expr = astutil.Strip(info, expr)

	if u, ok := e.hints.named(expr); ok {
		return u, true
	}

	switch x := expr.(type) {
	case *ast.BinaryExpr:
		return e.binop(c, x.X, x.Op, x.Y)

	case *ast.CallExpr:
		return e.resultUnits(x, 0)

	case *ast.BasicLit:
		return 0, false
	}

	switch f := c.Get(expr); {
	case f.Defined():
		return f.Value()

	case f.Conflicting():
		return 0, false
	}

	return e.memberUnits(expr)
}

// binop derives the unit of "l op r".
func (e *Engine) binop(c *flowContext, l ast.Expr, op token.Token, r ast.Expr) (Unit, bool) {
	info := e.pass.TypesInfo

	switch op {
	case token.ADD, token.SUB:
		if opaque(info, l) || opaque(info, r) {
			return 0, false
		}

		lu, lok := e.units(c, l)
		ru, rok := e.units(c, r)

		if lok && lu == ElementCount || rok && ru == ElementCount {
			return 0, false
		}

		switch {
		case lok && rok:
			return lu, lu == ru

		case lok:
			return lu, true

		case rok:
			return ru, true
		}

	case token.MUL:
		if e.hints.pageSize(r) {
			return Byte, true
		}

	case token.QUO:
		if e.hints.wordBits(r) {
			return WordCount, true
		}

		if e.hints.pageSize(r) {
			return Page, true
		}

	case token.SHL:
		if e.hints.pageShift(r) {
			return Byte, true
		}

	case token.SHR:
		if e.hints.pageShift(r) {
			return Page, true
		}
	}

	return 0, false
}

// resultUnits returns the unit of result i of call.
func (e *Engine) resultUnits(call *ast.CallExpr, i int) (Unit, bool) {
	fn := e.tracker.Callee(call)
	if fn == nil {
		return 0, false
	}

	param := summary.ResultParam(i)
	if u, ok := e.builtinUnits(fn, param); ok {
		return u, true
	}

	var f Fact
	for _, r := range e.repo.Returns(summary.KeyOf(fn), summary.Units) {
		if r.Param != param || r.Path != summary.Self.String() {
			continue
		}

		u, ok := ParseUnit(r.Value)
		if !ok {
			continue
		}

		f = lattice.Merge(f, lattice.Of(u))
	}

	return f.Value()
}
