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
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/unitflow/internal/alloc"
	"fillmore-labs.com/unitflow/internal/astutil"
	"fillmore-labs.com/unitflow/internal/config"
	"fillmore-labs.com/unitflow/internal/flow"
	"fillmore-labs.com/unitflow/internal/lattice"
)

func (e *Engine) binary(c *flowContext, x *ast.BinaryExpr) {
	switch x.Op {
	case token.ADD, token.SUB:
		e.checkConversion(c, x, x.X, x.Op, x.Y)

	case token.MUL:
		e.checkBitsBytes(c, x)
	}

	e.implyOperands(c, x.X, x.Op, x.Y)
}

// checkConversion warns when operands of an additive operation have different units.
func (e *Engine) checkConversion(c *flowContext, n ast.Node, l ast.Expr, op token.Token, r ast.Expr) {
	if opaque(e.pass.TypesInfo, l) {
		return
	}

	lu, lok := e.units(c, l)
	ru, rok := e.units(c, r)

	if !lok || !rok || lu == ru {
		return
	}

	c.Reportf(n, "missing conversion: '%s' '%s %s %s'", nodeString(n), lu, op, ru)
}

func (e *Engine) checkBitsBytes(c *flowContext, x *ast.BinaryExpr) {
	lu, lok := e.units(c, x.X)
	ru, rok := e.units(c, x.Y)

	if !lok || !rok {
		return
	}

	if lu == Bit && ru == Byte || lu == Byte && ru == Bit {
		c.Reportf(x, "multiplying bits * bytes '%s'", types.ExprString(x))
	}
}

// implyOperands sets units of operands derivable from the operation.
func (e *Engine) implyOperands(c *flowContext, l ast.Expr, op token.Token, r ast.Expr) {
	switch op {
	case token.SHL:
		if e.hints.pageShift(r) {
			e.setUnits(c, l, Page)
		}

	case token.SHR:
		if e.hints.pageShift(r) {
			e.setUnits(c, l, Byte)
		}

	case token.ADD, token.SUB:
		if opaque(e.pass.TypesInfo, l) {
			return
		}

		e.propagate(c, l, r)
	}
}

// propagate copies a known unit of one side onto the other side when that is unknown.
func (e *Engine) propagate(c *flowContext, l, r ast.Expr) {
	lu, lok := e.units(c, l)
	ru, rok := e.units(c, r)

	switch {
	case lok && !rok:
		e.setUnits(c, r, lu)

	case rok && !lok:
		e.setUnits(c, l, ru)
	}
}

func (e *Engine) condition(c *flowContext, x *ast.BinaryExpr) {
	lu, lok := e.units(c, x.X)
	ru, rok := e.units(c, x.Y)

	if lok && rok && lu != ru {
		c.Reportf(x, "comparing different units: '%s' '%s %s %s'", types.ExprString(x), lu, x.Op, ru)

		return
	}

	// Widening is imprecise: a comparison doesn't prove both sides share a unit.
	if e.behavior.Enabled(config.ComparisonWidening) {
		e.propagate(c, x.X, x.Y)
	}
}

func (e *Engine) assign(c *flowContext, a flow.Assignment) {
	if a.Rhs == nil {
		return
	}

	var (
		u  Unit
		ok bool
	)

	switch {
	case a.Op == token.ASSIGN && a.Result >= 0:
		call, isCall := astutil.Strip(e.pass.TypesInfo, a.Rhs).(*ast.CallExpr)
		if !isCall {
			return
		}

		u, ok = e.resultUnits(call, a.Result)

	case a.Op == token.ASSIGN:
		u, ok = e.units(c, a.Rhs)

	default:
		op, isOp := binaryOp(a.Op)
		if !isOp {
			return
		}

		if op == token.ADD || op == token.SUB {
			e.checkConversion(c, a.Stmt, a.Lhs, op, a.Rhs)
		}

		u, ok = e.binop(c, a.Lhs, op, a.Rhs)
	}

	if ok {
		e.setUnits(c, a.Lhs, u)
	}
}

// allocation marks the element count of an allocation whose element size is in bytes.
func (e *Engine) allocation(c *flowContext, site alloc.Site) {
	var l, r ast.Expr

	switch {
	case site.Count != nil && site.Elem != nil:
		l, r = site.Count, site.Elem

	case site.Count != nil:
		e.setUnits(c, site.Count, ElementCount)

		return

	case site.Total != nil:
		mul, ok := astutil.Strip(e.pass.TypesInfo, site.Total).(*ast.BinaryExpr)
		if !ok || mul.Op != token.MUL {
			return
		}

		l, r = mul.X, mul.Y

	default:
		return
	}

	if u, ok := e.units(c, l); ok && u == Byte {
		e.setUnits(c, r, ElementCount)
	}

	if u, ok := e.units(c, r); ok && u == Byte {
		e.setUnits(c, l, ElementCount)
	}
}

func (e *Engine) preMerge(c *flowContext, key flow.Key, a, b Fact) {
	if c.AtReturn() && !e.behavior.Enabled(config.ReturnMerges) {
		return
	}

	var rng analysis.Range = c.Func.Decl
	if n := c.Node(); n != nil {
		rng = n
	}

	c.Reportf(rng, "ambiguous units merge '%s' '%s' or '%s'", key, a, b)
}

// setUnits sets the unit of expr and persists it when expr is a struct member.
func (e *Engine) setUnits(c *flowContext, expr ast.Expr, u Unit) {
	expr = astutil.Strip(e.pass.TypesInfo, expr)

	c.Set(expr, lattice.Of(u))

	if c.Final() {
		e.storeMember(c, expr, u)
	}
}

func binaryOp(op token.Token) (token.Token, bool) {
	switch op {
	case token.ADD_ASSIGN:
		return token.ADD, true

	case token.SUB_ASSIGN:
		return token.SUB, true

	case token.MUL_ASSIGN:
		return token.MUL, true

	case token.QUO_ASSIGN:
		return token.QUO, true

	case token.SHL_ASSIGN:
		return token.SHL, true

	case token.SHR_ASSIGN:
		return token.SHR, true

	default:
		return token.ILLEGAL, false
	}
}

func nodeString(n ast.Node) string {
	switch n := n.(type) {
	case ast.Expr:
		return types.ExprString(n)

	case *ast.AssignStmt:
		if len(n.Lhs) == 1 && len(n.Rhs) == 1 {
			return types.ExprString(n.Lhs[0]) + " " + n.Tok.String() + " " + types.ExprString(n.Rhs[0])
		}
	}

	return ""
}
