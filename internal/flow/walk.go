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
	"go/ast"
	"go/token"
	"go/types"
)

// node fires the hooks of a single control flow node.
func (d *Driver[V]) node(c *Context[V], n ast.Node) {
	switch n := n.(type) {
	case *ast.AssignStmt:
		d.assignStmt(c, n)

	case *ast.ValueSpec:
		d.valueSpec(c, n)

	case *ast.ExprStmt:
		d.expr(c, n.X)

	case *ast.IncDecStmt:
		d.expr(c, n.X)

	case *ast.SendStmt:
		d.expr(c, n.Chan)
		d.expr(c, n.Value)

	case *ast.GoStmt:
		d.expr(c, n.Call)

	case *ast.DeferStmt:
		d.expr(c, n.Call)

	case *ast.ReturnStmt:
		for _, r := range n.Results {
			d.expr(c, r)
		}

		if d.hooks.Return != nil {
			d.hooks.Return(c, n)
		}

	case ast.Expr:
		d.expr(c, n)
	}
}

func (d *Driver[V]) assignStmt(c *Context[V], s *ast.AssignStmt) {
	for _, r := range s.Rhs {
		d.expr(c, r)
	}

	for _, l := range s.Lhs {
		d.lvalue(c, l)
	}

	if d.hooks.Assign == nil {
		return
	}

	op := s.Tok
	if op == token.DEFINE {
		op = token.ASSIGN
	}

	d.assignments(c, s.Lhs, s.Rhs, op, s)
}

func (d *Driver[V]) valueSpec(c *Context[V], s *ast.ValueSpec) {
	for _, v := range s.Values {
		d.expr(c, v)
	}

	if d.hooks.Assign == nil || len(s.Values) == 0 {
		return
	}

	lhs := make([]ast.Expr, len(s.Names))
	for i, id := range s.Names {
		lhs[i] = id
	}

	d.assignments(c, lhs, s.Values, token.ASSIGN, s)
}

// assignments splits a (possibly tuple) assignment into single [Assignment]s.
func (d *Driver[V]) assignments(c *Context[V], lhs, rhs []ast.Expr, op token.Token, stmt ast.Node) {
	switch {
	case len(lhs) == len(rhs):
		for i, l := range lhs {
			d.hooks.Assign(c, Assignment{Lhs: l, Rhs: rhs[i], Op: op, Result: -1, Stmt: stmt})
		}

	case len(rhs) == 1:
		for i, l := range lhs {
			d.hooks.Assign(c, Assignment{Lhs: l, Rhs: rhs[0], Op: op, Result: i, Stmt: stmt})
		}
	}
}

// lvalue evaluates the subexpressions of an assigned expression.
func (d *Driver[V]) lvalue(c *Context[V], e ast.Expr) {
	switch e := e.(type) {
	case *ast.IndexExpr:
		d.expr(c, e.X)
		d.expr(c, e.Index)

	case *ast.SelectorExpr:
		d.lvalue(c, e.X)

	case *ast.StarExpr:
		d.lvalue(c, e.X)

	case *ast.ParenExpr:
		d.lvalue(c, e.X)
	}
}

// expr evaluates e in post order, firing the hooks of e after those of its operands.
func (d *Driver[V]) expr(c *Context[V], e ast.Expr) {
	if e == nil {
		return
	}

	switch e := e.(type) {
	case *ast.ParenExpr:
		d.expr(c, e.X)

	case *ast.UnaryExpr:
		d.expr(c, e.X)

	case *ast.StarExpr:
		d.expr(c, e.X)

	case *ast.SelectorExpr:
		if _, ok := c.Pass.TypesInfo.Selections[e]; ok {
			d.expr(c, e.X)
		}

	case *ast.IndexExpr:
		d.expr(c, e.X)
		d.expr(c, e.Index)

	case *ast.SliceExpr:
		d.expr(c, e.X)
		d.expr(c, e.Low)
		d.expr(c, e.High)
		d.expr(c, e.Max)

	case *ast.TypeAssertExpr:
		d.expr(c, e.X)

	case *ast.CompositeLit:
		for _, elt := range e.Elts {
			d.expr(c, elt)
		}

	case *ast.KeyValueExpr:
		d.expr(c, e.Value)

	case *ast.BinaryExpr:
		d.binary(c, e)

	case *ast.CallExpr:
		d.call(c, e)

	case *ast.FuncLit:
		// Function literals are not analyzed.
	}

	if d.hooks.Expr != nil {
		d.hooks.Expr(c, e)
	}
}

func (d *Driver[V]) binary(c *Context[V], e *ast.BinaryExpr) {
	d.expr(c, e.X)
	d.expr(c, e.Y)

	switch e.Op {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		if d.hooks.Condition != nil {
			d.hooks.Condition(c, e)
		}

	case token.LAND, token.LOR:
		// Logical operators have no hook.

	default:
		if d.hooks.Binary != nil {
			d.hooks.Binary(c, e)
		}
	}
}

func (d *Driver[V]) call(c *Context[V], call *ast.CallExpr) {
	if tv, ok := c.Pass.TypesInfo.Types[call.Fun]; ok && tv.IsType() {
		// Conversion
		for _, a := range call.Args {
			d.expr(c, a)
		}

		return
	}

	if _, ok := call.Fun.(*ast.FuncLit); !ok {
		d.callee(c, call.Fun)
	}

	for _, a := range call.Args {
		d.expr(c, a)
	}

	if d.allocs != nil && d.hooks.Allocation != nil {
		if site, ok := d.allocs.Site(call); ok {
			d.hooks.Allocation(c, site)
		}
	}

	if d.hooks.Call != nil {
		d.hooks.Call(c, call)
	}
}

// callee evaluates the receiver of a method value.
func (d *Driver[V]) callee(c *Context[V], fun ast.Expr) {
	sel, ok := fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	if s, ok := c.Pass.TypesInfo.Selections[sel]; ok && s.Kind() == types.MethodVal {
		d.expr(c, sel.X)
	}
}
