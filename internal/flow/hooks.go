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

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/astutil"

	"fillmore-labs.com/unitflow/internal/alloc"
	"fillmore-labs.com/unitflow/internal/lattice"
)

// Phase is the driver phase a hook runs in.
type Phase uint8

//go:generate go tool stringer -type Phase -linecomment
const (
	// Solve iterates to a fixpoint. Hooks must not have side effects.
	Solve Phase = iota // solve

	// Warmup replays the fixpoint once, persisting summaries only.
	Warmup // warmup

	// Final replays the fixpoint once, persisting and reporting.
	Final // final
)

// Reporter receives diagnostics.
type Reporter interface {
	Reportf(rng analysis.Range, format string, args ...any)
}

// Assignment is a single assignment of a value to a left hand side.
type Assignment struct {
	// Lhs is the assigned expression.
	Lhs ast.Expr
	// Rhs is the assigned value, nil for "var x T".
	Rhs ast.Expr
	// Op is the assignment token, token.ASSIGN for declarations with values.
	Op token.Token
	// Result is the index of the result of a multi-value Rhs, -1 otherwise.
	Result int
	// Stmt is the enclosing statement or value spec.
	Stmt ast.Node
}

// Exit is the state at a return statement.
type Exit[V comparable] struct {
	Return *ast.ReturnStmt
	State  *State[V]
}

// Hooks are the callbacks fired by the driver. Nil hooks are skipped.
type Hooks[V comparable] struct {
	// Entry seeds the state at function entry.
	Entry func(c *Context[V])
	// Assign fires after the right hand side is evaluated.
	Assign func(c *Context[V], a Assignment)
	// Binary fires for arithmetic and bitwise binary expressions.
	Binary func(c *Context[V], e *ast.BinaryExpr)
	// Condition fires for comparisons.
	Condition func(c *Context[V], e *ast.BinaryExpr)
	// Call fires after the arguments of a call are evaluated.
	Call func(c *Context[V], call *ast.CallExpr)
	// Allocation fires for recognized allocation calls, before Call.
	Allocation func(c *Context[V], site alloc.Site)
	// Return fires at each return statement, after the results are evaluated.
	Return func(c *Context[V], ret *ast.ReturnStmt)
	// Exit fires once with the states of all return statements, outside [Solve].
	Exit func(c *Context[V], exits []Exit[V])
	// Expr observes every evaluated expression.
	Expr func(c *Context[V], e ast.Expr)

	// Merge joins facts at control flow joins, [lattice.Merge] when nil.
	Merge func(a, b lattice.Fact[V]) lattice.Fact[V]
	// PreMerge fires outside [Solve] for each key two joining paths disagree on.
	PreMerge func(c *Context[V], key Key, a, b lattice.Fact[V])
}

// Func is a function to analyze.
type Func struct {
	Decl *ast.FuncDecl
	Obj  *types.Func
}

// Params returns the parameters of the function, without receiver.
func (f Func) Params() []*types.Var {
	sig, ok := f.Obj.Type().(*types.Signature)
	if !ok {
		return nil
	}

	params := make([]*types.Var, 0, sig.Params().Len())
	for i := range sig.Params().Len() {
		params = append(params, sig.Params().At(i))
	}

	return params
}

// Context is the view of the driver a hook gets.
type Context[V comparable] struct {
	Pass *analysis.Pass
	Func Func

	phase    Phase
	state    *State[V]
	entry    *State[V]
	node     ast.Node
	reporter Reporter
}

// Phase returns the current driver phase.
func (c *Context[V]) Phase() Phase { return c.phase }

// Solving reports whether side effects must be suppressed.
func (c *Context[V]) Solving() bool { return c.phase == Solve }

// Final reports whether diagnostics are reported.
func (c *Context[V]) Final() bool { return c.phase == Final }

// State returns the current state.
func (c *Context[V]) State() *State[V] { return c.state }

// Start returns the state at function entry.
func (c *Context[V]) Start() *State[V] { return c.entry }

// Node returns the current statement or expression node of the control flow graph.
func (c *Context[V]) Node() ast.Node { return c.node }

// AtReturn reports whether the current node is a return statement.
func (c *Context[V]) AtReturn() bool {
	_, ok := c.node.(*ast.ReturnStmt)

	return ok
}

// Get returns the fact of a tracked expression, [lattice.Undefined] for untracked ones.
func (c *Context[V]) Get(expr ast.Expr) lattice.Fact[V] {
	key, ok := KeyOf(c.Pass.TypesInfo, expr)
	if !ok {
		return lattice.Undefined[V]()
	}

	return c.state.Get(key)
}

// Set sets the fact of a tracked expression and reports whether it is tracked.
func (c *Context[V]) Set(expr ast.Expr, fact lattice.Fact[V]) bool {
	key, ok := KeyOf(c.Pass.TypesInfo, expr)
	if !ok {
		return false
	}

	c.state.Set(key, fact)

	return true
}

// ParamIndex returns the index of the parameter expr refers to, or -1.
func (c *Context[V]) ParamIndex(expr ast.Expr) int {
	id, ok := astutil.Unparen(expr).(*ast.Ident)
	if !ok {
		return -1
	}

	obj := c.Pass.TypesInfo.Uses[id]
	if obj == nil {
		return -1
	}

	for i, p := range c.Func.Params() {
		if p == obj {
			return i
		}
	}

	return -1
}

// Reportf reports a diagnostic in the [Final] phase.
func (c *Context[V]) Reportf(rng analysis.Range, format string, args ...any) {
	if c.phase != Final || c.reporter == nil {
		return
	}

	c.reporter.Reportf(rng, format, args...)
}
