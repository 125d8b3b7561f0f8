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

package mtag

import (
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/unitflow/internal/alloc"
	"fillmore-labs.com/unitflow/internal/astutil"
	"fillmore-labs.com/unitflow/internal/flow"
	"fillmore-labs.com/unitflow/internal/lattice"
	"fillmore-labs.com/unitflow/internal/store"
	"fillmore-labs.com/unitflow/internal/summary"
	"fillmore-labs.com/unitflow/internal/tracker"
	"fillmore-labs.com/unitflow/internal/valrange"
)

type flowContext = flow.Context[Info]

// Engine holds the memory tag hooks for one package.
type Engine struct {
	pass    *analysis.Pass
	repo    store.Repository
	allocs  *alloc.Recognizer
	tracker tracker.Tracker
	sizes   types.Sizes
	logger  *slog.Logger
	result  *Result
}

// New creates an [Engine] reading and writing summaries through repo.
func New(pass *analysis.Pass, repo store.Repository, allocs *alloc.Recognizer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sizes := pass.TypesSizes
	if sizes == nil {
		sizes = types.SizesFor("gc", "amd64")
	}

	return &Engine{
		pass:    pass,
		repo:    repo,
		allocs:  allocs,
		tracker: tracker.New(pass.TypesInfo),
		sizes:   sizes,
		logger:  logger,
		result:  newResult(repo),
	}
}

// Hooks returns the driver callbacks of the engine.
func (e *Engine) Hooks() flow.Hooks[Info] {
	return flow.Hooks[Info]{
		Assign: e.assign,
		Call:   e.call,
		Return: e.ret,
		Expr:   e.observe,
	}
}

// Result returns the query surface of the pass.
func (e *Engine) Result() *Result { return e.result }

// resolveTag returns the tag of the object expr points to or denotes.
func (e *Engine) resolveTag(c *flowContext, expr ast.Expr) (summary.Tag, bool) {
	info := e.pass.TypesInfo
	expr = astutil.Strip(info, expr)

	switch x := expr.(type) {
	case *ast.UnaryExpr:
		if x.Op != token.AND {
			return 0, false
		}

		if lit, ok := astutil.Strip(info, x.X).(*ast.CompositeLit); ok {
			return allocationTag(e.pass.Fset, e.pass.Pkg, lit.Pos()), true
		}

		return e.resolveTag(c, fieldBase(info, x.X))

	case *ast.CallExpr:
		if e.allocs == nil {
			return 0, false
		}

		if _, ok := e.allocs.Site(x); ok {
			return allocationTag(e.pass.Fset, e.pass.Pkg, x.Pos()), true
		}

		return 0, false

	case *ast.StarExpr:
		return e.resolveTag(c, x.X)
	}

	if f, ok := c.Get(expr).Value(); ok && f.Kind == Pointer {
		return f.Tag, true
	}

	if v := variable(info, expr); v != nil {
		if v.Pkg() != nil && v.Parent() == v.Pkg().Scope() {
			return globalTag(v), true
		}

		if _, ok := v.Type().Underlying().(*types.Struct); ok {
			return allocationTag(e.pass.Fset, e.pass.Pkg, v.Pos()), true
		}
	}

	return 0, false
}

// fieldBase strips field selections from an addressed expression, so &d.f resolves to the tag of d.
// A selection through a pointer stops at the pointer.
func fieldBase(info *types.Info, expr ast.Expr) ast.Expr {
	for {
		expr = astutil.Strip(info, expr)

		sel, ok := expr.(*ast.SelectorExpr)
		if !ok {
			return expr
		}

		s, ok := info.Selections[sel]
		if !ok || s.Kind() != types.FieldVal {
			return expr
		}

		expr = sel.X
		if s.Indirect() {
			return astutil.Strip(info, expr)
		}
	}
}

// variable returns the variable expr denotes.
func variable(info *types.Info, expr ast.Expr) *types.Var {
	switch x := expr.(type) {
	case *ast.Ident:
		v, _ := info.Uses[x].(*types.Var)

		return v

	case *ast.SelectorExpr:
		if _, ok := info.Selections[x]; ok {
			return nil
		}

		v, _ := info.Uses[x.Sel].(*types.Var)

		return v

	default:
		return nil
	}
}

// offsetOf returns the byte offset of the selected field inside the object sel.X points to.
func (e *Engine) offsetOf(sel *ast.SelectorExpr) (int, bool) {
	s, ok := e.pass.TypesInfo.Selections[sel]
	if !ok || s.Kind() != types.FieldVal {
		return 0, false
	}

	var offset int64

	typ := s.Recv()
	for _, i := range s.Index() {
		if p, ok := typ.Underlying().(*types.Pointer); ok {
			typ, offset = p.Elem(), 0
		}

		st, ok := typ.Underlying().(*types.Struct)
		if !ok || i >= st.NumFields() {
			return 0, false
		}

		fields := make([]*types.Var, st.NumFields())
		for j := range fields {
			fields[j] = st.Field(j)
		}

		offset += e.sizes.Offsetsof(fields)[i]
		typ = fields[i].Type()
	}

	return int(offset), true
}

func (e *Engine) assign(c *flowContext, a flow.Assignment) {
	if a.Rhs == nil || a.Op != token.ASSIGN || a.Result >= 0 {
		return
	}

	info := e.pass.TypesInfo
	lhs := astutil.Strip(info, a.Lhs)

	if sel, ok := lhs.(*ast.SelectorExpr); ok {
		if param := c.ParamIndex(astutil.Strip(info, a.Rhs)); param >= 0 && e.storeParam(c, sel, param) {
			return
		}
	}

	if tag, ok := e.resolveTag(c, a.Rhs); ok {
		c.Set(lhs, lattice.Of(Info{Kind: Pointer, Tag: tag}))

		return
	}

	c.Set(lhs, lattice.Undefined[Info]())
}

// storeParam records that parameter param is stored into the field selected by sel.
func (e *Engine) storeParam(c *flowContext, sel *ast.SelectorExpr, param int) bool {
	tag, ok := e.resolveTag(c, sel.X)
	if !ok {
		return false
	}

	offset, ok := e.offsetOf(sel)
	if !ok {
		return false
	}

	return c.Set(sel, lattice.Of(Info{Kind: Assign, Tag: tag, Offset: offset, Param: param, Path: summary.Self}))
}

// ret persists every stored parameter reaching the return.
func (e *Engine) ret(c *flowContext, _ *ast.ReturnStmt) {
	if c.Solving() {
		return
	}

	key := summary.KeyOf(c.Func.Obj)

	for _, f := range c.State().All() {
		i, ok := f.Value()
		if !ok || i.Kind != Assign {
			continue
		}

		r := summary.Record{Kind: summary.MTagAssign, Param: i.Param, Path: i.Path.String(), Value: i.tagOffset().String()}

		e.logger.Debug("summary", "func", key, "param", i.Param, "path", i.Path, "value", r.Value)
		e.repo.InsertReturn(key, r)
	}
}

// call forwards stored parameters of the callee or mints alias tags for the stored arguments.
func (e *Engine) call(c *flowContext, call *ast.CallExpr) {
	fn := e.tracker.Callee(call)
	if fn == nil {
		return
	}

	info := e.pass.TypesInfo

	for _, r := range e.repo.Returns(summary.KeyOf(fn), summary.MTagAssign) {
		if r.Param < 0 || r.Param >= len(call.Args) {
			continue
		}

		to, err := summary.ParseTagOffset(r.Value)
		if err != nil {
			continue
		}

		arg := astutil.Strip(info, call.Args[r.Param])

		if param := c.ParamIndex(arg); param >= 0 {
			c.Set(arg, lattice.Of(Info{Kind: Assign, Tag: to.Tag, Offset: to.Offset, Param: param, Path: summary.Field(to.Offset)}))

			continue
		}

		if c.Solving() {
			continue
		}

		e.assignToAlias(c, call, arg, to)
	}
}

// assignToAlias mints the alias of the region the argument is stored into and records
// the value range of the argument under it.
func (e *Engine) assignToAlias(c *flowContext, call *ast.CallExpr, arg ast.Expr, to summary.TagOffset) {
	rng := valrange.Of(e.pass.TypesInfo, e.sizes, arg)
	alias := aliasTag(to.Tag, site(e.pass.Fset, e.pass.Pkg, call.Pos()))

	e.repo.InsertAlias(to.Tag, alias)
	e.repo.InsertTagData(alias, store.TagData{Offset: to.Offset, Value: rng.String()})

	if argTag, ok := e.resolveTag(c, arg); ok {
		e.repo.InsertTagLink(argTag, -to.Offset, alias)
	}

	e.logger.Debug("alias", "tag", to.Tag, "alias", alias, "offset", to.Offset, "range", rng)
}

func (e *Engine) observe(c *flowContext, expr ast.Expr) {
	if !c.Final() {
		return
	}

	if tag, ok := e.resolveTag(c, expr); ok {
		e.result.set(expr, tag)
	}
}
