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
	"go/types"

	"fillmore-labs.com/unitflow/internal/astutil"
	"fillmore-labs.com/unitflow/internal/flow"
	"fillmore-labs.com/unitflow/internal/lattice"
	"fillmore-labs.com/unitflow/internal/summary"
	"fillmore-labs.com/unitflow/internal/tracker"
)

// builtinUnits returns the unit of a parameter or result of fn from the builtin function table.
func (e *Engine) builtinUnits(fn *types.Func, param int) (Unit, bool) {
	qualified := tracker.FuncNameOf(fn).String()

	for _, f := range e.builtins.Functions {
		if f.Param != param || f.Name != fn.Name() && f.Name != qualified {
			continue
		}

		if u, ok := ParseUnit(f.Unit); ok {
			return u, true
		}
	}

	return 0, false
}

// entry seeds parameters from the builtin table and from agreeing caller records.
func (e *Engine) entry(c *flowContext) {
	fn := c.Func.Obj
	key := summary.KeyOf(fn)

	e.results = nil
	if sig, ok := fn.Type().(*types.Signature); ok {
		e.results = make([]Fact, sig.Results().Len())
	}

	callers := e.repo.Callers(key, summary.Units)

	for i, p := range c.Func.Params() {
		if u, ok := e.builtinUnits(fn, i); ok {
			c.State().Set(flow.Key{Obj: p}, lattice.Of(u))

			continue
		}

		var f Fact
		for _, r := range callers {
			if r.Param != i || r.Path != summary.Self.String() {
				continue
			}

			if u, ok := ParseUnit(r.Value); ok {
				f = lattice.Merge(f, lattice.Of(u))
			}
		}

		if f.Defined() {
			c.State().Set(flow.Key{Obj: p}, f)
		}
	}
}

// call applies parameter seeds and return records of the callee to the arguments,
// and records the units of the arguments for the callee.
func (e *Engine) call(c *flowContext, call *ast.CallExpr) {
	fn := e.tracker.Callee(call)
	if fn == nil {
		return
	}

	for i, arg := range call.Args {
		if u, ok := e.builtinUnits(fn, i); ok {
			e.setUnits(c, arg, u)
		}
	}

	key := summary.KeyOf(fn)

	for _, r := range e.repo.Returns(key, summary.Units) {
		if r.Param < 0 || r.Param >= len(call.Args) || r.Path != summary.Self.String() {
			continue
		}

		if u, ok := ParseUnit(r.Value); ok {
			e.setUnits(c, call.Args[r.Param], u)
		}
	}

	if c.Solving() {
		return
	}

	for i, arg := range call.Args {
		if u, ok := e.units(c, arg); ok {
			e.repo.InsertCaller(key, summary.Record{Kind: summary.Units, Param: i, Path: summary.Self.String(), Value: u.String()})
		}
	}
}

// ret merges the units of the returned values.
func (e *Engine) ret(c *flowContext, ret *ast.ReturnStmt) {
	if c.Solving() {
		return
	}

	sig, ok := c.Func.Obj.Type().(*types.Signature)
	if !ok {
		return
	}

	results := sig.Results()

	switch n := len(ret.Results); {
	case n == results.Len():
		for i, r := range ret.Results {
			e.mergeResult(i, e.factOf(c, r))
		}

	case n == 0:
		for i := range results.Len() {
			e.mergeResult(i, c.State().Get(flow.Key{Obj: results.At(i)}))
		}

	case n == 1:
		call, ok := astutil.Strip(e.pass.TypesInfo, ret.Results[0]).(*ast.CallExpr)
		if !ok {
			return
		}

		for i := range results.Len() {
			if u, ok := e.resultUnits(call, i); ok {
				e.mergeResult(i, lattice.Of(u))
			}
		}
	}
}

func (e *Engine) factOf(c *flowContext, expr ast.Expr) Fact {
	if u, ok := e.units(c, expr); ok {
		return lattice.Of(u)
	}

	return lattice.Undefined[Unit]()
}

func (e *Engine) mergeResult(i int, f Fact) {
	if i < len(e.results) {
		e.results[i] = lattice.Merge(e.results[i], f)
	}
}

// exit persists the units parameters gained and the units of the results.
func (e *Engine) exit(c *flowContext, exits []flow.Exit[Unit]) {
	key := summary.KeyOf(c.Func.Obj)

	for i, p := range c.Func.Params() {
		k := flow.Key{Obj: p}

		var f Fact
		for _, x := range exits {
			f = lattice.Merge(f, x.State.Get(k))
		}

		u, ok := f.Value()
		if !ok || lattice.Equal(f, c.Start().Get(k)) {
			continue
		}

		e.insertReturn(key, i, u)
	}

	for i, f := range e.results {
		if u, ok := f.Value(); ok {
			e.insertReturn(key, summary.ResultParam(i), u)
		}
	}
}

func (e *Engine) insertReturn(key summary.FuncKey, param int, u Unit) {
	r := summary.Record{Kind: summary.Units, Param: param, Path: summary.Self.String(), Value: u.String()}

	e.logger.Debug("summary", "func", key, "param", param, "unit", u)
	e.repo.InsertReturn(key, r)
}
