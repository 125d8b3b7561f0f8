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
	"strings"

	"fillmore-labs.com/unitflow/internal/lattice"
	"fillmore-labs.com/unitflow/internal/summary"
)

// member is a struct field reached by a selector.
type member struct {
	// name is "(path.T).f".
	name string
	// short is "T.f", matched against the builtin member table.
	short string
	field *types.Var
}

// memberOf returns the member selected by expr.
// Fields of unnamed struct types are not members.
func (e *Engine) memberOf(expr ast.Expr) (member, bool) {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return member{}, false
	}

	s, ok := e.pass.TypesInfo.Selections[sel]
	if !ok || s.Kind() != types.FieldVal {
		return member{}, false
	}

	var (
		owner types.Type
		field *types.Var
	)

	typ := s.Recv()
	for _, i := range s.Index() {
		if p, ok := typ.Underlying().(*types.Pointer); ok {
			typ = p.Elem()
		}

		st, ok := typ.Underlying().(*types.Struct)
		if !ok || i >= st.NumFields() {
			return member{}, false
		}

		owner, field = typ, st.Field(i)
		typ = field.Type()
	}

	named, ok := types.Unalias(owner).(*types.Named)
	if !ok {
		return member{}, false
	}

	obj := named.Obj()

	qualified := obj.Name()
	if pkg := obj.Pkg(); pkg != nil {
		qualified = pkg.Path() + "." + qualified
	}

	return member{
		name:  "(" + qualified + ")." + field.Name(),
		short: obj.Name() + "." + field.Name(),
		field: field,
	}, true
}

// memberUnits returns the unit recorded for the member selected by expr.
// Disagreeing records yield no unit.
func (e *Engine) memberUnits(expr ast.Expr) (Unit, bool) {
	m, ok := e.memberOf(expr)
	if !ok {
		return 0, false
	}

	return e.recorded(m)
}

func (e *Engine) recorded(m member) (Unit, bool) {
	for _, seed := range e.builtins.Members {
		if seed.Name != m.short && seed.Name != m.name {
			continue
		}

		if u, ok := ParseUnit(seed.Unit); ok {
			return u, true
		}
	}

	var f Fact
	for _, v := range e.repo.Members(summary.Units, m.name) {
		u, ok := ParseUnit(v)
		if !ok {
			continue
		}

		f = lattice.Merge(f, lattice.Of(u))
	}

	return f.Value()
}

// storeMember persists the unit of a member, warning when it differs from the recorded one.
func (e *Engine) storeMember(c *flowContext, expr ast.Expr, u Unit) {
	m, ok := e.memberOf(expr)
	if !ok || e.ignored(m.name) {
		return
	}

	if old, ok := e.recorded(m); ok && old != u {
		c.Reportf(expr, "other places set '%s' to '%s' instead of '%s'", m.name, old, u)
	}

	if _, conflict := e.repo.InsertMember(summary.Units, m.name, u.String()); conflict {
		e.logger.Debug("member conflict", "member", m.name, "unit", u)
	}

	if m.field.Pkg() == e.pass.Pkg {
		e.fields[m.name] = m.field
	}
}

func (e *Engine) ignored(name string) bool {
	for _, prefix := range e.builtins.IgnoreMembers {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}
