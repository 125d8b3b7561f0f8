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

package flow_test

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/unitflow/internal/flow"
	"fillmore-labs.com/unitflow/internal/lattice"
	"fillmore-labs.com/unitflow/internal/testsource"
)

func TestKeyOf(t *testing.T) {
	t.Parallel()

	const src = `
	var s struct{ f struct{ g int } }
	p := &s
	_ = s.f.g
	_ = p.f.g
	_ = (*p).f.g
	_ = *p
	_ = p.f.g + 1
`

	info, fn := testsource.Load(t, src+"\t_ = 1\n")

	rhs := func(i int) ast.Expr {
		assign, ok := fn.Body.List[i].(*ast.AssignStmt)
		require.True(t, ok)

		return assign.Rhs[0]
	}

	k1, ok := KeyOf(info, rhs(2))
	require.True(t, ok)
	assert.Equal(t, "s.f.g", k1.String())

	k2, ok := KeyOf(info, rhs(3))
	require.True(t, ok)
	assert.Equal(t, "p.f.g", k2.String())

	k3, ok := KeyOf(info, rhs(4))
	require.True(t, ok)
	assert.Equal(t, k2, k3)

	k4, ok := KeyOf(info, rhs(5))
	require.True(t, ok)
	assert.Equal(t, "*p", k4.String())

	_, ok = KeyOf(info, rhs(6))
	assert.False(t, ok)
}

func TestState(t *testing.T) {
	t.Parallel()

	const src = `
	a, b := 1, 2
	_, _ = a, b
`

	info, fn := testsource.Load(t, src)

	assign, ok := fn.Body.List[0].(*ast.AssignStmt)
	require.True(t, ok)

	ka, ok := KeyOf(info, assign.Lhs[0])
	require.True(t, ok)
	kb, ok := KeyOf(info, assign.Lhs[1])
	require.True(t, ok)

	s := NewState[string]()
	s.Set(kb, lattice.Of("byte"))
	s.Set(ka, lattice.Of("bit"))

	var keys []string
	for k := range s.All() {
		keys = append(keys, k.String())
	}

	assert.Equal(t, []string{"a", "b"}, keys, "declaration order")

	o := s.Clone()
	o.Set(ka, lattice.Of("page"))
	o.Delete(kb)

	assert.False(t, s.Equal(o))
	assert.Equal(t, lattice.Of("bit"), s.Get(ka), "clone is independent")

	s.Join(o, lattice.Merge[string])
	assert.True(t, s.Get(ka).Conflicting())
	assert.Equal(t, lattice.Of("byte"), s.Get(kb))

	s.Set(kb, lattice.Undefined[string]())
	assert.Equal(t, 1, s.Len())
}
