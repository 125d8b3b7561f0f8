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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/unitflow/internal/summary"
	"fillmore-labs.com/unitflow/internal/testsource"
)

func TestMint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mint("alloc", "a.go:1:1"), mint("alloc", "a.go:1:1"))
	assert.NotEqual(t, mint("alloc", "a.go:1:1"), mint("alloc", "a.go:1:2"))
	assert.NotEqual(t, mint("ab", "c"), mint("a", "bc"), "parts are separated")

	tag := mint("global", "test", "value")
	assert.NotEqual(t, aliasTag(tag, "test/a.go:3:2"), aliasTag(tag, "test/a.go:4:2"))
	assert.Equal(t, aliasTag(tag, "test/a.go:3:2"), aliasTag(tag, "test/a.go:3:2"))
}

func TestSite(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	f := fset.AddFile("/src/test/a.go", -1, 100)
	f.SetLines([]int{0, 10, 20})

	pkg := types.NewPackage("example.com/test", "test")

	assert.Equal(t, "example.com/test/a.go:2:4", site(fset, pkg, f.Pos(13)))

	v := types.NewVar(token.NoPos, pkg, "value", types.Typ[types.Int])
	assert.Equal(t, mint("global", "example.com/test", "value"), globalTag(v))
	assert.NotEqual(t, globalTag(v), allocationTag(fset, pkg, f.Pos(13)))
}

func TestInfo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pointer 7", Info{Kind: Pointer, Tag: 7}.String())
	assert.Equal(t, "p1$->[8] stored at 7+16",
		Info{Kind: Assign, Tag: 7, Offset: 16, Param: 1, Path: summary.Field(8)}.String())
	assert.Equal(t, "invalid", Info{}.String())
}

func TestOffsetOf(t *testing.T) {
	t.Parallel()

	const src = `
	var (
		h struct {
			fn   func()
			data *int
		}
		p *struct {
			a int32
			b int64
		}
		e struct {
			x int32
			inner
		}
		q struct {
			x int32
			*inner
		}
	)
	_ = h.data
	_ = p.b
	_ = e.z
	_ = q.z
	_ = h
}

type inner struct {
	y int8
	z int64
}

func other() {
`

	info, fn := testsource.Load(t, src)

	e := &Engine{pass: &analysis.Pass{TypesInfo: info}, sizes: types.SizesFor("gc", "amd64")}

	values := testsource.Values(fn)
	require.Len(t, values, 5)

	for i, want := range []int{8, 8, 16, 8} {
		sel, ok := values[i].(*ast.SelectorExpr)
		require.True(t, ok)

		got, ok := e.offsetOf(sel)
		require.True(t, ok, "offset %d", i)
		assert.Equal(t, want, got, "offset %d", i)
	}

	assert.Nil(t, variable(info, values[0]), "field selection")
	assert.Equal(t, "h", variable(info, values[4]).Name())
}
