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

package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/unitflow/internal/lattice"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	facts := []Fact[string]{
		Undefined[string](),
		Of("byte"),
		Of("bit"),
		Conflicting[string](),
	}

	for _, a := range facts {
		assert.Equal(t, a, Merge(a, a), "merge of %v with itself", a)
		assert.Equal(t, a, Merge(Undefined[string](), a), "undefined is the identity for %v", a)
		assert.True(t, Merge(Conflicting[string](), a).Conflicting(), "conflicting absorbs %v", a)

		for _, b := range facts {
			assert.Equal(t, Merge(a, b), Merge(b, a), "merge of %v and %v commutes", a, b)
		}
	}

	assert.True(t, Merge(Of("byte"), Of("bit")).Conflicting())
	assert.Equal(t, Of("byte"), Merge(Of("byte"), Of("byte")))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.True(t, MergeAll[int]().Undefined())
	assert.Equal(t, Of(3), MergeAll(Undefined[int](), Of(3), Of(3)))
	assert.True(t, MergeAll(Of(1), Undefined[int](), Of(2)).Conflicting())
}

func TestValue(t *testing.T) {
	t.Parallel()

	v, ok := Of(7).Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = Conflicting[int]().Value()
	assert.False(t, ok)

	_, ok = Undefined[int]().Value()
	assert.False(t, ok)

	assert.True(t, Disagree(Of(1), Of(2)))
	assert.False(t, Disagree(Of(1), Of(1)))
	assert.False(t, Disagree(Of(1), Conflicting[int]()))
	assert.False(t, Disagree(Undefined[int](), Of(1)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "undefined", Undefined[int]().String())
	assert.Equal(t, "merged", Conflicting[int]().String())
	assert.Equal(t, "byte", Of("byte").String())
	assert.True(t, Equal(Of("a"), Of("a")))
	assert.False(t, Equal(Of("a"), Conflicting[string]()))
}
