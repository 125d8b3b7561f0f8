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

package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/unitflow/internal/summary"
)

func TestAccessPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$", Self.String())
	assert.Equal(t, "$->[8]", Field(8).String())
	assert.Equal(t, "$->[-4]", Field(-4).String())

	p, err := ParseAccessPath("$->[16]")
	require.NoError(t, err)
	assert.Equal(t, Field(16), p)

	p, err = ParseAccessPath("$")
	require.NoError(t, err)
	assert.Equal(t, Self, p)

	for _, bad := range []string{"", "$->", "$->[x]", "$->[8", "*"} {
		_, err := ParseAccessPath(bad)
		assert.ErrorIs(t, err, ErrMalformed, "path %q", bad)
	}
}

func TestTagOffset(t *testing.T) {
	t.Parallel()

	v := TagOffset{Tag: 12345678901234, Offset: 8}
	assert.Equal(t, "12345678901234+8", v.String())

	got, err := ParseTagOffset("42+-8")
	require.NoError(t, err)
	assert.Equal(t, TagOffset{Tag: 42, Offset: -8}, got)

	for _, bad := range []string{"42", "+8", "42+", "x+1", "42+y"} {
		_, err := ParseTagOffset(bad)
		assert.ErrorIs(t, err, ErrMalformed, "value %q", bad)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "units", Units.String())
	assert.Equal(t, "mtag_assign", MTagAssign.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestResultParam(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Return, ResultParam(0))
	assert.Equal(t, -3, ResultParam(2))

	i, ok := ResultIndex(-2)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = ResultIndex(0)
	assert.False(t, ok)
}
