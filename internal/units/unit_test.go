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

package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/unitflow/internal/units"
)

func TestParseUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Unit
	}{
		{"bit", Bit},
		{"byte", Byte},
		{"page", Page},
		{"msec", Msec},
		{"jiffy", Jiffy},
		{"word_count", WordCount},
		{"longs", WordCount},
		{"element_count", ElementCount},
		{"array_size", ElementCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseUnit(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := ParseUnit("furlong")
	assert.False(t, ok)
}

func TestText(t *testing.T) {
	t.Parallel()

	for u := Bit; u <= ElementCount; u++ {
		text, err := u.MarshalText()
		require.NoError(t, err)

		var got Unit
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, u, got)
	}

	var u Unit
	err := u.UnmarshalText([]byte("furlong"))
	require.ErrorIs(t, err, ErrUnknownUnit)
	assert.Zero(t, u)
}
