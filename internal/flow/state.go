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
	"iter"
	"maps"
	"slices"

	"fillmore-labs.com/unitflow/internal/lattice"
)

// State maps tracked keys to their facts at one control flow point.
// Keys not present are [lattice.Undefined].
type State[V comparable] struct {
	facts map[Key]lattice.Fact[V]
}

// NewState creates an empty [State].
func NewState[V comparable]() *State[V] {
	return &State[V]{facts: make(map[Key]lattice.Fact[V])}
}

// Get returns the fact of key.
func (s *State[V]) Get(key Key) lattice.Fact[V] {
	return s.facts[key]
}

// Set sets the fact of key.
func (s *State[V]) Set(key Key, fact lattice.Fact[V]) {
	if fact.Undefined() {
		delete(s.facts, key)

		return
	}

	s.facts[key] = fact
}

// Delete removes key.
func (s *State[V]) Delete(key Key) {
	delete(s.facts, key)
}

// Len returns the number of keys with a fact.
func (s *State[V]) Len() int {
	return len(s.facts)
}

// Clone returns an independent copy of s.
func (s *State[V]) Clone() *State[V] {
	return &State[V]{facts: maps.Clone(s.facts)}
}

// Equal reports whether both states hold the same facts.
func (s *State[V]) Equal(o *State[V]) bool {
	return maps.Equal(s.facts, o.facts)
}

// All yields the keys and facts in declaration order.
func (s *State[V]) All() iter.Seq2[Key, lattice.Fact[V]] {
	return func(yield func(Key, lattice.Fact[V]) bool) {
		for _, k := range slices.SortedFunc(maps.Keys(s.facts), Key.compare) {
			if !yield(k, s.facts[k]) {
				return
			}
		}
	}
}

// Join merges o into s key by key using merge.
func (s *State[V]) Join(o *State[V], merge func(a, b lattice.Fact[V]) lattice.Fact[V]) {
	for k, f := range o.facts {
		s.Set(k, merge(s.facts[k], f))
	}

	for k, f := range s.facts {
		if _, ok := o.facts[k]; !ok {
			s.Set(k, merge(f, lattice.Undefined[V]()))
		}
	}
}
