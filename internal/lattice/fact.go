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

// Package lattice implements the two-level fact lattice shared by the dataflow passes.
//
// A [Fact] is either undefined (no information yet), a single concrete value, or
// conflicting (two different values were observed on different paths):
//
//	        Conflicting
//	      /   |   ...   \
//	   v1    v2   ...   vn
//	      \   |   ...   /
//	        Undefined
//
// The lattice has height two, so every fixpoint iteration over it terminates.
package lattice

import "fmt"

type kind uint8

const (
	undefined kind = iota
	defined
	conflicting
)

// Fact is an immutable element of the lattice over concrete values of type V.
// The zero value is [Undefined].
type Fact[V comparable] struct {
	value V
	kind  kind
}

// Undefined returns the bottom element, carrying no information.
func Undefined[V comparable]() Fact[V] { return Fact[V]{} }

// Conflicting returns the top element, the result of merging different values.
func Conflicting[V comparable]() Fact[V] { return Fact[V]{kind: conflicting} }

// Of returns the fact for the concrete value v.
func Of[V comparable](v V) Fact[V] { return Fact[V]{value: v, kind: defined} }

// Value returns the concrete value and true, if the fact is neither undefined nor conflicting.
func (f Fact[V]) Value() (V, bool) {
	return f.value, f.kind == defined
}

// Defined reports whether f holds a concrete value.
func (f Fact[V]) Defined() bool { return f.kind == defined }

// Undefined reports whether f is the bottom element.
func (f Fact[V]) Undefined() bool { return f.kind == undefined }

// Conflicting reports whether f is the top element.
func (f Fact[V]) Conflicting() bool { return f.kind == conflicting }

// String implements [fmt.Stringer].
func (f Fact[V]) String() string {
	switch f.kind {
	case undefined:
		return "undefined"

	case conflicting:
		return "merged"

	default:
		return fmt.Sprint(f.value)
	}
}

// Equal reports value identity of two facts.
func Equal[V comparable](a, b Fact[V]) bool { return a == b }

// Merge combines two facts observed on different control flow paths.
//
// Merge is commutative and idempotent, [Undefined] is its identity and
// [Conflicting] absorbs every other fact.
func Merge[V comparable](a, b Fact[V]) Fact[V] {
	switch {
	case a.kind == undefined:
		return b

	case b.kind == undefined:
		return a

	case a == b:
		return a

	default:
		return Conflicting[V]()
	}
}

// MergeAll folds [Merge] over facts, starting from [Undefined].
func MergeAll[V comparable](facts ...Fact[V]) Fact[V] {
	var r Fact[V]
	for _, f := range facts {
		r = Merge(r, f)
	}

	return r
}

// Disagree reports whether both facts are defined and hold different values,
// the situation in which a merge loses information.
func Disagree[V comparable](a, b Fact[V]) bool {
	return a.kind == defined && b.kind == defined && a.value != b.value
}
