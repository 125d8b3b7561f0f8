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

// Package mtag tracks parameters stored into tagged memory regions across calls
// and mints alias tags for the values callers hand over.
package mtag

import (
	"fmt"

	"fillmore-labs.com/unitflow/internal/lattice"
	"fillmore-labs.com/unitflow/internal/summary"
)

// Kind discriminates [Info].
type Kind uint8

const (
	// Pointer is a local pointer known to hold a tagged object.
	Pointer Kind = iota + 1
	// Assign is a parameter stored inside a tagged object.
	Assign
)

// Info is the state of a tracked value.
type Info struct {
	Kind Kind
	Tag  summary.Tag
	// Offset is the byte offset inside the region of Tag, for [Assign].
	Offset int
	// Param is the index of the stored parameter, for [Assign].
	Param int
	// Path is where the parameter is stored, relative to the parameter, for [Assign].
	Path summary.AccessPath
}

// Fact is the lattice element of the memory tag pass.
type Fact = lattice.Fact[Info]

func (i Info) String() string {
	switch i.Kind {
	case Pointer:
		return "pointer " + i.Tag.String()

	case Assign:
		return fmt.Sprintf("p%d%s stored at %s", i.Param, i.Path, i.tagOffset())

	default:
		return "invalid"
	}
}

func (i Info) tagOffset() summary.TagOffset {
	return summary.TagOffset{Tag: i.Tag, Offset: i.Offset}
}
