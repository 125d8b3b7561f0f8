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

// Package store holds the persistent summary repository shared by the dataflow passes.
package store

import (
	"fillmore-labs.com/unitflow/internal/summary"
)

// Repository is the append-only key/value store summaries are published to.
//
// Readers treat missing entries as "no fact". Duplicate writes collapse.
type Repository interface {
	// InsertReturn appends a record describing what fn does to its parameters or result.
	InsertReturn(fn summary.FuncKey, r summary.Record)

	// Returns lists the return records of fn of the given kind.
	Returns(fn summary.FuncKey, kind summary.Kind) []summary.Record

	// InsertCaller appends a record describing what a call site passes to fn.
	InsertCaller(fn summary.FuncKey, r summary.Record)

	// Callers lists the caller records of fn of the given kind.
	Callers(fn summary.FuncKey, kind summary.Kind) []summary.Record

	// InsertMember appends a member-level fact. When another value was recorded
	// for the same member before, the first such value is returned with conflict set.
	InsertMember(kind summary.Kind, member, value string) (prior string, conflict bool)

	// Members lists the values recorded for a member.
	Members(kind summary.Kind, member string) []string

	// InsertAlias records that alias was minted from tag.
	InsertAlias(tag, alias summary.Tag)

	// Aliases lists the aliases minted from tag.
	Aliases(tag summary.Tag) []summary.Tag

	// InsertTagData records a value stored inside the region of tag.
	InsertTagData(tag summary.Tag, data TagData)

	// TagData lists the values recorded for tag.
	TagData(tag summary.Tag) []TagData

	// InsertTagLink records that other is a view of tag at the signed offset.
	InsertTagLink(tag summary.Tag, offset int, other summary.Tag)

	// TagLinks lists the links recorded for tag.
	TagLinks(tag summary.Tag) []TagLink
}

// TagData is a value recorded inside a tagged region.
type TagData struct {
	// Name identifies the data, empty for the region itself.
	Name string
	// Offset is the byte offset inside the region.
	Offset int
	// Value is the encoded value range.
	Value string
}

// TagLink relates two tags at a signed offset.
type TagLink struct {
	Offset int
	Other  summary.Tag
}
