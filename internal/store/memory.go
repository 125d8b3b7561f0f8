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

package store

import (
	"maps"
	"slices"
	"sync"

	"fillmore-labs.com/unitflow/internal/summary"
)

// Memory is an in-memory [Repository], safe for concurrent use.
//
// Values are kept in insertion order.
type Memory struct {
	mu sync.RWMutex

	returns map[funcKind][]summary.Record
	callers map[funcKind][]summary.Record
	members map[memberKey][]string
	aliases map[summary.Tag][]summary.Tag
	data    map[summary.Tag][]TagData
	links   map[summary.Tag][]TagLink
}

type funcKind struct {
	fn   summary.FuncKey
	kind summary.Kind
}

type memberKey struct {
	kind   summary.Kind
	member string
}

// NewMemory creates an empty in-memory [Repository].
func NewMemory() *Memory {
	return &Memory{
		returns: make(map[funcKind][]summary.Record),
		callers: make(map[funcKind][]summary.Record),
		members: make(map[memberKey][]string),
		aliases: make(map[summary.Tag][]summary.Tag),
		data:    make(map[summary.Tag][]TagData),
		links:   make(map[summary.Tag][]TagLink),
	}
}

var _ Repository = (*Memory)(nil)

// appendUnique appends v to m[k] unless it is already present and reports whether it was added.
func appendUnique[K comparable, V comparable](m map[K][]V, k K, v V) bool {
	vs := m[k]
	if slices.Contains(vs, v) {
		return false
	}

	m[k] = append(vs, v)

	return true
}

// InsertReturn implements [Repository].
func (m *Memory) InsertReturn(fn summary.FuncKey, r summary.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	appendUnique(m.returns, funcKind{fn, r.Kind}, r)
}

// Returns implements [Repository].
func (m *Memory) Returns(fn summary.FuncKey, kind summary.Kind) []summary.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.returns[funcKind{fn, kind}])
}

// InsertCaller implements [Repository].
func (m *Memory) InsertCaller(fn summary.FuncKey, r summary.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	appendUnique(m.callers, funcKind{fn, r.Kind}, r)
}

// Callers implements [Repository].
func (m *Memory) Callers(fn summary.FuncKey, kind summary.Kind) []summary.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.callers[funcKind{fn, kind}])
}

// InsertMember implements [Repository].
func (m *Memory) InsertMember(kind summary.Kind, member, value string) (prior string, conflict bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memberKey{kind, member}
	prior, conflict = firstOther(m.members[key], value)
	appendUnique(m.members, key, value)

	return prior, conflict
}

// firstOther returns the first element of values different from value.
func firstOther(values []string, value string) (string, bool) {
	for _, v := range values {
		if v != value {
			return v, true
		}
	}

	return "", false
}

// Members implements [Repository].
func (m *Memory) Members(kind summary.Kind, member string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.members[memberKey{kind, member}])
}

// InsertAlias implements [Repository].
func (m *Memory) InsertAlias(tag, alias summary.Tag) {
	m.mu.Lock()
	defer m.mu.Unlock()

	appendUnique(m.aliases, tag, alias)
}

// Aliases implements [Repository].
func (m *Memory) Aliases(tag summary.Tag) []summary.Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.aliases[tag])
}

// InsertTagData implements [Repository].
func (m *Memory) InsertTagData(tag summary.Tag, data TagData) {
	m.mu.Lock()
	defer m.mu.Unlock()

	appendUnique(m.data, tag, data)
}

// TagData implements [Repository].
func (m *Memory) TagData(tag summary.Tag) []TagData {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.data[tag])
}

// InsertTagLink implements [Repository].
func (m *Memory) InsertTagLink(tag summary.Tag, offset int, other summary.Tag) {
	m.mu.Lock()
	defer m.mu.Unlock()

	appendUnique(m.links, tag, TagLink{Offset: offset, Other: other})
}

// TagLinks implements [Repository].
func (m *Memory) TagLinks(tag summary.Tag) []TagLink {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.links[tag])
}

// tagMap returns the tag relations held by m in tag order.
func (m *Memory) tagMap() *TagMap {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var t TagMap

	for _, tag := range slices.Sorted(maps.Keys(m.aliases)) {
		for _, alias := range m.aliases[tag] {
			t.Aliases = append(t.Aliases, AliasEntry{Tag: tag, Alias: alias})
		}
	}

	for _, tag := range slices.Sorted(maps.Keys(m.data)) {
		for _, data := range m.data[tag] {
			t.Data = append(t.Data, DataEntry{Tag: tag, Data: data})
		}
	}

	for _, tag := range slices.Sorted(maps.Keys(m.links)) {
		for _, link := range m.links[tag] {
			t.Links = append(t.Links, LinkEntry{Tag: tag, Link: link})
		}
	}

	return &t
}

// merge adds the contents of other to m.
func (m *Memory) merge(other *Memory) {
	other.mu.RLock()
	defer other.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	mergeInto(m.returns, other.returns)
	mergeInto(m.callers, other.callers)
	mergeInto(m.members, other.members)
	mergeInto(m.aliases, other.aliases)
	mergeInto(m.data, other.data)
	mergeInto(m.links, other.links)
}

func mergeInto[K comparable, V comparable](dst, src map[K][]V) {
	for _, k := range slices.Collect(maps.Keys(src)) {
		for _, v := range src[k] {
			appendUnique(dst, k, v)
		}
	}
}
