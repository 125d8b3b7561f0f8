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
	"cmp"
	"fmt"
	"go/types"
	"maps"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/unitflow/internal/summary"
)

// FuncSummary is the object fact carrying the return records of a function.
type FuncSummary struct {
	Records []summary.Record
}

// AFact implements [analysis.Fact].
func (*FuncSummary) AFact() {}

func (s *FuncSummary) String() string {
	rs := make([]string, 0, len(s.Records))
	for _, r := range s.Records {
		rs = append(rs, recordString(r))
	}

	return strings.Join(rs, ", ")
}

// TagSummary is the object fact carrying the tag-assign records of a function.
type TagSummary struct {
	Records []summary.Record
}

// AFact implements [analysis.Fact].
func (*TagSummary) AFact() {}

func (s *TagSummary) String() string {
	return (*FuncSummary)(s).String()
}

// MemberUnits is the object fact carrying the values recorded for a struct field.
type MemberUnits struct {
	Member string
	Values []string
}

// AFact implements [analysis.Fact].
func (*MemberUnits) AFact() {}

func (m *MemberUnits) String() string {
	return m.Member + "=" + strings.Join(m.Values, "|")
}

// TagMap is the package fact carrying the aliases, data and links of the tags minted in a package.
type TagMap struct {
	Aliases []AliasEntry
	Data    []DataEntry
	Links   []LinkEntry
}

// AFact implements [analysis.Fact].
func (*TagMap) AFact() {}

func (m *TagMap) String() string {
	return fmt.Sprintf("tags aliases=%d data=%d links=%d", len(m.Aliases), len(m.Data), len(m.Links))
}

func (m *TagMap) empty() bool {
	return len(m.Aliases) == 0 && len(m.Data) == 0 && len(m.Links) == 0
}

// AliasEntry is a persisted alias relation.
type AliasEntry struct {
	Tag, Alias summary.Tag
}

// DataEntry is a persisted tag data value.
type DataEntry struct {
	Tag  summary.Tag
	Data TagData
}

// LinkEntry is a persisted tag link.
type LinkEntry struct {
	Tag  summary.Tag
	Link TagLink
}

func recordString(r summary.Record) string {
	var param string
	switch i, ok := summary.ResultIndex(r.Param); {
	case !ok:
		param = fmt.Sprintf("p%d", r.Param)

	case i == 0:
		param = "ret"

	default:
		param = fmt.Sprintf("ret%d", i)
	}

	if r.Path != summary.Self.String() {
		param += r.Path
	}

	return r.Kind.String() + " " + param + "=" + r.Value
}

// Facts is a [Repository] for a single [analysis.Pass].
//
// Writes go to the pass and, when configured, to a shared repository.
// Reads combine the pass, the shared repository and the facts exported by
// dependencies. [Facts.Export] publishes what the pass wrote as analysis facts.
type Facts struct {
	pass        *analysis.Pass
	kind        summary.Kind
	own         *Memory
	provisional *Memory
	imported    *Memory
	shared      *Memory
}

var _ Repository = (*Facts)(nil)

// NewFacts reads the facts of kind exported by the dependencies of pass.
// shared may be nil.
func NewFacts(pass *analysis.Pass, kind summary.Kind, shared *Memory) *Facts {
	f := &Facts{
		pass:     pass,
		kind:     kind,
		own:      NewMemory(),
		imported: NewMemory(),
		shared:   shared,
	}

	f.importObjectFacts()
	f.importPackageFacts()

	return f
}

func (f *Facts) importObjectFacts() {
	for _, of := range f.pass.AllObjectFacts() {
		switch fact := of.Fact.(type) {
		case *FuncSummary:
			f.importRecords(of.Object, fact.Records)

		case *TagSummary:
			f.importRecords(of.Object, fact.Records)

		case *MemberUnits:
			for _, v := range fact.Values {
				f.imported.InsertMember(summary.Units, fact.Member, v)
			}
		}
	}
}

func (f *Facts) importRecords(obj types.Object, records []summary.Record) {
	fn, ok := obj.(*types.Func)
	if !ok {
		return
	}

	key := summary.KeyOf(fn)
	for _, r := range records {
		f.imported.InsertReturn(key, r)
	}
}

// importPackageFacts loads tag maps in package path order.
func (f *Facts) importPackageFacts() {
	facts := f.pass.AllPackageFacts()
	slices.SortFunc(facts, func(a, b analysis.PackageFact) int {
		return cmp.Compare(a.Package.Path(), b.Package.Path())
	})

	for _, pf := range facts {
		m, ok := pf.Fact.(*TagMap)
		if !ok {
			continue
		}

		for _, e := range m.Aliases {
			f.imported.InsertAlias(e.Tag, e.Alias)
		}

		for _, e := range m.Data {
			f.imported.InsertTagData(e.Tag, e.Data)
		}

		for _, e := range m.Links {
			f.imported.InsertTagLink(e.Tag, e.Link.Offset, e.Link.Other)
		}
	}
}

// sources returns the repositories consulted on reads.
func (f *Facts) sources() []*Memory {
	srcs := []*Memory{f.own}
	if f.provisional != nil {
		srcs = append(srcs, f.provisional)
	}

	if f.shared != nil {
		srcs = append(srcs, f.shared)
	}

	return append(srcs, f.imported)
}

// Rewind keeps everything written so far readable, but excludes it from [Facts.Export].
// Only what is written after the last call is exported.
func (f *Facts) Rewind() {
	if f.provisional == nil {
		f.provisional = f.own
	} else {
		f.provisional.merge(f.own)
	}

	f.own = NewMemory()
}

// union concatenates the values of all sources, dropping duplicates.
func union[V comparable](srcs []*Memory, get func(*Memory) []V) []V {
	var result []V

	for _, m := range srcs {
		for _, v := range get(m) {
			if !slices.Contains(result, v) {
				result = append(result, v)
			}
		}
	}

	return result
}

// InsertReturn implements [Repository].
func (f *Facts) InsertReturn(fn summary.FuncKey, r summary.Record) {
	f.own.InsertReturn(fn, r)

	if f.shared != nil {
		f.shared.InsertReturn(fn, r)
	}
}

// Returns implements [Repository].
func (f *Facts) Returns(fn summary.FuncKey, kind summary.Kind) []summary.Record {
	return union(f.sources(), func(m *Memory) []summary.Record { return m.Returns(fn, kind) })
}

// InsertCaller implements [Repository].
//
// Caller records are not exported since their subject belongs to another package.
func (f *Facts) InsertCaller(fn summary.FuncKey, r summary.Record) {
	f.own.InsertCaller(fn, r)

	if f.shared != nil {
		f.shared.InsertCaller(fn, r)
	}
}

// Callers implements [Repository].
func (f *Facts) Callers(fn summary.FuncKey, kind summary.Kind) []summary.Record {
	return union(f.sources(), func(m *Memory) []summary.Record { return m.Callers(fn, kind) })
}

// InsertMember implements [Repository].
func (f *Facts) InsertMember(kind summary.Kind, member, value string) (prior string, conflict bool) {
	prior, conflict = firstOther(f.Members(kind, member), value)

	f.own.InsertMember(kind, member, value)

	if f.shared != nil {
		f.shared.InsertMember(kind, member, value)
	}

	return prior, conflict
}

// Members implements [Repository].
func (f *Facts) Members(kind summary.Kind, member string) []string {
	return union(f.sources(), func(m *Memory) []string { return m.Members(kind, member) })
}

// InsertAlias implements [Repository].
func (f *Facts) InsertAlias(tag, alias summary.Tag) {
	f.own.InsertAlias(tag, alias)

	if f.shared != nil {
		f.shared.InsertAlias(tag, alias)
	}
}

// Aliases implements [Repository].
func (f *Facts) Aliases(tag summary.Tag) []summary.Tag {
	return union(f.sources(), func(m *Memory) []summary.Tag { return m.Aliases(tag) })
}

// InsertTagData implements [Repository].
func (f *Facts) InsertTagData(tag summary.Tag, data TagData) {
	f.own.InsertTagData(tag, data)

	if f.shared != nil {
		f.shared.InsertTagData(tag, data)
	}
}

// TagData implements [Repository].
func (f *Facts) TagData(tag summary.Tag) []TagData {
	return union(f.sources(), func(m *Memory) []TagData { return m.TagData(tag) })
}

// InsertTagLink implements [Repository].
func (f *Facts) InsertTagLink(tag summary.Tag, offset int, other summary.Tag) {
	f.own.InsertTagLink(tag, offset, other)

	if f.shared != nil {
		f.shared.InsertTagLink(tag, offset, other)
	}
}

// TagLinks implements [Repository].
func (f *Facts) TagLinks(tag summary.Tag) []TagLink {
	return union(f.sources(), func(m *Memory) []TagLink { return m.TagLinks(tag) })
}

// Export publishes the records written for funcs and the member values written
// for fields as object facts, and the tag map of the pass as a package fact.
// Objects must belong to the package under analysis.
func (f *Facts) Export(funcs []*types.Func, fields map[string]*types.Var) {
	for _, fn := range funcs {
		records := f.own.Returns(summary.KeyOf(fn), f.kind)
		if len(records) == 0 {
			continue
		}

		switch f.kind {
		case summary.Units:
			f.pass.ExportObjectFact(fn, &FuncSummary{Records: records})

		case summary.MTagAssign:
			f.pass.ExportObjectFact(fn, &TagSummary{Records: records})
		}
	}

	for _, member := range slices.Sorted(maps.Keys(fields)) {
		values := f.own.Members(summary.Units, member)
		if len(values) == 0 {
			continue
		}

		f.pass.ExportObjectFact(fields[member], &MemberUnits{Member: member, Values: values})
	}

	if m := f.own.tagMap(); !m.empty() {
		f.pass.ExportPackageFact(m)
	}
}
