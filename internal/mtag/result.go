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

	"golang.org/x/tools/go/ast/astutil"

	"fillmore-labs.com/unitflow/internal/store"
	"fillmore-labs.com/unitflow/internal/summary"
)

// Result answers queries about the tags of a package.
type Result struct {
	repo store.Repository
	tags map[ast.Expr]summary.Tag
}

func newResult(repo store.Repository) *Result {
	return &Result{repo: repo, tags: make(map[ast.Expr]summary.Tag)}
}

func (r *Result) set(expr ast.Expr, tag summary.Tag) { r.tags[expr] = tag }

// Aliases returns the aliases minted from tag.
func (r *Result) Aliases(tag summary.Tag) []summary.Tag { return r.repo.Aliases(tag) }

// TagData returns the values recorded under tag.
func (r *Result) TagData(tag summary.Tag) []store.TagData { return r.repo.TagData(tag) }

// TagLinks returns the links recorded for tag.
func (r *Result) TagLinks(tag summary.Tag) []store.TagLink { return r.repo.TagLinks(tag) }

// TagOf returns the tag expr resolved to at its evaluation.
func (r *Result) TagOf(expr ast.Expr) (summary.Tag, bool) {
	tag, ok := r.tags[astutil.Unparen(expr)]

	return tag, ok
}
