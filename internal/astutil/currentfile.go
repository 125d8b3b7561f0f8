// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	nolint    map[int][]string // line -> linters named by a //nolint directive on that line
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	c := CurrentFile{file: file, handle: handle, generated: ast.IsGenerated(file)}

	for _, group := range file.Comments {
		comment := group.List[0]
		if linters := nolintLinters(comment); linters != nil {
			if c.nolint == nil {
				c.nolint = make(map[int][]string)
			}

			line := c.line(comment.Pos())
			c.nolint[line] = append(c.nolint[line], linters...)
		}
	}

	return c
}

// Valid reports whether the [CurrentFile] has a file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated reports whether the file is generated.
func (c CurrentFile) Generated() bool {
	return c.generated
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// Contains reports whether pos lies within the file.
func (c CurrentFile) Contains(pos token.Pos) bool {
	return c.file != nil && c.file.FileStart <= pos && pos <= c.file.FileEnd
}

// NoLintComment reports whether the line of pos carries a //nolint comment naming one of linters.
func (c CurrentFile) NoLintComment(pos token.Pos, linters ...string) bool {
	if c.nolint == nil {
		return false
	}

	return names(c.nolint[c.line(pos)], linters)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint` directive for one of linters or "all".
func CommentHasNoLint(comment *ast.Comment, linters ...string) bool {
	return names(nolintLinters(comment), linters)
}

// nolintLinters returns the lower case linter names of a //nolint directive, or nil.
func nolintLinters(comment *ast.Comment) []string {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return nil
	}

	var result []string
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l != "" {
			result = append(result, l)
		}
	}

	return result
}

func names(directive, linters []string) bool {
	return slices.ContainsFunc(directive, func(l string) bool { return l == "all" || slices.Contains(linters, l) })
}
