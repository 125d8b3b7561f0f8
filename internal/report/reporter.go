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

// Package report deduplicates diagnostics and honors nolint comments.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/unitflow/internal/astutil"
)

// Reporter emits diagnostics of a pass.
//
// A message is reported once per position, since functions may be replayed in
// several rounds.
type Reporter struct {
	pass      *analysis.Pass
	linters   []string
	files     []astutil.CurrentFile
	generated bool
	seen      map[reported]struct{}
}

type reported struct {
	pos     token.Pos
	message string
}

// New creates a [Reporter] for pass. Diagnostics are suppressed by nolint comments
// naming one of linters, and in generated files unless generated is set.
func New(pass *analysis.Pass, generated bool, linters ...string) *Reporter {
	files := make([]astutil.CurrentFile, 0, len(pass.Files))
	for _, f := range pass.Files {
		if cf := astutil.NewCurrentFile(pass.Fset, f); cf.Valid() {
			files = append(files, cf)
		}
	}

	return &Reporter{
		pass:      pass,
		linters:   linters,
		files:     files,
		generated: generated,
		seen:      make(map[reported]struct{}),
	}
}

// Reportf formats and reports a diagnostic at rng.
func (r *Reporter) Reportf(rng analysis.Range, format string, args ...any) {
	pos := rng.Pos()
	message := fmt.Sprintf(format, args...)

	key := reported{pos, message}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}

	if cf, ok := r.file(pos); ok {
		if cf.Generated() && !r.generated || cf.NoLintComment(pos, r.linters...) {
			return
		}
	}

	r.pass.Report(analysis.Diagnostic{Pos: pos, End: rng.End(), Message: message})
}

func (r *Reporter) file(pos token.Pos) (astutil.CurrentFile, bool) {
	for _, cf := range r.files {
		if cf.Contains(pos) {
			return cf, true
		}
	}

	return astutil.CurrentFile{}, false
}
