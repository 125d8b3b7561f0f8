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
	"go/token"
	"go/types"
	"hash/fnv"
	"path/filepath"
	"strconv"

	"fillmore-labs.com/unitflow/internal/summary"
)

// mint derives a tag from its textual identity.
func mint(parts ...string) summary.Tag {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}

	return summary.Tag(h.Sum64())
}

// site returns a position identity stable across runs.
func site(fset *token.FileSet, pkg *types.Package, pos token.Pos) string {
	p := fset.Position(pos)

	return pkg.Path() + "/" + filepath.Base(p.Filename) + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// allocationTag identifies the object allocated at pos.
func allocationTag(fset *token.FileSet, pkg *types.Package, pos token.Pos) summary.Tag {
	return mint("alloc", site(fset, pkg, pos))
}

// globalTag identifies a package level variable.
func globalTag(v *types.Var) summary.Tag {
	return mint("global", v.Pkg().Path(), v.Name())
}

// aliasTag identifies the view of tag created by a call site.
func aliasTag(tag summary.Tag, call string) summary.Tag {
	return mint("alias", tag.String(), call)
}
