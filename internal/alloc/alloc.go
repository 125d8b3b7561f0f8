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

// Package alloc recognizes allocation calls and their size arguments.
package alloc

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"

	"fillmore-labs.com/unitflow/internal/config"
	"fillmore-labs.com/unitflow/internal/tracker"
)

// Site is a recognized allocation.
type Site struct {
	Call *ast.CallExpr
	// Total is the expression giving the allocated size in bytes.
	Total ast.Expr
	// Count and Elem are the element count and size expressions, Elem may be nil
	// when the element type is known.
	Count, Elem ast.Expr
	// Type is the allocated element type, if known.
	Type types.Type
}

// Recognizer finds allocation sites.
type Recognizer struct {
	info       *types.Info
	tracker    tracker.Tracker
	allocators []config.Allocator
}

// NewRecognizer creates a [Recognizer] for builtin allocations and the configured allocator functions.
func NewRecognizer(info *types.Info, allocators []config.Allocator) *Recognizer {
	return &Recognizer{
		info:       info,
		tracker:    tracker.New(info),
		allocators: allocators,
	}
}

// Site returns the allocation performed by call, if any.
func (r *Recognizer) Site(call *ast.CallExpr) (Site, bool) {
	if b := r.tracker.Builtin(call); b != nil {
		return r.builtin(b.Name(), call)
	}

	fn := r.tracker.Callee(call)
	if fn == nil {
		return Site{}, false
	}

	qualified := tracker.FuncNameOf(fn).String()
	for _, a := range r.allocators {
		if a.Name != fn.Name() && a.Name != qualified {
			continue
		}

		return Site{
			Call:  call,
			Total: arg(call, a.Size),
			Count: arg(call, a.Count),
			Elem:  arg(call, a.Elem),
		}, true
	}

	return Site{}, false
}

func (r *Recognizer) builtin(name string, call *ast.CallExpr) (Site, bool) {
	switch name {
	case "new":
		if len(call.Args) != 1 {
			return Site{}, false
		}

		return Site{Call: call, Type: r.info.TypeOf(call.Args[0])}, true

	case "make":
		if len(call.Args) < 2 {
			return Site{}, false
		}

		slice, ok := r.info.TypeOf(call.Args[0]).Underlying().(*types.Slice)
		if !ok {
			return Site{}, false
		}

		site := Site{Call: call, Type: slice.Elem()}

		if isByte(slice.Elem()) {
			site.Total = call.Args[1]
		} else {
			site.Count = call.Args[1]
		}

		return site, true

	default:
		return Site{}, false
	}
}

func isByte(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Kind() == types.Uint8
}

func arg(call *ast.CallExpr, i *int) ast.Expr {
	if i == nil || *i < 0 || *i >= len(call.Args) {
		return nil
	}

	return astutil.Unparen(call.Args[*i])
}
