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

// Package tracker resolves call targets and knows which calls can't return.
package tracker

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Tracker provides methods for analyzing calls.
type Tracker struct {
	info     *types.Info
	noReturn map[string]struct{}
}

// New creates a Tracker. noReturn lists the qualified names of functions that never return.
func New(info *types.Info, noReturn ...string) Tracker {
	t := Tracker{info: info}

	if len(noReturn) > 0 {
		t.noReturn = make(map[string]struct{}, len(noReturn))
		for _, name := range noReturn {
			t.noReturn[name] = struct{}{}
		}
	}

	return t
}

// MayReturn reports whether the call can return. It is suitable as the mayReturn argument of cfg.New.
func (t Tracker) MayReturn(n *ast.CallExpr) bool {
	return !CantReturn(t.info, t.noReturn, n)
}

// Callee returns the statically called function, or nil for dynamic calls, builtins and conversions.
func (t Tracker) Callee(n *ast.CallExpr) *types.Func {
	return typeutil.StaticCallee(t.info, n)
}

// Builtin returns the called builtin, or nil.
func (t Tracker) Builtin(n *ast.CallExpr) *types.Builtin {
	b, _ := typeutil.Callee(t.info, n).(*types.Builtin)

	return b
}
