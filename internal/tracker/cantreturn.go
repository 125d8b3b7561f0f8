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

package tracker

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// CantReturn reports whether the call never returns, either because it calls the
// builtin panic or a function whose [FuncName] is in noReturn.
func CantReturn(info *types.Info, noReturn map[string]struct{}, n *ast.CallExpr) bool {
	switch fun := typeutil.Callee(info, n).(type) {
	case *types.Builtin:
		return fun == builtinPanic

	case *types.Func:
		_, ok := noReturn[FuncNameOf(fun.Origin()).String()]

		return ok

	default: // Dynamic call or conversion.
		return false
	}
}

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)
