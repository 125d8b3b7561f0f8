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

import "go/types"

// FuncName identifies a function or method independent of type checker instances.
type FuncName struct {
	// Path is the import path of the declaring package, empty for the universe or unnamed receivers.
	Path string
	// Receiver is the receiver type name of a method.
	Receiver string
	// Name is the function name.
	Name string
}

// String returns the fully qualified name, "path.Name" or "(path.Receiver).Name".
func (f FuncName) String() string {
	qualified := f.Name

	if f.Receiver != "" {
		recv := f.Receiver
		if f.Path != "" {
			recv = f.Path + "." + recv
		}

		return "(" + recv + ")." + qualified
	}

	if f.Path != "" {
		qualified = f.Path + "." + qualified
	}

	return qualified
}

// FuncNameOf returns the [FuncName] of fun. Pointer receivers and aliases are resolved to the named base type.
func FuncNameOf(fun *types.Func) FuncName {
	var recv *types.Var
	if sig, ok := fun.Type().(*types.Signature); ok {
		recv = sig.Recv()
	}

	if recv == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	typ := types.Unalias(recv.Type())
	if p, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(p.Elem())
	}

	switch t := typ.(type) {
	case *types.Named:
		obj := t.Obj()

		var path string
		if pkg := obj.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}
