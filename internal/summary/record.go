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

package summary

import (
	"go/types"
)

// Kind is the fact kind a [Record] describes.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Units records carry a unit name.
	Units Kind = iota + 1 // units

	// MTagAssign records carry the tag and offset a parameter is stored at.
	MTagAssign // mtag_assign
)

// Return is the [Record.Param] index of a function's (first) return value.
const Return = -1

// ResultParam returns the [Record.Param] index of result i.
func ResultParam(i int) int { return Return - i }

// ResultIndex returns the result index of a [Record.Param] and whether it denotes a result.
func ResultIndex(param int) (int, bool) { return Return - param, param <= Return }

// Record is a single persisted summary entry of a function.
type Record struct {
	Kind Kind
	// Param is the parameter index, or [ResultParam] of a result.
	Param int
	// Path is the encoded [AccessPath] relative to the parameter.
	Path string
	// Value is the encoded fact.
	Value string
}

// FuncKey identifies a function across analysis sessions.
type FuncKey struct {
	// Package is the import path of the declaring package.
	Package string
	// Name is the fully qualified function name.
	Name string
	// Static is true for functions not visible outside their package.
	Static bool
}

// String implements [fmt.Stringer].
func (k FuncKey) String() string { return k.Name }

// KeyOf returns the [FuncKey] of fn.
func KeyOf(fn *types.Func) FuncKey {
	var path string
	if pkg := fn.Pkg(); pkg != nil {
		path = pkg.Path()
	}

	return FuncKey{
		Package: path,
		Name:    fn.FullName(),
		Static:  !fn.Exported(),
	}
}
