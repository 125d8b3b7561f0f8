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

// Package analyzer implements the unitflow static analysis passes.
//
// # Overview
//
// The [Units] analyzer infers a measurement unit (bit, byte, page, msec,
// jiffy, word_count, element_count) for integer valued expressions and
// reports arithmetic that mixes units without a conversion:
//
//	func expires(ms uint) uint64 {
//	    deadline := MsecsToJiffies(ms)  // deadline is in jiffies
//	    return deadline + uint64(ms)    // missing conversion: 'deadline + uint64(ms)' 'jiffy + msec'
//	}
//
// Units flow through assignments, arithmetic, comparisons, struct members and
// calls. Each analyzed function publishes a summary of the units it gives its
// parameters and results, which callers in the same and in dependent packages
// apply at their call sites.
//
// # Memory Tags
//
// The [MTag] analyzer tracks parameters a function stores into a tagged memory
// region, like a handler registration keeping its context pointer:
//
//	func Register(data *int) {
//	    h := new(handler)
//	    h.data = data
//	}
//
// Call sites passing a concrete value get an alias tag for the region, under
// which the value range of the argument is recorded. Pure wrappers forward the
// summary to their own callers instead.
//
// # Builtin Tables
//
// Well known names and functions are described by an embedded YAML document,
// which can be extended with the -builtins flag or [WithBuiltinsFile].
package analyzer
