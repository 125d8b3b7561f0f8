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

// Package flow drives forward dataflow analyses over the control flow graph of a function.
//
// A [Driver] builds the graph of a function body with golang.org/x/tools/go/cfg,
// iterates the block transfer functions to a fixpoint in the [Solve] phase and
// then replays every live block once with side effects enabled. Joins
// accumulate, so on the two-level fact lattice every fixpoint iteration terminates.
//
// The analyses only see the [Hooks] they registered and the [Context] passed to
// them. They never own traversal order.
package flow
