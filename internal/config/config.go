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

package config

import "strconv"

// Behavior represents behavioral switches of the analyzers.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// ReturnMerges reports ambiguous unit merges on return paths too.
	ReturnMerges

	// ComparisonWidening propagates a known unit across a comparison onto the unknown side.
	ComparisonWidening
)

// String returns the flag name of a single behavior.
func (b Behavior) String() string {
	switch b {
	case IncludeGenerated:
		return "generated"

	case ReturnMerges:
		return "return-merges"

	case ComparisonWidening:
		return "widen-comparisons"

	default:
		return "behavior(" + strconv.Itoa(int(b)) + ")"
	}
}

// DefaultBehavior returns the default behavioral switches.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(ComparisonWidening)
}
