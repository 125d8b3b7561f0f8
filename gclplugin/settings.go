// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import "fillmore-labs.com/unitflow/analyzer"

// Settings represent the configuration options for the unitflow analyzers.
type Settings struct {
	// Rounds is the number of analysis rounds per package.
	Rounds *int `json:"rounds,omitzero"`
	// Builtins names a YAML file extending the builtin tables.
	Builtins *string `json:"builtins,omitzero"`
	// ReturnMerges reports ambiguous unit merges on return paths.
	ReturnMerges *bool `json:"return-merges,omitzero"`
	// WidenComparisons propagates units across comparisons.
	WidenComparisons *bool `json:"widen-comparisons,omitzero"`
	// Shared shares summaries between the packages of a run.
	Shared *bool `json:"shared,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option].
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Rounds, analyzer.WithRounds)
	opts = appendOption(opts, s.Builtins, analyzer.WithBuiltinsFile)
	opts = appendOption(opts, s.ReturnMerges, analyzer.WithReturnMerges)
	opts = appendOption(opts, s.WidenComparisons, analyzer.WithComparisonWidening)
	opts = appendOption(opts, s.Shared, analyzer.WithSharedStore)

	return opts
}

func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
