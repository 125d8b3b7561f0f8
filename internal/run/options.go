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

package run

import (
	"log/slog"
	"sync"

	"fillmore-labs.com/unitflow/internal/config"
	"fillmore-labs.com/unitflow/internal/store"
)

// Options represent the configuration of the unitflow analyzers.
type Options struct {
	// Behavior holds behavioral switches.
	Behavior config.BitMask[config.Behavior]

	// Rounds is the number of times each function is replayed. All but the last round
	// only persist summaries, letting call sites analyzed before their callee converge.
	Rounds int

	// BuiltinsFile names a YAML file extending the builtin tables.
	BuiltinsFile string

	// Shared is a repository shared by all packages analyzed with these options, or nil.
	Shared *store.Memory

	// Logger receives debug logging, discarded when nil.
	Logger *slog.Logger

	load        sync.Once
	builtins    *config.Builtins
	builtinsErr error
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
		Rounds:   1,
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

// loadBuiltins reads the builtin tables on first use. Options must not change afterwards.
func (o *Options) loadBuiltins() (*config.Builtins, error) {
	o.load.Do(func() {
		o.builtins, o.builtinsErr = config.LoadBuiltins(o.BuiltinsFile)
	})

	return o.builtins, o.builtinsErr
}

func (o *Options) rounds() int {
	return max(o.Rounds, 1)
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	var behavior []string
	for b := range o.Behavior.All() {
		behavior = append(behavior, b.String())
	}

	return slog.GroupValue(
		slog.Any("behavior", behavior),
		slog.Int("rounds", o.rounds()),
		slog.String("builtins", o.BuiltinsFile),
		slog.Bool("shared", o.Shared != nil),
	)
}
