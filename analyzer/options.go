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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/unitflow/internal/config"
	"fillmore-labs.com/unitflow/internal/run"
	"fillmore-labs.com/unitflow/internal/store"
)

// Option configures specific behavior of a [NewUnits] or [NewMTag] analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithRounds is an [Option] to configure how often the functions of a package are analyzed.
// Rounds before the last one only persist summaries, so call sites analyzed before their
// callee see its summary and callees see the units their callers pass.
func WithRounds(rounds int) Option { return roundsOption{rounds: rounds} }

type roundsOption struct{ rounds int }

func (o roundsOption) apply(r *run.Options) {
	r.Rounds = o.rounds
}

func (o roundsOption) LogAttr() slog.Attr {
	return slog.Int("rounds", o.rounds)
}

// WithBuiltinsFile is an [Option] to extend the builtin tables with a YAML file.
func WithBuiltinsFile(path string) Option { return builtinsOption{path: path} }

type builtinsOption struct{ path string }

func (o builtinsOption) apply(r *run.Options) {
	r.BuiltinsFile = o.path
}

func (o builtinsOption) LogAttr() slog.Attr {
	return slog.String("builtins", o.path)
}

// WithReturnMerges is an [Option] to also report ambiguous unit merges on return paths.
func WithReturnMerges(returnMerges bool) Option { return returnMergesOption{returnMerges: returnMerges} }

type returnMergesOption struct{ returnMerges bool }

func (o returnMergesOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReturnMerges, o.returnMerges)
}

func (o returnMergesOption) LogAttr() slog.Attr {
	return slog.Bool("return-merges", o.returnMerges)
}

// WithComparisonWidening is an [Option] to configure propagating a known unit
// across a comparison onto the unknown side.
func WithComparisonWidening(widen bool) Option { return wideningOption{widen: widen} }

type wideningOption struct{ widen bool }

func (o wideningOption) apply(r *run.Options) {
	r.Behavior.Set(config.ComparisonWidening, o.widen)
}

func (o wideningOption) LogAttr() slog.Attr {
	return slog.Bool("widen-comparisons", o.widen)
}

// WithSharedStore is an [Option] to share summaries between all packages analyzed
// by the analyzer instance, in addition to the exported facts.
func WithSharedStore(shared bool) Option { return sharedOption{shared: shared} }

type sharedOption struct{ shared bool }

func (o sharedOption) apply(r *run.Options) {
	if !o.shared {
		r.Shared = nil

		return
	}

	if r.Shared == nil {
		r.Shared = store.NewMemory()
	}
}

func (o sharedOption) LogAttr() slog.Attr {
	return slog.Bool("shared", o.shared)
}

// WithLogger is an [Option] to receive debug logging.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
