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
	"context"
	"errors"
	"fmt"
	"go/types"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/unitflow/internal/alloc"
	"fillmore-labs.com/unitflow/internal/config"
	"fillmore-labs.com/unitflow/internal/flow"
	"fillmore-labs.com/unitflow/internal/mtag"
	"fillmore-labs.com/unitflow/internal/report"
	"fillmore-labs.com/unitflow/internal/store"
	"fillmore-labs.com/unitflow/internal/summary"
	"fillmore-labs.com/unitflow/internal/units"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Linter names recognized in nolint comments.
const (
	UnitsName = "units"
	MTagName  = "mtagdata"
	SuiteName = "unitflow"
)

// RunUnits executes the unit inference pass and returns its [*units.Result].
func (o *Options) RunUnits(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("%s: %s %w", UnitsName, inspect.Analyzer.Name, ErrResultMissing)
	}

	builtins, err := o.loadBuiltins()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", UnitsName, err)
	}

	ctx, task := trace.NewTask(context.Background(), "Units")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	o.logger().Debug("Analyzing package", "analyzer", UnitsName, "package", p.Pkg.Path(), "options", o)

	generated := o.Behavior.Enabled(config.IncludeGenerated)
	funcs := functions(p, in, generated, UnitsName, SuiteName)

	facts := store.NewFacts(p, summary.Units, o.Shared)
	engine := units.New(p, facts, builtins, o.Behavior, o.logger())
	reporter := report.New(p, generated, UnitsName, SuiteName)
	allocs := alloc.NewRecognizer(p.TypesInfo, builtins.Allocators)
	driver := flow.NewDriver(p, engine.Hooks(), allocs, reporter, builtins.NoReturn...)

	if err := drive(ctx, driver, facts, funcs, o.rounds(), o.logger()); err != nil {
		return nil, fmt.Errorf("%s: %w", UnitsName, err)
	}

	facts.Export(objects(funcs), engine.Fields())

	return engine.Result(), nil
}

// RunMTag executes the memory tag pass and returns its [*mtag.Result].
func (o *Options) RunMTag(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("%s: %s %w", MTagName, inspect.Analyzer.Name, ErrResultMissing)
	}

	builtins, err := o.loadBuiltins()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MTagName, err)
	}

	ctx, task := trace.NewTask(context.Background(), "MTag")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	o.logger().Debug("Analyzing package", "analyzer", MTagName, "package", p.Pkg.Path(), "options", o)

	generated := o.Behavior.Enabled(config.IncludeGenerated)
	funcs := functions(p, in, generated, MTagName, SuiteName)

	facts := store.NewFacts(p, summary.MTagAssign, o.Shared)
	allocs := alloc.NewRecognizer(p.TypesInfo, builtins.Allocators)
	engine := mtag.New(p, facts, allocs, o.logger())
	driver := flow.NewDriver(p, engine.Hooks(), allocs, nil, builtins.NoReturn...)

	if err := drive(ctx, driver, facts, funcs, o.rounds(), o.logger()); err != nil {
		return nil, fmt.Errorf("%s: %w", MTagName, err)
	}

	facts.Export(objects(funcs), nil)

	return engine.Result(), nil
}

// drive replays funcs for the given number of rounds, reporting in the last one.
// Records of earlier rounds stay readable but only the last round is exported.
func drive[V comparable](ctx context.Context, d *flow.Driver[V], facts *store.Facts, funcs []flow.Func, rounds int,
	logger *slog.Logger,
) error {
	for round := 1; round <= rounds; round++ {
		phase := flow.Warmup
		if round == rounds {
			phase = flow.Final

			if round > 1 {
				facts.Rewind()
			}
		}

		for _, fn := range funcs {
			logger.DebugContext(ctx, "analyze", slog.String("func", fn.Obj.FullName()), slog.Any("phase", phase))

			switch err := d.Run(ctx, fn, phase); {
			case errors.Is(err, flow.ErrBudget):
				// The function emits no summary.
				logger.DebugContext(ctx, "aborted", slog.String("func", fn.Obj.FullName()), slog.Any("error", err))

			case err != nil:
				return err
			}
		}
	}

	return nil
}

func objects(funcs []flow.Func) []*types.Func {
	objs := make([]*types.Func, 0, len(funcs))
	for _, fn := range funcs {
		objs = append(objs, fn.Obj)
	}

	return objs
}
