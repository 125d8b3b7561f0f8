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

// Package units infers measurement units of integer valued expressions and
// reports arithmetic mixing different units.
package units

import (
	"go/ast"
	"go/types"
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/unitflow/internal/config"
	"fillmore-labs.com/unitflow/internal/flow"
	"fillmore-labs.com/unitflow/internal/store"
	"fillmore-labs.com/unitflow/internal/tracker"
)

type flowContext = flow.Context[Unit]

// Engine holds the unit inference hooks for one package.
type Engine struct {
	pass     *analysis.Pass
	repo     store.Repository
	tracker  tracker.Tracker
	hints    hints
	builtins *config.Builtins
	behavior config.BitMask[config.Behavior]
	logger   *slog.Logger

	// fields maps persisted members to their field objects in the current package.
	fields map[string]*types.Var
	result *Result

	// results accumulates the units of each result of the current function.
	results []Fact
}

// New creates an [Engine] reading and writing summaries through repo.
func New(pass *analysis.Pass, repo store.Repository, builtins *config.Builtins,
	behavior config.BitMask[config.Behavior], logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		pass:     pass,
		repo:     repo,
		tracker:  tracker.New(pass.TypesInfo),
		hints:    hints{info: pass.TypesInfo, names: builtins.Names},
		builtins: builtins,
		behavior: behavior,
		logger:   logger,
		fields:   make(map[string]*types.Var),
		result:   newResult(),
	}
}

// Hooks returns the driver callbacks of the engine.
func (e *Engine) Hooks() flow.Hooks[Unit] {
	return flow.Hooks[Unit]{
		Entry:      e.entry,
		Assign:     e.assign,
		Binary:     e.binary,
		Condition:  e.condition,
		Call:       e.call,
		Allocation: e.allocation,
		Return:     e.ret,
		Exit:       e.exit,
		Expr:       e.observe,
		PreMerge:   e.preMerge,
	}
}

// Fields returns the struct fields of the current package with persisted units, by member name.
func (e *Engine) Fields() map[string]*types.Var { return e.fields }

// Result returns the units observed in the final phase.
func (e *Engine) Result() *Result { return e.result }

// observe records the unit of every expression evaluated in the final phase.
func (e *Engine) observe(c *flowContext, expr ast.Expr) {
	if !c.Final() {
		return
	}

	if u, ok := e.units(c, expr); ok {
		e.result.set(expr, u)
	}

	if e.hints.arraySize(expr) {
		e.result.arraySize(expr)
	}
}
