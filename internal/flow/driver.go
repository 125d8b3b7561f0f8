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

package flow

import (
	"context"
	"errors"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/cfg"

	"fillmore-labs.com/unitflow/internal/alloc"
	"fillmore-labs.com/unitflow/internal/lattice"
	"fillmore-labs.com/unitflow/internal/tracker"
)

// ErrBudget is returned when the fixpoint iteration of a function exceeds its budget.
var ErrBudget = errors.New("iteration budget exceeded")

// visitsPerBlock bounds the fixpoint iteration.
const visitsPerBlock = 64

// Driver runs [Hooks] over functions of a package.
type Driver[V comparable] struct {
	pass     *analysis.Pass
	hooks    Hooks[V]
	allocs   *alloc.Recognizer
	tracker  tracker.Tracker
	reporter Reporter
}

// NewDriver creates a [Driver] for the package of pass. Calls of functions named in noReturn end their block.
func NewDriver[V comparable](pass *analysis.Pass, hooks Hooks[V], allocs *alloc.Recognizer, reporter Reporter,
	noReturn ...string,
) *Driver[V] {
	if hooks.Merge == nil {
		hooks.Merge = lattice.Merge[V]
	}

	return &Driver[V]{
		pass:     pass,
		hooks:    hooks,
		allocs:   allocs,
		tracker:  tracker.New(pass.TypesInfo, noReturn...),
		reporter: reporter,
	}
}

// flowState holds the per-block states of one function.
type flowState[V comparable] struct {
	graph *cfg.CFG
	in    []*State[V]
	out   []*State[V]
	preds [][]*cfg.Block
}

// Run analyzes fn: it solves to a fixpoint, then replays each live block in the given phase.
// When the budget is exceeded no replay happens and [ErrBudget] is returned.
func (d *Driver[V]) Run(ctx context.Context, fn Func, phase Phase) error {
	defer trace.StartRegion(ctx, "Flow").End()

	fs := d.build(fn)

	c := &Context[V]{
		Pass:     d.pass,
		Func:     fn,
		phase:    Solve,
		reporter: d.reporter,
	}

	entry := NewState[V]()
	c.state, c.entry = entry, entry
	c.node = fn.Decl.Body

	if d.hooks.Entry != nil {
		d.hooks.Entry(c)
	}

	c.entry = entry.Clone()

	if err := d.solve(c, fs); err != nil {
		return err
	}

	if phase == Solve {
		return nil
	}

	d.replay(c, fs, phase)

	return nil
}

func (d *Driver[V]) build(fn Func) *flowState[V] {
	g := cfg.New(fn.Decl.Body, d.tracker.MayReturn)

	fs := &flowState[V]{
		graph: g,
		in:    make([]*State[V], len(g.Blocks)),
		out:   make([]*State[V], len(g.Blocks)),
		preds: make([][]*cfg.Block, len(g.Blocks)),
	}

	for _, b := range g.Blocks {
		if !b.Live {
			continue
		}

		for _, s := range b.Succs {
			fs.preds[s.Index] = append(fs.preds[s.Index], b)
		}
	}

	return fs
}

// solve iterates the transfer functions until no block input changes.
func (d *Driver[V]) solve(c *Context[V], fs *flowState[V]) error {
	blocks := fs.graph.Blocks
	fs.in[0] = c.entry.Clone()

	budget := visitsPerBlock * len(blocks)
	queued := make([]bool, len(blocks))
	worklist := []*cfg.Block{blocks[0]}
	queued[0] = true

	for len(worklist) > 0 {
		if budget--; budget < 0 {
			return ErrBudget
		}

		b := worklist[0]
		worklist = worklist[1:]
		queued[b.Index] = false

		st := fs.in[b.Index].Clone()
		d.transfer(c, b, st)

		if prev := fs.out[b.Index]; prev != nil && prev.Equal(st) {
			continue
		}

		fs.out[b.Index] = st

		for _, s := range b.Succs {
			in := fs.in[s.Index]
			if in == nil {
				fs.in[s.Index] = st.Clone()
			} else {
				joined := in.Clone()
				joined.Join(st, d.hooks.Merge)

				if joined.Equal(in) {
					continue
				}

				fs.in[s.Index] = joined
			}

			if !queued[s.Index] {
				queued[s.Index] = true
				worklist = append(worklist, s)
			}
		}
	}

	return nil
}

// replay runs every live block once on its fixpoint input.
func (d *Driver[V]) replay(c *Context[V], fs *flowState[V], phase Phase) {
	c.phase = phase

	var exits []Exit[V]

	for _, b := range fs.graph.Blocks {
		in := fs.in[b.Index]
		if !b.Live || in == nil {
			continue
		}

		d.preMerge(c, fs, b)

		st := in.Clone()
		d.transfer(c, b, st)

		if ret := b.Return(); ret != nil {
			exits = append(exits, Exit[V]{Return: ret, State: st})
		}
	}

	if d.hooks.Exit != nil {
		c.state = c.entry.Clone()
		c.node = c.Func.Decl.Body
		d.hooks.Exit(c, exits)
	}
}

// preMerge fires the pre-merge hook for keys the predecessors of b disagree on.
func (d *Driver[V]) preMerge(c *Context[V], fs *flowState[V], b *cfg.Block) {
	preds := fs.preds[b.Index]
	if d.hooks.PreMerge == nil || len(preds) < 2 {
		return
	}

	c.node = anchor(b)
	c.state = fs.in[b.Index]

	seen := make(map[Key]struct{})

	for i, p := range preds {
		pout := fs.out[p.Index]
		if pout == nil {
			continue
		}

		for _, q := range preds[i+1:] {
			qout := fs.out[q.Index]
			if qout == nil {
				continue
			}

			for k, a := range pout.All() {
				if _, ok := seen[k]; ok {
					continue
				}

				if other := qout.Get(k); lattice.Disagree(a, other) {
					seen[k] = struct{}{}
					d.hooks.PreMerge(c, k, a, other)
				}
			}
		}
	}
}

// anchor returns the first node executed when entering b, skipping empty blocks.
func anchor(b *cfg.Block) ast.Node {
	for range visitsPerBlock {
		if len(b.Nodes) > 0 {
			return b.Nodes[0]
		}

		if len(b.Succs) != 1 {
			return nil
		}

		b = b.Succs[0]
	}

	return nil
}

// transfer applies the hooks of all nodes of b to st.
func (d *Driver[V]) transfer(c *Context[V], b *cfg.Block, st *State[V]) {
	c.state = st

	for _, n := range b.Nodes {
		c.node = n
		d.node(c, n)
	}
}
