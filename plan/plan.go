// Package plan implements graphwalker's traversal planners: the family of
// lazy strategies (§4.3) that emit a step sequence over a graph starting
// at a named vertex, bounded by a halt condition.
//
// Planners are Go idiomatic pull-iterators, not Python generators.
// Grounded on the teacher's bufio.Scanner-shaped traversal state machines
// (bfs/bfs.go's walker struct advancing one step per call) generalized to
// an explicit interface so the executor can drive a plan one step at a
// time:
//
//	type Plan interface {
//	    Next(ctx context.Context) bool
//	    Step() step.Step
//	    Err() error
//	}
//
// Next suspends the underlying state machine between calls exactly like a
// Python generator suspends at yield; Err/bool replace the
// exception-or-StopIteration duality.
package plan

import (
	"context"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
	"github.com/spotify/go-graphwalker/step"
)

// Plan is a lazy, pull-driven step sequence. Next advances the sequence
// and reports whether a step is available; Step returns the step most
// recently produced by a true-returning Next; Err reports any algorithmic
// failure (StartNotFound, NotEulerian, ...) that ended the sequence early.
type Plan interface {
	Next(ctx context.Context) bool
	Step() step.Step
	Err() error
}

// Planner constructs a Plan bound to a graph, halt condition, and start
// vertex. context carries ambient values (e.g. an interactive I/O pair)
// that individual planners may type-assert out of; most planners ignore it.
type Planner interface {
	Plan(ctx context.Context, g *graph.Graph, cond halt.Condition, startName string, runCtx map[string]interface{}) (Plan, error)
}

// resolveStart implements §4.3's "Start resolution": first match by name,
// else match by id, else ErrStartNotFound (graph.ErrStartNotFound).
func resolveStart(g *graph.Graph, startName string) (*graph.Vertex, error) {
	return g.FindByNameOrID(startName)
}

// errPlan is a Plan that immediately reports err and yields nothing —
// returned by Goto when ctx is cancelled while it builds its plan.
type errPlan struct{ err error }

func (e *errPlan) Next(context.Context) bool { return false }
func (e *errPlan) Step() step.Step           { return step.Step{} }
func (e *errPlan) Err() error                { return e.err }

// sliceplan replays a precomputed sequence of steps one at a time,
// checking ctx cancellation between each. Euler, Goto, and MasterPlan
// build their full output up front (matching planning.py's Euler/Goto,
// which accumulate self.plan before returning) and then drain it lazily
// through this adapter so the executor still drives them step by step.
type slicePlan struct {
	steps []step.Step
	i     int
	err   error
	cur   step.Step
}

func (p *slicePlan) Next(ctx context.Context) bool {
	if p.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		p.err = err
		return false
	}
	if p.i >= len(p.steps) {
		return false
	}
	p.cur = p.steps[p.i]
	p.i++
	return true
}

func (p *slicePlan) Step() step.Step { return p.cur }
func (p *slicePlan) Err() error      { return p.err }
