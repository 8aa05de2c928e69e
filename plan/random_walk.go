package plan

import (
	"context"
	"errors"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
	"github.com/spotify/go-graphwalker/step"
)

// ErrDeadEnd is returned when a random-walk planner reaches a vertex with
// no outgoing edges before its halt condition is satisfied.
var ErrDeadEnd = errors.New("plan: reached a vertex with no outgoing edges")

// Source is the minimal PRNG surface EvenRandom/Random draw from. *rand.Rand
// satisfies it; tests rig a fake Source to reproduce an exact sequence of
// draws (e.g. S3's literal ten-step plan from a fixed uniform sequence).
type Source interface {
	Intn(n int) int
	Float64() float64
}

// edgeChooser selects one outgoing edge to traverse next.
type edgeChooser func(rng Source, g *graph.Graph, edges []string) (*graph.Edge, error)

// randomWalkPlan drives EvenRandom and Random: both loop "while not done,
// choose an edge, walk it" (planning.py: EvenRandom.__iter__), differing
// only in how the edge is chosen.
type randomWalkPlan struct {
	g      *graph.Graph
	cond   halt.Condition
	vert   *graph.Vertex
	rng    Source
	choose edgeChooser

	cur step.Step
	err error

	pendingTarget *graph.Vertex
}

// newRandomWalkPlan builds a walk driven by rng, which must already be
// seeded/rigged by the caller (rngFromSeed for production, a scripted
// Source stub in tests).
func newRandomWalkPlan(g *graph.Graph, cond halt.Condition, start *graph.Vertex, rng Source, choose edgeChooser) *randomWalkPlan {
	cond.Add(step.Vertex(start.ID, start.Name))
	return &randomWalkPlan{g: g, cond: cond, vert: start, rng: rng, choose: choose}
}

func (p *randomWalkPlan) Next(ctx context.Context) bool {
	if p.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		p.err = err
		return false
	}

	if p.pendingTarget != nil {
		v := p.pendingTarget
		p.pendingTarget = nil
		p.vert = v
		p.cur = step.Vertex(v.ID, v.Name)
		p.cond.Add(p.cur)
		return true
	}

	if p.cond.IsDone() {
		return false
	}

	edges := p.vert.Outgoing()
	if len(edges) == 0 {
		p.err = ErrDeadEnd
		return false
	}

	edge, err := p.choose(p.rng, p.g, edges)
	if err != nil {
		p.err = err
		return false
	}

	tgt, ok := p.g.Vertex(edge.Tgt)
	if !ok {
		p.err = graph.ErrVertexNotFound
		return false
	}

	p.cur = step.Edge(edge.ID, edge.Name)
	p.cond.Add(p.cur)
	p.pendingTarget = tgt

	return true
}

func (p *randomWalkPlan) Step() step.Step { return p.cur }
func (p *randomWalkPlan) Err() error      { return p.err }
