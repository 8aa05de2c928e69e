package plan

import (
	"context"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
)

// EvenRandom chooses uniformly among the current vertex's outgoing edges
// until the halt condition is satisfied (§4.3.1). Grounded on
// planning.py: EvenRandom.
type EvenRandom struct {
	Seed int64
}

// NewEvenRandom constructs an EvenRandom planner with the given PRNG seed.
func NewEvenRandom(seed int64) *EvenRandom { return &EvenRandom{Seed: seed} }

func (e *EvenRandom) Plan(ctx context.Context, g *graph.Graph, cond halt.Condition, startName string, _ map[string]interface{}) (Plan, error) {
	start, err := resolveStart(g, startName)
	if err != nil {
		return nil, err
	}
	return newRandomWalkPlan(g, cond, start, rngFromSeed(e.Seed), chooseUniform), nil
}

func chooseUniform(rng Source, g *graph.Graph, edgeIDs []string) (*graph.Edge, error) {
	idx := rng.Intn(len(edgeIDs))
	e, ok := g.Edge(edgeIDs[idx])
	if !ok {
		return nil, ErrDeadEnd
	}
	return e, nil
}
