package plan

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
)

// Random chooses among outgoing edges using each edge's "weight" extra as
// a relative probability, falling back to EvenRandom's uniform choice when
// no edge in the set carries a weight (§4.3.1). Grounded on
// planning.py: Random.choose_edge.
type Random struct {
	Seed int64
}

// NewRandom constructs a Random planner with the given PRNG seed.
func NewRandom(seed int64) *Random { return &Random{Seed: seed} }

func (r *Random) Plan(ctx context.Context, g *graph.Graph, cond halt.Condition, startName string, _ map[string]interface{}) (Plan, error) {
	start, err := resolveStart(g, startName)
	if err != nil {
		return nil, err
	}
	return newRandomWalkPlan(g, cond, start, rngFromSeed(r.Seed), chooseWeighted), nil
}

type weightedEdge struct {
	edge *graph.Edge
	p    float64
}

// chooseWeighted partitions edges into naive (unweighted) and weighted,
// spreads the remaining probability evenly across naive edges, and picks
// one edge from a single cumulative-threshold scan.
func chooseWeighted(rng Source, g *graph.Graph, edgeIDs []string) (*graph.Edge, error) {
	var naive []*graph.Edge
	var weighted []weightedEdge

	for _, id := range edgeIDs {
		e, ok := g.Edge(id)
		if !ok {
			return nil, ErrDeadEnd
		}
		raw, has := e.Weight()
		if !has {
			naive = append(naive, e)
			continue
		}
		p, err := graph.ParseWeight(raw)
		if err != nil {
			return nil, err
		}
		weighted = append(weighted, weightedEdge{edge: e, p: p})
	}

	if len(weighted) == 0 {
		return chooseUniform(rng, g, edgeIDs)
	}

	var total float64
	for _, w := range weighted {
		total += w.p
	}
	remaining := 1.0 - total

	if total > 1.001 {
		logrus.Warn("graphwalker: probabilities supplied exceed unity")
	}

	if len(naive) > 0 {
		if remaining <= 0 {
			logrus.Warn("graphwalker: unweighted edges get zero probability")
		} else {
			share := remaining / float64(len(naive))
			for _, e := range naive {
				weighted = append(weighted, weightedEdge{edge: e, p: share})
			}
		}
	} else if remaining >= 0.01 {
		logrus.Warn("graphwalker: weighted edges sum to less than unity")
	}

	var sum float64
	for _, w := range weighted {
		sum += w.p
	}

	x, threshold := 0.0, rng.Float64()*sum
	var last *graph.Edge
	for _, w := range weighted {
		x += w.p
		last = w.edge
		if x >= threshold {
			return w.edge, nil
		}
	}
	return last, nil
}
