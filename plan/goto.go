package plan

import (
	"context"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
	"github.com/spotify/go-graphwalker/step"
)

// Goto walks toward a sequence of named goals, repeating the sequence a
// fixed number of times (0 meaning forever), each time taking the
// minimum-cost shortest path from the current vertex to the nearest
// vertex matching the goal by name or id. The literal goal "random"
// resolves to a uniformly chosen vertex each time it is reached (§4.3.4).
// Grounded on planning.py: Goto.
//
// Unlike planning.py — where a stuck vertex or a satisfied halt condition
// only breaks the inner per-goal loop, letting an exhausted "repeat"
// range spin through its remaining iterations doing nothing — this
// implementation ends the walk immediately on either condition. A
// repeat=0 (infinite) Goto that goes stuck would otherwise busy-loop
// forever without ever returning a Plan; see DESIGN.md.
type Goto struct {
	Goals  []string
	Repeat int
	Seed   int64
}

// NewGoto constructs a Goto planner. repeat==0 means repeat forever,
// matching planning.py's `xrange(self.repeat or inf)`.
func NewGoto(goals []string, repeat int, seed int64) *Goto {
	return &Goto{Goals: goals, Repeat: repeat, Seed: seed}
}

func (p *Goto) Plan(ctx context.Context, g *graph.Graph, cond halt.Condition, startName string, _ map[string]interface{}) (Plan, error) {
	start, err := resolveStart(g, startName)
	if err != nil {
		return nil, err
	}

	apsp, err := g.APSP()
	if err != nil {
		return nil, err
	}

	cond.Add(step.Vertex(start.ID, start.Name))

	rng := rngFromSeed(p.Seed)
	vert := start
	var out []step.Step

	infinite := p.Repeat == 0

	for round := 0; infinite || round < p.Repeat; round++ {
		for _, goal := range p.Goals {
			if err := ctx.Err(); err != nil {
				return &errPlan{err: err}, nil
			}

			stuck, err := g.IsStuck(vert)
			if err != nil {
				return nil, err
			}
			if stuck || cond.IsDone() {
				return &slicePlan{steps: out}, nil
			}

			resolved := goal
			if goal == "random" {
				verts := g.Vertices()
				resolved = verts[rng.Intn(len(verts))].ID
			}

			path, ok := nearestMatch(g, apsp, vert, resolved)
			if !ok {
				continue
			}

			for _, nextID := range path {
				edge, ok := findEdgeTo(g, vert, nextID)
				if !ok {
					return nil, graph.ErrEdgeNotFound
				}
				tgt, ok := g.Vertex(edge.Tgt)
				if !ok {
					return nil, graph.ErrVertexNotFound
				}

				es, vs := step.Edge(edge.ID, edge.Name), step.Vertex(tgt.ID, tgt.Name)
				cond.Add(es)
				cond.Add(vs)
				out = append(out, es, vs)
				vert = tgt
			}
		}
	}

	return &slicePlan{steps: out}, nil
}

// nearestMatch returns the shortest intermediate-id path from `from` to
// the minimum-cost vertex whose name or id equals goal, excluding `from`
// itself. ok is false when no such reachable vertex exists.
func nearestMatch(g *graph.Graph, apsp *graph.APSP, from *graph.Vertex, goal string) ([]string, bool) {
	bestCost := graph.Inf()
	var bestPath []string
	found := false

	for _, v := range g.Vertices() {
		if v.ID == from.ID {
			continue
		}
		if v.Name != goal && v.ID != goal {
			continue
		}

		cost, path, ok := apsp.Lookup(from.ID, v.ID)
		if !ok || graph.IsInf(cost) {
			continue
		}
		if !found || cost < bestCost {
			bestCost, bestPath, found = cost, path, true
		}
	}

	return bestPath, found
}

// findEdgeTo returns the first of from's outgoing edges targeting
// targetID, matching §4.3.4's "traverse that path step by step".
func findEdgeTo(g *graph.Graph, from *graph.Vertex, targetID string) (*graph.Edge, bool) {
	for _, eid := range from.Outgoing() {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		if e.Tgt == targetID {
			return e, true
		}
	}
	return nil, false
}
