package plan

import (
	"context"
	"errors"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
	"github.com/spotify/go-graphwalker/step"
)

// ErrNotEulerian indicates the eulerized working graph still has a vertex
// whose in-degree and out-degree differ, so no closed directed trail
// covering every edge exists.
var ErrNotEulerian = errors.New("plan: graph is not eulerian")

// ErrNotConnected indicates the Hierholzer trail construction could not
// reach every edge from the walk's start vertex.
var ErrNotConnected = errors.New("plan: graph is not connected")

// Euler walks every edge at least once: it drains a forced single-path
// prefix, eulerizes a working copy of what remains, builds one closed
// directed trail over it (Hierholzer), and finally replays that fixed
// sequence against the caller's halt condition (§4.3.2). Grounded on
// planning.py: Euler, with the splice-based trail construction replaced
// by the canonical iterative Hierholzer walk (tsp/eulerian.go, generalized
// from undirected half-edges to directed out-edges — a directed edge
// cannot be replayed backwards, so unlike tsp/eulerian.go's undirected
// shortcut this implementation reverses the pop order before emitting).
type Euler struct{}

// NewEuler constructs an Euler planner.
func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Plan(ctx context.Context, g *graph.Graph, cond halt.Condition, startName string, _ map[string]interface{}) (Plan, error) {
	start, err := resolveStart(g, startName)
	if err != nil {
		return nil, err
	}

	work := g.Clone()
	vert, ok := work.Vertex(start.ID)
	if !ok {
		return nil, graph.ErrVertexNotFound
	}

	vert, prefix, err := drainForcedPrefix(work, vert)
	if err != nil {
		return nil, err
	}

	if err := work.Eulerize(); err != nil {
		return nil, err
	}

	trail, err := hierholzerTrail(work, vert)
	if err != nil {
		return nil, err
	}

	cond.Add(step.Vertex(start.ID, start.Name))

	all := append(prefix, trail...)
	out := make([]step.Step, 0, len(all))
	for _, s := range all {
		if cond.IsDone() {
			break
		}
		cond.Add(s)
		out = append(out, s)
	}

	return &slicePlan{steps: out}, nil
}

// drainForcedPrefix enters the forced steps leading away from a start
// vertex that is really just the head of a single-path string: so long as
// vert has exactly one outgoing edge and nothing points into it, walk
// that edge and delete vert (it can never be revisited). Grounded on
// planning.py: Planner.forced_plan.
func drainForcedPrefix(g *graph.Graph, vert *graph.Vertex) (*graph.Vertex, []step.Step, error) {
	var prefix []step.Step

	in, _ := g.VertexDegrees()
	for len(vert.Outgoing()) == 1 && in[vert.ID] == 0 {
		edgeID := vert.Outgoing()[0]
		edge, ok := g.Edge(edgeID)
		if !ok {
			return nil, nil, graph.ErrEdgeNotFound
		}
		tgt, ok := g.Vertex(edge.Tgt)
		if !ok {
			return nil, nil, graph.ErrVertexNotFound
		}

		if err := g.DelVertex(vert.ID); err != nil {
			return nil, nil, err
		}

		prefix = append(prefix, step.Edge(edge.ID, edge.Name), step.Vertex(tgt.ID, tgt.Name))
		vert = tgt
		in, _ = g.VertexDegrees()
	}

	return vert, prefix, nil
}

// hierholzerFrame is one entry on the traversal stack: the vertex reached,
// and the edge used to reach it (empty for the initial start frame).
type hierholzerFrame struct {
	vertID string
	edgeID string
}

// hierholzerTrail builds a closed directed Eulerian trail over g starting
// and ending at start, using the standard iterative stack/cursor
// Hierholzer walk: push edges as they're found unused, pop (and record) a
// vertex once all its outgoing edges are exhausted. The recorded pop
// order is the reverse of the trail, so it is reversed before translation
// to steps.
func hierholzerTrail(g *graph.Graph, start *graph.Vertex) ([]step.Step, error) {
	total := g.EdgeCount()
	if total == 0 {
		return nil, nil
	}

	if in, out := g.VertexDegrees(); !balanced(in, out) {
		return nil, ErrNotEulerian
	}

	used := make(map[string]bool, total)
	cursor := make(map[string]int)
	stack := []hierholzerFrame{{vertID: start.ID}}
	var popped []hierholzerFrame

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		v, ok := g.Vertex(top.vertID)
		if !ok {
			return nil, graph.ErrVertexNotFound
		}
		out := v.Outgoing()

		for cursor[top.vertID] < len(out) && used[out[cursor[top.vertID]]] {
			cursor[top.vertID]++
		}

		if cursor[top.vertID] == len(out) {
			popped = append(popped, top)
			stack = stack[:len(stack)-1]
			continue
		}

		edgeID := out[cursor[top.vertID]]
		used[edgeID] = true
		edge, ok := g.Edge(edgeID)
		if !ok {
			return nil, graph.ErrEdgeNotFound
		}
		stack = append(stack, hierholzerFrame{vertID: edge.Tgt, edgeID: edgeID})
	}

	if len(used) != total {
		return nil, ErrNotConnected
	}

	steps := make([]step.Step, 0, len(popped)*2)
	for i := len(popped) - 1; i >= 0; i-- {
		f := popped[i]
		if f.edgeID == "" {
			continue
		}
		edge, ok := g.Edge(f.edgeID)
		if !ok {
			return nil, graph.ErrEdgeNotFound
		}
		vert, ok := g.Vertex(f.vertID)
		if !ok {
			return nil, graph.ErrVertexNotFound
		}
		steps = append(steps, step.Edge(edge.ID, edge.Name), step.Vertex(vert.ID, vert.Name))
	}

	return steps, nil
}

func balanced(in, out map[string]int) bool {
	for id, o := range out {
		if in[id] != o {
			return false
		}
	}
	for id, i := range in {
		if out[id] != i {
			return false
		}
	}
	return true
}
