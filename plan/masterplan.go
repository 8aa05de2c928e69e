package plan

import (
	"context"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
	"github.com/spotify/go-graphwalker/step"
)

// MasterPlan chains several planners end to end: each runs to completion
// in turn, starting from the vertex the previous planner last emitted (or
// the overall start, for the first planner in the chain) (§4.3.6).
// Grounded on planning.py: MasterPlan.
type MasterPlan struct {
	Planners []Planner
}

// NewMasterPlan constructs a MasterPlan chaining planners in order.
func NewMasterPlan(planners ...Planner) *MasterPlan {
	return &MasterPlan{Planners: planners}
}

func (m *MasterPlan) Plan(ctx context.Context, g *graph.Graph, cond halt.Condition, startName string, runCtx map[string]interface{}) (Plan, error) {
	var out []step.Step
	current := startName

	for _, planner := range m.Planners {
		if cond.IsDone() {
			break
		}

		sub, err := planner.Plan(ctx, g, cond, current, runCtx)
		if err != nil {
			return nil, err
		}

		for sub.Next(ctx) {
			s := sub.Step()
			out = append(out, s)
			if !s.Edge {
				current = s.Name
			}
		}
		if err := sub.Err(); err != nil {
			return nil, err
		}
	}

	return &slicePlan{steps: out}, nil
}
