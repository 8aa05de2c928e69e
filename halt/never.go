package halt

import (
	"context"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/step"
)

// Never is a halt condition that is never satisfied. Used internally by
// Interactive's goto command for its one-shot Goto walks, and available as a driver stopcond for
// planners that are self-terminating (Goto, MasterPlan's leaf planners).
type Never struct{}

func (n *Never) Start(context.Context, *graph.Graph) error { return nil }
func (n *Never) Add(step.Step)                             {}
func (n *Never) IsDone() bool                              { return false }
func (n *Never) Progress() string                          { return "Time passes..." }
