package halt

import (
	"context"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/step"
)

// DefaultSteps is CountSteps' default step budget when unspecified.
const DefaultSteps = 100

// CountSteps stops after a fixed number of Add calls. CountSteps(0) is
// done immediately (Testable Property 10).
type CountSteps struct {
	N int

	i int
}

// NewCountSteps constructs a CountSteps halt condition with budget n.
func NewCountSteps(n int) *CountSteps { return &CountSteps{N: n} }

func (c *CountSteps) Start(context.Context, *graph.Graph) error {
	c.i = 0
	return nil
}

func (c *CountSteps) Add(step.Step) { c.i++ }

func (c *CountSteps) IsDone() bool { return c.i >= c.N }

func (c *CountSteps) Progress() string {
	if c.N <= 0 {
		return "done"
	}
	return fmtPct(c.i, c.N)
}
