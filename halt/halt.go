// Package halt implements graphwalker's halt conditions: the
// observer/predicate family that decides when a traversal stops (§4.2).
package halt

import (
	"context"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/step"
)

// Condition is a halt condition: bound to a graph at the start of a
// traversal, fed one Step at a time, and consulted for its stopping
// predicate. Grounded on stopcond.py: StopCond's start/add/__nonzero__/
// progress contract, generalized from Python's truthiness-overload
// (__nonzero__) to an explicit IsDone method.
type Condition interface {
	// Start binds the condition to a graph and resets its state.
	Start(ctx context.Context, g *graph.Graph) error

	// Add records one visited step.
	Add(s step.Step)

	// IsDone reports the stopping predicate.
	IsDone() bool

	// Progress returns a human progress indicator.
	Progress() string
}
