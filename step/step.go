// Package step defines the Step value planners emit and the executor and
// halt conditions consume — the common currency between package plan,
// package halt, and package walkexec, kept in its own package so none of
// the three needs to import another just for this one type.
package step

// Step is a single vertex or edge emitted by a planner (§3, §4.3). By
// convention a traversal alternates edge, vertex, edge, vertex, starting
// and ending on a vertex; the first step after Start is an outgoing edge.
type Step struct {
	ID   string // vertex or edge id
	Name string // label name, used for executor dispatch and goal matching
	Edge bool   // true if this step is an edge, false if a vertex

	// Synthetic marks steps injected by Interactive's "f" command
	// (graph.py has no analogue — fabricated (name, name, ()) tuples that
	// are not drawn from the graph at all). Testable Property 6 exempts
	// these from the "every step is a real graph id" invariant.
	Synthetic bool
}

// Vertex constructs a vertex Step.
func Vertex(id, name string) Step { return Step{ID: id, Name: name} }

// Edge constructs an edge Step.
func Edge(id, name string) Step { return Step{ID: id, Name: name, Edge: true} }

// Synthetic constructs a synthetic Step carrying only a name, per
// Interactive's "f name..." command.
func Synthetic(name string) Step {
	return Step{ID: name, Name: name, Synthetic: true}
}
