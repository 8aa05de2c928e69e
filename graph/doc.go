// Package graph is your in-memory model for graphwalker's traversal
// engine: a thread-safe Graph of labeled Vertex/Edge values, with the
// invariants, all-pairs-shortest-path table, and Eulerization algorithm
// the planners in package plan depend on.
//
// Under the hood:
//
//	Graph      — id-indexed vertex/edge store, label parsing, mutation
//	APSP       — memoized Floyd-Warshall distance-and-path table
//	Eulerize   — greedy shortest-path edge duplication
//	SanityCheck — invariant validation (aggregated via go-multierror)
//
// This package is not a general graph library: it implements exactly the
// operations graphwalker's planners and executor need (§1's Non-goals) —
// no isomorphism, no SCC decomposition, no optimal Chinese-postman.
package graph
