// Package matrix provides the dense numeric primitive graphwalker needs to
// compute all-pairs shortest paths over a graph.Graph: a row-major Dense
// matrix plus shape validators.
//
// graphwalker only needs a distance table (graph.APSP owns the actual
// Floyd-Warshall relaxation and next-hop bookkeeping, which must update in
// lockstep — see graph/apsp.go), so this package is intentionally narrow:
// no adjacency/incidence builders, no eigen/LU/QR decompositions, no
// elementwise algebra, no standalone APSP closure. See DESIGN.md for what
// was trimmed from the upstream matrix package and why.
package matrix
