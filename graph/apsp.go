package graph

import (
	"math"

	"github.com/spotify/go-graphwalker/matrix"
)

// IsInf reports whether cost denotes "no path", matching graph.py's 2**31
// approximation of infinity — represented here as a real IEEE +Inf.
func IsInf(cost float64) bool { return math.IsInf(cost, 1) }

// Inf returns the sentinel "no path" distance.
func Inf() float64 { return math.Inf(1) }

// APSP is a memoized all-pairs-shortest-path table: cost-and-next-hop per
// ordered vertex-id pair. Grounded on two sources at once: the
// deterministic k→i→j loop order and strict-improvement relaxation of the
// teacher's dense Floyd-Warshall closure, and the path-carrying semantics
// of graph.py: all_pairs_shortest_path (cost, next-hop reconstruction).
// matrix.Dense has no path reconstruction of its own, so the next-hop
// bookkeeping lives here, updated in the same loop nest as the distance
// relaxation rather than recovered from the distance matrix after the
// fact (which would not preserve the "first edge found" tie-break).
type APSP struct {
	ids   []string
	index map[string]int
	dist  *matrix.Dense
	next  [][]int // next[i][j] = index of the next hop from i towards j, -1 if none
}

// APSP returns the memoized all-pairs-shortest-path table, recomputing it
// if the graph has changed since the last call.
func (g *Graph) APSP() (*APSP, error) {
	g.apspMu.Lock()
	defer g.apspMu.Unlock()

	if g.apspOnce {
		return g.apsp, nil
	}

	a, err := computeAPSP(g)
	if err != nil {
		return nil, err
	}
	g.apsp = a
	g.apspOnce = true

	return a, nil
}

func computeAPSP(g *Graph) (*APSP, error) {
	verts := g.Vertices() // sorted by id: deterministic index assignment
	n := len(verts)

	ids := make([]string, n)
	index := make(map[string]int, n)
	for i, v := range verts {
		ids[i] = v.ID
		index[v.ID] = i
	}

	dist, err := matrix.NewDense(maxOne(n), maxOne(n))
	if err != nil {
		return nil, err
	}
	next := make([][]int, n)
	for i := range next {
		next[i] = make([]int, n)
		for j := range next[i] {
			next[i][j] = -1
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			_ = dist.Set(i, j, math.Inf(1))
		}
	}

	// Direct edges cost 1; first edge found (insertion order) wins when
	// parallel edges target the same vertex.
	for i, v := range verts {
		for _, eid := range v.Outgoing() {
			e, ok := g.Edge(eid)
			if !ok {
				continue
			}
			j := index[e.Tgt]
			cur, _ := dist.At(i, j)
			if math.IsInf(cur, 1) {
				_ = dist.Set(i, j, 1)
				next[i][j] = j
			}
		}
	}

	// Fixed k -> i -> j loop order, strict-improvement relaxation: the same
	// discipline as the teacher's dense Floyd-Warshall closure, carried
	// here instead of delegated so next-hop updates stay in lockstep with
	// the distance relaxation.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik, _ := dist.At(i, k)
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj, _ := dist.At(k, j)
				if math.IsInf(kj, 1) {
					continue
				}
				ij, _ := dist.At(i, j)
				cand := ik + kj
				if cand < ij {
					_ = dist.Set(i, j, cand)
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return &APSP{ids: ids, index: index, dist: dist, next: next}, nil
}

func maxOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Lookup returns the cost and intermediate-vertex-id path from "from" to
// "to" (exclusive start, inclusive destination), and whether both ids are
// known to the table. An unreachable pair reports ok=true with cost=+Inf
// and a nil path, matching graph.py's (inf, None) sentinel.
func (a *APSP) Lookup(from, to string) (cost float64, path []string, ok bool) {
	i, iOK := a.index[from]
	j, jOK := a.index[to]
	if !iOK || !jOK {
		return 0, nil, false
	}
	if i == j {
		return 0, nil, true
	}

	c, _ := a.dist.At(i, j)
	if math.IsInf(c, 1) {
		return math.Inf(1), nil, true
	}

	cur := i
	for cur != j {
		nxt := a.next[cur][j]
		if nxt == -1 {
			return math.Inf(1), nil, true // should not happen if c is finite
		}
		path = append(path, a.ids[nxt])
		cur = nxt
	}

	return c, path, true
}
