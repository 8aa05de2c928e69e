package graph

import "sort"

// eulerizeCandidate is one (innie, outie) pairing candidate, sorted by
// ascending cost so the greedy pairing in Eulerize tries cheapest pairs
// first. Grounded on graph.py: eulerize's "tries" sorted list.
type eulerizeCandidate struct {
	cost float64
	from string
	to   string
	path []string
}

// Eulerize minimally duplicates edges until every vertex has equal in- and
// out-degree along reachable components (§4.1). A no-op if the graph has
// no odd vertices. Returns ErrNotEulerizable if some innie cannot be
// paired with a reachable outie.
//
// Algorithm (graph.py: eulerize): compute odd vertices, sort all
// finite-cost (innie, outie) pairs by ascending cost, then greedily match:
// for the first still-unmatched pair in cost order, remove both endpoints
// from their lists and duplicate every edge along the pair's shortest path
// (each duplication raises the out-degree of the path's tail vertex and
// the in-degree of its head, propagating the balance fix edge by edge).
func (g *Graph) Eulerize() error {
	innies, outies := g.OddVertices()
	if len(innies) == 0 {
		return nil
	}

	apsp, err := g.APSP()
	if err != nil {
		return err
	}

	innieSet := toMultiset(innies)
	outieSet := toMultiset(outies)

	var tries []eulerizeCandidate
	for from := range innieSet {
		for to := range outieSet {
			cost, path, ok := apsp.Lookup(from, to)
			if ok && !IsInf(cost) {
				tries = append(tries, eulerizeCandidate{cost: cost, from: from, to: to, path: path})
			}
		}
	}
	sort.Slice(tries, func(i, j int) bool {
		if tries[i].cost != tries[j].cost {
			return tries[i].cost < tries[j].cost
		}
		if tries[i].from != tries[j].from {
			return tries[i].from < tries[j].from
		}
		return tries[i].to < tries[j].to
	})

	remaining := len(innies)
	for remaining > 0 {
		matched := false
		for _, t := range tries {
			if innieSet[t.from] <= 0 || outieSet[t.to] <= 0 {
				continue
			}
			innieSet[t.from]--
			outieSet[t.to]--
			remaining--
			matched = true

			a := t.from
			for _, b := range t.path {
				if err := g.duplicateEdgeTo(a, b); err != nil {
					return err
				}
				a = b
			}
			break
		}
		if !matched {
			return ErrNotEulerizable
		}
	}

	return nil
}

// duplicateEdgeTo duplicates the first outgoing edge of "from" that targets
// "to", per graph.py: duplicate_edge_by_ids.
func (g *Graph) duplicateEdgeTo(from, to string) error {
	v, ok := g.Vertex(from)
	if !ok {
		return idWrap(ErrVertexNotFound, from)
	}
	for _, eid := range v.Outgoing() {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		if e.Tgt == to {
			_, err := g.CopyEdge(e)
			return err
		}
	}
	return idWrap(ErrEdgeNotFound, from+"->"+to)
}

func toMultiset(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for _, id := range ids {
		m[id]++
	}
	return m
}
