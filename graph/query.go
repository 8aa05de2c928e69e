package graph

import "sort"

// Vertex looks up a vertex by id.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	return v, ok
}

// Edge looks up an edge by id.
func (g *Graph) Edge(id string) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[id]
	return e, ok
}

// Vertices returns all vertices sorted by id, for deterministic iteration
// (§5: "implementations must iterate maps in insertion order (or sorted
// order) to make outputs reproducible").
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns all edges sorted by id.
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// FindByNameOrID resolves start-vertex / goal-vertex lookups per §4.3's
// "Start resolution": the first vertex whose Name matches, else the vertex
// whose ID matches, else ErrStartNotFound. Vertices are scanned in sorted
// id order so "first match" is deterministic.
func (g *Graph) FindByNameOrID(nameOrID string) (*Vertex, error) {
	verts := g.Vertices()
	for _, v := range verts {
		if v.Name == nameOrID {
			return v, nil
		}
	}
	if v, ok := g.Vertex(nameOrID); ok {
		return v, nil
	}
	return nil, idWrap(ErrStartNotFound, nameOrID)
}

// VertexDegrees returns per-vertex (incoming, outgoing) edge counts.
func (g *Graph) VertexDegrees() (in, out map[string]int) {
	verts := g.Vertices()
	in = make(map[string]int, len(verts))
	out = make(map[string]int, len(verts))
	for _, v := range verts {
		in[v.ID] = len(v.Incoming())
		out[v.ID] = len(v.Outgoing())
	}
	return in, out
}

// OddVertices returns (innies, outies): innie ids repeated (in-out) times
// for vertices with more incoming than outgoing edges, and outies
// symmetrically for vertices with more outgoing than incoming. Grounded on
// graph.py: odd_verts; iteration is over sorted vertex ids so the repeated
// ids appear in deterministic order.
func (g *Graph) OddVertices() (innies, outies []string) {
	in, out := g.VertexDegrees()

	ids := make([]string, 0, len(in))
	for id := range in {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if d := in[id] - out[id]; d > 0 {
			for i := 0; i < d; i++ {
				innies = append(innies, id)
			}
		}
	}
	for _, id := range ids {
		if d := out[id] - in[id]; d > 0 {
			for i := 0; i < d; i++ {
				outies = append(outies, id)
			}
		}
	}

	return innies, outies
}

// IsStuck reports whether no other vertex is reachable from v with finite
// cost, per graph.py: is_stuck.
func (g *Graph) IsStuck(v *Vertex) (bool, error) {
	apsp, err := g.APSP()
	if err != nil {
		return false, err
	}
	for _, other := range g.Vertices() {
		if other.ID == v.ID {
			continue
		}
		if cost, _, ok := apsp.Lookup(v.ID, other.ID); ok && !IsInf(cost) {
			return false, nil
		}
	}
	return true, nil
}

// SanityCheck validates §3's invariants, aggregating every violation found
// (rather than failing on the first) via hashicorp/go-multierror, matching
// the teacher's preference for reporting every failure from a batch
// validation pass.
func (g *Graph) SanityCheck() error {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	var errs []error

	for id, e := range g.edges {
		if e.ID != id {
			errs = append(errs, idWrap(ErrDuplicateID, id))
			continue
		}
		src, srcOK := g.vertices[e.Src]
		tgt, tgtOK := g.vertices[e.Tgt]
		if !srcOK {
			errs = append(errs, idWrap(ErrVertexNotFound, e.Src))
			continue
		}
		if !tgtOK {
			errs = append(errs, idWrap(ErrVertexNotFound, e.Tgt))
			continue
		}
		if !containsStr(src.outgoing, e.ID) {
			errs = append(errs, idWrap(ErrEdgeNotFound, e.ID+" missing from "+e.Src+".outgoing"))
		}
		if !containsStr(tgt.incoming, e.ID) {
			errs = append(errs, idWrap(ErrEdgeNotFound, e.ID+" missing from "+e.Tgt+".incoming"))
		}
	}

	for _, v := range g.vertices {
		for _, eid := range append(append([]string{}, v.outgoing...), v.incoming...) {
			if _, ok := g.edges[eid]; !ok {
				errs = append(errs, idWrap(ErrEdgeNotFound, eid))
			}
		}
	}

	for id := range g.vertices {
		if _, ok := g.edges[id]; ok {
			errs = append(errs, idWrap(ErrDuplicateID, id))
		}
	}

	return joinErrors(errs)
}

func containsStr(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
