package graph

import (
	"sort"
	"strconv"
)

// invalidate clears the memoized APSP cache. Must be called by every
// mutating operation (§3: "any mutation must invalidate the APSP cache").
func (g *Graph) invalidate() {
	g.apspMu.Lock()
	g.apspOnce = false
	g.apsp = nil
	g.apspMu.Unlock()
}

// NewVertexID returns a fresh "v<N>" id not colliding with any existing
// vertex or edge id. Stable across repeated calls until actually consumed
// by AddVertex, matching graph.py: new_vert_id's "stable until consumed"
// contract — this implementation simply probes forward from the shared
// counter without advancing it, so the same id comes back until a vertex
// or edge takes it.
func (g *Graph) NewVertexID() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	for n := g.nextID; ; n++ {
		id := "v" + strconv.FormatUint(n, 10)
		if _, vok := g.vertices[id]; vok {
			continue
		}
		if _, eok := g.edges[id]; eok {
			continue
		}
		return id
	}
}

// NewEdgeID returns a fresh "e<N>" id from the same shared namespace as
// NewVertexID, so vertex and edge ids never collide (§3's id-uniqueness
// invariant).
func (g *Graph) NewEdgeID() string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	for {
		id := "e" + strconv.FormatUint(g.nextID, 10)
		g.nextID++
		if _, vok := g.vertices[id]; vok {
			continue
		}
		if _, eok := g.edges[id]; eok {
			continue
		}
		return id
	}
}

// AddVertex inserts a new vertex with the given id and label. If name is
// empty the id is used as the name, matching graph.py: add_vert's
// "name if name is not None else id" default.
func (g *Graph) AddVertex(id, label string) (*Vertex, error) {
	name, extras := ParseLabel(label)
	if name == "" {
		name = id
	}
	return g.addVertexRaw(id, name, extras)
}

// addVertexRaw inserts a vertex with an already-parsed name and extras map,
// skipping ParseLabel. Used by AddVertex (label not yet parsed) and Combine
// (label already parsed by the source graph, so re-parsing Name would
// silently drop any BLOCKED/weight extras — see Combine).
func (g *Graph) addVertexRaw(id, name string, extras map[string]string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil, idWrap(ErrDuplicateID, id)
	}
	v := &Vertex{ID: id, Name: name, Extras: cloneExtras(extras)}
	g.vertices[id] = v
	g.invalidate()

	return v, nil
}

// AddEdge creates a new edge from src to tgt. If id is empty a fresh id is
// generated via NewEdgeID. Both endpoints must already exist.
func (g *Graph) AddEdge(src, tgt, id, label string) (*Edge, error) {
	name, extras := ParseLabel(label)
	return g.addEdgeRaw(src, tgt, id, name, extras)
}

// addEdgeRaw inserts an edge with an already-parsed name and extras map,
// skipping ParseLabel. See addVertexRaw.
func (g *Graph) addEdgeRaw(src, tgt, id, name string, extras map[string]string) (*Edge, error) {
	g.muVert.RLock()
	srcV, srcOK := g.vertices[src]
	tgtV, tgtOK := g.vertices[tgt]
	g.muVert.RUnlock()
	if !srcOK {
		return nil, idWrap(ErrVertexNotFound, src)
	}
	if !tgtOK {
		return nil, idWrap(ErrVertexNotFound, tgt)
	}

	if id == "" {
		id = g.NewEdgeID()
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, exists := g.edges[id]; exists {
		return nil, idWrap(ErrDuplicateID, id)
	}
	e := &Edge{ID: id, Name: name, Src: src, Tgt: tgt, Extras: cloneExtras(extras)}
	g.edges[id] = e
	srcV.outgoing = append(srcV.outgoing, id)
	tgtV.incoming = append(tgtV.incoming, id)
	g.invalidate()

	return e, nil
}

// CopyEdge creates a parallel edge with a fresh id, the same endpoints and
// name as e. Used by Eulerize to duplicate edges along a shortest path.
func (g *Graph) CopyEdge(e *Edge) (*Edge, error) {
	return g.AddEdge(e.Src, e.Tgt, "", e.Name)
}

// removeFromSlice returns s with the first occurrence of id removed.
func removeFromSlice(s []string, id string) []string {
	for i, v := range s {
		if v == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// DelEdge removes an edge by id, detaching it from both endpoints'
// adjacency lists.
func (g *Graph) DelEdge(id string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return idWrap(ErrEdgeNotFound, id)
	}

	g.muVert.Lock()
	if src, ok := g.vertices[e.Src]; ok {
		src.outgoing = removeFromSlice(src.outgoing, id)
	}
	if tgt, ok := g.vertices[e.Tgt]; ok {
		tgt.incoming = removeFromSlice(tgt.incoming, id)
	}
	g.muVert.Unlock()

	delete(g.edges, id)
	g.invalidate()

	return nil
}

// DelVertex removes a vertex and all of its incident edges.
func (g *Graph) DelVertex(id string) error {
	g.muVert.RLock()
	v, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return idWrap(ErrVertexNotFound, id)
	}

	seen := make(map[string]bool)
	for _, eid := range append(append([]string{}, v.outgoing...), v.incoming...) {
		if seen[eid] {
			// Self-loops list the same edge in both outgoing and incoming.
			continue
		}
		seen[eid] = true
		if err := g.DelEdge(eid); err != nil {
			return err
		}
	}

	g.muVert.Lock()
	delete(g.vertices, id)
	g.muVert.Unlock()
	g.invalidate()

	return nil
}

// Combine merges other into g by vertex-id union; duplicate vertex or edge
// ids are rejected. Vertices and edges are carried over with their Extras
// intact (BLOCKED flags, edge weights, ...) — inserted directly rather than
// through AddVertex/AddEdge's label-parsing path, which would otherwise
// re-parse the already-split Name as a plain label with no extras lines.
func (g *Graph) Combine(other *Graph) error {
	other.muVert.RLock()
	otherVerts := make([]*Vertex, 0, len(other.vertices))
	for _, v := range other.vertices {
		otherVerts = append(otherVerts, v)
	}
	other.muVert.RUnlock()

	sort.Slice(otherVerts, func(i, j int) bool { return otherVerts[i].ID < otherVerts[j].ID })

	for _, v := range otherVerts {
		if _, err := g.addVertexRaw(v.ID, v.Name, v.Extras); err != nil {
			return err
		}
	}

	other.muEdge.RLock()
	otherEdges := make([]*Edge, 0, len(other.edges))
	for _, e := range other.edges {
		otherEdges = append(otherEdges, e)
	}
	other.muEdge.RUnlock()

	sort.Slice(otherEdges, func(i, j int) bool { return otherEdges[i].ID < otherEdges[j].ID })

	for _, e := range otherEdges {
		if _, err := g.addEdgeRaw(e.Src, e.Tgt, e.ID, e.Name, e.Extras); err != nil {
			return err
		}
	}

	return nil
}
