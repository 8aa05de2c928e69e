// Package dot implements the DOT (Graphviz) wire codec. It is a focused,
// hand-rolled parser for the restricted subset of DOT graphwalker models
// actually use (node and edge statements with a "label" attribute), grounded
// on original_source/graphwalker/dot.py rather than a full Graphviz AST:
// graphwalker's DOT files never need subgraphs, clusters, or ports, so a
// complete grammar would carry far more than this wire format exercises.
package dot

import (
	"fmt"
	"strings"

	"github.com/spotify/go-graphwalker/codec"
	"github.com/spotify/go-graphwalker/graph"
)

func init() {
	codec.Register("dot", Codec{})
}

// Codec implements codec.Codec for DOT.
type Codec struct{}

// Deserialize parses DOT source into vertex and edge tuples. Grounded on
// dot.py: deserialize. Undirected input (the "graph" keyword rather than
// "digraph") gets a reverse-direction duplicate of every edge appended, to
// match graphwalker's edge-tuple contract for undirected wire formats.
func (Codec) Deserialize(raw []byte) ([]graph.VertexTuple, []graph.EdgeTuple, error) {
	toks := tokenize(string(raw))
	p := &parser{toks: toks}
	return p.parseGraph()
}

// Serialize renders verts/edges as a digraph named graphName. opts may carry
// a "highlight" key (a map[string]bool or []string of ids) to render
// matching vertices/edges in red, matching the cartographer reporter's use.
// Grounded on dot.py: serialize.
func (Codec) Serialize(verts []graph.VertexTuple, edges []graph.EdgeTuple, graphName string, opts map[string]interface{}) ([]byte, error) {
	highlight := highlightSet(opts)

	const highAttr = `,color=red,fontcolor=red,style=filled,fillcolor="#ffeeee"`

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", graphName)

	for _, v := range sortedVerts(verts) {
		x := ""
		if highlight[v.ID] {
			x = highAttr
		}
		fmt.Fprintf(&b, "  %q [label=%q%s];\n", v.ID, strings.ReplaceAll(v.Name, "\n", " "), x)
	}

	b.WriteString("\n")

	for _, e := range sortedEdges(edges) {
		x := ""
		if highlight[e.ID] {
			x = highAttr
		}
		fmt.Fprintf(&b, "  %q -> %q [label=%q%s];\n", e.Src, e.Tgt, strings.ReplaceAll(e.Name, "\n", " "), x)
	}

	b.WriteString("}\n")
	return []byte(b.String()), nil
}

func highlightSet(opts map[string]interface{}) map[string]bool {
	out := map[string]bool{}
	if opts == nil {
		return out
	}
	switch h := opts["highlight"].(type) {
	case []string:
		for _, id := range h {
			out[id] = true
		}
	case map[string]bool:
		for id, v := range h {
			if v {
				out[id] = true
			}
		}
	}
	return out
}

func sortedVerts(verts []graph.VertexTuple) []graph.VertexTuple {
	out := append([]graph.VertexTuple(nil), verts...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].ID < out[j-1].ID; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func sortedEdges(edges []graph.EdgeTuple) []graph.EdgeTuple {
	out := append([]graph.EdgeTuple(nil), edges...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].ID < out[j-1].ID; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// unquote strips matching leading/trailing quote characters, per
// dot.py: unquote.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[0] == s[len(s)-1] {
		return s[1 : len(s)-1]
	}
	return s
}
