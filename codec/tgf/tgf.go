// Package tgf implements the Trivial Graph Format wire codec: a vertex
// section, a "#" separator line, then an edge section, grounded on
// original_source/graphwalker/tgf.py.
package tgf

import (
	"fmt"
	"strings"

	"github.com/spotify/go-graphwalker/codec"
	"github.com/spotify/go-graphwalker/graph"
)

func init() {
	codec.Register("tgf", Codec{})
}

// Codec implements codec.Codec for TGF. TGF has no serialize side in the
// reference corpus; Serialize returns codec.ErrSerializeUnsupported.
type Codec struct{}

// Deserialize splits raw on the first "\n#\n" into a vertex section (each
// line "id [name]") and an edge section (each line "src tgt [name]"),
// assigning edges sequential ids "e<N>" in line order. Grounded on
// tgf.py: deserialize.
func (Codec) Deserialize(raw []byte) ([]graph.VertexTuple, []graph.EdgeTuple, error) {
	parts := strings.SplitN(string(raw), "\n#\n", 2)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("tgf: missing \"#\" vertex/edge separator")
	}

	var verts []graph.VertexTuple
	for _, line := range strings.Split(parts[0], "\n") {
		if line == "" {
			continue
		}
		fields := splitWhitespaceN(line, 2)
		id := fields[0]
		name := id
		if len(fields) == 2 {
			name = fields[1]
		}
		verts = append(verts, graph.VertexTuple{ID: id, Name: name})
	}

	var edges []graph.EdgeTuple
	seq := 0
	for _, line := range strings.Split(parts[1], "\n") {
		if line == "" {
			continue
		}
		fields := splitWhitespaceN(line, 3)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("tgf: malformed edge line %q", line)
		}
		name := ""
		if len(fields) == 3 {
			name = fields[2]
		}
		edges = append(edges, graph.EdgeTuple{
			ID: fmt.Sprintf("e%d", seq), Name: name, Src: fields[0], Tgt: fields[1],
		})
		seq++
	}

	return verts, edges, nil
}

// splitWhitespaceN splits s on runs of whitespace into at most n fields,
// matching Python's str.split(None, n-1).
func splitWhitespaceN(s string, n int) []string {
	var out []string
	for len(out) < n-1 {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return out
		}
		i := strings.IndexAny(s, " \t")
		if i < 0 {
			break
		}
		out = append(out, s[:i])
		s = s[i:]
	}
	s = strings.TrimLeft(s, " \t")
	if s != "" {
		out = append(out, s)
	}
	return out
}

// Serialize is unsupported for TGF; the reference corpus never writes it.
func (Codec) Serialize([]graph.VertexTuple, []graph.EdgeTuple, string, map[string]interface{}) ([]byte, error) {
	return nil, codec.ErrSerializeUnsupported
}
