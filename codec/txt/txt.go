// Package txt implements the plain-text wire codec: a whitespace-separated
// list of vertex names forming a straight-line walk, grounded on
// original_source/graphwalker/txt.py.
package txt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spotify/go-graphwalker/codec"
	"github.com/spotify/go-graphwalker/graph"
)

func init() {
	codec.Register("txt", Codec{})
}

// Codec implements codec.Codec for the plain-text format. txt has no
// serialize side in the reference corpus; Serialize returns
// codec.ErrSerializeUnsupported.
type Codec struct{}

var commentPattern = regexp.MustCompile(`(?:(?:#|//).*?[\r\n])|/\*(?:.|\n)*?\*/`)

// Deserialize strips "#"/"//" line comments and "/* ... */" block comments,
// splits the remainder on whitespace into a vertex name sequence, prepends
// "Start" if not already first, and connects each consecutive pair with an
// unlabeled edge. Grounded on txt.py: deserialize.
func (Codec) Deserialize(raw []byte) ([]graph.VertexTuple, []graph.EdgeTuple, error) {
	stripped := commentPattern.ReplaceAllString(string(raw), " ")
	names := strings.Fields(stripped)

	if len(names) == 0 || names[0] != "Start" {
		names = append([]string{"Start"}, names...)
	}

	verts := make([]graph.VertexTuple, len(names))
	for i, name := range names {
		verts[i] = graph.VertexTuple{ID: fmt.Sprintf("v%d", i), Name: name}
	}

	edges := make([]graph.EdgeTuple, 0, len(names)-1)
	for i := 0; i < len(names)-1; i++ {
		edges = append(edges, graph.EdgeTuple{
			ID: fmt.Sprintf("e%d", i), Src: fmt.Sprintf("v%d", i), Tgt: fmt.Sprintf("v%d", i+1),
		})
	}

	return verts, edges, nil
}

// Serialize is unsupported for txt; the reference corpus never writes it.
func (Codec) Serialize([]graph.VertexTuple, []graph.EdgeTuple, string, map[string]interface{}) ([]byte, error) {
	return nil, codec.ErrSerializeUnsupported
}
