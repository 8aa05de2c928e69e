// Package codec defines the wire-format contract every graph serializer in
// graphwalker implements, plus a registry selecting one by file extension.
// Grounded on graph.py: Graph.get_codec and the per-format modules
// (dot.py, gml.py, graphml.py, tgf.py, txt.py).
package codec

import (
	"fmt"
	"strings"

	"github.com/spotify/go-graphwalker/graph"
)

// Codec deserializes a raw graph file into the tuple shape graph.Build
// consumes, and (where supported) serializes a graph back to bytes.
type Codec interface {
	// Deserialize parses raw into vertex and edge tuples. For undirected
	// wire formats (DOT's `graph` keyword) both directions of an edge are
	// emitted, per §6's codec contract.
	Deserialize(raw []byte) ([]graph.VertexTuple, []graph.EdgeTuple, error)

	// Serialize renders a graph's vertices and edges back to bytes under
	// the given graph name. opts carries format-specific rendering hints;
	// only codec/dot is required to support it (the `highlight` option,
	// a set of ids to render differently, used by the cartographer
	// reporter). Codecs that don't support serialization return
	// ErrSerializeUnsupported.
	Serialize(verts []graph.VertexTuple, edges []graph.EdgeTuple, graphName string, opts map[string]interface{}) ([]byte, error)
}

// ErrSerializeUnsupported is returned by codecs with no serialize side.
var ErrSerializeUnsupported = fmt.Errorf("codec: serialize not supported")

// registry maps a file extension (without the leading dot) to its Codec.
// Populated by each subpackage's init via Register, mirroring the Actor,
// halt, and plan registries rather than graph.py's dynamic __import__.
var registry = map[string]Codec{}

// Register adds a Codec under ext (e.g. "dot", "gml"). Subpackages call
// this from an init func so importing codec/dot for side effects is enough
// to make ByExtension("dot", ...) resolve.
func Register(ext string, c Codec) {
	registry[strings.ToLower(ext)] = c
}

// ByPath selects a Codec from path's file extension. Grounded on graph.py:
// Graph.get_codec, which splits on the last '.' and imports graphwalker.<ext>.
func ByPath(path string) (Codec, error) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 || i == len(path)-1 {
		return nil, fmt.Errorf("codec: %q has no file extension", path)
	}
	return ByExtension(path[i+1:])
}

// ByExtension looks up a registered Codec by extension (case-insensitive,
// no leading dot).
func ByExtension(ext string) (Codec, error) {
	c, ok := registry[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("codec: no codec registered for extension %q", ext)
	}
	return c, nil
}
