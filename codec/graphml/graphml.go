// Package graphml implements the yEd-flavored GraphML wire codec, grounded
// on original_source/graphwalker/graphml.py. No GraphML library exists
// anywhere in the reference corpus, so this codec is built on the standard
// library's encoding/xml rather than a third-party XML toolkit — the
// restricted yEd node/edge label shape graphwalker reads needs nothing an
// XML parsing library would add over encoding/xml's Decoder.
package graphml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/spotify/go-graphwalker/codec"
	"github.com/spotify/go-graphwalker/graph"
)

func init() {
	codec.Register("graphml", Codec{})
}

// Codec implements codec.Codec for GraphML. GraphML has no serialize side
// in the reference corpus; Serialize returns codec.ErrSerializeUnsupported.
type Codec struct{}

type xmlDoc struct {
	XMLName xml.Name   `xml:"graphml"`
	Graph   xmlGraph   `xml:"graph"`
}

type xmlGraph struct {
	Nodes []xmlNode `xml:"node"`
	Edges []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID        string     `xml:"id,attr"`
	NodeLabel *xmlUnwrap `xml:"data>ShapeNode>NodeLabel"`
}

type xmlEdge struct {
	ID        string     `xml:"id,attr"`
	Source    string     `xml:"source,attr"`
	Target    string     `xml:"target,attr"`
	EdgeLabel *xmlUnwrap `xml:"data>PolyLineEdge>EdgeLabel"`
}

// xmlUnwrap captures an element's text content regardless of its
// namespace prefix, since yEd's y: namespace alias varies across writers.
type xmlUnwrap struct {
	Text string `xml:",chardata"`
}

// Deserialize parses yEd-annotated GraphML, reading each node's
// y:NodeLabel and each edge's y:EdgeLabel as the graphwalker label.
// Nodes without a NodeLabel are skipped, matching graphml.py: deserialize's
// `if l is None: continue`.
func (Codec) Deserialize(raw []byte) ([]graph.VertexTuple, []graph.EdgeTuple, error) {
	doc, err := decodeGraphML(raw)
	if err != nil {
		return nil, nil, err
	}

	var verts []graph.VertexTuple
	for _, n := range doc.Graph.Nodes {
		if n.NodeLabel == nil {
			continue
		}
		verts = append(verts, graph.VertexTuple{ID: n.ID, Name: strings.TrimSpace(n.NodeLabel.Text)})
	}

	var edges []graph.EdgeTuple
	for _, e := range doc.Graph.Edges {
		name := ""
		if e.EdgeLabel != nil {
			name = strings.TrimSpace(e.EdgeLabel.Text)
		}
		edges = append(edges, graph.EdgeTuple{ID: e.ID, Name: name, Src: e.Source, Tgt: e.Target})
	}

	return verts, edges, nil
}

// Serialize is unsupported for GraphML; the reference corpus never writes it.
func (Codec) Serialize([]graph.VertexTuple, []graph.EdgeTuple, string, map[string]interface{}) ([]byte, error) {
	return nil, codec.ErrSerializeUnsupported
}

func decodeGraphML(raw []byte) (*xmlDoc, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Strict = false
	var doc xmlDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphml: %w", err)
	}
	return &doc, nil
}
