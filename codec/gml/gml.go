// Package gml implements the GML (Graph Modelling Language) wire codec: a
// tokenizer plus a recursive-descent parser for GML's nested key/value list
// grammar, grounded on original_source/graphwalker/gml.py's BNF and its
// accompanying parse/build_vert/build_edge functions.
package gml

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spotify/go-graphwalker/codec"
	"github.com/spotify/go-graphwalker/graph"
)

func init() {
	codec.Register("gml", Codec{})
}

// Codec implements codec.Codec for GML. GML has no serialize side in the
// reference corpus; Serialize returns codec.ErrSerializeUnsupported.
type Codec struct{}

var (
	tokenPattern   = regexp.MustCompile(`[^ \t\n"]+|"[^"]*"`)
	commentPattern = regexp.MustCompile("\n\\s*#[^\n]*")
	keyPattern     = regexp.MustCompile(`^[A-Za-z][0-9A-Za-z_-]*$`)
)

// pair is one Key/Value entry of a parsed GML list. Value holds a string,
// float64, int64, or []pair (a nested list), matching GML's Value grammar.
type pair struct {
	Key   string
	Value interface{}
}

// Deserialize parses GML source into vertex and edge tuples. Grounded on
// gml.py: deserialize.
func (Codec) Deserialize(raw []byte) ([]graph.VertexTuple, []graph.EdgeTuple, error) {
	commented := commentPattern.ReplaceAllString(string(raw), "\n")
	toks := tokenPattern.FindAllString(commented, -1)

	_, tree, err := parseList(toks)
	if err != nil {
		return nil, nil, err
	}

	for _, top := range tree {
		if !strings.EqualFold(top.Key, "graph") {
			continue
		}
		node, ok := top.Value.([]pair)
		if !ok {
			return nil, nil, fmt.Errorf("gml: graph value is not a list")
		}

		var verts []graph.VertexTuple
		var edges []graph.EdgeTuple
		serial := 0

		for _, kv := range node {
			switch {
			case strings.EqualFold(kv.Key, "node"):
				vl, ok := kv.Value.([]pair)
				if !ok {
					return nil, nil, fmt.Errorf("gml: node value is not a list")
				}
				verts = append(verts, buildVert(vl))
			case strings.EqualFold(kv.Key, "edge"):
				el, ok := kv.Value.([]pair)
				if !ok {
					return nil, nil, fmt.Errorf("gml: edge value is not a list")
				}
				edges = append(edges, buildEdge(el, serial))
				serial++
			}
		}
		return verts, edges, nil
	}

	return nil, nil, fmt.Errorf("gml: could not find graph in file")
}

// Serialize is unsupported for GML; the reference corpus never writes it.
func (Codec) Serialize([]graph.VertexTuple, []graph.EdgeTuple, string, map[string]interface{}) ([]byte, error) {
	return nil, codec.ErrSerializeUnsupported
}

func buildVert(vl []pair) graph.VertexTuple {
	var id, name string
	haveName := false
	for _, kv := range vl {
		switch kv.Key {
		case "id":
			id = toStr(kv.Value)
		case "label":
			name, haveName = toStr(kv.Value), true
		}
	}
	if !haveName {
		name = id
	}
	return graph.VertexTuple{ID: id, Name: name}
}

func buildEdge(el []pair, serial int) graph.EdgeTuple {
	e := graph.EdgeTuple{ID: fmt.Sprintf("e%d", serial)}
	for _, kv := range el {
		switch kv.Key {
		case "label":
			e.Name = toStr(kv.Value)
		case "source":
			e.Src = toStr(kv.Value)
		case "target":
			e.Tgt = toStr(kv.Value)
		}
	}
	return e
}

func toStr(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// parseList consumes key/value pairs from ts until a "]" or exhaustion,
// mirroring gml.py: parse's `while len(ts) > 1 and ts[0] not in ']'` loop —
// used both for the top-level document (no enclosing brackets) and for any
// nested "[ ... ]" list.
func parseList(ts []string) ([]string, []pair, error) {
	var d []pair
	for len(ts) > 1 && ts[0] != "]" {
		key := ts[0]
		if !keyPattern.MatchString(key) {
			return nil, nil, fmt.Errorf("gml: parse error at %q", key)
		}
		rest, val, err := parseValue(ts[1], ts[2:])
		if err != nil {
			return nil, nil, err
		}
		d = append(d, pair{Key: key, Value: val})
		ts = rest
	}
	if len(ts) > 0 {
		ts = ts[1:]
	}
	return ts, d, nil
}

func parseValue(tok string, rest []string) ([]string, interface{}, error) {
	switch {
	case tok == "[":
		return parseList(rest)
	case len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"':
		return rest, tok[1 : len(tok)-1], nil
	case strings.Contains(tok, "."):
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("gml: bad real %q: %w", tok, err)
		}
		return rest, f, nil
	default:
		i, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("gml: bad integer %q: %w", tok, err)
		}
		return rest, i, nil
	}
}
