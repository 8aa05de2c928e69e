package dot

import (
	"fmt"
	"strings"

	"github.com/spotify/go-graphwalker/graph"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokPunct
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits DOT source into identifiers (bare or quoted), the
// multi-char operators "->" and "--", and single-char punctuation. Line
// comments ("//" and "#") and block comments ("/* ... */") are stripped
// first, matching the comment styles Graphviz's own grammar accepts.
func tokenize(src string) []token {
	src = stripComments(src)

	var toks []token
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '"' || c == '\'':
			j := i + 1
			for j < n && src[j] != c {
				if src[j] == '\\' && j+1 < n {
					j++
				}
				j++
			}
			if j < n {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j]})
			i = j
		case c == '-' && i+1 < n && (src[i+1] == '>' || src[i+1] == '-'):
			toks = append(toks, token{tokPunct, src[i : i+2]})
			i += 2
		case strings.ContainsRune("{}[];,=:", rune(c)):
			toks = append(toks, token{tokPunct, string(c)})
			i++
		default:
			j := i
			for j < n && !strings.ContainsRune(" \t\r\n{}[];,=\"'", rune(src[j])) &&
				!(src[j] == '-' && j+1 < n && (src[j+1] == '>' || src[j+1] == '-')) {
				j++
			}
			if j == i {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j]})
			i = j
		}
	}
	return toks
}

func stripComments(src string) string {
	var b strings.Builder
	n := len(src)
	for i := 0; i < n; i++ {
		switch {
		case src[i] == '#':
			for i < n && src[i] != '\n' {
				i++
			}
			if i < n {
				b.WriteByte('\n')
			}
		case i+1 < n && src[i] == '/' && src[i+1] == '/':
			i += 2
			for i < n && src[i] != '\n' {
				i++
			}
			if i < n {
				b.WriteByte('\n')
			}
		case i+1 < n && src[i] == '/' && src[i+1] == '*':
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i++
		default:
			b.WriteByte(src[i])
		}
	}
	return b.String()
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) expect(text string) error {
	t := p.next()
	if t.text != text {
		return fmt.Errorf("dot: expected %q, got %q", text, t.text)
	}
	return nil
}

// parseGraph parses "[strict] (graph|digraph) [name] { stmt_list }".
func (p *parser) parseGraph() ([]graph.VertexTuple, []graph.EdgeTuple, error) {
	if strings.EqualFold(p.peek().text, "strict") {
		p.next()
	}

	kw := strings.ToLower(p.next().text)
	if kw != "graph" && kw != "digraph" {
		return nil, nil, fmt.Errorf("dot: expected \"graph\" or \"digraph\", got %q", kw)
	}
	undirected := kw == "graph"

	if p.peek().text != "{" {
		p.next() // optional graph name
	}
	if err := p.expect("{"); err != nil {
		return nil, nil, err
	}

	vertsByID := map[string]graph.VertexTuple{}
	var vertOrder []string
	var edges []graph.EdgeTuple
	seq := 0

	ensureVert := func(name string) {
		if _, ok := vertsByID[name]; !ok {
			vertsByID[name] = graph.VertexTuple{ID: name, Name: name}
			vertOrder = append(vertOrder, name)
		}
	}

	for {
		t := p.peek()
		if t.kind == tokEOF || t.text == "}" {
			p.next()
			break
		}
		if t.text == ";" {
			p.next()
			continue
		}

		id := unquote(p.next().text)

		if p.peek().text == "->" || p.peek().text == "--" {
			// Edge statement: consume a chain of "-> ID" segments.
			chain := []string{id}
			for p.peek().text == "->" || p.peek().text == "--" {
				p.next()
				chain = append(chain, unquote(p.next().text))
			}
			attrs, err := p.maybeAttrList()
			if err != nil {
				return nil, nil, err
			}
			label := attrs["label"]

			for i := 0; i+1 < len(chain); i++ {
				src, tgt := chain[i], chain[i+1]
				ensureVert(src)
				ensureVert(tgt)
				edges = append(edges, graph.EdgeTuple{ID: fmt.Sprintf("e%d", seq), Name: label, Src: src, Tgt: tgt})
				seq++
			}
			continue
		}

		if strings.EqualFold(id, "graph") || strings.EqualFold(id, "node") || strings.EqualFold(id, "edge") {
			// Graph/node/edge default-attribute statement; attributes are
			// not interpreted by graphwalker's wire format, just consumed.
			if _, err := p.maybeAttrList(); err != nil {
				return nil, nil, err
			}
			continue
		}

		if p.peek().text == "=" {
			// Bare "key = value" graph attribute statement.
			p.next()
			p.next()
			continue
		}

		attrs, err := p.maybeAttrList()
		if err != nil {
			return nil, nil, err
		}
		label := id
		if l, ok := attrs["label"]; ok {
			label = l
		}
		vertsByID[id] = graph.VertexTuple{ID: id, Name: label}
		if !contains(vertOrder, id) {
			vertOrder = append(vertOrder, id)
		}
	}

	verts := make([]graph.VertexTuple, 0, len(vertOrder))
	for _, id := range vertOrder {
		if strings.EqualFold(id, "graph") || strings.EqualFold(id, "node") || strings.EqualFold(id, "edge") {
			continue
		}
		verts = append(verts, vertsByID[id])
	}

	if undirected {
		n := len(edges)
		for i := 0; i < n; i++ {
			e := edges[i]
			edges = append(edges, graph.EdgeTuple{ID: fmt.Sprintf("e%d", seq), Name: e.Name, Src: e.Tgt, Tgt: e.Src})
			seq++
		}
	}

	return verts, edges, nil
}

// maybeAttrList parses an optional "[ key=value, ... ]" attribute list
// (and the terminating ";", if present), returning the attributes seen.
func (p *parser) maybeAttrList() (map[string]string, error) {
	attrs := map[string]string{}
	if p.peek().text != "[" {
		if p.peek().text == ";" {
			p.next()
		}
		return attrs, nil
	}
	p.next()
	for p.peek().text != "]" {
		if p.peek().kind == tokEOF {
			return nil, fmt.Errorf("dot: unterminated attribute list")
		}
		key := unquote(p.next().text)
		if err := p.expect("="); err != nil {
			return nil, err
		}
		val := unquote(p.next().text)
		attrs[strings.ToLower(key)] = val
		if p.peek().text == "," || p.peek().text == ";" {
			p.next()
		}
	}
	p.next() // consume "]"
	if p.peek().text == ";" {
		p.next()
	}
	return attrs, nil
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
