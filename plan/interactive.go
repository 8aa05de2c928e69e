package plan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
	"github.com/spotify/go-graphwalker/step"
)

// Context keys Interactive pulls its I/O pair from. A driver wires these
// into the runCtx map passed to Plan; absent values default to an empty
// input (immediately-ended session) and discarded output.
const (
	InteractiveIn  = "interactive.in"
	InteractiveOut = "interactive.out"
)

const interactiveHelp = `0-n:    Traverse edge
h(elp)  This message
g(oto)  Use Goto planner to go some vertex
f(orce) Forcibly insert some words into the plan
j(ump)  Forcibly set the vertex where the planner believes it is at
q(uit)  End the interactive session
`

// Interactive drives a walk from operator commands read line by line: a
// digit picks an outgoing edge by index, "g NAME..." delegates to Goto,
// "f WORD..." injects synthetic steps, "j NAME" jumps the current vertex
// without emitting a step, "h"/"?" prints help, and "q" or end-of-input
// ends the session (§4.3.5). Grounded on planning.py: Interactive, with
// its Pdb "d(ebug)" command dropped (no terminal-debugger analogue) and
// its choose()/raw_input() duck typing replaced by a plain bufio.Scanner
// over the wired io.Reader.
type Interactive struct{}

// NewInteractive constructs an Interactive planner.
func NewInteractive() *Interactive { return &Interactive{} }

func (p *Interactive) Plan(ctx context.Context, g *graph.Graph, cond halt.Condition, startName string, runCtx map[string]interface{}) (Plan, error) {
	start, err := resolveStart(g, startName)
	if err != nil {
		return nil, err
	}

	in, _ := runCtx[InteractiveIn].(io.Reader)
	if in == nil {
		in = strings.NewReader("")
	}
	out, _ := runCtx[InteractiveOut].(io.Writer)
	if out == nil {
		out = io.Discard
	}

	cond.Add(step.Vertex(start.ID, start.Name))

	return &interactivePlan{
		g:    g,
		cond: cond,
		vert: start,
		in:   bufio.NewScanner(in),
		out:  out,
	}, nil
}

type interactivePlan struct {
	g    *graph.Graph
	cond halt.Condition
	vert *graph.Vertex
	in   *bufio.Scanner
	out  io.Writer

	queued []step.Step
	cur    step.Step
	err    error
	done   bool
}

func (p *interactivePlan) Next(ctx context.Context) bool {
	if p.err != nil || p.done {
		return false
	}
	if err := ctx.Err(); err != nil {
		p.err = err
		return false
	}

	for {
		if len(p.queued) > 0 {
			p.cur = p.queued[0]
			p.queued = p.queued[1:]
			return true
		}

		edges := p.vert.Outgoing()
		if len(edges) == 0 {
			p.done = true
			return false
		}

		fmt.Fprintf(p.out, "== Currently at: %s [%s]\n", p.vert.Name, p.vert.ID)
		if p.cond.IsDone() {
			fmt.Fprintln(p.out, "According to end conditions, we're done")
		}
		for i, eid := range edges {
			e, ok := p.g.Edge(eid)
			if !ok {
				continue
			}
			fmt.Fprintf(p.out, "[%s]\t%d: %s--(%s)-->%s\n", e.ID, i, p.vert.Name, e.Name, e.Tgt)
		}
		fmt.Fprint(p.out, "> ")

		if !p.in.Scan() {
			p.done = true
			return false
		}
		line := strings.TrimSpace(p.in.Text())

		if line == "" {
			fmt.Fprintln(p.out, "huh?")
			continue
		}

		switch {
		case line == "q":
			p.done = true
			return false

		case line[0] == 'd':
			continue

		case line[0] == 'f':
			for _, w := range strings.Fields(line)[1:] {
				p.queued = append(p.queued, step.Synthetic(w))
			}
			continue

		case line[0] == 'g':
			if err := p.goTo(ctx, strings.Fields(line)[1:]); err != nil {
				p.err = err
				return false
			}
			continue

		case line[0] == 'j':
			words := strings.Fields(line)
			v, err := p.g.FindByNameOrID(words[len(words)-1])
			if err != nil {
				fmt.Fprintf(p.out, "huh? %v\n", err)
				continue
			}
			p.vert = v
			continue

		case line[0] == 'h' || line[0] == '?':
			fmt.Fprint(p.out, interactiveHelp)
			continue

		default:
			idx, err := strconv.Atoi(line)
			if err != nil || idx < 0 || idx >= len(edges) {
				fmt.Fprintln(p.out, "huh?")
				continue
			}
			edge, ok := p.g.Edge(edges[idx])
			if !ok {
				p.err = graph.ErrEdgeNotFound
				return false
			}
			tgt, ok := p.g.Vertex(edge.Tgt)
			if !ok {
				p.err = graph.ErrVertexNotFound
				return false
			}
			es, vs := step.Edge(edge.ID, edge.Name), step.Vertex(tgt.ID, tgt.Name)
			p.cond.Add(es)
			p.cond.Add(vs)
			p.queued = append(p.queued, es, vs)
			p.vert = tgt
			continue
		}
	}
}

// goTo delegates to a one-shot Goto planner per named target, replaying
// its emitted steps against this session's halt condition. Grounded on
// planning.py: Interactive.goto.
func (p *interactivePlan) goTo(ctx context.Context, names []string) error {
	for _, name := range names {
		v, err := p.g.FindByNameOrID(name)
		if err != nil {
			continue
		}

		never := &halt.Never{}
		sub, err := NewGoto([]string{v.ID}, 1, 0).Plan(ctx, p.g, never, p.vert.ID, nil)
		if err != nil {
			return err
		}
		for sub.Next(ctx) {
			s := sub.Step()
			p.cond.Add(s)
			p.queued = append(p.queued, s)
			if !s.Edge {
				if vv, ok := p.g.Vertex(s.ID); ok {
					p.vert = vv
				}
			}
		}
		if err := sub.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (p *interactivePlan) Step() step.Step { return p.cur }
func (p *interactivePlan) Err() error      { return p.err }
