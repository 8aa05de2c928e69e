package halt

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/step"
)

var validate = validator.New()

// CoverageOptions configures Coverage. Edges/Vertices are percentages in
// [0, 100]; validated via go-playground/validator before use (the same
// struct-tag validation style SPEC_FULL.md's ambient stack applies to
// DriverConfig).
type CoverageOptions struct {
	Edges    float64 `validate:"gte=0,lte=100"`
	Vertices float64 `validate:"gte=0,lte=100"`
}

// Coverage stops once the fraction of visited edges and vertices both meet
// their configured thresholds. If both Edges and Vertices are 0, Edges
// defaults to 100 (Testable Property 12), matching stopcond.py: Coverage.
type Coverage struct {
	edgeCov float64 // fraction in [0,1]
	vertCov float64

	g          *graph.Graph
	edgesSeen  map[string]struct{}
	edgesCount int
	vertsSeen  map[string]struct{}
	vertsCount int
}

// NewCoverage constructs a Coverage halt condition. Returns an error if
// opts fails validation.
func NewCoverage(opts CoverageOptions) (*Coverage, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("halt: invalid CoverageOptions: %w", err)
	}

	edgeCov := opts.Edges / 100.0
	vertCov := opts.Vertices / 100.0
	if edgeCov == 0.0 && vertCov == 0.0 {
		edgeCov = 1.0
	}

	return &Coverage{edgeCov: edgeCov, vertCov: vertCov}, nil
}

func (c *Coverage) Start(_ context.Context, g *graph.Graph) error {
	c.g = g
	c.edgesSeen = make(map[string]struct{})
	c.vertsSeen = make(map[string]struct{})
	c.edgesCount = g.EdgeCount()
	c.vertsCount = g.VertexCount()
	return nil
}

func (c *Coverage) Add(s step.Step) {
	if s.Synthetic {
		return
	}
	if _, ok := c.g.Vertex(s.ID); ok {
		c.vertsSeen[s.ID] = struct{}{}
		return
	}
	if _, ok := c.g.Edge(s.ID); ok {
		c.edgesSeen[s.ID] = struct{}{}
	}
}

func (c *Coverage) IsDone() bool {
	edgeFrac := fraction(len(c.edgesSeen), c.edgesCount)
	vertFrac := fraction(len(c.vertsSeen), c.vertsCount)
	return edgeFrac >= c.edgeCov && vertFrac >= c.vertCov
}

func (c *Coverage) Progress() string {
	x, y := 0, 0
	if c.edgeCov > 0 {
		x += len(c.edgesSeen)
		y += c.edgesCount
	}
	if c.vertCov > 0 {
		x += len(c.vertsSeen)
		y += c.vertsCount
	}
	if y == 0 {
		return "0/0: 0"
	}
	return fmt.Sprintf("%d/%d: %d", x, y, 100*x/y)
}

func fraction(x, y int) float64 {
	if y == 0 {
		return 1.0
	}
	return float64(x) / float64(y)
}
