package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
	"github.com/spotify/go-graphwalker/step"
)

// riggedSource replays a fixed sequence of uniform draws; both Intn and
// Float64 pull from the same stream, matching the rigged Python PRNG the
// literal scenario is specified against.
type riggedSource struct {
	vals []float64
	i    int
}

func (r *riggedSource) next() float64 {
	v := r.vals[r.i]
	r.i++
	return v
}

func (r *riggedSource) Intn(n int) int   { return int(r.next() * float64(n)) }
func (r *riggedSource) Float64() float64 { return r.next() }

func buildS3Graph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddVertex("v1", "b")
	require.NoError(t, err)
	_, err = g.AddVertex("v2", "c")
	require.NoError(t, err)

	_, err = g.AddEdge("v0", "v1", "", "ab")
	require.NoError(t, err)
	_, err = g.AddEdge("v1", "v2", "", "bc")
	require.NoError(t, err)
	_, err = g.AddEdge("v2", "v1", "", "cb")
	require.NoError(t, err)
	_, err = g.AddEdge("v1", "v1", "", "bb\nweight=25%")
	require.NoError(t, err)
	_, err = g.AddEdge("v2", "v2", "", "cc")
	require.NoError(t, err)

	return g
}

func TestRandom_S3WeightedRiggedSequence(t *testing.T) {
	g := buildS3Graph(t)
	rng := &riggedSource{vals: []float64{0, 0.26, 0, 0.24, 1, 0}}

	cond := halt.NewCountSteps(10)
	require.NoError(t, cond.Start(context.Background(), g))

	start, err := resolveStart(g, "a")
	require.NoError(t, err)

	p := newRandomWalkPlan(g, cond, start, rng, chooseWeighted)

	var got []string
	for p.Next(context.Background()) {
		got = append(got, p.Step().Name)
	}
	require.NoError(t, p.Err())

	want := []string{"ab", "b", "bc", "c", "cb", "b", "bb", "b", "bc", "c"}
	require.Equal(t, want, got)
}

func TestRandom_FallsBackToUniformWithoutWeights(t *testing.T) {
	g := graph.New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddVertex("v1", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("v0", "v1", "", "ab")
	require.NoError(t, err)

	cond := halt.NewCountSteps(2)
	require.NoError(t, cond.Start(context.Background(), g))

	start, err := resolveStart(g, "a")
	require.NoError(t, err)

	rng := &riggedSource{vals: []float64{0}}
	p := newRandomWalkPlan(g, cond, start, rng, chooseWeighted)

	require.True(t, p.Next(context.Background()))
	require.Equal(t, step.Edge("e0", "ab"), p.Step())
}
