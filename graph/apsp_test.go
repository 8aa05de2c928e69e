package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTriangleGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for _, id := range []string{"v0", "v1", "v2"} {
		_, err := g.AddVertex(id, id)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("v0", "v1", "", "ab")
	require.NoError(t, err)
	_, err = g.AddEdge("v1", "v2", "", "bc")
	require.NoError(t, err)
	_, err = g.AddEdge("v0", "v2", "", "ac")
	require.NoError(t, err)
	return g
}

func TestAPSP_DirectEdgeCostsOne(t *testing.T) {
	g := buildTriangleGraph(t)
	apsp, err := g.APSP()
	require.NoError(t, err)

	cost, path, ok := apsp.Lookup("v0", "v1")
	require.True(t, ok)
	assert.Equal(t, 1.0, cost)
	assert.Equal(t, []string{"v1"}, path)
}

func TestAPSP_TriangleInequalityHoldsAcrossIntermediateVertex(t *testing.T) {
	g := New()
	for _, id := range []string{"v0", "v1", "v2"} {
		_, err := g.AddVertex(id, id)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("v0", "v1", "", "ab")
	require.NoError(t, err)
	_, err = g.AddEdge("v1", "v2", "", "bc")
	require.NoError(t, err)
	// no direct v0->v2 edge at all: the shortest path must route through v1.
	apsp, err := g.APSP()
	require.NoError(t, err)

	direct, _, okDirect := apsp.Lookup("v0", "v1")
	require.True(t, okDirect)
	viaMid, path, okPath := apsp.Lookup("v0", "v2")
	require.True(t, okPath)

	assert.Equal(t, direct+1, viaMid, "v0->v2 must cost exactly the sum of its two hops")
	assert.Equal(t, []string{"v1", "v2"}, path)
}

func TestAPSP_UnreachablePairReportsInfWithOkTrue(t *testing.T) {
	g := New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddVertex("v1", "b")
	require.NoError(t, err)

	apsp, err := g.APSP()
	require.NoError(t, err)

	cost, path, ok := apsp.Lookup("v0", "v1")
	assert.True(t, ok)
	assert.True(t, IsInf(cost))
	assert.Nil(t, path)
}

func TestAPSP_UnknownVertexIDReportsOkFalse(t *testing.T) {
	g := buildTriangleGraph(t)
	apsp, err := g.APSP()
	require.NoError(t, err)

	_, _, ok := apsp.Lookup("v0", "nope")
	assert.False(t, ok)
}

func TestAPSP_SameVertexCostsZero(t *testing.T) {
	g := buildTriangleGraph(t)
	apsp, err := g.APSP()
	require.NoError(t, err)

	cost, path, ok := apsp.Lookup("v0", "v0")
	require.True(t, ok)
	assert.Equal(t, 0.0, cost)
	assert.Nil(t, path)
}

func TestAPSP_IsInvalidatedAfterMutation(t *testing.T) {
	g := New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddVertex("v1", "b")
	require.NoError(t, err)

	apsp, err := g.APSP()
	require.NoError(t, err)
	_, _, ok := apsp.Lookup("v0", "v1")
	require.True(t, ok)
	assert.True(t, IsInf(func() float64 { c, _, _ := apsp.Lookup("v0", "v1"); return c }()))

	_, err = g.AddEdge("v0", "v1", "", "ab")
	require.NoError(t, err)

	recomputed, err := g.APSP()
	require.NoError(t, err)
	cost, _, ok := recomputed.Lookup("v0", "v1")
	require.True(t, ok)
	assert.Equal(t, 1.0, cost, "adding an edge must invalidate the memoized APSP table")
}
