package plan

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spotify/go-graphwalker/graph"
	"github.com/spotify/go-graphwalker/halt"
)

func buildS2Graph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i, name := range []string{"a", "b", "c", "d"} {
		_, err := g.AddVertex("v"+string(rune('0'+i)), name)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("v0", "v1", "", "ab")
	require.NoError(t, err)
	_, err = g.AddEdge("v1", "v2", "", "bc")
	require.NoError(t, err)
	_, err = g.AddEdge("v2", "v3", "", "cd")
	require.NoError(t, err)
	_, err = g.AddEdge("v3", "v0", "", "da")
	require.NoError(t, err)
	return g
}

func TestGoto_S2DashJoinedSequence(t *testing.T) {
	g := buildS2Graph(t)

	cond := &halt.Never{}
	require.NoError(t, cond.Start(context.Background(), g))

	gp := NewGoto([]string{"d", "c", "b", "a"}, 1, 0)
	plan, err := gp.Plan(context.Background(), g, cond, "a", nil)
	require.NoError(t, err)

	var names []string
	for plan.Next(context.Background()) {
		names = append(names, plan.Step().Name)
	}
	require.NoError(t, plan.Err())

	want := "ab-b-bc-c-cd-d-da-a-ab-b-bc-c-cd-d-da-a-ab-b-bc-c-cd-d-da-a"
	require.Equal(t, want, strings.Join(names, "-"))
}
