package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DropsBlockedVertexAndItsEdges(t *testing.T) {
	verts := []VertexTuple{
		{ID: "v0", Name: "Locked"},
		{ID: "v1", Name: "Unlocked"},
		{ID: "v2", Name: "Jammed\nBLOCKED"},
	}
	edges := []EdgeTuple{
		{ID: "e0", Name: "coin", Src: "v0", Tgt: "v1"},
		{ID: "e1", Name: "jam", Src: "v0", Tgt: "v2"}, // dropped: v2 is BLOCKED
	}

	g, err := Build(verts, edges)
	require.NoError(t, err)

	assert.Equal(t, 2, g.VertexCount(), "the BLOCKED vertex must not be built")
	_, ok := g.Vertex("v2")
	assert.False(t, ok)

	assert.Equal(t, 1, g.EdgeCount(), "an edge into a dropped vertex must also be dropped")
	_, ok = g.Edge("e1")
	assert.False(t, ok)
}

func TestBuild_DropsBlockedEdgeBetweenLiveVertices(t *testing.T) {
	verts := []VertexTuple{
		{ID: "v0", Name: "Locked"},
		{ID: "v1", Name: "Locked"},
	}
	edges := []EdgeTuple{
		{ID: "e0", Name: "push\nBLOCKED", Src: "v0", Tgt: "v1"},
		{ID: "e1", Name: "coin", Src: "v0", Tgt: "v1"},
	}

	g, err := Build(verts, edges)
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	_, ok := g.Edge("e0")
	assert.False(t, ok)
}

func TestBuild_DuplicateVertexIDIsAnError(t *testing.T) {
	verts := []VertexTuple{
		{ID: "v0", Name: "a"},
		{ID: "v0", Name: "b"},
	}
	_, err := Build(verts, nil)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestBuild_DuplicateEdgeIDIsAnError(t *testing.T) {
	verts := []VertexTuple{{ID: "v0", Name: "a"}, {ID: "v1", Name: "b"}}
	edges := []EdgeTuple{
		{ID: "e0", Name: "x", Src: "v0", Tgt: "v1"},
		{ID: "e0", Name: "y", Src: "v0", Tgt: "v1"},
	}
	_, err := Build(verts, edges)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestBuild_WiresAdjacencyBothWays(t *testing.T) {
	verts := []VertexTuple{{ID: "v0", Name: "a"}, {ID: "v1", Name: "b"}}
	edges := []EdgeTuple{{ID: "e0", Name: "x", Src: "v0", Tgt: "v1"}}

	g, err := Build(verts, edges)
	require.NoError(t, err)

	src, _ := g.Vertex("v0")
	tgt, _ := g.Vertex("v1")
	assert.Equal(t, []string{"e0"}, src.Outgoing())
	assert.Equal(t, []string{"e0"}, tgt.Incoming())
}
