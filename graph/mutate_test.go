package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex_DefaultsNameToID(t *testing.T) {
	g := New()
	v, err := g.AddVertex("v0", "")
	require.NoError(t, err)
	assert.Equal(t, "v0", v.Name)
}

func TestAddVertex_RejectsEmptyID(t *testing.T) {
	g := New()
	_, err := g.AddVertex("", "a")
	require.ErrorIs(t, err, ErrEmptyID)
}

func TestAddVertex_RejectsDuplicateID(t *testing.T) {
	g := New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddVertex("v0", "b")
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestAddEdge_RejectsUnknownEndpoints(t *testing.T) {
	g := New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)

	_, err = g.AddEdge("v0", "v1", "", "x")
	require.ErrorIs(t, err, ErrVertexNotFound)
}

func TestNewVertexIDAndNewEdgeID_ShareOneNamespace(t *testing.T) {
	g := New()
	vid := g.NewVertexID()
	v, err := g.AddVertex(vid, "a")
	require.NoError(t, err)
	assert.Equal(t, vid, v.ID)

	eid := g.NewEdgeID()
	assert.NotEqual(t, vid, eid, "vertex and edge ids must never collide")
}

func TestDelEdge_DetachesFromBothEndpointAdjacencyLists(t *testing.T) {
	g := New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddVertex("v1", "b")
	require.NoError(t, err)
	e, err := g.AddEdge("v0", "v1", "", "x")
	require.NoError(t, err)

	require.NoError(t, g.DelEdge(e.ID))

	src, _ := g.Vertex("v0")
	tgt, _ := g.Vertex("v1")
	assert.Empty(t, src.Outgoing())
	assert.Empty(t, tgt.Incoming())
	_, ok := g.Edge(e.ID)
	assert.False(t, ok)
}

func TestDelVertex_RemovesAllIncidentEdges(t *testing.T) {
	g := New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddVertex("v1", "b")
	require.NoError(t, err)
	e, err := g.AddEdge("v0", "v1", "", "x")
	require.NoError(t, err)

	require.NoError(t, g.DelVertex("v0"))

	_, ok := g.Vertex("v0")
	assert.False(t, ok)
	_, ok = g.Edge(e.ID)
	assert.False(t, ok, "deleting a vertex must delete its incident edges")
}

func TestDelVertex_HandlesSelfLoopWithoutDoubleDeleting(t *testing.T) {
	g := New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("v0", "v0", "", "loop")
	require.NoError(t, err)

	require.NoError(t, g.DelVertex("v0"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestCombine_UnionsVerticesAndEdges(t *testing.T) {
	a := New()
	_, err := a.AddVertex("v0", "a")
	require.NoError(t, err)

	b := New()
	_, err = b.AddVertex("v1", "b")
	require.NoError(t, err)
	_, err = b.AddEdge("v1", "v1", "e0", "loop")
	require.NoError(t, err)

	require.NoError(t, a.Combine(b))

	assert.Equal(t, 2, a.VertexCount())
	assert.Equal(t, 1, a.EdgeCount())
}

func TestCombine_RejectsOverlappingVertexID(t *testing.T) {
	a := New()
	_, err := a.AddVertex("v0", "a")
	require.NoError(t, err)

	b := New()
	_, err = b.AddVertex("v0", "b")
	require.NoError(t, err)

	err = a.Combine(b)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestCombine_PreservesVertexAndEdgeExtras(t *testing.T) {
	a := New()

	b := New()
	_, err := b.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = b.AddVertex("v1", "b\nBLOCKED")
	require.NoError(t, err)
	_, err = b.AddEdge("v0", "v1", "e0", "ab\nweight=25%")
	require.NoError(t, err)

	require.NoError(t, a.Combine(b))

	v, ok := a.Vertex("v1")
	require.True(t, ok)
	assert.True(t, v.Blocked(), "BLOCKED extra must survive Combine")

	e, ok := a.Edge("e0")
	require.True(t, ok)
	w, ok := e.Weight()
	require.True(t, ok, "weight extra must survive Combine")
	assert.Equal(t, "25%", w)
}

func TestClone_IsIndependentOfSource(t *testing.T) {
	g := New()
	_, err := g.AddVertex("v0", "a")
	require.NoError(t, err)
	_, err = g.AddVertex("v1", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("v0", "v1", "e0", "x")
	require.NoError(t, err)

	clone := g.Clone()
	require.NoError(t, clone.DelVertex("v1"))

	assert.Equal(t, 2, g.VertexCount(), "mutating the clone must not affect the source")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, clone.VertexCount())
}
