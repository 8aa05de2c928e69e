package dot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spotify/go-graphwalker/graph"
)

func TestDeserialize_DigraphWithLabels(t *testing.T) {
	src := `digraph "model" {
  v0 [label="Start"];
  v1 [label="Middle"];
  v0 -> v1 [label="go"];
}
`
	verts, edges, err := Codec{}.Deserialize([]byte(src))
	require.NoError(t, err)
	require.Equal(t, []graph.VertexTuple{
		{ID: "v0", Name: "Start"},
		{ID: "v1", Name: "Middle"},
	}, verts)
	require.Equal(t, []graph.EdgeTuple{
		{ID: "e0", Name: "go", Src: "v0", Tgt: "v1"},
	}, edges)
}

func TestDeserialize_UndirectedGraphDuplicatesEdges(t *testing.T) {
	src := `graph "model" {
  a [label="a"];
  b [label="b"];
  a -- b [label="ab"];
}
`
	verts, edges, err := Codec{}.Deserialize([]byte(src))
	require.NoError(t, err)
	require.Len(t, verts, 2)
	require.Equal(t, []graph.EdgeTuple{
		{ID: "e0", Name: "ab", Src: "a", Tgt: "b"},
		{ID: "e1", Name: "ab", Src: "b", Tgt: "a"},
	}, edges)
}

func TestSerialize_RendersHighlightedVertex(t *testing.T) {
	verts := []graph.VertexTuple{{ID: "v0", Name: "Start"}}
	edges := []graph.EdgeTuple{{ID: "e0", Name: "go", Src: "v0", Tgt: "v0"}}

	out, err := Codec{}.Serialize(verts, edges, "model", map[string]interface{}{
		"highlight": []string{"v0"},
	})
	require.NoError(t, err)
	require.Contains(t, string(out), `digraph "model"`)
	require.Contains(t, string(out), "color=red")
}
