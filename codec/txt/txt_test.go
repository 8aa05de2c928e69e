package txt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spotify/go-graphwalker/graph"
)

func TestDeserialize_PrependsStart(t *testing.T) {
	verts, edges, err := Codec{}.Deserialize([]byte("a b c"))
	require.NoError(t, err)
	require.Equal(t, []graph.VertexTuple{
		{ID: "v0", Name: "Start"},
		{ID: "v1", Name: "a"},
		{ID: "v2", Name: "b"},
		{ID: "v3", Name: "c"},
	}, verts)
	require.Len(t, edges, 3)
	require.Equal(t, graph.EdgeTuple{ID: "e0", Src: "v0", Tgt: "v1"}, edges[0])
}

func TestDeserialize_StripsComments(t *testing.T) {
	src := "Start a # trailing comment\nb /* block */ c\n"
	verts, _, err := Codec{}.Deserialize([]byte(src))
	require.NoError(t, err)
	var names []string
	for _, v := range verts {
		names = append(names, v.Name)
	}
	require.Equal(t, []string{"Start", "a", "b", "c"}, names)
}
