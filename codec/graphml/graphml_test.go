package graphml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns" xmlns:y="http://www.yworks.com/xml/graphml">
  <graph id="G" edgedefault="directed">
    <node id="n0">
      <data key="d0">
        <y:ShapeNode>
          <y:NodeLabel>Start</y:NodeLabel>
        </y:ShapeNode>
      </data>
    </node>
    <node id="n1">
      <data key="d0">
        <y:ShapeNode>
          <y:NodeLabel>Middle</y:NodeLabel>
        </y:ShapeNode>
      </data>
    </node>
    <edge id="e0" source="n0" target="n1">
      <data key="d1">
        <y:PolyLineEdge>
          <y:EdgeLabel>go</y:EdgeLabel>
        </y:PolyLineEdge>
      </data>
    </edge>
  </graph>
</graphml>`

func TestDeserialize_YEdAnnotatedGraph(t *testing.T) {
	verts, edges, err := Codec{}.Deserialize([]byte(sample))
	require.NoError(t, err)
	require.Len(t, verts, 2)
	require.Equal(t, "Start", verts[0].Name)
	require.Equal(t, "n0", verts[0].ID)
	require.Len(t, edges, 1)
	require.Equal(t, "go", edges[0].Name)
	require.Equal(t, "n0", edges[0].Src)
	require.Equal(t, "n1", edges[0].Tgt)
}

func TestDeserialize_NodeWithoutLabelSkipped(t *testing.T) {
	src := `<graphml><graph><node id="n0"></node></graph></graphml>`
	verts, _, err := Codec{}.Deserialize([]byte(src))
	require.NoError(t, err)
	require.Empty(t, verts)
}
