package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spotify/go-graphwalker/codec"
	_ "github.com/spotify/go-graphwalker/codec/dot"
	_ "github.com/spotify/go-graphwalker/codec/gml"
	_ "github.com/spotify/go-graphwalker/codec/graphml"
	_ "github.com/spotify/go-graphwalker/codec/tgf"
	_ "github.com/spotify/go-graphwalker/codec/txt"
)

func TestByPath_SelectsByExtension(t *testing.T) {
	c, err := codec.ByPath("models/login.dot")
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestByPath_UnknownExtension(t *testing.T) {
	_, err := codec.ByPath("models/login.xyz")
	require.Error(t, err)
}

func TestByPath_NoExtension(t *testing.T) {
	_, err := codec.ByPath("models/login")
	require.Error(t, err)
}
