package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graphs:
  - login.dot
planners:
  - Random:seed=1
stopcond: "Coverage:edges=100"
suite_name: login-suite
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"login.dot"}, cfg.Graphs)
	require.Equal(t, []string{"Random:seed=1"}, cfg.Planners)
	require.Equal(t, "Coverage:edges=100", cfg.StopCond)
	require.Equal(t, "login-suite", cfg.SuiteName)
}

func TestValidate_RequiresAtLeastOneGraph(t *testing.T) {
	cfg := &DriverConfig{}
	require.Error(t, Validate(cfg))

	cfg.Graphs = []string{"login.dot"}
	require.NoError(t, Validate(cfg))
}

func TestMerge_FlagsOverrideFile(t *testing.T) {
	base := &DriverConfig{Graphs: []string{"a.dot"}, SuiteName: "from-file"}
	flags := &DriverConfig{SuiteName: "from-flag", Debug: true}

	merged := Merge(base, flags)
	require.Equal(t, []string{"a.dot"}, merged.Graphs)
	require.Equal(t, "from-flag", merged.SuiteName)
	require.True(t, merged.Debug)
}

func TestMerge_NilBaseReturnsFlags(t *testing.T) {
	flags := &DriverConfig{Graphs: []string{"a.dot"}}
	require.Same(t, flags, Merge(nil, flags))
}
