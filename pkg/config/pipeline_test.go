package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPipelineConfigWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")

	cfg, err := LoadPipelineConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.HexResolution)
	assert.FileExists(t, path)

	// Second load reads back the same values from disk.
	cfg2, err := LoadPipelineConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Output.DatabasePath, cfg2.Output.DatabasePath)
}
