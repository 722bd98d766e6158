package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenNoPathGiven(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigReadsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 500\nlog_level: WARN\nuse_zap: true\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{N: 500, LogLevel: "WARN", UseZap: true}, cfg)
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
