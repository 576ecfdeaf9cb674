package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Catalog.Driver)
	assert.Equal(t, "regions.yaml", cfg.Regions.DatasetPath)
	assert.InDelta(t, 25.0, cfg.Regions.MaxDistanceMiles, 0.001)
	assert.Equal(t, 3, cfg.Regions.MaxAdjacent)
	assert.InDelta(t, 150.0, cfg.Match.ExactRadiusMeters, 0.001)
	assert.InDelta(t, 500.0, cfg.Match.ProbableRadiusMeters, 0.001)
	assert.InDelta(t, 0.85, cfg.Match.NameSimilarityThreshold, 0.001)
	assert.InDelta(t, 0.85, cfg.Match.EnrichmentNameSimilarityThreshold, 0.001)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	chTempDir(t)

	yaml := `
catalog:
  driver: postgres
  database_url: postgres://localhost/atlas
regions:
  dataset_path: /data/regions.yaml
match:
  exact_radius_meters: 100
log:
  level: debug
  format: console
server:
  port: 9999
`
	require.NoError(t, os.WriteFile(filepath.Join(".", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Catalog.Driver)
	assert.Equal(t, "postgres://localhost/atlas", cfg.Catalog.DatabaseURL)
	assert.Equal(t, "/data/regions.yaml", cfg.Regions.DatasetPath)
	assert.InDelta(t, 100.0, cfg.Match.ExactRadiusMeters, 0.001)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 500.0, cfg.Match.ProbableRadiusMeters, 0.001)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoadMalformedYAML(t *testing.T) {
	chTempDir(t)

	require.NoError(t, os.WriteFile("config.yaml", []byte("match: [broken"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{"json info", LogConfig{Level: "info", Format: "json"}, false},
		{"console debug", LogConfig{Level: "debug", Format: "console"}, false},
		{"bad level", LogConfig{Level: "shouty", Format: "json"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
