package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auctiondiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dialect: board
star_mode: terminate
sample_limit: 25
workers: 4
format: json
boards: 1-3,5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Dialect:     "board",
		StarMode:    "terminate",
		SampleLimit: 25,
		Workers:     4,
		Format:      FormatJSON,
		Boards:      "1-3,5",
	}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDialect, "board")
	t.Setenv(EnvBoundary, "event")
	t.Setenv(EnvStarMode, "separate")
	t.Setenv(EnvSampleLimit, "3")
	t.Setenv(EnvWorkers, "8")
	t.Setenv(EnvFormat, "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "board", cfg.Dialect)
	assert.Equal(t, "event", cfg.Boundary)
	assert.Equal(t, "separate", cfg.StarMode)
	assert.Equal(t, 3, cfg.SampleLimit)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers: [1"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid env number", func(t *testing.T) {
		t.Setenv(EnvWorkers, "many")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("unknown dialect", func(t *testing.T) {
		t.Setenv(EnvDialect, "xml")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "deal boundary", mutate: func(c *Config) { c.Boundary = "deal" }},
		{name: "unknown boundary", mutate: func(c *Config) { c.Boundary = "round" }, wantErr: true},
		{name: "unknown star mode", mutate: func(c *Config) { c.StarMode = "ignore" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: true},
		{name: "upper-case format", mutate: func(c *Config) { c.Format = "JSON" }},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_NormalizesFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = " Json "

	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatJSON, cfg.Format)
}
