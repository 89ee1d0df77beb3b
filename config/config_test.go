package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := LoadDefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "datatables.net", cfg.Display.Engine)
	assert.Equal(t, 20, cfg.Limits.MaxColumns)
	assert.Equal(t, 1<<20, cfg.Limits.MaxBytes)
	assert.Equal(t, 0, cfg.Limits.MaxRows)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridbox.yml")
	content := `
display:
  engine: ag-grid
  show_index: never
limits:
  max_rows: 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ag-grid", cfg.Display.Engine)
	assert.Equal(t, "never", cfg.Display.ShowIndex)
	assert.Equal(t, 500, cfg.Limits.MaxRows)
	// Untouched values keep their defaults.
	assert.Equal(t, 20, cfg.Limits.MaxColumns)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrFileReadFailed))
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("display: [not a mapping"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrParseFailed))
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad engine", func(c *Config) { c.Display.Engine = "handsontable" }},
		{"bad show_index", func(c *Config) { c.Display.ShowIndex = "sometimes" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"negative precision", func(c *Config) { c.Display.Precision = -1 }},
		{"negative max_rows", func(c *Config) { c.Limits.MaxRows = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := LoadDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, ErrValidationFailed))
		})
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := LoadDefaultConfig()
	cfg.Display.Engine = "ag-grid"
	cfg.Display.ShowIndex = "always"
	cfg.Limits.MaxRows = 42

	opts, err := cfg.RenderOptions()
	require.NoError(t, err)
	assert.Equal(t, render.AgGrid, opts.Engine)
	assert.Equal(t, render.ShowIndexAlways, opts.ShowIndex)
	assert.Equal(t, 42, opts.Limits.MaxRows)
}
