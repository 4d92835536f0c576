package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Indent)
	assert.True(t, cfg.Backup.Enabled)
	assert.Equal(t, "warn", cfg.Verify.OnUnordered)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sortxml.yaml")
	doc := `
sort_order:
  - groupId
  - artifactId
indent: 4
backup:
  enabled: false
verify:
  on_unordered: stop
  violation_file: violations.xml
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"groupId", "artifactId"}, cfg.SortOrder)
	assert.Equal(t, 4, cfg.Indent)
	assert.False(t, cfg.Backup.Enabled)
	assert.Equal(t, "stop", cfg.Verify.OnUnordered)
	assert.Equal(t, "violations.xml", cfg.Verify.ViolationFile)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative indent", func(c *Config) { c.Indent = -1 }},
		{"huge indent", func(c *Config) { c.Indent = 20 }},
		{"backup without extension", func(c *Config) { c.Backup.Extension = "" }},
		{"unknown policy", func(c *Config) { c.Verify.OnUnordered = "explode" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
