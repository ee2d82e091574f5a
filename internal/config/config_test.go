package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Lint.Rules)
	assert.Equal(t, []string{"**/node_modules/**"}, cfg.Lint.Exclude)
	assert.Equal(t, []string{".js", ".ts"}, cfg.Lint.Extensions)
	assert.Zero(t, cfg.Lint.Jobs)
	assert.Equal(t, "render", cfg.Render.Method)
	assert.Equal(t, "hbs", cfg.Render.Tag)
	assert.NoError(t, cfg.Validate())
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")

	yaml := `lint:
  rules:
    template-render-format: warn
render:
  tag: htmlbars
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Lint.Rules["template-render-format"])
	assert.Equal(t, "htmlbars", cfg.Render.Tag)

	// Verify unspecified fields retain defaults.
	assert.Equal(t, "render", cfg.Render.Method)
	assert.Equal(t, []string{".js", ".ts"}, cfg.Lint.Extensions)
	assert.Equal(t, []string{"**/node_modules/**"}, cfg.Lint.Exclude)
}

func TestLoadNoConfigReturnsDefaults(t *testing.T) {
	// Use an empty temp dir so no config file is discovered.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	content := []byte("lint:\n  jobs: 2\n")

	// Create all four files; hbslint.yml (first in order) should win.
	for _, name := range []string{"hbslint.yml", "hbslint.yaml", ".hbslint.yml", ".hbslint.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o644))
	}

	order := []string{"hbslint.yml", "hbslint.yaml", ".hbslint.yml", ".hbslint.yaml"}
	for i, name := range order {
		assert.Equal(t, filepath.Join(dir, name), Discover(dir), "after removing %v", order[:i])
		require.NoError(t, os.Remove(filepath.Join(dir, name)))
	}

	assert.Empty(t, Discover(dir))
}

func TestDiscoverNoFiles(t *testing.T) {
	assert.Empty(t, Discover(t.TempDir()))
}

func TestLoadDiscovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".hbslint.yaml")

	yaml := `lint:
  extensions: [".js"]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{".js"}, cfg.Lint.Extensions)
	assert.Equal(t, "hbs", cfg.Render.Tag, "unspecified fields keep defaults")
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("{{{{not valid yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	got, ok := customErr.GetMetadata(MetaKeyPath)
	assert.True(t, ok)
	assert.Equal(t, path, got)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgConfigNotFound)
}

func TestLoadValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hbslint.yml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  method: \"\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), ErrMsgEmptyMethod)
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Empty file should result in all defaults.
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{
			name:   "unknown severity",
			mutate: func(c *Config) { c.Lint.Rules = map[string]string{"template-render-format": "fatal"} },
			msg:    ErrMsgInvalidSeverity,
		},
		{
			name:   "bad exclude glob",
			mutate: func(c *Config) { c.Lint.Exclude = []string{"src/[a-"} },
			msg:    ErrMsgInvalidExclude,
		},
		{
			name:   "negative jobs",
			mutate: func(c *Config) { c.Lint.Jobs = -1 },
			msg:    ErrMsgInvalidJobs,
		},
		{
			name:   "empty method",
			mutate: func(c *Config) { c.Render.Method = "" },
			msg:    ErrMsgEmptyMethod,
		},
		{
			name:   "empty tag",
			mutate: func(c *Config) { c.Render.Tag = "" },
			msg:    ErrMsgEmptyTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateAcceptsAllSeverities(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lint.Rules = map[string]string{
		"a": SeverityError,
		"b": SeverityWarn,
		"c": SeverityOff,
	}
	assert.NoError(t, cfg.Validate())
}
