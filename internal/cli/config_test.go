package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphinsight/pkg/errors"
	"github.com/matzehuels/graphinsight/pkg/schema"
)

const duplicateIDs = `{"nodes": [{"id": 1, "semantic_summary": "A"}, {"id": 1, "semantic_summary": "B"}], "edges": []}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "[validation]\nstrict = true\nshape = \"flat\"\n\n[output]\npretty = false\n")
		cfg, unknown, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Empty(t, unknown)
		assert.True(t, cfg.Validation.Strict)
		assert.Equal(t, "flat", cfg.Validation.Shape)
		assert.Equal(t, schema.DefaultMaxDepth, cfg.Validation.MaxDepth)
		assert.False(t, cfg.Output.Pretty)
	})

	t.Run("unknown keys", func(t *testing.T) {
		path := writeConfig(t, "[validation]\nstrikt = true\n")
		_, unknown, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"validation.strikt"}, unknown)
	})

	t.Run("bad shape", func(t *testing.T) {
		_, _, err := LoadConfig(writeConfig(t, "[validation]\nshape = \"dag\"\n"))
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})

	t.Run("bad toml", func(t *testing.T) {
		_, _, err := LoadConfig(writeConfig(t, "[validation\n"))
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
		assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
	})
}

func TestConfigFlagPrecedence(t *testing.T) {
	cfg := writeConfig(t, "[validation]\nstrict = true\n")

	r := execute(t, duplicateIDs, "validate", "--config", cfg)
	assert.True(t, errors.IsShapeError(r.err), "config enables strict mode")

	r = execute(t, duplicateIDs, "validate", "--config", cfg, "--strict=false")
	assert.NoError(t, r.err, "flag overrides config")
}

func TestDefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, appName), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, appName, configFile), []byte("[output]\npretty = false\ncolour = true\n"), 0644))

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	t.Setenv("XDG_CONFIG_HOME", dir)
	root.SetArgs([]string{"sample"})
	root.SetOut(&out)
	require.NoError(t, root.Execute())

	assert.False(t, c.Config.Output.Pretty)
	assert.Contains(t, logs.String(), "unknown config keys")
	assert.Contains(t, logs.String(), "output.colour")
}
