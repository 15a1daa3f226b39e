package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphinsight/pkg/errors"
	"github.com/matzehuels/graphinsight/pkg/samples"
)

type result struct {
	stdout string
	logs   string
	err    error
}

// execute runs the root command with args, feeding stdin, in an isolated
// config directory.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.ExecuteContext(context.Background())
	return result{stdout: out.String(), logs: logs.String(), err: err}
}

// sampleFile writes a built-in sample to a temp file and returns its path.
func sampleFile(t *testing.T, name string) string {
	t.Helper()
	data, err := samples.Get(name)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name+".json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestValidateCommand(t *testing.T) {
	t.Run("flat file", func(t *testing.T) {
		r := execute(t, "", "validate", sampleFile(t, "network"))
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "network.json is a valid flat graph")
		assert.Contains(t, r.stdout, "10 nodes")
	})

	t.Run("tree from stdin", func(t *testing.T) {
		data, _ := samples.Get("minimal")
		r := execute(t, string(data), "validate", "-")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "stdin is a valid tree graph")
		assert.Contains(t, r.stdout, "1 links")
	})

	t.Run("malformed json", func(t *testing.T) {
		r := execute(t, `{"nodes": [`, "validate")
		require.Error(t, r.err)
		assert.True(t, errors.IsParseError(r.err))
		assert.Contains(t, r.stdout, "Invalid JSON format")
	})

	t.Run("dangling edge", func(t *testing.T) {
		r := execute(t, `{"nodes": [{"id": 1, "semantic_summary": "A"}], "edges": [{"source_id": 1, "target_id": 2}]}`, "validate")
		require.Error(t, r.err)
		assert.True(t, errors.Is(r.err, errors.ErrCodeInvalidReference))
		assert.Contains(t, r.stdout, "Invalid graph data structure")
		assert.Contains(t, r.stdout, "edges[0].target_id")
	})

	t.Run("forced shape", func(t *testing.T) {
		r := execute(t, "", "validate", "--shape", "tree", sampleFile(t, "network"))
		assert.True(t, errors.IsShapeError(r.err))
	})

	t.Run("bad shape flag", func(t *testing.T) {
		r := execute(t, "", "validate", "--shape", "dag", sampleFile(t, "network"))
		assert.True(t, errors.Is(r.err, errors.ErrCodeInvalidInput))
	})

	t.Run("depth limit", func(t *testing.T) {
		r := execute(t, "", "validate", "--max-depth", "2", sampleFile(t, "taxonomy"))
		assert.True(t, errors.Is(r.err, errors.ErrCodeDepthExceeded))
	})

	t.Run("missing file", func(t *testing.T) {
		r := execute(t, "", "validate", filepath.Join(t.TempDir(), "nope.json"))
		assert.True(t, errors.Is(r.err, errors.ErrCodeFileNotFound))
		assert.Contains(t, r.err.Error(), "File not found")
	})
}

func TestConvertCommand(t *testing.T) {
	t.Run("tree to force data", func(t *testing.T) {
		r := execute(t, "", "convert", sampleFile(t, "minimal"))
		require.NoError(t, r.err)
		assert.JSONEq(t, `{
			"nodes": [
				{"id": "Root_0", "name": "Root", "embedding": [0.1, 0.2], "metadata": {}, "val": 2},
				{"id": "Child_1", "name": "Child", "metadata": {}, "val": 1}
			],
			"links": [{"source": "Root_0", "target": "Child_1"}]
		}`, r.stdout)
	})

	t.Run("flat to network data compact", func(t *testing.T) {
		r := execute(t, `{"nodes": [{"id": 4, "semantic_summary": "solo"}], "edges": []}`, "convert", "--pretty=false")
		require.NoError(t, r.err)
		assert.Equal(t, `{"nodes":[{"id":4,"label":"solo","title":"solo"}],"edges":[]}`+"\n", r.stdout)
	})

	t.Run("to file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "force.json")
		r := execute(t, "", "convert", sampleFile(t, "taxonomy"), "-o", out)
		require.NoError(t, r.err)
		assert.Contains(t, r.logs, "Wrote "+out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"id": "Animalia_0"`)
	})
}

func TestFlattenCommand(t *testing.T) {
	r := execute(t, "", "flatten", sampleFile(t, "taxonomy"))
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, `"links"`)

	r = execute(t, "", "flatten", sampleFile(t, "network"))
	assert.True(t, errors.Is(r.err, errors.ErrCodeUnsupported))
}

func TestStatsCommand(t *testing.T) {
	r := execute(t, "", "stats", sampleFile(t, "taxonomy"))
	require.NoError(t, r.err)
	for _, want := range []string{"taxonomy.json", "Leaves", "Embedding dim", "Max fan-out"} {
		assert.Contains(t, r.stdout, want)
	}

	r = execute(t, "", "stats", sampleFile(t, "network"))
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Cyclic components")
	assert.Contains(t, r.stdout, "Self-loops")
}

func TestSampleCommand(t *testing.T) {
	r := execute(t, "", "sample")
	require.NoError(t, r.err)
	for _, name := range samples.Names() {
		assert.Contains(t, r.stdout, name)
	}

	r = execute(t, "", "sample", "minimal")
	require.NoError(t, r.err)
	want, _ := samples.Get("minimal")
	assert.Equal(t, string(want), r.stdout)

	out := filepath.Join(t.TempDir(), "net.json")
	r = execute(t, "", "sample", "network", "-o", out)
	require.NoError(t, r.err)
	assert.FileExists(t, out)

	r = execute(t, "", "sample", "unknown")
	assert.True(t, errors.Is(r.err, errors.ErrCodeSampleNotFound))
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			r := execute(t, "", "completion", shell)
			require.NoError(t, r.err)
			assert.Contains(t, r.stdout, "graphinsight")
		})
	}

	r := execute(t, "", "completion", "tcsh")
	assert.Error(t, r.err)
}
