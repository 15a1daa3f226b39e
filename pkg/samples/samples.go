// Package samples provides built-in example documents.
//
// The documents are embedded directly into the binary using go:embed, so
// the CLI can demonstrate every command without any input file.
package samples

import (
	"embed"
	"path"
	"slices"
	"strings"

	"github.com/matzehuels/graphinsight/pkg/errors"
)

//go:embed data/*.json
var files embed.FS

// Sample describes one embedded document.
type Sample struct {
	Name        string
	Description string
}

// Descriptions of the embedded documents, keyed by name.
var descriptions = map[string]string{
	"minimal":  "tree: a root with one child",
	"network":  "flat: validation pipeline with a cycle and a self-loop",
	"taxonomy": "tree: animal taxonomy with 3-dimensional embeddings",
}

// Names returns the sample names in sorted order.
func Names() []string {
	entries, _ := files.ReadDir("data")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	slices.Sort(names)
	return names
}

// List returns every sample with its description, sorted by name.
func List() []Sample {
	names := Names()
	out := make([]Sample, len(names))
	for i, n := range names {
		out[i] = Sample{Name: n, Description: descriptions[n]}
	}
	return out
}

// Get returns the raw JSON of the named sample.
func Get(name string) ([]byte, error) {
	data, err := files.ReadFile(path.Join("data", name+".json"))
	if err != nil || strings.ContainsAny(name, "/\\") {
		return nil, errors.New(errors.ErrCodeSampleNotFound,
			"unknown sample %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return data, nil
}
