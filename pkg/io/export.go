package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphinsight/pkg/errors"
	"github.com/matzehuels/graphinsight/pkg/graph"
)

// Prepare returns the render-ready form of doc: a *graph.RenderGraph for
// trees and a *graph.NetworkData for flat graphs.
func Prepare(doc *graph.Document) (any, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no document")
	}
	out, err := doc.Render()
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "prepare %s document", doc.Shape)
	}
	return out, nil
}

// WriteJSON encodes v as JSON and writes it to w, indented when pretty is set.
// Documents, graphs and render forms all encode in their documented formats.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes v to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(path string, v any, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, v, pretty); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
