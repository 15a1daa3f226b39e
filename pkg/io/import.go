package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphinsight/pkg/errors"
	"github.com/matzehuels/graphinsight/pkg/graph"
	"github.com/matzehuels/graphinsight/pkg/schema"
)

// Options controls how a document is imported.
type Options struct {
	// Shape forces the expected shape. ShapeUnknown detects it from the keys.
	Shape schema.Shape

	// MaxDepth and Strict configure the validator; see [schema.Validator].
	MaxDepth int
	Strict   bool

	// Logger receives debug traces of each pipeline step. Nil disables them.
	Logger *log.Logger
}

var discard = log.New(io.Discard)

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return discard
}

func (o Options) validator() schema.Validator {
	return schema.Validator{MaxDepth: o.MaxDepth, Strict: o.Strict}
}

// Parse decodes, validates and narrows a JSON document.
//
// Parse returns an INVALID_JSON error for empty input, malformed JSON or
// trailing data after the document, and a shape error (see
// errors.IsShapeError) when the JSON is well formed but is not a valid flat
// graph or tree. Parse never modifies data.
func Parse(data []byte, opts Options) (*graph.Document, error) {
	logger := opts.logger()

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidJSON, "empty input")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "decode")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidJSON, "unexpected data after JSON document")
	}
	logger.Debug("decoded document", "bytes", len(data))

	v := opts.validator()
	shape, err := v.ValidateAs(value, opts.Shape)
	if err != nil {
		logger.Debug("validation failed", "shape", shape, "code", errors.GetCode(err), "path", errors.GetPath(err))
		return nil, err
	}
	logger.Debug("validated document", "shape", shape, "strict", opts.Strict)

	doc := &graph.Document{Shape: shape}
	switch shape {
	case schema.ShapeFlat:
		doc.Flat, err = graph.FlatFromValue(value)
	case schema.ShapeTree:
		doc.Tree, err = graph.TreeFromValue(value)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Read reads all of r and imports it with [Parse]. Read does not close r.
func Read(r io.Reader, opts Options) (*graph.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return Parse(data, opts)
}

// ReadFile reads the file at path and imports it with [Parse].
// A missing file yields a FILE_NOT_FOUND error.
func ReadFile(path string, opts Options) (*graph.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	opts.logger().Debug("read file", "path", path)
	return Parse(data, opts)
}
