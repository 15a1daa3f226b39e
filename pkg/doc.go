// Package pkg provides the core libraries for GraphInsight.
//
// # Overview
//
// GraphInsight validates JSON graph documents and prepares them for
// force-directed or network visualization. The pkg directory is organized
// around the import pipeline:
//
//  1. [schema] - Shape checks on untrusted decoded JSON (flat graph, tree)
//  2. [graph] - Typed model, tree flattening, network projection, statistics
//  3. [io] - Decode, validate and narrow documents; write JSON output
//  4. [errors] - Error codes separating malformed JSON from malformed graphs
//  5. [samples] - Embedded example documents
//
// # Architecture
//
// The typical data flow:
//
//	JSON text
//	    ↓
//	[io] decode (INVALID_JSON on failure)
//	    ↓
//	[schema] detect shape and validate (INVALID_SHAPE, INVALID_REFERENCE)
//	    ↓
//	[graph] typed Graph or TreeNode
//	    ↓
//	[graph] Flatten / ToNetwork
//	    ↓
//	render-ready JSON for the visualization library
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/graphinsight/pkg/io"
//	)
//
//	doc, err := io.ReadFile("tree.json", io.Options{})
//	if err != nil {
//	    return err
//	}
//	out, err := io.Prepare(doc)
//	if err != nil {
//	    return err
//	}
//	return io.WriteJSON(os.Stdout, out, true)
//
// [schema]: https://pkg.go.dev/github.com/matzehuels/graphinsight/pkg/schema
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphinsight/pkg/graph
// [io]: https://pkg.go.dev/github.com/matzehuels/graphinsight/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphinsight/pkg/errors
// [samples]: https://pkg.go.dev/github.com/matzehuels/graphinsight/pkg/samples
package pkg
