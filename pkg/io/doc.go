// Package io provides JSON import and export for GraphInsight documents.
//
// # Overview
//
// Import is a four step pipeline that keeps malformed JSON and malformed
// graphs apart:
//
//  1. Decode the bytes (numbers kept exact via json.Number)
//  2. Pick the shape: forced by [Options].Shape or detected from the keys
//  3. Validate against that shape with [schema.Validator]
//  4. Narrow the decoded value into the typed model of pkg/graph
//
// Failures in step 1 carry the INVALID_JSON code. Failures in step 3 carry
// INVALID_SHAPE, INVALID_REFERENCE or DEPTH_EXCEEDED; all three satisfy
// errors.IsShapeError. Callers can therefore tell "Invalid JSON format" from
// "Invalid graph data structure" without inspecting messages.
//
// # JSON Formats
//
// Flat graphs:
//
//	{
//	  "nodes": [{"id": 0, "semantic_summary": "A"}],
//	  "edges": [{"source_id": 0, "target_id": 0}]
//	}
//
// Trees:
//
//	{
//	  "name": "Root", "embedding": null, "metadata": {},
//	  "children": [{"name": "Child", "metadata": {}, "children": []}]
//	}
//
// Unknown keys on flat graphs, nodes and edges are preserved, so
// import → export → import yields the same document.
//
// # Import
//
// Use [ReadFile] for a path, [Read] for any io.Reader or [Parse] for bytes:
//
//	doc, err := io.ReadFile("graph.json", io.Options{})
//	if errors.IsParseError(err) {
//	    // not JSON at all
//	}
//
// # Export
//
// [Prepare] turns a document into its render-ready form (force-graph data
// for trees, network data for flat graphs). [WriteJSON] and [ExportJSON]
// write any value, compact or indented.
//
//	out, _ := io.Prepare(doc)
//	err := io.ExportJSON("render.json", out, true)
//
// # Concurrency
//
// All functions are safe for concurrent use. Every import returns a fresh
// document that shares nothing with the input bytes or other documents.
//
// [schema.Validator]: github.com/matzehuels/graphinsight/pkg/schema.Validator
package io
