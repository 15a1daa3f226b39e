package graph

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/graphinsight/pkg/schema"
)

// =============================================================================
// Document - Imported Graph of Either Shape
// =============================================================================

// Document is the result of importing a JSON document.
//
// This is a discriminated union - check Shape to determine which field is
// populated:
//
//	Flat ("flat"): Flat holds the node/edge graph
//	Tree ("tree"): Tree holds the root node
type Document struct {
	Shape schema.Shape
	Flat  *Graph
	Tree  *TreeNode
}

// IsFlat returns true if the document holds a flat graph.
func (d *Document) IsFlat() bool { return d.Shape == schema.ShapeFlat && d.Flat != nil }

// IsTree returns true if the document holds a tree.
func (d *Document) IsTree() bool { return d.Shape == schema.ShapeTree && d.Tree != nil }

// Stats computes structural statistics for whichever form the document holds.
func (d *Document) Stats() Stats {
	switch {
	case d.IsFlat():
		return FlatStats(d.Flat)
	case d.IsTree():
		return TreeStats(d.Tree)
	}
	return Stats{}
}

// Render returns the render-ready form: a [RenderGraph] for trees and
// [NetworkData] for flat graphs.
func (d *Document) Render() (any, error) {
	switch {
	case d.IsTree():
		return Flatten(d.Tree)
	case d.IsFlat():
		return ToNetwork(d.Flat), nil
	}
	return nil, fmt.Errorf("document holds no graph")
}

// MarshalJSON writes the held graph in its input format.
func (d Document) MarshalJSON() ([]byte, error) {
	switch {
	case d.IsFlat():
		return json.Marshal(d.Flat)
	case d.IsTree():
		return json.Marshal(d.Tree)
	}
	return []byte("null"), nil
}
