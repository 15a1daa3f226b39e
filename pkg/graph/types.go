package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/matzehuels/graphinsight/pkg/schema"
)

// =============================================================================
// Constants
// =============================================================================

// JSON keys of the flat graph format.
const (
	keyNodes           = "nodes"
	keyEdges           = "edges"
	keyID              = "id"
	keySemanticSummary = "semantic_summary"
	keySourceID        = "source_id"
	keyTargetID        = "target_id"
)

// =============================================================================
// Graph - Flat Node/Edge Form
// =============================================================================

// Graph is a flat graph: ordered nodes, ordered edges referencing node ids,
// and any additional top-level keys in Extra.
//
// Cycles, self-loops and parallel edges are all permitted.
type Graph struct {
	Nodes []Node         `json:"nodes"`
	Edges []Edge         `json:"edges"`
	Extra map[string]any `json:"-"`
}

// Node is a vertex of a flat graph.
type Node struct {
	ID              int64          `json:"id"`
	SemanticSummary string         `json:"semantic_summary"`
	Extra           map[string]any `json:"-"` // Unrecognized keys, preserved on export
}

// Edge is a directed connection between two node ids.
type Edge struct {
	SourceID int64          `json:"source_id"`
	TargetID int64          `json:"target_id"`
	Extra    map[string]any `json:"-"` // Unrecognized keys, preserved on export
}

// NodeByID returns the first node with the given id.
func (g *Graph) NodeByID(id int64) (*Node, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// =============================================================================
// JSON - Known Fields + Residual Map
// =============================================================================

// MarshalJSON writes the known fields merged with Extra. Known fields win
// when Extra carries the same key.
func (g Graph) MarshalJSON() ([]byte, error) {
	nodes, edges := g.Nodes, g.Edges
	if nodes == nil {
		nodes = []Node{}
	}
	if edges == nil {
		edges = []Edge{}
	}
	return marshalWithExtra(g.Extra, map[string]any{keyNodes: nodes, keyEdges: edges})
}

// UnmarshalJSON decodes a flat graph, keeping unknown keys in Extra.
// It checks types only; referential integrity is the validator's concern.
func (g *Graph) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	var out Graph
	if raw, ok := obj[keyNodes]; ok {
		if err := json.Unmarshal(raw, &out.Nodes); err != nil {
			return fmt.Errorf("nodes: %w", err)
		}
		delete(obj, keyNodes)
	}
	if raw, ok := obj[keyEdges]; ok {
		if err := json.Unmarshal(raw, &out.Edges); err != nil {
			return fmt.Errorf("edges: %w", err)
		}
		delete(obj, keyEdges)
	}
	if out.Extra, err = decodeExtra(obj); err != nil {
		return err
	}
	*g = out
	return nil
}

// MarshalJSON writes the node's id and summary merged with Extra.
func (n Node) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(n.Extra, map[string]any{keyID: n.ID, keySemanticSummary: n.SemanticSummary})
}

// UnmarshalJSON decodes a node, keeping unknown keys in Extra.
func (n *Node) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	var out Node
	if out.ID, err = takeID(obj, keyID); err != nil {
		return err
	}
	if raw, ok := obj[keySemanticSummary]; ok {
		if err := json.Unmarshal(raw, &out.SemanticSummary); err != nil {
			return fmt.Errorf("%s: %w", keySemanticSummary, err)
		}
		delete(obj, keySemanticSummary)
	}
	if out.Extra, err = decodeExtra(obj); err != nil {
		return err
	}
	*n = out
	return nil
}

// MarshalJSON writes the edge's endpoints merged with Extra.
func (e Edge) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(e.Extra, map[string]any{keySourceID: e.SourceID, keyTargetID: e.TargetID})
}

// UnmarshalJSON decodes an edge, keeping unknown keys in Extra.
func (e *Edge) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	var out Edge
	if out.SourceID, err = takeID(obj, keySourceID); err != nil {
		return err
	}
	if out.TargetID, err = takeID(obj, keyTargetID); err != nil {
		return err
	}
	if out.Extra, err = decodeExtra(obj); err != nil {
		return err
	}
	*e = out
	return nil
}

func marshalWithExtra(extra map[string]any, known map[string]any) ([]byte, error) {
	merged := make(map[string]any, len(extra)+len(known))
	maps.Copy(merged, extra)
	maps.Copy(merged, known)
	return json.Marshal(merged)
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}
	return obj, nil
}

// decodeExtra decodes the remaining raw fields with UseNumber so numeric
// metadata keeps its exact textual form.
func decodeExtra(obj map[string]json.RawMessage) (map[string]any, error) {
	if len(obj) == 0 {
		return nil, nil
	}
	extra := make(map[string]any, len(obj))
	for k, raw := range obj {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		extra[k] = v
	}
	return extra, nil
}

func takeID(obj map[string]json.RawMessage, key string) (int64, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("%s: missing", key)
	}
	delete(obj, key)
	id, ok := schema.AsID(json.Number(bytes.TrimSpace(raw)))
	if !ok {
		return 0, fmt.Errorf("%s: must be an integer, got %s", key, raw)
	}
	return id, nil
}
