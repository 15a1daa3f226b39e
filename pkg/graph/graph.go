package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphinsight/pkg/errors"
	"github.com/matzehuels/graphinsight/pkg/schema"
)

// =============================================================================
// Narrowing - Validated Values to Typed Model
// =============================================================================

// FlatFromValue converts a decoded JSON value that passed flat graph
// validation into a [Graph]. Unknown keys land in the Extra maps, deep-copied
// so the result shares no containers with the input.
//
// Type mismatches are reported as INVALID_SHAPE errors rather than panics,
// but referential integrity is not re-checked.
func FlatFromValue(v any) (*Graph, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidShape, "flat graph must be an object")
	}
	rawNodes, _ := obj[keyNodes].([]any)
	rawEdges, _ := obj[keyEdges].([]any)

	g := &Graph{
		Nodes: make([]Node, 0, len(rawNodes)),
		Edges: make([]Edge, 0, len(rawEdges)),
		Extra: extraOf(obj, keyNodes, keyEdges),
	}

	for i, raw := range rawNodes {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, errors.AtPath(errors.ErrCodeInvalidShape, fmt.Sprintf("nodes[%d]", i), "must be an object")
		}
		id, ok := schema.AsID(m[keyID])
		if !ok {
			return nil, errors.AtPath(errors.ErrCodeInvalidShape, fmt.Sprintf("nodes[%d].id", i), "must be an integer")
		}
		summary, _ := m[keySemanticSummary].(string)
		g.Nodes = append(g.Nodes, Node{
			ID:              id,
			SemanticSummary: summary,
			Extra:           extraOf(m, keyID, keySemanticSummary),
		})
	}

	for i, raw := range rawEdges {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, errors.AtPath(errors.ErrCodeInvalidShape, fmt.Sprintf("edges[%d]", i), "must be an object")
		}
		src, ok := schema.AsID(m[keySourceID])
		if !ok {
			return nil, errors.AtPath(errors.ErrCodeInvalidShape, fmt.Sprintf("edges[%d].source_id", i), "must be an integer")
		}
		dst, ok := schema.AsID(m[keyTargetID])
		if !ok {
			return nil, errors.AtPath(errors.ErrCodeInvalidShape, fmt.Sprintf("edges[%d].target_id", i), "must be an integer")
		}
		g.Edges = append(g.Edges, Edge{
			SourceID: src,
			TargetID: dst,
			Extra:    extraOf(m, keySourceID, keyTargetID),
		})
	}
	return g, nil
}

// TreeFromValue converts a decoded JSON value that passed tree validation
// into a [TreeNode]. The walk is iterative, so depth is limited only by the
// validator's MaxDepth.
func TreeFromValue(v any) (*TreeNode, error) {
	type frame struct {
		src  any
		dst  *TreeNode
		path string
	}

	root := &TreeNode{}
	stack := []frame{{src: v, dst: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m, ok := f.src.(map[string]any)
		if !ok {
			return nil, errors.AtPath(errors.ErrCodeInvalidShape, f.path, "tree node must be an object")
		}
		f.dst.Name, _ = m["name"].(string)

		emb, err := embeddingOf(m["embedding"])
		if err != nil {
			return nil, errors.AtPath(errors.ErrCodeInvalidShape, childPath(f.path, "embedding"), "%s", err.Error())
		}
		f.dst.Embedding = emb

		meta, _ := m["metadata"].(map[string]any)
		f.dst.Metadata = cloneObject(meta)

		kids, _ := m["children"].([]any)
		f.dst.Children = make([]*TreeNode, len(kids))
		for i := len(kids) - 1; i >= 0; i-- {
			f.dst.Children[i] = &TreeNode{}
			stack = append(stack, frame{
				src:  kids[i],
				dst:  f.dst.Children[i],
				path: fmt.Sprintf("%s[%d]", childPath(f.path, "children"), i),
			})
		}
	}
	return root, nil
}

func childPath(parent, field string) string {
	if parent == "" {
		return field
	}
	return parent + "." + field
}

func embeddingOf(v any) ([]float64, error) {
	if v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("must be an array or null")
	}
	out := make([]float64, len(arr))
	for i, e := range arr {
		f, ok := schema.AsNumber(e)
		if !ok {
			return nil, fmt.Errorf("element %d must be a number", i)
		}
		out[i] = f
	}
	return out, nil
}

// extraOf returns a deep copy of obj without the known keys, or nil when
// nothing remains.
func extraOf(obj map[string]any, known ...string) map[string]any {
	var extra map[string]any
	for k, v := range obj {
		if isKnown(k, known) {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = cloneValue(v)
	}
	return extra
}

func isKnown(k string, known []string) bool {
	for _, kk := range known {
		if k == kk {
			return true
		}
	}
	return false
}

func cloneObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneObject(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalGraph converts a flat graph to indented JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a flat graph as indented JSON to w.
func WriteGraph(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a flat graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteGraph(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadGraph decodes a flat graph from r after validating it. Use pkg/io
// when the shape of the input is not known in advance.
func ReadGraph(r io.Reader) (*Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "decode")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidJSON, "unexpected data after graph document")
	}
	var val schema.Validator
	if err := val.ValidateFlat(v); err != nil {
		return nil, err
	}
	return FlatFromValue(v)
}

// ReadGraphFile reads and validates a flat graph from a JSON file.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}
