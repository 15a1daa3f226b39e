package schema

import (
	"reflect"

	"github.com/matzehuels/graphinsight/pkg/errors"
)

// DefaultMaxDepth bounds tree nesting when Validator.MaxDepth is zero.
const DefaultMaxDepth = 1000

// =============================================================================
// Validator
// =============================================================================

// Validator checks decoded JSON values against the flat and tree shapes.
// The zero value is ready to use and applies [DefaultMaxDepth].
// A Validator holds no mutable state and is safe for concurrent use.
type Validator struct {
	// MaxDepth is the deepest tree nesting accepted; the root is depth 1.
	// Zero selects DefaultMaxDepth, a negative value disables the limit.
	MaxDepth int

	// Strict additionally enforces unique node ids, non-empty labels and
	// names, and a single embedding length per tree.
	Strict bool
}

var defaultValidator Validator

// IsFlatGraph reports whether value is a valid flat graph: an object whose
// "nodes" and "edges" are arrays, whose nodes carry a numeric "id" and a string
// "semantic_summary", and whose edges carry numeric "source_id" and "target_id"
// values that each match some node id. Empty graphs are valid.
//
// Ids must be integral: 2 and 2.0 are accepted, 1.5 is rejected.
func IsFlatGraph(value any) bool {
	return defaultValidator.ValidateFlat(value) == nil
}

// IsTree reports whether value is a valid hierarchical graph: an object with
// a string "name", an "embedding" that is an array or absent/null, an object
// "metadata" and a "children" array whose elements are valid trees.
//
// Every embedding element must be a number.
func IsTree(value any) bool {
	return defaultValidator.ValidateTree(value) == nil
}

// Validate detects the shape of value and validates it against that shape.
// Values that look like neither shape fail with INVALID_SHAPE.
func (v *Validator) Validate(value any) (Shape, error) {
	return v.ValidateAs(value, ShapeUnknown)
}

// ValidateAs validates value against the given shape, or detects the shape
// first when shape is ShapeUnknown.
func (v *Validator) ValidateAs(value any, shape Shape) (Shape, error) {
	if shape == ShapeUnknown {
		shape = Detect(value)
	}
	switch shape {
	case ShapeFlat:
		return shape, v.ValidateFlat(value)
	case ShapeTree:
		return shape, v.ValidateTree(value)
	}
	if _, ok := value.(map[string]any); !ok {
		return ShapeUnknown, errors.New(errors.ErrCodeInvalidShape, "expected a JSON object, got %s", typeName(value))
	}
	return ShapeUnknown, errors.New(errors.ErrCodeInvalidShape,
		"unrecognized graph shape: expected \"nodes\" and \"edges\" arrays or a \"name\"/\"children\" tree")
}

func (v *Validator) maxDepth() int {
	switch {
	case v.MaxDepth == 0:
		return DefaultMaxDepth
	case v.MaxDepth < 0:
		return -1
	}
	return v.MaxDepth
}

// =============================================================================
// Flat Graph
// =============================================================================

// ValidateFlat checks value against the flat graph shape and returns the
// first defect found, or nil. Referential failures use INVALID_REFERENCE;
// every other failure uses INVALID_SHAPE.
func (v *Validator) ValidateFlat(value any) error {
	obj, ok := value.(map[string]any)
	if !ok || obj == nil {
		return errors.New(errors.ErrCodeInvalidShape, "graph must be a JSON object, got %s", typeName(value))
	}

	nodes, err := requireArray(obj, rootPath, "nodes")
	if err != nil {
		return err
	}
	edges, err := requireArray(obj, rootPath, "edges")
	if err != nil {
		return err
	}

	ids := make(map[int64]struct{}, len(nodes))
	for i, raw := range nodes {
		path := indexPath("", "nodes", i)
		node, ok := raw.(map[string]any)
		if !ok || node == nil {
			return errors.AtPath(errors.ErrCodeInvalidShape, path, "node must be an object, got %s", typeName(raw))
		}
		id, ok := AsID(node["id"])
		if !ok {
			return errors.AtPath(errors.ErrCodeInvalidShape, joinPath(path, "id"),
				"must be an integer, got %s", typeName(node["id"]))
		}
		if _, ok := node["semantic_summary"].(string); !ok {
			return errors.AtPath(errors.ErrCodeInvalidShape, joinPath(path, "semantic_summary"),
				"must be a string, got %s", typeName(node["semantic_summary"]))
		}
		ids[id] = struct{}{}
	}

	for i, raw := range edges {
		path := indexPath("", "edges", i)
		edge, ok := raw.(map[string]any)
		if !ok || edge == nil {
			return errors.AtPath(errors.ErrCodeInvalidShape, path, "edge must be an object, got %s", typeName(raw))
		}
		for _, field := range []string{"source_id", "target_id"} {
			ref, ok := AsID(edge[field])
			if !ok {
				return errors.AtPath(errors.ErrCodeInvalidShape, joinPath(path, field),
					"must be an integer, got %s", typeName(edge[field]))
			}
			if _, ok := ids[ref]; !ok {
				return errors.AtPath(errors.ErrCodeInvalidReference, joinPath(path, field),
					"references unknown node id %d", ref)
			}
		}
	}

	if v.Strict {
		return strictFlat(nodes)
	}
	return nil
}

// =============================================================================
// Hierarchical Graph
// =============================================================================

// treeFrame is one pending node of the iterative tree walk. Paths are kept
// as parent links into the walk's trail and only rendered on failure.
type treeFrame struct {
	value any
	trail int
	depth int
}

// trailStep records that a node is child number index of the node at parent.
type trailStep struct {
	parent int
	index  int
}

// ValidateTree checks value against the tree shape and returns the first
// defect found in document order, or nil. Nodes are visited pre-order with an
// explicit stack; the walk stops at the first failing node. A node object
// reachable more than once (only possible for values built in Go) is an
// INVALID_SHAPE failure, so cyclic input terminates even without a depth limit.
func (v *Validator) ValidateTree(value any) error {
	limit := v.maxDepth()
	var dims embeddingDims
	seen := make(map[uintptr]struct{})

	trail := []trailStep{{parent: -1}}
	stack := []treeFrame{{value: value, trail: 0, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		path := func() string { return renderTrail(trail, f.trail) }

		if limit > 0 && f.depth > limit {
			return errors.AtPath(errors.ErrCodeDepthExceeded, path(), "tree nesting exceeds maximum depth %d", limit)
		}

		children, err := checkTreeNode(f.value, path)
		if err != nil {
			return err
		}
		id := reflect.ValueOf(f.value).Pointer()
		if _, dup := seen[id]; dup {
			return errors.AtPath(errors.ErrCodeInvalidShape, path(), "tree node appears more than once")
		}
		seen[id] = struct{}{}
		if v.Strict {
			if err := strictTreeNode(f.value.(map[string]any), path, &dims); err != nil {
				return err
			}
		}

		// Push in reverse so the first child is validated next.
		for i := len(children) - 1; i >= 0; i-- {
			trail = append(trail, trailStep{parent: f.trail, index: i})
			stack = append(stack, treeFrame{
				value: children[i],
				trail: len(trail) - 1,
				depth: f.depth + 1,
			})
		}
	}
	return nil
}

// renderTrail builds the JSON path ("children[0].children[2]") of a trail entry.
func renderTrail(trail []trailStep, at int) string {
	var idx []int
	for ; trail[at].parent >= 0; at = trail[at].parent {
		idx = append(idx, trail[at].index)
	}
	path := ""
	for i := len(idx) - 1; i >= 0; i-- {
		path = indexPath(path, "children", idx[i])
	}
	return path
}

// checkTreeNode validates the fields of a single tree node and returns its
// children for the caller to visit.
func checkTreeNode(value any, pathOf func() string) ([]any, error) {
	obj, ok := value.(map[string]any)
	if !ok || obj == nil {
		return nil, errors.AtPath(errors.ErrCodeInvalidShape, pathOf(), "tree node must be an object, got %s", typeName(value))
	}
	if _, ok := obj["name"].(string); !ok {
		return nil, errors.AtPath(errors.ErrCodeInvalidShape, joinPath(pathOf(), "name"),
			"must be a string, got %s", typeName(obj["name"]))
	}
	if emb, present := obj["embedding"]; present && emb != nil {
		vec, ok := emb.([]any)
		if !ok {
			return nil, errors.AtPath(errors.ErrCodeInvalidShape, joinPath(pathOf(), "embedding"),
				"must be an array or null, got %s", typeName(emb))
		}
		for i, x := range vec {
			if _, ok := AsNumber(x); !ok {
				return nil, errors.AtPath(errors.ErrCodeInvalidShape, indexPath(pathOf(), "embedding", i),
					"must be a number, got %s", typeName(x))
			}
		}
	}
	meta, present := obj["metadata"]
	if !present {
		return nil, errors.AtPath(errors.ErrCodeInvalidShape, joinPath(pathOf(), "metadata"), "is required (use {} when empty)")
	}
	if m, ok := meta.(map[string]any); !ok || m == nil {
		return nil, errors.AtPath(errors.ErrCodeInvalidShape, joinPath(pathOf(), "metadata"),
			"must be an object, got %s", typeName(meta))
	}
	return requireArray(obj, pathOf, "children")
}

// =============================================================================
// Helpers
// =============================================================================

func rootPath() string { return "" }

func requireArray(obj map[string]any, pathOf func() string, field string) ([]any, error) {
	raw, present := obj[field]
	if !present {
		return nil, errors.AtPath(errors.ErrCodeInvalidShape, joinPath(pathOf(), field), "is required")
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, errors.AtPath(errors.ErrCodeInvalidShape, joinPath(pathOf(), field),
			"must be an array, got %s", typeName(raw))
	}
	return arr, nil
}
