package schema

import (
	"strings"

	"github.com/matzehuels/graphinsight/pkg/errors"
)

// Shape identifies which graph representation a JSON value carries.
type Shape int

const (
	// ShapeUnknown is neither shape. As an option it means "detect".
	ShapeUnknown Shape = iota
	// ShapeFlat is a node list plus an edge list referencing node ids.
	ShapeFlat
	// ShapeTree is a nested parent-owns-children structure.
	ShapeTree
)

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeTree:
		return "tree"
	default:
		return "unknown"
	}
}

// ParseShape parses a user-supplied shape name. "auto" and the empty string
// map to ShapeUnknown, which callers treat as a request to [Detect].
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ShapeUnknown, nil
	case "flat", "graph":
		return ShapeFlat, nil
	case "tree", "hierarchy":
		return ShapeTree, nil
	}
	return ShapeUnknown, errors.New(errors.ErrCodeInvalidInput, "unknown shape %q (want auto, flat or tree)", s)
}

// Detect guesses the shape of a decoded JSON value from its top-level keys.
// Objects with "nodes" or "edges" are flat; objects with "name" or "children"
// are trees. Flat wins when both are present. Detect does not validate.
func Detect(value any) Shape {
	obj, ok := value.(map[string]any)
	if !ok || obj == nil {
		return ShapeUnknown
	}
	if _, ok := obj["nodes"]; ok {
		return ShapeFlat
	}
	if _, ok := obj["edges"]; ok {
		return ShapeFlat
	}
	if _, ok := obj["name"]; ok {
		return ShapeTree
	}
	if _, ok := obj["children"]; ok {
		return ShapeTree
	}
	return ShapeUnknown
}
