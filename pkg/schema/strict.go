package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/graphinsight/pkg/errors"
)

var validate = newStructValidator()

// newStructValidator reports field errors by their JSON names so strict-mode
// paths line up with the paths produced by the shape checks.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// strictNode and strictGraph mirror the validated fields of a flat graph.
type strictNode struct {
	ID      int64  `json:"id"`
	Summary string `json:"semantic_summary" validate:"required"`
}

type strictGraph struct {
	Nodes []strictNode `json:"nodes" validate:"unique=ID,dive"`
}

// strictTree mirrors the validated fields of one tree node.
type strictTree struct {
	Name      string    `json:"name" validate:"required"`
	Embedding []float64 `json:"embedding"`
}

// embeddingDims remembers the first embedding length seen during a tree walk.
type embeddingDims struct {
	dim  int
	path string
}

// strictFlat enforces non-empty labels and unique ids on already shape-checked nodes.
func strictFlat(nodes []any) error {
	g := strictGraph{Nodes: make([]strictNode, len(nodes))}
	for i, raw := range nodes {
		node := raw.(map[string]any)
		id, _ := AsID(node["id"])
		g.Nodes[i] = strictNode{ID: id, Summary: node["semantic_summary"].(string)}
	}
	if err := validate.Struct(g); err != nil {
		return strictError("", err)
	}
	return nil
}

// strictTreeNode enforces a non-empty name and a consistent embedding length
// on an already shape-checked tree node.
func strictTreeNode(node map[string]any, pathOf func() string, dims *embeddingDims) error {
	t := strictTree{Name: node["name"].(string)}
	if raw, ok := node["embedding"].([]any); ok {
		if len(raw) == 0 {
			return errors.AtPath(errors.ErrCodeInvalidShape, joinPath(pathOf(), "embedding"), "must not be empty (use null)")
		}
		t.Embedding = make([]float64, len(raw))
		for i, x := range raw {
			t.Embedding[i], _ = AsNumber(x)
		}
	}
	if err := validate.Struct(t); err != nil {
		return strictError(pathOf(), err)
	}

	if n := len(t.Embedding); n > 0 {
		if dims.dim == 0 {
			dims.dim, dims.path = n, joinPath(pathOf(), "embedding")
		} else if n != dims.dim {
			return errors.AtPath(errors.ErrCodeInvalidShape, joinPath(pathOf(), "embedding"),
				"has %d dimensions, but %s has %d", n, pathOrRoot(dims.path), dims.dim)
		}
	}
	return nil
}

// strictError converts the first validator failure into a located *errors.Error.
func strictError(base string, err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInternal, err, "strict validation")
	}
	fe := verrs[0]

	// Namespace is "<struct>.<json path>"; drop the Go type name.
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return errors.AtPath(errors.ErrCodeInvalidShape, joinPath(base, ns), "%s", describeFieldError(fe))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "unique":
		return "node ids must be unique"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func pathOrRoot(p string) string {
	if p == "" {
		return "root"
	}
	return p
}
