package graph

import (
	"maps"
	"slices"
	"strconv"

	"github.com/matzehuels/graphinsight/pkg/errors"
)

// Flatten converts a tree into the render-ready { nodes, links } form.
//
// Nodes are emitted in pre-order (parent before children, children in input
// order). Each node gets the id "<name>_<n>" where n is its visit index, so
// ids are unique even when names repeat. Val is 1 plus the number of direct
// children. Every non-root node contributes one link from its parent.
//
// Flatten is deterministic and does not modify the tree. Embeddings and
// metadata are copied; a nil embedding is omitted from the JSON output
// while an empty one is kept.
//
// An error is returned for a nil root, or for a programmatically built tree
// in which a node is reachable twice (a cycle or shared subtree).
func Flatten(root *TreeNode) (*RenderGraph, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "tree root is nil")
	}

	type frame struct {
		node     *TreeNode
		parentID string
	}

	out := &RenderGraph{
		Nodes: []RenderNode{},
		Links: []RenderLink{},
	}
	seen := make(map[*TreeNode]struct{})
	stack := []frame{{node: root}}
	counter := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node == nil {
			return nil, errors.New(errors.ErrCodeInvalidShape, "child of %s is nil", f.parentID)
		}
		if _, dup := seen[f.node]; dup {
			return nil, errors.New(errors.ErrCodeInvalidShape, "node %q is reachable more than once; input is not a tree", f.node.Name)
		}
		seen[f.node] = struct{}{}

		id := f.node.Name + "_" + strconv.Itoa(counter)
		counter++

		meta := maps.Clone(f.node.Metadata)
		if meta == nil {
			meta = map[string]any{}
		}

		out.Nodes = append(out.Nodes, RenderNode{
			ID:        id,
			Name:      f.node.Name,
			Embedding: slices.Clone(f.node.Embedding),
			Metadata:  meta,
			Val:       len(f.node.Children) + 1,
		})
		if f.parentID != "" {
			out.Links = append(out.Links, RenderLink{Source: f.parentID, Target: id})
		}

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], parentID: id})
		}
	}
	return out, nil
}
