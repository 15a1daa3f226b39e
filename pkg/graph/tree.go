package graph

import "encoding/json"

// TreeNode is one node of a hierarchical tree. A nil Embedding means the
// node has none; metadata is an opaque mapping carried through unchanged.
type TreeNode struct {
	Name      string         `json:"name"`
	Embedding []float64      `json:"embedding"`
	Metadata  map[string]any `json:"metadata"`
	Children  []*TreeNode    `json:"children"`
}

// MarshalJSON writes nil Metadata as {} and nil Children as [] so the output
// always satisfies the tree shape.
func (n TreeNode) MarshalJSON() ([]byte, error) {
	type plain TreeNode
	out := plain(n)
	if out.Metadata == nil {
		out.Metadata = map[string]any{}
	}
	if out.Children == nil {
		out.Children = []*TreeNode{}
	}
	return json.Marshal(out)
}

// IsLeaf reports whether the node has no children.
func (n *TreeNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits the subtree rooted at n in pre-order without recursion.
// Returning false from fn skips the node's children. Depth is 0 at n.
// A node reachable more than once is visited only the first time.
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int) bool) {
	if n == nil {
		return
	}
	type frame struct {
		node  *TreeNode
		depth int
	}
	seen := make(map[*TreeNode]struct{})
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			continue
		}
		if _, ok := seen[f.node]; ok {
			continue
		}
		seen[f.node] = struct{}{}
		if !fn(f.node, f.depth) {
			continue
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}
