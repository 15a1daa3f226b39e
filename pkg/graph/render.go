package graph

// RenderGraph is the flattened, render-ready form of a tree: the
// { nodes, links } document a force-directed graph library consumes.
type RenderGraph struct {
	Nodes []RenderNode `json:"nodes"`
	Links []RenderLink `json:"links"`
}

// RenderNode is a tree node with a derived unique id and a size hint.
type RenderNode struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Embedding []float64      `json:"embedding,omitzero"`
	Metadata  map[string]any `json:"metadata"`
	Val       int            `json:"val"` // 1 + number of direct children
}

// RenderLink connects a parent's derived id to a child's derived id.
type RenderLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NodeByID returns the render node with the given derived id.
func (g *RenderGraph) NodeByID(id string) (*RenderNode, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// =============================================================================
// Network Form
// =============================================================================

// NetworkData is the { nodes, edges } document a network visualization
// library consumes for flat graphs.
type NetworkData struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// NetworkNode is a display node. Label and Title (hover text) both carry the
// semantic summary.
type NetworkNode struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
}

// NetworkEdge is a directed display edge.
type NetworkEdge struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}
