package graph

// ToNetwork projects a flat graph onto the network display form. Node and
// edge order are preserved.
func ToNetwork(g *Graph) *NetworkData {
	nd := &NetworkData{
		Nodes: make([]NetworkNode, 0, len(g.Nodes)),
		Edges: make([]NetworkEdge, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		nd.Nodes = append(nd.Nodes, NetworkNode{ID: n.ID, Label: n.SemanticSummary, Title: n.SemanticSummary})
	}
	for _, e := range g.Edges {
		nd.Edges = append(nd.Edges, NetworkEdge{From: e.SourceID, To: e.TargetID})
	}
	return nd
}
