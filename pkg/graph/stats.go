package graph

import (
	"strconv"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/matzehuels/graphinsight/pkg/schema"
)

// Stats summarizes the structure of a flat graph or a tree. Fields that do
// not apply to the shape stay zero.
type Stats struct {
	Shape schema.Shape
	Nodes int
	Edges int // edges for flat graphs, parent→child links for trees

	// Flat graphs
	DuplicateIDs     int
	SelfLoops        int
	ParallelEdges    int
	Isolated         int
	Components       int // weakly connected
	CyclicComponents int // strongly connected components containing a cycle
	MaxInDegree      int
	MaxOutDegree     int

	// Trees
	Leaves       int
	Depth        int // number of levels; 1 for a lone root
	MaxFanOut    int
	EmbeddingDim int // length of the first embedding found, 0 if none
}

// Stat is one labelled row of a statistics table.
type Stat struct {
	Label string
	Value string
}

// Rows returns the statistics that apply to the shape, in display order.
func (s Stats) Rows() []Stat {
	row := func(label string, v int) Stat { return Stat{label, strconv.Itoa(v)} }
	rows := []Stat{{"Shape", s.Shape.String()}, row("Nodes", s.Nodes)}
	switch s.Shape {
	case schema.ShapeFlat:
		rows = append(rows,
			row("Edges", s.Edges),
			row("Duplicate ids", s.DuplicateIDs),
			row("Self-loops", s.SelfLoops),
			row("Parallel edges", s.ParallelEdges),
			row("Isolated nodes", s.Isolated),
			row("Weak components", s.Components),
			row("Cyclic components", s.CyclicComponents),
			row("Max in-degree", s.MaxInDegree),
			row("Max out-degree", s.MaxOutDegree),
		)
	case schema.ShapeTree:
		rows = append(rows,
			row("Links", s.Edges),
			row("Leaves", s.Leaves),
			row("Depth", s.Depth),
			row("Max fan-out", s.MaxFanOut),
			row("Embedding dim", s.EmbeddingDim),
		)
	}
	return rows
}

// FlatStats computes structural statistics for a flat graph. Edges whose
// endpoints are missing from the node list are ignored.
func FlatStats(g *Graph) Stats {
	s := Stats{Shape: schema.ShapeFlat}
	if g == nil {
		return s
	}
	s.Nodes = len(g.Nodes)
	s.Edges = len(g.Edges)

	dg := simple.NewDirectedGraph()
	for _, n := range g.Nodes {
		if dg.Node(n.ID) != nil {
			s.DuplicateIDs++
			continue
		}
		dg.AddNode(simple.Node(n.ID))
	}

	in := make(map[int64]int)
	out := make(map[int64]int)
	looped := make(map[int64]bool)
	for _, e := range g.Edges {
		u, v := dg.Node(e.SourceID), dg.Node(e.TargetID)
		if u == nil || v == nil {
			continue
		}
		out[e.SourceID]++
		in[e.TargetID]++
		s.MaxOutDegree = max(s.MaxOutDegree, out[e.SourceID])
		s.MaxInDegree = max(s.MaxInDegree, in[e.TargetID])

		switch {
		case e.SourceID == e.TargetID:
			// simple graphs reject self edges
			s.SelfLoops++
			looped[e.SourceID] = true
		case dg.HasEdgeFromTo(e.SourceID, e.TargetID):
			s.ParallelEdges++
		default:
			dg.SetEdge(dg.NewEdge(u, v))
		}
	}

	nodes := dg.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		if in[id] == 0 && out[id] == 0 {
			s.Isolated++
		}
	}

	s.Components = len(topo.ConnectedComponents(gograph.Undirect{G: dg}))
	for _, scc := range topo.TarjanSCC(dg) {
		if len(scc) > 1 || looped[scc[0].ID()] {
			s.CyclicComponents++
		}
	}
	return s
}

// TreeStats computes structural statistics for a tree.
func TreeStats(root *TreeNode) Stats {
	s := Stats{Shape: schema.ShapeTree}
	root.Walk(func(n *TreeNode, depth int) bool {
		s.Nodes++
		s.Depth = max(s.Depth, depth+1)
		s.MaxFanOut = max(s.MaxFanOut, len(n.Children))
		if n.IsLeaf() {
			s.Leaves++
		}
		if s.EmbeddingDim == 0 && n.Embedding != nil {
			s.EmbeddingDim = len(n.Embedding)
		}
		return true
	})
	if s.Nodes > 0 {
		s.Edges = s.Nodes - 1
	}
	return s
}
