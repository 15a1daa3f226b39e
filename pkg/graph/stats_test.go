package graph

import (
	"testing"

	"github.com/matzehuels/graphinsight/pkg/schema"
)

func TestFlatStats(t *testing.T) {
	tests := []struct {
		name  string
		graph *Graph
		want  Stats
	}{
		{
			name:  "Empty",
			graph: &Graph{},
			want:  Stats{Shape: schema.ShapeFlat},
		},
		{
			name: "Chain",
			graph: &Graph{
				Nodes: []Node{{ID: 1}, {ID: 2}, {ID: 3}},
				Edges: []Edge{{SourceID: 1, TargetID: 2}, {SourceID: 2, TargetID: 3}},
			},
			want: Stats{Shape: schema.ShapeFlat, Nodes: 3, Edges: 2, Components: 1, MaxInDegree: 1, MaxOutDegree: 1},
		},
		{
			name: "CycleSelfLoopParallel",
			graph: &Graph{
				Nodes: []Node{{ID: 0}, {ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
				Edges: []Edge{
					{SourceID: 0, TargetID: 1},
					{SourceID: 1, TargetID: 0},
					{SourceID: 0, TargetID: 1},
					{SourceID: 2, TargetID: 2},
				},
			},
			want: Stats{
				Shape: schema.ShapeFlat, Nodes: 5, Edges: 4,
				SelfLoops: 1, ParallelEdges: 1, Isolated: 2,
				Components: 4, CyclicComponents: 2,
				MaxInDegree: 2, MaxOutDegree: 2,
			},
		},
		{
			name: "DuplicateIDs",
			graph: &Graph{
				Nodes: []Node{{ID: 5}, {ID: 5}, {ID: -1}},
				Edges: []Edge{{SourceID: 5, TargetID: -1}},
			},
			want: Stats{Shape: schema.ShapeFlat, Nodes: 3, Edges: 1, DuplicateIDs: 1, Components: 1, MaxInDegree: 1, MaxOutDegree: 1},
		},
		{
			name: "DanglingIgnored",
			graph: &Graph{
				Nodes: []Node{{ID: 1}},
				Edges: []Edge{{SourceID: 1, TargetID: 9}},
			},
			want: Stats{Shape: schema.ShapeFlat, Nodes: 1, Edges: 1, Isolated: 1, Components: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlatStats(tt.graph); got != tt.want {
				t.Errorf("FlatStats =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestTreeStats(t *testing.T) {
	root := node("r", node("a", leaf("a1"), leaf("a2"), leaf("a3")), leaf("b"))
	root.Children[1].Embedding = []float64{1, 2, 3, 4}

	got := TreeStats(root)
	want := Stats{Shape: schema.ShapeTree, Nodes: 6, Edges: 5, Leaves: 4, Depth: 3, MaxFanOut: 3, EmbeddingDim: 4}
	if got != want {
		t.Errorf("TreeStats =\n%+v\nwant\n%+v", got, want)
	}
}

func TestTreeStatsNil(t *testing.T) {
	if got := TreeStats(nil); got.Nodes != 0 || got.Edges != 0 {
		t.Errorf("TreeStats(nil) = %+v, want zero counts", got)
	}
}

func TestStatsRows(t *testing.T) {
	flat := FlatStats(&Graph{Nodes: []Node{{ID: 1}}})
	if rows := flat.Rows(); len(rows) != 11 || rows[0].Value != "flat" {
		t.Errorf("flat rows = %+v", rows)
	}
	tree := TreeStats(leaf("r"))
	rows := tree.Rows()
	if len(rows) != 7 || rows[0].Value != "tree" || rows[3].Label != "Leaves" || rows[3].Value != "1" {
		t.Errorf("tree rows = %+v", rows)
	}
}

func TestDocument(t *testing.T) {
	doc := &Document{Shape: schema.ShapeTree, Tree: node("r", leaf("c"))}
	out, err := doc.Render()
	if err != nil {
		t.Fatal(err)
	}
	if rg, ok := out.(*RenderGraph); !ok || len(rg.Links) != 1 {
		t.Errorf("Render() = %T, want *RenderGraph with one link", out)
	}
	if doc.Stats().Leaves != 1 {
		t.Errorf("Stats().Leaves = %d, want 1", doc.Stats().Leaves)
	}

	flat := &Document{Shape: schema.ShapeFlat, Flat: &Graph{Nodes: []Node{{ID: 1, SemanticSummary: "A"}}}}
	out, err = flat.Render()
	if err != nil {
		t.Fatal(err)
	}
	if nd, ok := out.(*NetworkData); !ok || nd.Nodes[0].Label != "A" {
		t.Errorf("Render() = %#v, want *NetworkData", out)
	}

	if _, err := (&Document{}).Render(); err == nil {
		t.Error("empty document should not render")
	}
}
