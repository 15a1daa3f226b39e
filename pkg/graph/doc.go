// Package graph provides the typed data model and structural transforms for
// GraphInsight.
//
// # Architecture
//
// The package sits between the schema checks and the rendering collaborator:
//
//   - pkg/schema: classifies untrusted decoded JSON (no types, verdicts only)
//   - [Graph], [TreeNode]: trusted typed model narrowed from validated values
//   - [RenderGraph], [NetworkData]: render-ready forms handed to a force-graph
//     or network library, which owns layout, physics and hit-testing
//
// # Flat Graphs
//
// A [Graph] is a node list and an edge list referencing node ids:
//
//	{
//	  "nodes": [{"id": 0, "semantic_summary": "A", "weight": 3}],
//	  "edges": [{"source_id": 0, "target_id": 0}]
//	}
//
// Required fields are struct fields; any other key on a node, edge or the
// graph itself is kept in the Extra map and written back on export, so an
// import/export round trip preserves unknown metadata.
//
// # Trees
//
// A [TreeNode] is a nested structure with name, optional embedding, metadata
// and ordered children. [Flatten] turns a tree into a [RenderGraph]:
//
//	rg, err := graph.Flatten(root)
//	// rg.Nodes in pre-order, rg.Links parent → child
//
// Derived ids have the form "<name>_<n>" where n counts visits from 0 at the
// root. They are unique within one result and stable for identical input,
// but the numbering is not meant to be relied upon outside that result.
//
// # Conversions
//
//	g, _ := graph.FlatFromValue(decoded)     // validated any → *Graph
//	t, _ := graph.TreeFromValue(decoded)     // validated any → *TreeNode
//	rg, _ := graph.Flatten(t)                // *TreeNode → *RenderGraph
//	nd := graph.ToNetwork(g)                 // *Graph → *NetworkData
//
// # Statistics
//
// [FlatStats] and [TreeStats] summarize structure (components, cycles,
// depth, fan-out). Flat graph statistics are computed on a gonum graph.
package graph
