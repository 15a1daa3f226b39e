// Package schema classifies decoded JSON values against the two graph shapes
// GraphInsight understands.
//
// # Shapes
//
// A flat graph is an object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": 0, "semantic_summary": "A"}, {"id": 1, "semantic_summary": "B"}],
//	  "edges": [{"source_id": 0, "target_id": 1}]
//	}
//
// A hierarchical graph (tree) is a nested object:
//
//	{"name": "Root", "embedding": null, "metadata": {}, "children": [
//	  {"name": "Child", "embedding": [0.1, 0.2], "metadata": {"kind": "leaf"}, "children": []}
//	]}
//
// Any other keys are ignored by validation and preserved by the typed model in
// [github.com/matzehuels/graphinsight/pkg/graph].
//
// # Verdicts
//
// [IsFlatGraph] and [IsTree] are pure predicates: malformed input is a normal
// false outcome, never a panic, and the input is never modified. [Validator]
// returns the same verdicts as structured errors that name the JSON path of the
// first defect, e.g. "edges[2].target_id". [Detect] picks the shape to check
// when the caller accepts either.
//
// # Depth
//
// Trees are walked with an explicit worklist rather than recursion, so deeply
// nested input cannot exhaust the goroutine stack. [Validator.MaxDepth] still
// bounds the accepted nesting and reports DEPTH_EXCEEDED beyond it.
//
// # Strict Mode
//
// [Validator.Strict] adds the data-model invariants the base contract leaves
// unchecked: unique node ids, non-empty labels and names, and one embedding
// length per tree.
package schema
