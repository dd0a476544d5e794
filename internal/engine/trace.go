package engine

// Edge is one dependency edge of the graph: Edge[0] is the operand,
// Edge[1] the node that consumes it.
type Edge [2]*Value

// Trace returns every node reachable from root and every operand edge
// between those nodes, for rendering and inspection.
//
// Deduplication is by node identity, not by value: two distinct nodes
// with equal data are distinct graph nodes. Shared subexpressions are
// therefore reported once, with one edge per consumer, and the walk
// cannot loop.
func Trace(root *Value) ([]*Value, []Edge) {
	seen := map[*Value]struct{}{root: {}}
	nodes := []*Value{root}
	edgeSeen := make(map[Edge]struct{})
	var edges []Edge

	todo := []*Value{root}
	for len(todo) > 0 {
		curr := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for _, operand := range curr.operands {
			// Both operands of x*x are the same node; report that edge once.
			e := Edge{operand, curr}
			if _, ok := edgeSeen[e]; !ok {
				edgeSeen[e] = struct{}{}
				edges = append(edges, e)
			}
			if _, ok := seen[operand]; !ok {
				seen[operand] = struct{}{}
				nodes = append(nodes, operand)
				todo = append(todo, operand)
			}
		}
	}
	return nodes, edges
}
