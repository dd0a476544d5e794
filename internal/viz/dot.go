package viz

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/scalar-ml/scalargrad/internal/engine"
)

// Dot renders the computation graph rooted at root as Graphviz DOT.
//
// Each Value becomes a record-shaped node showing its label, data and
// gradient. Each non-leaf additionally gets a small operator node, wired
// operand -> operator -> value, so the operator that produced a result
// is visible between its inputs and its output. The graph is laid out
// left to right, inputs toward the root.
func Dot(root *engine.Value) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes, edges := engine.Trace(root)

	valueNodes := make(map[*engine.Value]dot.Node, len(nodes))
	opNodes := make(map[*engine.Value]dot.Node)
	for _, n := range nodes {
		uid := nodeID(n)
		vn := g.Node(uid).
			Attr("shape", "record").
			Attr("label", fmt.Sprintf("{%s | data: %.4f | grad: %.4f}", n.Label(), n.Data(), n.Grad()))
		valueNodes[n] = vn

		if op := n.Op(); op != "" {
			on := g.Node(uid + op).Attr("label", op)
			opNodes[n] = on
			g.Edge(on, vn)
		}
	}

	// Dependency edges point from an operand into the consumer's
	// operator node.
	for _, e := range edges {
		operand, consumer := e[0], e[1]
		g.Edge(valueNodes[operand], opNodes[consumer])
	}

	return g.String()
}

// nodeID returns a stable identifier for a node within one rendering.
// Pointer identity distinguishes distinct nodes that carry equal data.
func nodeID(n *engine.Value) string {
	return fmt.Sprintf("%p", n)
}
