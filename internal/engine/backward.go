package engine

import "fmt"

// Backward computes, for every node reachable from v through the operand
// relation, the partial derivative of v with respect to that node, and
// adds it into the node's gradient accumulator.
//
// Algorithm:
//  1. Linearize the reachable subgraph in reverse topological order:
//     a postorder depth-first walk over operands, reversed, so every
//     node appears after all nodes that list it as an operand. On a
//     diamond-shaped graph this guarantees a shared node's gradient is
//     fully accumulated from all of its consumers before the node's own
//     rule runs. A first-visit preorder replay would not.
//  2. Seed v.grad = 1 (derivative of the root with respect to itself).
//  3. Walk the order, invoking each node's derivative rule exactly once.
//
// Gradients accumulate: calling Backward again without ZeroGrad adds a
// second pass's contributions on top of the first (non-root gradients
// double). Call ZeroGrad first for a fresh pass.
//
// A rule error (see ErrInvalidDomain) aborts the pass immediately and is
// returned; gradients written before the failing rule are left in place,
// but no partial result should be relied on after an error.
//
// Backward owns all gradient mutation for the duration of the call and
// takes no locks; concurrent passes over overlapping graphs require
// external exclusion.
func (v *Value) Backward() error {
	order := topoOrder(v)

	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.op == nil {
			continue
		}
		if err := n.op.backward(n); err != nil {
			return fmt.Errorf("backward %q: %w", n.op.tag(), err)
		}
	}
	return nil
}

// topoOrder returns the nodes reachable from root in postorder: each
// node appears after all of its operands, root last. Shared nodes are
// visited once, keyed by pointer identity.
func topoOrder(root *Value) []*Value {
	order := make([]*Value, 0, 16)
	visited := make(map[*Value]struct{})

	var visit func(n *Value)
	visit = func(n *Value) {
		if _, ok := visited[n]; ok {
			return
		}
		visited[n] = struct{}{}
		for _, operand := range n.operands {
			visit(operand)
		}
		order = append(order, n)
	}
	visit(root)

	return order
}

// ZeroGrad resets the gradient accumulator of v and of every node
// reachable from it, so the next Backward starts from a clean slate.
func (v *Value) ZeroGrad() {
	for _, n := range topoOrder(v) {
		n.grad = 0
	}
}
