package engine

// operation is the derivative rule attached to a non-leaf Value.
// Each operator implements it as a small struct over its operand nodes
// (a tagged variant rather than an opaque closure), so a rule can be
// inspected and replayed deterministically, independent of how the
// backward traversal discovered the node.
type operation interface {
	// backward distributes the node's fully accumulated gradient to its
	// operands per the chain rule: each operand receives
	//
	//	operand.grad += <local gradient w.r.t. operand> * out.grad
	//
	// It must only be called once per backward pass, after out.grad is
	// final.
	backward(out *Value) error

	// tag returns the human-readable operator label used for display.
	tag() string
}
