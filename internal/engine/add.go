package engine

// addOp represents scalar addition: out = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outGrad
//   - d(a+b)/db = 1, so grad_b = outGrad
type addOp struct {
	a, b *Value
}

// Add returns a new node computing a + b.
func Add(a, b *Value) *Value {
	return newNode(a.data+b.data, &addOp{a: a, b: b}, a, b)
}

// Add returns a new node computing v + other.
func (v *Value) Add(other *Value) *Value {
	return Add(v, other)
}

// backward flows the output gradient equally to both operands.
func (op *addOp) backward(out *Value) error {
	op.a.grad += out.grad
	op.b.grad += out.grad
	return nil
}

func (op *addOp) tag() string {
	return "+"
}
