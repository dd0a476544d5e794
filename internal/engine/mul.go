package engine

// mulOp represents scalar multiplication: out = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = b * outGrad
//   - d(a*b)/db = a, so grad_b = a * outGrad
type mulOp struct {
	a, b *Value
}

// Mul returns a new node computing a * b.
func Mul(a, b *Value) *Value {
	return newNode(a.data*b.data, &mulOp{a: a, b: b}, a, b)
}

// Mul returns a new node computing v * other.
func (v *Value) Mul(other *Value) *Value {
	return Mul(v, other)
}

func (op *mulOp) backward(out *Value) error {
	op.a.grad += op.b.data * out.grad
	op.b.grad += op.a.data * out.grad
	return nil
}

func (op *mulOp) tag() string {
	return "*"
}
