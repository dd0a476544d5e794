package engine

import (
	"fmt"
	"math"
)

// powOp represents scalar exponentiation: out = a ^ b.
//
// Backward pass:
//   - d(a^b)/da = b * a^(b-1), so grad_a = b * a^(b-1) * outGrad
//   - d(a^b)/db = a^b * ln(a),  so grad_b = a^b * ln(a) * outGrad
//
// The exponent rule needs ln(a), which is only defined for a > 0. The
// rule evaluates it unconditionally, so a non-positive base fails the
// backward pass with ErrInvalidDomain even when the forward value was
// well defined (e.g. a negative base with an integer exponent).
type powOp struct {
	a, b *Value
}

// Pow returns a new node computing a raised to the power b.
func Pow(a, b *Value) *Value {
	return newNode(math.Pow(a.data, b.data), &powOp{a: a, b: b}, a, b)
}

// Pow returns a new node computing v raised to the power other.
func (v *Value) Pow(other *Value) *Value {
	return Pow(v, other)
}

func (op *powOp) backward(out *Value) error {
	a, b := op.a, op.b
	if a.data <= 0 {
		return fmt.Errorf("pow: ln of non-positive base %v: %w", a.data, ErrInvalidDomain)
	}
	a.grad += b.data * math.Pow(a.data, b.data-1) * out.grad
	b.grad += math.Pow(a.data, b.data) * math.Log(a.data) * out.grad
	return nil
}

func (op *powOp) tag() string {
	return fmt.Sprintf("%.2f^%.2f", op.a.data, op.b.data)
}
