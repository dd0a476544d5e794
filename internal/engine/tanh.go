package engine

import "math"

// tanhOp represents the hyperbolic tangent: out = tanh(a).
//
// Backward pass:
//
//	d(tanh(a))/da = 1 - tanh²(a)
//
// Since the forward result t = tanh(a) is already stored on the output
// node, the rule reuses it: grad_a = (1 - t²) * outGrad.
type tanhOp struct {
	a *Value
}

// Tanh returns a new node computing tanh(a) = (e^{2a} - 1) / (e^{2a} + 1).
func Tanh(a *Value) *Value {
	t := (math.Exp(2*a.data) - 1) / (math.Exp(2*a.data) + 1)
	return newNode(t, &tanhOp{a: a}, a)
}

// Tanh returns a new node computing tanh(v).
func (v *Value) Tanh() *Value {
	return Tanh(v)
}

func (op *tanhOp) backward(out *Value) error {
	t := out.data
	op.a.grad += (1 - t*t) * out.grad
	return nil
}

func (op *tanhOp) tag() string {
	return "tanh"
}
