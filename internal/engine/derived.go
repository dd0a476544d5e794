package engine

// Derived operators, composed purely from the primitives. They attach no
// derivative rules of their own, so their gradients are inherited from
// the nodes they expand into.

// Sub returns a new node computing a - b, as a + (-1 * b).
func Sub(a, b *Value) *Value {
	return Add(a, Mul(New(-1), b))
}

// Sub returns a new node computing v - other.
func (v *Value) Sub(other *Value) *Value {
	return Sub(v, other)
}

// Div returns a new node computing a / b, as a * b^-1.
// Like Pow, its backward pass requires a positive b.
func Div(a, b *Value) *Value {
	return Mul(a, Pow(b, New(-1)))
}

// Div returns a new node computing v / other.
func (v *Value) Div(other *Value) *Value {
	return Div(v, other)
}

// Neg returns a new node computing -a, as -1 * a.
func Neg(a *Value) *Value {
	return Mul(New(-1), a)
}

// Neg returns a new node computing -v.
func (v *Value) Neg() *Value {
	return Neg(v)
}
