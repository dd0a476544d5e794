package engine

import "fmt"

// Scalar constrains the numeric types accepted by New.
// Integral inputs are normalized to float64 at construction.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Value is a node in a scalar computation graph.
//
// Leaf nodes hold user-supplied inputs and have no operands. Non-leaf
// nodes are produced by the operator functions (Add, Mul, Pow, Tanh and
// their derived forms), which record the operand nodes and attach the
// operation's derivative rule. The operand list is fixed at construction,
// so the graph is a DAG by construction: a new node may reference existing
// nodes but never the other way around.
//
// The gradient accumulator starts at zero and is only ever incremented,
// by Backward. The same node may be an operand of several downstream
// nodes (a shared subexpression); each consumer adds its own contribution.
type Value struct {
	data     float64
	grad     float64
	operands []*Value
	op       operation
	label    string
}

// New creates a leaf node from a numeric scalar.
func New[T Scalar](v T) *Value {
	return &Value{data: float64(v)}
}

// FromAny creates a leaf node from a dynamically typed scalar.
// Any integer or float width is accepted and normalized to float64;
// everything else fails with ErrTypeMismatch.
func FromAny(v any) (*Value, error) {
	switch v := v.(type) {
	case float64:
		return New(v), nil
	case float32:
		return New(v), nil
	case int:
		return New(v), nil
	case int8:
		return New(v), nil
	case int16:
		return New(v), nil
	case int32:
		return New(v), nil
	case int64:
		return New(v), nil
	case uint:
		return New(v), nil
	case uint8:
		return New(v), nil
	case uint16:
		return New(v), nil
	case uint32:
		return New(v), nil
	case uint64:
		return New(v), nil
	default:
		return nil, fmt.Errorf("value: unsupported type %T: %w", v, ErrTypeMismatch)
	}
}

// newNode creates a non-leaf node produced by op over the given operands.
func newNode(data float64, op operation, operands ...*Value) *Value {
	return &Value{data: data, operands: operands, op: op}
}

// Data returns the node's numeric value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the gradient accumulated by the most recent Backward
// passes. Zero before any pass has run.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the display tag of the operation that produced this node
// ("+", "*", "tanh", ...). Empty for leaf nodes.
func (v *Value) Op() string {
	if v.op == nil {
		return ""
	}
	return v.op.tag()
}

// Operands returns a copy of the node's ordered operand list.
// Empty for leaf nodes. The copy keeps callers from mutating graph
// topology through the returned slice.
func (v *Value) Operands() []*Value {
	if len(v.operands) == 0 {
		return nil
	}
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)
	return out
}

// Label returns the node's descriptive label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets a descriptive label for the node. Labels carry no
// computational meaning; they only show up in rendered graphs.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%v)", v.data)
}
