// Copyright 2026 Scalargrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides scalar reverse-mode automatic differentiation.
//
// Expressions are built from Value nodes: operator calls grow a
// computation DAG forward, recording each operation's derivative rule,
// and Backward walks the finished graph once in reverse topological
// order, accumulating into every node the derivative of the root with
// respect to that node.
//
// Example:
//
//	import "github.com/scalar-ml/scalargrad/engine"
//
//	func main() {
//	    a := engine.New(2)
//	    b := engine.New(3)
//	    c := a.Mul(b)          // c.Data() == 6
//
//	    if err := c.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = a.Grad()           // 3 (= b)
//	    _ = b.Grad()           // 2 (= a)
//	}
package engine

import (
	"github.com/scalar-ml/scalargrad/internal/engine"
)

// Value is a node in a scalar computation graph.
type Value = engine.Value

// Edge is one operand -> consumer dependency edge, as reported by Trace.
type Edge = engine.Edge

// Scalar constrains the numeric types accepted by New.
type Scalar = engine.Scalar

// Sentinel errors; test with errors.Is.
var (
	ErrTypeMismatch  = engine.ErrTypeMismatch
	ErrInvalidDomain = engine.ErrInvalidDomain
)

// New creates a leaf node from a numeric scalar.
func New[T Scalar](v T) *Value {
	return engine.New(v)
}

// FromAny creates a leaf node from a dynamically typed scalar, failing
// with ErrTypeMismatch for non-numeric input.
func FromAny(v any) (*Value, error) {
	return engine.FromAny(v)
}

// Add returns a new node computing a + b.
func Add(a, b *Value) *Value { return engine.Add(a, b) }

// Sub returns a new node computing a - b.
func Sub(a, b *Value) *Value { return engine.Sub(a, b) }

// Mul returns a new node computing a * b.
func Mul(a, b *Value) *Value { return engine.Mul(a, b) }

// Div returns a new node computing a / b.
func Div(a, b *Value) *Value { return engine.Div(a, b) }

// Pow returns a new node computing a raised to the power b.
func Pow(a, b *Value) *Value { return engine.Pow(a, b) }

// Neg returns a new node computing -a.
func Neg(a *Value) *Value { return engine.Neg(a) }

// Tanh returns a new node computing the hyperbolic tangent of a.
func Tanh(a *Value) *Value { return engine.Tanh(a) }

// Trace returns the nodes reachable from root and the operand edges
// between them, deduplicated by node identity.
func Trace(root *Value) ([]*Value, []Edge) {
	return engine.Trace(root)
}
