// Copyright 2026 Scalargrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz renders scalargrad computation graphs as Graphviz DOT.
//
// It consumes only the engine's read surface (Trace plus the per-node
// accessors); the engine does not depend on it.
//
// Example:
//
//	a := engine.New(2)
//	b := engine.New(3)
//	c := a.Mul(b)
//	_ = c.Backward()
//	fmt.Println(viz.Dot(c)) // feed to `dot -Tsvg`
package viz

import (
	"github.com/scalar-ml/scalargrad/internal/engine"
	"github.com/scalar-ml/scalargrad/internal/viz"
)

// Dot renders the computation graph rooted at root as Graphviz DOT.
func Dot(root *engine.Value) string {
	return viz.Dot(root)
}
