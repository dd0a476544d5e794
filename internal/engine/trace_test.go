package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrace_SharedOperand verifies dedup by node identity: x appears
// once as a node and x*x contributes a single edge.
func TestTrace_SharedOperand(t *testing.T) {
	x := New(3)
	y := Mul(x, x)

	nodes, edges := Trace(y)
	assert.Len(t, nodes, 2)
	require.Len(t, edges, 1)
	assert.Same(t, x, edges[0][0])
	assert.Same(t, y, edges[0][1])
}

func TestTrace_Diamond(t *testing.T) {
	x := New(3)
	y := Mul(x, x)
	z := Add(y, x)

	nodes, edges := Trace(z)
	assert.Len(t, nodes, 3)
	// (y,z), (x,z), (x,y) — one edge per distinct operand relation.
	assert.Len(t, edges, 3)
}

// TestTrace_EqualDataDistinctNodes: identity dedup, not value dedup.
// Two leaves carrying the same number stay separate nodes.
func TestTrace_EqualDataDistinctNodes(t *testing.T) {
	a := New(2)
	b := New(2)
	c := Add(a, b)

	nodes, edges := Trace(c)
	assert.Len(t, nodes, 3)
	assert.Len(t, edges, 2)
}

func TestTrace_Leaf(t *testing.T) {
	a := New(1)
	nodes, edges := Trace(a)
	require.Len(t, nodes, 1)
	assert.Same(t, a, nodes[0])
	assert.Empty(t, edges)
}
