package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a := New(1)
	b := New(2)
	c := Add(a, b)
	assert.Equal(t, 3.0, c.Data())

	require.NoError(t, c.Backward())
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

func TestSub(t *testing.T) {
	a := New(1)
	b := New(2)
	c := Sub(a, b)
	assert.Equal(t, -1.0, c.Data())

	require.NoError(t, c.Backward())
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

// TestMul verifies the product rule: each operand's gradient is the
// other operand's value.
func TestMul(t *testing.T) {
	a := New(2)
	b := New(3)
	c := Mul(a, b)
	assert.Equal(t, 6.0, c.Data())

	require.NoError(t, c.Backward())
	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
}

func TestDiv(t *testing.T) {
	a := New(2)
	b := New(4)
	c := Div(a, b)
	assert.Equal(t, 0.5, c.Data())

	require.NoError(t, c.Backward())
	// d(a/b)/da = 1/b, d(a/b)/db = -a/b².
	assert.InDelta(t, 0.25, a.Grad(), 1e-12)
	assert.InDelta(t, -2.0/16.0, b.Grad(), 1e-12)
}

func TestPow(t *testing.T) {
	a := New(2)
	b := New(3)
	c := Pow(a, b)
	assert.Equal(t, 8.0, c.Data())

	require.NoError(t, c.Backward())
	// d(a^b)/da = b * a^(b-1) = 3 * 4 = 12.
	assert.InDelta(t, 12.0, a.Grad(), 1e-12)
	// d(a^b)/db = a^b * ln(a) = 8 * ln(2).
	assert.InDelta(t, 8.0*math.Log(2), b.Grad(), 1e-12)
}

// TestNeg verifies Neg is exactly multiplication by -1, value and
// gradient both, via independent backward passes.
func TestNeg(t *testing.T) {
	a := New(3)
	b := Neg(a)
	assert.Equal(t, -3.0, b.Data())

	require.NoError(t, b.Backward())
	assert.Equal(t, -1.0, a.Grad())

	a2 := New(3)
	c := Mul(New(-1), a2)
	assert.Equal(t, b.Data(), c.Data())

	require.NoError(t, c.Backward())
	assert.Equal(t, a.Grad(), a2.Grad())
}

func TestTanh_Forward(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"zero", 0},
		{"positive", 0.5},
		{"negative", -1.3},
		{"saturated", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Tanh(New(tt.x))
			assert.InDelta(t, math.Tanh(tt.x), v.Data(), 1e-12)
		})
	}
}

// TestMethodForms verifies the method forms build the same graphs as the
// package functions.
func TestMethodForms(t *testing.T) {
	a := New(2)
	b := New(3)

	assert.Equal(t, 5.0, a.Add(b).Data())
	assert.Equal(t, -1.0, a.Sub(b).Data())
	assert.Equal(t, 6.0, a.Mul(b).Data())
	assert.InDelta(t, 2.0/3.0, a.Div(b).Data(), 1e-12)
	assert.Equal(t, 8.0, a.Pow(b).Data())
	assert.Equal(t, -2.0, a.Neg().Data())
	assert.InDelta(t, math.Tanh(2), a.Tanh().Data(), 1e-12)
}
