package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Arithmetic(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(3, -4)

	assert.Equal(t, Vector{X: 4, Y: -2}, a.Add(b))
	assert.Equal(t, Vector{X: -2, Y: 6}, a.Sub(b))
	assert.Equal(t, Vector{X: 2, Y: 4}, a.Scale(2))
	assert.Equal(t, 5.0, b.Length())
	assert.Equal(t, 0.0, Vector{}.Length())
}

func TestVector_OperationsDoNotMutate(t *testing.T) {
	v := NewVector(1, 1)
	_ = v.Add(NewVector(5, 5))
	_ = v.Scale(10)
	assert.Equal(t, Vector{X: 1, Y: 1}, v)
}
