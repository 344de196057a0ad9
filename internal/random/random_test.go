package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeededIsDeterministic(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestIntRange(t *testing.T) {
	src := NewSeeded(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := IntRange(src, 2, 5)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 3, IntRange(src, 3, 3))
	assert.Equal(t, 3, IntRange(src, 3, 1))
}

func TestOr(t *testing.T) {
	assert.NotNil(t, Or(nil))
	src := NewSeeded(1)
	assert.Same(t, src, Or(src))
}
