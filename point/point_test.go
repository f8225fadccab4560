package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_ArityAndAxis(t *testing.T) {
	p := New(1.0, 2.0, 3.0)

	assert.Equal(t, 3, p.Arity())
	assert.Equal(t, 1.0, p.Axis(0))
	assert.Equal(t, 2.0, p.Axis(1))
	assert.Equal(t, 3.0, p.Axis(2))
}

func TestPoint_Clone(t *testing.T) {
	p := New(1, 2, 3)
	clone := p.Clone()

	assert.Equal(t, p, clone)

	clone[0] = 99
	assert.NotEqual(t, p[0], clone[0], "Clone must not alias the backing array")
}

func TestPoint_IntegerTypes(t *testing.T) {
	p := New[int32](1, 2)
	assert.Equal(t, int32(1), p.Axis(0))

	var k Keyed[int32] = p
	assert.Equal(t, 2, k.Arity())
}
