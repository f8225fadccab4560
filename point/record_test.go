package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_DelegatesToKey(t *testing.T) {
	r := NewRecord(New(4.0, 5.0), "payload")

	assert.Equal(t, 2, r.Arity())
	assert.Equal(t, 4.0, r.Axis(0))
	assert.Equal(t, 5.0, r.Axis(1))
	assert.Equal(t, "payload", r.Value)
}

func TestRecord_SatisfiesKeyed(t *testing.T) {
	var k Keyed[float64] = NewRecord(New(1.0), struct{}{})
	assert.Equal(t, 1, k.Arity())
}
