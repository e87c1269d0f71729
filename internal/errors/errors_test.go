package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	errA := New("a")
	errB := New("b")
	wrapped := Wrap(errB, "read")

	assert.True(t, IsAny(wrapped, errA, errB))
	assert.False(t, IsAny(wrapped, errA))
	assert.False(t, IsAny(nil, errA, errB))
	assert.False(t, IsAny(wrapped))
}
