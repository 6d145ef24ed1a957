package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerStartsAtZero(t *testing.T) {
	p := NewPointer()
	assert.Equal(t, 0, p.Get())
}

func TestPointerAdvanceReturnsPreIncrement(t *testing.T) {
	p := NewPointer()

	assert.Equal(t, 0, p.Advance(4))
	assert.Equal(t, 4, p.Get())

	assert.Equal(t, 4, p.Advance(8))
	assert.Equal(t, 12, p.Get())

	// Get never mutates.
	assert.Equal(t, 12, p.Get())
	assert.Equal(t, 12, p.Get())
}

func TestPointerAdvanceZero(t *testing.T) {
	p := NewPointer()
	p.Advance(3)

	assert.Equal(t, 3, p.Advance(0))
	assert.Equal(t, 3, p.Get())
}
