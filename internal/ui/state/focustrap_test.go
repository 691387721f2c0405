package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusTrapCycles(t *testing.T) {
	t.Parallel()

	trap := NewFocusTrap("name", "email", "submit")
	assert.Empty(t, trap.Current())
	assert.Empty(t, trap.Next(), "inactive trap does not move")

	assert.Equal(t, "name", trap.Activate("open-button"))
	assert.True(t, trap.Active())
	assert.Equal(t, "email", trap.Next())
	assert.Equal(t, "submit", trap.Next())
	assert.Equal(t, "name", trap.Next())
	assert.Equal(t, "submit", trap.Prev())
}

func TestFocusTrapFocusAndRelease(t *testing.T) {
	t.Parallel()

	trap := NewFocusTrap("a", "b")
	assert.False(t, trap.Focus("b"))

	trap.Activate("outside")
	assert.True(t, trap.Focus("b"))
	assert.False(t, trap.Focus("outside"))
	assert.Equal(t, "b", trap.Current())

	assert.Equal(t, "outside", trap.Release())
	assert.False(t, trap.Active())
	assert.Empty(t, trap.Current())
	assert.Empty(t, trap.Release())
}

func TestFocusTrapEmpty(t *testing.T) {
	t.Parallel()

	trap := NewFocusTrap()
	assert.Empty(t, trap.Activate("x"))
	assert.Empty(t, trap.Next())
	assert.Empty(t, trap.Prev())
	assert.Equal(t, "x", trap.Release())
}
