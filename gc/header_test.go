package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeader_NewStandard tests that a standard record is born rooted and
// unmarked.
func TestHeader_NewStandard(t *testing.T) {
	h := newHeader()
	assert.Equal(t, uint64(1), h.roots(), "standard record should start with one root")
	assert.False(t, h.marked(), "new record should be unmarked")
}

// TestHeader_NewEphemeron tests that an ephemeron-value record is born
// unrooted.
func TestHeader_NewEphemeron(t *testing.T) {
	h := newEphemeronHeader()
	assert.Equal(t, uint64(0), h.roots(), "ephemeron record should start with zero roots")
	assert.False(t, h.marked())
}

// TestHeader_MarkDoesNotDisturbRoots tests that the mark flag and the root
// count share the word without interfering.
func TestHeader_MarkDoesNotDisturbRoots(t *testing.T) {
	h := newHeader()
	h.incRoots()
	h.incRoots()
	require.Equal(t, uint64(3), h.roots())

	h.mark()
	assert.True(t, h.marked())
	assert.Equal(t, uint64(3), h.roots(), "marking must not change the root count")

	h.incRoots()
	assert.True(t, h.marked(), "incrementing roots must not clear the mark")
	assert.Equal(t, uint64(4), h.roots())

	h.unmark()
	assert.False(t, h.marked())
	assert.Equal(t, uint64(4), h.roots(), "unmarking must not change the root count")
}

// TestHeader_DecRoots tests plain decrement behavior.
func TestHeader_DecRoots(t *testing.T) {
	h := newHeader()
	h.decRoots()
	assert.Equal(t, uint64(0), h.roots())
}

// TestHeader_IncRootsSaturates tests that the root count aborts at its
// maximum instead of wrapping into the mark bit.
func TestHeader_IncRootsSaturates(t *testing.T) {
	h := header{word: rootsMax}
	require.Equal(t, rootsMax, h.roots())

	assert.PanicsWithValue(t, "gc: roots counter overflow", func() {
		h.incRoots()
	})
	assert.Equal(t, rootsMax, h.roots(), "failed increment must not change the count")

	// A marked header at the limit saturates the same way.
	h.mark()
	assert.PanicsWithValue(t, "gc: roots counter overflow", func() {
		h.incRoots()
	})
	assert.True(t, h.marked())
}
