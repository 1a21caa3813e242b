package gc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssrlive/gogc/gc"
	"github.com/ssrlive/gogc/internal/testutil"
)

func newQuietContext() *gc.Context {
	return gc.NewContext(&gc.Options{Threshold: 1 << 20})
}

// TestHandle_NewAndGet tests basic allocation and payload access.
func TestHandle_NewAndGet(t *testing.T) {
	ctx := newQuietContext()
	defer ctx.Close()

	h := gc.New(ctx, &testutil.Obj{ID: 42})
	require.True(t, h.Defined())
	assert.Equal(t, 42, h.Get().ID)
}

// TestHandle_ZeroValueIsUndefined tests the zero Handle.
func TestHandle_ZeroValueIsUndefined(t *testing.T) {
	var h gc.Handle[*testutil.Obj]
	assert.False(t, h.Defined())
}

// TestHandle_ZeroValueGetIsFatal tests that dereferencing the zero Handle
// aborts with a defined message.
func TestHandle_ZeroValueGetIsFatal(t *testing.T) {
	var h gc.Handle[*testutil.Obj]
	assert.PanicsWithValue(t, "gc: dereference of undefined handle", func() {
		h.Get()
	})
}

// TestHandle_CloneKeepsRecordAlive tests that a cloned handle holds its own
// claim on the record.
func TestHandle_CloneKeepsRecordAlive(t *testing.T) {
	ctx := newQuietContext()
	defer ctx.Close()

	h := gc.New(ctx, &testutil.Obj{ID: 1})
	dup := h.Clone()
	w := h.Weak()

	h.Release()
	ctx.ForceCollect()
	_, ok := w.Value()
	require.True(t, ok, "record must survive while the clone is held")
	assert.Equal(t, 1, dup.Get().ID)

	dup.Release()
	ctx.ForceCollect()
	_, ok = w.Value()
	assert.False(t, ok, "record must die once the last strong handle is gone")
}

// TestHandle_Is tests record identity.
func TestHandle_Is(t *testing.T) {
	ctx := newQuietContext()
	defer ctx.Close()

	a := gc.New(ctx, &testutil.Obj{ID: 1})
	b := gc.New(ctx, &testutil.Obj{ID: 1})

	assert.True(t, a.Is(a.Clone()))
	assert.False(t, a.Is(b), "equal payloads are still distinct records")

	a.Release() // the clone's claim remains
	a.Release()
	b.Release()
}

// TestHandle_GetAfterSweepIsFatal tests that dereferencing a handle whose
// record was collected aborts rather than returning freed data.
func TestHandle_GetAfterSweepIsFatal(t *testing.T) {
	ctx := newQuietContext()
	defer ctx.Close()

	h := gc.New(ctx, &testutil.Obj{ID: 1})
	stale := h // plain copy, no root contribution
	h.Release()
	ctx.ForceCollect()

	assert.PanicsWithValue(t, "gc: handle dereferenced after its record was swept", func() {
		stale.Get()
	})
}

// TestHandle_UnrootOnNewTransfersOwnership tests that New absorbs the
// stored value's own handles: the inner record stays alive exactly as long
// as the outer one.
func TestHandle_UnrootOnNewTransfersOwnership(t *testing.T) {
	ctx := newQuietContext()
	defer ctx.Close()

	inner := gc.New(ctx, &testutil.Node{Value: 2})
	innerWeak := inner.Weak()

	outer := gc.New(ctx, &testutil.Node{Value: 1, Next: inner})
	// inner's root moved into the heap with the payload; no Release due.

	ctx.ForceCollect()
	_, ok := innerWeak.Value()
	require.True(t, ok, "inner record is kept alive by tracing through outer")

	outer.Release()
	ctx.ForceCollect()
	_, ok = innerWeak.Value()
	assert.False(t, ok, "dropping outer must free the whole structure")
}

// TestHandle_RootReclaimsOwnership tests moving a handle back out of a
// managed payload.
func TestHandle_RootReclaimsOwnership(t *testing.T) {
	ctx := newQuietContext()
	defer ctx.Close()

	inner := gc.New(ctx, &testutil.Node{Value: 2})
	outer := gc.New(ctx, &testutil.Node{Value: 1, Next: inner})

	taken := outer.Get().Next
	taken.Root() // caller claim, independent of outer
	outer.Get().Next = gc.Handle[*testutil.Node]{}

	outer.Release()
	ctx.ForceCollect()
	assert.Equal(t, 2, taken.Get().Value)

	taken.Release()
	ctx.ForceCollect()
}
