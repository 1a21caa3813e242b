package gc_test

import (
	"testing"

	"github.com/ssrlive/gogc/gc"
	"github.com/ssrlive/gogc/internal/testutil"
)

// Allocation-loop benchmarks: "discard" releases every handle as it goes so
// triggered collections stay cheap; "keep" retains all handles so the
// threshold back-off path is exercised.

func benchmarkDiscard(b *testing.B, n int) {
	ctx := gc.NewContext(nil)
	defer ctx.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ctx.ForceCollect()
		for i := range n {
			h := gc.New(ctx, &testutil.Obj{ID: i})
			h.Release()
		}
	}
}

func benchmarkKeep(b *testing.B, n int) {
	ctx := gc.NewContext(nil)
	defer ctx.Close()

	handles := make([]gc.Handle[*testutil.Obj], 0, n)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for i := range n {
			handles = append(handles, gc.New(ctx, &testutil.Obj{ID: i}))
		}
		for _, h := range handles {
			h.Release()
		}
		handles = handles[:0]
		ctx.ForceCollect()
	}
}

func BenchmarkDiscard100(b *testing.B)   { benchmarkDiscard(b, 100) }
func BenchmarkDiscard10000(b *testing.B) { benchmarkDiscard(b, 10_000) }
func BenchmarkKeep100(b *testing.B)      { benchmarkKeep(b, 100) }
func BenchmarkKeep10000(b *testing.B)    { benchmarkKeep(b, 10_000) }

// BenchmarkCollectDeepChain measures a full collection over a long linked
// structure reachable from a single root.
func BenchmarkCollectDeepChain(b *testing.B) {
	ctx := gc.NewContext(&gc.Options{Threshold: 1 << 30})
	defer ctx.Close()

	head := gc.New(ctx, &testutil.Node{Value: 0})
	tail := head
	for i := 1; i < 1_000; i++ {
		next := gc.New(ctx, &testutil.Node{Value: i})
		tail.Get().Next = next
		next.Unroot()
		tail = next
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.ForceCollect()
	}
	b.StopTimer()
	head.Release()
}
