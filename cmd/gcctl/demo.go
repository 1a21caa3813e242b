package main

import (
	"github.com/spf13/cobra"

	"github.com/ssrlive/gogc/gc"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through collector features step by step",
		Long: `The demo command walks through the collector's observable behavior:
cycle reclamation, weak handle invalidation, ephemeron pairs, and
finalization.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	ctx := gc.NewContext(nil)
	defer ctx.Close()

	printInfo("--- cycles ---\n")
	a := gc.New(ctx, &node{id: 1})
	b := gc.New(ctx, &node{id: 2})
	a.Get().next = b
	b.Get().next = a
	printInfo("built 2-node cycle, live bytes: %d\n", ctx.Stats().BytesAllocated)

	a.Release()
	b.Release()
	ctx.ForceCollect()
	printInfo("after drop + collect, live bytes: %d\n", ctx.Stats().BytesAllocated)

	printInfo("--- weak handles ---\n")
	h := gc.New(ctx, &item{id: 100})
	w := h.Weak()
	if v, ok := w.Value(); ok {
		printInfo("weak resolves: id=%d\n", v.id)
	}
	h.Release()
	ctx.ForceCollect()
	if _, ok := w.Value(); !ok {
		printInfo("weak correctly invalidated after collection\n")
	}

	printInfo("--- ephemeron pairs ---\n")
	key := gc.New(ctx, &item{id: 1})
	pair := gc.NewPair(key, &item{id: 2})
	if v, ok := pair.Value(); ok {
		printInfo("pair value while key lives: id=%d\n", v.id)
	}
	key.Release()
	ctx.ForceCollect()
	if _, ok := pair.Value(); !ok {
		printInfo("pair value gone with its key\n")
	}

	printInfo("--- finalization ---\n")
	fin := gc.New(ctx, &item{
		id:         7,
		onFinalize: func() { printInfo("finalizer ran for id=7\n") },
	})
	fin.Release()
	ctx.ForceCollect()

	st := ctx.Stats()
	printInfo("--- done ---\n")
	printInfo("collections performed: %d, live bytes: %d\n",
		st.CollectionsPerformed, st.BytesAllocated)
	return nil
}
