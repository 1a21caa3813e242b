package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ssrlive/gogc/gc"
)

var (
	stressCount     int
	stressThreshold int
	stressRatio     float64
	stressKeep      int
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressCount, "count", 100_000, "Number of records to allocate")
	cmd.Flags().IntVar(&stressThreshold, "threshold", 100, "Initial collection threshold in bytes")
	cmd.Flags().Float64Var(&stressRatio, "ratio", 0.7, "Post-collection used-space ratio")
	cmd.Flags().IntVar(&stressKeep, "keep", 0, "Number of records to keep rooted throughout")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run an allocation stress workload and report statistics",
		Long: `The stress command allocates short-lived records in a loop, letting the
threshold trigger drive collections, and reports how the collector behaved.

Example:
  gcctl stress --count 1000000
  gcctl stress --count 500000 --threshold 4096 --keep 100 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

type stressReport struct {
	Allocated   int           `json:"allocated"`
	Kept        int           `json:"kept"`
	Collections int           `json:"collections"`
	LiveBytes   int           `json:"live_bytes"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

func runStress() error {
	ctx := gc.NewContext(&gc.Options{
		Threshold:      stressThreshold,
		UsedSpaceRatio: stressRatio,
	})
	defer ctx.Close()

	kept := make([]gc.Handle[*item], 0, stressKeep)
	start := time.Now()

	for i := range stressCount {
		h := gc.New(ctx, &item{id: i})
		if len(kept) < stressKeep {
			kept = append(kept, h)
			continue
		}
		h.Release()
	}
	ctx.ForceCollect()

	st := ctx.Stats()
	report := stressReport{
		Allocated:   stressCount,
		Kept:        len(kept),
		Collections: st.CollectionsPerformed,
		LiveBytes:   st.BytesAllocated,
		Elapsed:     time.Since(start),
	}

	for _, h := range kept {
		h.Release()
	}

	if jsonOut {
		return printJSON(report)
	}
	printInfo("allocated:   %d records (%d kept rooted)\n", report.Allocated, report.Kept)
	printInfo("collections: %d\n", report.Collections)
	printInfo("live bytes:  %d\n", report.LiveBytes)
	printInfo("elapsed:     %s\n", report.Elapsed)
	return nil
}
