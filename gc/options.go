package gc

// Options controls a context's collection policy. Policy governs only when
// collection runs, never whether it is correct.
type Options struct {
	// Threshold is the number of managed bytes that may be allocated
	// before an allocation triggers a collection.
	Threshold int

	// UsedSpaceRatio is the post-collection occupancy target. If a
	// triggered collection leaves more than Threshold×UsedSpaceRatio bytes
	// live, the threshold is raised to occupancy/UsedSpaceRatio so a heap
	// that grows linearly cannot drive quadratic collect-per-allocation
	// behavior.
	UsedSpaceRatio float64

	// LeakOnClose skips the final collection when the context is closed.
	// For short-running processes it can be cheaper to let the process
	// exit reclaim everything.
	LeakOnClose bool
}

// DefaultOptions returns the standard collection policy.
//
// Defaults:
//   - Threshold: 100 bytes
//   - UsedSpaceRatio: 0.7
//   - LeakOnClose: false (collect at close)
func DefaultOptions() Options {
	return Options{
		Threshold:      100,
		UsedSpaceRatio: 0.7,
	}
}

// normalize fills unusable zero fields with their defaults so a partially
// populated Options literal behaves sanely.
func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.Threshold <= 0 {
		o.Threshold = def.Threshold
	}
	if o.UsedSpaceRatio <= 0 {
		o.UsedSpaceRatio = def.UsedSpaceRatio
	}
	return o
}
