package gc

// Shared payload types for the internal tests. External behavioral tests use
// the richer types in internal/testutil.

// testLeaf is a minimal payload with no managed references.
type testLeaf struct {
	Leaf
	v          int
	onFinalize func()
}

func (l *testLeaf) Finalize() {
	if l.onFinalize != nil {
		l.onFinalize()
	}
}

// ephemeronishVal is a payload that can claim to be an already resolved
// ephemeron value, to exercise the chained-ephemeron reachability rule.
type ephemeronishVal struct {
	Leaf
	resolved bool
}

func (e *ephemeronishVal) IsMarkedEphemeron() bool { return e.resolved }

// pairHolder is a payload whose WeakTrace contributes raw record pairs to
// the worklist, standing in for any structure that holds ephemerons.
type pairHolder struct {
	Leaf
	pairs []ephemeronPair
}

func (h *pairHolder) WeakTrace(q *EphemeronQueue) {
	for _, p := range h.pairs {
		q.enqueue(p.key, p.value)
	}
}

// noCollect returns options with a threshold high enough that tests control
// every collection themselves.
func noCollect() *Options {
	return &Options{Threshold: 1 << 20}
}
