package gc

// Traceable is the capability every payload type stored in a managed record
// must implement. It is a manual, caller-certified contract: an
// implementation asserts that it correctly enumerates every managed
// reference the value contains. See the package documentation for the review
// weight this carries.
//
// Handle, Weak and Pair implement Traceable themselves, so compound payloads
// implement each method by delegating to their managed fields.
type Traceable interface {
	// Trace marks every managed reference reachable from the value.
	Trace()

	// WeakTrace contributes every ephemeron pair reachable from the value
	// to the collector's worklist.
	WeakTrace(q *EphemeronQueue)

	// IsMarkedEphemeron reports whether the value is itself an already
	// resolved ephemeron value. The collector consults it when deciding
	// whether an ephemeron key is reachable, which is what makes chains of
	// ephemerons (a pair keyed on another pair's value) resolve.
	IsMarkedEphemeron() bool

	// Root re-establishes the root contribution of every managed reference
	// nested in the value.
	Root()

	// Unroot removes the root contribution of every managed reference
	// nested in the value.
	Unroot()
}

// Finalizer is the optional finalization hook. A condemned payload that
// implements it has Finalize called exactly once per collection cycle,
// strictly before deallocation and with the rest of the managed graph still
// intact, so a finalizer may read other managed data, including data that is
// itself condemned.
type Finalizer interface {
	Finalize()
}

// Leaf is an embeddable no-op Traceable for payload types that hold no
// managed references.
type Leaf struct{}

func (Leaf) Trace()                    {}
func (Leaf) WeakTrace(*EphemeronQueue) {}
func (Leaf) IsMarkedEphemeron() bool   { return false }
func (Leaf) Root()                     {}
func (Leaf) Unroot()                   {}

// ephemeronPair is one key/value association awaiting resolution.
type ephemeronPair struct {
	key, value *object
}

// EphemeronQueue is the collector-owned worklist of ephemeron pairs for the
// current pass. Payload WeakTrace implementations only ever see it opaquely,
// through the forwarding methods on Handle and Pair.
type EphemeronQueue struct {
	pairs   []ephemeronPair
	visited map[*object]struct{}
}

func newEphemeronQueue() *EphemeronQueue {
	return &EphemeronQueue{visited: make(map[*object]struct{})}
}

// enqueue records a key/value association for the resolution pass.
func (q *EphemeronQueue) enqueue(key, value *object) {
	q.pairs = append(q.pairs, ephemeronPair{key: key, value: value})
}

// descend forwards weak tracing into rec's payload at most once per
// collection. The visited set is what keeps weak traversal from looping on
// cyclic graphs; strong tracing uses the mark bit for the same purpose.
func (q *EphemeronQueue) descend(rec *object) {
	if !rec.alive() {
		return
	}
	if _, ok := q.visited[rec]; ok {
		return
	}
	q.visited[rec] = struct{}{}
	rec.data.WeakTrace(q)
}
