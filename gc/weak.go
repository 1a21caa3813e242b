package gc

// Weak is a reference that never keeps its record alive. It resolves to the
// payload exactly while the record remains linked in its owning chain, and
// to nothing from the moment the record is swept; it can never hand out a
// stale read. Liveness is a per-record freed signal set at sweep time, never
// the mark bit, which is transient collector-internal state.
type Weak[T Traceable] struct {
	rec *object
}

// NewWeak allocates a record for value and returns only a weak handle to
// it. The record has no strong handles, so it lives until the next
// collection.
func NewWeak[T Traceable](c *Context, value T) Weak[T] {
	h := New(c, value)
	w := h.Weak()
	h.Release()
	return w
}

// Value resolves to the payload if the record is still alive, or to
// ok=false if it has been collected.
func (w Weak[T]) Value() (T, bool) {
	if w.rec == nil || !w.rec.alive() {
		var zero T
		return zero, false
	}
	return w.rec.data.(T), true
}

// Upgrade re-establishes a strong handle on a live record, or reports
// ok=false if the record has been collected. Calling it from a finalizer is
// how a condemned record gets resurrected.
func (w Weak[T]) Upgrade() (Handle[T], bool) {
	if w.rec == nil || !w.rec.alive() {
		return Handle[T]{}, false
	}
	w.rec.header.incRoots()
	return Handle[T]{rec: w.rec}, true
}

// Traceable plumbing: a weak reference contributes nothing to marking or
// rooting.

func (w Weak[T]) Trace()                    {}
func (w Weak[T]) WeakTrace(*EphemeronQueue) {}
func (w Weak[T]) IsMarkedEphemeron() bool   { return false }
func (w Weak[T]) Root()                     {}
func (w Weak[T]) Unroot()                   {}

// Pair is an ephemeron: a weak key coupled with an owned value whose
// liveness is a function of the key's, not of any root count of its own.
// The value lives in an ephemeron-value record that is marked only when the
// collector proves the key reachable, so dropping the key's last strong
// handle condemns key and value together, even if nothing else references
// the value.
type Pair[K, V Traceable] struct {
	key   Weak[K]
	value *object
}

// NewPair allocates an ephemeron-value record for value (born unrooted) in
// key's context and couples it to a weak reference to key.
//
// A pair only participates in collection when it is reachable from the
// managed graph: whatever structure holds it must forward WeakTrace to the
// pair so the key/value association reaches the collector's worklist. A
// pair held only in unmanaged memory contributes nothing, and its value is
// reclaimed by the next collection.
func NewPair[K, V Traceable](key Handle[K], value V) Pair[K, V] {
	rec := key.rec.ctx.insert(value, kindEphemeron)
	return Pair[K, V]{key: key.Weak(), value: rec}
}

// Key resolves the pair's key while it is alive.
func (p Pair[K, V]) Key() (K, bool) { return p.key.Value() }

// Value resolves the pair's value. It is observable only through a live
// key, and never after the value record itself has been swept.
func (p Pair[K, V]) Value() (V, bool) {
	var zero V
	if _, ok := p.key.Value(); !ok {
		return zero, false
	}
	if p.value == nil || !p.value.alive() {
		return zero, false
	}
	return p.value.data.(V), true
}

// Traceable plumbing. A pair marks nothing eagerly; it only supplies its
// key/value association to the collector's worklist while the structure
// holding it is being traced.

func (p Pair[K, V]) Trace() {}

func (p Pair[K, V]) WeakTrace(q *EphemeronQueue) {
	if p.key.rec != nil && p.value != nil {
		q.enqueue(p.key.rec, p.value)
	}
}

func (p Pair[K, V]) IsMarkedEphemeron() bool { return false }
func (p Pair[K, V]) Root()                   {}
func (p Pair[K, V]) Unroot()                 {}
