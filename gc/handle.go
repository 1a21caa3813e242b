package gc

// Handle is a strong, root-counted reference to a managed record. Handles
// are plain values: copying one with = does not adjust the root count, which
// is exactly the semantics a reference stored inside a managed payload
// should have. A handle that must independently keep its record alive comes
// from New, Clone or Weak.Upgrade, and gives that claim back with Release.
//
// The zero Handle refers to nothing; see Defined.
type Handle[T Traceable] struct {
	rec *object
}

// New allocates a standard record for value (born rooted, root count 1) and
// returns its first strong handle. Managed references already inside value
// are unrooted: ownership of them transfers to the heap, which from now on
// keeps them alive by tracing through the new record. Callers that also want
// their own independent claim on such an inner handle must Clone it first.
//
// Allocation may trigger a synchronous collection, per the context's
// Options.
func New[T Traceable](c *Context, value T) Handle[T] {
	rec := c.insert(value, kindStandard)
	value.Unroot()
	return Handle[T]{rec: rec}
}

// Defined reports whether the handle refers to a record. The zero Handle
// does not.
func (h Handle[T]) Defined() bool { return h.rec != nil }

// Get returns the payload. It is fatal on the zero Handle, while the owning
// context's sweep phase is running, and on a record that has already been
// swept; each indicates a caller invariant violation. The sweep phase itself
// runs no user code (finalizers run before it), so the during-sweep panic is
// unreachable from well-formed payloads; it guards the sweep's own chain
// writes.
func (h Handle[T]) Get() T {
	if h.rec == nil {
		panic("gc: dereference of undefined handle")
	}
	if h.rec.ctx.sweeping {
		panic("gc: handle dereferenced during sweep")
	}
	if !h.rec.alive() {
		panic("gc: handle dereferenced after its record was swept")
	}
	return h.rec.data.(T)
}

// Clone returns a new strong handle to the same record, incrementing its
// root count. The count saturates with a panic rather than wrapping.
func (h Handle[T]) Clone() Handle[T] {
	h.rec.header.incRoots()
	return Handle[T]{rec: h.rec}
}

// Release gives up this handle's root. The handle must not be used
// afterwards. Releasing more handles than were created is a caller
// invariant violation and is not guarded at runtime.
func (h Handle[T]) Release() { h.rec.header.decRoots() }

// Weak returns a weak handle to the same record without touching its root
// count.
func (h Handle[T]) Weak() Weak[T] { return Weak[T]{rec: h.rec} }

// Is reports whether two handles refer to the same record.
func (h Handle[T]) Is(other Handle[T]) bool { return h.rec == other.rec }

// Traceable plumbing. A handle nested inside a compound payload is itself a
// managed reference, and the payload's Traceable implementation delegates to
// these.

// Trace marks the referenced record and traces through its payload.
func (h Handle[T]) Trace() {
	if h.rec != nil {
		h.rec.trace()
	}
}

// WeakTrace forwards ephemeron discovery into the referenced payload.
func (h Handle[T]) WeakTrace(q *EphemeronQueue) {
	if h.rec != nil {
		q.descend(h.rec)
	}
}

// IsMarkedEphemeron reports false: a handle is never itself an ephemeron
// value.
func (h Handle[T]) IsMarkedEphemeron() bool { return false }

// Root re-establishes this handle's root contribution. Used when a handle
// is moved out of a managed payload back into caller ownership.
func (h Handle[T]) Root() {
	if h.rec != nil {
		h.rec.header.incRoots()
	}
}

// Unroot removes this handle's root contribution. Used when a handle is
// absorbed into a managed payload, whose Trace keeps it alive instead.
func (h Handle[T]) Unroot() {
	if h.rec != nil {
		h.rec.header.decRoots()
	}
}
