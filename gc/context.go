package gc

// Context is one managed heap: the record chain, its byte accounting, and
// the collection policy. Each execution context owns exactly one Context;
// contexts are never shared across goroutines, and handles never cross from
// one context to another.
type Context struct {
	head *object

	threshold      int
	usedSpaceRatio float64
	leakOnClose    bool

	collecting bool // a collection pass is running; reentry is fatal
	sweeping   bool // the sweep phase is running; handle deref is fatal
	closed     bool

	stats Stats
}

// Stats is a read-only snapshot of a context's accounting.
type Stats struct {
	// BytesAllocated is the current byte occupancy of the managed chain.
	BytesAllocated int

	// CollectionsPerformed counts completed collection passes, whether or
	// not they reclaimed anything.
	CollectionsPerformed int
}

// NewContext creates a managed heap with the given collection policy.
// A nil opts uses DefaultOptions.
func NewContext(opts *Options) *Context {
	o := DefaultOptions()
	if opts != nil {
		o = opts.normalize()
	}
	return &Context{
		threshold:      o.Threshold,
		usedSpaceRatio: o.UsedSpaceRatio,
		leakOnClose:    o.LeakOnClose,
	}
}

// Stats returns a snapshot of the context's accounting. Read-only; no side
// effects.
func (c *Context) Stats() Stats { return c.stats }

// ForceCollect synchronously runs one full collection cycle. It is
// side-effect-equivalent to the threshold-triggered path, and a silent no-op
// when nothing is condemned. Calling it from inside a running collection
// (for example, from a finalizer) is fatal.
func (c *Context) ForceCollect() {
	c.checkOpen()
	c.collect()
}

// Close tears the context down, running one final collection unless the
// context was configured with LeakOnClose. Records still linked afterwards
// may be referenced by other still-living roots and are abandoned rather
// than freed; that leak is intentional. Using the context after Close is
// fatal.
func (c *Context) Close() {
	if c.closed {
		return
	}
	if !c.leakOnClose {
		c.collect()
	}
	c.closed = true
}

func (c *Context) checkOpen() {
	if c.closed {
		panic("gc: context is closed")
	}
}

// insert allocates a record for data and links it at the chain head. The
// collection trigger runs before the new record is linked, so an allocation
// can never condemn the record it is creating; that matters for ephemeron
// value records, which are born unrooted.
//
// Allocating while a collection is running (from a finalizer) is fatal: the
// sweep writes through chain slots recorded at condemnation time, and a
// record linked at the head after that point would be spliced out with the
// condemned head, leaving it permanently unreachable from the chain.
func (c *Context) insert(data Traceable, k kind) *object {
	c.checkOpen()
	if c.collecting {
		panic("gc: allocation during collection")
	}

	if c.stats.BytesAllocated > c.threshold {
		c.collect()

		if float64(c.stats.BytesAllocated) > float64(c.threshold)*c.usedSpaceRatio {
			// The collection did not reclaim enough. Back the threshold
			// off exponentially so allocate/collect cycles cannot thrash.
			c.threshold = int(float64(c.stats.BytesAllocated) / c.usedSpaceRatio)
		}
	}

	rec := &object{ctx: c, size: recordSize(data), data: data}
	switch k {
	case kindStandard:
		rec.header = newHeader()
	case kindEphemeron:
		rec.header = newEphemeronHeader()
	}

	rec.header.next = c.head
	c.head = rec
	c.stats.BytesAllocated += rec.size
	return rec
}

// chainLen reports the number of records currently linked. Test hook.
func (c *Context) chainLen() int {
	n := 0
	for rec := c.head; rec != nil; rec = rec.header.next {
		n++
	}
	return n
}
