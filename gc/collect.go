package gc

// condemnedRecord pairs an unreachable record with the chain slot that
// points at it: the head, or the next field of its predecessor. The
// predecessor may itself be condemned; sweep order accounts for that.
type condemnedRecord struct {
	slot **object
	rec  *object
}

// collect runs one full collection cycle: mark, ephemeron resolution,
// condemnation, finalization, re-mark, sweep.
func (c *Context) collect() {
	if c.collecting {
		panic("gc: collection already running")
	}
	c.collecting = true
	defer func() { c.collecting = false }()

	c.stats.CollectionsPerformed++

	q := newEphemeronQueue()
	c.markRoots(q)
	c.resolveEphemerons(q)

	condemned := c.condemnUnmarked()
	if len(condemned) == 0 {
		return
	}

	// Finalizers run with the whole graph intact. Nothing has been freed
	// yet, so a finalizer may read any managed data, including data that is
	// itself condemned.
	for _, cd := range condemned {
		if f, ok := cd.rec.data.(Finalizer); ok {
			f.Finalize()
		}
	}

	// Mark again from scratch. A finalizer that re-established a strong
	// handle raised some record's root count; that record is marked here
	// and survives the sweep (resurrection).
	q = newEphemeronQueue()
	c.markRoots(q)
	c.resolveEphemerons(q)

	c.sweep(condemned)
}

// markRoots walks the full chain, tracing every record that has live strong
// handles and gathering the ephemeron pairs reachable from it.
func (c *Context) markRoots(q *EphemeronQueue) {
	for rec := c.head; rec != nil; rec = rec.header.next {
		if rec.header.roots() > 0 {
			rec.trace()
			q.descend(rec)
		}
	}
}

// resolveEphemerons drives the worklist to a fixed point. Marking a value
// may append further pairs, so the slice grows while it is walked by index;
// this is a growing loop, not a fixed-size pass.
//
// A key counts as reachable if it is directly marked, or if its payload
// reports itself as an already resolved ephemeron value; the latter is what
// lets chained ephemerons resolve.
func (c *Context) resolveEphemerons(q *EphemeronQueue) {
	for i := 0; i < len(q.pairs); i++ {
		p := q.pairs[i]
		keyReachable := p.key.header.marked() ||
			(p.key.alive() && p.key.data.IsMarkedEphemeron())
		if keyReachable && p.value.alive() && !p.value.header.marked() {
			p.value.trace()
			q.descend(p.value)
		}
	}
}

// condemnUnmarked walks the chain a second time: marked records are
// reachable, so their mark bit is cleared for the next cycle and they stay;
// unmarked records are collected together with their incoming slot.
func (c *Context) condemnUnmarked() []condemnedRecord {
	var condemned []condemnedRecord
	slot := &c.head
	for {
		rec := *slot
		if rec == nil {
			break
		}
		if rec.header.marked() {
			rec.header.unmark()
		} else {
			condemned = append(condemned, condemnedRecord{slot: slot, rec: rec})
		}
		slot = &rec.header.next
	}
	return condemned
}

// sweep deallocates every condemned record the re-mark pass did not
// resurrect. It walks tail to head: a record's slot may live inside another
// condemned record's header, and tail-to-head order guarantees the slot is
// written through before that record is cleared.
func (c *Context) sweep(condemned []condemnedRecord) {
	c.sweeping = true
	defer func() { c.sweeping = false }()

	for i := len(condemned) - 1; i >= 0; i-- {
		cd := condemned[i]
		if cd.rec.header.marked() {
			continue // resurrected by a finalizer
		}
		*cd.slot = cd.rec.header.next
		c.stats.BytesAllocated -= cd.rec.size
		cd.rec.data = nil // the freed signal weak handles test
		cd.rec.header.next = nil
	}
}
