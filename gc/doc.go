// Package gc implements an embeddable tracing garbage collector with
// cycle-safe managed handles for code that otherwise manages memory by hand.
//
// # Overview
//
// The collector gives reference-counted ergonomics (strong handles that keep
// a value alive, weak handles that do not) while also reclaiming cyclic
// structures that ownership counting alone can never free. Every managed
// value lives in a record on an intrusive per-context chain; a mark-and-sweep
// pass over that chain, driven by per-record root counts, is the single
// deallocation path in the system.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Context: one managed heap (chain, accounting, collection policy)
//   - Handle: a strong, root-counted reference to a managed record
//   - Weak: a reference that never keeps its record alive
//   - Pair: an ephemeron (key/value association; the value is reachable
//     only while its key is)
//   - Traceable: the capability every stored payload type must implement
//   - Finalizer: the optional finalization hook run before deallocation
//
// # The Capability Contract
//
// Traceable is a manual, caller-certified contract: by implementing it, a
// type asserts "I correctly enumerate every managed reference I contain".
// The collector cannot verify this. Forgetting a reference in Trace frees
// data that is still reachable; forgetting one in Root/Unroot corrupts root
// counts. Hand-written implementations deserve the same review weight an
// unsafe block would get. Embed Leaf for payload types that hold no managed
// references at all.
//
// Handles implement Traceable themselves, so compound payloads delegate
// field by field:
//
//	type Node struct {
//	    Value int
//	    Next  gc.Handle[*Node]
//	}
//
//	func (n *Node) Trace()                        { n.Next.Trace() }
//	func (n *Node) WeakTrace(q *gc.EphemeronQueue) { n.Next.WeakTrace(q) }
//	func (n *Node) IsMarkedEphemeron() bool        { return false }
//	func (n *Node) Root()                          { n.Next.Root() }
//	func (n *Node) Unroot()                        { n.Next.Unroot() }
//
// # Collection Algorithm
//
// A collection is one synchronous pass:
//
//  1. Mark: every record with a non-zero root count is traced, marking
//     everything transitively reachable and gathering ephemeron pairs.
//  2. Ephemeron resolution: a growing fixed-point loop marks each pair's
//     value once its key is proven reachable.
//  3. Condemn: a second chain walk unmarks survivors and collects unmarked
//     records, remembering the exact chain slot that points at each.
//  4. Finalize: condemned payloads implementing Finalizer run their hook
//     exactly once, with the whole graph still intact.
//  5. Re-mark: the mark and resolution passes run again, so a finalizer
//     that re-established a strong handle resurrects its record.
//  6. Sweep: condemned records that are still unmarked are spliced out of
//     the chain, tail to head, and their payloads released.
//
// Collections run automatically when allocation crosses the configured
// threshold (see Options), or on demand via Context.ForceCollect.
//
// # Handle Discipline
//
// Handles are plain values. Copying one with = does not touch the root
// count; that is exactly what a reference stored inside a managed payload
// should be (the payload's Trace keeps it alive, not a root). A handle that
// must independently keep its record alive is created with New, Clone, or
// Weak.Upgrade, and gives that claim back with Release. New transfers
// ownership of the payload's own handles to the heap by calling Unroot on
// the stored value.
//
// # Error Handling
//
// Invariant violations are fatal and panic immediately rather than corrupt
// collector state: root-count overflow, a collection triggered while one is
// already running, allocation from inside a running collection, and
// dereferencing an undefined handle, a handle during the sweep phase, or a
// handle whose record was swept. Absent values are silent: Weak.Value and
// Pair.Value return ok=false once their target is gone, and forcing a
// collection with nothing to reclaim does nothing. Releasing more handles
// than were created is not guarded; it is a caller invariant violation.
//
// # Thread Safety
//
// A Context and everything allocated from it belong to a single goroutine.
// Contexts are fully independent; handles and records never cross from one
// context to another. No locking exists or is needed. Marking recurses with
// call-stack depth proportional to the depth of the reachable structure, so
// pathologically deep graphs can exhaust the stack; this is a documented
// limitation, not a guarded one.
package gc
