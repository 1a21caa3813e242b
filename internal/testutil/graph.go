// Package testutil provides managed payload types and graph builders shared
// by collector tests. These are reference Traceable implementations: each
// type enumerates exactly the managed references it contains, which is the
// contract production payload types must honor.
package testutil

import (
	"github.com/ssrlive/gogc/gc"
)

// Obj is a leaf payload with an optional finalization hook, for tests that
// only need identity and finalizer observation.
type Obj struct {
	gc.Leaf
	ID         int
	OnFinalize func()
}

func (o *Obj) Finalize() {
	if o.OnFinalize != nil {
		o.OnFinalize()
	}
}

// Node is a graph node with a single managed edge. Linking two nodes to each
// other builds the canonical two-node cycle that defeats ownership counting.
type Node struct {
	Value int
	Next  gc.Handle[*Node]
}

func (n *Node) Trace()                         { n.Next.Trace() }
func (n *Node) WeakTrace(q *gc.EphemeronQueue) { n.Next.WeakTrace(q) }
func (n *Node) IsMarkedEphemeron() bool        { return false }
func (n *Node) Root()                          { n.Next.Root() }
func (n *Node) Unroot()                        { n.Next.Unroot() }

// NewCycle allocates two nodes referencing each other and returns their
// strong handles.
func NewCycle(ctx *gc.Context, a, b int) (gc.Handle[*Node], gc.Handle[*Node]) {
	ha := gc.New(ctx, &Node{Value: a})
	hb := gc.New(ctx, &Node{Value: b})
	// Plain copies, not clones: graph edges carry no root contribution.
	ha.Get().Next = hb
	hb.Get().Next = ha
	return ha, hb
}

// Registry is a managed payload holding ephemeron pairs, standing in for a
// cache or finalization registry that lives in the managed graph.
type Registry struct {
	Pairs []gc.Pair[*Obj, *Obj]
}

func (r *Registry) Trace() {
	for i := range r.Pairs {
		r.Pairs[i].Trace()
	}
}

func (r *Registry) WeakTrace(q *gc.EphemeronQueue) {
	for i := range r.Pairs {
		r.Pairs[i].WeakTrace(q)
	}
}

func (r *Registry) IsMarkedEphemeron() bool { return false }

func (r *Registry) Root() {
	for i := range r.Pairs {
		r.Pairs[i].Root()
	}
}

func (r *Registry) Unroot() {
	for i := range r.Pairs {
		r.Pairs[i].Unroot()
	}
}

// Phoenix is a payload whose finalizer resurrects its own record: it
// upgrades a weak self-reference and parks the resulting strong handle in
// Saved, a caller-visible slot.
type Phoenix struct {
	gc.Leaf
	Self  gc.Weak[*Phoenix]
	Saved *gc.Handle[*Phoenix]
}

func (p *Phoenix) Finalize() {
	if h, ok := p.Self.Upgrade(); ok {
		*p.Saved = h
	}
}

// NewPhoenix allocates a Phoenix wired to resurrect itself into saved.
func NewPhoenix(ctx *gc.Context, saved *gc.Handle[*Phoenix]) gc.Handle[*Phoenix] {
	p := &Phoenix{Saved: saved}
	h := gc.New(ctx, p)
	p.Self = h.Weak()
	return h
}
