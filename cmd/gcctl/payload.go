package main

import (
	"github.com/ssrlive/gogc/gc"
)

// Payload types used by the workload commands. Each is a reference
// implementation of the Traceable contract.

// item is a leaf payload with optional finalization accounting.
type item struct {
	gc.Leaf
	id         int
	onFinalize func()
}

func (it *item) Finalize() {
	if it.onFinalize != nil {
		it.onFinalize()
	}
}

// node is a graph node with one managed edge, used to build cycles and
// chains.
type node struct {
	id   int
	next gc.Handle[*node]
}

func (n *node) Trace()                         { n.next.Trace() }
func (n *node) WeakTrace(q *gc.EphemeronQueue) { n.next.WeakTrace(q) }
func (n *node) IsMarkedEphemeron() bool        { return false }
func (n *node) Root()                          { n.next.Root() }
func (n *node) Unroot()                        { n.next.Unroot() }
