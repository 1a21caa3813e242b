package gc

import (
	"reflect"
	"unsafe"
)

// kind selects the initial root count of a record.
type kind int

const (
	kindStandard  kind = iota // born rooted (roots = 1)
	kindEphemeron             // born unrooted; liveness derived through a key
)

// object is a managed allocation record: header plus payload, identified by
// its address for the whole of its lifetime. A record belongs to exactly one
// context's chain from allocation until sweep unlinks it.
type object struct {
	header header
	ctx    *Context
	size   int
	// data is the stored payload. Sweep sets it to nil; nil data is the
	// record's freed signal, which weak handles use as their liveness check.
	data Traceable
}

func (o *object) alive() bool { return o.data != nil }

// trace marks the record and traces through its payload. The mark bit is
// what breaks cycles.
func (o *object) trace() {
	if !o.header.marked() {
		o.header.mark()
		o.data.Trace()
	}
}

// recordSize is the number of bytes a record charges against its context's
// collection threshold: the record bookkeeping plus the payload value it
// refers to.
func recordSize(data Traceable) int {
	sz := int(unsafe.Sizeof(object{}))
	switch v := reflect.ValueOf(data); {
	case v.Kind() == reflect.Pointer && !v.IsNil():
		sz += int(v.Elem().Type().Size())
	case v.IsValid():
		sz += int(v.Type().Size())
	}
	return sz
}
