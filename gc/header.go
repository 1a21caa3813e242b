package gc

// Header word layout. The top bit is the transient mark flag; every other
// bit counts live strong handles.
const (
	markMask  = uint64(1) << 63
	rootsMask = ^markMask
	rootsMax  = rootsMask
)

// header is the bookkeeping prefix of every managed record: the packed
// roots/mark word plus the intrusive chain link. next is ownership-neutral;
// the slot that points at a record (the chain head or a predecessor's next)
// is the only path sweep uses to unlink it.
type header struct {
	word uint64
	next *object
}

// newHeader returns the header of a standard record: unmarked, born rooted.
func newHeader() header { return header{word: 1} }

// newEphemeronHeader returns the header of an ephemeron-value record. Such a
// record is never directly rooted; its reachability is derived through its
// governing key.
func newEphemeronHeader() header { return header{} }

func (h *header) roots() uint64 { return h.word & rootsMask }

// incRoots saturates with a panic instead of wrapping into the mark bit.
// Wrapping would let a record with live strong handles be collected.
func (h *header) incRoots() {
	if h.word&rootsMask == rootsMax {
		panic("gc: roots counter overflow")
	}
	h.word++
}

// decRoots has no underflow guard; releasing a handle whose record already
// has zero roots is a caller invariant violation.
func (h *header) decRoots() { h.word-- }

func (h *header) marked() bool { return h.word&markMask != 0 }
func (h *header) mark()        { h.word |= markMask }
func (h *header) unmark()      { h.word &^= markMask }
