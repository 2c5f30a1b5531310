package aspath

import "fmt"

// SegmentType tags a path segment. Values match the RFC 4271 wire encoding
// so the codec can cast directly.
type SegmentType uint8

const (
	AS_SET             SegmentType = 1
	AS_SEQUENCE        SegmentType = 2
	AS_CONFED_SEQUENCE SegmentType = 3
	AS_CONFED_SET      SegmentType = 4
)

func (t SegmentType) String() string {
	switch t {
	case AS_SET:
		return "AS_SET"
	case AS_SEQUENCE:
		return "AS_SEQUENCE"
	case AS_CONFED_SEQUENCE:
		return "AS_CONFED_SEQUENCE"
	case AS_CONFED_SET:
		return "AS_CONFED_SET"
	default:
		return fmt.Sprintf("SegmentType(%d)", uint8(t))
	}
}

// ordered reports whether members of this segment type carry positional
// meaning (AS_SEQUENCE, AS_CONFED_SEQUENCE) as opposed to set membership
// (AS_SET, AS_CONFED_SET).
func (t SegmentType) ordered() bool {
	return t == AS_SEQUENCE || t == AS_CONFED_SEQUENCE
}

func (t SegmentType) confed() bool {
	return t == AS_CONFED_SEQUENCE || t == AS_CONFED_SET
}

// segment is one node of the singly-linked chain that makes up a path
// body. members is owned exclusively by its segment: callers never retain
// a reference to it after handing it to appendASNs or newSegment.
type segment struct {
	typ     SegmentType
	members []ASN
	next    *segment
}

// newSegment allocates a segment of the given type with a zero-initialized
// member array of the given length (no array at all when length is 0).
func newSegment(typ SegmentType, length int) *segment {
	s := &segment{typ: typ}
	if length > 0 {
		s.members = make([]ASN, length)
	}
	return s
}

// dup duplicates a single segment (not its successor): a fresh member
// array, same type, next left nil.
func (s *segment) dup() *segment {
	if s == nil {
		return nil
	}
	d := &segment{typ: s.typ}
	if len(s.members) > 0 {
		d.members = append([]ASN(nil), s.members...)
	}
	return d
}

// dupChain duplicates an entire chain starting at head.
func dupChain(head *segment) *segment {
	if head == nil {
		return nil
	}
	newHead := head.dup()
	dst := newHead
	for src := head.next; src != nil; src = src.next {
		dst.next = src.dup()
		dst = dst.next
	}
	return newHead
}

// appendASNs appends a copy of asns to the segment's member array in
// place. The caller's backing array is never retained.
func (s *segment) appendASNs(asns []ASN) {
	if len(asns) == 0 {
		return
	}
	s.members = append(s.members, asns...)
}

// prependASNs prepends k copies of asn at the segment's head, in place. Only
// k itself reaching SegMaxLen is refused (ErrOverflow); the resulting
// segment length is not bounded here; internally a segment may grow past
// SegMaxLen members, the codec splits it into multiple wire segments at
// emission time instead (spec §3).
func (s *segment) prependASNs(asn ASN, k int) error {
	if k <= 0 {
		return nil
	}
	if k >= SegMaxLen {
		return ErrOverflow
	}
	prefix := make([]ASN, k)
	for i := range prefix {
		prefix[i] = asn
	}
	s.members = append(prefix, s.members...)
	return nil
}

// chainLength returns the number of segments in the chain.
func chainLength(head *segment) int {
	n := 0
	for s := head; s != nil; s = s.next {
		n++
	}
	return n
}

// tail returns the last segment in the chain, or nil for an empty chain.
func tail(head *segment) *segment {
	if head == nil {
		return nil
	}
	s := head
	for s.next != nil {
		s = s.next
	}
	return s
}

// structEqual reports structural equality of two normalized chains: same
// length, same type and member array per segment in order. Both inputs are
// expected to already be normalized; this is the intern store's equality
// callback (spec §4.4).
func structEqual(a, b *segment) bool {
	for a != nil && b != nil {
		if a.typ != b.typ || len(a.members) != len(b.members) {
			return false
		}
		for i := range a.members {
			if a.members[i] != b.members[i] {
				return false
			}
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}
