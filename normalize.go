package aspath

import "sort"

// packable reports whether adjacent segments a and b may be merged into
// one without changing meaning: both AS_SEQUENCE. The wire-length
// constraint (combined length <= SegMaxLen) is a codec-emission concern,
// not a normalization one (spec §4.2): canonical form does not depend on
// wire encoding.
func packable(a, b *segment) bool {
	return a.typ == AS_SEQUENCE && b.typ == AS_SEQUENCE
}

// normalize canonicalizes a chain in place and returns its (possibly new)
// head:
//
//  1. segments of an unordered type have their members sorted ascending
//     (duplicates survive the sort; aggregator dedup is a separate
//     concern, see aggregate).
//  2. adjacent packable segments are merged, repeatedly, until no further
//     merge applies.
//
// Segments with a zero-length member array never survive normalization
// (spec §3: "a segment with length 0 never appears in an emitted
// normalized chain"); normalize is idempotent (spec §8 property 3).
func normalize(head *segment) *segment {
	head = dropEmpty(head)

	for s := head; s != nil; s = s.next {
		if !s.typ.ordered() {
			sort.Slice(s.members, func(i, j int) bool { return s.members[i] < s.members[j] })
		}
	}

	for s := head; s != nil; s = s.next {
		for s.next != nil && packable(s, s.next) {
			s.members = append(s.members, s.next.members...)
			s.next = s.next.next
		}
	}

	return head
}

// dropEmpty removes every segment whose member array is empty from the
// chain, preserving order.
func dropEmpty(head *segment) *segment {
	for head != nil && len(head.members) == 0 {
		head = head.next
	}
	if head == nil {
		return nil
	}
	for s := head; s.next != nil; {
		if len(s.next.members) == 0 {
			s.next = s.next.next
		} else {
			s = s.next
		}
	}
	return head
}
