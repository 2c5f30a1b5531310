package aspath

import "testing"

func seg(typ SegmentType, members ...ASN) *segment {
	return &segment{typ: typ, members: members}
}

func chain(segs ...*segment) *segment {
	for i := 0; i+1 < len(segs); i++ {
		segs[i].next = segs[i+1]
	}
	if len(segs) == 0 {
		return nil
	}
	return segs[0]
}

func TestSegmentTypeProperties(t *testing.T) {
	if !AS_SEQUENCE.ordered() || !AS_CONFED_SEQUENCE.ordered() {
		t.Error("sequence types must be ordered")
	}
	if AS_SET.ordered() || AS_CONFED_SET.ordered() {
		t.Error("set types must not be ordered")
	}
	if !AS_CONFED_SEQUENCE.confed() || !AS_CONFED_SET.confed() {
		t.Error("confed types must report confed() true")
	}
	if AS_SEQUENCE.confed() || AS_SET.confed() {
		t.Error("non-confed types must report confed() false")
	}
}

func TestDupChain(t *testing.T) {
	head := chain(seg(AS_SEQUENCE, 1, 2), seg(AS_SET, 3, 4))
	dup := dupChain(head)
	if !structEqual(head, dup) {
		t.Fatalf("dup chain not structurally equal to original")
	}
	dup.members[0] = 99
	if head.members[0] == 99 {
		t.Fatal("dupChain shared backing array with original")
	}
}

func TestPrependASNsRefusesAtSegMaxLen(t *testing.T) {
	s := newSegment(AS_SEQUENCE, 0)
	if err := s.prependASNs(1, SegMaxLen); err == nil {
		t.Fatal("expected ErrOverflow for a single prepend of SegMaxLen asns")
	}
}

func TestPrependASNsAllowsGrowingPastSegMaxLen(t *testing.T) {
	// Internally a segment may exceed SegMaxLen members; only the emitted
	// wire segments are capped (the codec splits, see wire_test.go).
	s := newSegment(AS_SEQUENCE, SegMaxLen-1)
	if err := s.prependASNs(1, 1); err != nil {
		t.Fatalf("unexpected error growing a segment to exactly SegMaxLen: %v", err)
	}
	if len(s.members) != SegMaxLen {
		t.Fatalf("len = %d, want %d", len(s.members), SegMaxLen)
	}

	if err := s.prependASNs(2, 10); err != nil {
		t.Fatalf("unexpected error growing a segment past SegMaxLen: %v", err)
	}
	if len(s.members) != SegMaxLen+10 {
		t.Fatalf("len = %d, want %d", len(s.members), SegMaxLen+10)
	}
}

func TestChainLengthAndTail(t *testing.T) {
	head := chain(seg(AS_SEQUENCE, 1), seg(AS_SET, 2), seg(AS_CONFED_SEQUENCE, 3))
	if n := chainLength(head); n != 3 {
		t.Errorf("chainLength = %d, want 3", n)
	}
	if tl := tail(head); tl.typ != AS_CONFED_SEQUENCE {
		t.Errorf("tail type = %v, want AS_CONFED_SEQUENCE", tl.typ)
	}
	if tail(nil) != nil {
		t.Error("tail(nil) should be nil")
	}
}

func TestStructEqual(t *testing.T) {
	a := chain(seg(AS_SEQUENCE, 1, 2))
	b := chain(seg(AS_SEQUENCE, 1, 2))
	c := chain(seg(AS_SEQUENCE, 1, 3))
	if !structEqual(a, b) {
		t.Error("identical chains should be structEqual")
	}
	if structEqual(a, c) {
		t.Error("differing chains should not be structEqual")
	}
	if !structEqual(nil, nil) {
		t.Error("two nil chains should be structEqual")
	}
}
