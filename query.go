package aspath

// LoopCheck returns the total number of occurrences of asn across every
// segment of p.
func LoopCheck(p *Path, asn ASN) int {
	n := 0
	for s := p.segments(); s != nil; s = s.next {
		for _, m := range s.members {
			if m == asn {
				n++
			}
		}
	}
	return n
}

// FirstASIs reports whether p's leftmost segment is AS_SEQUENCE and its
// first member equals asn.
func FirstASIs(p *Path, asn ASN) bool {
	s := p.segments()
	return s != nil && s.typ == AS_SEQUENCE && len(s.members) > 0 && s.members[0] == asn
}

// LeftmostEqual skips any leading confederation segments and reports
// whether both a and b then begin with an AS_SEQUENCE segment whose first
// members are equal.
func LeftmostEqual(a, b *Path) bool {
	sa := skipLeadingConfed(a.segments())
	sb := skipLeadingConfed(b.segments())
	return firstMemberEqual(sa, sb, AS_SEQUENCE)
}

// LeftmostEqualConfed reports whether both a and b begin (with no
// skipping) with an AS_CONFED_SEQUENCE segment whose first members are
// equal.
func LeftmostEqualConfed(a, b *Path) bool {
	return firstMemberEqual(a.segments(), b.segments(), AS_CONFED_SEQUENCE)
}

func firstMemberEqual(sa, sb *segment, want SegmentType) bool {
	if sa == nil || sb == nil || sa.typ != want || sb.typ != want {
		return false
	}
	if len(sa.members) == 0 || len(sb.members) == 0 {
		return false
	}
	return sa.members[0] == sb.members[0]
}

func skipLeadingConfed(s *segment) *segment {
	for s != nil && s.typ.confed() {
		s = s.next
	}
	return s
}

// AllPrivate reports whether every asn in every segment of p lies within
// the RFC 6996 private AS range. The empty path reports false.
func AllPrivate(p *Path) bool {
	any := false
	for s := p.segments(); s != nil; s = s.next {
		for _, m := range s.members {
			any = true
			if !m.private() {
				return false
			}
		}
	}
	return any
}

// CountHops sums the length of each AS_SEQUENCE segment plus one for each
// AS_SET segment; confederation segments contribute zero. This is the
// standard "AS hops" metric used in route selection (spec §4.5).
func CountHops(p *Path) int {
	n := 0
	for s := p.segments(); s != nil; s = s.next {
		switch s.typ {
		case AS_SEQUENCE:
			n += len(s.members)
		case AS_SET:
			n++
		}
	}
	return n
}

// CountConfeds sums the length of each AS_CONFED_SEQUENCE segment plus one
// for each AS_CONFED_SET segment.
func CountConfeds(p *Path) int {
	n := 0
	for s := p.segments(); s != nil; s = s.next {
		switch s.typ {
		case AS_CONFED_SEQUENCE:
			n += len(s.members)
		case AS_CONFED_SET:
			n++
		}
	}
	return n
}

// CountASNs returns the total number of asn members across every segment.
func CountASNs(p *Path) int {
	n := 0
	for s := p.segments(); s != nil; s = s.next {
		n += len(s.members)
	}
	return n
}

// CountWideASNs returns the number of asn members whose value exceeds
// ASMax16 (i.e. that require four-octet representation).
func CountWideASNs(p *Path) int {
	n := 0
	for s := p.segments(); s != nil; s = s.next {
		for _, m := range s.members {
			if m > ASMax16 {
				n++
			}
		}
	}
	return n
}

// HighestPublic returns the maximum asn in p that is not within the
// private range, or zero if none.
func HighestPublic(p *Path) ASN {
	var max ASN
	for s := p.segments(); s != nil; s = s.next {
		for _, m := range s.members {
			if !m.private() && m > max {
				max = m
			}
		}
	}
	return max
}

// segments exposes p's chain head for the query functions above; p itself
// may be nil (the empty path).
func (p *Path) segments() *segment {
	if p == nil {
		return nil
	}
	return p.body
}

// StripLeadingConfed drops the leftmost segment if it is AS_CONFED_SEQUENCE,
// along with any immediately following confederation segments of either
// confed type, per RFC 5065 §6.1. A non-confederation-sequence head (an
// AS_SEQUENCE, AS_SET, or a leading AS_CONFED_SET on its own) is left
// untouched.
func (s *Subsystem) StripLeadingConfed(p *Path) *Path {
	head := p.segments()
	if head == nil || head.typ != AS_CONFED_SEQUENCE {
		return p
	}
	cur := head
	for cur != nil && cur.typ.confed() {
		cur = cur.next
	}
	draft := newDraft(dupChain(cur))
	draft.body = normalize(draft.body)
	return s.Intern(draft)
}

// StripAllConfed removes every confederation segment (either type) from
// p's chain and normalizes the remainder. If p contains no confederation
// segment at all, p itself is returned unchanged (no copy, no new intern).
func (s *Subsystem) StripAllConfed(p *Path) *Path {
	hasConfed := false
	for seg := p.segments(); seg != nil; seg = seg.next {
		if seg.typ.confed() {
			hasConfed = true
			break
		}
	}
	if !hasConfed {
		return p
	}

	dup := dupChain(p.segments())
	var head, last *segment
	for seg := dup; seg != nil; seg = seg.next {
		if seg.typ.confed() {
			continue
		}
		fresh := &segment{typ: seg.typ, members: seg.members}
		if head == nil {
			head = fresh
		} else {
			last.next = fresh
		}
		last = fresh
	}

	draft := newDraft(normalize(head))
	return s.Intern(draft)
}
