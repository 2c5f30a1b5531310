package aspath

import "go.uber.org/zap"

// Prepend prepends k copies of asn to p's leftmost position. The copies
// are added in runs of at most SegMaxLen-1: fused into a leading
// AS_SEQUENCE segment while it has room, the rest as new AS_SEQUENCE
// segments ahead of it. The result is then normalized, which merges all
// of these adjacent AS_SEQUENCE runs into one segment; over-long segments
// are split only at emission. k must be >= 0; k == 0 returns p
// unchanged. Grounded on aspath_add_one_as / aspath_prepend in the
// original C aspath engine.
func (s *Subsystem) Prepend(p *Path, asn ASN, k int) (*Path, error) {
	if k < 0 {
		return nil, ErrMalformedPath
	}
	if k == 0 {
		return p, nil
	}

	draft := p.clone()
	head := draft.body

	if head != nil && head.typ == AS_SEQUENCE {
		room := SegMaxLen - 1 - len(head.members)
		if room > 0 {
			fuse := k
			if fuse > room {
				fuse = room
			}
			if err := head.prependASNs(asn, fuse); err != nil {
				return nil, err
			}
			k -= fuse
		}
	}

	for k > 0 {
		n := k
		if n > SegMaxLen-1 {
			n = SegMaxLen - 1
		}
		seg := newSegment(AS_SEQUENCE, n)
		for i := range seg.members {
			seg.members[i] = asn
		}
		seg.next = head
		head = seg
		k -= n
	}

	draft.body = normalize(head)
	return s.Intern(draft), nil
}

// AddSequence prepends asns, in order, as a new leftmost AS_SEQUENCE run,
// fusing into an existing leading AS_SEQUENCE segment when one is present
// (normalize merges the two even when their combined length reaches
// SegMaxLen). Used when originating or re-advertising a route with more
// than one AS to add at once. Adding SegMaxLen or more asns in one call
// returns ErrOverflow.
func (s *Subsystem) AddSequence(p *Path, asns []ASN) (*Path, error) {
	return s.addSequence(p, asns, AS_SEQUENCE)
}

// AddConfedSequence is AddSequence for AS_CONFED_SEQUENCE, used when
// propagating a route within a confederation (RFC 5065 §4). A leading
// AS_CONFED_SEQUENCE is extended only while the combined length stays
// below SegMaxLen; otherwise a new segment is pushed ahead of it.
func (s *Subsystem) AddConfedSequence(p *Path, asns []ASN) (*Path, error) {
	return s.addSequence(p, asns, AS_CONFED_SEQUENCE)
}

func (s *Subsystem) addSequence(p *Path, asns []ASN, typ SegmentType) (*Path, error) {
	if len(asns) == 0 {
		return p, nil
	}
	if len(asns) >= SegMaxLen {
		return nil, ErrOverflow
	}

	draft := p.clone()
	head := draft.body

	if head != nil && head.typ == typ && len(head.members)+len(asns) < SegMaxLen {
		head.members = append(append([]ASN(nil), asns...), head.members...)
	} else {
		seg := &segment{typ: typ, members: append([]ASN(nil), asns...)}
		seg.next = head
		head = seg
	}

	draft.body = normalize(head)
	return s.Intern(draft), nil
}

// concatChains joins b onto the tail of a in place and returns the (possibly
// new) head; a nil side is simply the other side. It performs no merging of
// its own — callers normalize the result, which is what fuses an AS_SEQUENCE
// tail in a with an AS_SEQUENCE head in b into one segment.
func concatChains(a, b *segment) *segment {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	tail(a).next = b
	return a
}

// PrependPath merges right onto the end of left (spec §4.5's two-path
// prepend primitive): left's chain followed by right's, normalized. Either
// side empty is the identity — the other path is returned unchanged. A
// trailing AS_SEQUENCE in left and a leading AS_SEQUENCE in right fuse into
// one segment because that is what normalize's merge pass does to any
// adjacent AS_SEQUENCE pair; there is no separate fuse-or-concatenate
// branch. Grounded on bgp_aspath.c:aspath_prepend.
func (s *Subsystem) PrependPath(left, right *Path) *Path {
	if left.IsEmpty() {
		return right
	}
	if right.IsEmpty() {
		return left
	}
	merged := concatChains(dupChain(left.segments()), dupChain(right.segments()))
	return s.Intern(newDraft(normalize(merged)))
}

// walkCursor tracks a position within a segment chain at asn granularity,
// used by Aggregate to find the common leading run between two paths even
// when it straddles a segment boundary.
type walkCursor struct {
	seg *segment
	idx int
}

func (c *walkCursor) current() (ASN, SegmentType, bool) {
	if c.seg == nil {
		return 0, 0, false
	}
	return c.seg.members[c.idx], c.seg.typ, true
}

func (c *walkCursor) advance() {
	c.idx++
	if c.idx >= len(c.seg.members) {
		c.seg = c.seg.next
		c.idx = 0
	}
}

// Aggregate computes the AS_PATH attribute for a route formed by
// aggregating a and b (RFC 4271 §9.2.2.2): the common leading asns (in
// order, matched one at a time so a run can straddle a segment boundary)
// followed by a single trailing AS_SET holding every remaining asn from
// both paths, deduplicated. Grounded on aspath_aggregate in the original
// C implementation.
func (s *Subsystem) Aggregate(a, b *Path) *Path {
	ca := &walkCursor{seg: a.segments()}
	cb := &walkCursor{seg: b.segments()}

	var head, last *segment
	appendSeg := func(seg *segment) {
		if head == nil {
			head = seg
		} else {
			last.next = seg
		}
		last = seg
	}

	var curType SegmentType
	var curMembers []ASN
	flush := func() {
		if len(curMembers) > 0 {
			appendSeg(&segment{typ: curType, members: curMembers})
			curMembers = nil
		}
	}

	for {
		va, ta, oka := ca.current()
		vb, tb, okb := cb.current()
		if !oka || !okb || ta != tb || va != vb {
			break
		}
		if len(curMembers) > 0 && curType != ta {
			flush()
		}
		curType = ta
		curMembers = append(curMembers, va)
		ca.advance()
		cb.advance()
	}
	flush()

	var tailSet []ASN
	seen := make(map[ASN]bool)
	collect := func(c *walkCursor) {
		for {
			v, _, ok := c.current()
			if !ok {
				return
			}
			if !seen[v] {
				seen[v] = true
				tailSet = append(tailSet, v)
			}
			c.advance()
		}
	}
	collect(ca)
	collect(cb)
	if len(tailSet) > 0 {
		appendSeg(&segment{typ: AS_SET, members: tailSet})
	}

	return s.Intern(newDraft(normalize(head)))
}

// truncateJoinCost reports the per-member hop cost a segment type
// contributes while walking left for TruncateJoin: one per member for the
// two sequence types (so a cut can land mid-segment) and one for the
// whole segment for the two set types (a set is taken whole or not at
// all). This mirrors aspath_truncateathopsandjoin in the original C
// source, which deliberately does NOT distinguish confederation segments
// from their non-confederation counterparts for this walk — unlike the
// public CountHops/CountConfeds, which do.
func truncateJoinCost(typ SegmentType) (perMember bool) {
	return typ == AS_SEQUENCE || typ == AS_CONFED_SEQUENCE
}

// TruncateJoin truncates left to its first hops hops (by the
// truncateJoinCost walk above) and appends a copy of right's full chain
// in its place. If the cut point would fall in the middle of an
// AS_CONFED_SEQUENCE segment — a confederation sequence can only be
// taken whole or dropped whole, never bisected — the operation fails
// soft: left is returned unchanged and right is discarded, with a debug
// diagnostic logged. Grounded on aspath_truncateathopsandjoin.
func (s *Subsystem) TruncateJoin(left, right *Path, hops int) *Path {
	var outHead *segment
	appendSeg := func(seg *segment) {
		outHead = concatChains(outHead, seg)
	}

	remaining := hops
	for seg := left.segments(); seg != nil; seg = seg.next {
		if remaining <= 0 {
			break
		}

		if truncateJoinCost(seg.typ) {
			n := len(seg.members)
			if remaining >= n {
				appendSeg(&segment{typ: seg.typ, members: append([]ASN(nil), seg.members...)})
				remaining -= n
				continue
			}
			if seg.typ == AS_CONFED_SEQUENCE {
				s.log.Debug("truncate-join: cut point bisects an AS_CONFED_SEQUENCE segment, failing soft",
					zap.Int("hops", hops))
				return left
			}
			appendSeg(&segment{typ: seg.typ, members: append([]ASN(nil), seg.members[:remaining]...)})
			remaining = 0
			break
		}

		// set types: taken whole, costing exactly one hop, or not at all.
		appendSeg(&segment{typ: seg.typ, members: append([]ASN(nil), seg.members...)})
		remaining--
	}

	appendSeg(dupChain(right.segments()))

	return s.Intern(newDraft(normalize(outHead)))
}
