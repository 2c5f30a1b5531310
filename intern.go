package aspath

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// defaultBuckets is the intern store's initial bucket-count hint (spec
// §4.6: "a sizeable bucket count (≈2^15)"). The store itself is backed by
// a Go map keyed on the 64-bit content hash, so this only sizes the
// initial allocation.
const defaultBuckets = 1 << 15

// internStore is the content-keyed intern table of spec §4.4. Keyed by the
// hash of a normalized body; entries within a bucket are disambiguated by
// structEqual. All mutating operations serialize on mu, matching the
// single-coarse-mutex model of spec §5.
type internStore struct {
	mu      sync.Mutex
	buckets map[uint64][]*Path
	count   int
	empty   *Path
}

func newInternStore(buckets int) *internStore {
	if buckets <= 0 {
		buckets = defaultBuckets
	}
	s := &internStore{
		buckets: make(map[uint64][]*Path, buckets),
	}
	s.empty = &Path{refcount: 1}
	s.buckets[hashBody(nil)] = []*Path{s.empty}
	s.count = 1
	return s
}

// hashBody computes the spec §4.4 content hash of a normalized chain: at
// each segment-type boundary (the first segment, or any segment whose
// type differs from its predecessor) the type byte is folded in; every
// segment folds in the sum of its members. Two normalized chains that
// compare structEqual always hash equal; the converse need not hold; the
// store resolves hash collisions with a full structEqual scan of the
// bucket, so only determinism (not collision-freedom) is required here.
//
// The hash primitive is xxhash (github.com/cespare/xxhash/v2), the same
// hash caddyserver-caddy wires in for its own content-addressed lookups (e.g. ETag generation), used here in place
// of a hand-rolled FNV accumulator.
func hashBody(head *segment) uint64 {
	d := xxhash.New()
	var buf [8]byte
	var prevType SegmentType
	first := true
	for s := head; s != nil; s = s.next {
		if first || s.typ != prevType {
			d.Write([]byte{byte(s.typ)})
			prevType = s.typ
			first = false
		}
		var sum uint64
		for _, m := range s.members {
			sum += uint64(m)
		}
		binary.BigEndian.PutUint64(buf[:], sum)
		d.Write(buf[:])
	}
	return d.Sum64()
}

// intern hashes and looks up draft's (already normalized) body. A
// structurally equal Path already in the store is returned with its
// refcount bumped and draft discarded; otherwise draft is installed with
// refcount 1 and returned. Interning an already-interned draft
// (refcount > 0) is a programmer error (spec §7 InternalConsistency).
func (s *internStore) intern(draft *Path) *Path {
	if draft.refcount != 0 {
		consistencyError("intern called on an already-interned path")
	}
	if draft.body == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.empty.refcount++
		return s.empty
	}

	h := hashBody(draft.body)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.buckets[h] {
		if structEqual(p.body, draft.body) {
			p.refcount++
			return p
		}
	}

	draft.refcount = 1
	s.buckets[h] = append(s.buckets[h], draft)
	s.count++
	return draft
}

// retain increments p's refcount.
func (s *internStore) retain(p *Path) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.refcount++
}

// release decrements p's refcount, removing and discarding the chain and
// cached string at zero. Releasing an already-zero Path is an
// InternalConsistency violation.
func (s *internStore) release(p *Path) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.refcount == 0 {
		consistencyError("release called on a path with refcount already zero")
	}
	p.refcount--
	if p.refcount > 0 || p == s.empty {
		return
	}

	h := hashBody(p.body)
	bucket := s.buckets[h]
	for i, q := range bucket {
		if q == p {
			bucket[i] = bucket[len(bucket)-1]
			s.buckets[h] = bucket[:len(bucket)-1]
			s.count--
			break
		}
	}
	p.body = nil
	p.cachedString = nil
}

// census returns the number of distinct interned paths.
func (s *internStore) census() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
