package aspath

import "errors"

// Sentinel error kinds reported to callers per spec §7. Wrap with fmt.Errorf
// and %w when more context is useful; callers should use errors.Is against
// these values rather than string-matching.
var (
	// ErrMalformedPath is returned by Parse when the wire bytes cannot be a
	// valid AS_PATH attribute body: an odd outer length, a segment header
	// that runs past the declared outer length, a zero-length segment, or
	// an unrecognized segment type.
	ErrMalformedPath = errors.New("aspath: malformed AS_PATH attribute")

	// ErrOverflow is returned by prepend operations asked to add SegMaxLen
	// or more asns in a single call. The segment or path is left
	// unchanged. The resulting segment length is not itself capped; the
	// codec splits over-long segments at emission.
	ErrOverflow = errors.New("aspath: prepend would overflow segment length")

	// ErrMalformedInputString is returned by FromString on an unknown
	// token, an unbalanced bracket, or invalid asn numeric syntax.
	ErrMalformedInputString = errors.New("aspath: malformed AS_PATH text")
)

// consistencyError panics: InternalConsistency violations (emitting a
// non-normalized chain, interning an already-interned draft, releasing a
// Path below zero refcount, a wire_size/emit mismatch) are programmer
// errors, not input errors, and are fatal per spec §7.
func consistencyError(msg string) {
	panic("aspath: internal consistency violation: " + msg)
}
