package aspath

// Path wraps an AS_PATH segment chain with a reference count and a cached
// printable form (spec §3). Once interned, a Path is immutable: every
// mutating operation on a Subsystem builds a fresh draft, normalizes it
// and returns the interned result rather than modifying a Path in place.
// A nil body represents the
// empty path, which is itself interned and first-class.
type Path struct {
	body *segment

	// cachedString and cachedMode memoize (*Subsystem).ToString:
	// recomputed whenever either the body changes (a fresh draft always
	// starts with cachedString nil) or the owning Subsystem's display
	// mode changes.
	cachedString *string
	cachedMode   DisplayMode

	refcount uint32
}

// newDraft wraps body in a fresh, uninterned Path with refcount 0.
func newDraft(body *segment) *Path {
	return &Path{body: body}
}

// IsEmpty reports whether p carries no segments.
func (p *Path) IsEmpty() bool {
	return p == nil || p.body == nil
}

// Refcount returns p's current reference count. Intended for tests and
// diagnostics, not for production control flow.
func (p *Path) Refcount() uint32 {
	if p == nil {
		return 0
	}
	return p.refcount
}

// clone produces an uninterned, deep copy of p's chain (cached string not
// carried over, since it will need recomputing after whatever mutation the
// caller is about to perform).
func (p *Path) clone() *Path {
	if p == nil {
		return newDraft(nil)
	}
	return newDraft(dupChain(p.body))
}
