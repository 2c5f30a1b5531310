package aspath

import (
	"sync"

	"go.uber.org/zap"
)

// Subsystem is the process-wide (or per-BGP-instance) AS-path engine: the
// intern store and the asn display mode, the two pieces of state spec §9
// calls out as "replaced by an explicit 'path subsystem' value created at
// BGP initialization and passed into operations." All of a Subsystem's
// methods are goroutine-safe: intern-store operations serialize on the
// store's single coarse mutex (spec §5), and the display mode is guarded
// by its own RWMutex.
type Subsystem struct {
	store *internStore

	modeMu sync.RWMutex
	mode   DisplayMode

	log *zap.Logger
}

// Option configures a Subsystem at construction time.
type Option func(*Subsystem)

// WithDisplayMode sets the initial asn display mode (default Plain).
func WithDisplayMode(mode DisplayMode) Option {
	return func(s *Subsystem) { s.mode = mode }
}

// WithBuckets sets the intern store's initial bucket-count hint (default
// ≈2^15 per spec §4.6).
func WithBuckets(n int) Option {
	return func(s *Subsystem) { s.store = newInternStore(n) }
}

// WithLogger attaches a *zap.Logger for debug diagnostics (the
// truncate-join confederation fail-soft case, spec §4.5).
// InternalConsistency violations panic without going through this
// logger. The default is
// zap.NewNop(), so a Subsystem is silent unless a logger is supplied,
// matching the teacher package's logging-free default.
func WithLogger(log *zap.Logger) Option {
	return func(s *Subsystem) { s.log = log }
}

// New creates a Subsystem: an empty intern store (with the first-class
// empty Path already interned) and the given options applied.
func New(opts ...Option) *Subsystem {
	s := &Subsystem{
		mode: Plain,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = newInternStore(defaultBuckets)
	}
	return s
}

// Empty returns the interned, first-class empty Path.
func (s *Subsystem) Empty() *Path {
	return s.store.empty
}

// DisplayMode returns the subsystem's current asn display mode.
func (s *Subsystem) DisplayMode() DisplayMode {
	s.modeMu.RLock()
	defer s.modeMu.RUnlock()
	return s.mode
}

// SetDisplayMode changes the subsystem's asn display mode. Every Path's
// cached string is mode-dependent, so existing Paths simply recompute
// their cached string (under the intern store's lock) the next time
// ToString is called against them; nothing is eagerly invalidated here.
func (s *Subsystem) SetDisplayMode(mode DisplayMode) {
	s.modeMu.Lock()
	defer s.modeMu.Unlock()
	s.mode = mode
}

// Intern hashes and looks up draft: a structurally equal Path already
// interned is returned (draft discarded); otherwise draft is installed and
// returned. draft must not itself already be interned.
func (s *Subsystem) Intern(draft *Path) *Path {
	return s.store.intern(draft)
}

// Retain increments p's refcount.
func (s *Subsystem) Retain(p *Path) { s.store.retain(p) }

// Release decrements p's refcount, freeing it from the store at zero.
func (s *Subsystem) Release(p *Path) { s.store.release(p) }

// Count returns the number of distinct interned paths.
func (s *Subsystem) Count() int { return s.store.census() }
