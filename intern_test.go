package aspath

import "testing"

func TestInternDedupesStructurallyEqualPaths(t *testing.T) {
	store := newInternStore(16)

	a := newDraft(chain(seg(AS_SEQUENCE, 1, 2, 3)))
	b := newDraft(chain(seg(AS_SEQUENCE, 1, 2, 3)))

	pa := store.intern(a)
	pb := store.intern(b)

	if pa != pb {
		t.Fatal("structurally equal drafts should intern to the same *Path")
	}
	if pa.Refcount() != 2 {
		t.Fatalf("refcount = %d, want 2", pa.Refcount())
	}
}

func TestInternDistinctPaths(t *testing.T) {
	store := newInternStore(16)
	a := store.intern(newDraft(chain(seg(AS_SEQUENCE, 1))))
	b := store.intern(newDraft(chain(seg(AS_SEQUENCE, 2))))
	if a == b {
		t.Fatal("structurally distinct drafts must not share a *Path")
	}
}

func TestInternEmptyPathIsSingleton(t *testing.T) {
	store := newInternStore(16)
	a := store.intern(newDraft(nil))
	b := store.intern(newDraft(nil))
	if a != b || a != store.empty {
		t.Fatal("every empty draft must intern to the shared empty Path")
	}
}

func TestReleaseRemovesAtZeroRefcount(t *testing.T) {
	store := newInternStore(16)
	p := store.intern(newDraft(chain(seg(AS_SEQUENCE, 9))))
	before := store.census()
	store.release(p)
	if store.census() != before-1 {
		t.Fatalf("census = %d, want %d after releasing last reference", store.census(), before-1)
	}
	if p.body != nil {
		t.Fatal("a fully-released path should have its body cleared")
	}
}

func TestReleaseKeepsSharedPathAlive(t *testing.T) {
	store := newInternStore(16)
	p := store.intern(newDraft(chain(seg(AS_SEQUENCE, 9))))
	store.retain(p)
	before := store.census()
	store.release(p)
	if store.census() != before {
		t.Fatalf("census changed after releasing one of two references")
	}
	if p.Refcount() != 1 {
		t.Fatalf("refcount = %d, want 1", p.Refcount())
	}
}

func TestReleaseOnZeroRefcountPanics(t *testing.T) {
	store := newInternStore(16)
	p := store.intern(newDraft(chain(seg(AS_SEQUENCE, 9))))
	store.release(p)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic releasing an already-zero-refcount path")
		}
	}()
	store.release(p)
}

func TestInternAlreadyInternedPanics(t *testing.T) {
	store := newInternStore(16)
	p := store.intern(newDraft(chain(seg(AS_SEQUENCE, 9))))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic interning an already-interned path")
		}
	}()
	store.intern(p)
}
