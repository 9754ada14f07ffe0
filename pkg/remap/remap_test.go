package remap

import "testing"

func TestAssignFirstSeenOrder(t *testing.T) {
	r := New()

	if got := r.Assign("producer_b"); got != 1 {
		t.Errorf("first external id should map to 1, got %d", got)
	}
	if got := r.Assign("producer_a"); got != 2 {
		t.Errorf("second external id should map to 2, got %d", got)
	}
	// Repeats keep their original assignment.
	if got := r.Assign("producer_b"); got != 1 {
		t.Errorf("repeat assignment changed id: got %d, want 1", got)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestAssignIsBijection(t *testing.T) {
	externals := []string{"p3", "p1", "p7", "p2", "p9"}
	r := New()

	seen := make(map[int]string)
	for _, ext := range externals {
		id := r.Assign(ext)
		if prev, dup := seen[id]; dup {
			t.Fatalf("internal id %d assigned to both %q and %q", id, prev, ext)
		}
		seen[id] = ext
	}

	for want := 1; want <= len(externals); want++ {
		if _, ok := seen[want]; !ok {
			t.Errorf("internal id %d never assigned", want)
		}
	}

	order := r.Externals()
	if order[0] != "p3" {
		t.Errorf("first-seen external should map to 1, got %q", order[0])
	}
}

func TestLookup(t *testing.T) {
	r := New()
	r.Assign("known")

	if id, ok := r.Lookup("known"); !ok || id != 1 {
		t.Errorf("Lookup(known) = (%d, %v), want (1, true)", id, ok)
	}
	if _, ok := r.Lookup("unknown"); ok {
		t.Error("Lookup(unknown) should report not found")
	}
}
