package arena

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestList_Append_GrowsAsSingleAllocation(t *testing.T) {
	root := New(nil)
	l := NewList[byte](root, 0)

	for i := range 10 {
		l.Append(byte('a' + i))

		if got := root.Stats().Allocs; got != 1 {
			t.Fatalf("after %d appends: expected 1 allocation, got %d", i+1, got)
		}
	}

	if diff := cmp.Diff([]byte("abcdefghij"), l.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	if got := root.Stats().Bytes; got != cap(l.Items()) {
		t.Errorf("expected %d tracked bytes, got %d", cap(l.Items()), got)
	}
}

func TestList_Free(t *testing.T) {
	root := New(nil)
	l := NewList[int](root, 2)

	l.Append(1)
	l.Append(2)
	l.Append(3)
	l.Free()

	if l.Len() != 0 {
		t.Errorf("expected empty list, got %d items", l.Len())
	}

	if got := root.Stats(); got != (Stats{}) {
		t.Errorf("root stats = %+v, want empty", got)
	}
}

func TestList_Empty_NoAllocation(t *testing.T) {
	root := New(nil)
	l := NewList[string](root, 0)

	if l.Items() != nil {
		t.Errorf("expected nil items, got %v", l.Items())
	}

	l.Free()

	if got := root.Stats(); got != (Stats{}) {
		t.Errorf("root stats = %+v, want empty", got)
	}
}

func TestList_ReleasedWithArena(t *testing.T) {
	root := New(nil)
	a := New(root)

	l := NewList[uint16](a, 0)
	l.Append(7)

	a.Release()

	if got := root.Stats(); got != (Stats{}) {
		t.Errorf("root stats = %+v, want empty", got)
	}
}

func TestList_ZeroSize_TrackedPerList(t *testing.T) {
	root := New(nil)
	a := NewList[struct{}](root, 0)
	b := NewList[struct{}](root, 0)

	for range 9 {
		a.Append(struct{}{})
		b.Append(struct{}{})
	}

	if got := root.Stats().Allocs; got != 2 {
		t.Fatalf("expected 2 allocations, got %d", got)
	}

	a.Free()

	if got := root.Stats().Allocs; got != 1 {
		t.Errorf("after freeing one list: expected 1 allocation, got %d", got)
	}

	root.Release()

	if got := root.Stats(); got != (Stats{}) {
		t.Errorf("root stats = %+v, want empty", got)
	}
}
