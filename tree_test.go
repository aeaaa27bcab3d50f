package jsontoken

import "testing"

func mustParse(t *testing.T, input string, capacity int) *TokenStore {
	t.Helper()
	store := NewTokenStore(capacity)
	n := Parse(store, []byte(input))
	if n < 0 {
		t.Fatalf("parse %q failed: %d", input, n)
	}
	return store
}

func TestTreeNavigationNestedObject(t *testing.T) {
	// Indices into the fixture's preorder sequence:
	// 0 object, 1 "a", 2 111, 3 "b", 4 array, 5 222, 6 true, 7 "c", 8 object
	store := mustParse(t, ` {"a":111, "b":[222, true], "c":{}}  `, 16)

	if got := store.Root(Index(6)); got != 0 {
		t.Errorf("Root(6) = %d, want 0", got)
	}
	if got := store.Parent(Index(1)); got != 0 {
		t.Errorf("Parent(1) = %d, want 0", got)
	}
	if got := store.Parent(Index(5)); got != 4 {
		t.Errorf("Parent(5) = %d, want 4", got)
	}
	if got := store.Parent(0); got != NoIndex {
		t.Errorf("Parent(root) = %d, want NoIndex", got)
	}
	if got := store.Child(0); got != 1 {
		t.Errorf("Child(object) = %d, want 1", got)
	}
	if got := store.Child(4); got != 5 {
		t.Errorf("Child(array) = %d, want 5", got)
	}
	if got := store.Child(Index(2)); got != NoIndex {
		t.Errorf("Child(leaf 111) = %d, want NoIndex", got)
	}
	if got := store.NextSibling(Index(1)); got != 2 {
		t.Errorf("NextSibling(\"a\") = %d, want 2", got)
	}
	if got := store.NextSibling(Index(4)); got != 7 {
		t.Errorf("NextSibling(array) = %d, want 7 (skip over its descendants)", got)
	}
	if got := store.PrevSibling(Index(7)); got != 4 {
		t.Errorf("PrevSibling(\"c\") = %d, want 4", got)
	}
	if got := store.NextSibling(Index(8)); got != NoIndex {
		t.Errorf("NextSibling(last child) = %d, want NoIndex", got)
	}
	if got := store.PrevSibling(Index(1)); got != NoIndex {
		t.Errorf("PrevSibling(first child) = %d, want NoIndex", got)
	}
	if got := store.Prev(0); got != NoIndex {
		t.Errorf("Prev(root) = %d, want NoIndex", got)
	}
	if got := store.Next(Index(8)); got != NoIndex {
		t.Errorf("Next(last) = %d, want NoIndex", got)
	}
	if got := store.Prev(Index(3)); got != 2 {
		t.Errorf("Prev(3) = %d, want 2", got)
	}
	if got := store.Next(Index(3)); got != 4 {
		t.Errorf("Next(3) = %d, want 4", got)
	}
}

func TestTreeNavigationDuality(t *testing.T) {
	store := mustParse(t, `[1,2,3,4]`, 16)
	n := Index(store.Count())
	for i := Index(0); i < n; i++ {
		if ps := store.PrevSibling(i); ps != NoIndex {
			if got := store.NextSibling(ps); got != i {
				t.Errorf("NextSibling(PrevSibling(%d)) = %d, want %d", i, got, i)
			}
		}
		if ns := store.NextSibling(i); ns != NoIndex {
			if got := store.PrevSibling(ns); got != i {
				t.Errorf("PrevSibling(NextSibling(%d)) = %d, want %d", i, got, i)
			}
		}
	}
	if c := store.Child(0); c != NoIndex {
		if got := store.Parent(c); got != 0 {
			t.Errorf("Parent(Child(0)) = %d, want 0", got)
		}
	}
}

func TestTreeNavigationAbsentPropagates(t *testing.T) {
	store := mustParse(t, `42`, 4)
	if got := store.Child(NoIndex); got != NoIndex {
		t.Errorf("Child(NoIndex) = %d, want NoIndex", got)
	}
	if got := store.Parent(NoIndex); got != NoIndex {
		t.Errorf("Parent(NoIndex) = %d, want NoIndex", got)
	}
	if got := store.NextSibling(NoIndex); got != NoIndex {
		t.Errorf("NextSibling(NoIndex) = %d, want NoIndex", got)
	}
	if got := store.PrevSibling(NoIndex); got != NoIndex {
		t.Errorf("PrevSibling(NoIndex) = %d, want NoIndex", got)
	}
	if got := store.Root(NoIndex); got != NoIndex {
		t.Errorf("Root(NoIndex) = %d, want NoIndex", got)
	}
}

func TestTreeNavigationSingleScalar(t *testing.T) {
	store := mustParse(t, `true`, 4)
	if got := store.Root(0); got != 0 {
		t.Errorf("Root(0) = %d, want 0", got)
	}
	if got := store.Parent(0); got != NoIndex {
		t.Errorf("Parent(0) = %d, want NoIndex", got)
	}
	if got := store.Child(0); got != NoIndex {
		t.Errorf("Child(0) = %d, want NoIndex", got)
	}
	if got := store.PrevSibling(0); got != NoIndex {
		t.Errorf("PrevSibling(0) = %d, want NoIndex", got)
	}
	if got := store.NextSibling(0); got != NoIndex {
		t.Errorf("NextSibling(0) = %d, want NoIndex", got)
	}
}
