package cache

import (
	"sort"
	"sync"
	"testing"
)

func testStoreContract(t *testing.T, store Store) {
	t.Helper()

	if _, ok := store.Get("missing"); ok {
		t.Error("empty store should miss")
	}

	store.Set("a", 1)
	store.Set("b", "two")

	if v, ok := store.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}
	if v, ok := store.Get("b"); !ok || v != "two" {
		t.Errorf("Get(b) = %v, %v; want two, true", v, ok)
	}

	store.Set("a", 3)
	if v, _ := store.Get("a"); v != 3 {
		t.Errorf("Set should replace: got %v, want 3", v)
	}

	keys := store.Keys()
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}

	store.Delete("a")
	if _, ok := store.Get("a"); ok {
		t.Error("deleted key should miss")
	}
	if _, ok := store.Get("b"); !ok {
		t.Error("Delete should not touch other keys")
	}

	store.Clear()
	if len(store.Keys()) != 0 {
		t.Errorf("Clear should empty the store, %d keys remain", len(store.Keys()))
	}
}

func TestMapStore(t *testing.T) {
	testStoreContract(t, NewMapStore())
}

func TestSyncStore(t *testing.T) {
	testStoreContract(t, NewSyncStore())
}

func TestSyncStore_ConcurrentAccess(t *testing.T) {
	store := NewSyncStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Set("shared", n)
				store.Get("shared")
			}
		}(i)
	}
	wg.Wait()

	if _, ok := store.Get("shared"); !ok {
		t.Error("expected a surviving entry after concurrent writes")
	}
}

func TestStores_AreIndependent(t *testing.T) {
	first := NewMapStore()
	second := NewMapStore()

	first.Set("k", "first")

	if _, ok := second.Get("k"); ok {
		t.Error("stores must not share entries")
	}
}
