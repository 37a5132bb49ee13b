package searchcache

import (
	"testing"
	"time"

	"chapterone-api/core/domain"
)

func TestStore_PutThenGetRoundTrip(t *testing.T) {
	store := NewStore(time.Second)
	books := []domain.Book{{ID: "b1", Title: "Dune", Author: "Frank Herbert"}}

	store.Put("q=dune|type=title|ext=true|user=42", books)

	got, ok := store.Get("q=dune|type=title|ext=true|user=42")
	if !ok {
		t.Fatal("Get should hit immediately after Put")
	}
	if len(got) != 1 || got[0].ID != "b1" {
		t.Errorf("Get returned %v, want the stored books", got)
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	store := NewStore(time.Second)

	if _, ok := store.Get("q=nope|type=all|ext=false|user="); ok {
		t.Error("Get should miss for a key never stored")
	}
}

func TestStore_EntryExpiresAfterTTL(t *testing.T) {
	store := NewStore(20 * time.Millisecond)
	store.Put("k", []domain.Book{{ID: "b1"}})

	time.Sleep(40 * time.Millisecond)

	if _, ok := store.Get("k"); ok {
		t.Error("Get should report absent after the TTL elapsed, without a sweep")
	}
}

func TestStore_PutOverwritesUnconditionally(t *testing.T) {
	store := NewStore(time.Second)
	store.Put("k", []domain.Book{{ID: "old"}})
	store.Put("k", []domain.Book{{ID: "new"}})

	got, ok := store.Get("k")
	if !ok {
		t.Fatal("Get should hit after overwrite")
	}
	if got[0].ID != "new" {
		t.Errorf("Get returned %v, want the last written value", got[0].ID)
	}
}

func TestStore_ClearAll(t *testing.T) {
	store := NewStore(time.Second)
	store.Put("a", []domain.Book{{ID: "b1"}})
	store.Put("b", []domain.Book{{ID: "b2"}})

	store.ClearAll()

	if _, ok := store.Get("a"); ok {
		t.Error("Get should miss after ClearAll")
	}
	if store.Stats().Entries != 0 {
		t.Error("store should be empty after ClearAll")
	}
}

func TestStore_ClearForUser_OnlyThatUser(t *testing.T) {
	store := NewStore(time.Second)
	store.Put("q=dune|type=title|ext=true|user=42", []domain.Book{{ID: "b1"}})
	store.Put("q=dune|type=title|ext=true|user=7", []domain.Book{{ID: "b2"}})
	store.Put("q=dune|type=title|ext=true|user=", []domain.Book{{ID: "b3"}})

	store.ClearForUser("42")

	if _, ok := store.Get("q=dune|type=title|ext=true|user=42"); ok {
		t.Error("user 42 entries should be cleared")
	}
	if _, ok := store.Get("q=dune|type=title|ext=true|user=7"); !ok {
		t.Error("other users' entries should survive")
	}
	if _, ok := store.Get("q=dune|type=title|ext=true|user="); !ok {
		t.Error("anonymous entries should survive")
	}
}

func TestStore_ClearForUser_ExactUserMatch(t *testing.T) {
	store := NewStore(time.Second)
	store.Put("q=dune|type=title|ext=true|user=42", []domain.Book{{ID: "b1"}})
	store.Put("q=dune|type=title|ext=true|user=421", []domain.Book{{ID: "b2"}})

	store.ClearForUser("42")

	if _, ok := store.Get("q=dune|type=title|ext=true|user=421"); !ok {
		t.Error("clearing user 42 must not clear user 421")
	}
}

func TestStore_StatsCountersAndHitRate(t *testing.T) {
	store := NewStore(time.Second)
	store.Put("k", []domain.Book{{ID: "b1"}})

	store.Get("k")       // hit
	store.Get("k")       // hit
	store.Get("missing") // miss

	stats := store.Stats()
	if stats.Hits != 2 {
		t.Errorf("Hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	want := 2.0 / 3.0
	if stats.HitRate < want-0.0001 || stats.HitRate > want+0.0001 {
		t.Errorf("HitRate = %f, want %f", stats.HitRate, want)
	}
}

func TestStore_StatsSurviveClearAll(t *testing.T) {
	store := NewStore(time.Second)
	store.Put("k", []domain.Book{{ID: "b1"}})
	store.Get("k")

	store.ClearAll()

	if store.Stats().Hits != 1 {
		t.Error("counters are process-lifetime cumulative and must survive clears")
	}
}

func TestNewStore_ZeroTTLUsesDefault(t *testing.T) {
	store := NewStore(0)
	store.Put("k", []domain.Book{{ID: "b1"}})

	if _, ok := store.Get("k"); !ok {
		t.Error("a zero TTL should fall back to the default window, not expire instantly")
	}
}
