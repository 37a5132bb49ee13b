package memory

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache()

	if _, err := cache.Get(context.Background(), "missing"); err == nil {
		t.Error("Get should return an error for a missing key")
	}
}

func TestMemoryCache_ExpiredKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("Get should report expired keys as missing")
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("value"), 0)
	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "k"); err != nil {
		t.Errorf("zero-TTL entries must not expire: %v", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("Get should miss after Delete")
	}
}

func TestMemoryCache_ReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("value"), time.Minute)

	first, _ := cache.Get(ctx, "k")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "k")
	if string(second) != "value" {
		t.Error("mutating a returned value must not corrupt the cached bytes")
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("Get should fail on a cancelled context")
	}
	if err := cache.Set(ctx, "k", []byte("v"), time.Minute); err == nil {
		t.Error("Set should fail on a cancelled context")
	}
}
