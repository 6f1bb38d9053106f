// ABOUTME: Tests for the in-memory cache
// ABOUTME: Covers set/get roundtrips, TTL expiry, deletion, and value isolation

package memory

import (
	"context"
	"testing"
	"time"
)

func TestSetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get() = %q, want %q", got, "value")
	}
}

func TestGetMissingKey(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	if _, err := cache.Get(context.Background(), "absent"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestExpiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "short", []byte("lived"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); err == nil {
		t.Error("expected expired key to be gone")
	}
}

func TestDelete(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("expected deleted key to be gone")
	}
}

func TestValueIsolation(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	original := []byte("immutable")
	_ = cache.Set(ctx, "key", original, time.Minute)
	original[0] = 'X'

	first, _ := cache.Get(ctx, "key")
	first[0] = 'Y'

	second, _ := cache.Get(ctx, "key")
	if string(second) != "immutable" {
		t.Errorf("cached value was mutated: %q", second)
	}
}

func TestCancelledContext(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err == nil {
		t.Error("Set with cancelled context should fail")
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get with cancelled context should fail")
	}
}
