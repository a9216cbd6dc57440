package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.Set("key", "value")

	got, ok := c.Get("key")
	if !ok || got != "value" {
		t.Errorf("Get() = %v %v, want value true", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) = true")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.SetWithTTL("short", "value", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry still served")
	}
}

func TestCache_InvalidateByPrefix(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.Set("builds:list", 1)
	c.Set("builds:id:b1", 2)
	c.Set("heroes:list", 3)

	c.Invalidate("builds:")

	if _, ok := c.Get("builds:list"); ok {
		t.Error("builds:list survived prefix invalidation")
	}
	if _, ok := c.Get("builds:id:b1"); ok {
		t.Error("builds:id:b1 survived prefix invalidation")
	}
	if _, ok := c.Get("heroes:list"); !ok {
		t.Error("unrelated key was invalidated")
	}
}

func TestCache_Delete(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.Set("key", "value")
	c.Delete("key")
	if _, ok := c.Get("key"); ok {
		t.Error("deleted key still served")
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestCacheWithFallback_GetOrSet(t *testing.T) {
	ctx := context.Background()
	c := NewCacheWithFallback(time.Minute)
	defer c.Stop()

	calls := 0
	loader := func(ctx context.Context) (interface{}, error) {
		calls++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrSet(ctx, "key", loader, time.Minute)
		if err != nil {
			t.Fatalf("GetOrSet() error = %v", err)
		}
		if got != "loaded" {
			t.Errorf("GetOrSet() = %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}

	c.Invalidate("key")
	if _, err := c.GetOrSet(ctx, "key", loader, time.Minute); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("loader called %d times after invalidation, want 2", calls)
	}
}

func TestCacheWithFallback_LoaderErrorNotCached(t *testing.T) {
	ctx := context.Background()
	c := NewCacheWithFallback(time.Minute)
	defer c.Stop()

	calls := 0
	loader := func(ctx context.Context) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return "recovered", nil
	}

	if _, err := c.GetOrSet(ctx, "key", loader, time.Minute); err == nil {
		t.Fatal("first GetOrSet() error = nil, want transient error")
	}

	got, err := c.GetOrSet(ctx, "key", loader, time.Minute)
	if err != nil {
		t.Fatalf("second GetOrSet() error = %v", err)
	}
	if got != "recovered" {
		t.Errorf("GetOrSet() = %v, want recovered", got)
	}
}
