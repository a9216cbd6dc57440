package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestMemoryStore_ReadWriteDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Read(ctx, "missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Read(missing) error = %v, want ErrKeyNotFound", err)
	}

	if err := store.Write(ctx, "doc", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := store.Read(ctx, "doc")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("Read() = %s, want {\"a\":1}", data)
	}

	if err := store.Delete(ctx, "doc"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Read(ctx, "doc"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Read() after delete error = %v, want ErrKeyNotFound", err)
	}
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Write(ctx, "doc", []byte("original")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, _ := store.Read(ctx, "doc")
	data[0] = 'X'

	again, _ := store.Read(ctx, "doc")
	if string(again) != "original" {
		t.Errorf("stored value mutated through returned slice: %s", again)
	}
}

func TestSlot_LoadDefaultOnMissingKey(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t).Sugar()
	store := NewMemoryStore()

	slot := NewSlot(store, "numbers", func() []int { return []int{42} }, logger)

	got := slot.Load(ctx)
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("Load() = %v, want default [42]", got)
	}
}

func TestSlot_LoadDefaultOnCorruptPayload(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t).Sugar()
	store := NewMemoryStore()

	if err := store.Write(ctx, "numbers", []byte("not json")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	slot := NewSlot(store, "numbers", func() []int { return nil }, logger)
	if got := slot.Load(ctx); got != nil {
		t.Errorf("Load() on corrupt payload = %v, want default nil", got)
	}
}

func TestSlot_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t).Sugar()
	store := NewMemoryStore()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	slot := NewSlot(store, "records", func() []record { return nil }, logger)
	slot.Save(ctx, []record{{Name: "a", Count: 1}, {Name: "b", Count: 2}})

	// A fresh slot over the same store must see the persisted value.
	fresh := NewSlot(store, "records", func() []record { return nil }, logger)
	got := fresh.Load(ctx)
	if len(got) != 2 || got[0].Name != "a" || got[1].Count != 2 {
		t.Errorf("Load() after Save() = %+v", got)
	}
}

type failingStore struct {
	MemoryStore
}

func (s *failingStore) Write(ctx context.Context, key string, data []byte) error {
	return errors.New("backend down")
}

type captureMetrics struct {
	failures []string
}

func (m *captureMetrics) RecordWriteFailure(key string) {
	m.failures = append(m.failures, key)
}

func TestSlot_SaveSwallowsWriteFailure(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t).Sugar()
	metrics := &captureMetrics{}

	slot := NewSlot[[]int](&failingStore{}, "numbers", func() []int { return nil }, logger).
		WithMetrics(metrics)

	// Must not panic or propagate the error.
	slot.Save(ctx, []int{1, 2, 3})

	if len(metrics.failures) != 1 || metrics.failures[0] != "numbers" {
		t.Errorf("recorded failures = %v, want [numbers]", metrics.failures)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if _, err := store.Read(ctx, "profile"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Read(missing) error = %v, want ErrKeyNotFound", err)
	}

	if err := store.Write(ctx, "profile", []byte(`{"username":"test"}`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := store.Read(ctx, "profile")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != `{"username":"test"}` {
		t.Errorf("Read() = %s", data)
	}

	if err := store.Delete(ctx, "profile"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	// Deleting again is a no-op.
	if err := store.Delete(ctx, "profile"); err != nil {
		t.Errorf("Delete() of absent key error = %v, want nil", err)
	}
}

func TestFileStore_SanitizesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if err := store.Write(ctx, "../escape/attempt", []byte("x")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			t.Errorf("unexpected file %s in store directory", e.Name())
		}
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape")); !os.IsNotExist(err) {
		t.Error("key traversal escaped the store directory")
	}
}

func TestFileStore_RejectsEmptyDir(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Error("NewFileStore(\"\") error = nil, want error")
	}
}
