package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T, cleanup time.Duration) *Client {
	t.Helper()
	cache, err := NewSQLiteCacheWithCleanup(filepath.Join(t.TempDir(), "snapshots.db"), cleanup)
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestClient_SetGet(t *testing.T) {
	cache := newTestCache(t, time.Minute)
	ctx := context.Background()
	payload := []byte(`{"rows":[{"provider":"Anthropic"}]}`)

	if err := cache.Set(ctx, "snapshot:latest", payload, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "snapshot:latest")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Get returned %s, want %s", got, payload)
	}
}

func TestClient_BinaryIntegrity(t *testing.T) {
	cache := newTestCache(t, time.Minute)
	ctx := context.Background()
	data := []byte{0x00, 0x01, 0xFF, 0xFE, '\n', '\''}

	if err := cache.Set(ctx, "bin", data, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err := cache.Get(ctx, "bin")
	if err != nil || !bytes.Equal(got, data) {
		t.Errorf("Get = %v, %v; want %v", got, err, data)
	}
}

func TestClient_ZeroTTLNeverExpires(t *testing.T) {
	cache := newTestCache(t, 10*time.Millisecond)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(40 * time.Millisecond)

	if _, err := cache.Get(ctx, "k"); err != nil {
		t.Errorf("value with zero TTL expired: %v", err)
	}
}

func TestClient_Expiry(t *testing.T) {
	cache := newTestCache(t, 10*time.Millisecond)
	ctx := context.Background()

	_ = cache.Set(ctx, "short", []byte("v"), 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get error = %v, want ErrKeyNotFound", err)
	}
	count, err := cache.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d after cleanup, want 0", count)
	}
}

func TestClient_Overwrite(t *testing.T) {
	cache := newTestCache(t, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, "k", []byte("first"), time.Hour)
	_ = cache.Set(ctx, "k", []byte("second"), time.Hour)

	got, _ := cache.Get(ctx, "k")
	if string(got) != "second" {
		t.Errorf("Get returned %s, want second", got)
	}
}

func TestClient_Delete(t *testing.T) {
	cache := newTestCache(t, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, "k", []byte("v"), time.Hour)
	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get after Delete error = %v", err)
	}
}

func TestClient_Validation(t *testing.T) {
	cache := newTestCache(t, time.Minute)
	ctx := context.Background()

	if _, err := cache.Get(ctx, ""); err == nil {
		t.Error("Get should reject empty key")
	}
	if err := cache.Set(ctx, "", []byte("v"), 0); err == nil {
		t.Error("Set should reject empty key")
	}
	if err := cache.Set(ctx, "k", nil, 0); err == nil {
		t.Error("Set should reject empty value")
	}
	if err := cache.Delete(ctx, ""); err == nil {
		t.Error("Delete should reject empty key")
	}
}

func TestClient_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	_ = first.Set(ctx, "snapshot:latest", []byte("kept"), 0)
	first.Close()

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "snapshot:latest")
	if err != nil || string(got) != "kept" {
		t.Errorf("Get after reopen = %s, %v", got, err)
	}
}
