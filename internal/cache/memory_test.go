package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestMemory(t *testing.T) *Memory {
	t.Helper()
	m := NewMemory(Options{DefaultTTL: time.Minute, CleanupInterval: time.Minute})
	t.Cleanup(func() { m.Close() })
	return m
}

func TestMemory_SetGet(t *testing.T) {
	t.Parallel()

	m := newTestMemory(t)
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}

func TestMemory_MissReturnsErrNotFound(t *testing.T) {
	t.Parallel()

	m := newTestMemory(t)
	if _, err := m.Get(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(absent) = %v, want ErrNotFound", err)
	}
}

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()

	m := newTestMemory(t)
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired Get = %v, want ErrNotFound", err)
	}
}

func TestMemory_Delete(t *testing.T) {
	t.Parallel()

	m := newTestMemory(t)
	ctx := context.Background()

	_ = m.Set(ctx, "k", []byte("v"), 0)
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestMemory_ValueIsCopied(t *testing.T) {
	t.Parallel()

	m := newTestMemory(t)
	ctx := context.Background()

	buf := []byte("original")
	_ = m.Set(ctx, "k", buf, 0)
	buf[0] = 'X'

	got, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("stored value aliased the caller's buffer: %q", got)
	}
}

func TestMemory_ClosedOperations(t *testing.T) {
	t.Parallel()

	m := NewMemory(Options{})
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if err := m.Set(context.Background(), "k", nil, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close = %v, want ErrClosed", err)
	}
	if _, err := m.Get(context.Background(), "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close = %v, want ErrClosed", err)
	}
}
