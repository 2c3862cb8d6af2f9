package store

import (
	"context"
	"testing"
)

func TestCounterIncrementDecrement(t *testing.T) {
	_, vc := newTestClient(t)
	cs := NewCounterStore(vc)
	ctx := context.Background()

	if err := cs.Increment(ctx, KeyCountSessions); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if err := cs.Increment(ctx, KeyCountSessions); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	n, err := cs.Get(ctx, KeyCountSessions)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n != 2 {
		t.Errorf("counter = %d, want 2", n)
	}

	if err := cs.Decrement(ctx, KeyCountSessions); err != nil {
		t.Fatalf("Decrement failed: %v", err)
	}
	n, err = cs.Get(ctx, KeyCountSessions)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n != 1 {
		t.Errorf("counter = %d, want 1", n)
	}
}

func TestCounterGetMissing(t *testing.T) {
	_, vc := newTestClient(t)
	cs := NewCounterStore(vc)

	n, err := cs.Get(context.Background(), KeyCountUsers)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n != 0 {
		t.Errorf("missing counter = %d, want 0", n)
	}
}

func TestCounterGoesNegative(t *testing.T) {
	_, vc := newTestClient(t)
	cs := NewCounterStore(vc)
	ctx := context.Background()

	// 対応するIncrementなしのDecrementでも無条件に実行される
	if err := cs.Decrement(ctx, KeyCountSessions); err != nil {
		t.Fatalf("Decrement failed: %v", err)
	}
	n, err := cs.Get(ctx, KeyCountSessions)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n != -1 {
		t.Errorf("counter = %d, want -1", n)
	}
}

func TestCounterSet(t *testing.T) {
	_, vc := newTestClient(t)
	cs := NewCounterStore(vc)
	ctx := context.Background()

	if err := cs.Set(ctx, KeyCountUsers, 42); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	n, err := cs.Get(ctx, KeyCountUsers)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n != 42 {
		t.Errorf("counter = %d, want 42", n)
	}
}
