package registry

import (
	"context"
	"testing"
)

func TestLedgerIncrementDecrement(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := env.ledger.Increment(ctx, CounterSessions); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}
	if err := env.ledger.Decrement(ctx, CounterSessions); err != nil {
		t.Fatalf("Decrement failed: %v", err)
	}

	got, err := env.ledger.Read(ctx, CounterSessions)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != 2 {
		t.Errorf("counter = %d, want 2", got)
	}
}

func TestLedgerReadClampsNegative(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	// 生値は負になり得るが、読み出しは0に丸める
	if err := env.ledger.Decrement(ctx, CounterUsers); err != nil {
		t.Fatalf("Decrement failed: %v", err)
	}

	got, err := env.ledger.Read(ctx, CounterUsers)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != 0 {
		t.Errorf("counter = %d, want 0 (clamped)", got)
	}
}

func TestLedgerRecalibrate(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	if err := env.ledger.Increment(ctx, CounterSessions); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if err := env.ledger.Recalibrate(ctx, CounterSessions, 17); err != nil {
		t.Fatalf("Recalibrate failed: %v", err)
	}

	got, err := env.ledger.Read(ctx, CounterSessions)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != 17 {
		t.Errorf("counter = %d, want 17", got)
	}
}
