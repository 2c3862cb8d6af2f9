package registry

import (
	"context"
	"testing"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
)

func TestLifecycleBasic(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	ev := testEvent("192.0.2.1", "sess-001", "alice@example.com")
	if err := env.manager.OnStart(ctx, ev, "trace-1"); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}

	key := store.SessionKey("192.0.2.1", "sess-001")
	rec, err := env.sessions.Get(ctx, key)
	if err != nil {
		t.Fatalf("record not found after start: %v", err)
	}
	if rec["username"] != "alice@example.com" {
		t.Errorf("username = %q, want alice@example.com", rec["username"])
	}
	if rec["last_event"] != "Start" {
		t.Errorf("last_event = %q, want Start", rec["last_event"])
	}
	if rec["client_ip"] != "10.0.0.5" {
		t.Errorf("client_ip = %q, want 10.0.0.5", rec["client_ip"])
	}
	assertCounters(t, env, 1, 1)

	interim := testEvent("192.0.2.1", "sess-001", "alice@example.com")
	interim.SessionTime = 120
	interim.InputOctets = 4096
	interim.OutputOctets = 8192
	if err := env.manager.OnInterim(ctx, interim, "trace-2"); err != nil {
		t.Fatalf("OnInterim failed: %v", err)
	}

	rec, err = env.sessions.Get(ctx, key)
	if err != nil {
		t.Fatalf("record not found after interim: %v", err)
	}
	if rec["last_event"] != "Interim-Update" {
		t.Errorf("last_event = %q, want Interim-Update", rec["last_event"])
	}
	if rec["input_octets"] != "4096" {
		t.Errorf("input_octets = %q, want 4096", rec["input_octets"])
	}
	assertCounters(t, env, 1, 1)

	stop := testEvent("192.0.2.1", "sess-001", "alice@example.com")
	stop.SessionTime = 300
	if err := env.manager.OnStop(ctx, stop, "trace-3"); err != nil {
		t.Fatalf("OnStop failed: %v", err)
	}

	if _, err := env.sessions.Get(ctx, key); err == nil {
		t.Error("record still present after stop")
	}
	members, err := env.index.UserIndexMembers(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("UserIndexMembers failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("user index has %d members after stop, want 0", len(members))
	}
	assertCounters(t, env, 0, 0)
}

func TestStartRetransmitIdempotent(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	ev := testEvent("192.0.2.1", "sess-001", "alice@example.com")
	for i := 0; i < 3; i++ {
		if err := env.manager.OnStart(ctx, ev, "trace-1"); err != nil {
			t.Fatalf("OnStart failed: %v", err)
		}
	}
	assertCounters(t, env, 1, 1)
}

func TestStopRetransmitIdempotent(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	ev := testEvent("192.0.2.1", "sess-001", "alice@example.com")
	if err := env.manager.OnStart(ctx, ev, "trace-1"); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := env.manager.OnStop(ctx, ev, "trace-2"); err != nil {
			t.Fatalf("OnStop failed: %v", err)
		}
	}
	assertCounters(t, env, 0, 0)
}

func TestStopWithoutStart(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	ev := testEvent("192.0.2.1", "sess-unknown", "alice@example.com")
	if err := env.manager.OnStop(ctx, ev, "trace-1"); err != nil {
		t.Fatalf("OnStop failed: %v", err)
	}
	assertCounters(t, env, 0, 0)
}

func TestInterimWithoutStart(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	ev := testEvent("192.0.2.1", "sess-001", "alice@example.com")
	ev.SessionTime = 600
	if err := env.manager.OnInterim(ctx, ev, "trace-1"); err != nil {
		t.Fatalf("OnInterim failed: %v", err)
	}

	rec, err := env.sessions.Get(ctx, store.SessionKey("192.0.2.1", "sess-001"))
	if err != nil {
		t.Fatalf("record not created by implicit start: %v", err)
	}
	if rec["last_event"] != "Interim-Update" {
		t.Errorf("last_event = %q, want Interim-Update", rec["last_event"])
	}
	assertCounters(t, env, 1, 1)
}

func TestStopRecoversUsernameFromRecord(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	if err := env.manager.OnStart(ctx, testEvent("192.0.2.1", "sess-001", "alice@example.com"), "trace-1"); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}

	stop := testEvent("192.0.2.1", "sess-001", "")
	if err := env.manager.OnStop(ctx, stop, "trace-2"); err != nil {
		t.Fatalf("OnStop failed: %v", err)
	}

	members, err := env.index.UserIndexMembers(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("UserIndexMembers failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("user index has %d members after stop, want 0", len(members))
	}
	assertCounters(t, env, 0, 0)
}

func TestStartWithoutUsername(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	ev := testEvent("192.0.2.1", "sess-001", "")
	if err := env.manager.OnStart(ctx, ev, "trace-1"); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}

	if _, err := env.sessions.Get(ctx, store.SessionKey("192.0.2.1", "sess-001")); err != nil {
		t.Fatalf("record not written: %v", err)
	}
	// ユーザー名なしではインデックス登録もカウント加算もされない
	assertCounters(t, env, 0, 0)
}

func TestMultiSessionUser(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	ev1 := testEvent("192.0.2.1", "sess-001", "alice@example.com")
	ev2 := testEvent("192.0.2.2", "sess-002", "alice@example.com")
	if err := env.manager.OnStart(ctx, ev1, "trace-1"); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}
	if err := env.manager.OnStart(ctx, ev2, "trace-2"); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}
	assertCounters(t, env, 2, 1)

	if err := env.manager.OnStop(ctx, ev1, "trace-3"); err != nil {
		t.Fatalf("OnStop failed: %v", err)
	}
	// 片方のセッションが残っている間はオンラインのまま
	assertCounters(t, env, 1, 1)

	if err := env.manager.OnStop(ctx, ev2, "trace-4"); err != nil {
		t.Fatalf("OnStop failed: %v", err)
	}
	assertCounters(t, env, 0, 0)
}

func TestSessionTTLApplied(t *testing.T) {
	mr, env := newTestEnv(t)
	ctx := context.Background()

	ev := testEvent("192.0.2.1", "sess-001", "alice@example.com")
	if err := env.manager.OnStart(ctx, ev, "trace-1"); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}

	// TTL = 60秒 × 3倍
	mr.FastForward(env.cfg.SessionTTL(60) / 2)
	exists, err := env.sessions.Exists(ctx, store.SessionKey("192.0.2.1", "sess-001"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Fatal("record expired before TTL")
	}

	mr.FastForward(env.cfg.SessionTTL(60))
	exists, err = env.sessions.Exists(ctx, store.SessionKey("192.0.2.1", "sess-001"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("record still present after TTL elapsed")
	}
}
