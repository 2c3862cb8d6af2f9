package registry

import (
	"context"
	"net"
	"testing"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/config"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
	"github.com/alicebob/miniredis/v2"
)

// testEnv はminiredisに接続した全コンポーネント一式。
type testEnv struct {
	cfg        *config.Config
	sessions   store.SessionStore
	index      store.IndexStore
	counters   store.CounterStore
	scan       store.ScanStore
	ledger     *CounterLedger
	maintainer *IndexMaintainer
	manager    *Manager
	query      *QueryService
	reconciler *Reconciler
	flush      *FlushService
}

func newTestEnv(t *testing.T) (*miniredis.Miniredis, *testEnv) {
	t.Helper()
	mr := miniredis.RunT(t)

	host, port, _ := net.SplitHostPort(mr.Addr())
	cfg := &config.Config{
		RedisHost:              host,
		RedisPort:              port,
		RedisDB:                0,
		TTLMultiplier:          3,
		DefaultInterimInterval: 300,
	}

	vc, err := store.NewValkeyClient(cfg)
	if err != nil {
		t.Fatalf("NewValkeyClient failed: %v", err)
	}
	t.Cleanup(func() { vc.Close() })

	env := &testEnv{
		cfg:      cfg,
		sessions: store.NewSessionStore(vc),
		index:    store.NewIndexStore(vc),
		counters: store.NewCounterStore(vc),
		scan:     store.NewScanStore(vc),
	}
	env.ledger = NewCounterLedger(env.counters)
	env.maintainer = NewIndexMaintainer(env.index, env.ledger)
	env.manager = NewManager(env.sessions, env.maintainer, cfg)
	env.query = NewQueryService(env.sessions, env.index, env.scan, env.ledger, env.maintainer)
	env.reconciler = NewReconciler(env.index, env.scan, env.ledger, env.maintainer)
	env.flush = NewFlushService(store.NewFlushStore(vc))
	return mr, env
}

// testEvent は基本形のアカウンティングイベントを生成する。
// InterimInterval=60のためTTLは180秒になる。
func testEvent(nasIP, sessionID, username string) *AccountingEvent {
	return &AccountingEvent{
		NasIP:            nasIP,
		SessionID:        sessionID,
		Username:         username,
		FramedIP:         "10.0.0.5",
		CallingStationID: "AA-BB-CC-DD-EE-FF",
		InterimInterval:  60,
	}
}

// assertCounters はセッション数・ユーザー数カウンターの生値を検証する。
func assertCounters(t *testing.T, env *testEnv, wantSessions, wantUsers int64) {
	t.Helper()
	ctx := context.Background()

	sessions, err := env.counters.Get(ctx, store.KeyCountSessions)
	if err != nil {
		t.Fatalf("counter get failed: %v", err)
	}
	if sessions != wantSessions {
		t.Errorf("session counter = %d, want %d", sessions, wantSessions)
	}

	users, err := env.counters.Get(ctx, store.KeyCountUsers)
	if err != nil {
		t.Fatalf("counter get failed: %v", err)
	}
	if users != wantUsers {
		t.Errorf("user counter = %d, want %d", users, wantUsers)
	}
}
