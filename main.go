// Package main はオンラインセッションレジストリのエントリーポイント。
// RADIUSアカウンティング（UDP）とセッション照会API（HTTP）を同一プロセスで提供する。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/config"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/httpapi"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/registry"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/server"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
)

func main() {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化（JSON形式、INFO以上）
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("app", "session-registry")
	slog.SetDefault(logger)

	slog.Info("session-registry starting",
		"listen_addr", cfg.ListenAddr,
		"http_listen_addr", cfg.HTTPListenAddr,
	)

	// 3. Valkeyクライアント初期化
	valkeyClient, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("valkey connection failed",
			"event_id", "VALKEY_CONN_ERR",
			"error", err,
		)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("valkey connected", "addr", cfg.ValkeyAddr(), "db", cfg.RedisDB)

	// 4. Store層生成
	sessionStore := store.NewSessionStore(valkeyClient)
	indexStore := store.NewIndexStore(valkeyClient)
	counterStore := store.NewCounterStore(valkeyClient)
	scanStore := store.NewScanStore(valkeyClient)
	flushStore := store.NewFlushStore(valkeyClient)

	// 5. Registry層生成
	ledger := registry.NewCounterLedger(counterStore)
	maintainer := registry.NewIndexMaintainer(indexStore, ledger)
	manager := registry.NewManager(sessionStore, maintainer, cfg)
	querier := registry.NewQueryService(sessionStore, indexStore, scanStore, ledger, maintainer)
	reconciler := registry.NewReconciler(indexStore, scanStore, ledger, maintainer)
	flusher := registry.NewFlushService(flushStore)

	// 6. RADIUS UDPサーバー
	radiusSrv := server.NewServer(cfg.ListenAddr, server.NewHandler(manager), cfg.RadiusSecret)

	go func() {
		slog.Info("radius server listening", "addr", cfg.ListenAddr)
		if err := radiusSrv.ListenAndServe(); err != nil {
			slog.Error("radius server error", "error", err)
		}
	}()

	// 7. HTTP APIサーバー
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	httpapi.SetupRouter(engine, httpapi.NewRegistryHandler(querier, reconciler, flusher))

	httpSrv := &http.Server{
		Addr:    cfg.HTTPListenAddr,
		Handler: engine,
	}

	go func() {
		slog.Info("http server listening", "addr", cfg.HTTPListenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	// 8. Reconciler定期実行（設定時のみ）
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	if cfg.ReconcileInterval > 0 {
		go runScheduledReconcile(rootCtx, reconciler, cfg.ReconcileInterval)
	}

	// 9. シグナル待機 → Graceful Shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	slog.Info("signal received, shutting down", "signal", sig)
	rootCancel()

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := radiusSrv.Shutdown(ctx); err != nil {
		slog.Warn("radius server shutdown error", "error", err)
	}
	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Warn("http server shutdown error", "error", err)
	}

	slog.Info("session-registry stopped")
}

// runScheduledReconcile は一定間隔でReconcilerを実行する。
// 手動トリガーと競合した場合はスキップして次の周期を待つ。
func runScheduledReconcile(ctx context.Context, r registry.ReconcileRunner, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("scheduled reconcile enabled", "interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Run(ctx); err != nil && !errors.Is(err, registry.ErrReconcileInProgress) {
				slog.Error("scheduled reconcile failed",
					"event_id", "RECONCILE_ERR",
					"error", err.Error(),
				)
			}
		}
	}
}
