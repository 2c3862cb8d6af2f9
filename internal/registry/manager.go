package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/config"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
	"github.com/Ali-Mohammed/openRadius-sub014/pkg/logging"
)

// Manager はアカウンティングイベントに応じてセッションレコードを
// 作成・更新・削除し、TTLポリシーを所有する。
// 上流は再送・順序入れ替わりを防がないため、不正・異常順序の入力でも
// エラーを返さず、冪等なベストエフォート書き込みに縮退する。
type Manager struct {
	sessions   store.SessionStore
	maintainer *IndexMaintainer
	cfg        *config.Config
	masker     *logging.Masker
}

// NewManager は新しいManagerを生成する。
func NewManager(ss store.SessionStore, im *IndexMaintainer, cfg *config.Config) *Manager {
	return &Manager{
		sessions:   ss,
		maintainer: im,
		cfg:        cfg,
		masker:     logging.NewMasker(cfg.LogMaskUsername),
	}
}

// recordFields はイベントからレコードの書き込みフィールドを組み立てる。
// 空値のオプションフィールドは既存値を消さないよう省略する。
func recordFields(ev *AccountingEvent, lastEvent string) map[string]any {
	fields := map[string]any{
		"nas_ip":        ev.NasIP,
		"session_id":    ev.SessionID,
		"session_time":  ev.SessionTime,
		"input_octets":  ev.InputOctets,
		"output_octets": ev.OutputOctets,
		"last_event":    lastEvent,
		"updated_at":    time.Now().Unix(),
	}
	if ev.Username != "" {
		fields["username"] = ev.Username
	}
	if ev.FramedIP != "" {
		fields["client_ip"] = ev.FramedIP
	}
	if ev.CallingStationID != "" {
		fields["calling_station"] = ev.CallingStationID
	}
	return fields
}

// applyStart はレコード書き込みとインデックス登録を行う。
// OnStartと、Startなしで届いたInterim（暗黙Start）が共用する。
func (m *Manager) applyStart(ctx context.Context, ev *AccountingEvent, lastEvent, traceID string) {
	key := store.SessionKey(ev.NasIP, ev.SessionID)

	if err := m.sessions.Upsert(ctx, key, recordFields(ev, lastEvent), m.cfg.SessionTTL(ev.InterimInterval)); err != nil {
		slog.Error("session write failed",
			"event_id", "REG_WRITE_ERR",
			"trace_id", traceID,
			"error", err.Error(),
		)
		return
	}

	if ev.Username == "" {
		slog.Warn("start without username",
			"event_id", "ACCT_NO_USERNAME",
			"trace_id", traceID,
			"nas_ip", ev.NasIP,
			"acct_session_id", ev.SessionID,
		)
		return
	}

	if err := m.maintainer.SessionAdded(ctx, key, ev.Username, ev.NasIP); err != nil {
		slog.Error("index update failed",
			"event_id", "REG_WRITE_ERR",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}

// OnStart はAcct-Start処理を行う。
// 再送されたStartは冪等な上書きとして扱う（エラーにしない）。
func (m *Manager) OnStart(ctx context.Context, ev *AccountingEvent, traceID string) error {
	m.applyStart(ctx, ev, eventStart, traceID)

	slog.Info("accounting start",
		"event_id", "ACCT_START",
		"trace_id", traceID,
		"nas_ip", ev.NasIP,
		"username", m.masker.Username(ev.Username),
		"acct_session_id", ev.SessionID,
	)
	return nil
}

// OnInterim はAcct-Interim-Update処理を行う。
// レコードが存在すればフィールド更新とTTL延長のみ。存在しない場合
// （レジストリ再起動等）はライブセッションの証拠として暗黙Startに昇格する。
// Stopとの非対称は意図的なもの。
func (m *Manager) OnInterim(ctx context.Context, ev *AccountingEvent, traceID string) error {
	key := store.SessionKey(ev.NasIP, ev.SessionID)

	exists, err := m.sessions.Exists(ctx, key)
	if err != nil {
		slog.Error("session lookup failed",
			"event_id", "REG_STORE_ERR",
			"trace_id", traceID,
			"error", err.Error(),
		)
		return nil
	}

	if !exists {
		slog.Warn("interim without start, treating as implicit start",
			"event_id", "ACCT_SEQUENCE_ERR",
			"trace_id", traceID,
			"nas_ip", ev.NasIP,
			"acct_session_id", ev.SessionID,
			"reason", "no_start_received",
		)
		m.applyStart(ctx, ev, eventInterim, traceID)
	} else {
		if err := m.sessions.Upsert(ctx, key, recordFields(ev, eventInterim), m.cfg.SessionTTL(ev.InterimInterval)); err != nil {
			slog.Error("session write failed",
				"event_id", "REG_WRITE_ERR",
				"trace_id", traceID,
				"error", err.Error(),
			)
		}
	}

	slog.Info("accounting interim",
		"event_id", "ACCT_INTERIM",
		"trace_id", traceID,
		"nas_ip", ev.NasIP,
		"username", m.masker.Username(ev.Username),
		"acct_session_id", ev.SessionID,
		"input_octets", ev.InputOctets,
		"output_octets", ev.OutputOctets,
	)
	return nil
}

// OnStop はAcct-Stop処理を行う。
// レコード削除は冪等（未存在キーの削除はno-op）。ユーザー名はStopパケット
// 由来を優先し、欠けていれば削除前のレコードから復元する。
func (m *Manager) OnStop(ctx context.Context, ev *AccountingEvent, traceID string) error {
	key := store.SessionKey(ev.NasIP, ev.SessionID)

	username := ev.Username
	if username == "" {
		if rec, err := m.sessions.Get(ctx, key); err == nil {
			username = rec["username"]
		}
	}

	if _, err := m.sessions.Delete(ctx, key); err != nil {
		slog.Error("session delete failed",
			"event_id", "REG_WRITE_ERR",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}

	if username != "" {
		if _, err := m.maintainer.SessionRemoved(ctx, key, username, ev.NasIP); err != nil {
			slog.Error("index update failed",
				"event_id", "REG_WRITE_ERR",
				"trace_id", traceID,
				"error", err.Error(),
			)
		}
	} else {
		// ユーザー名を特定できない場合はNAS側だけ掃除する。
		// 残りはReconcilerが回収する
		if err := m.maintainer.PruneStaleNasRef(ctx, key, ev.NasIP); err != nil {
			slog.Error("index update failed",
				"event_id", "REG_WRITE_ERR",
				"trace_id", traceID,
				"error", err.Error(),
			)
		}
	}

	slog.Info("accounting stop",
		"event_id", "ACCT_STOP",
		"trace_id", traceID,
		"nas_ip", ev.NasIP,
		"username", m.masker.Username(username),
		"acct_session_id", ev.SessionID,
		"input_octets", ev.InputOctets,
		"output_octets", ev.OutputOctets,
		"session_time", ev.SessionTime,
	)
	return nil
}
