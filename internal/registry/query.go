package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/config"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
)

// QueryService はセッション照会の読み取り面の実装。
// ストア障害の連鎖を防ぐため、読み取りはCircuit Breaker経由で行う。
// 失効参照（レコードはTTL失効済みだがインデックスに残っている）は
// 読み取り経路上で発見次第、遅延クリーンアップする。
type QueryService struct {
	sessions   store.SessionStore
	index      store.IndexStore
	scan       store.ScanStore
	ledger     *CounterLedger
	maintainer *IndexMaintainer
	cb         *gobreaker.CircuitBreaker
}

// NewQueryService は新しいQueryServiceを生成する。
func NewQueryService(ss store.SessionStore, is store.IndexStore, sc store.ScanStore, ledger *CounterLedger, im *IndexMaintainer) *QueryService {
	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		IsSuccessful: func(err error) bool {
			// ストア接続障害のみをCB失敗として数える。
			// 未存在キー等のドメインエラーは対象外
			return !errors.Is(err, store.ErrStoreUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &QueryService{
		sessions:   ss,
		index:      is,
		scan:       sc,
		ledger:     ledger,
		maintainer: im,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
	}
}

// execute はCircuit Breaker経由でfnを実行する。
// Open状態・Half-Open流量超過はErrStoreUnavailableに正規化する。
func (q *QueryService) execute(fn func() (any, error)) (any, error) {
	result, err := q.cb.Execute(fn)
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("%w: circuit breaker open", store.ErrStoreUnavailable)
		}
		return nil, err
	}
	return result, nil
}

// DashboardSummary はカウンターとNAS別内訳を返す。
// カウンター読み出しはO(1)。NAS別内訳はNASインデックスキーの走査で、
// NAS台数に比例する（セッション数には比例しない）。
func (q *QueryService) DashboardSummary(ctx context.Context) (*Summary, error) {
	result, err := q.execute(func() (any, error) {
		sessions, err := q.ledger.Read(ctx, CounterSessions)
		if err != nil {
			return nil, err
		}
		users, err := q.ledger.Read(ctx, CounterUsers)
		if err != nil {
			return nil, err
		}

		perNas := make([]NasSummary, 0)
		err = q.scan.ScanKeys(ctx, store.KeyPrefixNasIdx+"*", func(keys []string) error {
			for _, key := range keys {
				nasIP := strings.TrimPrefix(key, store.KeyPrefixNasIdx)
				size, err := q.index.NasIndexSize(ctx, nasIP)
				if err != nil {
					return err
				}
				if size > 0 {
					perNas = append(perNas, NasSummary{NasIP: nasIP, SessionCount: size})
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		sort.Slice(perNas, func(i, j int) bool {
			return perNas[i].NasIP < perNas[j].NasIP
		})

		return &Summary{
			OnlineUsers:    users,
			ActiveSessions: sessions,
			PerNas:         perNas,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Summary), nil
}

// SessionsForUser は指定ユーザーのライブセッション一覧を返す。
// TTL失効済みレコードへの参照はインデックスから遅延削除し、
// カウンターへもその場で反映する。
func (q *QueryService) SessionsForUser(ctx context.Context, username string) ([]*SessionRecord, error) {
	result, err := q.execute(func() (any, error) {
		keys, err := q.index.UserIndexMembers(ctx, username)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return []*SessionRecord{}, nil
		}

		hashes, err := q.scan.GetAllPipelined(ctx, keys)
		if err != nil {
			return nil, err
		}

		records := make([]*SessionRecord, 0, len(keys))
		for i, key := range keys {
			if len(hashes[i]) == 0 {
				// レコードがTTL失効済み。参照を掃除してカウンターを補正する
				if _, err := q.maintainer.PruneStale(ctx, key, username, nasIPFromKey(key)); err != nil {
					slog.Warn("stale ref prune failed",
						"event_id", "REG_PRUNE_ERR",
						"error", err.Error(),
					)
				}
				continue
			}
			rec, err := buildRecord(key, hashes[i])
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*SessionRecord), nil
}

// SessionsForNas は指定NASのライブセッション一覧を返す。
// 失効参照はNASインデックスからのみ削除する。キーからユーザー名を
// 復元できないため、ユーザー側の整合性回復はReconcilerに委ねる。
func (q *QueryService) SessionsForNas(ctx context.Context, nasIP string) ([]*SessionRecord, error) {
	result, err := q.execute(func() (any, error) {
		keys, err := q.index.NasIndexMembers(ctx, nasIP)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return []*SessionRecord{}, nil
		}

		hashes, err := q.scan.GetAllPipelined(ctx, keys)
		if err != nil {
			return nil, err
		}

		records := make([]*SessionRecord, 0, len(keys))
		for i, key := range keys {
			if len(hashes[i]) == 0 {
				if err := q.maintainer.PruneStaleNasRef(ctx, key, nasIP); err != nil {
					slog.Warn("stale ref prune failed",
						"event_id", "REG_PRUNE_ERR",
						"error", err.Error(),
					)
				}
				continue
			}
			rec, err := buildRecord(key, hashes[i])
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*SessionRecord), nil
}

// SessionDetail は単一セッションの詳細を返す。
func (q *QueryService) SessionDetail(ctx context.Context, nasIP, sessionID string) (*SessionRecord, error) {
	key := store.SessionKey(nasIP, sessionID)

	result, err := q.execute(func() (any, error) {
		hash, err := q.sessions.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		return buildRecord(key, hash)
	})
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return result.(*SessionRecord), nil
}

// buildRecord はハッシュフィールドからSessionRecordを構築する。
// NAS IPとセッションIDはキー側を正とする。
func buildRecord(key string, hash map[string]string) (*SessionRecord, error) {
	var rec SessionRecord
	if err := store.MapToStruct(hash, &rec); err != nil {
		return nil, err
	}
	if nasIP, sessionID, ok := store.SplitSessionKey(key); ok {
		rec.NasIP = nasIP
		rec.SessionID = sessionID
	}
	return &rec, nil
}

func nasIPFromKey(key string) string {
	nasIP, _, _ := store.SplitSessionKey(key)
	return nasIP
}
