package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// Valkey接続設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS"`
	// レジストリ専用の論理DB番号。他用途のキーと衝突しないよう分離する
	RedisDB int `envconfig:"REDIS_DB" default:"1"`

	// RADIUS設定
	RadiusSecret string `envconfig:"RADIUS_SECRET" required:"true"`
	ListenAddr   string `envconfig:"LISTEN_ADDR" default:":1813"`

	// HTTP API設定
	HTTPListenAddr string `envconfig:"HTTP_LISTEN_ADDR" default:":8080"`

	// セッションTTL設定
	// TTL = Interim間隔 × TTLMultiplier。2未満は設定エラー
	TTLMultiplier          int `envconfig:"TTL_MULTIPLIER" default:"3"`
	DefaultInterimInterval int `envconfig:"DEFAULT_INTERIM_INTERVAL" default:"300"`

	// Reconciler定期実行間隔（0で無効、手動トリガーのみ）
	ReconcileInterval time.Duration `envconfig:"RECONCILE_INTERVAL" default:"0"`

	// ログ設定
	LogMaskUsername bool `envconfig:"LOG_MASK_USERNAME" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TTLMultiplier < 2 {
		return nil, fmt.Errorf("TTL_MULTIPLIER must be >= 2, got %d", cfg.TTLMultiplier)
	}
	if cfg.DefaultInterimInterval <= 0 {
		return nil, fmt.Errorf("DEFAULT_INTERIM_INTERVAL must be positive, got %d", cfg.DefaultInterimInterval)
	}
	return &cfg, nil
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// SessionTTL は指定されたInterim間隔（秒）に対するセッションTTLを返す。
// 間隔が0以下の場合はDefaultInterimIntervalを使用する。
// Interim 1回分の欠落に耐えられるよう、倍率は2以上を前提とする。
func (c *Config) SessionTTL(interimIntervalSec int) time.Duration {
	if interimIntervalSec <= 0 {
		interimIntervalSec = c.DefaultInterimInterval
	}
	return time.Duration(interimIntervalSec*c.TTLMultiplier) * time.Second
}
