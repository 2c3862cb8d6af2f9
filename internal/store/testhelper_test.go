package store

import (
	"net"
	"testing"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/config"
	"github.com/alicebob/miniredis/v2"
)

// newTestConfig はminiredis接続用のテスト設定を生成する。
func newTestConfig(addr string) *config.Config {
	host, port, _ := net.SplitHostPort(addr)
	return &config.Config{
		RedisHost:              host,
		RedisPort:              port,
		RedisDB:                0,
		TTLMultiplier:          3,
		DefaultInterimInterval: 300,
	}
}

// newTestClient はminiredisに接続したValkeyClientを生成する。
func newTestClient(t *testing.T) (*miniredis.Miniredis, *ValkeyClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	vc, err := NewValkeyClient(newTestConfig(mr.Addr()))
	if err != nil {
		t.Fatalf("NewValkeyClient failed: %v", err)
	}
	t.Cleanup(func() { vc.Close() })
	return mr, vc
}
