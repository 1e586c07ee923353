package resolver

import (
	"context"
	"net/netip"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

// TestNewDNSResolverMissingConfig 配置文件缺失时退化为系统解析
func TestNewDNSResolverMissingConfig(t *testing.T) {
	cfg := DefaultConfig().WithDNSConfigPath(filepath.Join(t.TempDir(), "missing.conf"))
	r, err := NewDNSResolver(cfg)
	require.NoError(t, err)
	require.Nil(t, r.client)
	require.Empty(t, r.servers)
}

// TestNewDNSResolverServers 从 resolv.conf 读取服务器列表
func TestNewDNSResolverServers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	content := "nameserver 10.0.0.53\nnameserver 10.0.0.54\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := NewDNSResolver(DefaultConfig().WithDNSConfigPath(path))
	require.NoError(t, err)
	require.NotNil(t, r.client)
	require.Equal(t, []string{"10.0.0.53:53", "10.0.0.54:53"}, r.servers)
}

// TestDNSResolverFallback 无 DNS 客户端时直接走注入的后端
func TestDNSResolverFallback(t *testing.T) {
	backend := &countingLookup{addrs: []netip.Addr{netip.MustParseAddr("10.0.0.1")}}
	cfg := DefaultConfig().WithDNSConfigPath(filepath.Join(t.TempDir(), "missing.conf"))

	r, err := NewDNSResolver(cfg, WithLookup(backend.lookup))
	require.NoError(t, err)

	ap, err := r.Resolve(context.Background(), mustAddress(t, "node.example.com:4001"))
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1:4001", ap.String())
	require.EqualValues(t, 1, atomic.LoadInt32(&backend.calls))
}

// TestDNSResolverCaching DNSResolver 与 SystemResolver 共享缓存语义
func TestDNSResolverCaching(t *testing.T) {
	mock := clock.NewMock()
	backend := &countingLookup{addrs: []netip.Addr{netip.MustParseAddr("10.0.0.1")}}
	cfg := DefaultConfig().WithDNSConfigPath(filepath.Join(t.TempDir(), "missing.conf"))

	r, err := NewDNSResolver(cfg, WithLookup(backend.lookup), WithClock(mock))
	require.NoError(t, err)

	addr := mustAddress(t, "node.example.com:4001")

	_, err = r.Resolve(context.Background(), addr)
	require.NoError(t, err)
	_, err = r.Resolve(context.Background(), addr)
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt32(&backend.calls))

	mock.Add(cfg.RecordTTL + time.Second)
	_, err = r.Resolve(context.Background(), addr)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&backend.calls))
}

// TestDNSResolverIPFastPath IP 地址不触发任何查询
func TestDNSResolverIPFastPath(t *testing.T) {
	backend := &countingLookup{}
	cfg := DefaultConfig().WithDNSConfigPath(filepath.Join(t.TempDir(), "missing.conf"))

	r, err := NewDNSResolver(cfg, WithLookup(backend.lookup))
	require.NoError(t, err)

	ap, err := r.Resolve(context.Background(), mustAddress(t, "[2001:db8::1]:443"))
	require.NoError(t, err)
	require.Equal(t, "[2001:db8::1]:443", ap.String())
	require.Zero(t, atomic.LoadInt32(&backend.calls))
}

// TestDNSResolverNotFound 后端零结果返回 NotFoundError
func TestDNSResolverNotFound(t *testing.T) {
	backend := &countingLookup{}
	cfg := DefaultConfig().WithDNSConfigPath(filepath.Join(t.TempDir(), "missing.conf"))

	r, err := NewDNSResolver(cfg, WithLookup(backend.lookup))
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), mustAddress(t, "missing.example.com:4001"))
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "missing.example.com", notFound.Domain)
}
