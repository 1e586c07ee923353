package resolver

import (
	"net/netip"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

// TestCacheTTL 测试 TTL 过期与惰性删除
func TestCacheTTL(t *testing.T) {
	mock := clock.NewMock()
	c, err := newCache(16, time.Minute, mock)
	require.NoError(t, err)

	ap := netip.MustParseAddrPort("10.0.0.1:4001")
	c.put("example.com.", ap)

	// 未过期：立即读到
	got, ok := c.get("example.com.")
	require.True(t, ok)
	require.Equal(t, ap, got)

	// 恰好到 TTL 边界仍然有效（now - born <= ttl）
	mock.Add(time.Minute)
	_, ok = c.get("example.com.")
	require.True(t, ok)

	// 越过 TTL：读取触发惰性删除
	mock.Add(time.Nanosecond)
	_, ok = c.get("example.com.")
	require.False(t, ok)
	require.Zero(t, c.len(), "过期条目应在读取时删除")
}

// TestCacheOverwrite 同一键最后写入者覆盖
func TestCacheOverwrite(t *testing.T) {
	mock := clock.NewMock()
	c, err := newCache(16, time.Minute, mock)
	require.NoError(t, err)

	first := netip.MustParseAddrPort("10.0.0.1:4001")
	second := netip.MustParseAddrPort("10.0.0.2:4001")

	c.put("example.com.", first)
	c.put("example.com.", second)

	got, ok := c.get("example.com.")
	require.True(t, ok)
	require.Equal(t, second, got)
	require.Equal(t, 1, c.len())
}

// TestCacheMiss 未知键未命中
func TestCacheMiss(t *testing.T) {
	mock := clock.NewMock()
	c, err := newCache(16, time.Minute, mock)
	require.NoError(t, err)

	_, ok := c.get("missing.example.com.")
	require.False(t, ok)
}
