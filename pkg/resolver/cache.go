package resolver

import (
	"net/netip"
	"time"

	"github.com/benbjohnson/clock"
	lru "github.com/hashicorp/golang-lru/v2"
)

// entry 缓存条目
//
// 每次成功解析整体替换，绝不部分写入。
type entry struct {
	addr netip.AddrPort
	born time.Time
	ttl  time.Duration
}

// expired 报告条目在 now 时刻是否已过期
func (e entry) expired(now time.Time) bool {
	return now.Sub(e.born) > e.ttl
}

// cache 域名到 socket 端点的 TTL 缓存
//
// 底层 LRU 自身保证并发安全，同一键最后写入者覆盖。
// 过期条目在读取时惰性删除，没有后台清扫。
type cache struct {
	entries *lru.Cache[string, entry]
	clock   clock.Clock
	ttl     time.Duration
}

func newCache(size int, ttl time.Duration, clk clock.Clock) (*cache, error) {
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	return &cache{entries: entries, clock: clk, ttl: ttl}, nil
}

// get 按 FQDN 查找未过期的端点
func (c *cache) get(fqdn string) (netip.AddrPort, bool) {
	e, ok := c.entries.Get(fqdn)
	if !ok {
		return netip.AddrPort{}, false
	}
	if e.expired(c.clock.Now()) {
		c.entries.Remove(fqdn)
		return netip.AddrPort{}, false
	}
	return e.addr, true
}

// put 写入解析结果，born 取当前时刻
func (c *cache) put(fqdn string, addr netip.AddrPort) {
	c.entries.Add(fqdn, entry{addr: addr, born: c.clock.Now(), ttl: c.ttl})
}

// len 返回当前缓存条目数
func (c *cache) len() int {
	return c.entries.Len()
}
