package resolver

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/benbjohnson/clock"
	"github.com/dep2p/log"

	"github.com/dep2p/go-nodeaddr/pkg/types"
)

var logger = log.Logger("resolver")

// ============================================================================
//                              接口定义
// ============================================================================

// AddressResolver 将节点地址解析为具体的 socket 端点
//
// IP 地址直接返回；域名地址先查缓存，未命中时调用解析后端并回填。
// 调用方负责围绕解析步骤做取消/超时与重试，实现内部绝不重试。
type AddressResolver interface {
	Resolve(ctx context.Context, addr types.Address) (netip.AddrPort, error)
}

// LookupFunc 可插拔的名称解析后端
//
// 输入 FQDN（带结尾点），输出该域名的全部 IP。
// 阻塞的系统调用应由实现自行处理（net.Resolver 会把阻塞的
// cgo 查询放到独立线程并响应 ctx 取消）。
type LookupFunc func(ctx context.Context, host string) ([]netip.Addr, error)

// systemLookup 默认后端：操作系统名称解析
func systemLookup(ctx context.Context, host string) ([]netip.Addr, error) {
	return net.DefaultResolver.LookupNetIP(ctx, "ip", host)
}

// ============================================================================
//                              选项
// ============================================================================

// Option 解析器构造选项
type Option func(*options)

type options struct {
	lookup LookupFunc
	clock  clock.Clock
}

func applyOptions(opts []Option) options {
	o := options{lookup: systemLookup, clock: clock.New()}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithLookup 替换名称解析后端（测试注入用）
func WithLookup(fn LookupFunc) Option {
	return func(o *options) { o.lookup = fn }
}

// WithClock 替换缓存使用的时钟（测试注入用）
func WithClock(clk clock.Clock) Option {
	return func(o *options) { o.clock = clk }
}

// ============================================================================
//                              SystemResolver
// ============================================================================

// SystemResolver 基于操作系统名称解析的地址解析器
//
// 注意：域名解析出多个 IP 时只取第一个，不做多记录负载均衡。
// 希望稳定解析结果的域名应只配置一个 IP。
type SystemResolver struct {
	cache  *cache
	lookup LookupFunc
}

// NewSystemResolver 创建系统解析器
func NewSystemResolver(cfg Config, opts ...Option) (*SystemResolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("resolver: invalid config: %w", err)
	}

	o := applyOptions(opts)
	c, err := newCache(cfg.CacheSize, cfg.RecordTTL, o.clock)
	if err != nil {
		return nil, err
	}
	return &SystemResolver{cache: c, lookup: o.lookup}, nil
}

// Resolve 实现 AddressResolver
func (r *SystemResolver) Resolve(ctx context.Context, addr types.Address) (netip.AddrPort, error) {
	if ip, ok := addr.IP(); ok {
		return netip.AddrPortFrom(ip, addr.Port()), nil
	}

	domain, _ := addr.Domain()
	fqdn := domain.FQDNStr()

	if ap, ok := r.cache.get(fqdn); ok {
		return ap, nil
	}

	ips, err := r.lookup(ctx, fqdn)
	if err != nil {
		return netip.AddrPort{}, err
	}
	if len(ips) == 0 {
		return netip.AddrPort{}, &NotFoundError{Domain: domain.Str()}
	}

	// 确定性地取第一条记录；先完成查询再写缓存，
	// 取消只会发生在查询阶段，不会留下半写的条目
	ap := netip.AddrPortFrom(ips[0], addr.Port())
	r.cache.put(fqdn, ap)
	logger.Debug("域名解析完成", "domain", domain.Str(), "endpoint", ap.String())
	return ap, nil
}

// ============================================================================
//                              SocketResolver
// ============================================================================

// SocketResolver 只接受 IP 地址的空解析器
//
// 调用方能保证地址永远是 socket 地址时使用，不触碰任何缓存和网络。
type SocketResolver struct{}

// NewSocketResolver 创建空解析器
func NewSocketResolver() *SocketResolver {
	return &SocketResolver{}
}

// Resolve 实现 AddressResolver
func (r *SocketResolver) Resolve(_ context.Context, addr types.Address) (netip.AddrPort, error) {
	if ip, ok := addr.IP(); ok {
		return netip.AddrPortFrom(ip, addr.Port()), nil
	}
	domain, _ := addr.Domain()
	return netip.AddrPort{}, fmt.Errorf("%w: %s", ErrDomainUnsupported, domain.Str())
}
