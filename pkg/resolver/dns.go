package resolver

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/miekg/dns"

	"github.com/dep2p/go-nodeaddr/pkg/types"
)

// ============================================================================
//                              DNSResolver
// ============================================================================

// DNSResolver 直接向 DNS 服务器发起查询的地址解析器
//
// 服务器列表来自 Config.DNSConfigPath（默认 /etc/resolv.conf）。
// 配置文件缺失或没有可用服务器时不报错，记录警告并退化为纯系统解析。
// 查询顺序：A 记录，无结果再查 AAAA；取第一条应答。
// 与 SystemResolver 共享同一套 TTL 缓存语义。
type DNSResolver struct {
	cache    *cache
	client   *dns.Client
	servers  []string
	fallback LookupFunc
}

// NewDNSResolver 创建 DNS 解析器
func NewDNSResolver(cfg Config, opts ...Option) (*DNSResolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("resolver: invalid config: %w", err)
	}

	o := applyOptions(opts)
	c, err := newCache(cfg.CacheSize, cfg.RecordTTL, o.clock)
	if err != nil {
		return nil, err
	}

	r := &DNSResolver{cache: c, fallback: o.lookup}

	clientCfg, err := dns.ClientConfigFromFile(cfg.DNSConfigPath)
	switch {
	case err != nil:
		logger.Warn("读取 DNS 配置失败，退化为系统解析",
			"path", cfg.DNSConfigPath, "err", err)
	case len(clientCfg.Servers) == 0:
		logger.Warn("DNS 配置中没有服务器，退化为系统解析",
			"path", cfg.DNSConfigPath)
	default:
		for _, server := range clientCfg.Servers {
			r.servers = append(r.servers, net.JoinHostPort(server, clientCfg.Port))
		}
		r.client = &dns.Client{Timeout: cfg.Timeout}
	}

	return r, nil
}

// Resolve 实现 AddressResolver
func (r *DNSResolver) Resolve(ctx context.Context, addr types.Address) (netip.AddrPort, error) {
	if ip, ok := addr.IP(); ok {
		return netip.AddrPortFrom(ip, addr.Port()), nil
	}

	domain, _ := addr.Domain()
	fqdn := domain.FQDNStr()

	if ap, ok := r.cache.get(fqdn); ok {
		return ap, nil
	}

	// 先走 DNS 客户端
	if r.client != nil {
		ip, found, err := r.query(ctx, fqdn)
		if err != nil {
			return netip.AddrPort{}, err
		}
		if found {
			ap := netip.AddrPortFrom(ip, addr.Port())
			r.cache.put(fqdn, ap)
			return ap, nil
		}
	}

	// 回退到系统解析
	ips, err := r.fallback(ctx, fqdn)
	if err != nil {
		return netip.AddrPort{}, err
	}
	if len(ips) > 0 {
		ap := netip.AddrPortFrom(ips[0], addr.Port())
		r.cache.put(fqdn, ap)
		return ap, nil
	}

	return netip.AddrPort{}, &NotFoundError{Domain: domain.Str()}
}

// query 依次查询 A、AAAA 记录，返回第一条应答
func (r *DNSResolver) query(ctx context.Context, fqdn string) (netip.Addr, bool, error) {
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		reply, err := r.exchange(ctx, fqdn, qtype)
		if err != nil {
			return netip.Addr{}, false, err
		}
		if reply == nil || reply.Rcode != dns.RcodeSuccess {
			continue
		}
		for _, rr := range reply.Answer {
			if ip, ok := answerAddr(rr); ok {
				return ip, true, nil
			}
		}
	}
	return netip.Addr{}, false, nil
}

// exchange 对每个服务器尝试一次查询，第一个成功应答者胜出
func (r *DNSResolver) exchange(ctx context.Context, fqdn string, qtype uint16) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(fqdn, qtype)

	var lastErr error
	for _, server := range r.servers {
		reply, _, err := r.client.ExchangeContext(ctx, msg, server)
		if err != nil {
			lastErr = err
			logger.Debug("DNS 查询失败，尝试下一个服务器",
				"server", server, "domain", fqdn, "err", err)
			continue
		}
		return reply, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("resolver: exchange %s: %w", fqdn, lastErr)
	}
	return nil, ErrNoNameservers
}

// answerAddr 从应答记录中提取 IP
func answerAddr(rr dns.RR) (netip.Addr, bool) {
	switch rr := rr.(type) {
	case *dns.A:
		if ip, ok := netip.AddrFromSlice(rr.A.To4()); ok {
			return ip, true
		}
	case *dns.AAAA:
		if ip, ok := netip.AddrFromSlice(rr.AAAA.To16()); ok {
			return ip, true
		}
	}
	return netip.Addr{}, false
}
