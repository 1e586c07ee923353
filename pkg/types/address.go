package types

import (
	"net/netip"
	"strconv"
	"strings"
)

// ============================================================================
//                              Address - 节点网络地址
// ============================================================================

// addrKind 地址变体
type addrKind uint8

const (
	kindIP addrKind = iota
	kindDomain
)

// Address 节点网络地址：IP 或域名，加端口
//
// 合法的文本格式：
//  1. `www.example.com:8080` // 域名（可带结尾点）
//  2. `[::1]:8080`           // IPv6
//  3. `127.0.0.1:8080`       // IPv4
//
// 端口是必填项，裸 IP / 裸域名解析失败并返回 ErrMissingPort。
// 创建后不可变（SetPort/WithPort 只改端口字段），可直接用 == 比较、
// 作为 map 键；Compare 提供与 == 一致的全序。
type Address struct {
	kind   addrKind
	ip     netip.Addr
	domain Domain
	port   uint16
}

// ParseAddress 解析地址文本
//
// 依次尝试：完整 socket 地址（含带方括号的 IPv6）→ 裸 IP
// （成功即 ErrMissingPort，端口必填）→ 按最后一个 ':' 拆分
// host/port 并分别校验。域名不含 ':'，从右拆分是安全的。
func ParseAddress(s string) (Address, error) {
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return AddressFromAddrPort(ap), nil
	}

	if _, err := netip.ParseAddr(s); err == nil {
		return Address{}, ErrMissingPort
	}

	idx := strings.LastIndexByte(s, ':')
	if idx < 0 {
		return Address{}, ErrMissingPort
	}

	host, portStr := s[:idx], s[idx+1:]
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return Address{}, &InvalidPortError{Port: portStr, Err: err}
	}

	domain, err := ParseDomain(host)
	if err != nil {
		return Address{}, err
	}

	return Address{kind: kindDomain, domain: domain, port: uint16(port)}, nil
}

// AddressFromAddrPort 从 netip.AddrPort 构造 IP 地址
func AddressFromAddrPort(ap netip.AddrPort) Address {
	return Address{kind: kindIP, ip: ap.Addr(), port: ap.Port()}
}

// AddressFromIP 从 IP 和端口构造地址
func AddressFromIP(ip netip.Addr, port uint16) Address {
	return Address{kind: kindIP, ip: ip, port: port}
}

// AddressFromDomain 从已校验的域名和端口构造地址
func AddressFromDomain(domain Domain, port uint16) Address {
	return Address{kind: kindDomain, domain: domain, port: port}
}

// AddressFromHostPort 从 host 文本和端口构造地址
//
// host 先按 IP 字面量解析，失败则按域名校验。
func AddressFromHostPort(host string, port uint16) (Address, error) {
	if ip, err := netip.ParseAddr(host); err == nil {
		return Address{kind: kindIP, ip: ip, port: port}, nil
	}

	domain, err := ParseDomain(host)
	if err != nil {
		return Address{}, err
	}
	return Address{kind: kindDomain, domain: domain, port: port}, nil
}

// ============================================================================
//                              访问器
// ============================================================================

// IP 返回 IP 变体的地址值
func (a Address) IP() (netip.Addr, bool) {
	if a.kind == kindIP {
		return a.ip, true
	}
	return netip.Addr{}, false
}

// Domain 返回域名变体的域名值
func (a Address) Domain() (Domain, bool) {
	if a.kind == kindDomain {
		return a.domain, true
	}
	return Domain{}, false
}

// Port 返回端口
func (a Address) Port() uint16 {
	return a.port
}

// SetPort 原地修改端口
func (a *Address) SetPort(port uint16) *Address {
	a.port = port
	return a
}

// WithPort 返回端口替换后的副本
func (a Address) WithPort(port uint16) Address {
	a.port = port
	return a
}

// String 返回文本表示
//
// IPv6 带方括号，域名不带结尾点。
func (a Address) String() string {
	if a.kind == kindIP {
		return netip.AddrPortFrom(a.ip, a.port).String()
	}
	return a.domain.Str() + ":" + strconv.FormatUint(uint64(a.port), 10)
}

// ============================================================================
//                              比较与排序
// ============================================================================

// Equal 报告两个地址是否相等
func (a Address) Equal(b Address) bool {
	return a == b
}

// Compare 返回全序比较结果（-1、0、1）
//
// 先按变体排序（IP 在域名之前），同变体内 IP 按 netip.Addr
// 排序（IPv4 在 IPv6 之前）、域名按 Str() 的字典序，最后按端口。
// 该排序满足自反/反对称/传递，且与 Equal 一致。
func (a Address) Compare(b Address) int {
	if c := a.compareKind(b); c != 0 {
		return c
	}
	switch {
	case a.port < b.port:
		return -1
	case a.port > b.port:
		return 1
	default:
		return 0
	}
}

func (a Address) compareKind(b Address) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if a.kind == kindIP {
		return a.ip.Compare(b.ip)
	}
	return strings.Compare(a.domain.Str(), b.domain.Str())
}
