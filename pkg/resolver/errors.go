package resolver

import (
	"errors"
	"fmt"
)

// 预定义错误
var (
	// ErrDomainUnsupported 解析器不支持域名地址
	ErrDomainUnsupported = errors.New("resolver: resolver does not support domain addresses")

	// ErrNoNameservers resolv.conf 中没有可用的 DNS 服务器
	ErrNoNameservers = errors.New("resolver: no nameservers configured")
)

// NotFoundError 域名没有解析出任何地址
type NotFoundError struct {
	Domain string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resolver: cannot resolve an ip address for %s", e.Domain)
}
