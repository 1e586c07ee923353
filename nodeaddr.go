package nodeaddr

import (
	"io"
	"net/netip"

	"github.com/dep2p/go-nodeaddr/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// Domain 见 types.Domain
type Domain = types.Domain

// DomainRef 见 types.DomainRef
type DomainRef = types.DomainRef

// Address 见 types.Address
type Address = types.Address

// NodeID 见 types.NodeID
type NodeID = types.NodeID

// MaxNodeIDSize 节点标识的最大长度（字节）
const MaxNodeIDSize = types.MaxNodeIDSize

// ════════════════════════════════════════════════════════════════════════════
//                              构造入口
// ════════════════════════════════════════════════════════════════════════════

// ParseDomain 校验并规范化域名
func ParseDomain(s string) (Domain, error) {
	return types.ParseDomain(s)
}

// ParseDomainRef 校验域名并返回零拷贝视图
func ParseDomainRef(s string) (DomainRef, error) {
	return types.ParseDomainRef(s)
}

// ParseAddress 解析 `host:port` 形式的地址文本
func ParseAddress(s string) (Address, error) {
	return types.ParseAddress(s)
}

// AddressFromIP 从 IP 和端口构造地址
func AddressFromIP(ip netip.Addr, port uint16) Address {
	return types.AddressFromIP(ip, port)
}

// AddressFromDomain 从已校验的域名和端口构造地址
func AddressFromDomain(domain Domain, port uint16) Address {
	return types.AddressFromDomain(domain, port)
}

// NewNodeID 从字符串创建节点标识
func NewNodeID(s string) (NodeID, error) {
	return types.NewNodeID(s)
}

// ════════════════════════════════════════════════════════════════════════════
//                              解码入口
// ════════════════════════════════════════════════════════════════════════════

// DecodeAddress 从字节切片解码一个地址
func DecodeAddress(src []byte) (int, Address, error) {
	return types.DecodeAddress(src)
}

// DecodeAddressFrom 从流解码一个地址
func DecodeAddressFrom(r io.Reader) (int, Address, error) {
	return types.DecodeAddressFrom(r)
}

// DecodeNodeID 从字节切片解码一个节点标识
func DecodeNodeID(src []byte) (int, NodeID, error) {
	return types.DecodeNodeID(src)
}

// DecodeNodeIDFrom 从流解码一个节点标识
func DecodeNodeIDFrom(r io.Reader) (int, NodeID, error) {
	return types.DecodeNodeIDFrom(r)
}
