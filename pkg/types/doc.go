// Package types 定义 go-nodeaddr 的基础值类型
//
// 这是整个模块的最底层包，不依赖任何其他内部包。
// 所有类型都是不可变值类型，用于在分布式系统组件间标识节点并描述网络端点：
//
//   - Domain: 经过校验和规范化的域名（内部始终以 FQDN 形式存储）
//   - DomainRef: 零拷贝的域名校验视图，延迟构造 Domain
//   - Address: IPv4/IPv6/域名 + 端口的带标签联合类型
//   - NodeID: 有界的不透明字符串标识符
//
// Address 和 NodeID 提供自描述的二进制线格式，
// 均支持缓冲区与流式两种编解码入口，且字节级一致。
package types
