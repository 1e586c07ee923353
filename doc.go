// Package nodeaddr 提供分布式系统的节点标识与网络端点值模型
//
// go-nodeaddr 定义节点的身份（NodeID）和可达位置（Address），
// 以及把域名地址解析为具体 socket 端点的解析器。
//
// # 核心概念
//
//   - Domain: 经过语法校验（含 IDNA 规范化）的域名，内部以 FQDN 存储
//   - Address: IPv4/IPv6/域名 + 端口的带标签联合类型，
//     附带自描述的二进制线格式（严格往返、分配有界）
//   - NodeID: 有界的不透明字符串标识符，1..=512 字节
//   - resolver: 带 TTL 缓存的域名到 socket 端点解析
//
// # 快速开始
//
//	import (
//	    "github.com/dep2p/go-nodeaddr"
//	    "github.com/dep2p/go-nodeaddr/pkg/resolver"
//	)
//
//	// 1. 解析地址文本
//	addr, err := nodeaddr.ParseAddress("www.example.com:8080")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 2. 二进制编解码
//	buf := make([]byte, addr.EncodedLen())
//	addr.Encode(buf)
//	_, decoded, _ := nodeaddr.DecodeAddress(buf)
//
//	// 3. 解析为具体端点
//	r, _ := resolver.NewSystemResolver(resolver.DefaultConfig())
//	endpoint, err := r.Resolve(ctx, addr)
//
// # 包结构
//
//   - 根包: pkg/types 公共类型的别名与便捷入口
//   - pkg/types: 基础值类型与二进制编解码（最底层，无内部依赖）
//   - pkg/resolver: AddressResolver 接口与三个实现
package nodeaddr
