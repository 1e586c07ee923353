// Package resolver 将节点地址解析为具体的 socket 端点
//
// 提供统一的 AddressResolver 接口和三个实现：
//
//   - SystemResolver: 走操作系统名称解析（默认 net.DefaultResolver）
//   - DNSResolver: 直接向 resolv.conf 中的 DNS 服务器发起查询，
//     无可用服务器时回退到系统解析
//   - SocketResolver: 只接受 IP 地址的空解析器
//
// 域名解析结果按 TTL 记忆在并发缓存中：读到过期条目时惰性删除，
// 没有后台清扫；同一域名的并发未命中可能各自发起一次冗余查询
// （不做请求合并）。取消进行中的 Resolve 不会留下写了一半的缓存条目。
package resolver
