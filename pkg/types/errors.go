package types

import (
	"errors"
	"fmt"
)

// 预定义错误
var (
	// ErrInvalidDomain 输入不是语法合法的 DNS 域名
	ErrInvalidDomain = errors.New("types: invalid domain name")

	// ErrMissingPort 地址文本缺少端口
	ErrMissingPort = errors.New("types: address is missing port")

	// ErrEncodeBufferTooSmall 编码缓冲区不足，应先用 EncodedLen 预分配
	ErrEncodeBufferTooSmall = errors.New("types: buffer is too small, use EncodedLen to pre-allocate")

	// ErrCorruptedAddress 地址字节序列被截断或损坏
	ErrCorruptedAddress = errors.New("types: corrupted address")

	// ErrCorruptedNodeID 节点标识字节序列被截断或损坏
	ErrCorruptedNodeID = errors.New("types: corrupted node id")

	// ErrInvalidUTF8 载荷不是合法的 UTF-8 序列
	ErrInvalidUTF8 = errors.New("types: invalid utf-8 payload")

	// ErrEmptyNodeID 节点标识不能为空
	ErrEmptyNodeID = errors.New("types: node id is empty")
)

// UnknownAddressTagError 地址线格式中出现未知的标签字节
//
// 线格式是封闭的：除 0（域名）、4（IPv4）、6（IPv6）以外的标签一律拒绝。
type UnknownAddressTagError byte

func (e UnknownAddressTagError) Error() string {
	return fmt.Sprintf("types: unknown address tag: %d", byte(e))
}

// InvalidPortError 地址文本中的端口无法解析为 u16
type InvalidPortError struct {
	Port string
	Err  error
}

func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("types: invalid port %q: %v", e.Port, e.Err)
}

func (e *InvalidPortError) Unwrap() error { return e.Err }

// NodeIDTooLargeError 节点标识超过长度上限
type NodeIDTooLargeError struct {
	Max int
	Got int
}

func (e *NodeIDTooLargeError) Error() string {
	return fmt.Sprintf("types: node id too large, max %d bytes, got %d", e.Max, e.Got)
}
