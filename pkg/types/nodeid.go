package types

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// ============================================================================
//                              NodeID - 节点标识
// ============================================================================

// MaxNodeIDSize 节点标识的最大长度（字节）
const MaxNodeIDSize = 512

// NodeID 节点的不透明字符串标识符
//
// 长度限制在 1..=MaxNodeIDSize 字节，永不为空。
// 相等性和排序按底层字节定义。创建后不可变，
// 可直接用 == 比较、作为 map 键。
//
// 线格式：2 字节大端长度前缀 + 原始 UTF-8 字节。
type NodeID struct {
	s string
}

// NewNodeID 从字符串创建节点标识
//
// 空字符串返回 ErrEmptyNodeID，超长返回 NodeIDTooLargeError。
func NewNodeID(s string) (NodeID, error) {
	if s == "" {
		return NodeID{}, ErrEmptyNodeID
	}
	if len(s) > MaxNodeIDSize {
		return NodeID{}, &NodeIDTooLargeError{Max: MaxNodeIDSize, Got: len(s)}
	}
	return NodeID{s: s}, nil
}

// NodeIDFromBytes 从字节切片创建节点标识
func NodeIDFromBytes(b []byte) (NodeID, error) {
	if !utf8.Valid(b) {
		return NodeID{}, ErrInvalidUTF8
	}
	return NewNodeID(string(b))
}

// Str 返回底层字符串
func (id NodeID) Str() string {
	return id.s
}

// Bytes 返回底层字节的副本
func (id NodeID) Bytes() []byte {
	return []byte(id.s)
}

// IsValid 报告标识是否由 NewNodeID 成功构造
func (id NodeID) IsValid() bool {
	return id.s != ""
}

// String 实现 fmt.Stringer
func (id NodeID) String() string {
	return id.s
}

// ============================================================================
//                              编解码
// ============================================================================

// EncodedLen 返回编码后的字节数
func (id NodeID) EncodedLen() int {
	return idLenSize + len(id.s)
}

// Encode 将标识编码进 dst，返回写入的字节数
func (id NodeID) Encode(dst []byte) (int, error) {
	n := id.EncodedLen()
	if len(dst) < n {
		return 0, ErrEncodeBufferTooSmall
	}
	binary.BigEndian.PutUint16(dst[:idLenSize], uint16(len(id.s)))
	copy(dst[idLenSize:], id.s)
	return n, nil
}

// EncodeTo 将标识编码写入 w，返回写入的字节数
func (id NodeID) EncodeTo(w io.Writer) (int, error) {
	n := id.EncodedLen()
	if n <= inlineSize {
		var buf [inlineSize]byte
		if _, err := id.Encode(buf[:n]); err != nil {
			return 0, err
		}
		return w.Write(buf[:n])
	}

	buf := make([]byte, n)
	if _, err := id.Encode(buf); err != nil {
		return 0, err
	}
	return w.Write(buf)
}

// DecodeNodeID 从 src 解码一个标识，返回消费的字节数
//
// 长度前缀超出可用字节返回 ErrCorruptedNodeID，
// 非 UTF-8 载荷返回 ErrInvalidUTF8，
// 越界长度复用 NewNodeID 的校验。
func DecodeNodeID(src []byte) (int, NodeID, error) {
	if len(src) < idLenSize {
		return 0, NodeID{}, ErrCorruptedNodeID
	}
	l := int(binary.BigEndian.Uint16(src[:idLenSize]))
	if len(src) < idLenSize+l {
		return 0, NodeID{}, ErrCorruptedNodeID
	}

	id, err := NodeIDFromBytes(src[idLenSize : idLenSize+l])
	if err != nil {
		return 0, NodeID{}, err
	}
	return idLenSize + l, id, nil
}

// DecodeNodeIDFrom 从 r 解码一个标识，返回消费的字节数
//
// 先读 2 字节长度前缀，再精确读取载荷；
// 小标识走栈上缓冲，与地址解码的内联策略一致。
func DecodeNodeIDFrom(r io.Reader) (int, NodeID, error) {
	var head [idLenSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return 0, NodeID{}, err
	}
	l := int(binary.BigEndian.Uint16(head[:]))

	read := func(buf []byte) (NodeID, error) {
		if _, err := io.ReadFull(r, buf); err != nil {
			return NodeID{}, err
		}
		return NodeIDFromBytes(buf)
	}

	var id NodeID
	var err error
	if l <= inlineSize {
		var buf [inlineSize]byte
		id, err = read(buf[:l])
	} else {
		id, err = read(make([]byte, l))
	}
	if err != nil {
		return idLenSize, NodeID{}, err
	}
	return idLenSize + l, id, nil
}
