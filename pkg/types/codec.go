package types

import (
	"encoding/binary"
	"io"
	"net/netip"
	"unicode/utf8"
)

// ============================================================================
//                              线格式常量
// ============================================================================

// 地址线格式（整数一律大端）：
//
//	| 标签 | 载荷                          | 总长（含标签和端口）|
//	|------|-------------------------------|---------------------|
//	| 4    | 4 字节原始 IPv4               | 7                   |
//	| 6    | 16 字节原始 IPv6              | 19                  |
//	| 0    | 1 字节长度 L + L 字节 FQDN    | 4+L                 |
//
// 格式是封闭的、无版本号，未知标签一律拒绝。
const (
	tagDomain byte = 0
	tagIPv4   byte = 4
	tagIPv6   byte = 6

	tagSize       = 1
	domainLenSize = 1
	portSize      = 2
	v4Size        = 4
	v6Size        = 16

	// minEncodedLen 最短编码长度（IPv4 变体）
	minEncodedLen = tagSize + v4Size + portSize

	v6EncodedLen = tagSize + v6Size + portSize

	// inlineSize 编码长度低于该阈值时使用栈上缓冲，避免堆分配
	inlineSize = 64

	// idLenSize NodeID 线格式的长度前缀字节数
	idLenSize = 2
)

// ============================================================================
//                              Address 编解码
// ============================================================================

// EncodedLen 返回编码后的字节数
//
// 不做任何分配，且严格等于 Encode 实际写出的字节数。
func (a Address) EncodedLen() int {
	if a.kind == kindIP {
		if a.ip.Is4() {
			return minEncodedLen
		}
		return v6EncodedLen
	}
	return tagSize + domainLenSize + len(a.domain.fqdn) + portSize
}

// Encode 将地址编码进 dst，返回写入的字节数
//
// dst 不足时返回 ErrEncodeBufferTooSmall，且不写入任何字节。
func (a Address) Encode(dst []byte) (int, error) {
	n := a.EncodedLen()
	if len(dst) < n {
		return 0, ErrEncodeBufferTooSmall
	}

	if a.kind == kindIP {
		if a.ip.Is4() {
			octets := a.ip.As4()
			dst[0] = tagIPv4
			copy(dst[1:5], octets[:])
			binary.BigEndian.PutUint16(dst[5:7], a.port)
			return n, nil
		}
		octets := a.ip.As16()
		dst[0] = tagIPv6
		copy(dst[1:17], octets[:])
		binary.BigEndian.PutUint16(dst[17:19], a.port)
		return n, nil
	}

	fqdn := a.domain.fqdn
	dst[0] = tagDomain
	dst[1] = byte(len(fqdn))
	copy(dst[2:2+len(fqdn)], fqdn)
	binary.BigEndian.PutUint16(dst[2+len(fqdn):], a.port)
	return n, nil
}

// EncodeTo 将地址编码写入 w，返回写入的字节数
//
// 写出的字节与 Encode 完全一致。域名变体在编码长度低于
// inlineSize 时使用栈上缓冲。
func (a Address) EncodeTo(w io.Writer) (int, error) {
	n := a.EncodedLen()
	if n <= inlineSize {
		var buf [inlineSize]byte
		if _, err := a.Encode(buf[:n]); err != nil {
			return 0, err
		}
		return w.Write(buf[:n])
	}

	buf := make([]byte, n)
	if _, err := a.Encode(buf); err != nil {
		return 0, err
	}
	return w.Write(buf)
}

// DecodeAddress 从 src 解码一个地址，返回消费的字节数
//
// 失败模式：ErrCorruptedAddress（截断）、UnknownAddressTagError、
// ErrInvalidUTF8、ErrInvalidDomain。绝不对畸形输入 panic。
func DecodeAddress(src []byte) (int, Address, error) {
	if len(src) < tagSize+domainLenSize {
		return 0, Address{}, ErrCorruptedAddress
	}

	switch tag := src[0]; tag {
	case tagDomain:
		l := int(src[1])
		n := tagSize + domainLenSize + l + portSize
		if len(src) < n {
			return 0, Address{}, ErrCorruptedAddress
		}
		payload := src[2 : 2+l]
		if !utf8.Valid(payload) {
			return 0, Address{}, ErrInvalidUTF8
		}
		port := binary.BigEndian.Uint16(src[2+l:])
		addr, err := AddressFromHostPort(string(payload), port)
		if err != nil {
			return 0, Address{}, err
		}
		return n, addr, nil

	case tagIPv4:
		if len(src) < minEncodedLen {
			return 0, Address{}, ErrCorruptedAddress
		}
		ip := netip.AddrFrom4([4]byte(src[1:5]))
		port := binary.BigEndian.Uint16(src[5:7])
		return minEncodedLen, AddressFromIP(ip, port), nil

	case tagIPv6:
		if len(src) < v6EncodedLen {
			return 0, Address{}, ErrCorruptedAddress
		}
		ip := netip.AddrFrom16([16]byte(src[1:17]))
		port := binary.BigEndian.Uint16(src[17:19])
		return v6EncodedLen, AddressFromIP(ip, port), nil

	default:
		return 0, Address{}, UnknownAddressTagError(tag)
	}
}

// DecodeAddressFrom 从 r 解码一个地址，返回消费的字节数
//
// 先读取标签加一个字节（域名变体的长度前缀），据此确定剩余载荷
// 后再精确读取，不会越过本条记录多读。
// 解码结果与 DecodeAddress 在相同字节上完全一致。
func DecodeAddressFrom(r io.Reader) (int, Address, error) {
	const headSize = tagSize + domainLenSize
	var head [headSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return 0, Address{}, err
	}

	switch tag := head[0]; tag {
	case tagDomain:
		l := int(head[1])
		total := l + portSize
		decode := func(buf []byte) (Address, error) {
			if _, err := io.ReadFull(r, buf); err != nil {
				return Address{}, err
			}
			payload := buf[:l]
			if !utf8.Valid(payload) {
				return Address{}, ErrInvalidUTF8
			}
			port := binary.BigEndian.Uint16(buf[l:])
			return AddressFromHostPort(string(payload), port)
		}

		var addr Address
		var err error
		if total <= inlineSize {
			var buf [inlineSize]byte
			addr, err = decode(buf[:total])
		} else {
			addr, err = decode(make([]byte, total))
		}
		if err != nil {
			return headSize, Address{}, err
		}
		return headSize + total, addr, nil

	case tagIPv4:
		var rest [minEncodedLen - headSize]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return headSize, Address{}, err
		}
		var octets [v4Size]byte
		octets[0] = head[1]
		copy(octets[1:], rest[:v4Size-1])
		port := binary.BigEndian.Uint16(rest[v4Size-1:])
		return minEncodedLen, AddressFromIP(netip.AddrFrom4(octets), port), nil

	case tagIPv6:
		var rest [v6EncodedLen - headSize]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return headSize, Address{}, err
		}
		var octets [v6Size]byte
		octets[0] = head[1]
		copy(octets[1:], rest[:v6Size-1])
		port := binary.BigEndian.Uint16(rest[v6Size-1:])
		return v6EncodedLen, AddressFromIP(netip.AddrFrom16(octets), port), nil

	default:
		return headSize, Address{}, UnknownAddressTagError(tag)
	}
}
