package types

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestNewNodeID 测试构造校验
func TestNewNodeID(t *testing.T) {
	id, err := NewNodeID("node-1")
	if err != nil {
		t.Fatal(err)
	}
	if id.Str() != "node-1" || id.String() != "node-1" {
		t.Errorf("Str() = %q", id.Str())
	}
	if !bytes.Equal(id.Bytes(), []byte("node-1")) {
		t.Errorf("Bytes() = %q", id.Bytes())
	}
	if !id.IsValid() {
		t.Error("IsValid() = false")
	}

	if _, err := NewNodeID(""); !errors.Is(err, ErrEmptyNodeID) {
		t.Errorf("空标识 error = %v, want ErrEmptyNodeID", err)
	}

	var tooLarge *NodeIDTooLargeError
	_, err = NewNodeID(strings.Repeat("a", MaxNodeIDSize+1))
	if !errors.As(err, &tooLarge) {
		t.Fatalf("超长标识 error = %v, want NodeIDTooLargeError", err)
	}
	if tooLarge.Max != MaxNodeIDSize || tooLarge.Got != MaxNodeIDSize+1 {
		t.Errorf("TooLarge{Max: %d, Got: %d}", tooLarge.Max, tooLarge.Got)
	}

	// 恰好在上限内
	if _, err := NewNodeID(strings.Repeat("a", MaxNodeIDSize)); err != nil {
		t.Errorf("%d 字节标识应合法: %v", MaxNodeIDSize, err)
	}
}

// TestNodeIDWireLayout 测试精确的字节布局
func TestNodeIDWireLayout(t *testing.T) {
	id, err := NewNodeID("ab")
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, id.EncodedLen())
	n, err := id.Encode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || !bytes.Equal(buf, []byte{0x00, 0x02, 'a', 'b'}) {
		t.Errorf("编码 = %x (n=%d), want 000261 62 (n=4)", buf, n)
	}
}

// TestNodeIDRoundTrip 测试缓冲区与流式编解码往返
func TestNodeIDRoundTrip(t *testing.T) {
	ids := []string{
		"a",
		"node-1",
		strings.Repeat("x", 63),
		strings.Repeat("y", 100),
		strings.Repeat("z", MaxNodeIDSize),
	}

	for _, s := range ids {
		id, err := NewNodeID(s)
		if err != nil {
			t.Fatal(err)
		}

		buf := make([]byte, id.EncodedLen())
		n, err := id.Encode(buf)
		if err != nil {
			t.Fatal(err)
		}
		if n != id.EncodedLen() {
			t.Errorf("Encode 写入 %d 字节, EncodedLen() = %d", n, id.EncodedLen())
		}

		m, decoded, err := DecodeNodeID(buf)
		if err != nil {
			t.Fatal(err)
		}
		if m != n || decoded != id {
			t.Errorf("往返 (%d, %q), want (%d, %q)", m, decoded, n, id)
		}

		var stream bytes.Buffer
		if _, err := id.EncodeTo(&stream); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(stream.Bytes(), buf) {
			t.Errorf("流式编码与缓冲区编码不一致")
		}
		m, decoded, err = DecodeNodeIDFrom(&stream)
		if err != nil {
			t.Fatal(err)
		}
		if m != n || decoded != id {
			t.Errorf("流式往返 (%d, %q), want (%d, %q)", m, decoded, n, id)
		}
	}
}

// TestNodeIDEncodeBufferTooSmall 缓冲区差一个字节
func TestNodeIDEncodeBufferTooSmall(t *testing.T) {
	id, _ := NewNodeID("node-1")
	buf := make([]byte, id.EncodedLen()-1)
	if _, err := id.Encode(buf); !errors.Is(err, ErrEncodeBufferTooSmall) {
		t.Errorf("error = %v, want ErrEncodeBufferTooSmall", err)
	}
}

// TestDecodeNodeIDErrors 测试解码失败模式
func TestDecodeNodeIDErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		wantErr error
	}{
		{"Empty", nil, ErrCorruptedNodeID},
		{"Prefix only", []byte{0x00}, ErrCorruptedNodeID},
		{"Length beyond available", []byte{0x00, 0x05, 'a', 'b'}, ErrCorruptedNodeID},
		{"Zero length", []byte{0x00, 0x00}, ErrEmptyNodeID},
		{"Invalid UTF-8", []byte{0x00, 0x02, 0xFF, 0xFE}, ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeNodeID(tt.src); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// 长度前缀超过上限：载荷本身非法
	src := make([]byte, 2+MaxNodeIDSize+1)
	src[0] = byte((MaxNodeIDSize + 1) >> 8)
	src[1] = byte((MaxNodeIDSize + 1) & 0xFF)
	for i := 2; i < len(src); i++ {
		src[i] = 'a'
	}
	var tooLarge *NodeIDTooLargeError
	if _, _, err := DecodeNodeID(src); !errors.As(err, &tooLarge) {
		t.Errorf("error = %v, want NodeIDTooLargeError", err)
	}
}
