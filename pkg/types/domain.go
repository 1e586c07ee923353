package types

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// ============================================================================
//                              常量定义
// ============================================================================

const (
	// maxLabelLength 单个 label 最多 63 字节（RFC 1035）
	maxLabelLength = 63

	// maxNameLength 域名总长最多 253 字节
	maxNameLength = 253
)

// idnaProfile 非 ASCII 域名的 IDNA (UTS#46) 转换配置
//
// 允许 label 内部的连字符（不做 CheckHyphens 校验），
// 并校验转换结果的 DNS 长度限制。
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.CheckHyphens(false),
	idna.StrictDomainName(true),
	idna.VerifyDNSLength(true),
	idna.BidiRule(),
)

// ============================================================================
//                              Domain - 规范化域名
// ============================================================================

// Domain 经过校验和规范化的域名
//
// 内部始终以 FQDN 形式存储（恰好一个结尾点）。
// 两个 Domain 只要 Str() 相同即相等，与输入是否带结尾点无关。
// 创建后不可变，可直接用 == 比较、作为 map 键。
//
// 零值为无效域名，只能通过 ParseDomain / ParseDomainBytes 构造。
type Domain struct {
	fqdn string
}

// ParseDomain 校验并规范化域名
//
// ASCII 输入走单遍状态机校验；非 ASCII 输入走 IDNA ToASCII
// 转换为 punycode（xn--）形式。校验失败返回 ErrInvalidDomain。
func ParseDomain(s string) (Domain, error) {
	if isASCII(s) {
		if err := validateDomain(s); err != nil {
			return Domain{}, err
		}
		if strings.HasSuffix(s, ".") {
			return Domain{fqdn: s}, nil
		}
		return Domain{fqdn: s + "."}, nil
	}

	ascii, err := domainToASCII(s)
	if err != nil {
		return Domain{}, err
	}
	return Domain{fqdn: ascii}, nil
}

// ParseDomainBytes 从字节切片校验并规范化域名
func ParseDomainBytes(b []byte) (Domain, error) {
	if !utf8.Valid(b) {
		return Domain{}, ErrInvalidDomain
	}
	return ParseDomain(string(b))
}

// Str 返回去掉结尾点的字符串表示
//
// 用于显示以及与用户输入比较。
func (d Domain) Str() string {
	return strings.TrimSuffix(d.fqdn, ".")
}

// FQDNStr 返回保留结尾点的 FQDN 表示
//
// 用于 DNS 查询。
func (d Domain) FQDNStr() string {
	return d.fqdn
}

// IsValid 报告域名是否由 ParseDomain 成功构造
func (d Domain) IsValid() bool {
	return d.fqdn != ""
}

// String 实现 fmt.Stringer
func (d Domain) String() string {
	return d.Str()
}

// domainToASCII 将非 ASCII 域名经 IDNA 转换为规范 FQDN 形式
func domainToASCII(s string) (string, error) {
	// IDNA 长度校验不接受根点，先摘除再补回
	s = strings.TrimSuffix(s, ".")
	ascii, err := idnaProfile.ToASCII(s)
	if err != nil || ascii == "" {
		return "", ErrInvalidDomain
	}
	return ascii + ".", nil
}

// ============================================================================
//                              语法校验
// ============================================================================

// 状态机状态
//
// numericOnly 跟踪"当前 label 到目前为止全为数字"，
// 用于拒绝纯数字结尾 label（与点分 IPv4 字面量歧义）。
type domainState uint8

const (
	stateStart            domainState = iota // 扫描开始
	stateNext                                // 刚越过一个普通 label 的点
	stateNextAfterNumeric                    // 刚越过一个纯数字 label 的点
	stateLabel                               // label 内部（已含非数字字符）
	stateNumericOnly                         // label 内部（至今全为数字）
	stateHyphen                              // label 内部且前一字符为连字符
)

// validateDomain 单遍扫描校验 ASCII 域名语法
//
// 规则：label 字符集 [A-Za-z0-9_-]；label 不能以连字符开头或结尾；
// 单个 label ≤63 字节；总长 ≤253 字节；不允许空 label（".." 或前导点），
// 唯一例外是单字符根域名 "."；最后一个 label 不能是纯数字
// （无论是否带结尾点）。
func validateDomain(s string) error {
	n := len(s)
	if n == 0 || n > maxNameLength {
		return ErrInvalidDomain
	}
	if n == 1 && s[0] == '.' {
		return nil
	}

	state := stateStart
	labelLen := 0

	for i := 0; i < n; i++ {
		c := s[i]
		switch state {
		case stateStart, stateNext, stateNextAfterNumeric:
			// label 的第一个字符：不允许点和连字符
			switch {
			case c >= '0' && c <= '9':
				state = stateNumericOnly
			case isAlpha(c) || c == '_':
				state = stateLabel
			default:
				return ErrInvalidDomain
			}
			labelLen = 1

		case stateLabel, stateNumericOnly:
			if c == '.' {
				if state == stateNumericOnly {
					state = stateNextAfterNumeric
				} else {
					state = stateNext
				}
				labelLen = 0
				continue
			}
			if labelLen >= maxLabelLength {
				return ErrInvalidDomain
			}
			switch {
			case c == '-':
				state = stateHyphen
			case c >= '0' && c <= '9':
				if state != stateNumericOnly {
					state = stateLabel
				}
			case isAlpha(c) || c == '_':
				state = stateLabel
			default:
				return ErrInvalidDomain
			}
			labelLen++

		case stateHyphen:
			// label 不能以连字符结尾
			if c == '.' {
				return ErrInvalidDomain
			}
			if labelLen >= maxLabelLength {
				return ErrInvalidDomain
			}
			switch {
			case c == '-':
				state = stateHyphen
			case isAlpha(c) || isDigit(c) || c == '_':
				state = stateLabel
			default:
				return ErrInvalidDomain
			}
			labelLen++
		}
	}

	// 合法的终止状态：label 内部（非纯数字、非连字符结尾）
	// 或刚越过普通 label 的点（即 FQDN）
	switch state {
	case stateLabel, stateNext:
		return nil
	default:
		return ErrInvalidDomain
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
