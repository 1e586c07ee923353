package types

import "strings"

// DomainRef 零拷贝的域名校验视图
//
// 对调用方持有的字符串做与 ParseDomain 完全相同的校验，
// 但不构造规范化副本，只记录 fqdn/idn 两个标志。
// 适合只需确认合法性、暂不需要保留值的热路径；
// 需要保留时再调用 Domain() 延迟物化。
type DomainRef struct {
	src  string
	fqdn bool
	idn  bool
}

// ParseDomainRef 校验域名并返回零拷贝视图
func ParseDomainRef(s string) (DomainRef, error) {
	if isASCII(s) {
		if err := validateDomain(s); err != nil {
			return DomainRef{}, err
		}
		return DomainRef{src: s, fqdn: strings.HasSuffix(s, ".")}, nil
	}

	// 非 ASCII：转换即校验，结果丢弃，物化时重算
	if _, err := domainToASCII(s); err != nil {
		return DomainRef{}, err
	}
	return DomainRef{src: s, fqdn: strings.HasSuffix(s, "."), idn: true}, nil
}

// Str 返回去掉结尾点的字符串表示
//
// 注意：IDN 输入返回的是原始 Unicode 形式，
// punycode 形式需通过 Domain() 物化获得。
func (r DomainRef) Str() string {
	return strings.TrimSuffix(r.src, ".")
}

// SourceStr 返回创建该视图时的原始字符串
func (r DomainRef) SourceStr() string {
	return r.src
}

// IsFQDN 报告原始输入是否带结尾点
func (r DomainRef) IsFQDN() bool {
	return r.fqdn
}

// IsIDN 报告原始输入是否为国际化域名
func (r DomainRef) IsIDN() bool {
	return r.idn
}

// Domain 物化为规范化的 Domain
//
// 视图创建时已完成校验，此处不会失败。
func (r DomainRef) Domain() Domain {
	if r.idn {
		ascii, err := domainToASCII(r.src)
		if err != nil {
			return Domain{}
		}
		return Domain{fqdn: ascii}
	}
	if r.fqdn {
		return Domain{fqdn: r.src}
	}
	return Domain{fqdn: r.src + "."}
}
