package resolver

import (
	"errors"
	"time"
)

// ============================================================================
//                              配置定义
// ============================================================================

// Config 解析器配置
type Config struct {
	// RecordTTL 解析结果的缓存时长
	RecordTTL time.Duration

	// DNSConfigPath DNS 配置文件路径（DNSResolver 使用）
	DNSConfigPath string

	// Timeout 单次 DNS 查询超时
	Timeout time.Duration

	// CacheSize 缓存的最大条目数
	CacheSize int
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		RecordTTL:     60 * time.Second,
		DNSConfigPath: "/etc/resolv.conf",
		Timeout:       10 * time.Second,
		CacheSize:     1024,
	}
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.RecordTTL <= 0 {
		return errors.New("record TTL must be positive")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.CacheSize <= 0 {
		return errors.New("cache size must be positive")
	}
	return nil
}

// WithRecordTTL 以 builder 风格设置缓存时长
func (c Config) WithRecordTTL(ttl time.Duration) Config {
	c.RecordTTL = ttl
	return c
}

// WithDNSConfigPath 以 builder 风格设置 DNS 配置文件路径
func (c Config) WithDNSConfigPath(path string) Config {
	c.DNSConfigPath = path
	return c
}

// WithTimeout 以 builder 风格设置查询超时
func (c Config) WithTimeout(d time.Duration) Config {
	c.Timeout = d
	return c
}

// WithCacheSize 以 builder 风格设置缓存容量
func (c Config) WithCacheSize(n int) Config {
	c.CacheSize = n
	return c
}
