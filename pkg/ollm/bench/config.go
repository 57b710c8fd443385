package bench

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lwmacct/260826-go-pkg-ollm/pkg/ollm"
)

// ═══════════════════════════════════════════════════════════════════════════
// 基准配置
// ═══════════════════════════════════════════════════════════════════════════

// Config 基准测试配置
type Config struct {
	// BaseURL 代理端点地址，默认 http://localhost:4000/v1
	BaseURL string `yaml:"base_url" json:"base_url"`

	// APIKey 显式 API Key，缺省时读取 OLLM_API_KEY 环境变量
	APIKey string `yaml:"api_key" json:"api_key"`

	// Models 参与基准的模型列表
	Models []string `yaml:"models" json:"models"`

	// Prompt 每个请求发送的用户消息
	Prompt string `yaml:"prompt" json:"prompt"`

	// MaxTokens 响应 Token 上限
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// Warmup 正式度量前的预热请求数（不计入统计）
	Warmup int `yaml:"warmup" json:"warmup"`

	// Iterations 顺序阶段的请求数，同时是并发阶段的总请求数
	Iterations int `yaml:"iterations" json:"iterations"`

	// Concurrency 并发阶段的并发度
	Concurrency int `yaml:"concurrency" json:"concurrency"`

	// Timeout 单请求超时（如 "60s"）
	Timeout string `yaml:"timeout" json:"timeout"`
}

// DefaultConfig 返回默认基准配置
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     ollm.DefaultBaseURL,
		Models:      []string{"gpt-4o-mini"},
		Prompt:      "Write a haiku about distributed systems.",
		MaxTokens:   128,
		Warmup:      2,
		Iterations:  20,
		Concurrency: 8,
		Timeout:     "60s",
	}
}

// LoadConfigFile 从 YAML 文件加载配置
//
// 未设置的字段落回默认值。
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults 补齐未设置的字段
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if len(c.Models) == 0 {
		c.Models = defaults.Models
	}
	if c.Prompt == "" {
		c.Prompt = defaults.Prompt
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaults.MaxTokens
	}
	if c.Warmup < 0 {
		c.Warmup = 0
	}
	if c.Iterations <= 0 {
		c.Iterations = defaults.Iterations
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaults.Concurrency
	}
	if c.Timeout == "" {
		c.Timeout = defaults.Timeout
	}
}

// RequestTimeout 解析单请求超时
//
// 格式错误时落回 60 秒。
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// ResolveAPIKey 解析 API Key
//
// 优先级与模型工厂一致：显式配置 > OLLM_API_KEY 环境变量。
// 基准允许无 Key 运行（面向无认证的本地代理），返回空串。
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(ollm.APIKeyEnvVar)
}
