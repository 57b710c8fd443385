package ollm

import (
	"net/http"
)

// ═══════════════════════════════════════════════════════════════════════════
// Provider 配置
// ═══════════════════════════════════════════════════════════════════════════

const (
	// DefaultBaseURL OLLM 代理的默认端点
	DefaultBaseURL = "http://localhost:4000/v1"

	// APIKeyEnvVar API Key 环境变量名
	//
	// 当 [Settings.APIKey] 未显式提供时，请求头构建器在每次调用时
	// 从此环境变量读取 Key。
	APIKeyEnvVar = "OLLM_API_KEY"
)

// Settings Provider 构造配置
//
// 所有字段均为可选。配置在 Provider 构造时被捕获一次，之后不再读取
//（API Key 例外：未显式提供时每次请求都会重新读取环境变量）。
//
// 基本用法：
//
//	p := provider.New(&ollm.Settings{
//	    APIKey:  "sk-xxx",
//	    BaseURL: "http://localhost:4000/v1",
//	})
//
// 自定义传输层（代理、超时、测试桩等）：
//
//	p := provider.New(&ollm.Settings{
//	    HTTPClient: &http.Client{Timeout: 30 * time.Second},
//	})
type Settings struct {
	// APIKey 显式 API Key，优先于 OLLM_API_KEY 环境变量
	APIKey string `koanf:"api-key"`

	// BaseURL 代理端点地址，默认 http://localhost:4000/v1
	// 末尾的单个 "/" 会被剥除
	BaseURL string `koanf:"base-url"`

	// Headers 附加到每个请求的静态请求头
	// 不会覆盖 Authorization 头
	Headers map[string]string `koanf:"headers"`

	// HTTPClient 自定义 HTTP 客户端（传输层覆盖）
	// 为 nil 时使用 http.DefaultClient 的传输层
	HTTPClient *http.Client `koanf:"-"`
}
