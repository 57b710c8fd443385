package provider

import (
	"maps"
	"net/http"
	"os"

	"github.com/lwmacct/260826-go-pkg-ollm/pkg/ollm"
)

// ═══════════════════════════════════════════════════════════════════════════
// 惰性请求头构建
// ═══════════════════════════════════════════════════════════════════════════

// userAgentSuffix 固定的客户端标识，附加在 User-Agent 末尾
const userAgentSuffix = Name + "-go/" + Version

// headerBuilder 请求头构建器
//
// 每次请求被调用一次，返回全新的 map。无副作用，可并发调用。
type headerBuilder func() (map[string]string, error)

// newHeaderBuilder 从构造配置创建请求头构建器
//
// API Key 解析优先级：settings.APIKey > OLLM_API_KEY 环境变量。
// 两者都缺失时返回 [ollm.MissingCredentialError]——注意错误发生在
// 构建器被调用时（首次请求），而非 Provider 构造时，因此构造后再
// 注入环境变量依然有效。
func newHeaderBuilder(settings *ollm.Settings) headerBuilder {
	apiKey := settings.APIKey
	static := maps.Clone(settings.Headers)

	return func() (map[string]string, error) {
		key := apiKey
		if key == "" {
			key = os.Getenv(ollm.APIKeyEnvVar)
		}
		if key == "" {
			return nil, ollm.NewMissingCredentialError(ollm.APIKeyEnvVar)
		}

		headers := make(map[string]string, len(static)+2)
		maps.Copy(headers, static)

		// Authorization 不可被静态请求头覆盖
		headers["Authorization"] = "Bearer " + key

		// 保留调用方的 User-Agent，附加客户端标识
		if ua := headers["User-Agent"]; ua != "" {
			headers["User-Agent"] = ua + " " + userAgentSuffix
		} else {
			headers["User-Agent"] = userAgentSuffix
		}

		return headers, nil
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求头注入传输层
// ═══════════════════════════════════════════════════════════════════════════

// headerRoundTripper 在每个出站请求上调用 headerBuilder 并注入结果
//
// 这是惰性凭证解析的落点：外部 SDK 发出的每个请求都经过这里，
// Key 轮换在下一个请求立即生效。
type headerRoundTripper struct {
	base  http.RoundTripper
	build headerBuilder
}

func (t *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	headers, err := t.build()
	if err != nil {
		return nil, err
	}

	clone := req.Clone(req.Context())
	for k, v := range headers {
		clone.Header.Set(k, v)
	}
	return t.base.RoundTrip(clone)
}

// newHTTPClient 组装注入请求头的 HTTP 客户端
//
// override 非 nil 时沿用其超时等配置，并把其传输层包装在
// headerRoundTripper 之下；为 nil 时基于 http.DefaultTransport。
func newHTTPClient(override *http.Client, build headerBuilder) *http.Client {
	client := &http.Client{}
	base := http.RoundTripper(http.DefaultTransport)

	if override != nil {
		*client = *override
		if override.Transport != nil {
			base = override.Transport
		}
	}

	client.Transport = &headerRoundTripper{base: base, build: build}
	return client
}
