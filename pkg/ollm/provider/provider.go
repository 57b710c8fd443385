package provider

import (
	"net/http"
	"strings"

	"github.com/lwmacct/260826-go-pkg-ollm/pkg/ollm"
)

// ═══════════════════════════════════════════════════════════════════════════
// 常量
// ═══════════════════════════════════════════════════════════════════════════

const (
	// Name Provider 名称，模型句柄的标签前缀
	Name = "ollm"

	// Version 适配层版本，附加在 User-Agent 中
	Version = "0.1.0"

	chatProviderTag       = Name + ".chat"
	completionProviderTag = Name + ".completion"
)

// ═══════════════════════════════════════════════════════════════════════════
// Provider 工厂
// ═══════════════════════════════════════════════════════════════════════════

// Provider OLLM 模型工厂
//
// 由 [New] 构造。所有工厂方法共享同一份解析后的 Base URL、惰性请求头
// 构建器和传输层覆盖。Provider 本身无状态，构造后可安全并发使用。
type Provider struct {
	baseURL      string
	buildHeaders headerBuilder
	httpClient   *http.Client
}

// New 创建 Provider
//
// settings 可为 nil（全部使用默认值和环境变量）。构造永远不会失败：
// Base URL 不做格式校验（格式错误在实际请求时才暴露），API Key 缺失
// 在请求头构建时才报错。
func New(settings *ollm.Settings) *Provider {
	if settings == nil {
		settings = &ollm.Settings{}
	}

	// 解析 Base URL：剥除末尾的单个 "/"
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = ollm.DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Provider{
		baseURL:      baseURL,
		buildHeaders: newHeaderBuilder(settings),
		httpClient:   settings.HTTPClient,
	}
}

// Default 默认 Provider 实例
//
// 仅使用环境变量派生的配置（OLLM_API_KEY、默认端点）。
var Default = New(nil)

// Model 通过默认实例创建 Chat 模型句柄
//
// 等价于 Default.ChatModel(modelID)，对应"Provider 可直接调用"的简写。
func Model(modelID ollm.ChatModelID) *ChatModel {
	return Default.Model(modelID)
}

// ═══════════════════════════════════════════════════════════════════════════
// 模型工厂方法
// ═══════════════════════════════════════════════════════════════════════════

// Model 创建 Chat 模型句柄（默认入口，等价于 ChatModel）
func (p *Provider) Model(modelID ollm.ChatModelID) *ChatModel {
	return p.ChatModel(modelID)
}

// ChatModel 创建 Chat 模型句柄
//
// modelID 不做本地校验，有效性由远端代理判定。每次调用都返回新句柄，
// 不做缓存。
func (p *Provider) ChatModel(modelID ollm.ChatModelID) *ChatModel {
	return newChatModel(string(modelID), p.baseURL, p.buildHeaders, p.httpClient)
}

// LanguageModel ChatModel 的别名
func (p *Provider) LanguageModel(modelID ollm.ChatModelID) *ChatModel {
	return p.ChatModel(modelID)
}

// CompletionModel 创建文本补全模型句柄
func (p *Provider) CompletionModel(modelID ollm.CompletionModelID) *CompletionModel {
	return newCompletionModel(string(modelID), p.baseURL, p.buildHeaders, p.httpClient)
}

// EmbeddingModel 请求 Embedding 模型
//
// OLLM 适配层不支持 Embedding 模型，总是同步返回
// [ollm.ModelNotSupportedError]，与标识符内容无关。
func (p *Provider) EmbeddingModel(modelID ollm.EmbeddingModelID) (ollm.Model, error) {
	return nil, ollm.NewModelNotSupportedError(string(modelID), ollm.ModelTypeEmbedding)
}

// TextEmbeddingModel 请求 Embedding 模型
//
// Deprecated: 使用 [Provider.EmbeddingModel]。
func (p *Provider) TextEmbeddingModel(modelID ollm.EmbeddingModelID) (ollm.Model, error) {
	return p.EmbeddingModel(modelID)
}

// ImageModel 请求 Image 模型
//
// OLLM 适配层不支持 Image 模型，总是同步返回
// [ollm.ModelNotSupportedError]。
func (p *Provider) ImageModel(modelID string) (ollm.Model, error) {
	return nil, ollm.NewModelNotSupportedError(modelID, ollm.ModelTypeImage)
}

// BaseURL 返回解析后的 Base URL（无末尾斜杠）
func (p *Provider) BaseURL() string {
	return p.baseURL
}
