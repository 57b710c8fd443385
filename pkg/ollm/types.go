package ollm

// ═══════════════════════════════════════════════════════════════════════════
// Model 接口
// ═══════════════════════════════════════════════════════════════════════════

// Model 模型句柄的统一元数据接口
//
// 所有模型句柄（Chat、Completion）都实现此接口。句柄由工厂构造后
// 完全归调用方所有，适配层不保留引用。
type Model interface {
	// Provider 返回 Provider 标签，如 "ollm.chat"
	Provider() string

	// ModelID 返回模型标识符
	ModelID() string
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求选项与响应
// ═══════════════════════════════════════════════════════════════════════════

// Options Chat 请求选项
type Options struct {
	// 基础配置
	System      string  `json:"system,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`

	// 采样参数
	TopP             float64  `json:"top_p,omitempty"`
	FrequencyPenalty float64  `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64  `json:"presence_penalty,omitempty"`
	StopSequences    []string `json:"stop_sequences,omitempty"`

	// 工具
	Tools []ToolSchema `json:"tools,omitempty"`

	// 终端用户标识（透传给代理）
	User string `json:"user,omitempty"`
}

// CompletionOptions Completion（文本补全）请求选项
type CompletionOptions struct {
	MaxTokens     int      `json:"max_tokens,omitempty"`
	Temperature   float64  `json:"temperature,omitempty"`
	TopP          float64  `json:"top_p,omitempty"`
	StopSequences []string `json:"stop_sequences,omitempty"`

	// Echo 是否在响应中回显 prompt
	Echo bool `json:"echo,omitempty"`

	// Suffix 补全内容之后的后缀（插入模式）
	Suffix string `json:"suffix,omitempty"`
}

// ToolSchema 工具 Schema
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Response 模型响应
type Response struct {
	Message      Message     `json:"message"`
	FinishReason string      `json:"finish_reason"`
	Model        string      `json:"model,omitempty"` // 实际使用的模型
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// TokenUsage Token 使用量
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}
