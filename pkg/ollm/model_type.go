package ollm

// ═══════════════════════════════════════════════════════════════════════════
// 模型类型
// ═══════════════════════════════════════════════════════════════════════════

// ModelType 模型类型标签
//
// 用于 [ModelNotSupportedError] 标识被拒绝的模型类型。
type ModelType string

const (
	ModelTypeChat       ModelType = "chatModel"
	ModelTypeCompletion ModelType = "completionModel"
	ModelTypeEmbedding  ModelType = "embeddingModel"
	ModelTypeImage      ModelType = "imageModel"
)

// String 返回字符串表示
func (t ModelType) String() string {
	return string(t)
}

// ═══════════════════════════════════════════════════════════════════════════
// 模型标识符
// ═══════════════════════════════════════════════════════════════════════════

// ChatModelID Chat 模型标识符
//
// 开放字符串类型：任意字符串在语法上都被接受，有效性由远端代理判定，
// 本地不做校验。以下常量仅列出常见模型。
type ChatModelID string

const (
	// OpenAI 系列（经代理转发）
	ChatModelGPT4o     ChatModelID = "gpt-4o"
	ChatModelGPT4oMini ChatModelID = "gpt-4o-mini"

	// TEE 推理后端（机密计算，标识符前缀标记后端）
	ChatModelPhalaLlama33   ChatModelID = "phala/llama-3.3-70b-instruct"
	ChatModelPhalaQwen25    ChatModelID = "phala/qwen-2.5-7b-instruct"
	ChatModelPhalaDeepSeek  ChatModelID = "phala/deepseek-r1-70b"
	ChatModelNearLlama33    ChatModelID = "near/llama-3.3-70b-instruct"
	ChatModelNearDeepSeekV3 ChatModelID = "near/deepseek-v3"
)

// String 返回字符串表示
func (id ChatModelID) String() string {
	return string(id)
}

// CompletionModelID Completion 模型标识符（开放字符串类型）
type CompletionModelID string

const (
	CompletionModelGPT35Instruct CompletionModelID = "gpt-3.5-turbo-instruct"
)

// String 返回字符串表示
func (id CompletionModelID) String() string {
	return string(id)
}

// EmbeddingModelID Embedding 模型标识符（开放字符串类型）
//
// 注意：OLLM 适配层不支持 Embedding 模型，工厂方法总是返回
// [ModelNotSupportedError]。标识符类型仍然保留，便于调用方在配置层
// 引用这些名称。
type EmbeddingModelID string

const (
	EmbeddingModelTextEmbedding3Small EmbeddingModelID = "text-embedding-3-small"
	EmbeddingModelTextEmbedding3Large EmbeddingModelID = "text-embedding-3-large"
)

// String 返回字符串表示
func (id EmbeddingModelID) String() string {
	return string(id)
}

// EmbeddingOptions Embedding 请求选项
//
// 当前为空：Embedding 模型不被支持，此类型仅保留 Schema 占位。
type EmbeddingOptions struct{}
