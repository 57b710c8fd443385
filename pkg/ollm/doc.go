// Package ollm 提供 OLLM 代理（OpenAI 兼容端点）的共享类型和配置
//
// 本包定义了与 OLLM 代理交互所需的核心类型，包括：
//   - [Settings]: Provider 构造配置（API Key、Base URL、Headers、HTTP 传输）
//   - [Model]: 模型句柄的统一元数据接口
//   - [Message] / [Event]: 对话消息与流式事件
//   - [ErrorData]: 代理 JSON 错误信封及消息提取规则
//
// 完整使用示例请参考 example_test.go。
//
// # 职责边界
//
// 本包及其子包只负责配置到模型句柄的翻译，不实现 OpenAI 兼容协议本身。
// HTTP 通信、SSE 流式解析、工具调用聚合等全部委托给外部
// SDK（github.com/sashabaranov/go-openai）。
//
// # 环境变量
//
// API Key（当 Settings.APIKey 未显式提供时）:
//   - OLLM_API_KEY
//
// Key 的解析是惰性的：构造 Provider 或模型句柄永远不会因缺少 Key 而失败，
// 只有实际发起请求（触发请求头构建）时才返回 [MissingCredentialError]。
//
// # 不支持的模型类型
//
// Embedding 和 Image 模型不被 OLLM 适配层支持，对应的工厂方法总是同步返回
// [ModelNotSupportedError]。Embedding 的标识符类型仍然保留（见 model_type.go），
// 但不会构造任何 Embedding 模型。
//
// # 包文件组织
//
//   - settings.go: Settings 构造配置、默认端点
//   - types.go: Model 接口、Options、Response
//   - message.go: Message、Role、ToolCall
//   - event.go: Event、EventType
//   - model_type.go: 模型标识符类型与已知模型常量
//   - errors.go: 错误类型体系
//   - errordata.go: 代理错误信封（ErrorShape）
package ollm
