// Package provider 提供 OLLM 代理的模型工厂
//
// 本包把构造配置（[ollm.Settings]）翻译为一组绑定好 Base URL、认证头和
// 传输层的模型句柄。协议本身（HTTP、SSE 流式解析、工具调用聚合）完全
// 委托给外部 SDK（github.com/sashabaranov/go-openai），本包不实现任何
// 请求/响应解析。
//
// # 快速开始
//
//	p := provider.New(&ollm.Settings{APIKey: "sk-xxx"})
//
//	chat := p.ChatModel("gpt-4o")
//	resp, err := chat.Complete(ctx, []ollm.Message{
//	    ollm.UserMessage("Hello!"),
//	}, nil)
//
// 默认实例（仅环境变量配置）：
//
//	chat := provider.Model("gpt-4o")
//
// # 工厂方法
//
//   - [Provider.ChatModel] / [Provider.LanguageModel]: Chat 模型句柄
//   - [Provider.Model]: ChatModel 的默认入口别名
//   - [Provider.CompletionModel]: 文本补全模型句柄
//   - [Provider.EmbeddingModel] / [Provider.ImageModel]: 总是返回
//     [ollm.ModelNotSupportedError]，OLLM 适配层不支持这两类模型
//
// # 凭证解析
//
// API Key 的解析是惰性的：每次请求发出时，请求头构建器按
// Settings.APIKey、OLLM_API_KEY 环境变量的优先级重新解析。
// 构造 Provider 和模型句柄永远不会因缺少 Key 而失败；缺少 Key 时
// 首次请求返回 [ollm.MissingCredentialError]。Key 轮换无需重建句柄。
//
// # 线程安全
//
// Provider 与模型句柄构造后不再持有可变状态，请求头构建器只读取配置和
// 环境变量且每次调用产生新 map，可以被多个 goroutine 并发使用。
package provider
