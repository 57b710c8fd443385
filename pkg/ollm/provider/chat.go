package provider

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/lwmacct/260826-go-pkg-ollm/pkg/ollm"
)

// ═══════════════════════════════════════════════════════════════════════════
// Chat 模型句柄
// ═══════════════════════════════════════════════════════════════════════════

// ChatModel Chat 模型句柄
//
// 实现 [ollm.Model] 接口。协议执行（HTTP、SSE 解析、工具调用聚合）
// 委托给 go-openai 客户端，本类型只持有绑定好的配置。
type ChatModel struct {
	provider string
	modelID  string
	client   *openai.Client
}

// Ensure ChatModel implements ollm.Model at compile time.
var _ ollm.Model = (*ChatModel)(nil)

// newChatModel 构造 Chat 模型句柄
//
// 认证不在此处解析：go-openai 客户端以空 Token 构造，凭证由
// headerRoundTripper 在每次请求时注入。
func newChatModel(modelID, baseURL string, build headerBuilder, override *http.Client) *ChatModel {
	cfg := openai.DefaultConfig("")
	cfg.BaseURL = baseURL
	cfg.HTTPClient = newHTTPClient(override, build)

	return &ChatModel{
		provider: chatProviderTag,
		modelID:  modelID,
		client:   openai.NewClientWithConfig(cfg),
	}
}

// Provider 返回 Provider 标签（"ollm.chat"）
func (m *ChatModel) Provider() string {
	return m.provider
}

// ModelID 返回模型标识符
func (m *ChatModel) ModelID() string {
	return m.modelID
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求执行（委托 go-openai）
// ═══════════════════════════════════════════════════════════════════════════

// Complete 同步完成
//
// 发送消息到 /chat/completions 并等待完整响应。
func (m *ChatModel) Complete(ctx context.Context, messages []ollm.Message, opts *ollm.Options) (*ollm.Response, error) {
	resp, err := m.client.CreateChatCompletion(ctx, m.buildRequest(messages, opts))
	if err != nil {
		return nil, classifyError(m.provider, err)
	}
	return parseChatResponse(&resp, m.modelID), nil
}

// Stream 流式完成
//
// 返回一个 channel，逐块接收响应事件。SSE 解析由 go-openai 完成，
// 本方法只把 SDK 增量转换为 [ollm.Event]。完成或出错后 channel 关闭。
func (m *ChatModel) Stream(ctx context.Context, messages []ollm.Message, opts *ollm.Options) (<-chan *ollm.Event, error) {
	stream, err := m.client.CreateChatCompletionStream(ctx, m.buildRequest(messages, opts))
	if err != nil {
		return nil, classifyError(m.provider, err)
	}

	events := make(chan *ollm.Event, 10)
	go m.pumpStream(stream, events)
	return events, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求构建与响应解析
// ═══════════════════════════════════════════════════════════════════════════

// buildRequest 构建 go-openai 请求
func (m *ChatModel) buildRequest(messages []ollm.Message, opts *ollm.Options) openai.ChatCompletionRequest {
	if opts == nil {
		opts = &ollm.Options{}
	}

	apiMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)

	// System 选项置于消息列表之首
	if opts.System != "" {
		apiMessages = append(apiMessages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: opts.System,
		})
	}

	for _, msg := range messages {
		apiMsg := openai.ChatCompletionMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
		}
		for _, tc := range msg.ToolCalls {
			apiMsg.ToolCalls = append(apiMsg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}
		apiMessages = append(apiMessages, apiMsg)
	}

	req := openai.ChatCompletionRequest{
		Model:            m.modelID,
		Messages:         apiMessages,
		MaxTokens:        opts.MaxTokens,
		Temperature:      float32(opts.Temperature),
		TopP:             float32(opts.TopP),
		FrequencyPenalty: float32(opts.FrequencyPenalty),
		PresencePenalty:  float32(opts.PresencePenalty),
		Stop:             opts.StopSequences,
		User:             opts.User,
	}

	for _, tool := range opts.Tools {
		req.Tools = append(req.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.InputSchema,
			},
		})
	}

	return req
}

// parseChatResponse 把 go-openai 响应转换为统一格式
func parseChatResponse(resp *openai.ChatCompletionResponse, fallbackModel string) *ollm.Response {
	out := &ollm.Response{
		Model: resp.Model,
		Usage: &ollm.TokenUsage{
			InputTokens:  int64(resp.Usage.PromptTokens),
			OutputTokens: int64(resp.Usage.CompletionTokens),
			TotalTokens:  int64(resp.Usage.TotalTokens),
		},
	}
	if out.Model == "" {
		out.Model = fallbackModel
	}

	if len(resp.Choices) == 0 {
		out.Message = ollm.Message{Role: ollm.RoleAssistant}
		return out
	}

	choice := resp.Choices[0]
	out.FinishReason = string(choice.FinishReason)
	out.Message = ollm.Message{
		Role:    ollm.RoleAssistant,
		Content: choice.Message.Content,
	}
	for _, tc := range choice.Message.ToolCalls {
		out.Message.ToolCalls = append(out.Message.ToolCalls, ollm.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}

	return out
}

// pumpStream 把 go-openai 流式增量转换为事件并写入 channel
func (m *ChatModel) pumpStream(stream *openai.ChatCompletionStream, events chan<- *ollm.Event) {
	defer close(events)
	defer func() { _ = stream.Close() }()

	finished := false
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			if !finished {
				events <- &ollm.Event{Type: ollm.EventTypeDone}
			}
			return
		}
		if err != nil {
			classified := classifyError(m.provider, err)
			events <- &ollm.Event{
				Type:         ollm.EventTypeError,
				Error:        classified,
				ErrorMessage: classified.Error(),
			}
			return
		}

		if len(chunk.Choices) == 0 {
			continue
		}
		choice := chunk.Choices[0]

		if choice.Delta.Content != "" {
			events <- &ollm.Event{
				Type:      ollm.EventTypeText,
				TextDelta: choice.Delta.Content,
			}
		}

		for _, tc := range choice.Delta.ToolCalls {
			delta := &ollm.ToolCallDelta{
				ID:             tc.ID,
				Name:           tc.Function.Name,
				ArgumentsDelta: tc.Function.Arguments,
			}
			if tc.Index != nil {
				delta.Index = *tc.Index
			}
			events <- &ollm.Event{Type: ollm.EventTypeToolCall, ToolCall: delta}
		}

		if choice.FinishReason != "" {
			finished = true
			events <- &ollm.Event{
				Type:         ollm.EventTypeDone,
				FinishReason: string(choice.FinishReason),
			}
		}
	}
}
