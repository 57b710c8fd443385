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
// Completion 模型句柄
// ═══════════════════════════════════════════════════════════════════════════

// CompletionModel 文本补全模型句柄
//
// 实现 [ollm.Model] 接口，面向 /completions 端点（prompt 进、文本出），
// 协议执行委托给 go-openai 客户端。
type CompletionModel struct {
	provider string
	modelID  string
	client   *openai.Client
}

// Ensure CompletionModel implements ollm.Model at compile time.
var _ ollm.Model = (*CompletionModel)(nil)

// newCompletionModel 构造 Completion 模型句柄
func newCompletionModel(modelID, baseURL string, build headerBuilder, override *http.Client) *CompletionModel {
	cfg := openai.DefaultConfig("")
	cfg.BaseURL = baseURL
	cfg.HTTPClient = newHTTPClient(override, build)

	return &CompletionModel{
		provider: completionProviderTag,
		modelID:  modelID,
		client:   openai.NewClientWithConfig(cfg),
	}
}

// Provider 返回 Provider 标签（"ollm.completion"）
func (m *CompletionModel) Provider() string {
	return m.provider
}

// ModelID 返回模型标识符
func (m *CompletionModel) ModelID() string {
	return m.modelID
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求执行（委托 go-openai）
// ═══════════════════════════════════════════════════════════════════════════

// Complete 同步补全
func (m *CompletionModel) Complete(ctx context.Context, prompt string, opts *ollm.CompletionOptions) (*ollm.Response, error) {
	resp, err := m.client.CreateCompletion(ctx, m.buildRequest(prompt, opts))
	if err != nil {
		return nil, classifyError(m.provider, err)
	}
	return parseCompletionResponse(&resp, m.modelID), nil
}

// Stream 流式补全
//
// 返回事件 channel，完成或出错后自动关闭。
func (m *CompletionModel) Stream(ctx context.Context, prompt string, opts *ollm.CompletionOptions) (<-chan *ollm.Event, error) {
	stream, err := m.client.CreateCompletionStream(ctx, m.buildRequest(prompt, opts))
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

// buildRequest 构建 go-openai 补全请求
func (m *CompletionModel) buildRequest(prompt string, opts *ollm.CompletionOptions) openai.CompletionRequest {
	if opts == nil {
		opts = &ollm.CompletionOptions{}
	}

	return openai.CompletionRequest{
		Model:       m.modelID,
		Prompt:      prompt,
		MaxTokens:   opts.MaxTokens,
		Temperature: float32(opts.Temperature),
		TopP:        float32(opts.TopP),
		Stop:        opts.StopSequences,
		Echo:        opts.Echo,
		Suffix:      opts.Suffix,
	}
}

// parseCompletionResponse 把 go-openai 补全响应转换为统一格式
func parseCompletionResponse(resp *openai.CompletionResponse, fallbackModel string) *ollm.Response {
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
	out.FinishReason = choice.FinishReason
	out.Message = ollm.Message{
		Role:    ollm.RoleAssistant,
		Content: choice.Text,
	}

	return out
}

// pumpStream 把 go-openai 补全流式增量转换为事件并写入 channel
func (m *CompletionModel) pumpStream(stream *openai.CompletionStream, events chan<- *ollm.Event) {
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

		if choice.Text != "" {
			events <- &ollm.Event{
				Type:      ollm.EventTypeText,
				TextDelta: choice.Text,
			}
		}

		if choice.FinishReason != "" {
			finished = true
			events <- &ollm.Event{
				Type:         ollm.EventTypeDone,
				FinishReason: choice.FinishReason,
			}
		}
	}
}
