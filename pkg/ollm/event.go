package ollm

// ═══════════════════════════════════════════════════════════════════════════
// 事件类型 - 流式事件系统
// ═══════════════════════════════════════════════════════════════════════════

// EventType 事件类型
type EventType string

const (
	EventTypeText     EventType = "text"      // 文本增量
	EventTypeToolCall EventType = "tool_call" // 工具调用增量
	EventTypeDone     EventType = "done"      // 完成
	EventTypeError    EventType = "error"     // 错误
)

// Event 流式事件
//
// 流式 SSE 解析由外部 SDK 完成，本包只把 SDK 的增量转换为统一事件。
//
// 使用示例：
//
//	for event := range stream {
//	    switch event.Type {
//	    case ollm.EventTypeText:
//	        fmt.Print(event.TextDelta)
//	    case ollm.EventTypeDone:
//	        fmt.Printf("\nDone! Reason: %s\n", event.FinishReason)
//	    case ollm.EventTypeError:
//	        log.Fatal(event.Error)
//	    }
//	}
type Event struct {
	Type EventType `json:"type"`

	// Text event - 文本增量
	TextDelta string `json:"text_delta,omitempty"`

	// ToolCall event - 工具调用增量
	ToolCall *ToolCallDelta `json:"tool_call,omitempty"`

	// Done event - 完成原因与用量
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`

	// Error event - 错误信息
	Error        error  `json:"-"`               // 错误对象 (不序列化)
	ErrorMessage string `json:"error,omitempty"` // 错误消息 (序列化用)
}

// ToolCallDelta 工具调用增量
type ToolCallDelta struct {
	Index          int    `json:"index"`
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	ArgumentsDelta string `json:"arguments_delta,omitempty"`
}
