package ollm

// ═══════════════════════════════════════════════════════════════════════════
// 角色定义
// ═══════════════════════════════════════════════════════════════════════════

// Role 消息角色
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ═══════════════════════════════════════════════════════════════════════════
// 消息结构
// ═══════════════════════════════════════════════════════════════════════════

// Message 对话消息
//
// 消息格式与 OpenAI Chat Completions 对齐，由外部 SDK 负责序列化。
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content,omitempty"`

	// ToolCalls 助手消息中的工具调用
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID 工具结果消息对应的调用 ID（Role 为 tool 时必需）
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// ToolCall 工具调用
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON 编码的参数
}

// HasToolCalls 检查消息是否包含工具调用
func (m *Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// ═══════════════════════════════════════════════════════════════════════════
// 消息构造辅助函数
// ═══════════════════════════════════════════════════════════════════════════

// SystemMessage 构造系统消息
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage 构造用户消息
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage 构造助手消息
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ToolMessage 构造工具结果消息
func ToolMessage(toolCallID, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: toolCallID}
}
