package ollm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ═══════════════════════════════════════════════════════════════════════════
// 消息构造测试
// ═══════════════════════════════════════════════════════════════════════════

func TestMessageConstructors(t *testing.T) {
	sys := SystemMessage("You are helpful.")
	assert.Equal(t, RoleSystem, sys.Role)
	assert.Equal(t, "You are helpful.", sys.Content)

	user := UserMessage("Hello!")
	assert.Equal(t, RoleUser, user.Role)

	asst := AssistantMessage("Hi there.")
	assert.Equal(t, RoleAssistant, asst.Role)

	tool := ToolMessage("call_123", `{"temp": 21}`)
	assert.Equal(t, RoleTool, tool.Role)
	assert.Equal(t, "call_123", tool.ToolCallID)
	assert.Equal(t, `{"temp": 21}`, tool.Content)
}

func TestMessage_HasToolCalls(t *testing.T) {
	plain := UserMessage("hello")
	assert.False(t, plain.HasToolCalls())

	withCall := Message{
		Role: RoleAssistant,
		ToolCalls: []ToolCall{
			{ID: "call_1", Name: "get_weather", Arguments: `{"city":"Beijing"}`},
		},
	}
	assert.True(t, withCall.HasToolCalls())
}

// ═══════════════════════════════════════════════════════════════════════════
// 模型标识符测试
// ═══════════════════════════════════════════════════════════════════════════

func TestModelIDs_OpenStrings(t *testing.T) {
	// 标识符是开放字符串类型：任意字符串在语法上都被接受
	var chat ChatModelID = "some/brand-new-model-v9"
	assert.Equal(t, "some/brand-new-model-v9", chat.String())

	// TEE 后端标识符只是命名约定
	assert.Equal(t, "phala/llama-3.3-70b-instruct", ChatModelPhalaLlama33.String())
	assert.Equal(t, "near/deepseek-v3", ChatModelNearDeepSeekV3.String())
}
