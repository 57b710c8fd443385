package ollm

import "encoding/json"

// ═══════════════════════════════════════════════════════════════════════════
// 代理错误信封（ErrorShape）
// ═══════════════════════════════════════════════════════════════════════════

// ErrorData OLLM 代理的 JSON 错误信封
//
// 代理返回的错误响应体形如：
//
//	{
//	    "error": {
//	        "message": "Invalid model name",
//	        "type": "invalid_request_error",
//	        "param": "model",
//	        "code": "model_not_found"
//	    }
//	}
//
// 本包只定义信封 Schema 和消息提取规则（error.message 为规范失败字符串），
// 错误处理策略（重试、展示）归调用方。
type ErrorData struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail 错误信封的 error 字段
type ErrorDetail struct {
	Message string  `json:"message"`
	Type    *string `json:"type,omitempty"`
	Param   *string `json:"param,omitempty"`
	Code    *string `json:"code,omitempty"`
}

// ErrorMessage 提取规范失败字符串（error.message 投影）
func (d *ErrorData) ErrorMessage() string {
	return d.Error.Message
}

// ParseErrorData 从响应体解析错误信封
//
// 返回 false 表示响应体不符合信封格式（非 JSON 或缺少 error.message），
// 此时调用方应退回使用原始响应体。
func ParseErrorData(body []byte) (*ErrorData, bool) {
	var data ErrorData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, false
	}
	if data.Error.Message == "" {
		return nil, false
	}
	return &data, true
}
