package provider

import (
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/lwmacct/260826-go-pkg-ollm/pkg/ollm"
)

// ═══════════════════════════════════════════════════════════════════════════
// 错误分类
// ═══════════════════════════════════════════════════════════════════════════

// classifyError 把外部 SDK 的错误归入统一错误体系
//
// 代理的错误信封（{error: {message, type?, param?, code?}}，见
// [ollm.ErrorData]）由 go-openai 解析为 openai.APIError，这里按
// error.message 投影规则提取规范失败字符串并附上 Provider 标签。
// 传输层注入的 [ollm.MissingCredentialError] 原样透传。
func classifyError(providerTag string, err error) error {
	if err == nil {
		return nil
	}

	// 凭证缺失从 headerRoundTripper 经 url.Error 包装传出
	var missing *ollm.MissingCredentialError
	if errors.As(err, &missing) {
		return missing
	}

	// 信封格式的 API 错误
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		classified := ollm.NewAPIError(apiErr.HTTPStatusCode, apiErr.Message).
			WithProvider(providerTag)
		if code, ok := apiErr.Code.(string); ok {
			classified = classified.WithCode(code)
		}
		if apiErr.Param != nil {
			classified.Param = *apiErr.Param
		}
		return classified
	}

	// 非信封格式的 HTTP 错误响应
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return ollm.NewAPIError(reqErr.HTTPStatusCode, reqErr.Error()).
			WithProvider(providerTag)
	}

	// 网络层失败（连接拒绝、超时、取消等）
	return ollm.NewHTTPError("request failed", err)
}
