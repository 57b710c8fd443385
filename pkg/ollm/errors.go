package ollm

import (
	"errors"
	"fmt"
	"net/http"
)

// ═══════════════════════════════════════════════════════════════════════════
// 错误类型
// ═══════════════════════════════════════════════════════════════════════════

// ErrorType 错误类型
type ErrorType string

const (
	// ErrTypeMissingCredential 缺少 API Key（请求头构建时才触发）
	ErrTypeMissingCredential ErrorType = "missing_credential"

	// ErrTypeModelNotSupported 请求了不支持的模型类型（Embedding/Image）
	ErrTypeModelNotSupported ErrorType = "model_not_supported"

	// ErrTypeHTTP HTTP 层错误（网络、超时等）
	ErrTypeHTTP ErrorType = "http_error"

	// ErrTypeAPI API 业务错误（4xx, 5xx）
	ErrTypeAPI ErrorType = "api_error"
)

// ═══════════════════════════════════════════════════════════════════════════
// 基础错误
// ═══════════════════════════════════════════════════════════════════════════

// BaseError 基础错误实现
type BaseError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *BaseError) Unwrap() error {
	return e.Err
}

// ═══════════════════════════════════════════════════════════════════════════
// 缺少凭证错误
// ═══════════════════════════════════════════════════════════════════════════

// MissingCredentialError 缺少 API Key 错误
//
// 凭证解析是惰性的：构造 Provider 或模型句柄永远不会返回此错误，
// 只有请求头构建器被实际调用时（通常是首次请求）才会触发。
type MissingCredentialError struct {
	*BaseError

	// EnvVar 曾尝试读取的环境变量名
	EnvVar string
}

// NewMissingCredentialError 创建缺少凭证错误
func NewMissingCredentialError(envVar string) *MissingCredentialError {
	return &MissingCredentialError{
		BaseError: &BaseError{
			Type:    ErrTypeMissingCredential,
			Message: fmt.Sprintf("API key is missing, pass it in Settings or set the %s environment variable", envVar),
		},
		EnvVar: envVar,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 不支持的模型类型错误
// ═══════════════════════════════════════════════════════════════════════════

// ModelNotSupportedError 不支持的模型类型错误
//
// 同步、无条件地由 EmbeddingModel/TextEmbeddingModel/ImageModel 返回。
type ModelNotSupportedError struct {
	*BaseError

	// ModelID 被请求的模型标识符
	ModelID string

	// ModelType 被请求的模型类型（"embeddingModel" / "imageModel"）
	ModelType ModelType
}

// NewModelNotSupportedError 创建不支持的模型类型错误
func NewModelNotSupportedError(modelID string, modelType ModelType) *ModelNotSupportedError {
	return &ModelNotSupportedError{
		BaseError: &BaseError{
			Type:    ErrTypeModelNotSupported,
			Message: fmt.Sprintf("no such %s: %s", modelType, modelID),
		},
		ModelID:   modelID,
		ModelType: modelType,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// HTTP 错误
// ═══════════════════════════════════════════════════════════════════════════

// HTTPError HTTP 层错误（网络不可达、超时等，未收到代理响应）
type HTTPError struct {
	*BaseError
}

// NewHTTPError 创建 HTTP 错误
func NewHTTPError(message string, err error) *HTTPError {
	return &HTTPError{
		BaseError: &BaseError{
			Type:    ErrTypeHTTP,
			Message: message,
			Err:     err,
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// API 错误
// ═══════════════════════════════════════════════════════════════════════════

// APIError API 业务错误
//
// 由代理的 JSON 错误信封（见 [ErrorData]）分类而来。重试策略归调用方，
// 本包不做任何重试。
type APIError struct {
	*BaseError

	StatusCode int
	Response   string
	Provider   string
	Code       string // 代理错误信封中的 error.code
	Param      string // 代理错误信封中的 error.param
}

// NewAPIError 创建 API 错误
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		BaseError: &BaseError{
			Type:    ErrTypeAPI,
			Message: message,
		},
		StatusCode: statusCode,
	}
}

// WithProvider 设置 Provider 标签
func (e *APIError) WithProvider(provider string) *APIError {
	e.Provider = provider
	return e
}

// WithCode 设置错误代码
func (e *APIError) WithCode(code string) *APIError {
	e.Code = code
	return e
}

func (e *APIError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s [%d]: %s: %s", e.Type, e.StatusCode, e.Provider, e.Message)
	}
	return fmt.Sprintf("%s [%d]: %s", e.Type, e.StatusCode, e.Message)
}

// IsRetryable 检查错误是否可重试
func (e *APIError) IsRetryable() bool {
	// 429 (Rate Limit), 500, 502, 503, 504 可重试
	return e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= 500 && e.StatusCode <= 504
}

// ═══════════════════════════════════════════════════════════════════════════
// 错误匹配函数（支持 errors.Is/As）
// ═══════════════════════════════════════════════════════════════════════════

// IsMissingCredentialError 检查是否为缺少凭证错误
func IsMissingCredentialError(err error) bool {
	var e *MissingCredentialError
	return errors.As(err, &e)
}

// IsModelNotSupportedError 检查是否为不支持的模型类型错误
func IsModelNotSupportedError(err error) bool {
	var e *ModelNotSupportedError
	return errors.As(err, &e)
}

// IsHTTPError 检查是否为 HTTP 错误
func IsHTTPError(err error) bool {
	var e *HTTPError
	return errors.As(err, &e)
}

// IsAPIError 检查是否为 API 错误
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsRetryableError 检查错误是否可重试
func IsRetryableError(err error) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.IsRetryable()
	}
	return false
}

// GetAPIError 提取 APIError（如果存在）
func GetAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetStatusCode 提取 HTTP 状态码（如果是 API 错误）
func GetStatusCode(err error) int {
	if e, ok := GetAPIError(err); ok {
		return e.StatusCode
	}
	return 0
}
