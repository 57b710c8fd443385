package provider

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260826-go-pkg-ollm/pkg/ollm"
)

// ═══════════════════════════════════════════════════════════════════════════
// 请求头构建测试
// ═══════════════════════════════════════════════════════════════════════════

func TestHeaderBuilder_ExplicitKey(t *testing.T) {
	build := newHeaderBuilder(&ollm.Settings{APIKey: "sk-explicit"})

	headers, err := build()

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-explicit", headers["Authorization"])
}

func TestHeaderBuilder_EnvKey(t *testing.T) {
	t.Setenv(ollm.APIKeyEnvVar, "sk-from-env")

	build := newHeaderBuilder(&ollm.Settings{})
	headers, err := build()

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-from-env", headers["Authorization"])
}

func TestHeaderBuilder_ExplicitKeyWinsOverEnv(t *testing.T) {
	t.Setenv(ollm.APIKeyEnvVar, "sk-from-env")

	build := newHeaderBuilder(&ollm.Settings{APIKey: "sk-explicit"})
	headers, err := build()

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-explicit", headers["Authorization"])
}

func TestHeaderBuilder_MissingKey(t *testing.T) {
	t.Setenv(ollm.APIKeyEnvVar, "")

	build := newHeaderBuilder(&ollm.Settings{})
	headers, err := build()

	assert.Nil(t, headers)
	require.Error(t, err)
	assert.True(t, ollm.IsMissingCredentialError(err))
}

func TestHeaderBuilder_LazyEnvResolution(t *testing.T) {
	// Key 在构建器调用时解析，构造之后注入的环境变量依然生效
	t.Setenv(ollm.APIKeyEnvVar, "")
	build := newHeaderBuilder(&ollm.Settings{})

	_, err := build()
	require.Error(t, err)

	t.Setenv(ollm.APIKeyEnvVar, "sk-late")
	headers, err := build()

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-late", headers["Authorization"])
}

func TestHeaderBuilder_KeyRotation(t *testing.T) {
	// Key 轮换在下一次构建立即生效
	t.Setenv(ollm.APIKeyEnvVar, "sk-old")
	build := newHeaderBuilder(&ollm.Settings{})

	headers, err := build()
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-old", headers["Authorization"])

	t.Setenv(ollm.APIKeyEnvVar, "sk-new")
	headers, err = build()
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-new", headers["Authorization"])
}

func TestHeaderBuilder_FreshMapPerCall(t *testing.T) {
	build := newHeaderBuilder(&ollm.Settings{APIKey: "sk-test"})

	first, err := build()
	require.NoError(t, err)
	second, err := build()
	require.NoError(t, err)

	// 每次调用返回新 map，修改互不影响
	first["X-Mutated"] = "yes"
	assert.NotContains(t, second, "X-Mutated")
}

// ═══════════════════════════════════════════════════════════════════════════
// 静态请求头合并测试
// ═══════════════════════════════════════════════════════════════════════════

func TestHeaderBuilder_StaticHeadersMerged(t *testing.T) {
	build := newHeaderBuilder(&ollm.Settings{
		APIKey: "sk-test",
		Headers: map[string]string{
			"X-Team":    "infra",
			"X-Request": "bench",
		},
	})

	headers, err := build()

	require.NoError(t, err)
	assert.Equal(t, "infra", headers["X-Team"])
	assert.Equal(t, "bench", headers["X-Request"])
}

func TestHeaderBuilder_AuthorizationNotOverridable(t *testing.T) {
	build := newHeaderBuilder(&ollm.Settings{
		APIKey: "sk-real",
		Headers: map[string]string{
			"Authorization": "Bearer sk-spoofed",
		},
	})

	headers, err := build()

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-real", headers["Authorization"])
}

func TestHeaderBuilder_UserAgentSuffix(t *testing.T) {
	build := newHeaderBuilder(&ollm.Settings{APIKey: "sk-test"})

	headers, err := build()

	require.NoError(t, err)
	assert.Equal(t, userAgentSuffix, headers["User-Agent"])
}

func TestHeaderBuilder_UserAgentPreserved(t *testing.T) {
	// 调用方提供的 User-Agent 保留，标识附加在末尾
	build := newHeaderBuilder(&ollm.Settings{
		APIKey: "sk-test",
		Headers: map[string]string{
			"User-Agent": "my-app/2.0",
		},
	})

	headers, err := build()

	require.NoError(t, err)
	assert.Equal(t, "my-app/2.0 "+userAgentSuffix, headers["User-Agent"])
}

// ═══════════════════════════════════════════════════════════════════════════
// 传输层注入测试
// ═══════════════════════════════════════════════════════════════════════════

func TestHeaderRoundTripper_InjectsHeaders(t *testing.T) {
	var gotAuth, gotUA, gotTeam string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		gotTeam = r.Header.Get("X-Team")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	build := newHeaderBuilder(&ollm.Settings{
		APIKey:  "sk-test",
		Headers: map[string]string{"X-Team": "infra"},
	})
	client := newHTTPClient(nil, build)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, userAgentSuffix, gotUA)
	assert.Equal(t, "infra", gotTeam)
}

func TestHeaderRoundTripper_MissingKeyFailsRequest(t *testing.T) {
	t.Setenv(ollm.APIKeyEnvVar, "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server without credentials")
	}))
	defer server.Close()

	client := newHTTPClient(nil, newHeaderBuilder(&ollm.Settings{}))

	_, err := client.Get(server.URL)

	require.Error(t, err)
	assert.True(t, ollm.IsMissingCredentialError(err))
}

func TestNewHTTPClient_OverridePreserved(t *testing.T) {
	// 覆盖客户端的传输层被包装而非丢弃
	var viaOverride bool
	override := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			viaOverride = true
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: http.Header{}}, nil
		}),
	}

	client := newHTTPClient(override, newHeaderBuilder(&ollm.Settings{APIKey: "sk-test"}))

	resp, err := client.Get("http://ollm.invalid/v1/models")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.True(t, viaOverride)
}

// roundTripFunc 测试用 RoundTripper 适配器
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
