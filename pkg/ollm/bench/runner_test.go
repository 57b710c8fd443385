package bench

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ═══════════════════════════════════════════════════════════════════════════
// Runner 测试
// ═══════════════════════════════════════════════════════════════════════════

// benchStub 返回固定用量的 chat completion 测试服务器
func benchStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:     baseURL,
		Models:      []string{"gpt-4o-mini"},
		Prompt:      "hi",
		MaxTokens:   8,
		Warmup:      1,
		Iterations:  4,
		Concurrency: 2,
		Timeout:     "5s",
	}
}

func TestRunner_Run(t *testing.T) {
	var requests atomic.Int64
	server := benchStub(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "gpt-4o-mini", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}],"usage":{"total_tokens":10}}`))
	})

	runner := NewRunner(testConfig(server.URL), zerolog.Nop())
	reports, err := runner.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "gpt-4o-mini", report.Model)
	// 顺序 4 + 并发 4（预热不计入）
	assert.Equal(t, 8, report.Requests)
	assert.Zero(t, report.Failures)
	assert.False(t, report.Failed())
	// 预热请求的 Token 不计入
	assert.Equal(t, int64(80), report.TotalTokens)
	assert.Equal(t, 4, report.Sequential.Count)
	assert.Equal(t, 4, report.Concurrent.Count)
	assert.Positive(t, report.Sequential.P50)
	// 预热 1 + 顺序 4 + 并发 4
	assert.Equal(t, int64(9), requests.Load())
}

func TestRunner_Run_AuthHeader(t *testing.T) {
	var gotAuth string
	server := benchStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"usage":{"total_tokens":1}}`))
	})

	cfg := testConfig(server.URL)
	cfg.APIKey = "sk-bench"
	runner := NewRunner(cfg, zerolog.Nop())

	_, err := runner.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-bench", gotAuth)
}

func TestRunner_Run_ErrorEnvelope(t *testing.T) {
	server := benchStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid model name", "code": "model_not_found"}}`))
	})

	runner := NewRunner(testConfig(server.URL), zerolog.Nop())
	reports, err := runner.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, 8, report.Failures)
	assert.True(t, report.Failed())
	assert.Zero(t, report.Sequential.Count)
}

func TestRunner_Run_MultipleModels(t *testing.T) {
	server := benchStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"usage":{"total_tokens":1}}`))
	})

	cfg := testConfig(server.URL)
	cfg.Models = []string{"model-a", "model-b"}
	runner := NewRunner(cfg, zerolog.Nop())

	reports, err := runner.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "model-a", reports[0].Model)
	assert.Equal(t, "model-b", reports[1].Model)
}

func TestRunner_Run_ContextCanceled(t *testing.T) {
	server := benchStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"usage":{"total_tokens":1}}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(testConfig(server.URL), zerolog.Nop())
	reports, err := runner.Run(ctx)

	require.Error(t, err)
	assert.Empty(t, reports)
}
